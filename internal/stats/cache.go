package stats

import (
	"encoding/json"
	"time"

	"github.com/SlpAus/game-library-insights-backend/internal/platform/database"
	"github.com/redis/go-redis/v9"
)

const (
	// summaryCacheKey 是缓存序列化后游戏库摘要的Redis String键
	summaryCacheKey = "stats:summary_cache"

	// SummaryCacheTTL 是摘要缓存的有效期
	SummaryCacheTTL = 1 * time.Minute
)

// GetSummaryCache 从Redis缓存中获取游戏库摘要。
// 缓存未命中返回(nil, nil)，是正常情况，不是错误。
func GetSummaryCache() (*LibrarySummary, error) {
	result, err := database.RDB.Get(database.Ctx, summaryCacheKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var summary LibrarySummary
	if err := json.Unmarshal([]byte(result), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// SetSummaryCache 将游戏库摘要存入Redis缓存。
func SetSummaryCache(summary *LibrarySummary, expire time.Duration) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return database.RDB.Set(database.Ctx, summaryCacheKey, data, expire).Err()
}

// InvalidateSummaryCache 在游戏库被修改后清除摘要缓存。
func InvalidateSummaryCache() {
	_ = database.RDB.Del(database.Ctx, summaryCacheKey).Err()
}
