package ballot

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SlpAus/game-library-insights-backend/internal/platform/database"
	"github.com/redis/go-redis/v9"
)

const ballotKeyPrefix = "ballot:"

// ballotHashKey 返回用户选票在Redis里的哈希键。
func ballotHashKey(userID string) string {
	return ballotKeyPrefix + userID
}

// redisStore 以Redis哈希作为热存储，每次写入同步落到本地数据库。
// 本地数据库是事实来源，Redis只是可重建的缓存：
// 本地写失败时回滚Redis里的改动，保持两边一致。
type redisStore struct{}

func (redisStore) Cast(userID string, b Ballot) error {
	key := ballotHashKey(userID)
	field := StorageKey(b.PeriodKey, b.CategoryID)

	previous, err := database.RDB.HGet(database.Ctx, key, field).Result()
	hadPrevious := err == nil
	if err != nil && err != redis.Nil {
		return fmt.Errorf("读取Redis选票失败: %w", err)
	}

	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("序列化选票失败: %w", err)
	}
	if err := database.RDB.HSet(database.Ctx, key, field, string(data)).Err(); err != nil {
		return fmt.Errorf("写入Redis选票失败: %w", err)
	}

	if err := (localStore{}).Cast(userID, b); err != nil {
		// 本地落库失败，把Redis恢复到写入前的状态
		if hadPrevious {
			database.RDB.HSet(database.Ctx, key, field, previous)
		} else {
			database.RDB.HDel(database.Ctx, key, field)
		}
		return err
	}
	return nil
}

func (redisStore) Get(userID, periodKey, categoryID string) (*Ballot, error) {
	data, err := database.RDB.HGet(database.Ctx, ballotHashKey(userID), StorageKey(periodKey, categoryID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("读取Redis选票失败: %w", err)
	}
	var b Ballot
	if err := json.Unmarshal([]byte(data), &b); err != nil {
		// 单条损坏按未投处理
		return nil, nil
	}
	return &b, nil
}

func (redisStore) GetAllForPeriod(userID, periodKey string) (map[string]Ballot, error) {
	fields, err := database.RDB.HGetAll(database.Ctx, ballotHashKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("读取Redis选票失败: %w", err)
	}
	result := make(map[string]Ballot)
	prefix := periodPrefix(periodKey)
	for field, data := range fields {
		if !strings.HasPrefix(field, prefix) {
			continue
		}
		var b Ballot
		if err := json.Unmarshal([]byte(data), &b); err != nil {
			continue
		}
		result[field] = b
	}
	return result, nil
}

func (redisStore) Clear(userID, periodKey string) error {
	key := ballotHashKey(userID)
	fields, err := database.RDB.HGetAll(database.Ctx, key).Result()
	if err != nil {
		return fmt.Errorf("读取Redis选票失败: %w", err)
	}
	prefix := periodPrefix(periodKey)
	toDelete := make([]string, 0, len(fields))
	for field := range fields {
		if strings.HasPrefix(field, prefix) {
			toDelete = append(toDelete, field)
		}
	}
	if len(toDelete) > 0 {
		if err := database.RDB.HDel(database.Ctx, key, toDelete...).Err(); err != nil {
			return fmt.Errorf("删除Redis选票失败: %w", err)
		}
	}
	if err := (localStore{}).Clear(userID, periodKey); err != nil {
		// 本地清理失败，把删掉的字段写回Redis
		for _, field := range toDelete {
			database.RDB.HSet(database.Ctx, key, field, fields[field])
		}
		return err
	}
	return nil
}

// WarmupCache 把本地数据库里的全部选票刷进Redis。
// 启动和Redis恢复时调用，使热存储与事实来源对齐。
func WarmupCache() error {
	var blobs []BallotBlob
	if err := database.DB.Find(&blobs).Error; err != nil {
		return fmt.Errorf("加载选票数据失败: %w", err)
	}

	pipe := database.RDB.Pipeline()
	for _, blob := range blobs {
		ballots := decodeBallots(blob.Data)
		if len(ballots) == 0 {
			continue
		}
		key := ballotHashKey(blob.UserID)
		pipe.Del(database.Ctx, key)
		fields := make(map[string]interface{}, len(ballots))
		for storageKey, b := range ballots {
			data, err := json.Marshal(b)
			if err != nil {
				continue
			}
			fields[storageKey] = string(data)
		}
		if len(fields) > 0 {
			pipe.HSet(database.Ctx, key, fields)
		}
	}
	if _, err := pipe.Exec(database.Ctx); err != nil {
		return fmt.Errorf("预热选票缓存失败: %w", err)
	}
	fmt.Printf("选票缓存预热完成，共 %d 个用户。\n", len(blobs))
	return nil
}
