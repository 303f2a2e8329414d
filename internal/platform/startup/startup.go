package startup

import (
	"fmt"

	"github.com/SlpAus/game-library-insights-backend/internal/ballot"
	"github.com/SlpAus/game-library-insights-backend/internal/game"
	"github.com/SlpAus/game-library-insights-backend/internal/platform/database"
	"github.com/SlpAus/game-library-insights-backend/internal/stats"
	"github.com/SlpAus/game-library-insights-backend/internal/user"
)

// InitializeApplication 是应用首次启动时执行的总入口
func InitializeApplication() error {
	fmt.Println("开始应用首次初始化...")

	if err := game.PrimeModule(); err != nil {
		return err
	}
	game.SetLibraryChangedHook(func() {
		if database.IsRedisHealthy() {
			stats.InvalidateSummaryCache()
		}
	})
	if err := user.PrimeCachedDB(); err != nil {
		return err
	}
	if err := ballot.PrimeCachedDB(); err != nil {
		return err
	}

	fmt.Println("应用初始化完成！")
	return nil
}

// RebuildCache 在Redis重启或恢复后热重建全部缓存数据。
// 本地数据库是事实来源，重建只是把它重新刷进Redis。
func RebuildCache() error {
	fmt.Println("开始缓存热重建...")

	if err := user.WarmupCache(); err != nil {
		return err
	}
	if err := ballot.WarmupCache(); err != nil {
		return err
	}
	stats.InvalidateSummaryCache()

	fmt.Println("缓存热重建完成。")
	return nil
}
