package game

import (
	"fmt"

	"github.com/SlpAus/game-library-insights-backend/internal/platform/database"
)

// PrimeModule 负责初始化game模块的数据库表结构
func PrimeModule() error {
	if err := database.DB.AutoMigrate(&Game{}, &PlayLog{}); err != nil {
		return fmt.Errorf("无法迁移游戏库表: %w", err)
	}
	fmt.Println("游戏库数据库表迁移成功。")
	return nil
}
