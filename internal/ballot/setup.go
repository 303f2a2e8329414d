package ballot

import (
	"fmt"

	"github.com/SlpAus/game-library-insights-backend/internal/platform/database"
)

// PrimeModule 迁移选票表结构。
func PrimeModule() error {
	if err := database.DB.AutoMigrate(&BallotBlob{}); err != nil {
		return fmt.Errorf("迁移选票表失败: %w", err)
	}
	return nil
}

// PrimeCachedDB 迁移表结构并在Redis可用时预热热存储。
func PrimeCachedDB() error {
	if err := PrimeModule(); err != nil {
		return err
	}
	if database.IsRedisHealthy() {
		if err := WarmupCache(); err != nil {
			return err
		}
	}
	return nil
}
