package user

import (
	"errors"
	"fmt"

	"github.com/SlpAus/game-library-insights-backend/internal/platform/database"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IsValidUUID 检查一个字符串是否是格式正确的UUID。
func IsValidUUID(s string) bool {
	return uuid.Validate(s) == nil
}

// CreateProvisionalUser 生成一个临时的、尚未持久化的新用户UUID。
// 这个UUID将被设置到cookie中，但此时尚未被“认证”。
func CreateProvisionalUser() (string, error) {
	newUUID, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("无法生成UUID v7: %w", err)
	}
	return newUUID.String(), nil
}

// IsUserActivated 检查一个给定的UUID是否已经被持久化。
// Redis健康时只查缓存，否则退回数据库查询。
func IsUserActivated(uuidStr string) (bool, error) {
	if uuidStr == "" {
		return false, nil
	}
	if database.IsRedisHealthy() {
		exists, err := database.RDB.SIsMember(database.Ctx, KnownUsersKey, uuidStr).Result()
		if err != nil {
			return false, fmt.Errorf("检查Redis用户缓存时出错: %w", err)
		}
		return exists, nil
	}

	var count int64
	if err := database.DB.Model(&User{}).Where("uuid = ?", uuidStr).Count(&count).Error; err != nil {
		return false, fmt.Errorf("检查用户记录时出错: %w", err)
	}
	return count > 0, nil
}

// ActivateUser 将一个临时的UUID正式持久化到数据库和缓存中。
// 这个操作是原子性的，如果缓存写入失败，数据库写入将被回滚。
func ActivateUser(uuidStr string) error {
	activated, err := IsUserActivated(uuidStr)
	if err != nil {
		return err
	}
	if activated {
		return nil // 用户已存在，无需操作
	}

	tx := database.DB.Begin()
	if tx.Error != nil {
		return fmt.Errorf("无法开始数据库事务: %w", tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	newUser := User{UUID: uuidStr}
	if err := tx.Create(&newUser).Error; err != nil {
		tx.Rollback()
		// 如果是因为记录已存在而出错，这不是一个真正的错误
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("无法创建新用户: %w", err)
	}

	if database.IsRedisHealthy() {
		if err := database.RDB.SAdd(database.Ctx, KnownUsersKey, uuidStr).Err(); err != nil {
			// 如果Redis写入失败，回滚数据库的写入，保证数据一致性
			tx.Rollback()
			return fmt.Errorf("无法将新用户 %s 添加到Redis缓存: %w", uuidStr, err)
		}
	}

	return tx.Commit().Error
}
