package ballot

import (
	"errors"
	"fmt"

	"github.com/SlpAus/game-library-insights-backend/internal/platform/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// localStore 把每个用户的全部选票作为单个JSON文本列存进数据库。
// 选票量级很小(每周期不超过几十张)，整块读-改-写比细粒度行存储简单得多。
type localStore struct{}

// loadBlob 读取用户的选票映射，不存在的用户视为空映射。
func loadBlob(userID string) (map[string]Ballot, error) {
	var blob BallotBlob
	err := database.DB.Where("user_id = ?", userID).First(&blob).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return make(map[string]Ballot), nil
		}
		return nil, fmt.Errorf("读取选票数据失败: %w", err)
	}
	return decodeBallots(blob.Data), nil
}

// saveBlob 整块写回用户的选票映射，按user_id做upsert。
func saveBlob(userID string, ballots map[string]Ballot) error {
	data, err := encodeBallots(ballots)
	if err != nil {
		return fmt.Errorf("序列化选票数据失败: %w", err)
	}
	blob := BallotBlob{UserID: userID, Data: data}
	err = database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data"}),
	}).Create(&blob).Error
	if err != nil {
		return fmt.Errorf("写入选票数据失败: %w", err)
	}
	return nil
}

func (localStore) Cast(userID string, b Ballot) error {
	ballots, err := loadBlob(userID)
	if err != nil {
		return err
	}
	applyCast(ballots, b)
	return saveBlob(userID, ballots)
}

func (localStore) Get(userID, periodKey, categoryID string) (*Ballot, error) {
	ballots, err := loadBlob(userID)
	if err != nil {
		return nil, err
	}
	if b, ok := ballots[StorageKey(periodKey, categoryID)]; ok {
		return &b, nil
	}
	return nil, nil
}

func (localStore) GetAllForPeriod(userID, periodKey string) (map[string]Ballot, error) {
	ballots, err := loadBlob(userID)
	if err != nil {
		return nil, err
	}
	return filterPeriod(ballots, periodKey), nil
}

func (localStore) Clear(userID, periodKey string) error {
	ballots, err := loadBlob(userID)
	if err != nil {
		return err
	}
	if !clearPeriod(ballots, periodKey) {
		return nil
	}
	return saveBlob(userID, ballots)
}
