package ballot

import (
	"time"

	"gorm.io/gorm"
)

// Ballot 是用户自己对某个周期内某个奖项类别的投票。
// 它独立于引擎计算出的获奖者，是唯一带有生命周期的派生实体：
// 首次投票时创建，重复投票时整体覆盖(保留最后一次)，
// 只能按周期整体清除。
type Ballot struct {
	PeriodKey  string    `json:"periodKey"`
	PeriodType string    `json:"periodType"`
	CategoryID string    `json:"categoryId"`
	GameID     string    `json:"gameId"`
	GameName   string    `json:"gameName"`
	VotedAt    time.Time `json:"votedAt"`
}

// BallotBlob 是选票在SQLite中的持久化形式：
// 每个用户一行，Data是完整投票映射的JSON序列化。
type BallotBlob struct {
	gorm.Model

	// UserID 是选票所属用户的UUID
	UserID string `gorm:"uniqueIndex;not null;type:varchar(36)"`

	// Data 是 map[存储键]Ballot 的JSON字符串
	Data string `gorm:"type:text"`
}
