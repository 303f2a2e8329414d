package game

import (
	"gorm.io/gorm"

	"github.com/SlpAus/game-library-insights-backend/pkg/civil"
)

// Status 定义了游戏在库中的生命周期状态
type Status string

const (
	// StatusWishlist 表示愿望单中的游戏，尚未拥有
	StatusWishlist Status = "Wishlist"
	// StatusNotStarted 表示已购入但未开始游玩
	StatusNotStarted Status = "Not Started"
	// StatusInProgress 表示正在游玩
	StatusInProgress Status = "In Progress"
	// StatusCompleted 表示已通关
	StatusCompleted Status = "Completed"
	// StatusAbandoned 表示已弃坑
	StatusAbandoned Status = "Abandoned"
)

// IsValid 报告状态是否为已定义的枚举值。
func (s Status) IsValid() bool {
	switch s {
	case StatusWishlist, StatusNotStarted, StatusInProgress, StatusCompleted, StatusAbandoned:
		return true
	}
	return false
}

// Game 定义了数据库中一条库藏游戏的数据结构
type Game struct {
	// gorm.Model 包含 ID, CreatedAt, UpdatedAt, DeletedAt
	gorm.Model

	// GameID 是游戏的业务主键 (UUID字符串)
	GameID string `gorm:"uniqueIndex;not null;type:varchar(36)" json:"id"`

	// Name 是游戏名称
	Name string `gorm:"not null" json:"name"`

	// Price 是实际支付的价格，恒为非负
	Price float64 `json:"price"`

	// OriginalPrice 是原价(可选)。语义上应不低于Price；
	// 低于Price的数据按“无折扣”处理，而不是拒绝。
	OriginalPrice *float64 `json:"originalPrice,omitempty"`

	// HoursPlayed 是累计游玩小时数
	HoursPlayed float64 `json:"hoursPlayed"`

	// Rating 是用户评分，范围0-10
	Rating float64 `json:"rating"`

	// Status 是生命周期状态
	Status Status `gorm:"index;type:varchar(16)" json:"status"`

	// AcquiredFree 表示游戏是否通过订阅等渠道免费获得
	AcquiredFree bool `json:"acquiredFree"`

	// PurchaseDate 是购入日期(可选)
	PurchaseDate *civil.Date `json:"purchaseDate,omitempty"`

	// StartDate / EndDate 是开坑和通关日期(可选)
	StartDate *civil.Date `json:"startDate,omitempty"`
	EndDate   *civil.Date `json:"endDate,omitempty"`

	// Platform 是游玩平台，Genre 是题材分类
	Platform string `json:"platform"`
	Genre    string `json:"genre"`

	// Franchise 是系列归属(可选的分组键)
	Franchise string `json:"franchise,omitempty"`

	// PlayLogs 是这款游戏的全部游玩记录
	PlayLogs []PlayLog `gorm:"constraint:OnDelete:CASCADE" json:"playLogs"`
}

// PlayLog 定义了单次游玩会话的记录。
// 同一天可以有多条记录(多次会话)，时长按天累加。
type PlayLog struct {
	gorm.Model

	// GameID 是所属Game记录的外键 (gorm.Model.ID)
	GameID uint `gorm:"index" json:"-"`

	// Date 是游玩的日历日期，不带时区
	Date civil.Date `json:"date"`

	// Hours 是本次会话的时长，恒为正
	Hours float64 `json:"hours"`

	// Note 是可选的备注
	Note string `json:"note,omitempty"`
}

// Owned 报告游戏是否已实际拥有。
// 愿望单中的游戏不参与任何消费/游玩时长统计。
func (g *Game) Owned() bool {
	return g.Status != StatusWishlist
}

// HasDiscount 报告游戏是否以折扣价购入。
// 原价低于实付价的脏数据视为无折扣。
func (g *Game) HasDiscount() bool {
	return !g.AcquiredFree && g.OriginalPrice != nil && *g.OriginalPrice > g.Price
}

// DiscountSavings 返回折扣节省的金额，无折扣时为0。
func (g *Game) DiscountSavings() float64 {
	if !g.HasDiscount() {
		return 0
	}
	return *g.OriginalPrice - g.Price
}
