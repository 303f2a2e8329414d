package metrics

import (
	"math"

	"github.com/SlpAus/game-library-insights-backend/internal/game"
	"github.com/SlpAus/game-library-insights-backend/pkg/civil"
)

// --- 算法常量 ---
const (
	// BaselineCostPerHour 是综合评分中的基准时薪成本(美元/小时)。
	// 每小时成本达到该值时，性价比部分的得分降为0。
	// 这是一个可调参数，不从数据推导。
	BaselineCostPerHour = 3.5

	// 价值分级的每小时成本阈值
	excellentThreshold = 1.0
	goodThreshold      = 3.0
	fairThreshold      = 5.0
)

// ValueRating 是每小时成本的价值分级
type ValueRating string

const (
	RatingExcellent ValueRating = "Excellent"
	RatingGood      ValueRating = "Good"
	RatingFair      ValueRating = "Fair"
	RatingPoor      ValueRating = "Poor"
)

// GameMetrics 是按需派生的单游戏指标集合，从不持久化。
type GameMetrics struct {
	CostPerHour    float64     `json:"costPerHour"`
	ValueRating    ValueRating `json:"valueRating"`
	BlendScore     float64     `json:"blendScore"`
	ROI            float64     `json:"roi"`
	DaysToComplete *int        `json:"daysToComplete,omitempty"`
}

// CostPerHour 计算每小时成本。未游玩(hours为0)时定义为0，不是错误。
func CostPerHour(price, hours float64) float64 {
	if hours > 0 {
		return price / hours
	}
	return 0
}

// ValueRatingFor 将每小时成本映射为价值分级。
// 0(免费或免费未玩)按Excellent处理。
func ValueRatingFor(costPerHour float64) ValueRating {
	switch {
	case costPerHour <= excellentThreshold:
		return RatingExcellent
	case costPerHour <= goodThreshold:
		return RatingGood
	case costPerHour <= fairThreshold:
		return RatingFair
	default:
		return RatingPoor
	}
}

// BlendScore 计算综合评分：评分部分为 rating*10，
// 性价比部分以每小时成本对基准值的占比折算成0-10分的加成，
// 成本为0时拿满10分，达到或超过基准值时为0分。
func BlendScore(rating, costPerHour float64) float64 {
	costRatio := math.Min(costPerHour/BaselineCostPerHour, 1.0)
	return rating*10 + (10 - costRatio*10)
}

// ROI 计算投入回报。免费游戏直接返回 rating*hours，
// 避免除以0让免费游戏在公式上无限优于付费游戏。
func ROI(rating, hours, price float64) float64 {
	if price == 0 {
		return rating * hours
	}
	return rating * hours / price
}

// DaysToComplete 返回从开坑到通关的天数(绝对值，向上取整)。
// 任一日期缺失时返回nil。
func DaysToComplete(start, end *civil.Date) *int {
	if start == nil || end == nil {
		return nil
	}
	days := end.DaysSince(*start)
	if days < 0 {
		days = -days
	}
	return &days
}

// Compute 为一款游戏计算全部派生指标。
func Compute(g *game.Game) GameMetrics {
	cph := CostPerHour(g.Price, g.HoursPlayed)
	return GameMetrics{
		CostPerHour:    cph,
		ValueRating:    ValueRatingFor(cph),
		BlendScore:     BlendScore(g.Rating, cph),
		ROI:            ROI(g.Rating, g.HoursPlayed, g.Price),
		DaysToComplete: DaysToComplete(g.StartDate, g.EndDate),
	}
}
