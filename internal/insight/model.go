package insight

import (
	"github.com/SlpAus/game-library-insights-backend/pkg/civil"
)

// HiddenGem 是一款低价、高评分、实玩时间充足的游戏
type HiddenGem struct {
	GameID      string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Hours       float64 `json:"hours"`
	CostPerHour float64 `json:"costPerHour"`
	Score       float64 `json:"score"`
}

// RegretPurchase 是一款买贵了又没怎么玩的游戏
type RegretPurchase struct {
	GameID        string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	ExpectedHours float64 `json:"expectedHours"`
	ActualHours   float64 `json:"actualHours"`
	Score         float64 `json:"score"`
}

// ShelfWarmer 是一款买来后一直没开玩、在库里积灰的游戏
type ShelfWarmer struct {
	GameID       string     `json:"id"`
	Name         string     `json:"name"`
	Price        float64    `json:"price"`
	PurchaseDate civil.Date `json:"purchaseDate"`
	DaysSitting  int        `json:"daysSitting"`
}

// Preference 是平台/题材维度上的时长占比。
// Share 是0-100的占比分；结果按绝对时长降序排列，而不是按占比，
// 避免总时长很少但相对占比高的维度被排到最前。
type Preference struct {
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
	Share float64 `json:"share"`
}

// GradedMetric 是人格画像中单个子指标的评级
type GradedMetric struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Grade string  `json:"grade"`
}

// PersonalityReport 是对游玩模式的整体画像
type PersonalityReport struct {
	Archetype    string         `json:"archetype"`
	Metrics      []GradedMetric `json:"metrics"`
	OverallGrade string         `json:"overallGrade"`
	OverallScore float64        `json:"overallScore"`
}

// MoodPoint 是一周的游玩强度(0-100)
type MoodPoint struct {
	WeekStart  civil.Date `json:"weekStart"`
	Hours      float64    `json:"hours"`
	Sessions   int        `json:"sessions"`
	ActiveDays int        `json:"activeDays"`
	Intensity  float64    `json:"intensity"`
}

// DiscountReport 比较折扣购入和原价购入游戏的使用情况
type DiscountReport struct {
	DiscountedCount     int     `json:"discountedCount"`
	FullPriceCount      int     `json:"fullPriceCount"`
	TotalSaved          float64 `json:"totalSaved"`
	AvgHoursDiscounted  float64 `json:"avgHoursDiscounted"`
	AvgHoursFullPrice   float64 `json:"avgHoursFullPrice"`
	AvgRatingDiscounted float64 `json:"avgRatingDiscounted"`
	AvgRatingFullPrice  float64 `json:"avgRatingFullPrice"`
	// HoursRatio 是折扣组对原价组平均时长的比值，任一组为空时为0
	HoursRatio float64 `json:"hoursRatio"`
}
