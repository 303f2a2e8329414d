package stats

import (
	"github.com/SlpAus/game-library-insights-backend/pkg/civil"
)

// StatusCounts 是按生命周期状态划分的游戏数量
type StatusCounts struct {
	Wishlist   int `json:"wishlist"`
	NotStarted int `json:"notStarted"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Abandoned  int `json:"abandoned"`
}

// Highlight 记录某个维度上最突出的一款游戏
type Highlight struct {
	GameID string  `json:"id"`
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
}

// DimensionStats 是单个分组桶(题材/平台/来源/年份/系列)的聚合值
type DimensionStats struct {
	Count int     `json:"count"`
	Hours float64 `json:"hours"`
	Spend float64 `json:"spend"`
}

// LibrarySummary 是整个游戏库的聚合摘要。
// 字段的 omitempty 标签表示高光位在数据不足时被整体省略，
// 而不是渲染一个残缺的对象。
type LibrarySummary struct {
	TotalGames int          `json:"totalGames"`
	OwnedGames int          `json:"ownedGames"`
	Status     StatusCounts `json:"status"`

	TotalSpend      float64 `json:"totalSpend"`
	TotalHours      float64 `json:"totalHours"`
	AveragePrice    float64 `json:"averagePrice"`
	AverageRating   float64 `json:"averageRating"`
	AverageHours    float64 `json:"averageHours"`
	DiscountSavings float64 `json:"discountSavings"`
	CompletionRate  float64 `json:"completionRate"`

	BestValue    *Highlight `json:"bestValue,omitempty"`    // 每小时成本最低(≥5小时，付费)
	WorstValue   *Highlight `json:"worstValue,omitempty"`   // 每小时成本最高(≥2小时，付费)
	MostPlayed   *Highlight `json:"mostPlayed,omitempty"`   // 总时长最高
	HighestRated *Highlight `json:"highestRated,omitempty"` // 评分最高

	ByGenre     map[string]DimensionStats `json:"byGenre"`
	ByPlatform  map[string]DimensionStats `json:"byPlatform"`
	BySource    map[string]DimensionStats `json:"bySource"`
	ByYear      map[string]DimensionStats `json:"byYear"`
	ByFranchise map[string]DimensionStats `json:"byFranchise"`
}

// MonthlyPoint 是 "YYYY-MM" 月份桶的活跃数据。
// 时长只来自游玩记录，消费只来自购买日期，两者独立累加：
// 某月买、次月玩的游戏会正确地同时计入两个桶。
type MonthlyPoint struct {
	Month string  `json:"month"`
	Hours float64 `json:"hours"`
	Spend float64 `json:"spend"`
}

// CumulativePoint 是按月前缀求和后的消费数据
type CumulativePoint struct {
	Month      string  `json:"month"`
	Monthly    float64 `json:"monthly"`
	Cumulative float64 `json:"cumulative"`
}

// PeriodStats 是一个滚动或固定窗口内的聚合统计
type PeriodStats struct {
	Start civil.Date `json:"start"`
	End   civil.Date `json:"end"`

	TotalHours       float64    `json:"totalHours"`
	SessionCount     int        `json:"sessionCount"`
	GamesPlayed      int        `json:"gamesPlayed"`
	ActiveDays       int        `json:"activeDays"`
	AvgSessionLength float64    `json:"avgSessionLength"`
	MostPlayed       *Highlight `json:"mostPlayed,omitempty"`
}

// StreakInfo 是连续游玩天数的统计
type StreakInfo struct {
	Current    int         `json:"current"`
	Longest    int         `json:"longest"`
	LastPlayed *civil.Date `json:"lastPlayed,omitempty"`
}
