package stats

import (
	"sort"

	"github.com/SlpAus/game-library-insights-backend/internal/game"
)

// MonthlyActivity 将全部游玩记录和购买日期截断到 "YYYY-MM" 桶，
// 按月独立累加时长和消费，返回按月份升序排列的序列。
func MonthlyActivity(games []game.Game) []MonthlyPoint {
	buckets := make(map[string]*MonthlyPoint)

	bucket := func(month string) *MonthlyPoint {
		p, ok := buckets[month]
		if !ok {
			p = &MonthlyPoint{Month: month}
			buckets[month] = p
		}
		return p
	}

	for i := range games {
		g := &games[i]
		if !g.Owned() {
			continue
		}
		if g.PurchaseDate != nil && !g.AcquiredFree {
			bucket(g.PurchaseDate.MonthKey()).Spend += g.Price
		}
		for _, entry := range g.PlayLogs {
			bucket(entry.Date.MonthKey()).Hours += entry.Hours
		}
	}

	points := make([]MonthlyPoint, 0, len(buckets))
	for _, p := range buckets {
		points = append(points, *p)
	}
	// 零填充的 "YYYY-MM" 键按字典序排序即为按时间排序
	sort.Slice(points, func(i, j int) bool {
		return points[i].Month < points[j].Month
	})
	return points
}

// CumulativeSpending 在按月排序的消费序列上做前缀求和。
// cumulative 字段沿月份序列单调不减。
func CumulativeSpending(games []game.Game) []CumulativePoint {
	monthly := MonthlyActivity(games)

	points := make([]CumulativePoint, 0, len(monthly))
	var running float64
	for _, p := range monthly {
		running += p.Spend
		points = append(points, CumulativePoint{
			Month:      p.Month,
			Monthly:    p.Spend,
			Cumulative: running,
		})
	}
	return points
}
