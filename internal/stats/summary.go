package stats

import (
	"fmt"

	"github.com/SlpAus/game-library-insights-backend/internal/game"
	"github.com/SlpAus/game-library-insights-backend/internal/metrics"
)

const (
	// UnknownBucket 承接缺失分组维度的游戏，而不是把它们丢掉
	UnknownBucket = "Unknown"

	// 高光位的准入时长：时长太短的每小时成本没有参考意义
	minHoursForBestValue  = 5.0
	minHoursForWorstValue = 2.0
)

// 来源维度的桶名
const (
	sourcePurchased    = "Purchased"
	sourceSubscription = "Subscription"
)

// BuildSummary 单遍扫描游戏库，构建完整的聚合摘要。
// 愿望单中的游戏计入状态分布，但不参与任何消费/时长统计。
func BuildSummary(games []game.Game) LibrarySummary {
	summary := LibrarySummary{
		ByGenre:     make(map[string]DimensionStats),
		ByPlatform:  make(map[string]DimensionStats),
		BySource:    make(map[string]DimensionStats),
		ByYear:      make(map[string]DimensionStats),
		ByFranchise: make(map[string]DimensionStats),
	}

	var ratedGames int
	var bestCPH, worstCPH float64

	for i := range games {
		g := &games[i]
		summary.TotalGames++

		switch g.Status {
		case game.StatusWishlist:
			summary.Status.Wishlist++
		case game.StatusNotStarted:
			summary.Status.NotStarted++
		case game.StatusInProgress:
			summary.Status.InProgress++
		case game.StatusCompleted:
			summary.Status.Completed++
		case game.StatusAbandoned:
			summary.Status.Abandoned++
		}

		if !g.Owned() {
			continue
		}
		summary.OwnedGames++
		summary.TotalSpend += g.Price
		summary.TotalHours += g.HoursPlayed
		summary.DiscountSavings += g.DiscountSavings()
		if g.Rating > 0 {
			summary.AverageRating += g.Rating
			ratedGames++
		}

		accumulate(summary.ByGenre, orUnknown(g.Genre), g)
		accumulate(summary.ByPlatform, orUnknown(g.Platform), g)
		accumulate(summary.ByFranchise, orUnknown(g.Franchise), g)
		if g.AcquiredFree {
			accumulate(summary.BySource, sourceSubscription, g)
		} else {
			accumulate(summary.BySource, sourcePurchased, g)
		}
		yearBucket := UnknownBucket
		if g.PurchaseDate != nil {
			yearBucket = fmt.Sprintf("%d", g.PurchaseDate.Year)
		}
		accumulate(summary.ByYear, yearBucket, g)

		// 高光位。性价比高光排除免费游戏，且要求最低时长。
		cph := metrics.CostPerHour(g.Price, g.HoursPlayed)
		if !g.AcquiredFree && g.Price > 0 {
			if g.HoursPlayed >= minHoursForBestValue && (summary.BestValue == nil || cph < bestCPH) {
				summary.BestValue = &Highlight{GameID: g.GameID, Name: g.Name, Value: cph}
				bestCPH = cph
			}
			if g.HoursPlayed >= minHoursForWorstValue && (summary.WorstValue == nil || cph > worstCPH) {
				summary.WorstValue = &Highlight{GameID: g.GameID, Name: g.Name, Value: cph}
				worstCPH = cph
			}
		}
		if summary.MostPlayed == nil || g.HoursPlayed > summary.MostPlayed.Value {
			summary.MostPlayed = &Highlight{GameID: g.GameID, Name: g.Name, Value: g.HoursPlayed}
		}
		if summary.HighestRated == nil || g.Rating > summary.HighestRated.Value {
			summary.HighestRated = &Highlight{GameID: g.GameID, Name: g.Name, Value: g.Rating}
		}
	}

	if summary.OwnedGames > 0 {
		summary.AveragePrice = summary.TotalSpend / float64(summary.OwnedGames)
		summary.AverageHours = summary.TotalHours / float64(summary.OwnedGames)
		summary.CompletionRate = float64(summary.Status.Completed) / float64(summary.OwnedGames) * 100
	}
	if ratedGames > 0 {
		summary.AverageRating /= float64(ratedGames)
	}

	return summary
}

func orUnknown(s string) string {
	if s == "" {
		return UnknownBucket
	}
	return s
}

func accumulate(m map[string]DimensionStats, key string, g *game.Game) {
	entry := m[key]
	entry.Count++
	entry.Hours += g.HoursPlayed
	entry.Spend += g.Price
	m[key] = entry
}
