package insight

import (
	"github.com/SlpAus/game-library-insights-backend/internal/game"
)

// DiscountEffectiveness 比较折扣购入和原价购入游戏的实际使用情况。
// 只统计付费拥有的游戏；原价低于实付价的脏数据按原价购入处理。
func DiscountEffectiveness(games []game.Game) DiscountReport {
	var report DiscountReport
	var discountedHours, fullHours float64
	var discountedRating, fullRating float64

	for i := range games {
		g := &games[i]
		if !g.Owned() || g.AcquiredFree {
			continue
		}
		if g.HasDiscount() {
			report.DiscountedCount++
			report.TotalSaved += g.DiscountSavings()
			discountedHours += g.HoursPlayed
			discountedRating += g.Rating
		} else {
			report.FullPriceCount++
			fullHours += g.HoursPlayed
			fullRating += g.Rating
		}
	}

	if report.DiscountedCount > 0 {
		report.AvgHoursDiscounted = discountedHours / float64(report.DiscountedCount)
		report.AvgRatingDiscounted = discountedRating / float64(report.DiscountedCount)
	}
	if report.FullPriceCount > 0 {
		report.AvgHoursFullPrice = fullHours / float64(report.FullPriceCount)
		report.AvgRatingFullPrice = fullRating / float64(report.FullPriceCount)
	}
	if report.AvgHoursFullPrice > 0 && report.DiscountedCount > 0 {
		report.HoursRatio = report.AvgHoursDiscounted / report.AvgHoursFullPrice
	}
	return report
}
