package insight

import (
	"sort"

	"github.com/SlpAus/game-library-insights-backend/internal/game"
	"github.com/SlpAus/game-library-insights-backend/pkg/civil"
)

const (
	// minShelfDays 是“积灰”的天数门槛
	minShelfDays = 30
	// maxShelfWarmers 是榜单长度
	maxShelfWarmers = 5
)

// FindShelfWarmers 找出买来超过30天仍未开玩的付费游戏，
// 按积灰天数降序取前5。
func FindShelfWarmers(games []game.Game, today civil.Date) []ShelfWarmer {
	var warmers []ShelfWarmer
	for i := range games {
		g := &games[i]
		if g.Status != game.StatusNotStarted || g.PurchaseDate == nil || g.Price <= 0 {
			continue
		}
		days := today.DaysSince(*g.PurchaseDate)
		if days <= minShelfDays {
			continue
		}
		warmers = append(warmers, ShelfWarmer{
			GameID:       g.GameID,
			Name:         g.Name,
			Price:        g.Price,
			PurchaseDate: *g.PurchaseDate,
			DaysSitting:  days,
		})
	}

	sort.SliceStable(warmers, func(i, j int) bool {
		return warmers[i].DaysSitting > warmers[j].DaysSitting
	})
	if len(warmers) > maxShelfWarmers {
		warmers = warmers[:maxShelfWarmers]
	}
	return warmers
}
