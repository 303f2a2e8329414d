package insight

import (
	"math"
	"sort"

	"github.com/SlpAus/game-library-insights-backend/internal/game"
	"github.com/SlpAus/game-library-insights-backend/pkg/civil"
)

// --- 后悔购买的模型常量 ---
const (
	// minRegretPrice 是进入候选的价格下限，便宜的游戏谈不上后悔
	minRegretPrice = 20.0
	// expectedHoursPerDay 是期望时长模型：购入后每天期望玩半小时
	expectedHoursPerDay = 0.5
	// expectedHoursCap 是期望时长的上限
	expectedHoursCap = 50.0
	// assumedElapsedDays 是缺失购买日期时假定的已持有天数
	assumedElapsedDays = 365
	// minRegretScore 是进入榜单的最低后悔分
	minRegretScore = 5.0
	// maxRegrets 是榜单长度
	maxRegrets = 5
)

// FindRegretPurchases 找出“买贵了又没怎么玩”的游戏。
// 期望时长 = min(已持有天数 * 0.5, 50)；
// 后悔分 = (price/10) * max(0, 期望时长 - 实际时长)；
// 后悔分 > 5 进入榜单，降序取前5。
func FindRegretPurchases(games []game.Game, today civil.Date) []RegretPurchase {
	var regrets []RegretPurchase
	for i := range games {
		g := &games[i]
		if !g.Owned() || g.AcquiredFree || g.Price <= minRegretPrice {
			continue
		}

		elapsedDays := assumedElapsedDays
		if g.PurchaseDate != nil {
			elapsedDays = today.DaysSince(*g.PurchaseDate)
			if elapsedDays < 0 {
				elapsedDays = 0
			}
		}
		expected := math.Min(float64(elapsedDays)*expectedHoursPerDay, expectedHoursCap)
		score := g.Price / 10 * math.Max(0, expected-g.HoursPlayed)
		if score <= minRegretScore {
			continue
		}

		regrets = append(regrets, RegretPurchase{
			GameID:        g.GameID,
			Name:          g.Name,
			Price:         g.Price,
			ExpectedHours: expected,
			ActualHours:   g.HoursPlayed,
			Score:         score,
		})
	}

	sort.SliceStable(regrets, func(i, j int) bool {
		return regrets[i].Score > regrets[j].Score
	})
	if len(regrets) > maxRegrets {
		regrets = regrets[:maxRegrets]
	}
	return regrets
}
