package insight

import (
	"sort"

	"github.com/SlpAus/game-library-insights-backend/internal/game"
	"github.com/SlpAus/game-library-insights-backend/internal/metrics"
)

// --- 隐藏宝石的筛选常量 ---
const (
	// minGemHours 是候选资格的最低实玩时长
	minGemHours = 10.0
	// maxGemPrice 是“低价”的价格上限
	maxGemPrice = 20.0
	// minGemRating 是“高分”的评分下限
	minGemRating = 7.0
	// gemDenominatorGuard 防止零成本游戏的价值密度除法爆掉，
	// 同时仍然让低成本获得高分
	gemDenominatorGuard = 0.1
	// maxGems 是榜单长度
	maxGems = 5
)

// FindHiddenGems 找出低价高分且实玩充足的游戏，按价值密度降序取前5。
// 价值密度 = rating*10 / (每小时成本 + 0.1)。
func FindHiddenGems(games []game.Game) []HiddenGem {
	var gems []HiddenGem
	for i := range games {
		g := &games[i]
		if !g.Owned() || g.AcquiredFree {
			continue
		}
		if g.HoursPlayed < minGemHours {
			continue
		}
		if g.Price > maxGemPrice || g.Rating < minGemRating {
			continue
		}
		cph := metrics.CostPerHour(g.Price, g.HoursPlayed)
		gems = append(gems, HiddenGem{
			GameID:      g.GameID,
			Name:        g.Name,
			Price:       g.Price,
			Rating:      g.Rating,
			Hours:       g.HoursPlayed,
			CostPerHour: cph,
			Score:       g.Rating * 10 / (cph + gemDenominatorGuard),
		})
	}

	sort.SliceStable(gems, func(i, j int) bool {
		return gems[i].Score > gems[j].Score
	})
	if len(gems) > maxGems {
		gems = gems[:maxGems]
	}
	return gems
}
