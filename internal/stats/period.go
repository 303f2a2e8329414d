package stats

import (
	"github.com/SlpAus/game-library-insights-backend/internal/game"
	"github.com/SlpAus/game-library-insights-backend/pkg/civil"
)

// PeriodStatsForRange 聚合 [start, end] 闭区间内的游玩活动。
// 先按游戏聚合窗口内时长，再汇总到全局。
// “最多游玩”按窗口内时长取第一个达到最大值的游戏(按输入顺序)，
// 这是一个稳定的、可复现的平局处理，而不是随机选择。
func PeriodStatsForRange(games []game.Game, start, end civil.Date) PeriodStats {
	stats := PeriodStats{Start: start, End: end}

	activeDays := make(map[civil.Date]struct{})
	var maxHours float64

	for i := range games {
		g := &games[i]
		if !g.Owned() {
			continue
		}
		var gameHours float64
		for _, entry := range g.PlayLogs {
			if entry.Date.Before(start) || entry.Date.After(end) {
				continue
			}
			gameHours += entry.Hours
			stats.SessionCount++
			activeDays[entry.Date] = struct{}{}
		}
		if gameHours <= 0 {
			continue
		}
		stats.GamesPlayed++
		stats.TotalHours += gameHours
		if gameHours > maxHours {
			maxHours = gameHours
			stats.MostPlayed = &Highlight{GameID: g.GameID, Name: g.Name, Value: gameHours}
		}
	}

	stats.ActiveDays = len(activeDays)
	if stats.SessionCount > 0 {
		stats.AvgSessionLength = stats.TotalHours / float64(stats.SessionCount)
	}
	return stats
}

// PeriodStatsForDays 聚合最近days天的滚动窗口。
// 截止日为 now 往前数 days 天，该日及之后的记录都计入。
func PeriodStatsForDays(games []game.Game, days int, now civil.Date) PeriodStats {
	cutoff := now.AddDays(-days)
	return PeriodStatsForRange(games, cutoff, now)
}

// ComparePeriods 返回当前滚动窗口和向前平移恰好一个窗口长度的
// 上一窗口的统计，用于“较上周/上月”对比。
func ComparePeriods(games []game.Game, days int, now civil.Date) (current, previous PeriodStats) {
	current = PeriodStatsForDays(games, days, now)
	prevEnd := current.Start.AddDays(-1)
	prevStart := prevEnd.AddDays(-days)
	previous = PeriodStatsForRange(games, prevStart, prevEnd)
	return current, previous
}
