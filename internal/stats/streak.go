package stats

import (
	"sort"

	"github.com/SlpAus/game-library-insights-backend/internal/game"
	"github.com/SlpAus/game-library-insights-backend/pkg/civil"
)

// Streaks 计算连续游玩天数。
//
// 当前连击从today开始逐日回走：有记录的日子计入连击，遇到第一个
// 无记录的日子停止。唯一例外是today本身还没有记录时(今天还没玩)，
// 不打断连击，直接从昨天继续回走。
// 最长连击在去重后升序排列的日期上扫描相邻差恰为1天的最长连续段。
func Streaks(games []game.Game, today civil.Date) StreakInfo {
	playedDays := make(map[civil.Date]struct{})
	for i := range games {
		g := &games[i]
		if !g.Owned() {
			continue
		}
		for _, entry := range g.PlayLogs {
			playedDays[entry.Date] = struct{}{}
		}
	}

	info := StreakInfo{}
	if len(playedDays) == 0 {
		return info
	}

	// 当前连击
	cursor := today
	if _, ok := playedDays[cursor]; !ok {
		cursor = cursor.AddDays(-1)
	}
	for {
		if _, ok := playedDays[cursor]; !ok {
			break
		}
		info.Current++
		cursor = cursor.AddDays(-1)
	}

	// 最长连击
	distinct := make([]civil.Date, 0, len(playedDays))
	for d := range playedDays {
		distinct = append(distinct, d)
	}
	sort.Slice(distinct, func(i, j int) bool {
		return distinct[i].Before(distinct[j])
	})

	run := 1
	info.Longest = 1
	for i := 1; i < len(distinct); i++ {
		if distinct[i].DaysSince(distinct[i-1]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > info.Longest {
			info.Longest = run
		}
	}

	last := distinct[len(distinct)-1]
	info.LastPlayed = &last
	return info
}
