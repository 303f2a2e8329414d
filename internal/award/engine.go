package award

import (
	"fmt"
	"time"

	"github.com/SlpAus/game-library-insights-backend/internal/game"
	"github.com/SlpAus/game-library-insights-backend/internal/stats"
	"github.com/SlpAus/game-library-insights-backend/pkg/civil"
)

// Generate 为一个周期实例计算完整的奖项集合。
// 计算是纯函数：同一份游戏库和同一个周期重复计算，
// 每个类别得到完全相同的获奖者。
func Generate(games []game.Game, pt stats.PeriodType, now time.Time) (*AwardSet, error) {
	if !pt.IsValid() {
		return nil, fmt.Errorf("无效的周期类型: %s", pt)
	}

	start, end := stats.PeriodRange(pt, now)
	ctx := buildPeriodContext(games, start, end)

	set := &AwardSet{
		PeriodType: pt,
		PeriodKey:  stats.PeriodKey(pt, now),
		Start:      start,
		End:        end,
	}

	for _, cat := range categoriesForTier(pt) {
		nominees := cat.nominate(ctx)
		if len(nominees) < minNomineeCount {
			continue
		}
		set.Awards = append(set.Awards, Award{
			CategoryID: cat.ID,
			Title:      cat.Title,
			Nominees:   nominees,
			Winner:     pickWinner(nominees),
		})
	}
	return set, nil
}

// buildPeriodContext 汇总每款游戏在 [start, end] 窗口内的活动。
// 只有窗口内有游玩记录的游戏才进入候选池；条目顺序与输入顺序一致，
// 这个顺序就是平局时的决胜顺序。
func buildPeriodContext(games []game.Game, start, end civil.Date) *periodContext {
	ctx := &periodContext{start: start, end: end}

	for i := range games {
		g := &games[i]
		if !g.Owned() {
			continue
		}

		entry := periodEntry{game: g}
		activeDays := make(map[civil.Date]struct{})
		for _, session := range g.PlayLogs {
			if session.Date.Before(start) {
				if entry.lastBefore == nil || session.Date.After(*entry.lastBefore) {
					d := session.Date
					entry.lastBefore = &d
				}
				continue
			}
			if session.Date.After(end) {
				continue
			}
			if entry.sessions == 0 || session.Date.Before(entry.firstSession) {
				entry.firstSession = session.Date
			}
			entry.hours += session.Hours
			entry.sessions++
			activeDays[session.Date] = struct{}{}
			if session.Hours > entry.longestSession {
				entry.longestSession = session.Hours
			}
		}
		if entry.sessions == 0 {
			continue
		}
		entry.activeDays = len(activeDays)
		ctx.entries = append(ctx.entries, entry)
	}
	return ctx
}

// pickWinner 选出分数最高的候选。平局时取原始候选顺序中最靠前的
// 一个——显式的“先到先得”次级键，而不是依赖排序算法恰好稳定。
func pickWinner(nominees []Nominee) Nominee {
	winner := 0
	for i := 1; i < len(nominees); i++ {
		if nominees[i].Score > nominees[winner].Score {
			winner = i
		}
	}
	return nominees[winner]
}
