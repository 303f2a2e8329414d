package award

import (
	"fmt"

	"github.com/SlpAus/game-library-insights-backend/internal/game"
	"github.com/SlpAus/game-library-insights-backend/internal/metrics"
	"github.com/SlpAus/game-library-insights-backend/internal/stats"
	"github.com/SlpAus/game-library-insights-backend/pkg/civil"
)

// minNomineeCount 是类别成立所需的最少候选数。
// 不足时该类别在本周期被整体省略。
const minNomineeCount = 2

// 部分类别的准入阈值
const (
	minHoursForBestValue = 2.0  // 窗口内时长不足时每小时成本没有参考意义
	minComebackGapDays   = 30   // “回坑”要求的最短沉寂天数
)

// periodEntry 是一款游戏在评奖窗口内的活动汇总
type periodEntry struct {
	game           *game.Game
	hours          float64
	sessions       int
	activeDays     int
	longestSession float64
	firstSession   civil.Date
	// lastBefore 是窗口开始前最后一次游玩的日期，没有时为nil
	lastBefore *civil.Date
}

// periodContext 是一次评奖计算的全部输入
type periodContext struct {
	start   civil.Date
	end     civil.Date
	entries []periodEntry
}

// category 定义了一个奖项类别：候选的选取规则、数据说明和排序分
type category struct {
	ID       string
	Title    string
	nominate func(ctx *periodContext) []Nominee
}

// categoryRegistry 按周期档位列出类别。档位是嵌套的：
// 周3个，月在周上加4个，季在月上加1个，年在季上加1个。
func categoriesForTier(pt stats.PeriodType) []category {
	weekly := []category{mostPlayedCategory, marathonCategory, devotionCategory}
	monthly := append(weekly, bestValueCategory, freshPickCategory, completionCategory, highScorerCategory)
	quarterly := append(monthly, comebackCategory)
	yearly := append(quarterly, gameOfPeriodCategory)

	switch pt {
	case stats.PeriodWeek:
		return weekly
	case stats.PeriodMonth:
		return monthly
	case stats.PeriodQuarter:
		return quarterly
	case stats.PeriodYear:
		return yearly
	}
	return nil
}

var mostPlayedCategory = category{
	ID:    "most-played",
	Title: "时长之王",
	nominate: func(ctx *periodContext) []Nominee {
		var nominees []Nominee
		for i := range ctx.entries {
			e := &ctx.entries[i]
			nominees = append(nominees, Nominee{
				GameID:   e.game.GameID,
				Name:     e.game.Name,
				StatLine: fmt.Sprintf("本期游玩 %.1f 小时", e.hours),
				Score:    e.hours,
			})
		}
		return nominees
	},
}

var marathonCategory = category{
	ID:    "marathon-session",
	Title: "马拉松会话",
	nominate: func(ctx *periodContext) []Nominee {
		var nominees []Nominee
		for i := range ctx.entries {
			e := &ctx.entries[i]
			if e.longestSession <= 0 {
				continue
			}
			nominees = append(nominees, Nominee{
				GameID:   e.game.GameID,
				Name:     e.game.Name,
				StatLine: fmt.Sprintf("单次最长 %.1f 小时", e.longestSession),
				Score:    e.longestSession,
			})
		}
		return nominees
	},
}

var devotionCategory = category{
	ID:    "daily-devotion",
	Title: "每日偏爱",
	nominate: func(ctx *periodContext) []Nominee {
		var nominees []Nominee
		for i := range ctx.entries {
			e := &ctx.entries[i]
			nominees = append(nominees, Nominee{
				GameID:   e.game.GameID,
				Name:     e.game.Name,
				StatLine: fmt.Sprintf("本期活跃 %d 天", e.activeDays),
				Score:    float64(e.activeDays),
			})
		}
		return nominees
	},
}

var bestValueCategory = category{
	ID:    "best-value",
	Title: "性价比之选",
	nominate: func(ctx *periodContext) []Nominee {
		var nominees []Nominee
		for i := range ctx.entries {
			e := &ctx.entries[i]
			if e.game.AcquiredFree || e.game.Price <= 0 || e.hours < minHoursForBestValue {
				continue
			}
			cph := metrics.CostPerHour(e.game.Price, e.game.HoursPlayed)
			nominees = append(nominees, Nominee{
				GameID:   e.game.GameID,
				Name:     e.game.Name,
				StatLine: fmt.Sprintf("每小时成本 $%.2f", cph),
				// 成本越低越好，取负值让最大分规则选出最低成本
				Score: -cph,
			})
		}
		return nominees
	},
}

var freshPickCategory = category{
	ID:    "fresh-pick",
	Title: "新入库黑马",
	nominate: func(ctx *periodContext) []Nominee {
		var nominees []Nominee
		for i := range ctx.entries {
			e := &ctx.entries[i]
			p := e.game.PurchaseDate
			if p == nil || p.Before(ctx.start) || p.After(ctx.end) {
				continue
			}
			nominees = append(nominees, Nominee{
				GameID:   e.game.GameID,
				Name:     e.game.Name,
				StatLine: fmt.Sprintf("入库即玩 %.1f 小时", e.hours),
				Score:    e.hours,
			})
		}
		return nominees
	},
}

var completionCategory = category{
	ID:    "completion",
	Title: "通关成就",
	nominate: func(ctx *periodContext) []Nominee {
		var nominees []Nominee
		for i := range ctx.entries {
			e := &ctx.entries[i]
			if e.game.Status != game.StatusCompleted || e.game.EndDate == nil {
				continue
			}
			if e.game.EndDate.Before(ctx.start) || e.game.EndDate.After(ctx.end) {
				continue
			}
			statLine := fmt.Sprintf("总投入 %.1f 小时", e.game.HoursPlayed)
			if days := metrics.DaysToComplete(e.game.StartDate, e.game.EndDate); days != nil {
				statLine = fmt.Sprintf("%d 天通关，总投入 %.1f 小时", *days, e.game.HoursPlayed)
			}
			nominees = append(nominees, Nominee{
				GameID:   e.game.GameID,
				Name:     e.game.Name,
				StatLine: statLine,
				Score:    e.game.HoursPlayed,
			})
		}
		return nominees
	},
}

var highScorerCategory = category{
	ID:    "high-scorer",
	Title: "口碑担当",
	nominate: func(ctx *periodContext) []Nominee {
		var nominees []Nominee
		for i := range ctx.entries {
			e := &ctx.entries[i]
			if e.game.Rating <= 0 {
				continue
			}
			nominees = append(nominees, Nominee{
				GameID:   e.game.GameID,
				Name:     e.game.Name,
				StatLine: fmt.Sprintf("评分 %.1f / 10", e.game.Rating),
				Score:    e.game.Rating,
			})
		}
		return nominees
	},
}

var comebackCategory = category{
	ID:    "comeback",
	Title: "回坑之作",
	nominate: func(ctx *periodContext) []Nominee {
		var nominees []Nominee
		for i := range ctx.entries {
			e := &ctx.entries[i]
			if e.lastBefore == nil {
				continue
			}
			gap := e.firstSession.DaysSince(*e.lastBefore)
			if gap < minComebackGapDays {
				continue
			}
			nominees = append(nominees, Nominee{
				GameID:   e.game.GameID,
				Name:     e.game.Name,
				StatLine: fmt.Sprintf("沉寂 %d 天后回归", gap),
				Score:    float64(gap),
			})
		}
		return nominees
	},
}

var gameOfPeriodCategory = category{
	ID:    "game-of-the-period",
	Title: "年度之作",
	nominate: func(ctx *periodContext) []Nominee {
		var nominees []Nominee
		for i := range ctx.entries {
			e := &ctx.entries[i]
			m := metrics.Compute(e.game)
			nominees = append(nominees, Nominee{
				GameID:   e.game.GameID,
				Name:     e.game.Name,
				StatLine: fmt.Sprintf("综合评分 %.1f", m.BlendScore),
				Score:    m.BlendScore,
			})
		}
		return nominees
	},
}
