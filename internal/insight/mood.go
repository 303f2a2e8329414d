package insight

import (
	"math"

	"github.com/SlpAus/game-library-insights-backend/internal/game"
	"github.com/SlpAus/game-library-insights-backend/pkg/civil"
)

// --- 每周强度的计分因子 ---
// 强度(0-100)由三个因子按固定分值上限合成：
//
//	时长:   每小时5分，上限50分
//	会话数: 每次会话5分，上限30分
//	活跃度: 活跃天数/7 * 20分
const (
	pointsPerHour    = 5.0
	hoursPointsCap   = 50.0
	pointsPerSession = 5.0
	sessionPointsCap = 30.0
	activeDayPoints  = 20.0
	daysPerWeek      = 7
)

// DefaultMoodWeeks 是情绪曲线默认回看的周数
const DefaultMoodWeeks = 8

// MoodArc 计算最近weeks周的逐周游玩强度曲线。
// 周从周一开始；最早的周在前。
func MoodArc(games []game.Game, weeks int, today civil.Date) []MoodPoint {
	if weeks <= 0 {
		weeks = DefaultMoodWeeks
	}

	// 本周的周一
	weekday := int(today.Weekday())
	currentMonday := today.AddDays(-((weekday + 6) % 7))

	points := make([]MoodPoint, weeks)
	for i := 0; i < weeks; i++ {
		points[i] = MoodPoint{WeekStart: currentMonday.AddDays(-7 * (weeks - 1 - i))}
	}

	activeDays := make([]map[civil.Date]struct{}, weeks)
	for i := range activeDays {
		activeDays[i] = make(map[civil.Date]struct{})
	}

	earliest := points[0].WeekStart
	for i := range games {
		g := &games[i]
		if !g.Owned() {
			continue
		}
		for _, entry := range g.PlayLogs {
			if entry.Date.Before(earliest) || entry.Date.After(currentMonday.AddDays(6)) {
				continue
			}
			index := entry.Date.DaysSince(earliest) / daysPerWeek
			if index < 0 || index >= weeks {
				continue
			}
			points[index].Hours += entry.Hours
			points[index].Sessions++
			activeDays[index][entry.Date] = struct{}{}
		}
	}

	for i := range points {
		points[i].ActiveDays = len(activeDays[i])
		hoursPoints := math.Min(points[i].Hours*pointsPerHour, hoursPointsCap)
		sessionPoints := math.Min(float64(points[i].Sessions)*pointsPerSession, sessionPointsCap)
		activePoints := float64(points[i].ActiveDays) / daysPerWeek * activeDayPoints
		points[i].Intensity = math.Min(hoursPoints+sessionPoints+activePoints, 100)
	}
	return points
}
