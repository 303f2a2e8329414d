package insight

import (
	"testing"
	"time"

	"github.com/SlpAus/game-library-insights-backend/internal/game"
	"github.com/SlpAus/game-library-insights-backend/pkg/civil"
)

func TestMoodArcBuckets(t *testing.T) {
	// 周日，本周从8月25日(周一)开始
	today := civil.Date{Year: 2025, Month: time.August, Day: 31}

	games := []game.Game{
		{
			GameID: "g", Name: "G", Status: game.StatusInProgress,
			PlayLogs: []game.PlayLog{
				// 本周两次会话
				{Date: civil.Date{Year: 2025, Month: time.August, Day: 26}, Hours: 2},
				{Date: civil.Date{Year: 2025, Month: time.August, Day: 27}, Hours: 1},
				// 上周一次
				{Date: civil.Date{Year: 2025, Month: time.August, Day: 20}, Hours: 3},
				// 窗口之外
				{Date: civil.Date{Year: 2025, Month: time.January, Day: 1}, Hours: 10},
			},
		},
	}

	points := MoodArc(games, 4, today)
	if len(points) != 4 {
		t.Fatalf("got %d weeks, want 4", len(points))
	}

	// 最早的周在前，最后一项是本周
	current := points[3]
	if !current.WeekStart.Equal(civil.Date{Year: 2025, Month: time.August, Day: 25}) {
		t.Fatalf("current WeekStart = %v, want 2025-08-25", current.WeekStart)
	}
	if current.Sessions != 2 || current.ActiveDays != 2 {
		t.Errorf("current week = %+v, want 2 sessions over 2 days", current)
	}

	previous := points[2]
	if previous.Sessions != 1 || previous.Hours != 3 {
		t.Errorf("previous week = %+v, want one 3h session", previous)
	}

	// 没有活动的周出现在序列中，强度为0
	if points[0].Intensity != 0 || points[0].Sessions != 0 {
		t.Errorf("idle week = %+v, want all zero", points[0])
	}
}

func TestMoodArcIntensityCapped(t *testing.T) {
	today := civil.Date{Year: 2025, Month: time.August, Day: 31}

	// 一周内大量高强度会话，确保各因子都打满
	var logs []game.PlayLog
	for day := 25; day <= 31; day++ {
		for i := 0; i < 3; i++ {
			logs = append(logs, game.PlayLog{
				Date:  civil.Date{Year: 2025, Month: time.August, Day: day},
				Hours: 4,
			})
		}
	}
	games := []game.Game{{GameID: "g", Name: "G", Status: game.StatusInProgress, PlayLogs: logs}}

	points := MoodArc(games, 1, today)
	if len(points) != 1 {
		t.Fatalf("got %d weeks, want 1", len(points))
	}
	if points[0].Intensity != 100 {
		t.Errorf("Intensity = %v, want capped at 100", points[0].Intensity)
	}
	if points[0].ActiveDays != 7 {
		t.Errorf("ActiveDays = %d, want 7", points[0].ActiveDays)
	}
}
