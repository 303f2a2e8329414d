package stats

import (
	"testing"
	"time"

	"github.com/SlpAus/game-library-insights-backend/internal/game"
	"github.com/SlpAus/game-library-insights-backend/pkg/civil"
)

func TestPeriodStatsForRange(t *testing.T) {
	start := civil.Date{Year: 2025, Month: time.June, Day: 1}
	end := civil.Date{Year: 2025, Month: time.June, Day: 7}

	games := []game.Game{
		{
			GameID: "in", Name: "Inside", Status: game.StatusInProgress,
			PlayLogs: []game.PlayLog{
				{Date: civil.Date{Year: 2025, Month: time.June, Day: 1}, Hours: 2}, // 边界日计入
				{Date: civil.Date{Year: 2025, Month: time.June, Day: 3}, Hours: 3},
				{Date: civil.Date{Year: 2025, Month: time.May, Day: 31}, Hours: 10}, // 窗口外
			},
		},
		{
			GameID: "out", Name: "Outside", Status: game.StatusInProgress,
			PlayLogs: []game.PlayLog{
				{Date: civil.Date{Year: 2025, Month: time.June, Day: 8}, Hours: 5},
			},
		},
	}

	stats := PeriodStatsForRange(games, start, end)

	if !almostEqual(stats.TotalHours, 5) {
		t.Errorf("TotalHours = %v, want 5", stats.TotalHours)
	}
	if stats.SessionCount != 2 {
		t.Errorf("SessionCount = %d, want 2", stats.SessionCount)
	}
	if stats.GamesPlayed != 1 {
		t.Errorf("GamesPlayed = %d, want 1", stats.GamesPlayed)
	}
	if stats.ActiveDays != 2 {
		t.Errorf("ActiveDays = %d, want 2", stats.ActiveDays)
	}
	if !almostEqual(stats.AvgSessionLength, 2.5) {
		t.Errorf("AvgSessionLength = %v, want 2.5", stats.AvgSessionLength)
	}
	if stats.MostPlayed == nil || stats.MostPlayed.GameID != "in" {
		t.Errorf("MostPlayed = %+v, want in", stats.MostPlayed)
	}
}

func TestPeriodStatsMostPlayedTieKeepsFirst(t *testing.T) {
	start := civil.Date{Year: 2025, Month: time.June, Day: 1}
	end := civil.Date{Year: 2025, Month: time.June, Day: 7}
	log := []game.PlayLog{{Date: civil.Date{Year: 2025, Month: time.June, Day: 2}, Hours: 4}}

	games := []game.Game{
		{GameID: "first", Name: "First", Status: game.StatusInProgress, PlayLogs: log},
		{GameID: "second", Name: "Second", Status: game.StatusInProgress, PlayLogs: log},
	}

	stats := PeriodStatsForRange(games, start, end)
	if stats.MostPlayed == nil || stats.MostPlayed.GameID != "first" {
		t.Errorf("tie should keep the first game, got %+v", stats.MostPlayed)
	}
}

func TestComparePeriodsWindowsAreAdjacent(t *testing.T) {
	now := civil.Date{Year: 2025, Month: time.June, Day: 30}
	games := []game.Game{
		{
			GameID: "g", Name: "G", Status: game.StatusInProgress,
			PlayLogs: []game.PlayLog{
				{Date: civil.Date{Year: 2025, Month: time.June, Day: 28}, Hours: 2},
				{Date: civil.Date{Year: 2025, Month: time.June, Day: 20}, Hours: 3},
			},
		},
	}

	current, previous := ComparePeriods(games, 7, now)

	if !previous.End.AddDays(1).Equal(current.Start) {
		t.Errorf("previous window must end right before current: %v vs %v", previous.End, current.Start)
	}
	if current.Start.DaysSince(current.End) != previous.Start.DaysSince(previous.End) {
		t.Error("both windows must have the same length")
	}
	if !almostEqual(current.TotalHours, 2) {
		t.Errorf("current TotalHours = %v, want 2", current.TotalHours)
	}
	if !almostEqual(previous.TotalHours, 3) {
		t.Errorf("previous TotalHours = %v, want 3", previous.TotalHours)
	}
}
