package stats

import (
	"testing"
	"time"

	"github.com/SlpAus/game-library-insights-backend/internal/game"
	"github.com/SlpAus/game-library-insights-backend/pkg/civil"
)

func gameWithLogDays(id string, days ...civil.Date) game.Game {
	logs := make([]game.PlayLog, 0, len(days))
	for _, d := range days {
		logs = append(logs, game.PlayLog{Date: d, Hours: 1})
	}
	return game.Game{GameID: id, Name: id, Status: game.StatusInProgress, PlayLogs: logs}
}

func TestStreaks(t *testing.T) {
	today := civil.Date{Year: 2025, Month: time.August, Day: 31}

	tests := []struct {
		name        string
		days        []civil.Date
		wantCurrent int
		wantLongest int
	}{
		{
			name:        "played three days running",
			days:        []civil.Date{today, today.AddDays(-1), today.AddDays(-2)},
			wantCurrent: 3,
			wantLongest: 3,
		},
		{
			name:        "today not yet played keeps streak alive",
			days:        []civil.Date{today.AddDays(-1), today.AddDays(-2)},
			wantCurrent: 2,
			wantLongest: 2,
		},
		{
			name:        "gap before yesterday breaks streak",
			days:        []civil.Date{today.AddDays(-5), today.AddDays(-6)},
			wantCurrent: 0,
			wantLongest: 2,
		},
		{
			name: "longest run is in the past",
			days: []civil.Date{
				today,
				today.AddDays(-10), today.AddDays(-11), today.AddDays(-12), today.AddDays(-13),
			},
			wantCurrent: 1,
			wantLongest: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			games := []game.Game{gameWithLogDays("g", tt.days...)}
			info := Streaks(games, today)
			if info.Current != tt.wantCurrent {
				t.Errorf("Current = %d, want %d", info.Current, tt.wantCurrent)
			}
			if info.Longest != tt.wantLongest {
				t.Errorf("Longest = %d, want %d", info.Longest, tt.wantLongest)
			}
		})
	}
}

func TestStreaksEmptyAndWishlist(t *testing.T) {
	today := civil.Date{Year: 2025, Month: time.August, Day: 31}

	info := Streaks(nil, today)
	if info.Current != 0 || info.Longest != 0 || info.LastPlayed != nil {
		t.Errorf("empty library: got %+v, want zero streaks", info)
	}

	// 愿望单游戏的记录(脏数据)不参与连击
	wish := gameWithLogDays("w", today)
	wish.Status = game.StatusWishlist
	info = Streaks([]game.Game{wish}, today)
	if info.Current != 0 {
		t.Errorf("wishlist logs must not count, got Current = %d", info.Current)
	}
}

func TestStreaksMergesAcrossGames(t *testing.T) {
	today := civil.Date{Year: 2025, Month: time.August, Day: 31}
	games := []game.Game{
		gameWithLogDays("a", today),
		gameWithLogDays("b", today.AddDays(-1)),
	}

	info := Streaks(games, today)
	if info.Current != 2 {
		t.Errorf("Current = %d, want 2 across games", info.Current)
	}
	if info.LastPlayed == nil || !info.LastPlayed.Equal(today) {
		t.Errorf("LastPlayed = %v, want %v", info.LastPlayed, today)
	}
}
