package insight

import (
	"math"
	"testing"

	"github.com/SlpAus/game-library-insights-backend/internal/game"
)

func TestPlatformPreference(t *testing.T) {
	games := []game.Game{
		{GameID: "a", Platform: "PC", HoursPlayed: 60, Status: game.StatusInProgress},
		{GameID: "b", Platform: "Switch", HoursPlayed: 30, Status: game.StatusCompleted},
		{GameID: "c", Platform: "", HoursPlayed: 10, Status: game.StatusInProgress},
		// 零时长不参与偏好
		{GameID: "d", Platform: "PS5", HoursPlayed: 0, Status: game.StatusNotStarted},
	}

	prefs := PlatformPreference(games)
	if len(prefs) != 3 {
		t.Fatalf("got %d preferences, want 3: %+v", len(prefs), prefs)
	}
	if prefs[0].Name != "PC" || prefs[1].Name != "Switch" || prefs[2].Name != unknownBucket {
		t.Errorf("order = %q, %q, %q; want PC, Switch, Unknown", prefs[0].Name, prefs[1].Name, prefs[2].Name)
	}
	if math.Abs(prefs[0].Share-60) > 1e-9 {
		t.Errorf("PC share = %v, want 60", prefs[0].Share)
	}

	var total float64
	for _, p := range prefs {
		total += p.Share
	}
	if math.Abs(total-100) > 1e-9 {
		t.Errorf("shares sum to %v, want 100", total)
	}
}

func TestPreferenceEmpty(t *testing.T) {
	if prefs := GenrePreference(nil); prefs != nil {
		t.Errorf("no played hours should give nil, got %+v", prefs)
	}
}

func TestDiscountEffectiveness(t *testing.T) {
	full := 40.0
	games := []game.Game{
		// 折扣购入: 原价40实付20，省20
		{GameID: "a", Price: 20, OriginalPrice: &full, HoursPlayed: 30, Rating: 8, Status: game.StatusCompleted},
		// 原价购入
		{GameID: "b", Price: 40, HoursPlayed: 10, Rating: 6, Status: game.StatusInProgress},
		// 原价低于实付的脏数据按原价购入处理
		{GameID: "c", Price: 50, OriginalPrice: &full, HoursPlayed: 10, Rating: 7, Status: game.StatusInProgress},
		// 免费游戏不参与比较
		{GameID: "d", Price: 0, HoursPlayed: 100, Rating: 9, Status: game.StatusInProgress, AcquiredFree: true},
	}

	report := DiscountEffectiveness(games)
	if report.DiscountedCount != 1 || report.FullPriceCount != 2 {
		t.Fatalf("counts = %d/%d, want 1/2", report.DiscountedCount, report.FullPriceCount)
	}
	if math.Abs(report.TotalSaved-20) > 1e-9 {
		t.Errorf("TotalSaved = %v, want 20", report.TotalSaved)
	}
	if math.Abs(report.AvgHoursDiscounted-30) > 1e-9 {
		t.Errorf("AvgHoursDiscounted = %v, want 30", report.AvgHoursDiscounted)
	}
	if math.Abs(report.AvgHoursFullPrice-10) > 1e-9 {
		t.Errorf("AvgHoursFullPrice = %v, want 10", report.AvgHoursFullPrice)
	}
	if math.Abs(report.HoursRatio-3) > 1e-9 {
		t.Errorf("HoursRatio = %v, want 3", report.HoursRatio)
	}
}
