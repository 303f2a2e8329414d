package insight

import (
	"testing"
	"time"

	"github.com/SlpAus/game-library-insights-backend/internal/game"
	"github.com/SlpAus/game-library-insights-backend/pkg/civil"
)

func datePtr(year int, month time.Month, day int) *civil.Date {
	d := civil.Date{Year: year, Month: month, Day: day}
	return &d
}

func TestFindHiddenGems(t *testing.T) {
	games := []game.Game{
		// 合格: 低价、高分、时长充足
		{GameID: "gem", Name: "Gem", Price: 10, HoursPlayed: 50, Rating: 9, Status: game.StatusCompleted},
		// 时长不足
		{GameID: "short", Name: "Short", Price: 10, HoursPlayed: 5, Rating: 9, Status: game.StatusInProgress},
		// 太贵
		{GameID: "pricey", Name: "Pricey", Price: 60, HoursPlayed: 80, Rating: 9, Status: game.StatusCompleted},
		// 评分不够
		{GameID: "meh", Name: "Meh", Price: 10, HoursPlayed: 40, Rating: 6, Status: game.StatusCompleted},
		// 免费获得的不算“买到的宝石”
		{GameID: "free", Name: "Free", Price: 0, HoursPlayed: 100, Rating: 10, Status: game.StatusCompleted, AcquiredFree: true},
	}

	gems := FindHiddenGems(games)
	if len(gems) != 1 {
		t.Fatalf("got %d gems, want 1: %+v", len(gems), gems)
	}
	if gems[0].GameID != "gem" {
		t.Errorf("gem = %q, want %q", gems[0].GameID, "gem")
	}
	if gems[0].Score <= 0 {
		t.Errorf("score should be positive, got %v", gems[0].Score)
	}
}

func TestFindHiddenGemsSortedAndCapped(t *testing.T) {
	var games []game.Game
	// 价格逐个升高，价值密度逐个降低
	prices := []float64{2, 4, 6, 8, 10, 12, 14}
	for i, p := range prices {
		games = append(games, game.Game{
			GameID: string(rune('a' + i)), Name: "G", Price: p,
			HoursPlayed: 20, Rating: 9, Status: game.StatusCompleted,
		})
	}

	gems := FindHiddenGems(games)
	if len(gems) != 5 {
		t.Fatalf("list must cap at 5, got %d", len(gems))
	}
	for i := 1; i < len(gems); i++ {
		if gems[i].Score > gems[i-1].Score {
			t.Fatalf("gems must be sorted by score descending: %v then %v", gems[i-1].Score, gems[i].Score)
		}
	}
	if gems[0].GameID != "a" {
		t.Errorf("cheapest game should score highest, got %q", gems[0].GameID)
	}
}

func TestFindRegretPurchases(t *testing.T) {
	today := civil.Date{Year: 2025, Month: time.August, Day: 31}

	games := []game.Game{
		// 贵、买了一年、几乎没玩 → 高后悔分
		{GameID: "regret", Name: "Regret", Price: 60, HoursPlayed: 1, Status: game.StatusNotStarted, PurchaseDate: datePtr(2024, time.August, 1)},
		// 贵但玩得很多 → 不后悔
		{GameID: "loved", Name: "Loved", Price: 60, HoursPlayed: 120, Status: game.StatusInProgress, PurchaseDate: datePtr(2024, time.August, 1)},
		// 便宜的谈不上后悔
		{GameID: "cheap", Name: "Cheap", Price: 5, HoursPlayed: 0, Status: game.StatusNotStarted, PurchaseDate: datePtr(2024, time.August, 1)},
		// 刚买一天的还有机会，后悔分不到门槛
		{GameID: "new", Name: "New", Price: 60, HoursPlayed: 0, Status: game.StatusNotStarted, PurchaseDate: datePtr(2025, time.August, 30)},
	}

	regrets := FindRegretPurchases(games, today)
	if len(regrets) != 1 {
		t.Fatalf("got %d regrets, want 1: %+v", len(regrets), regrets)
	}
	r := regrets[0]
	if r.GameID != "regret" {
		t.Errorf("regret = %q, want %q", r.GameID, "regret")
	}
	// 一年以上，期望时长到达上限
	if r.ExpectedHours != 50 {
		t.Errorf("ExpectedHours = %v, want capped 50", r.ExpectedHours)
	}
}

func TestFindRegretPurchasesWithoutPurchaseDate(t *testing.T) {
	today := civil.Date{Year: 2025, Month: time.August, Day: 31}
	games := []game.Game{
		// 无购买日期按假定持有一年处理
		{GameID: "old", Name: "Old", Price: 40, HoursPlayed: 0, Status: game.StatusNotStarted},
	}

	regrets := FindRegretPurchases(games, today)
	if len(regrets) != 1 {
		t.Fatalf("got %d regrets, want 1", len(regrets))
	}
	if regrets[0].ExpectedHours != 50 {
		t.Errorf("ExpectedHours = %v, want 50", regrets[0].ExpectedHours)
	}
}

func TestFindShelfWarmers(t *testing.T) {
	today := civil.Date{Year: 2025, Month: time.August, Day: 31}

	games := []game.Game{
		// 40天未开玩 → 上榜
		{GameID: "dusty", Name: "Dusty", Price: 30, Status: game.StatusNotStarted, PurchaseDate: datePtr(2025, time.July, 22)},
		// 20天还在门槛内
		{GameID: "recent", Name: "Recent", Price: 30, Status: game.StatusNotStarted, PurchaseDate: datePtr(2025, time.August, 11)},
		// 已开玩的不积灰
		{GameID: "playing", Name: "Playing", Price: 30, HoursPlayed: 4, Status: game.StatusInProgress, PurchaseDate: datePtr(2025, time.June, 1)},
		// 免费入库的不算
		{GameID: "free", Name: "Free", Price: 0, Status: game.StatusNotStarted, PurchaseDate: datePtr(2025, time.January, 1)},
	}

	warmers := FindShelfWarmers(games, today)
	if len(warmers) != 1 {
		t.Fatalf("got %d shelf warmers, want 1: %+v", len(warmers), warmers)
	}
	w := warmers[0]
	if w.GameID != "dusty" {
		t.Errorf("shelf warmer = %q, want %q", w.GameID, "dusty")
	}
	if w.DaysSitting != 40 {
		t.Errorf("DaysSitting = %d, want 40", w.DaysSitting)
	}
}
