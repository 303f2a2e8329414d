package metrics

import (
	"math"
	"testing"
	"time"

	"github.com/SlpAus/game-library-insights-backend/internal/game"
	"github.com/SlpAus/game-library-insights-backend/pkg/civil"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCostPerHour(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		hours float64
		want  float64
	}{
		{name: "typical", price: 20, hours: 40, want: 0.5},
		{name: "unplayed is zero not error", price: 60, hours: 0, want: 0},
		{name: "free game", price: 0, hours: 12, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CostPerHour(tt.price, tt.hours); !almostEqual(got, tt.want) {
				t.Errorf("CostPerHour(%v, %v) = %v, want %v", tt.price, tt.hours, got, tt.want)
			}
		})
	}
}

func TestValueRatingFor(t *testing.T) {
	tests := []struct {
		cph  float64
		want ValueRating
	}{
		{0, RatingExcellent},
		{1.0, RatingExcellent},
		{1.01, RatingGood},
		{3.0, RatingGood},
		{4.5, RatingFair},
		{5.0, RatingFair},
		{5.01, RatingPoor},
	}

	for _, tt := range tests {
		if got := ValueRatingFor(tt.cph); got != tt.want {
			t.Errorf("ValueRatingFor(%v) = %v, want %v", tt.cph, got, tt.want)
		}
	}
}

func TestBlendScore(t *testing.T) {
	// 成本为0时性价比部分拿满10分
	if got := BlendScore(9, 0); !almostEqual(got, 100) {
		t.Errorf("BlendScore(9, 0) = %v, want 100", got)
	}
	// 成本达到基准值时性价比部分为0
	if got := BlendScore(9, BaselineCostPerHour); !almostEqual(got, 90) {
		t.Errorf("BlendScore(9, baseline) = %v, want 90", got)
	}
	// 超过基准值不再继续扣分
	if got := BlendScore(9, BaselineCostPerHour*3); !almostEqual(got, 90) {
		t.Errorf("BlendScore(9, 3*baseline) = %v, want 90", got)
	}
}

func TestROI(t *testing.T) {
	if got := ROI(8, 50, 20); !almostEqual(got, 20) {
		t.Errorf("ROI(8, 50, 20) = %v, want 20", got)
	}
	// 免费游戏不做除法
	if got := ROI(8, 50, 0); !almostEqual(got, 400) {
		t.Errorf("ROI(8, 50, 0) = %v, want 400", got)
	}
}

func TestDaysToComplete(t *testing.T) {
	start := civil.Date{Year: 2025, Month: time.January, Day: 1}
	end := civil.Date{Year: 2025, Month: time.January, Day: 15}

	if got := DaysToComplete(&start, &end); got == nil || *got != 14 {
		t.Errorf("DaysToComplete = %v, want 14", got)
	}
	// 日期颠倒取绝对值
	if got := DaysToComplete(&end, &start); got == nil || *got != 14 {
		t.Errorf("reversed DaysToComplete = %v, want 14", got)
	}
	if got := DaysToComplete(nil, &end); got != nil {
		t.Errorf("missing start should give nil, got %v", *got)
	}
}

func TestCompute(t *testing.T) {
	g := &game.Game{
		GameID:      "g1",
		Name:        "Example",
		Price:       20,
		HoursPlayed: 40,
		Rating:      9,
		Status:      game.StatusCompleted,
	}

	m := Compute(g)
	if !almostEqual(m.CostPerHour, 0.5) {
		t.Errorf("CostPerHour = %v, want 0.5", m.CostPerHour)
	}
	if m.ValueRating != RatingExcellent {
		t.Errorf("ValueRating = %v, want Excellent", m.ValueRating)
	}
	if m.DaysToComplete != nil {
		t.Errorf("DaysToComplete without dates should be nil, got %v", *m.DaysToComplete)
	}
}
