package stats

import (
	"testing"
	"time"

	"github.com/SlpAus/game-library-insights-backend/pkg/civil"
)

func TestPeriodKey(t *testing.T) {
	tests := []struct {
		name string
		pt   PeriodType
		t    time.Time
		want string
	}{
		{name: "week", pt: PeriodWeek, t: time.Date(2025, time.August, 31, 12, 0, 0, 0, time.UTC), want: "week-2025-35"},
		{name: "iso week belongs to next year", pt: PeriodWeek, t: time.Date(2025, time.December, 29, 0, 0, 0, 0, time.UTC), want: "week-2026-01"},
		{name: "month zero padded", pt: PeriodMonth, t: time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC), want: "month-2025-03"},
		{name: "quarter", pt: PeriodQuarter, t: time.Date(2025, time.August, 31, 0, 0, 0, 0, time.UTC), want: "quarter-2025-Q3"},
		{name: "year", pt: PeriodYear, t: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), want: "year-2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PeriodKey(tt.pt, tt.t); got != tt.want {
				t.Errorf("PeriodKey(%s, %v) = %q, want %q", tt.pt, tt.t, got, tt.want)
			}
		})
	}
}

func TestPeriodKeyIsStableWithinPeriod(t *testing.T) {
	monday := time.Date(2025, time.August, 25, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, time.August, 31, 23, 0, 0, 0, time.UTC)
	if PeriodKey(PeriodWeek, monday) != PeriodKey(PeriodWeek, sunday) {
		t.Error("every day of an ISO week must map to the same key")
	}
}

func TestPeriodRange(t *testing.T) {
	tests := []struct {
		name      string
		pt        PeriodType
		t         time.Time
		wantStart civil.Date
		wantEnd   civil.Date
	}{
		{
			name: "week runs monday to sunday",
			pt:   PeriodWeek, t: time.Date(2025, time.August, 31, 0, 0, 0, 0, time.UTC), // 周日
			wantStart: civil.Date{Year: 2025, Month: time.August, Day: 25},
			wantEnd:   civil.Date{Year: 2025, Month: time.August, Day: 31},
		},
		{
			name: "leap february",
			pt:   PeriodMonth, t: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
			wantStart: civil.Date{Year: 2024, Month: time.February, Day: 1},
			wantEnd:   civil.Date{Year: 2024, Month: time.February, Day: 29},
		},
		{
			name: "third quarter",
			pt:   PeriodQuarter, t: time.Date(2025, time.August, 31, 0, 0, 0, 0, time.UTC),
			wantStart: civil.Date{Year: 2025, Month: time.July, Day: 1},
			wantEnd:   civil.Date{Year: 2025, Month: time.September, Day: 30},
		},
		{
			name: "year",
			pt:   PeriodYear, t: time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
			wantStart: civil.Date{Year: 2025, Month: time.January, Day: 1},
			wantEnd:   civil.Date{Year: 2025, Month: time.December, Day: 31},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := PeriodRange(tt.pt, tt.t)
			if !start.Equal(tt.wantStart) || !end.Equal(tt.wantEnd) {
				t.Errorf("PeriodRange = [%v, %v], want [%v, %v]", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestPeriodTypeIsValid(t *testing.T) {
	for _, pt := range []PeriodType{PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear} {
		if !pt.IsValid() {
			t.Errorf("%s should be valid", pt)
		}
	}
	if PeriodType("decade").IsValid() {
		t.Error("decade should not be valid")
	}
}
