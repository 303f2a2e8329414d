package civil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "valid date", input: "2025-03-14", want: Date{Year: 2025, Month: time.March, Day: 14}},
		{name: "leap day", input: "2024-02-29", want: Date{Year: 2024, Month: time.February, Day: 29}},
		{name: "invalid leap day", input: "2023-02-29", wantErr: true},
		{name: "not a date", input: "yesterday", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		base Date
		n    int
		want Date
	}{
		{name: "within month", base: Date{2025, time.June, 10}, n: 5, want: Date{2025, time.June, 15}},
		{name: "across month", base: Date{2025, time.June, 28}, n: 5, want: Date{2025, time.July, 3}},
		{name: "across year backward", base: Date{2025, time.January, 2}, n: -3, want: Date{2024, time.December, 30}},
		{name: "leap february", base: Date{2024, time.February, 28}, n: 1, want: Date{2024, time.February, 29}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.base.AddDays(tt.n); !got.Equal(tt.want) {
				t.Errorf("%v.AddDays(%d) = %v, want %v", tt.base, tt.n, got, tt.want)
			}
		})
	}
}

func TestDaysSince(t *testing.T) {
	a := Date{2025, time.March, 1}
	b := Date{2025, time.February, 25}
	if got := a.DaysSince(b); got != 4 {
		t.Errorf("DaysSince = %d, want 4", got)
	}
	if got := b.DaysSince(a); got != -4 {
		t.Errorf("reverse DaysSince = %d, want -4", got)
	}
}

func TestMonthKey(t *testing.T) {
	d := Date{2025, time.March, 7}
	if got := d.MonthKey(); got != "2025-03" {
		t.Errorf("MonthKey = %q, want %q", got, "2025-03")
	}
}

func TestOrdering(t *testing.T) {
	earlier := Date{2024, time.December, 31}
	later := Date{2025, time.January, 1}
	if !earlier.Before(later) {
		t.Error("expected earlier.Before(later)")
	}
	if !later.After(earlier) {
		t.Error("expected later.After(earlier)")
	}
	if earlier.Before(earlier) || earlier.After(earlier) {
		t.Error("a date must not order before or after itself")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := Date{2025, time.August, 31}
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(data) != `"2025-08-31"` {
		t.Fatalf("MarshalJSON = %s, want %q", data, `"2025-08-31"`)
	}

	var parsed Date
	if err := parsed.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if !parsed.Equal(d) {
		t.Errorf("round trip = %v, want %v", parsed, d)
	}
}

func TestScan(t *testing.T) {
	want := Date{2025, time.May, 20}

	var fromTime Date
	if err := fromTime.Scan(time.Date(2025, time.May, 20, 13, 45, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Scan(time.Time): %v", err)
	}
	if !fromTime.Equal(want) {
		t.Errorf("Scan(time.Time) = %v, want %v", fromTime, want)
	}

	var fromString Date
	if err := fromString.Scan("2025-05-20"); err != nil {
		t.Fatalf("Scan(string): %v", err)
	}
	if !fromString.Equal(want) {
		t.Errorf("Scan(string) = %v, want %v", fromString, want)
	}
}
