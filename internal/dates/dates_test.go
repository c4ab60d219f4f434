package dates

import (
	"testing"
	"time"
)

func TestKeyFor(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want string
	}{
		{
			name: "midday",
			time: time.Date(2025, 3, 15, 12, 30, 0, 0, time.UTC),
			want: "2025-03-15",
		},
		{
			name: "just before midnight",
			time: time.Date(2025, 3, 15, 23, 59, 59, 0, time.UTC),
			want: "2025-03-15",
		},
		{
			name: "midnight",
			time: time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC),
			want: "2025-03-16",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyFor(tt.time); got != tt.want {
				t.Errorf("KeyFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		n       int
		want    string
		wantErr bool
	}{
		{
			name: "forward one day",
			key:  "2025-03-15",
			n:    1,
			want: "2025-03-16",
		},
		{
			name: "backward one day",
			key:  "2025-03-15",
			n:    -1,
			want: "2025-03-14",
		},
		{
			name: "zero offset",
			key:  "2025-03-15",
			n:    0,
			want: "2025-03-15",
		},
		{
			name: "across month boundary",
			key:  "2025-01-31",
			n:    1,
			want: "2025-02-01",
		},
		{
			name: "across year boundary backward",
			key:  "2025-01-01",
			n:    -1,
			want: "2024-12-31",
		},
		{
			name: "leap day",
			key:  "2024-02-28",
			n:    1,
			want: "2024-02-29",
		},
		{
			name: "non leap year skips feb 29",
			key:  "2025-02-28",
			n:    1,
			want: "2025-03-01",
		},
		{
			name: "across US DST spring forward",
			key:  "2025-03-08",
			n:    1,
			want: "2025-03-09",
		},
		{
			name: "full year backward",
			key:  "2025-06-01",
			n:    -365,
			want: "2024-06-01",
		},
		{
			name: "full year backward across leap day",
			key:  "2024-06-01",
			n:    -365,
			want: "2023-06-02",
		},
		{
			name:    "invalid key",
			key:     "not-a-date",
			n:       1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddDays(tt.key, tt.n)
			if (err != nil) != tt.wantErr {
				t.Errorf("AddDays() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("AddDays(%q, %d) = %q, want %q", tt.key, tt.n, got, tt.want)
			}
		})
	}
}

func TestAddDaysRoundTrip(t *testing.T) {
	// Walking n days forward then n days back must always return the
	// original key, for a spread of keys and offsets.
	keys := []string{"2024-02-29", "2025-03-09", "2025-11-02", "2025-12-31"}
	offsets := []int{1, 7, 30, 365}

	for _, key := range keys {
		for _, n := range offsets {
			forward, err := AddDays(key, n)
			if err != nil {
				t.Fatalf("AddDays(%q, %d) error: %v", key, n, err)
			}
			back, err := AddDays(forward, -n)
			if err != nil {
				t.Fatalf("AddDays(%q, %d) error: %v", forward, -n, err)
			}
			if back != key {
				t.Errorf("round trip %q +%d -%d = %q, want %q", key, n, n, back, key)
			}
		}
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"2025-03-15", true},
		{"2024-02-29", true},
		{"2025-02-29", false},
		{"2025-13-01", false},
		{"03/15/2025", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := Valid(tt.key); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{
			name:     "empty string returns local",
			timezone: "",
			wantErr:  false,
		},
		{
			name:     "Local returns local",
			timezone: "Local",
			wantErr:  false,
		},
		{
			name:     "valid timezone UTC",
			timezone: "UTC",
			wantErr:  false,
		},
		{
			name:     "valid timezone America/New_York",
			timezone: "America/New_York",
			wantErr:  false,
		},
		{
			name:     "invalid timezone",
			timezone: "Invalid/Timezone",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadLocation() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && loc == nil {
				t.Errorf("LoadLocation() returned nil location without error")
			}
		})
	}
}

func TestLabels(t *testing.T) {
	// 2025-03-15 is a Saturday.
	if got := WeekdayLabel("2025-03-15"); got != "Sat" {
		t.Errorf("WeekdayLabel() = %q, want %q", got, "Sat")
	}
	if got := DayOfMonthLabel("2025-03-05"); got != "5" {
		t.Errorf("DayOfMonthLabel() = %q, want %q", got, "5")
	}
	if got := WeekdayLabel("bogus"); got != "" {
		t.Errorf("WeekdayLabel(bogus) = %q, want empty", got)
	}
}
