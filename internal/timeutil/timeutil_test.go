package timeutil

import (
	"errors"
	"testing"
)

func TestClockToMinutes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"morning", "09:00", 540, false},
		{"midnight", "00:00", 0, false},
		{"late evening", "23:59", 1439, false},
		{"single digit hour", "9:30", 570, false},
		{"no colon", "0930", 0, true},
		{"garbage hour", "ab:30", 0, true},
		{"garbage minute", "09:xx", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClockToMinutes(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				if !errors.Is(err, ErrFormat) {
					t.Errorf("expected ErrFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ClockToMinutes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestClockToMinutesOrZero(t *testing.T) {
	if got := ClockToMinutesOrZero("18:30"); got != 1110 {
		t.Errorf("expected 1110, got %d", got)
	}
	if got := ClockToMinutesOrZero("not a time"); got != 0 {
		t.Errorf("expected 0 for malformed input, got %d", got)
	}
}

func TestInstantMinuteOfDay(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"utc", "2024-05-10T10:30:00Z", 630},
		{"moscow offset", "2024-05-10T10:30:00+03:00", 630},
		{"negative offset", "2024-05-10T22:15:00-05:00", 1335},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InstantMinuteOfDay(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("InstantMinuteOfDay(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}

	if _, err := InstantMinuteOfDay("yesterday at noon"); err == nil {
		t.Error("expected error for malformed instant")
	}
}

// The minute of day must come from the instant's own embedded offset, never
// from a conversion to the host zone.
func TestInstantMinuteOfDayUsesEmbeddedOffset(t *testing.T) {
	// The same instant written in two zones reads as two different clocks.
	utc, err := InstantMinuteOfDay("2024-05-10T20:00:00Z")
	if err != nil {
		t.Fatal(err)
	}
	local, err := InstantMinuteOfDay("2024-05-10T23:00:00+03:00")
	if err != nil {
		t.Fatal(err)
	}
	if utc != 20*60 || local != 23*60 {
		t.Errorf("expected 1200 and 1380, got %d and %d", utc, local)
	}
}

func TestInstantDate(t *testing.T) {
	// 23:30 on the 10th in +03:00 is still the 10th in that offset, even
	// though the UTC instant is already past midnight of the 10th there.
	got, err := InstantDate("2024-05-10T23:30:00+03:00")
	if err != nil {
		t.Fatal(err)
	}
	if got != "2024-05-10" {
		t.Errorf("expected 2024-05-10, got %s", got)
	}

	got, err = InstantDate("2024-05-11T00:15:00+03:00")
	if err != nil {
		t.Fatal(err)
	}
	if got != "2024-05-11" {
		t.Errorf("expected 2024-05-11, got %s", got)
	}
}

func TestWindowDuration(t *testing.T) {
	tests := []struct {
		name     string
		open     int
		close    int
		expected int
	}{
		{"daytime window", 9 * 60, 18 * 60, 540},
		{"crosses midnight", 22 * 60, 2 * 60, 240},
		{"closes at midnight", 18 * 60, 0, 360},
		{"degenerate equal", 600, 600, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WindowDuration(tt.open, tt.close); got != tt.expected {
				t.Errorf("WindowDuration(%d, %d) = %d, want %d", tt.open, tt.close, got, tt.expected)
			}
		})
	}
}

func TestMinutesToClock(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{1439, "23:59"},
		{65, "01:05"},
	}

	for _, tt := range tests {
		if got := MinutesToClock(tt.minutes); got != tt.want {
			t.Errorf("MinutesToClock(%d) = %s, want %s", tt.minutes, got, tt.want)
		}
	}
}
