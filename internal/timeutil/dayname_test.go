package timeutil

import "testing"

func TestClassifyDay(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		reference string
		want      string
	}{
		{"same day", "2024-05-10", "2024-05-10", "today"},
		{"next day", "2024-05-11", "2024-05-10", "tomorrow"},
		{"later this week", "2024-05-15", "2024-05-10", "Wednesday"},
		{"yesterday gets weekday", "2024-05-09", "2024-05-10", "Thursday"},
		{"next week", "2024-05-18", "2024-05-10", "Saturday"},
		{"bad date", "not-a-date", "2024-05-10", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyDay(tt.date, tt.reference); got != tt.want {
				t.Errorf("ClassifyDay(%q, %q) = %q, want %q", tt.date, tt.reference, got, tt.want)
			}
		})
	}
}

func TestClassifyDayIn(t *testing.T) {
	if got := ClassifyDayIn("2024-05-15", "2024-05-10", LocaleRU); got != "Среда" {
		t.Errorf("expected Среда, got %q", got)
	}
	// Relative labels are locale-independent keys for the rendering layer.
	if got := ClassifyDayIn("2024-05-10", "2024-05-10", LocaleRU); got != "today" {
		t.Errorf("expected today, got %q", got)
	}
	// Unknown locales fall back to English.
	if got := ClassifyDayIn("2024-05-15", "2024-05-10", Locale("de")); got != "Wednesday" {
		t.Errorf("expected Wednesday, got %q", got)
	}
}
