package tui

import "testing"

func TestFormatCounter(t *testing.T) {
	if got := FormatCounter(12, 30); got != "12/30" {
		t.Fatalf("expected 12/30, got %q", got)
	}
}

func TestCounterLevelThresholds(t *testing.T) {
	cases := []struct {
		name  string
		used  int
		limit int
		want  counterLevel
	}{
		{"empty", 0, 30, counterOK},
		{"below warn", 26, 30, counterOK},
		{"at warn ratio", 27, 30, counterWarn},
		{"at limit", 30, 30, counterWarn},
		{"over limit", 31, 30, counterOver},
		{"description warn", 81, 90, counterWarn},
	}
	for _, tc := range cases {
		if got := counterLevelFor(tc.used, tc.limit); got != tc.want {
			t.Fatalf("%s: expected level %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestTruncateLabel(t *testing.T) {
	if got := truncateLabel("short", 10); got != "short" {
		t.Fatalf("expected unchanged label, got %q", got)
	}
	got := truncateLabel("a very long label indeed", 10)
	if got == "a very long label indeed" {
		t.Fatalf("expected truncation")
	}
	if got := truncateLabel("anything", 0); got != "" {
		t.Fatalf("expected empty for zero width, got %q", got)
	}
}
