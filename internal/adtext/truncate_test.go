package adtext

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  string
	}{
		{"empty", "", 10, ""},
		{"under limit", "Buy now", 30, "Buy now"},
		{"exactly at limit", "0123456789", 10, "0123456789"},
		{"breaks at word boundary", "Buy now and save today", 10, "Buy now…"},
		{"no boundary hard clip", "Supercalifragilisticexpialidocious", 10, "Supercali…"},
		{"boundary at midpoint not used", "abcde fghijklmn", 10, "abcde fgh…"},
		{"boundary just past midpoint", "abcdef ghijklmn", 10, "abcdef…"},
		{"limit one", "anything", 1, "…"},
		{"limit one single char", "a", 1, "a"},
		{"runes not bytes", "日本語のテキストです", 5, "日本語の…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.text, tt.limit); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.text, tt.limit, got, tt.want)
			}
		})
	}
}

func TestTruncateNeverExceedsLimit(t *testing.T) {
	texts := []string{
		"Buy now and save today",
		"Supercalifragilisticexpialidocious",
		"a b c d e f g h i j k l m n o p",
		strings.Repeat("word ", 40),
		"ütf-8 tëxt with mültibyte rünes everywhere in the string",
	}
	for _, text := range texts {
		for limit := 1; limit <= 40; limit++ {
			got := Truncate(text, limit)
			if len([]rune(text)) <= limit {
				if got != text {
					t.Fatalf("Truncate(%q, %d) changed text under the limit: %q", text, limit, got)
				}
				continue
			}
			if n := len([]rune(got)); n > limit {
				t.Fatalf("Truncate(%q, %d) produced %d runes: %q", text, limit, n, got)
			}
			if !strings.HasSuffix(got, "…") {
				t.Fatalf("Truncate(%q, %d) missing marker: %q", text, limit, got)
			}
		}
	}
}

func TestTruncateIdempotent(t *testing.T) {
	for limit := 1; limit <= 30; limit++ {
		once := Truncate("The quick brown fox jumps over the lazy dog", limit)
		twice := Truncate(once, limit)
		if once != twice {
			t.Fatalf("limit %d: second pass changed %q to %q", limit, once, twice)
		}
	}
}

func TestTruncateClampsLowLimit(t *testing.T) {
	if got := Truncate("anything", 0); got != "…" {
		t.Fatalf("expected bare marker for limit 0, got %q", got)
	}
	if got := Truncate("anything", -3); got != "…" {
		t.Fatalf("expected bare marker for negative limit, got %q", got)
	}
}

func BenchmarkTruncate(b *testing.B) {
	text := strings.Repeat("buy now and save today ", 8)
	for range b.N {
		Truncate(text, 75)
	}
}
