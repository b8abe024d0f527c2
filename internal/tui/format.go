package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/mvanek/adproof/internal/config"
)

// FormatCounter renders a used/limit character counter, e.g. "12/30".
func FormatCounter(used, limit int) string {
	return fmt.Sprintf("%d/%d", used, limit)
}

type counterLevel int

const (
	counterOK counterLevel = iota
	counterWarn
	counterOver
)

func counterLevelFor(used, limit int) counterLevel {
	switch {
	case used > limit:
		return counterOver
	case float64(used) >= config.CounterWarnRatio*float64(limit):
		return counterWarn
	default:
		return counterOK
	}
}

// CounterStyle picks the counter color for the used/limit ratio.
func CounterStyle(used, limit int) lipgloss.Style {
	switch counterLevelFor(used, limit) {
	case counterOver:
		return CurrentTheme.CounterOver
	case counterWarn:
		return CurrentTheme.CounterWarn
	default:
		return CurrentTheme.CounterOK
	}
}

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, "…")
}
