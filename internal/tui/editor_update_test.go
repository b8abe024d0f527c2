package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvanek/adproof/internal/adtext"
	"github.com/mvanek/adproof/internal/config"
)

func setupTestEditor(t *testing.T) EditorModel {
	t.Helper()
	m, err := NewEditorModel(config.DefaultSettings())
	if err != nil {
		t.Fatalf("NewEditorModel failed: %v", err)
	}
	t.Cleanup(func() { SetTheme("default") })
	m.view.width = 110
	m.view.height = 34
	return m
}

func typeString(t *testing.T, m EditorModel, text string) EditorModel {
	t.Helper()
	for _, r := range text {
		model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = model.(EditorModel)
	}
	return m
}

func TestNewEditorModelRejectsBadLimits(t *testing.T) {
	settings := config.DefaultSettings()
	settings.HeadlineLimit = 0
	if _, err := NewEditorModel(settings); !errors.Is(err, adtext.ErrInvalidLimit) {
		t.Fatalf("expected ErrInvalidLimit, got %v", err)
	}
}

func TestTypingFillsFocusedDraftSlot(t *testing.T) {
	m := setupTestEditor(t)
	m = typeString(t, m, "Buy now")
	if got := m.draft.Headlines[0].Value; got != "Buy now" {
		t.Fatalf("expected first headline %q, got %q", "Buy now", got)
	}
	if got := m.inputs.fields[fieldHeadline1].Value(); got != "Buy now" {
		t.Fatalf("expected input to hold typed text, got %q", got)
	}
}

func TestTabCyclesFieldFocus(t *testing.T) {
	m := setupTestEditor(t)
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = model.(EditorModel)
	if m.view.focusedField != fieldHeadline2 {
		t.Fatalf("expected focus on second headline, got %d", m.view.focusedField)
	}
	if !m.inputs.fields[fieldHeadline2].Focused() {
		t.Fatalf("expected second input focused")
	}
	if m.inputs.fields[fieldHeadline1].Focused() {
		t.Fatalf("expected first input blurred")
	}

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = model.(EditorModel)
	if m.view.focusedField != fieldHeadline1 {
		t.Fatalf("expected focus back on first headline, got %d", m.view.focusedField)
	}
}

func TestFocusWrapsAroundTheForm(t *testing.T) {
	m := setupTestEditor(t)
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = model.(EditorModel)
	if m.view.focusedField != fieldPath2 {
		t.Fatalf("expected focus to wrap to last path, got %d", m.view.focusedField)
	}
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = model.(EditorModel)
	if m.view.focusedField != fieldHeadline1 {
		t.Fatalf("expected focus to wrap to first headline, got %d", m.view.focusedField)
	}
}

func TestTypingIntoSecondDescription(t *testing.T) {
	m := setupTestEditor(t)
	for i := 0; i < fieldDescription2; i++ {
		model, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = model.(EditorModel)
	}
	m = typeString(t, m, "Free shipping")
	if got := m.draft.Descriptions[1].Value; got != "Free shipping" {
		t.Fatalf("expected second description %q, got %q", "Free shipping", got)
	}
	if got := m.draft.Descriptions[0].Value; got != "" {
		t.Fatalf("expected first description untouched, got %q", got)
	}
}

func TestWindowSizeShrinksGauge(t *testing.T) {
	m := setupTestEditor(t)
	model, _ := m.Update(tea.WindowSizeMsg{Width: 48, Height: 20})
	m = model.(EditorModel)
	if m.view.width != 48 || m.view.height != 20 {
		t.Fatalf("expected window size stored, got %dx%d", m.view.width, m.view.height)
	}
	if m.budget.Width != 48/3 {
		t.Fatalf("expected compact gauge width %d, got %d", 48/3, m.budget.Width)
	}

	model, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = model.(EditorModel)
	if m.budget.Width != config.GaugeWidth {
		t.Fatalf("expected full gauge width %d, got %d", config.GaugeWidth, m.budget.Width)
	}
}

func TestKeypressClearsTransientStatus(t *testing.T) {
	m := setupTestEditor(t)
	m.setStatus("saved")
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m = model.(EditorModel)
	if m.statusMessage != "" {
		t.Fatalf("expected status cleared, got %q", m.statusMessage)
	}
	if got := m.draft.Headlines[0].Value; got != "x" {
		t.Fatalf("expected keypress to still reach the input, got %q", got)
	}
}

func TestEscQuitsWithoutModal(t *testing.T) {
	m := setupTestEditor(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Fatalf("expected QuitMsg, got %#v", msg)
	}
}

func TestPreviewFollowsDraft(t *testing.T) {
	m := setupTestEditor(t)
	m = typeString(t, m, "Great Deals Today")
	preview := m.composePreview()
	if preview.Headline != "Great Deals Today" {
		t.Fatalf("expected headline preview to pass through, got %q", preview.Headline)
	}
	if !strings.HasPrefix(preview.DisplayURL, config.DefaultHost) {
		t.Fatalf("expected display URL to start with host, got %q", preview.DisplayURL)
	}
}
