package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvanek/adproof/internal/config"
	"github.com/mvanek/adproof/internal/util"
)

func (m EditorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Clear transient status on keypress. The key itself still dispatches
	// so typing is never swallowed.
	if m.statusMessage != "" {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.clearStatus()
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		key := msg.String()
		if next, cmd, handled := m.handleModalKey(key); handled {
			return next, cmd
		}
		if next, cmd, handled := m.handleGlobalKey(key); handled {
			return next, cmd
		}
		return m.handleFieldInput(msg)
	}
	return m, nil
}

func (m EditorModel) handleWindowSize(msg tea.WindowSizeMsg) (EditorModel, tea.Cmd) {
	m.view.width, m.view.height = msg.Width, msg.Height
	if m.view.width > 0 {
		target := config.GaugeWidth
		if m.view.width < config.CompactWidthThreshold {
			target = m.view.width / 3
		}
		m.budget.Width = util.Clamp(target, config.MinGaugeWidth, config.GaugeWidth)
	}
	return m, nil
}

func (m EditorModel) handleFieldInput(msg tea.Msg) (EditorModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs.fields[m.view.focusedField], cmd = m.inputs.fields[m.view.focusedField].Update(msg)
	m.syncDraft()
	return m, cmd
}
