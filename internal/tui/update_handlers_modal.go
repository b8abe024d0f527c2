package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m EditorModel) handleModalKey(key string) (EditorModel, tea.Cmd, bool) {
	if !m.modal.IsOpen() {
		return m, nil, false
	}
	if key == "esc" {
		m.modal.Close()
		return m, nil, true
	}
	if m.modal.Is(ModalClearConfirm) {
		return m.handleClearConfirmKey(key)
	}
	if key == "enter" {
		return m.handleModalConfirm()
	}
	next, cmd := m.modal.Current().HandleKey(key)
	m.modal.Open(next)
	return m, cmd, true
}

func (m EditorModel) handleClearConfirmKey(key string) (EditorModel, tea.Cmd, bool) {
	switch key {
	case "y", "Y":
		m.draft.Reset()
		m.syncInputs()
		m.modal.Close()
		m.setStatus("Draft cleared")
	case "n", "N", "enter":
		m.modal.Close()
	}
	return m, nil, true
}

func (m EditorModel) handleModalConfirm() (EditorModel, tea.Cmd, bool) {
	switch {
	case m.modal.Is(ModalTheme):
		if state, ok := m.modal.ThemeState(); ok && state.Cursor < len(state.Names) {
			name := state.Names[state.Cursor]
			SetTheme(name)
			m.settings.Theme = name
			m.setStatus(fmt.Sprintf("Theme set to %s", CurrentTheme.Name))
		}
	case m.modal.Is(ModalExample):
		if state, ok := m.modal.ExampleState(); ok && state.Cursor < len(state.Ads) {
			ad := state.Ads[state.Cursor]
			m.applyExample(ad)
			m.setStatus(fmt.Sprintf("Loaded example %q", ad.Name))
		}
	}
	m.modal.Close()
	return m, nil, true
}
