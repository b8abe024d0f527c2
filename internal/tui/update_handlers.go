package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m EditorModel) handleGlobalKey(key string) (EditorModel, tea.Cmd, bool) {
	switch key {
	case "ctrl+c", "esc":
		return m, tea.Quit, true
	case "tab", "down":
		cmd := m.focusField((m.view.focusedField + 1) % fieldCount)
		return m, cmd, true
	case "shift+tab", "up":
		cmd := m.focusField((m.view.focusedField + fieldCount - 1) % fieldCount)
		return m, cmd, true
	case "ctrl+d":
		return m.handleCycleDevice()
	case "ctrl+g":
		return m.handleToggleHeadlineMode()
	case "ctrl+t":
		m.modal.Open(&ThemeState{Cursor: themeCursor(m.settings.Theme), Names: themeNames()})
		return m, nil, true
	case "ctrl+o":
		return m.handleOpenExamples()
	case "ctrl+x":
		m.modal.Open(&ClearConfirmState{})
		return m, nil, true
	case "ctrl+y":
		return m.handleCopyPreview()
	case "ctrl+e":
		return m.handleExportDraft()
	case "ctrl+r":
		return m.handleExportPDF()
	}
	return m, nil, false
}

func (m *EditorModel) focusField(idx int) tea.Cmd {
	m.inputs.fields[m.view.focusedField].Blur()
	m.view.focusedField = idx
	return m.inputs.fields[idx].Focus()
}

func themeCursor(active string) int {
	for i, name := range themeNames() {
		if name == active {
			return i
		}
	}
	return 0
}

func (m EditorModel) handleCycleDevice() (EditorModel, tea.Cmd, bool) {
	m.view.deviceIdx = (m.view.deviceIdx + 1) % len(devicePresets)
	preset := devicePresets[m.view.deviceIdx]
	m.settings.Device = preset.Name
	m.setStatus(fmt.Sprintf("%s preview (%d columns)", preset.Name, preset.CardWidth))
	return m, nil, true
}

func (m EditorModel) handleToggleHeadlineMode() (EditorModel, tea.Cmd, bool) {
	m.view.showAllHeadlines = !m.view.showAllHeadlines
	if m.view.showAllHeadlines {
		m.setStatus("Showing all headlines")
	} else {
		m.setStatus("Showing first headline only")
	}
	return m, nil, true
}

func (m EditorModel) handleOpenExamples() (EditorModel, tea.Cmd, bool) {
	path, err := EnsureExampleFile()
	if err != nil {
		m.setStatusError(fmt.Sprintf("Error preparing example file: %v", err))
		return m, nil, true
	}
	ads, err := LoadExamples(path)
	if err != nil {
		m.setStatusError(fmt.Sprintf("Error loading examples: %v", err))
		return m, nil, true
	}
	if len(ads) == 0 {
		m.setStatus("No examples in " + path)
		return m, nil, true
	}
	m.modal.Open(&ExampleState{Ads: ads})
	return m, nil, true
}

func (m EditorModel) handleCopyPreview() (EditorModel, tea.Cmd, bool) {
	if err := CopyPreview(m.clipboard, m.composePreview()); err != nil {
		m.setStatusError(fmt.Sprintf("Error copying preview: %v", err))
		return m, nil, true
	}
	m.setStatus("Preview copied to clipboard")
	return m, nil, true
}

func (m EditorModel) handleExportDraft() (EditorModel, tea.Cmd, bool) {
	filename, err := ExportDraft(m.draft, m.composePreview())
	if err != nil {
		m.setStatusError(fmt.Sprintf("Error exporting draft: %v", err))
		return m, nil, true
	}
	m.setStatus("Draft exported to " + filename)
	return m, nil, true
}

func (m EditorModel) handleExportPDF() (EditorModel, tea.Cmd, bool) {
	filename, err := GeneratePDFSheet(m.composer, m.settings, m.draft)
	if err != nil {
		m.setStatusError(fmt.Sprintf("Error generating proof sheet: %v", err))
		return m, nil, true
	}
	m.setStatus("Proof sheet written to " + filename)
	return m, nil, true
}
