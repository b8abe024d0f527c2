package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mvanek/adproof/internal/config"
)

func (m EditorModel) View() string {
	if m.view.width == 0 {
		return "Initializing..."
	}
	if m.view.width < config.MinTerminalWidth || m.view.height < config.MinTerminalHeight {
		return fmt.Sprintf("Terminal too small (%dx%d). Resize to at least %dx%d.",
			m.view.width, m.view.height, config.MinTerminalWidth, config.MinTerminalHeight)
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderForm(), "  ", m.renderPreviewCard())
	sections = append(sections, body)
	if modal := m.renderModal(); modal != "" {
		sections = append(sections, modal)
	}
	if status := m.renderStatus(); status != "" {
		sections = append(sections, status)
	}
	sections = append(sections, m.renderFooter())
	return "\x1b[H\x1b[2J" + strings.Join(sections, "\n")
}

func (m EditorModel) renderModal() string {
	var content strings.Builder
	switch {
	case m.modal.Is(ModalTheme):
		state, ok := m.modal.ThemeState()
		if !ok {
			return ""
		}
		content.WriteString(CurrentTheme.Focused.Render("Themes") + "\n")
		content.WriteString(CurrentTheme.Dim.Render("Use ↑/↓ to select, Enter to apply") + "\n\n")
		for i, name := range state.Names {
			cursor := "  "
			if i == state.Cursor {
				cursor = "> "
			}
			label := ResolveTheme(name).Name
			if name == m.settings.Theme {
				label += " (active)"
			}
			content.WriteString(fmt.Sprintf("%s%s\n", cursor, label))
		}
	case m.modal.Is(ModalExample):
		state, ok := m.modal.ExampleState()
		if !ok {
			return ""
		}
		content.WriteString(CurrentTheme.Focused.Render("Examples") + "\n")
		content.WriteString(CurrentTheme.Dim.Render("Use ↑/↓ to select, Enter to load") + "\n\n")
		if len(state.Ads) == 0 {
			content.WriteString(CurrentTheme.Dim.Render("  (no examples)\n"))
		}
		for i, ad := range state.Ads {
			cursor := "  "
			if i == state.Cursor {
				cursor = "> "
			}
			line := ad.Name
			if len(ad.Headlines) > 0 {
				line = fmt.Sprintf("%s  %s", ad.Name, CurrentTheme.Dim.Render(truncateLabel(ad.Headlines[0], 40)))
			}
			content.WriteString(fmt.Sprintf("%s%s\n", cursor, line))
		}
	case m.modal.Is(ModalClearConfirm):
		content.WriteString(CurrentTheme.Focused.Render("Clear draft") + "\n")
		content.WriteString(CurrentTheme.Dim.Render("This empties every headline, description and path field.") + "\n")
		content.WriteString(CurrentTheme.Dim.Render("[y] Clear | [n] Cancel") + "\n")
	default:
		return ""
	}

	frame := Frames.Modal.BorderForeground(CurrentTheme.Border)
	modalWidth := m.view.width - lipgloss.Width(frame.Render(""))
	if modalWidth < 1 {
		modalWidth = 1
	}
	return frame.Width(modalWidth).Render(content.String())
}
