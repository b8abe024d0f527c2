package tui

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/mvanek/adproof/internal/config"
)

func renderLogo() string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true).Render("ad") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Bold(true).Render("proof")
}

func (m EditorModel) renderHeader() string {
	logo := renderLogo()
	mode := "All headlines"
	if !m.view.showAllHeadlines {
		mode = "First headline"
	}
	left := fmt.Sprintf("%s v%s", logo, versionLabel())
	right := fmt.Sprintf("%s | %s | %s", devicePresets[m.view.deviceIdx].Name, mode, CurrentTheme.Name)

	headerFrame := Frames.Header.BorderForeground(CurrentTheme.Border)
	headerWidth := m.view.width - lipgloss.Width(headerFrame.Render(""))
	if headerWidth < 1 {
		headerWidth = 1
	}
	gap := headerWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	content := left + strings.Repeat(" ", gap) + CurrentTheme.Dim.Render(right)
	return headerFrame.Width(headerWidth).Render(truncateLabel(content, headerWidth))
}

func (m EditorModel) renderForm() string {
	var lines []string
	for idx := range m.inputs.fields {
		lines = append(lines, m.renderFieldHeading(idx), m.inputs.fields[idx].View())
		if idx == fieldHeadline3 || idx == fieldDescription2 {
			lines = append(lines, "")
		}
	}
	lines = append(lines, "", m.renderBudget())
	return strings.Join(lines, "\n")
}

func (m EditorModel) renderFieldHeading(idx int) string {
	label := fieldLabel(idx)
	labelStyle := CurrentTheme.Label
	if idx == m.view.focusedField {
		labelStyle = CurrentTheme.Focused
	}
	used := utf8.RuneCountInString(m.inputs.fields[idx].Value())
	limit := m.fieldLimit(idx)
	counter := CounterStyle(used, limit).Render(FormatCounter(used, limit))

	pad := config.FormColumnWidth - lipgloss.Width(label) - lipgloss.Width(counter)
	if pad < 1 {
		pad = 1
	}
	return labelStyle.Render(label) + strings.Repeat(" ", pad) + counter
}

func (m EditorModel) renderBudget() string {
	used := utf8.RuneCountInString(m.inputs.fields[m.view.focusedField].Value())
	limit := m.fieldLimit(m.view.focusedField)
	ratio := float64(used) / float64(limit)
	if ratio > 1 {
		ratio = 1
	}
	return CurrentTheme.Dim.Render("Budget ") + m.budget.ViewAs(ratio)
}

func (m EditorModel) renderPreviewCard() string {
	preview := m.composePreview()
	device := devicePresets[m.view.deviceIdx]

	cardFrame := Frames.Card.BorderForeground(CurrentTheme.Border)
	frameWidth := lipgloss.Width(cardFrame.Render(""))
	cardWidth := device.CardWidth
	available := m.view.width - config.FormColumnWidth - frameWidth - 2
	if cardWidth > available {
		cardWidth = available
	}
	if cardWidth < config.MinCardWidth {
		cardWidth = config.MinCardWidth
	}

	badge := CurrentTheme.AdBadge.Render("Ad")
	urlWidth := cardWidth - lipgloss.Width(badge) - 3
	var card strings.Builder
	card.WriteString(badge + " · " + CurrentTheme.URL.Render(truncateLabel(preview.DisplayURL, urlWidth)) + "\n")
	card.WriteString(CurrentTheme.Headline.Render(ansi.Wrap(preview.Headline, cardWidth, "")) + "\n")
	card.WriteString(CurrentTheme.Description.Render(ansi.Wrap(preview.Description, cardWidth, "")))

	title := CurrentTheme.Dim.Render(truncateLabel(device.Name+" preview", cardWidth))
	return lipgloss.JoinVertical(lipgloss.Left, title, cardFrame.Width(cardWidth).Render(card.String()))
}

func (m EditorModel) renderStatus() string {
	if m.statusMessage == "" {
		return ""
	}
	style := CurrentTheme.Status
	if m.statusIsError {
		style = CurrentTheme.Error
	}
	return style.Render(truncateLabel(m.statusMessage, m.view.width))
}

func (m EditorModel) renderFooter() string {
	var footerContent string
	var rawFooter string
	switch m.modal.ActiveModal() {
	case ModalTheme:
		footerContent = CurrentTheme.Dim.Render("[Enter] Apply Theme | [Esc] Cancel")
	case ModalExample:
		footerContent = CurrentTheme.Dim.Render("[Enter] Load Example | [Esc] Cancel")
	case ModalClearConfirm:
		footerContent = CurrentTheme.Focused.Render("Clear all fields? [y] Clear | [n] Cancel")
	default:
		rawFooter = "[Tab]Field|[ctrl+d]Device|[ctrl+g]Headlines|[ctrl+t]Theme|[ctrl+o]Examples|[ctrl+y]Copy|[ctrl+e]Export|[ctrl+r]Proof PDF|[ctrl+x]Clear|[Esc]Quit"
		footerContent = CurrentTheme.Dim.Render(rawFooter)
	}

	boxed := Frames.Footer.BorderForeground(CurrentTheme.Border)
	innerWidth := m.view.width - lipgloss.Width(boxed.Render(""))
	if innerWidth < 1 {
		innerWidth = 1
	}
	content := lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, footerContent)
	if rawFooter != "" {
		content = renderHelpTokens(rawFooter, innerWidth)
	}
	return boxed.Width(innerWidth).Render(content)
}

// renderHelpTokens lays out "|"-separated help tokens over as few lines as
// fit the width, balancing line lengths rather than filling greedily.
func renderHelpTokens(rawFooter string, innerWidth int) string {
	const sep = " | "
	sepWidth := ansi.StringWidth(sep)

	var tokens []string
	var widths []int
	sumWidths := 0
	for _, token := range strings.Split(rawFooter, "|") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
		widths = append(widths, ansi.StringWidth(token))
		sumWidths += ansi.StringWidth(token)
	}
	if len(tokens) == 0 {
		return ""
	}

	totalWidth := sumWidths + sepWidth*(len(tokens)-1)
	linesTarget := int(math.Ceil(float64(totalWidth) / float64(innerWidth)))
	if linesTarget < 1 {
		linesTarget = 1
	}

	var lines []string
	var currentTokens []string
	currentWidth := 0
	sumRemaining := sumWidths
	tokensRemaining := len(tokens)
	linesRemaining := linesTarget
	for i, token := range tokens {
		tokenWidth := widths[i]
		remainingTotal := sumRemaining + sepWidth*(tokensRemaining-1)
		idealMax := int(math.Ceil(float64(remainingTotal) / float64(linesRemaining)))
		if idealMax > innerWidth {
			idealMax = innerWidth
		}
		candidateWidth := currentWidth + sepWidth + tokenWidth
		if currentWidth == 0 {
			currentTokens = append(currentTokens, token)
			currentWidth = tokenWidth
		} else if candidateWidth <= idealMax || (linesRemaining == 1 && candidateWidth <= innerWidth) {
			currentTokens = append(currentTokens, token)
			currentWidth = candidateWidth
		} else {
			lines = append(lines, strings.Join(currentTokens, sep))
			if linesRemaining > 1 {
				linesRemaining--
			}
			currentTokens = []string{token}
			currentWidth = tokenWidth
		}
		sumRemaining -= tokenWidth
		tokensRemaining--
	}
	if len(currentTokens) > 0 {
		lines = append(lines, strings.Join(currentTokens, sep))
	}

	var helpLines []string
	for _, line := range lines {
		helpLines = append(helpLines, lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, CurrentTheme.Dim.Render(line)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, helpLines...)
}
