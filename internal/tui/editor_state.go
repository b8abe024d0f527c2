package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/mvanek/adproof/internal/adtext"
	"github.com/mvanek/adproof/internal/config"
	"github.com/mvanek/adproof/internal/models"
)

// Field indices for the editor form, in focus order.
const (
	fieldHeadline1 = iota
	fieldHeadline2
	fieldHeadline3
	fieldDescription1
	fieldDescription2
	fieldPath1
	fieldPath2
	fieldCount
)

var devicePresets = []models.DevicePreset{
	{Name: "Mobile", CardWidth: config.MobileCardWidth},
	{Name: "Desktop", CardWidth: config.DesktopCardWidth},
}

// ViewState tracks field focus, the active device preset and window size.
type ViewState struct {
	focusedField     int
	deviceIdx        int
	showAllHeadlines bool
	width            int
	height           int
}

func newViewState(showAll bool) *ViewState {
	return &ViewState{showAllHeadlines: showAll}
}

// ModalManager tracks the active modal and its selection data.
type ModalManager struct {
	current ModalState
}

func newModalManager() *ModalManager {
	return &ModalManager{}
}

func (m *ModalManager) ActiveModal() ModalType {
	if m.current == nil {
		return ModalNone
	}
	return m.current.Type()
}

func (m *ModalManager) IsOpen() bool {
	return m.current != nil
}

func (m *ModalManager) Current() ModalState {
	return m.current
}

func (m *ModalManager) Open(state ModalState) {
	m.current = state
}

func (m *ModalManager) Close() {
	m.current = nil
}

func (m *ModalManager) Is(t ModalType) bool {
	return m.current != nil && m.current.Type() == t
}

func (m *ModalManager) ThemeState() (*ThemeState, bool) {
	state, ok := m.current.(*ThemeState)
	return state, ok
}

func (m *ModalManager) ExampleState() (*ExampleState, bool) {
	state, ok := m.current.(*ExampleState)
	return state, ok
}

func (m *ModalManager) ClearConfirmState() (*ClearConfirmState, bool) {
	state, ok := m.current.(*ClearConfirmState)
	return state, ok
}

// InputState stores the text input models for every ad slot.
type InputState struct {
	fields [fieldCount]textinput.Model
}

func newInputState() *InputState {
	s := &InputState{}
	for i := range s.fields {
		ti := textinput.New()
		ti.Placeholder = fieldPlaceholder(i)
		ti.CharLimit = config.MaxFieldLength
		ti.Width = config.FormColumnWidth
		s.fields[i] = ti
	}
	s.fields[fieldHeadline1].Focus()
	return s
}

// EditorModel is the root bubbletea model for the ad preview editor.
type EditorModel struct {
	composer  *adtext.Composer
	settings  config.Settings
	draft     models.AdDraft
	view      *ViewState
	inputs    *InputState
	modal     *ModalManager
	budget    progress.Model
	clipboard Clipboard

	statusMessage string
	statusIsError bool
}

func NewEditorModel(settings config.Settings) (EditorModel, error) {
	composer, err := adtext.NewComposer(adtext.LimitConfig{
		Headline:    settings.HeadlineLimit,
		Description: settings.DescriptionLimit,
	})
	if err != nil {
		return EditorModel{}, err
	}
	SetTheme(settings.Theme)

	budget := progress.New(progress.WithDefaultGradient())
	budget.Width = config.GaugeWidth

	m := EditorModel{
		composer:  composer,
		settings:  settings,
		view:      newViewState(settings.ShowAllHeadlines),
		inputs:    newInputState(),
		modal:     newModalManager(),
		budget:    budget,
		clipboard: SystemClipboard{},
	}
	m.view.deviceIdx = deviceIndex(settings.Device)
	return m, nil
}

func deviceIndex(name string) int {
	for i, preset := range devicePresets {
		if strings.EqualFold(preset.Name, name) {
			return i
		}
	}
	return 0
}

// themeNames returns the selectable theme keys in stable order.
func themeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func fieldPlaceholder(idx int) string {
	switch {
	case idx <= fieldHeadline3:
		return "Add a headline..."
	case idx <= fieldDescription2:
		return "Add a description..."
	default:
		return "path"
	}
}

func fieldLabel(idx int) string {
	switch idx {
	case fieldHeadline1:
		return "Headline 1"
	case fieldHeadline2:
		return "Headline 2"
	case fieldHeadline3:
		return "Headline 3"
	case fieldDescription1:
		return "Description 1"
	case fieldDescription2:
		return "Description 2"
	case fieldPath1:
		return "Path 1"
	case fieldPath2:
		return "Path 2"
	}
	return ""
}

func (m EditorModel) fieldLimit(idx int) int {
	limits := m.composer.Limits()
	switch {
	case idx <= fieldHeadline3:
		return limits.Headline
	case idx <= fieldDescription2:
		return limits.Description
	default:
		return config.PathLimit
	}
}

func (m EditorModel) fieldValue(idx int) string {
	switch {
	case idx <= fieldHeadline3:
		return m.draft.Headlines[idx-fieldHeadline1].Value
	case idx <= fieldDescription2:
		return m.draft.Descriptions[idx-fieldDescription1].Value
	default:
		return m.draft.Paths[idx-fieldPath1].Value
	}
}

// syncDraft writes the focused input's value into the matching draft slot.
func (m *EditorModel) syncDraft() {
	value := m.inputs.fields[m.view.focusedField].Value()
	switch idx := m.view.focusedField; {
	case idx <= fieldHeadline3:
		m.draft.SetHeadline(idx-fieldHeadline1, value)
	case idx <= fieldDescription2:
		m.draft.SetDescription(idx-fieldDescription1, value)
	default:
		m.draft.SetPath(idx-fieldPath1, value)
	}
}

// syncInputs overwrites every input with the current draft values.
func (m *EditorModel) syncInputs() {
	for idx := range m.inputs.fields {
		m.inputs.fields[idx].SetValue(m.fieldValue(idx))
	}
}

func (m *EditorModel) setStatus(msg string) {
	m.statusMessage = msg
	m.statusIsError = false
}

func (m *EditorModel) setStatusError(msg string) {
	m.statusMessage = msg
	m.statusIsError = true
}

func (m *EditorModel) clearStatus() {
	m.statusMessage = ""
	m.statusIsError = false
}

// composePreview renders the draft into the three preview lines.
func (m EditorModel) composePreview() models.Preview {
	return models.Preview{
		Headline:    m.composer.HeadlinePreview(m.draft.HeadlineValues(), m.view.showAllHeadlines),
		DisplayURL:  adtext.DisplayURL(m.settings.Host, m.draft.PathValues(), config.PathLimit),
		Description: m.composer.DescriptionPreview(m.draft.DescriptionValues()),
	}
}

func (m *EditorModel) applyExample(ex models.ExampleAd) {
	m.draft.Reset()
	for i, v := range ex.Headlines {
		m.draft.SetHeadline(i, v)
	}
	for i, v := range ex.Descriptions {
		m.draft.SetDescription(i, v)
	}
	for i, v := range ex.Path {
		m.draft.SetPath(i, v)
	}
	m.syncInputs()
}
