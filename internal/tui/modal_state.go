package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvanek/adproof/internal/models"
)

type ModalType int

const (
	ModalNone ModalType = iota
	ModalTheme
	ModalExample
	ModalClearConfirm
)

type ModalState interface {
	Type() ModalType
	HandleKey(key string) (ModalState, tea.Cmd)
}

type ThemeState struct {
	Cursor int
	Names  []string
}

func (s *ThemeState) Type() ModalType { return ModalTheme }
func (s *ThemeState) HandleKey(key string) (ModalState, tea.Cmd) {
	switch key {
	case "up", "k":
		if s.Cursor > 0 {
			s.Cursor--
		}
	case "down", "j":
		if s.Cursor < len(s.Names)-1 {
			s.Cursor++
		}
	}
	return s, nil
}

type ExampleState struct {
	Cursor int
	Ads    []models.ExampleAd
}

func (s *ExampleState) Type() ModalType { return ModalExample }
func (s *ExampleState) HandleKey(key string) (ModalState, tea.Cmd) {
	switch key {
	case "up", "k":
		if s.Cursor > 0 {
			s.Cursor--
		}
	case "down", "j":
		if s.Cursor < len(s.Ads)-1 {
			s.Cursor++
		}
	}
	return s, nil
}

type ClearConfirmState struct{}

func (s *ClearConfirmState) Type() ModalType { return ModalClearConfirm }
func (s *ClearConfirmState) HandleKey(key string) (ModalState, tea.Cmd) {
	return s, nil
}
