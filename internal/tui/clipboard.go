package tui

import "github.com/atotto/clipboard"

//go:generate mockgen -source=clipboard.go -destination=mock_clipboard_test.go -package=tui

// Clipboard defines the copy operation the editor requires.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes through to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

var _ Clipboard = (*SystemClipboard)(nil)
