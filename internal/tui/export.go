package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mvanek/adproof/internal/config"
	"github.com/mvanek/adproof/internal/models"
	"github.com/mvanek/adproof/internal/util"
)

type draftExport struct {
	AppVersion   string        `json:"app_version"`
	ExportedAt   string        `json:"exported_at"`
	Headlines    []string      `json:"headlines"`
	Descriptions []string      `json:"descriptions"`
	Paths        []string      `json:"paths"`
	Preview      previewExport `json:"preview"`
}

type previewExport struct {
	Headline    string `json:"headline"`
	DisplayURL  string `json:"display_url"`
	Description string `json:"description"`
}

// ExportDraft writes the draft fields and the rendered preview as JSON
// and returns the file path.
func ExportDraft(draft models.AdDraft, preview models.Preview) (string, error) {
	export := draftExport{
		AppVersion:   AppVersion,
		ExportedAt:   time.Now().Format(time.RFC3339),
		Headlines:    draft.HeadlineValues(),
		Descriptions: draft.DescriptionValues(),
		Paths:        draft.PathValues(),
		Preview: previewExport{
			Headline:    preview.Headline,
			DisplayURL:  preview.DisplayURL,
			Description: preview.Description,
		},
	}

	raw, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return "", err
	}

	exportRoot := filepath.Join(util.ReportsDir(config.AppName), "exports")
	if err := os.MkdirAll(exportRoot, 0o755); err != nil {
		return "", err
	}

	filename := filepath.Join(exportRoot, fmt.Sprintf("adproof_export_%s.json", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(filename, raw, 0o600); err != nil {
		return "", err
	}
	return filename, nil
}

// CopyPreview writes the three preview lines to the clipboard.
func CopyPreview(clip Clipboard, preview models.Preview) error {
	text := strings.Join([]string{preview.Headline, preview.DisplayURL, preview.Description}, "\n")
	return clip.WriteAll(text)
}
