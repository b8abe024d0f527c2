package tui

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/mvanek/adproof/internal/models"
	"github.com/mvanek/adproof/internal/testutil"
)

func TestExportDraftWritesJSON(t *testing.T) {
	docsDir := t.TempDir()
	t.Setenv("XDG_DOCUMENTS_DIR", docsDir)

	draft := testutil.NewDraft().
		WithHeadlines("Buy now").
		WithDescriptions("Save today.").
		WithPaths("sale").
		Build()
	preview := models.Preview{
		Headline:    "Buy now",
		DisplayURL:  "www.example.com/sale",
		Description: "Save today.",
	}

	filename, err := ExportDraft(draft, preview)
	if err != nil {
		t.Fatalf("ExportDraft failed: %v", err)
	}
	if !strings.HasPrefix(filename, filepath.Join(docsDir, "Adproof", "exports")) {
		t.Fatalf("unexpected export location %q", filename)
	}

	raw, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("reading export failed: %v", err)
	}
	var decoded draftExport
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if decoded.AppVersion != AppVersion {
		t.Fatalf("expected app version %q, got %q", AppVersion, decoded.AppVersion)
	}
	if decoded.Headlines[0] != "Buy now" {
		t.Fatalf("expected exported headline, got %q", decoded.Headlines[0])
	}
	if len(decoded.Headlines) != models.HeadlineSlots {
		t.Fatalf("expected all headline slots exported, got %d", len(decoded.Headlines))
	}
	if decoded.Preview.DisplayURL != "www.example.com/sale" {
		t.Fatalf("expected preview URL exported, got %q", decoded.Preview.DisplayURL)
	}

	info, err := os.Stat(filename)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("expected 0600 permissions, got %o", perm)
	}
}

func TestCopyPreviewJoinsLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mock := NewMockClipboard(ctrl)

	preview := models.Preview{
		Headline:    "Buy now — Free shipping",
		DisplayURL:  "www.example.com/sale",
		Description: "Save today.",
	}
	mock.EXPECT().WriteAll("Buy now — Free shipping\nwww.example.com/sale\nSave today.").Return(nil)

	if err := CopyPreview(mock, preview); err != nil {
		t.Fatalf("CopyPreview failed: %v", err)
	}
}
