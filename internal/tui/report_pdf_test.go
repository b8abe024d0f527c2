package tui

import (
	"os"
	"strings"
	"testing"

	"github.com/mvanek/adproof/internal/adtext"
	"github.com/mvanek/adproof/internal/config"
	"github.com/mvanek/adproof/internal/models"
	"github.com/mvanek/adproof/internal/testutil"
)

func TestGeneratePDFSheetWritesFile(t *testing.T) {
	t.Setenv("XDG_DOCUMENTS_DIR", t.TempDir())

	composer, err := adtext.NewComposer(adtext.LimitConfig{
		Headline:    config.HeadlineLimit,
		Description: config.DescriptionLimit,
	})
	if err != nil {
		t.Fatalf("NewComposer failed: %v", err)
	}
	draft := testutil.NewDraft().
		WithHeadlines("Buy now and save today", "Free shipping").
		WithDescriptions("Limited stock, order before midnight.").
		WithPaths("sale").
		Build()

	filename, err := GeneratePDFSheet(composer, config.DefaultSettings(), draft)
	if err != nil {
		t.Fatalf("GeneratePDFSheet failed: %v", err)
	}
	if !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("expected pdf filename, got %q", filename)
	}
	info, err := os.Stat(filename)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected non-empty pdf")
	}
}

func TestGeneratePDFSheetEmptyDraft(t *testing.T) {
	t.Setenv("XDG_DOCUMENTS_DIR", t.TempDir())

	composer, err := adtext.NewComposer(adtext.LimitConfig{Headline: 30, Description: 90})
	if err != nil {
		t.Fatalf("NewComposer failed: %v", err)
	}

	filename, err := GeneratePDFSheet(composer, config.DefaultSettings(), models.AdDraft{})
	if err != nil {
		t.Fatalf("GeneratePDFSheet failed for empty draft: %v", err)
	}
	if _, err := os.Stat(filename); err != nil {
		t.Fatalf("stat failed: %v", err)
	}
}
