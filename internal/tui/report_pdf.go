package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"

	"github.com/mvanek/adproof/internal/adtext"
	"github.com/mvanek/adproof/internal/config"
	"github.com/mvanek/adproof/internal/models"
	"github.com/mvanek/adproof/internal/util"
)

// GeneratePDFSheet writes a one-page proof sheet for the draft, showing
// the preview in both headline modes plus the raw field inventory, and
// returns the file path.
func GeneratePDFSheet(composer *adtext.Composer, settings config.Settings, draft models.AdDraft) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; the translator maps the ellipsis and em dash.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Ad Proof Sheet: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(12)

	displayURL := adtext.DisplayURL(settings.Host, draft.PathValues(), config.PathLimit)
	writePreviewSection(pdf, tr, "Preview (all headlines)", models.Preview{
		Headline:    composer.HeadlinePreview(draft.HeadlineValues(), true),
		DisplayURL:  displayURL,
		Description: composer.DescriptionPreview(draft.DescriptionValues()),
	})
	writePreviewSection(pdf, tr, "Preview (first headline)", models.Preview{
		Headline:    composer.HeadlinePreview(draft.HeadlineValues(), false),
		DisplayURL:  displayURL,
		Description: composer.DescriptionPreview(draft.DescriptionValues()),
	})

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Fields")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	limits := composer.Limits()
	for i, field := range draft.Headlines {
		writeFieldLine(pdf, tr, fmt.Sprintf("Headline %d", i+1), field.Value, limits.Headline)
	}
	for i, field := range draft.Descriptions {
		writeFieldLine(pdf, tr, fmt.Sprintf("Description %d", i+1), field.Value, limits.Description)
	}
	for i, field := range draft.Paths {
		writeFieldLine(pdf, tr, fmt.Sprintf("Path %d", i+1), field.Value, config.PathLimit)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(0, 8, fmt.Sprintf("Generated by %s v%s", config.AppName, versionLabel()))

	reportRoot := util.ReportsDir(config.AppName)
	if err := os.MkdirAll(reportRoot, 0o755); err != nil {
		return "", err
	}
	filename := filepath.Join(reportRoot, fmt.Sprintf("adproof_sheet_%s.pdf", time.Now().Format("20060102_150405")))
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", err
	}
	return filename, nil
}

func writePreviewSection(pdf *fpdf.Fpdf, tr func(string) string, title string, preview models.Preview) {
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, title)
	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 12)
	pdf.MultiCell(0, 7, tr(preview.Headline), "", "", false)
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 6, tr(preview.DisplayURL), "", "", false)
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 6, tr(preview.Description), "", "", false)
	pdf.Ln(4)
}

func writeFieldLine(pdf *fpdf.Fpdf, tr func(string) string, label, value string, limit int) {
	used := utf8.RuneCountInString(value)
	if value == "" {
		value = "(empty)"
	}
	pdf.MultiCell(0, 6, tr(fmt.Sprintf("%s (%d/%d): %s", label, used, limit, value)), "", "", false)
}
