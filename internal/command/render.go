package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/mvanek/adproof/internal/adtext"
	"github.com/mvanek/adproof/internal/config"
	"github.com/mvanek/adproof/internal/models"
	"github.com/mvanek/adproof/internal/tui"
	"github.com/mvanek/adproof/internal/util"
)

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	var headlines []string
	var descriptions []string
	var paths []string
	var host string
	var firstOnly bool
	var width int
	var plain bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Compose an ad preview without opening the editor",
		Long: heredoc.Doc(`
			Render composes a one-shot preview from flags and prints it. Fields
			beyond the slot counts (3 headlines, 2 descriptions, 2 path
			segments) are ignored, matching the editor form.
		`),
		Example: heredoc.Doc(`
			# Joined headline preview in a result card
			adproof render --headline "Buy now" --headline "Free shipping" --description "Order today."

			# First-headline mode, plain text for scripts
			adproof render --headline "Buy now and save today" --first-headline --plain
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(config.SettingsPath())
			if err != nil {
				util.LogError("load settings", err)
				settings = config.DefaultSettings()
			}
			if host != "" {
				settings.Host = host
			}

			composer, err := adtext.NewComposer(adtext.LimitConfig{
				Headline:    settings.HeadlineLimit,
				Description: settings.DescriptionLimit,
			})
			if err != nil {
				return err
			}

			var draft models.AdDraft
			for i, h := range headlines {
				draft.SetHeadline(i, h)
			}
			for i, d := range descriptions {
				draft.SetDescription(i, d)
			}
			for i, p := range paths {
				draft.SetPath(i, p)
			}

			preview := models.Preview{
				Headline:    composer.HeadlinePreview(draft.HeadlineValues(), !firstOnly),
				DisplayURL:  adtext.DisplayURL(settings.Host, draft.PathValues(), config.PathLimit),
				Description: composer.DescriptionPreview(draft.DescriptionValues()),
			}

			if plain {
				return writePlainPreview(cmd.OutOrStdout(), preview, width)
			}
			return writeCardPreview(cmd.OutOrStdout(), preview, width)
		},
	}

	cmd.Flags().StringArrayVar(&headlines, "headline", nil, "headline slot (repeatable, up to 3)")
	cmd.Flags().StringArrayVar(&descriptions, "description", nil, "description slot (repeatable, up to 2)")
	cmd.Flags().StringArrayVar(&paths, "path", nil, "display path segment (repeatable, up to 2)")
	cmd.Flags().StringVar(&host, "host", "", "display URL host (defaults to configuration)")
	cmd.Flags().BoolVar(&firstOnly, "first-headline", false, "preview only the first headline")
	cmd.Flags().IntVar(&width, "width", config.MobileCardWidth, "preview width in columns")
	cmd.Flags().BoolVar(&plain, "plain", false, "plain text output without the card frame")

	return cmd
}

func writePlainPreview(w io.Writer, preview models.Preview, width int) error {
	for _, line := range []string{preview.Headline, preview.DisplayURL, preview.Description} {
		if _, err := fmt.Fprintln(w, wordwrap.String(line, width)); err != nil {
			return err
		}
	}
	return nil
}

func writeCardPreview(w io.Writer, preview models.Preview, width int) error {
	if width < config.MinCardWidth {
		width = config.MinCardWidth
	}
	theme := tui.CurrentTheme

	var card strings.Builder
	card.WriteString(theme.AdBadge.Render("Ad") + " · " + theme.URL.Render(preview.DisplayURL) + "\n")
	card.WriteString(theme.Headline.Render(wordwrap.String(preview.Headline, width)) + "\n")
	card.WriteString(theme.Description.Render(wordwrap.String(preview.Description, width)))

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)
	_, err := fmt.Fprintln(w, frame.Width(width).Render(card.String()))
	return err
}
