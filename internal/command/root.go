package command

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mvanek/adproof/internal/config"
	"github.com/mvanek/adproof/internal/tui"
	"github.com/mvanek/adproof/internal/util"
)

func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Preview search ad copy against character limits",
		Long: heredoc.Doc(`
			Adproof is a terminal editor for drafting search ad copy. It shows
			a live result-card preview while you type, with per-field character
			counters and the same truncation the composed preview applies.

			Run without arguments to open the editor. Use "adproof render" for
			one-shot previews in scripts and pipelines.
		`),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("standard input is not a terminal; use %q for non-interactive output", config.AppName+" render")
			}
			settings, err := config.LoadSettings(config.SettingsPath())
			if err != nil {
				util.LogError("load settings", err)
				settings = config.DefaultSettings()
			}
			model, err := tui.NewEditorModel(settings)
			if err != nil {
				return err
			}
			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run editor: %w", err)
			}
			return nil
		},
	}

	cmd.Version = version
	cmd.SetVersionTemplate(config.AppName + " version {{.Version}}\n")
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.AddCommand(
		NewRenderCmd(),
	)

	return cmd
}

func Execute() error {
	return NewRootCmd(tui.VersionLabel()).Execute()
}
