package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fiscolab/fisco/internal/snapshot"
	"github.com/fiscolab/fisco/internal/tui"
)

// NewDashCommand creates the dash command: the interactive dashboard.
func NewDashCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dash",
		Short: "Open the interactive dashboard",
		Long: `Open the interactive terminal dashboard: three chart tabs (debt
evolution, spending comparison, debt holders) plus the insights tab with
the question catalog. A snapshot load failure is shown as a single
unified error view.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			session := snapshot.NewSessionDir(opts.Snapshots, newLogger(cmd.ErrOrStderr(), opts.Verbose))

			program := tea.NewProgram(
				tui.New(session),
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := program.Run(); err != nil {
				return WrapExitError(ExitCommandError, "dashboard terminated", err)
			}
			return nil
		},
	}
	return cmd
}
