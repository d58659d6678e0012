package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fiscolab/fisco/internal/catalog"
	"github.com/fiscolab/fisco/internal/snapshot"
)

// questionListing is the JSON payload for one catalog entry.
type questionListing struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
}

// NewQuestionsCommand creates the questions command: list the catalog.
func NewQuestionsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List every question the engine can answer",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)

			// The concrete catalog depends on which years the snapshot
			// carries, so the listing loads the tables first.
			session := snapshot.NewSessionDir(opts.Snapshots, newLogger(cmd.ErrOrStderr(), opts.Verbose))
			tables, err := session.Tables()
			if err != nil {
				f.Error(ErrCodeLoadFailed, err.Error(), nil)
				return WrapExitError(ExitCommandError, "failed to load snapshots", err)
			}

			entries := catalog.Questions(tables.SpendingYears())
			if f.Format == "json" {
				listings := make([]questionListing, len(entries))
				for i, e := range entries {
					listings[i] = questionListing{ID: e.Question.ID(), Prompt: e.Prompt}
				}
				return f.Success(listings)
			}

			for _, e := range entries {
				fmt.Fprintf(f.Writer, "%-22s %s\n", e.Question.ID(), e.Prompt)
			}
			return nil
		},
	}
	return cmd
}
