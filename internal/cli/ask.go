package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fiscolab/fisco/internal/answer"
	"github.com/fiscolab/fisco/internal/snapshot"
)

// NewAskCommand creates the ask command: answer one catalog question.
func NewAskCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question-id>",
		Short: "Answer one question from the catalog",
		Long: `Answer one question from the closed catalog against the loaded snapshot.

Question identifiers are "kind" or "kind:year", e.g.:

  fisco ask max-debt-year
  fisco ask list-spending:2024

Use "fisco questions" to list every available identifier.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)

			session := snapshot.NewSessionDir(opts.Snapshots, newLogger(cmd.ErrOrStderr(), opts.Verbose))
			f.VerboseLog("session %s: loading snapshots", session.Token())

			tables, err := session.Tables()
			if err != nil {
				f.Error(ErrCodeLoadFailed, err.Error(), nil)
				return WrapExitError(ExitCommandError, "failed to load snapshots", err)
			}

			res := answer.Answer(args[0], tables)

			if f.Format == "json" {
				// The full result, whatever its kind: consumers branch on "kind".
				if err := f.Success(res); err != nil {
					return err
				}
				return exitForResult(res)
			}

			switch res.Kind {
			case answer.KindList:
				fmt.Fprint(f.Writer, res.Markdown())
			case answer.KindUnknownQuestion:
				f.Error(ErrCodeUnknownQuestion, res.Text, nil)
			case answer.KindComputationError:
				f.Error(ErrCodeComputation, res.Text, nil)
			default:
				fmt.Fprintln(f.Writer, res.Text)
			}
			return exitForResult(res)
		},
	}
	return cmd
}

// exitForResult maps a result kind to the command outcome. Answered
// results (including the descriptive empty-slice answer) succeed.
func exitForResult(res answer.Result) error {
	switch res.Kind {
	case answer.KindUnknownQuestion:
		return NewExitError(ExitCommandError, "unknown question")
	case answer.KindComputationError:
		return NewExitError(ExitFailure, "computation error")
	}
	return nil
}
