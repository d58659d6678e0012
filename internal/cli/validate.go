package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fiscolab/fisco/internal/snapshot"
)

// NewValidateCommand creates the validate command: check every snapshot
// source against the schema and report all failures, not just the first.
func NewValidateCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the snapshot sources against the schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)

			fsys := snapshot.DefaultFS()
			if opts.Snapshots != "" {
				info, err := os.Stat(opts.Snapshots)
				if err != nil || !info.IsDir() {
					f.Error(ErrCodeLoadFailed, fmt.Sprintf("snapshot directory not found: %s", opts.Snapshots), nil)
					return NewExitError(ExitCommandError, "snapshot directory not found")
				}
				fsys = os.DirFS(opts.Snapshots)
			}

			statuses := snapshot.Verify(fsys)
			failures := 0
			for _, s := range statuses {
				if !s.OK {
					failures++
				}
			}

			if f.Format == "json" {
				if err := f.Success(statuses); err != nil {
					return err
				}
			} else {
				for _, s := range statuses {
					if s.OK {
						fmt.Fprintf(f.Writer, "ok    %s\n", s.Source)
					} else {
						fmt.Fprintf(f.Writer, "FAIL  %s: %s\n", s.Source, s.Error)
					}
				}
				fmt.Fprintf(f.Writer, "%d/%d sources valid\n", len(statuses)-failures, len(statuses))
			}

			if failures > 0 {
				return NewExitError(ExitFailure, fmt.Sprintf("%d snapshot source(s) failed validation", failures))
			}
			return nil
		},
	}
	return cmd
}
