package cmd

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"talentiq/internal/util/id"
)

func newIDCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "id",
		Short:         "Print fresh record identifiers",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, _ := cmd.Flags().GetInt("count")
			if count < 1 {
				return &ExitError{Code: ExitCLIError, Err: errors.Newf("invalid --count: %d (must be at least 1)", count)}
			}
			for i := 0; i < count; i++ {
				fmt.Fprintln(cmd.OutOrStdout(), id.New())
			}
			return nil
		},
	}
	cmd.Flags().IntP("count", "n", 1, "Number of identifiers to print")
	return cmd
}
