package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"talentiq/internal/util/format"
)

func newSizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "size [bytes...]",
		Short: "Format byte counts or file sizes for display",
		Long: `Format byte counts as KB, MB or GB using binary (1024-based) units.

Negative values need a "--" separator so they are not read as flags:
	talentiq size -- -5`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, _ := cmd.Flags().GetStringArray("path")
			if len(args) == 0 && len(paths) == 0 {
				return &ExitError{Code: ExitCLIError, Err: errors.New("size: give at least one byte count or --path")}
			}
			out := cmd.OutOrStdout()
			for _, raw := range args {
				n, err := parseBytes(raw)
				if err != nil {
					return &ExitError{Code: ExitInputError, Err: err}
				}
				zap.L().Debug("formatting byte count", zap.String("input", raw), zap.Float64("bytes", n))
				fmt.Fprintln(out, format.FormatSize(n))
			}
			for _, p := range paths {
				fi, err := os.Stat(p)
				if err != nil {
					return &ExitError{Code: ExitInputError, Err: errors.Wrap(err, "size")}
				}
				if fi.IsDir() {
					return &ExitError{Code: ExitInputError, Err: errors.Newf("size: %s is a directory", p)}
				}
				fmt.Fprintf(out, "%s\t%s\n", format.FormatSizeInt(fi.Size()), p)
			}
			return nil
		},
	}
	bindSizeFlags(cmd.Flags())
	return cmd
}

func bindSizeFlags(fs *pflag.FlagSet) {
	fs.StringArray("path", nil, "File whose size to format (repeatable)")
}

// parseBytes accepts any float syntax, including NaN and Inf. Out-of-range
// literals become ±Inf rather than errors.
func parseBytes(raw string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, errors.Newf("invalid byte count %q", raw)
	}
	return n, nil
}
