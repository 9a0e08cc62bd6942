package cmd

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"talentiq/internal/review"
	"talentiq/internal/ui"
)

func newReviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review FILE",
		Short: "Print a resume review report",
		Long: `Print the overall score badge, the ATS compatibility panel and per-category
tips from a review document (.json, .toml or .yaml).`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := review.Load(args[0])
			if err != nil {
				return &ExitError{Code: ExitInputError, Err: err}
			}
			zap.L().Debug("review loaded",
				zap.String("id", res.ID),
				zap.String("file", res.FileName),
				zap.Int("overall", res.Feedback.OverallScore),
			)

			var sections []review.Section
			keys, _ := cmd.Flags().GetStringSlice("category")
			for _, k := range keys {
				s, ok := review.LookupSection(res.Feedback, k)
				if !ok {
					return &ExitError{Code: ExitInputError, Err: errors.WithHintf(
						errors.Newf("unknown category %q", k), "valid categories: %v", review.Keys())}
				}
				sections = append(sections, s)
			}

			r := ui.NewRenderer(cmd.OutOrStdout(), useColor(cmd))
			if err := r.Review(res, sections); err != nil {
				return &ExitError{Code: ExitCLIError, Err: errors.Wrap(err, "writing report")}
			}
			return nil
		},
	}
	bindReviewFlags(cmd.Flags())
	return cmd
}

func bindReviewFlags(fs *pflag.FlagSet) {
	fs.StringSlice("category", nil, "Only show these categories (tone, content, structure, skills)")
}
