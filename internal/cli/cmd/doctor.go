package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"talentiq/internal/dirs"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "doctor",
		Short:         "Show resolved configuration and terminal detection",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := settingsFrom(cmd)
			cfgDir, err := dirs.ConfigDir()
			if err != nil {
				cfgDir = "unavailable (" + err.Error() + ")"
			}
			cfgFile := s.ConfigFile
			if cfgFile == "" {
				cfgFile = "none"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config dir:  %s\n", cfgDir)
			fmt.Fprintf(out, "Config file: %s\n", cfgFile)
			fmt.Fprintf(out, "Color:       %s (enabled: %v)\n", s.Color, useColor(cmd))
			fmt.Fprintf(out, "Terminal:    %v\n", isTerminal(out))
			fmt.Fprintf(out, "Log level:   %s\n", s.LogLevel)
			return nil
		},
	}
}
