package cmd

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"talentiq/internal/config"
	"talentiq/internal/logger"
)

const (
	ExitOK         = 0
	ExitCLIError   = 1
	ExitInputError = 2
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "talentiq",
		Short:             "Resume review display helpers",
		Long:              "talentiq formats file sizes, issues record identifiers and prints resume review reports with score badges, ATS compatibility and per-category tips.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	// Persistent flags available to all subcommands
	root.PersistentFlags().String("config", "", "Config file (default is config.{yaml,toml,json} in the user config dir)")
	root.PersistentFlags().String("color", string(config.ColorAuto), "Color output: auto, always, never")
	root.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")

	// Subcommands
	root.AddCommand(newSizeCmd())
	root.AddCommand(newIDCmd())
	root.AddCommand(newReviewCmd())
	root.AddCommand(newDoctorCmd())
	root.AddCommand(newCompletionCmd())

	return root
}

// Execute runs the CLI with the provided context.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	return root.ExecuteContext(ctx)
}

type ctxKey string

const settingsKey ctxKey = "settings"

// setup resolves config and installs the global logger before any subcommand runs.
func setup(cmd *cobra.Command, _ []string) error {
	v, err := config.Init(cmd.Root())
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	settings, err := config.Load(v)
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	log, err := logger.New(settings.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	zap.ReplaceGlobals(log)
	zap.L().Debug("config resolved",
		zap.String("config_file", settings.ConfigFile),
		zap.String("color", string(settings.Color)),
		zap.String("command", cmd.Name()),
	)

	cmd.SetContext(context.WithValue(cmd.Context(), settingsKey, settings))
	return nil
}

func settingsFrom(cmd *cobra.Command) config.Settings {
	if s, ok := cmd.Context().Value(settingsKey).(config.Settings); ok {
		return s
	}
	return config.Settings{Color: config.ColorAuto, LogLevel: "warn"}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command) bool {
	return settingsFrom(cmd).UseColor(isTerminal(cmd.OutOrStdout()))
}
