package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"talentiq/internal/dirs"
)

// ColorMode controls whether terminal output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Settings are the resolved runtime options.
type Settings struct {
	Color      ColorMode
	LogLevel   string
	ConfigFile string // empty when no config file was read
}

// Init wires a Viper instance with config paths, env, defaults, and the
// root's persistent flags. A missing config file in the default location is
// not an error; an explicit --config that cannot be read is.
func Init(root *cobra.Command) (*viper.Viper, error) {
	v := viper.New()

	if file, _ := root.PersistentFlags().GetString("config"); file != "" {
		v.SetConfigFile(file)
	} else {
		if cfgDir, err := dirs.ConfigDir(); err == nil {
			v.AddConfigPath(cfgDir)
		}
		v.SetConfigName("config") // supports config.{yaml|yml|json|toml}
	}

	// Environment variables: TALENTIQ_*
	v.SetEnvPrefix("TALENTIQ")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("color", string(ColorAuto))
	v.SetDefault("log_level", "warn")

	_ = v.BindPFlag("color", root.PersistentFlags().Lookup("color"))
	_ = v.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading config")
		}
	}
	return v, nil
}

// Load resolves Settings from an initialized Viper instance.
func Load(v *viper.Viper) (Settings, error) {
	s := Settings{
		Color:      ColorMode(strings.ToLower(strings.TrimSpace(v.GetString("color")))),
		LogLevel:   strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
		ConfigFile: v.ConfigFileUsed(),
	}
	switch s.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return Settings{}, errors.Newf("invalid color mode %q (valid: auto|always|never)", s.Color)
	}
	return s, nil
}

// UseColor decides coloring for the given mode; isTTY is consulted only in
// auto mode.
func (s Settings) UseColor(isTTY bool) bool {
	switch s.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTTY
	}
}
