package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings are the tool-level options of the fincalc CLI. They come from an
// optional fincalc.yaml, FINCALC_* environment variables and flag overrides.
type Settings struct {
	Logging LoggingSettings `mapstructure:"logging"`
	Output  OutputSettings  `mapstructure:"output"`
}

// LoggingSettings holds logging configuration options
type LoggingSettings struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputFile string `mapstructure:"output_file"` // optional file output
}

// OutputSettings holds report output options
type OutputSettings struct {
	Format string `mapstructure:"format"` // console, json, yaml, csv, html, pdf
}

const envPrefix = "FINCALC"

// LoadSettings reads settings from path. With an empty path it looks for
// fincalc.yaml in the working directory and $HOME/.config/fincalc, and falls
// back to defaults when none exists. An explicit path must exist.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output_file", "")
	v.SetDefault("output.format", "console")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("fincalc")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/fincalc")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading settings file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}

	return &settings, nil
}
