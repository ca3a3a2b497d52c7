package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhanam/fincalc/internal/calculation"
	"github.com/dhanam/fincalc/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries what every subcommand needs once the root command has
// resolved settings.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	format     string
	debug      bool

	settings *config.Settings
	logger   *zap.Logger
	engine   *calculation.CalculationEngine
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "fincalc",
		Short:         "Loan, investment, debt payoff and retirement calculators",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "settings file (default ./fincalc.yaml or $HOME/.config/fincalc/fincalc.yaml)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", "", "log format override (json, console)")
	flags.StringVarP(&a.format, "format", "f", "", "report format (console, json, yaml, csv, detailed-csv, html, pdf)")
	flags.BoolVar(&a.debug, "debug", false, "log intermediate calculation figures")

	root.AddCommand(
		newRunCommand(a),
		newExampleCommand(a),
		newEMICommand(a),
		newSIPCommand(a),
		newLumpSumCommand(a),
		newGoalCommand(a),
		newPayoffCommand(a),
		newRetireCommand(a),
	)
	return root
}

// init loads settings, applies flag overrides and builds the logger and engine.
func (a *app) init() error {
	settings, err := config.LoadSettings(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		settings.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		settings.Logging.Format = a.logFormat
	}
	if a.format != "" {
		settings.Output.Format = a.format
	}
	a.settings = settings

	logger, err := initializeLogger(settings.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	a.engine = calculation.NewCalculationEngine()
	a.engine.SetLogger(calculation.NewZapLogger(logger))
	a.engine.Debug = a.debug
	return nil
}

func initializeLogger(logging config.LoggingSettings) (*zap.Logger, error) {
	level := strings.ToLower(logging.Level)
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", logging.Level)
	}

	format := logging.Format
	if format == "" {
		format = "console"
	}

	var cfg zap.Config
	switch format {
	case "console":
		cfg = zap.NewDevelopmentConfig()
	case "json":
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	if logging.OutputFile != "" {
		if dir := filepath.Dir(logging.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
			}
		}
		cfg.OutputPaths = []string{logging.OutputFile}
		cfg.ErrorOutputPaths = []string{logging.OutputFile}
	}

	return cfg.Build()
}
