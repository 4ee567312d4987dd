package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/temporal-IPA/ibizo/pkg/config"
)

// app carries the state shared by the subcommands once the persistent
// flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Zulu noun-class prefix stripper",
		Long: `ibizo removes the noun-class prefix from Zulu nouns and prints
their base. The class can be given explicitly; otherwise the prefix is
guessed from the noun itself.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file path (YAML, default: ibizo.yaml in current or parent directories)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newBaseCmd(a),
		newClassesCmd(a),
		newBatchCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// setup loads the configuration and builds the logger.
func (a *app) setup(logOut io.Writer) error {
	bootLevel := a.logLevel
	if bootLevel == "" {
		bootLevel = "info"
	}
	boot, err := newLogger(logOut, bootLevel)
	if err != nil {
		return err
	}

	cfg, err := config.NewLoader(boot).Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}

	logger, err := newLogger(logOut, cfg.Log.Level)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger.Named(appName)
	return nil
}

// format resolves the output format from a --format flag value, falling
// back to the configured one.
func (a *app) format(flag string) (string, error) {
	if flag == "" {
		return a.cfg.Output.Format, nil
	}
	cfg := *a.cfg
	cfg.Output.Format = flag
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	return flag, nil
}

func newLogger(w io.Writer, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// Skips configuration loading.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}
}
