package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wifiqr/wifiqr-go/pkg/log"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	configPath string

	v      *viper.Viper
	cfg    *Config
	logger *slog.Logger

	events  log.Logger
	closers []io.Closer
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           AppName,
		Short:         "Build Wi-Fi QR code payloads",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/wifiqr/config.yaml)")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.String("log-file", "", "append payload events to this CBOR log file")

	cmd.AddCommand(
		a.encodeCmd(),
		a.batchCmd(),
		a.convertCmd(),
		a.shellCmd(),
		logCmd(),
		versionCmd(),
	)
	return cmd
}

// setup loads the configuration and the operational logger.
func (a *app) setup(cmd *cobra.Command) error {
	v, err := newViper(a.configPath)
	if err != nil {
		return err
	}
	if err := v.BindPFlag("log_level", cmd.Flags().Lookup("log-level")); err != nil {
		return err
	}
	if err := v.BindPFlag("log_file", cmd.Flags().Lookup("log-file")); err != nil {
		return err
	}

	cfg, err := decodeConfig(v)
	if err != nil {
		return err
	}
	level, _ := parseLevel(cfg.LogLevel)

	a.v = v
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.logger.Debug("configuration loaded", "config", v.ConfigFileUsed(), "log_level", cfg.LogLevel)
	return nil
}

// eventLogger returns the payload event logger: the operational log, plus
// the configured CBOR log file if any.
func (a *app) eventLogger() (log.Logger, error) {
	if a.events != nil {
		return a.events, nil
	}

	loggers := []log.Logger{log.NewSlogAdapter(a.logger)}
	if a.cfg.LogFile != "" {
		fl, err := log.NewFileLogger(a.cfg.LogFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open event log: %w", err)
		}
		a.closers = append(a.closers, fl)
		loggers = append(loggers, fl)
		a.logger.Debug("event log opened", "path", a.cfg.LogFile)
	}

	a.events = log.NewMultiLogger(loggers...)
	return a.events, nil
}

func (a *app) close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}
