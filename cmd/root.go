// Package cmd implements the CLI commands for urlkit using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/urlkit/config"
	"github.com/gaurav-prasanna/urlkit/logging"
)

// app carries what the persistent pre-run loads to the subcommands.
type app struct {
	configFile string
	cfg        *config.Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logging.Nop()}

	rootCmd := &cobra.Command{
		Use:   "urlkit",
		Short: "urlkit — derive modified URLs from existing ones",
		Long: `urlkit rewrites URLs without re-serializing their parts by hand.
It can replace or merge query parameters, replace or append path segments,
and replace the hash, for a single URL or for the links of an HTML page.

Usage:
  urlkit transform <url> [flags]
  urlkit inspect <url>
  urlkit rewrite <file|-> [flags]`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "Config file (default: urlkit.{yaml,yml,json,toml} if present)")
	rootCmd.PersistentFlags().String("env", "dev", `Runtime environment "dev"|"prod"`)
	rootCmd.PersistentFlags().String("log_level", "warn", "Log level")

	rootCmd.AddCommand(newTransformCmd(a))
	rootCmd.AddCommand(newInspectCmd(a))
	rootCmd.AddCommand(newRewriteCmd(a))
	return rootCmd
}

// setup loads configuration and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.Options{
		ConfigFile: a.configFile,
		Flags:      cmd.Flags(),
		DotEnv:     true,
	}, a.logger)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.BuildLogger(cfg.LogLevel, cfg.Env)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	a.logger = logger
	a.logger.Debug("configuration loaded", zap.String("env", cfg.Env), zap.Strings("rewrite_targets", cfg.RewriteTargets))
	return nil
}

// Execute runs the root command.
func Execute() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
