package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/creativeyann17/go-modkit/internal/config"
	"github.com/creativeyann17/go-modkit/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Populated before any subcommand runs
var (
	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:           "modkit",
	Short:         "modkit - stage game mod archives and folders",
	Long:          "modkit extracts mod archives, copies mod folders, flags fake mods and manages mod links.",
	Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		flags := cmd.Flags()
		if flags.Changed("log-level") {
			cfg.LogLevel, _ = flags.GetString("log-level")
		}
		if flags.Changed("log-dev") {
			cfg.LogDev, _ = flags.GetBool("log-dev")
		}

		l, err := logging.New(logging.Config{Level: cfg.LogLevel, Development: cfg.LogDev})
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error (env MODKIT_LOG_LEVEL)")
	rootCmd.PersistentFlags().Bool("log-dev", false, "Human readable development logs (env MODKIT_LOG_DEV)")
}

// threadsFlag resolves the worker count: flag, then MODKIT_THREADS, then one per CPU
func threadsFlag(cmd *cobra.Command, value int) int {
	if cmd.Flags().Changed("threads") {
		return value
	}
	return cfg.Threads
}
