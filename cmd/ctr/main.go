package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ctr/internal/cli"
	"ctr/internal/cli/commands"
	"ctr/internal/config"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "ctr",
		Short:   "Sequential calculator check runner",
		Long:    `A sequential check runner for the bundled calculator library. Register checks, execute them one at a time in registration order, and report every outcome.`,
		Version: version,
		// Errors are printed once below, with the report already on stdout
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Build the logger up front; the level is raised after flag parsing
	level := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = level
	logger, err := zapCfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if flags.Verbose {
			level.SetLevel(zapcore.DebugLevel)
		}
	}

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, logger)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}
