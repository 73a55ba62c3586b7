package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ctr/internal/checks"
	"ctr/internal/cli"
	"ctr/internal/config"
	"ctr/internal/discovery"
	"ctr/internal/domain"
	"ctr/internal/execution"
	"ctr/internal/registry"
	"ctr/internal/storage"
	"ctr/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
	History  *HistoryCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, logger *zap.Logger) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner(cfg.PathsToIgnore)
	filter := discovery.NewFilter()
	suiteParser := discovery.NewParser()
	runner := execution.NewRunner(logger)
	executor := execution.NewSequentialExecutor(runner, logger)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter()
	errorViewer := ui.NewErrorViewer(jsonStorage)

	return &Commands{
		Run:      NewRunCommand(cfg, scanner, suiteParser, filter, executor, jsonStorage, formatter),
		List:     NewListCommand(cfg, scanner, suiteParser, filter, formatter, jsonStorage),
		Failures: NewFailuresCommand(cfg, jsonStorage, errorViewer),
		History:  NewHistoryCommand(cfg, formatter),
	}
}

// collectCases builds the full run set: the built-in checks first, then any
// checks parsed from discovered suite files, all in registration order.
func collectCases(cfg *config.Config, scanner *discovery.Scanner, parser *discovery.Parser) ([]domain.TestCase, error) {
	reg := registry.New()
	if err := checks.RegisterAll(reg); err != nil {
		return nil, err
	}

	if suiteDir := cfg.GetSuiteDir(); suiteDir != "" {
		files, err := scanner.Scan(suiteDir)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			parsed, err := parser.ParseFile(file)
			if err != nil {
				return nil, err
			}
			for _, tc := range parsed {
				if err := reg.Register(tc.Name, tc.Proc); err != nil {
					return nil, fmt.Errorf("suite file %s: %w", file, err)
				}
			}
		}
	}

	return reg.Cases(), nil
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run all registered checks",
		Long:  "Execute every registered check sequentially in registration order and print the run report",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	runCmd.Flags().StringVarP(&flags.SuiteDir, "suite-dir", "d", "", "Directory to scan for *_checks.yaml suite files")
	runCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter checks by name pattern (supports wildcards, e.g., 'divide_*' or '*zero*')")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on the first non-passed check")
	runCmd.Flags().BoolVar(&flags.OnlyFailed, "failed", false, "Run only checks that failed in the last run (from storage/check-results.json)")
	runCmd.Flags().BoolVar(&flags.Record, "record", false, "Record the run summary to the history database")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered checks",
		Long:  "List every registered check without executing it",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter checks by name pattern (supports wildcards, e.g., 'divide_*' or '*zero*')")
	listCmd.Flags().StringVarP(&flags.SuiteDir, "suite-dir", "d", "", "Directory to scan for *_checks.yaml suite files")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View check failures interactively",
		Long:  "Display failures from the last run in an interactive viewer",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)

	// History command
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs",
		Long:  "List run summaries recorded in the history database, newest first",
		RunE:  c.History.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	historyCmd.Flags().IntVarP(&flags.Limit, "limit", "n", config.DefaultHistoryLimit, "Maximum number of runs to list")
	rootCmd.AddCommand(historyCmd)
}
