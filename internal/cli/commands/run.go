package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ctr/internal/config"
	"ctr/internal/discovery"
	"ctr/internal/domain"
	"ctr/internal/execution"
	"ctr/internal/history"
	"ctr/internal/storage"
	"ctr/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	parser    *discovery.Parser
	filter    *discovery.Filter
	executor  *execution.SequentialExecutor
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	parser *discovery.Parser,
	filter *discovery.Filter,
	executor *execution.SequentialExecutor,
	st storage.Storage,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		scanner:   scanner,
		parser:    parser,
		filter:    filter,
		executor:  executor,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	cases, err := collectCases(rc.config, rc.scanner, rc.parser)
	if err != nil {
		return err
	}

	// Keep only checks that failed in the last stored run
	if rc.config.Flags.OnlyFailed {
		cases = rc.keepFailedCases(cases)
	}

	// Filter checks
	cases = rc.filter.FilterByName(cases, rc.config.Flags.Filter)

	if len(cases) == 0 {
		color.Yellow("No checks to run")
		return nil
	}

	rc.formatter.PrintRunHeader(len(cases))

	// Create and set progress bar
	progressBar := ui.NewProgressBar(len(cases))
	rc.executor.SetProgress(progressBar)

	// Execute checks
	report, err := rc.executor.ExecuteWithOptions(cases, rc.config.Flags.FailFast)
	if err != nil {
		return err
	}

	// Print the report
	rc.formatter.PrintReport(report)

	// Save results
	if err := rc.storage.Save(report); err != nil {
		return fmt.Errorf("failed to save check results: %w", err)
	}

	// Record history if requested
	if rc.config.Flags.Record {
		if err := rc.recordRun(report); err != nil {
			return fmt.Errorf("failed to record run history: %w", err)
		}
	}

	if !report.AllPassed() {
		return fmt.Errorf("%d of %d check(s) did not pass", report.Failed+report.Errored, report.Total())
	}
	return nil
}

// keepFailedCases keeps only checks recorded as non-passed in the last
// stored run. Without stored results every check runs.
func (rc *RunCommand) keepFailedCases(cases []domain.TestCase) []domain.TestCase {
	output, err := rc.storage.Load()
	if err != nil {
		color.Yellow("No stored results found, running all checks")
		return cases
	}

	failedNames := make(map[string]struct{}, len(output.Details))
	for _, failure := range output.Details {
		failedNames[failure.Name] = struct{}{}
	}

	var kept []domain.TestCase
	for _, tc := range cases {
		if _, ok := failedNames[tc.Name]; ok {
			kept = append(kept, tc)
		}
	}
	return kept
}

// recordRun appends the run summary to the history database.
func (rc *RunCommand) recordRun(report *domain.Report) error {
	recorder, err := history.Open(rc.config)
	if err != nil {
		return err
	}
	defer recorder.Close()

	return recorder.Record(report.Meta())
}
