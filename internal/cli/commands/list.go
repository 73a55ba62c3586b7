package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ctr/internal/config"
	"ctr/internal/discovery"
	"ctr/internal/storage"
	"ctr/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	parser    *discovery.Parser
	filter    *discovery.Filter
	formatter *ui.Formatter
	storage   storage.Storage
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	parser *discovery.Parser,
	filter *discovery.Filter,
	formatter *ui.Formatter,
	st storage.Storage,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		parser:    parser,
		filter:    filter,
		formatter: formatter,
		storage:   st,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cases, err := collectCases(lc.config, lc.scanner, lc.parser)
	if err != nil {
		return err
	}

	// Filter checks
	cases = lc.filter.FilterByName(cases, lc.config.Flags.Filter)

	if len(cases) == 0 {
		color.Yellow("No checks found")
		return nil
	}

	// Mark checks that failed in the last stored run, when results exist
	failedNames := make(map[string]struct{})
	if output, err := lc.storage.Load(); err == nil {
		for _, failure := range output.Details {
			failedNames[failure.Name] = struct{}{}
		}
	}

	lc.formatter.PrintCaseList(cases, failedNames)
	return nil
}
