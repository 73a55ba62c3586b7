package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ctr/internal/config"
	"ctr/internal/history"
	"ctr/internal/ui"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(cfg *config.Config, formatter *ui.Formatter) *HistoryCommand {
	return &HistoryCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	recorder, err := history.Open(hc.config)
	if err != nil {
		return fmt.Errorf("failed to open run history: %w", err)
	}
	defer recorder.Close()

	records, err := recorder.Recent(hc.config.Flags.Limit)
	if err != nil {
		return err
	}

	hc.formatter.PrintHistory(records)
	return nil
}
