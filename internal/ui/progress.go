package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar creates and manages the run progress bar
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a new progress bar for the given number of checks.
// The bar renders on stderr so the report text on stdout stays clean.
func NewProgressBar(count int) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe(0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

func describe(passedCount, failedCount int) string {
	return color.CyanString("Running checks: ") +
		color.GreenString("[passed: %d", passedCount) +
		" | " +
		color.RedString("failed: %d]", failedCount)
}

// Update advances the bar to completed and refreshes the live counts.
// failedCount covers both failed and errored checks.
func (p *ProgressBar) Update(completed, passedCount, failedCount int) {
	p.bar.Set(completed)
	p.bar.Describe(describe(passedCount, failedCount))
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}
