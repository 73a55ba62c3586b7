package ui

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"

	"ctr/internal/domain"
	"ctr/internal/history"
)

var (
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	cyan   = color.New(color.FgCyan)
)

// Formatter formats and displays run output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to stdout
func NewFormatter() *Formatter {
	return &Formatter{out: os.Stdout}
}

// PrintRunHeader prints the banner shown before execution starts.
func (f *Formatter) PrintRunHeader(total int) {
	fmt.Fprint(f.out, "\n")
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                      Calculator Check Run                      ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")
	fmt.Fprintf(f.out, "Running %d check(s)\n\n", total)
}

// PrintReport writes the report text: one line per outcome in execution
// order, then the summary line. The summary line is always the last line.
func (f *Formatter) PrintReport(report *domain.Report) {
	for _, outcome := range report.Outcomes {
		switch outcome.Status {
		case domain.StatusFailed:
			red.Fprintln(f.out, outcome.Line())
		case domain.StatusErrored:
			yellow.Fprintln(f.out, outcome.Line())
		default:
			green.Fprintln(f.out, outcome.Line())
		}
	}

	fmt.Fprintln(f.out)
	if report.AllPassed() {
		green.Fprintln(f.out, report.Summary())
	} else {
		red.Fprintln(f.out, report.Summary())
	}
}

// PrintCaseList prints the registered checks as a tree.
// failedNames is optional; if set, checks in this set are marked with [F] in red (from last run).
func (f *Formatter) PrintCaseList(cases []domain.TestCase, failedNames map[string]struct{}) {
	green.Fprintf(f.out, "Found %d check(s):\n\n", len(cases))

	for i, tc := range cases {
		failMarker := ""
		if len(failedNames) > 0 {
			if _, ok := failedNames[tc.Name]; ok {
				failMarker = " " + color.RedString("[F]")
			}
		}

		if i == len(cases)-1 {
			cyan.Fprintf(f.out, "└── %s%s\n", tc.Name, failMarker)
		} else {
			cyan.Fprintf(f.out, "├── %s%s\n", tc.Name, failMarker)
		}
	}
}

// PrintHistory prints recorded run summaries, newest first.
func (f *Formatter) PrintHistory(records []history.RunRecord) {
	if len(records) == 0 {
		yellow.Fprintln(f.out, "No recorded runs yet")
		return
	}

	w := tabwriter.NewWriter(f.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWHEN\tTOTAL\tPASSED\tFAILED\tERRORED\tDURATION")
	for _, record := range records {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\t%.2fs\n",
			record.ID,
			record.CreatedAt.Format("2006-01-02 15:04:05"),
			record.TotalCases,
			record.Passed,
			record.Failed,
			record.Errored,
			record.DurationSeconds)
	}
	w.Flush()
}
