package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	finance "github.com/spospordo/Local-Server-Site-Pusher-sub004"
	"github.com/spospordo/Local-Server-Site-Pusher-sub004/date"
	"github.com/spospordo/Local-Server-Site-Pusher-sub004/renderer"
)

type reconcileCmd struct {
	day string
}

func (*reconcileCmd) Name() string     { return "reconcile" }
func (*reconcileCmd) Synopsis() string { return "apply a statement text to the store" }
func (*reconcileCmd) Usage() string {
	return `nwt reconcile [-d <day>] [<file>]

  Parses a statement text block and applies it to the store as of the
  given day, the day the screenshot was taken (today by default).
  Matched accounts are updated unless their data is newer, unmatched
  candidates create accounts, and ambiguities are reported for manual
  resolution. Reads stdin when no file is given.

Usage Examples:
# Apply last Monday's screenshot.
$ nwt reconcile -d 2026-01-12 statement.txt

`
}

func (c *reconcileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "d", "", "day the statement was captured, YYYY-MM-DD (default today)")
}

func (c *reconcileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf, ok := parseDay(c.day)
	if !ok {
		return subcommands.ExitUsageError
	}

	text, err := readStatement(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading statement: %v\n", err)
		return subcommands.ExitFailure
	}
	result := finance.ParseStatement(text)

	s, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := s.Reconcile(result.Candidates, asOf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reconciling: %v\n", err)
		return subcommands.ExitFailure
	}
	if asOf.IsZero() {
		asOf = date.Today()
	}

	for _, d := range result.Diags {
		fmt.Fprintf(os.Stderr, "warning: %s\n", d)
	}
	printMarkdown(renderer.ReconcileMarkdown(report, asOf))
	return subcommands.ExitSuccess
}

// parseDay parses an optional -d flag value. Empty means the zero day,
// which the store interprets as today.
func parseDay(s string) (date.Date, bool) {
	if s == "" {
		return date.Date{}, true
	}
	d, err := date.Parse(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -d day %q: %v\n", s, err)
		return date.Date{}, false
	}
	return d, true
}
