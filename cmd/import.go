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

type importCmd struct {
	names    string
	balances string
	category string
	day      string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "reconcile accounts from a JSON export" }
func (*importCmd) Usage() string {
	return `nwt import -names <jsonpath> -balances <jsonpath> [-category <category>] [-d <day>] <file>

  Extracts account candidates from a bank's or aggregator's JSON export
  and reconciles them like a parsed statement. The JSONPath expressions
  describe where the provider put the names and the balances.

Usage Examples:
$ nwt import -names '$.accounts[*].name' -balances '$.accounts[*].balance' -category cash export.json

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.names, "names", "", "JSONPath selecting the account names")
	f.StringVar(&c.balances, "balances", "", "JSONPath selecting the balances, in the same order")
	f.StringVar(&c.category, "category", "", "category for all imported accounts")
	f.StringVar(&c.day, "d", "", "day the export was produced, YYYY-MM-DD (default today)")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.names == "" || c.balances == "" {
		fmt.Fprintln(os.Stderr, "-names and -balances are required")
		return subcommands.ExitUsageError
	}
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one export file argument")
		return subcommands.ExitUsageError
	}
	var category finance.Category
	if c.category != "" {
		var err error
		if category, err = finance.ParseCategory(c.category); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid -category: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	asOf, ok := parseDay(c.day)
	if !ok {
		return subcommands.ExitUsageError
	}

	export, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening export: %v\n", err)
		return subcommands.ExitFailure
	}
	defer export.Close()

	candidates, diags, err := finance.ImportCandidates(export, finance.ImportSpec{
		Names:    c.names,
		Balances: c.balances,
		Category: category,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing: %v\n", err)
		return subcommands.ExitFailure
	}

	s, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	report, err := s.Reconcile(candidates, asOf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reconciling: %v\n", err)
		return subcommands.ExitFailure
	}
	if asOf.IsZero() {
		asOf = date.Today()
	}

	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "warning: %s\n", d)
	}
	printMarkdown(renderer.ReconcileMarkdown(report, asOf))
	return subcommands.ExitSuccess
}
