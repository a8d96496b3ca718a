package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	finance "github.com/spospordo/Local-Server-Site-Pusher-sub004"
	"github.com/spospordo/Local-Server-Site-Pusher-sub004/date"
)

type addCmd struct {
	name     string
	category string
	balance  string
	day      string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "create an account by hand" }
func (*addCmd) Usage() string {
	return `nwt add -name <name> [-category <category>] [-balance <amount>] [-d <day>]

  Creates an account directly, without going through a statement. Useful
  for assets that never appear on the dashboard.

Usage Examples:
$ nwt add -name "Car" -category real_estate -balance 18000

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "account name, as statements will spell it")
	f.StringVar(&c.category, "category", string(finance.Uncategorized), "cash, investment, real_estate, liability or uncategorized")
	f.StringVar(&c.balance, "balance", "0", "opening balance")
	f.StringVar(&c.day, "d", "", "day the balance is valid, YYYY-MM-DD (default today)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	category, err := finance.ParseCategory(c.category)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -category: %v\n", err)
		return subcommands.ExitUsageError
	}
	value, err := decimal.NewFromString(c.balance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -balance %q: %v\n", c.balance, err)
		return subcommands.ExitUsageError
	}
	asOf, ok := parseDay(c.day)
	if !ok {
		return subcommands.ExitUsageError
	}
	if asOf.IsZero() {
		asOf = date.Today()
	}

	s, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	a, err := s.Add(c.name, category, finance.M(value, finance.DefaultCurrency), asOf.UTC())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding account: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created account %s (%s) with balance %s.\n", a.Name, a.ID(), a.Balance)
	return subcommands.ExitSuccess
}
