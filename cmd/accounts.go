package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/spospordo/Local-Server-Site-Pusher-sub004/renderer"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list accounts, balances and the net worth" }
func (*accountsCmd) Usage() string {
	return `nwt accounts

  Lists every account with its id, name, category, current balance and
  last update day, followed by the net worth. Liabilities subtract from
  the net worth.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.AccountsMarkdown(s.Accounts(), s.NetWorth()))
	return subcommands.ExitSuccess
}
