package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	finance "github.com/spospordo/Local-Server-Site-Pusher-sub004"
	"github.com/spospordo/Local-Server-Site-Pusher-sub004/renderer"
)

type historyCmd struct {
	account string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the audit history" }
func (*historyCmd) Usage() string {
	return `nwt history [-id <account>]

  Displays the append-only audit history, oldest first: account
  creations, balance updates, refused stale balances, merges and
  deletions. With -id, only the entries touching that account.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "id", "", "only entries for this account id")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	entries := s.History()
	if c.account != "" {
		id := finance.ID(c.account)
		var filtered []finance.HistoryEntry
		for _, e := range entries {
			if e.AccountID == id || e.SurvivorID == id || containsID(e.Inputs, id) {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	printMarkdown(renderer.HistoryMarkdown(entries))
	return subcommands.ExitSuccess
}

func containsID(ids []finance.ID, id finance.ID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
