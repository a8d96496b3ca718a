package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	finance "github.com/spospordo/Local-Server-Site-Pusher-sub004"
)

type deleteCmd struct {
	id string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove an account" }
func (*deleteCmd) Usage() string {
	return `nwt delete -id <account>

  Removes an account from the store. The removal is recorded in the
  history; to fold a duplicate into its real account, prefer merge, which
  keeps the names matchable.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "account id to remove")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "-id is required")
		return subcommands.ExitUsageError
	}

	s, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := s.Delete(finance.ID(c.id)); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting account: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted account %s.\n", c.id)
	return subcommands.ExitSuccess
}
