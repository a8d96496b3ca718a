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

type mergeCmd struct {
	ids idsFlag
}

// idsFlag collects repeated -id flags.
type idsFlag []finance.ID

func (v *idsFlag) String() string {
	s := ""
	for i, id := range *v {
		if i > 0 {
			s += ","
		}
		s += string(id)
	}
	return s
}

func (v *idsFlag) Set(s string) error {
	*v = append(*v, finance.ID(s))
	return nil
}

func (*mergeCmd) Name() string     { return "merge" }
func (*mergeCmd) Synopsis() string { return "consolidate duplicate accounts into one" }
func (*mergeCmd) Usage() string {
	return `nwt merge -id <account> -id <account> [...]

  Consolidates the listed accounts into one. The account with the most
  recent balance update survives; the others are removed, and every name
  they were known by keeps matching the survivor. Use after confirming
  that OCR drift split one real account into several records.

Usage Examples:
# Fold a misread duplicate back into the real account.
$ nwt merge -id 1a2b3c -id 4d5e6f

`
}

func (c *mergeCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.ids, "id", "account id to merge (repeat at least twice)")
}

func (c *mergeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	result, err := s.Merge(c.ids)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error merging: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.MergeMarkdown(result))
	return subcommands.ExitSuccess
}
