package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	finance "github.com/spospordo/Local-Server-Site-Pusher-sub004"
)

type setCmd struct {
	id       string
	name     string
	display  string
	notes    string
	category string
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "edit an account's name, display name, notes or category" }
func (*setCmd) Usage() string {
	return `nwt set -id <account> [-name <name>] [-display <label>] [-notes <text>] [-category <category>]

  Edits one account. Renaming keeps the old name matchable: future
  statements using it still find the account. The display name is a
  cosmetic label and never affects matching.

Usage Examples:
# Fix an OCR-mangled name and give it a friendly label.
$ nwt set -id 1a2b3c -name "My Cash Account" -display "Groceries buffer"

`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "account id to edit")
	f.StringVar(&c.name, "name", "", "new matching-relevant name")
	f.StringVar(&c.display, "display", "", "new cosmetic display name")
	f.StringVar(&c.notes, "notes", "", "new free-text notes")
	f.StringVar(&c.category, "category", "", "new category")
}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "-id is required")
		return subcommands.ExitUsageError
	}
	if c.name == "" && c.display == "" && c.notes == "" && c.category == "" {
		fmt.Fprintln(os.Stderr, "nothing to set: give -name, -display, -notes or -category")
		return subcommands.ExitUsageError
	}

	s, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	id := finance.ID(c.id)

	if c.name != "" {
		if err := s.Rename(id, c.name); err != nil {
			fmt.Fprintf(os.Stderr, "Error renaming: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if c.display != "" {
		if err := s.SetDisplayName(id, c.display); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting display name: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if c.notes != "" {
		if err := s.SetNotes(id, c.notes); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting notes: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if c.category != "" {
		category, err := finance.ParseCategory(c.category)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid -category: %v\n", err)
			return subcommands.ExitUsageError
		}
		if err := s.SetCategory(id, category); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting category: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	a, _ := s.Get(id)
	fmt.Printf("Updated account %s (%s).\n", a.Name, a.ID())
	return subcommands.ExitSuccess
}
