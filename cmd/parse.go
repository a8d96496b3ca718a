package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	finance "github.com/spospordo/Local-Server-Site-Pusher-sub004"
	"github.com/spospordo/Local-Server-Site-Pusher-sub004/renderer"
)

type parseCmd struct{}

func (*parseCmd) Name() string     { return "parse" }
func (*parseCmd) Synopsis() string { return "parse a statement text without touching the store" }
func (*parseCmd) Usage() string {
	return `nwt parse [<file>]

  Parses a statement text block into account candidates and shows what a
  reconcile would work with: candidates by section, the computed net
  worth, and the lines the parser could not classify. Reads stdin when no
  file is given. The store is not touched.

Usage Examples:
# Paste a statement directly.
$ nwt parse statement.txt

`
}

func (c *parseCmd) SetFlags(f *flag.FlagSet) {}

func (c *parseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	text, err := readStatement(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading statement: %v\n", err)
		return subcommands.ExitFailure
	}

	result := finance.ParseStatement(text)
	printMarkdown(renderer.ParseMarkdown(&result))
	return subcommands.ExitSuccess
}

// readStatement reads the statement text from the file argument, or from
// stdin when none is given.
func readStatement(f *flag.FlagSet) (string, error) {
	if f.NArg() > 1 {
		return "", fmt.Errorf("expected at most one file argument, got %d", f.NArg())
	}
	if f.NArg() == 1 {
		data, err := os.ReadFile(f.Arg(0))
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
