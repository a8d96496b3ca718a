// Package cmd implements the CLI application to track a net worth from
// statement screenshots.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/mattn/go-isatty"

	finance "github.com/spospordo/Local-Server-Site-Pusher-sub004"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&parseCmd{}, "statements")
	c.Register(&reconcileCmd{}, "statements")
	c.Register(&importCmd{}, "statements")

	c.Register(&accountsCmd{}, "accounts")
	c.Register(&addCmd{}, "accounts")
	c.Register(&setCmd{}, "accounts")
	c.Register(&mergeCmd{}, "accounts")
	c.Register(&deleteCmd{}, "accounts")

	c.Register(&historyCmd{}, "reporting")

	c.Register(&AssistCmd{}, "help")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("store", "networth.jsonl", "Path to the account store file (JSONL format)")

// OpenStore opens the app store file. A missing file is an empty store.
func OpenStore() (*finance.Store, error) {
	return finance.LoadStore(*storeFile)
}

// printMarkdown renders markdown for the terminal. When stdout is not a
// terminal, or rendering fails, the raw markdown is printed as is.
func printMarkdown(md string) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Print(md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
