// Command nwt tracks a net worth from statement screenshots: it parses
// the OCR text, reconciles balances into a durable store, and reports.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/spospordo/Local-Server-Site-Pusher-sub004/cmd"
)

func main() {
	// Shell completion, a no-op outside a completion request.
	completion().Complete("nwt")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	statement := &complete.Command{
		Flags: map[string]complete.Predictor{"d": predict.Nothing},
		Args:  predict.Files("*.txt"),
	}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"parse":     {Args: predict.Files("*.txt")},
			"reconcile": statement,
			"import": {
				Flags: map[string]complete.Predictor{
					"names":    predict.Nothing,
					"balances": predict.Nothing,
					"category": predict.Set{"cash", "investment", "real_estate", "liability", "uncategorized"},
					"d":        predict.Nothing,
				},
				Args: predict.Files("*.json"),
			},
			"accounts": {},
			"add":      {},
			"set":      {},
			"merge":    {},
			"delete":   {},
			"history":  {},
			"assist":   {},
			"topic":    {},
		},
		Flags: map[string]complete.Predictor{
			"store": predict.Files("*.jsonl"),
		},
	}
}
