package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/finreplay/payx/renderer"
)

type reportCmd struct {
	currency string
	workers  int
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "render a markdown account statement" }
func (*reportCmd) Usage() string {
	return `payx report [-currency <code>] [-workers <n>] <input.csv>

  Replays the transaction history and renders the final account state as
  a markdown statement. With -currency, balances are formatted in that
  display currency (e.g. USD, EUR) instead of raw decimal text.
`
}

func (p *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.currency, "currency", "", "Display currency code for balances.")
	f.IntVar(&p.workers, "workers", 1, "Number of shard workers replaying accounts in parallel.")
}

func (p *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: missing input file argument.")
		return subcommands.ExitUsageError
	}

	// The statement reflects final balances only, so rejected
	// transactions are dropped silently here; use check to see them.
	book, err := decodeBookFile(f.Arg(0), p.workers, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Print(renderer.AccountsMarkdown(book, p.currency))
	return subcommands.ExitSuccess
}
