package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/finreplay/payx"
	"github.com/finreplay/payx/renderer"
)

type checkCmd struct {
	workers int
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "replay a transaction file and list rejected transactions" }
func (*checkCmd) Usage() string {
	return `payx check [-workers <n>] <input.csv>

  Replays the transaction history and prints every rejected transaction
  together with the rule it violated, followed by a summary. The exit
  status only reflects whether the file itself could be read and parsed:
  business-rule rejections are findings, not failures.
`
}

func (p *checkCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.workers, "workers", 1, "Number of shard workers replaying accounts in parallel.")
}

func (p *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: missing input file argument.")
		return subcommands.ExitUsageError
	}

	var rejected, locked, short, duplicate int
	report := func(tx payx.Tx, err error) {
		rejected++
		switch {
		case errors.Is(err, payx.ErrLockedAccount):
			locked++
		case errors.Is(err, payx.ErrNotEnoughBalance):
			short++
		case errors.Is(err, payx.ErrDuplicateTransactionID):
			duplicate++
		}
		fmt.Printf("rejected: %s: %v\n", renderer.Transaction(tx), err)
	}

	book, err := decodeBookFile(f.Arg(0), p.workers, report)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%d account(s), %d rejected transaction(s): %d on locked accounts, %d short of balance, %d duplicate id(s)\n",
		book.Len(), rejected, locked, short, duplicate)
	return subcommands.ExitSuccess
}
