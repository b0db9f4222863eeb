package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/finreplay/payx"
)

type processCmd struct {
	output  string
	workers int
	quiet   bool
}

func (*processCmd) Name() string     { return "process" }
func (*processCmd) Synopsis() string { return "replay a transaction file into account balances" }
func (*processCmd) Usage() string {
	return `payx process [-o <output>] [-workers <n>] [-q] <input.csv>

  Replays the transaction history and writes one result row per client
  (client,available,held,total,locked) to stdout.

  Rejected transactions (locked account, insufficient balance, duplicate
  transaction id) are reported on stderr and do not stop the run.
`
}

func (p *processCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Write results to this file instead of stdout.")
	f.IntVar(&p.workers, "workers", 1, "Number of shard workers replaying accounts in parallel.")
	f.BoolVar(&p.quiet, "q", false, "Suppress per-transaction diagnostics.")
}

func (p *processCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: missing input file argument.")
		return subcommands.ExitUsageError
	}

	report := func(tx payx.Tx, err error) {
		log.Printf("failed to process %s: %v", tx, err)
	}
	if p.quiet {
		report = nil
	}

	book, err := decodeBookFile(f.Arg(0), p.workers, report)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	out := os.Stdout
	if p.output != "" {
		out, err = os.Create(p.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not create output file %q: %v\n", p.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	if err := payx.EncodeBook(out, book); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
