// Package cmd implements the CLI application to replay transaction
// histories into client account balances.
package cmd

import (
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/finreplay/payx"
)

// Commands lists the application subcommands in registration order.
// A main package calls Register on each and executes the user-selected one.
var Commands = []subcommands.Command{
	&processCmd{},
	&checkCmd{},
	&reportCmd{},
}

// decodeBookFile replays the transactions of one input file into a book.
// Per-transaction failures go through report; only open/parse errors fail.
func decodeBookFile(path string, workers int, report func(payx.Tx, error)) (*payx.Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open input file %q: %w", path, err)
	}
	defer f.Close()

	if workers > 1 {
		return payx.DecodeBookParallel(f, workers, report)
	}
	return payx.DecodeBook(f, report)
}
