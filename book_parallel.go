package payx

import (
	"fmt"
	"io"
	"sync"
)

// rejectedTx carries one per-transaction failure from a shard worker to
// the reporting goroutine.
type rejectedTx struct {
	tx  Tx
	err error
}

// shardWorker owns a disjoint subset of the accounts and applies its
// transactions strictly in the order they are routed to it.
type shardWorker struct {
	accounts map[ClientID]*Account
}

func (w *shardWorker) run(txs <-chan Tx, rejects chan<- rejectedTx) {
	for tx := range txs {
		account, ok := w.accounts[tx.Client]
		if !ok {
			account = NewAccount(tx.Client)
			w.accounts[tx.Client] = account
		}
		if err := account.Apply(tx); err != nil {
			rejects <- rejectedTx{tx: tx, err: err}
		}
	}
}

// DecodeBookParallel replays the transaction stream across several shard
// workers and produces the same book DecodeBook would.
//
// No invariant couples two accounts, so accounts can be replayed in
// parallel as long as all of one client's transactions reach the same
// worker in arrival order. A single router preserves that order: it
// reads records sequentially, routes each one by client identifier, and
// records global first-seen client order for the final assembly.
//
// Rejected transactions reach report from a dedicated goroutine, one at
// a time, but their relative order across clients is unspecified.
func DecodeBookParallel(r io.Reader, workers int, report func(Tx, error)) (*Book, error) {
	if workers < 1 {
		workers = 1
	}

	shards := make([]*shardWorker, workers)
	inputs := make([]chan Tx, workers)
	rejects := make(chan rejectedTx, workers)

	var wg sync.WaitGroup
	for i := range workers {
		shards[i] = &shardWorker{accounts: make(map[ClientID]*Account)}
		inputs[i] = make(chan Tx, 64)
		wg.Add(1)
		go func(w *shardWorker, txs <-chan Tx) {
			defer wg.Done()
			w.run(txs, rejects)
		}(shards[i], inputs[i])
	}

	var reporting sync.WaitGroup
	reporting.Add(1)
	go func() {
		defer reporting.Done()
		for rej := range rejects {
			if report != nil {
				report(rej.tx, rej.err)
			}
		}
	}()

	reader := NewTxReader(r)
	seen := make(map[ClientID]bool)
	var order []ClientID
	var readErr error
	for {
		tx, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			readErr = fmt.Errorf("could not read transaction: %w", err)
			break
		}
		if !seen[tx.Client] {
			seen[tx.Client] = true
			order = append(order, tx.Client)
		}
		inputs[shardOf(tx.Client, workers)] <- tx
	}

	for _, in := range inputs {
		close(in)
	}
	wg.Wait()
	close(rejects)
	reporting.Wait()

	if readErr != nil {
		return nil, readErr
	}

	book := NewBook()
	for _, id := range order {
		book.order = append(book.order, id)
		book.accounts[id] = shards[shardOf(id, workers)].accounts[id]
	}
	return book, nil
}

// shardOf routes a client to its worker. All transactions of one client
// land on the same shard.
func shardOf(id ClientID, workers int) int {
	return int(id.id) % workers
}
