package payx

import (
	"fmt"
	"io"
	"iter"
)

// Book routes transactions to client accounts, creating an account the
// first time a client identifier is seen.
//
// Result rows are emitted in first-seen client order, so the book keeps
// that order next to the account index.
type Book struct {
	order    []ClientID
	accounts map[ClientID]*Account
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{accounts: make(map[ClientID]*Account)}
}

// Append forwards one transaction to the addressed account, creating it
// on first sight. A failure concerns that single transaction: the book
// itself stays valid and subsequent transactions are unaffected.
func (b *Book) Append(tx Tx) error {
	account, ok := b.accounts[tx.Client]
	if !ok {
		account = NewAccount(tx.Client)
		b.accounts[tx.Client] = account
		b.order = append(b.order, tx.Client)
	}
	return account.Apply(tx)
}

// Account returns the account for a client, or nil if the client has
// never been seen.
func (b *Book) Account(id ClientID) *Account {
	return b.accounts[id]
}

// Len returns the number of accounts in the book.
func (b *Book) Len() int { return len(b.accounts) }

// Accounts iterates over the accounts in first-seen client order.
func (b *Book) Accounts() iter.Seq[*Account] {
	return func(yield func(*Account) bool) {
		for _, id := range b.order {
			if !yield(b.accounts[id]) {
				return
			}
		}
	}
}

// DecodeBook reads delimited transaction records from r and replays them
// into a new book.
//
// Rejected transactions are passed to report together with their reason
// and processing continues; a nil report drops them silently. Only a
// malformed record aborts the replay.
func DecodeBook(r io.Reader, report func(Tx, error)) (*Book, error) {
	book := NewBook()
	reader := NewTxReader(r)

	for {
		tx, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read transaction: %w", err)
		}

		if err := book.Append(tx); err != nil && report != nil {
			report(tx, err)
		}
	}

	return book, nil
}
