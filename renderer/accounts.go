// Package renderer renders replayed account state as markdown reports.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/finreplay/payx"
)

// AccountsMarkdown renders one row per account, in first-seen client
// order. When currency is non-empty, balances are formatted in that
// display currency instead of raw decimal text.
func AccountsMarkdown(book *payx.Book, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Account Statement")
	doc.PlainText(fmt.Sprintf("%d client account(s) after replay.", book.Len()))

	format := func(a payx.Amount) string {
		if currency == "" {
			return a.String()
		}
		return a.Format(currency)
	}

	var rows [][]string
	var locked int
	for account := range book.Accounts() {
		if account.Locked() {
			locked++
		}
		rows = append(rows, []string{
			account.ID().String(),
			format(account.Available()),
			format(account.Held()),
			format(account.Total()),
			fmt.Sprintf("%t", account.Locked()),
		})
	}

	doc.Table(md.TableSet{
		Header: []string{"Client", "Available", "Held", "Total", "Locked"},
		Rows:   rows,
	})

	if locked > 0 {
		doc.PlainText(fmt.Sprintf("%d account(s) locked by chargeback.", locked))
	}

	return doc.String()
}

// Transaction renders a transaction to a one-line string for
// diagnostics and the check report.
func Transaction(tx payx.Tx) string {
	switch tx.Type {
	case payx.TxDeposit:
		return fmt.Sprintf("Deposited %s for client %s (tx %s)", tx.Amount, tx.Client, tx.ID)
	case payx.TxWithdrawal:
		return fmt.Sprintf("Withdrew %s for client %s (tx %s)", tx.Amount, tx.Client, tx.ID)
	case payx.TxDispute:
		return fmt.Sprintf("Disputed tx %s for client %s", tx.ID, tx.Client)
	case payx.TxResolve:
		return fmt.Sprintf("Resolved tx %s for client %s", tx.ID, tx.Client)
	case payx.TxChargeback:
		return fmt.Sprintf("Charged back tx %s for client %s", tx.ID, tx.Client)
	default:
		return string(tx.Type)
	}
}
