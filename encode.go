package payx

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// txHeader is the expected input header: type,client,tx,amount.
var txHeader = []string{"type", "client", "tx", "amount"}

// TxReader decodes transactions from delimited text records.
//
// The input carries a header row and one record per transaction.
// Fields are trimmed of surrounding whitespace. The amount column is
// required for deposits and withdrawals and must be absent (or empty)
// for dispute-family records.
type TxReader struct {
	csv    *csv.Reader
	header bool // header row already consumed
}

// NewTxReader creates a reader decoding transactions from r.
func NewTxReader(r io.Reader) *TxReader {
	c := csv.NewReader(r)
	c.TrimLeadingSpace = true
	// Dispute-family records commonly omit the trailing amount field
	// altogether, so the record length is not fixed.
	c.FieldsPerRecord = -1
	return &TxReader{csv: c}
}

// Read returns the next transaction, or io.EOF when the input is
// exhausted.
func (r *TxReader) Read() (Tx, error) {
	if !r.header {
		header, err := r.csv.Read()
		if err == io.EOF {
			return Tx{}, io.EOF
		}
		if err != nil {
			return Tx{}, fmt.Errorf("could not read header: %w", err)
		}
		if err := checkHeader(header); err != nil {
			return Tx{}, err
		}
		r.header = true
	}

	record, err := r.csv.Read()
	if err == io.EOF {
		return Tx{}, io.EOF
	}
	if err != nil {
		return Tx{}, err
	}
	line, _ := r.csv.FieldPos(0)

	tx, err := decodeTx(record)
	if err != nil {
		return Tx{}, fmt.Errorf("line %d: %w", line, err)
	}
	return tx, nil
}

func checkHeader(header []string) error {
	if len(header) != len(txHeader) {
		return fmt.Errorf("invalid header %q: want %q", strings.Join(header, ","), strings.Join(txHeader, ","))
	}
	for i, name := range txHeader {
		if strings.TrimSpace(strings.ToLower(header[i])) != name {
			return fmt.Errorf("invalid header %q: want %q", strings.Join(header, ","), strings.Join(txHeader, ","))
		}
	}
	return nil
}

func decodeTx(record []string) (Tx, error) {
	if len(record) < 3 || len(record) > 4 {
		return Tx{}, fmt.Errorf("invalid record: want 3 or 4 fields, got %d", len(record))
	}

	ty, err := ParseTxType(strings.TrimSpace(record[0]))
	if err != nil {
		return Tx{}, err
	}
	client, err := ParseClientID(strings.TrimSpace(record[1]))
	if err != nil {
		return Tx{}, err
	}
	id, err := ParseTxID(strings.TrimSpace(record[2]))
	if err != nil {
		return Tx{}, err
	}

	var rawAmount string
	if len(record) == 4 {
		rawAmount = strings.TrimSpace(record[3])
	}

	if !ty.HasAmount() {
		if rawAmount != "" {
			return Tx{}, fmt.Errorf("%s must not carry an amount, got %q", ty, rawAmount)
		}
		return Tx{Type: ty, Client: client, ID: id}, nil
	}

	if rawAmount == "" {
		return Tx{}, fmt.Errorf("%s requires an amount", ty)
	}
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return Tx{}, err
	}
	return Tx{Type: ty, Client: client, ID: id, Amount: amount}, nil
}

// EncodeBook writes one result row per account in first-seen client
// order, preceded by the client,available,held,total,locked header.
// Balances are rendered as exact decimal text.
func EncodeBook(w io.Writer, book *Book) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}

	for account := range book.Accounts() {
		record := []string{
			account.ID().String(),
			account.Available().String(),
			account.Held().String(),
			account.Total().String(),
			strconv.FormatBool(account.Locked()),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("could not write row for client %s: %w", account.ID(), err)
		}
	}

	writer.Flush()
	return writer.Error()
}
