package payx

import (
	"fmt"
	"strings"
)

// TxType is a typed string for identifying transaction variants.
type TxType string

// Transaction variants accepted by the engine.
const (
	TxDeposit    TxType = "deposit"
	TxWithdrawal TxType = "withdrawal"
	TxDispute    TxType = "dispute"
	TxResolve    TxType = "resolve"
	TxChargeback TxType = "chargeback"
)

// ParseTxType parses the word form of a transaction type. Matching is
// case-insensitive.
func ParseTxType(s string) (TxType, error) {
	switch TxType(strings.ToLower(s)) {
	case TxDeposit:
		return TxDeposit, nil
	case TxWithdrawal:
		return TxWithdrawal, nil
	case TxDispute:
		return TxDispute, nil
	case TxResolve:
		return TxResolve, nil
	case TxChargeback:
		return TxChargeback, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// HasAmount reports whether this variant carries an amount field.
// Dispute-family transactions only reference a prior transaction and
// never carry one.
func (t TxType) HasAmount() bool {
	return t == TxDeposit || t == TxWithdrawal
}

// Tx is one transaction addressed to a client account.
//
// For dispute, resolve and chargeback, ID does not mint a new log entry:
// it points at the prior deposit under dispute.
type Tx struct {
	Type   TxType
	Client ClientID
	ID     TxID
	Amount Amount // meaningful only when Type.HasAmount()
}

// NewDeposit creates a deposit of amount for a client.
func NewDeposit(client ClientID, id TxID, amount Amount) Tx {
	return Tx{Type: TxDeposit, Client: client, ID: id, Amount: amount}
}

// NewWithdrawal creates a withdrawal of amount for a client.
func NewWithdrawal(client ClientID, id TxID, amount Amount) Tx {
	return Tx{Type: TxWithdrawal, Client: client, ID: id, Amount: amount}
}

// NewDispute creates a dispute referencing a prior transaction.
func NewDispute(client ClientID, id TxID) Tx {
	return Tx{Type: TxDispute, Client: client, ID: id}
}

// NewResolve creates a resolution referencing a disputed transaction.
func NewResolve(client ClientID, id TxID) Tx {
	return Tx{Type: TxResolve, Client: client, ID: id}
}

// NewChargeback creates a chargeback referencing a disputed transaction.
func NewChargeback(client ClientID, id TxID) Tx {
	return Tx{Type: TxChargeback, Client: client, ID: id}
}

// DepositAmount returns the transaction amount when the transaction is
// a deposit. Only deposits can be disputed, so the effect engine uses
// this to qualify dispute targets.
func (t Tx) DepositAmount() (Amount, bool) {
	if t.Type != TxDeposit {
		return Amount{}, false
	}
	return t.Amount, true
}

func (t Tx) Equal(o Tx) bool {
	return t.Type == o.Type && t.Client == o.Client && t.ID == o.ID && t.Amount.Equal(o.Amount)
}

// String renders the transaction for diagnostics.
func (t Tx) String() string {
	if t.Type.HasAmount() {
		return fmt.Sprintf("%s %s (client %s, tx %s)", t.Type, t.Amount, t.Client, t.ID)
	}
	return fmt.Sprintf("%s (client %s, tx %s)", t.Type, t.Client, t.ID)
}
