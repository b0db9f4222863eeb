package payx

import (
	"fmt"
	"strconv"
)

// ClientID identifies one client account.
//
// The raw value is deliberately unexported: client and transaction
// identifiers must never be mixed up, compared across kinds, or used
// in arithmetic. Only construction, equality and printing are exposed.
type ClientID struct {
	id uint16
}

// NewClientID wraps a raw client identifier.
func NewClientID(id uint16) ClientID { return ClientID{id: id} }

// ParseClientID parses the decimal text form of a client identifier.
func ParseClientID(s string) (ClientID, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return ClientID{}, fmt.Errorf("invalid client id %q: %w", s, err)
	}
	return ClientID{id: uint16(v)}, nil
}

func (c ClientID) String() string { return strconv.FormatUint(uint64(c.id), 10) }

// TxID identifies one transaction.
//
// Identifiers are unique among logged transactions (deposits and
// withdrawals) but carry no ordering: only arrival order is meaningful.
// Dispute, resolve and chargeback transactions reuse the identifier of
// the deposit they reference instead of minting a new one.
type TxID struct {
	id uint32
}

// NewTxID wraps a raw transaction identifier.
func NewTxID(id uint32) TxID { return TxID{id: id} }

// ParseTxID parses the decimal text form of a transaction identifier.
func ParseTxID(s string) (TxID, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return TxID{}, fmt.Errorf("invalid transaction id %q: %w", s, err)
	}
	return TxID{id: uint32(v)}, nil
}

func (t TxID) String() string { return strconv.FormatUint(uint64(t.id), 10) }
