package payx

import (
	"iter"
	"slices"
)

// Account holds one client's replayed state: the log of settled
// deposits and withdrawals, the active disputes, and the resulting
// balances.
//
// Balances and the lock flag are a pure function of the applied log,
// so they are only readable from outside; Apply is the single code
// path allowed to mutate them.
type Account struct {
	id ClientID

	// The account's transaction log.
	//
	// Transaction identifiers are not guaranteed to be ordered, only
	// arrival order is chronological, so the log keeps its own
	// insertion order next to the identifier index.
	order []TxID
	log   map[TxID]Tx

	// The list of active disputes. Closed disputes are not kept: they
	// can always be reconstructed by replaying the log, and a client
	// rarely has more than a handful open at once, so a short slice
	// beats a set here.
	disputes []TxID

	available Amount
	held      Amount
	locked    bool
}

// NewAccount creates an empty, unlocked account for a client.
func NewAccount(id ClientID) *Account {
	return &Account{
		id:  id,
		log: make(map[TxID]Tx),
	}
}

// Apply validates tx against the account's current state, computes its
// effect and applies it. It is the only function allowed to alter the
// log, the dispute set, the balances or the lock flag.
//
// The effect is applied atomically: on any error nothing changes.
func (a *Account) Apply(tx Tx) error {
	if a.locked {
		return ErrLockedAccount
	}

	d, err := calculateDiff(a, tx)
	if err != nil {
		return err
	}

	// A deposit or withdrawal produces no dispute transition and must
	// be logged under a fresh identifier; checking before touching the
	// balances keeps the whole application atomic.
	if d.dispute == nil && tx.Type.HasAmount() {
		if _, ok := a.log[tx.ID]; ok {
			return ErrDuplicateTransactionID
		}
		a.order = append(a.order, tx.ID)
		a.log[tx.ID] = tx
	}

	a.available = a.available.Add(d.available)
	a.held = a.held.Add(d.held)

	if d.lock != nil {
		a.locked = *d.lock
	}

	if d.dispute != nil {
		if d.dispute.start {
			a.disputes = append(a.disputes, d.dispute.id)
		} else {
			a.disputes = slices.DeleteFunc(a.disputes, func(id TxID) bool { return id == d.dispute.id })
		}
	}

	return nil
}

func (a *Account) logged(id TxID) (Tx, bool) {
	tx, ok := a.log[id]
	return tx, ok
}

func (a *Account) inDispute(id TxID) bool {
	return slices.Contains(a.disputes, id)
}

func (a *Account) hasBalance(amount Amount) bool {
	return a.available.GreaterThanOrEqual(amount)
}

// ID returns the client identifier owning this account.
func (a *Account) ID() ClientID { return a.id }

// Available returns the funds available for withdrawal.
func (a *Account) Available() Amount { return a.available }

// Held returns the funds held by active disputes.
func (a *Account) Held() Amount { return a.held }

// Total returns the total funds the client owns, a sum of available
// and held. It is always derived on read, never stored.
func (a *Account) Total() Amount { return a.available.Add(a.held) }

// Locked reports whether a chargeback has frozen this account.
func (a *Account) Locked() bool { return a.locked }

// Log iterates over the settled transactions in arrival order.
func (a *Account) Log() iter.Seq2[TxID, Tx] {
	return func(yield func(TxID, Tx) bool) {
		for _, id := range a.order {
			if !yield(id, a.log[id]) {
				return
			}
		}
	}
}
