package payx

// diff is a transaction's computed effect: balance deltas plus optional
// lock and dispute-set transitions, not yet applied.
//
// Every business rule lives in calculateDiff, so the rule set can be
// audited and extended without touching the code that mutates accounts.
// The deltas can be negative; applying a diff means adding them to the
// account's current balances.
type diff struct {
	available Amount
	held      Amount
	// lock is present when the account must transition its lock state.
	lock *bool
	// dispute is present when a dispute starts or ends.
	dispute *disputeAction
}

// disputeAction records a transaction identifier entering or leaving the
// active-dispute set.
type disputeAction struct {
	id    TxID
	start bool // true to open the dispute, false to close it
}

func (d diff) isZero() bool {
	return d.available.IsZero() && d.held.IsZero() && d.lock == nil && d.dispute == nil
}

// calculateDiff computes the effect applying tx would have on the
// account's current state, without mutating anything.
//
// Deposits always succeed. Withdrawals fail with ErrNotEnoughBalance
// when available funds are short. Dispute, resolve and chargeback only
// take effect when they reference a logged deposit in the right dispute
// state; in every other case they yield the zero diff, mirroring
// payment networks that disregard malformed or duplicate dispute
// signals rather than rejecting them loudly.
func calculateDiff(a *Account, tx Tx) (diff, error) {
	switch tx.Type {
	case TxDeposit:
		return diff{available: tx.Amount}, nil

	case TxWithdrawal:
		if !a.hasBalance(tx.Amount) {
			return diff{}, ErrNotEnoughBalance
		}
		return diff{available: tx.Amount.Neg()}, nil

	case TxDispute:
		if target, ok := a.logged(tx.ID); ok {
			if amount, ok := target.DepositAmount(); ok && !a.inDispute(tx.ID) {
				return holdDiff(tx.ID, amount), nil
			}
		}

	case TxResolve:
		if target, ok := a.logged(tx.ID); ok {
			if amount, ok := target.DepositAmount(); ok && a.inDispute(tx.ID) {
				return releaseDiff(tx.ID, amount), nil
			}
		}

	case TxChargeback:
		if target, ok := a.logged(tx.ID); ok {
			if amount, ok := target.DepositAmount(); ok && a.inDispute(tx.ID) {
				return burnDiff(tx.ID, amount), nil
			}
		}
	}

	// In any other case, the transaction is ignored.
	return diff{}, nil
}

// holdDiff moves the disputed amount from available to held.
func holdDiff(id TxID, amount Amount) diff {
	return diff{
		available: amount.Neg(),
		held:      amount,
		dispute:   &disputeAction{id: id, start: true},
	}
}

// releaseDiff frees a previously held amount back to available.
func releaseDiff(id TxID, amount Amount) diff {
	return diff{
		available: amount,
		held:      amount.Neg(),
		dispute:   &disputeAction{id: id},
	}
}

// burnDiff removes a previously held amount and locks the account.
func burnDiff(id TxID, amount Amount) diff {
	locked := true
	return diff{
		held:    amount.Neg(),
		lock:    &locked,
		dispute: &disputeAction{id: id},
	}
}
