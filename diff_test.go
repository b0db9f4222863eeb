package payx

import (
	"errors"
	"testing"
)

// newAccount replays the given transactions into a fresh account,
// failing the test on any rejection.
func newAccount(t *testing.T, txs ...Tx) *Account {
	t.Helper()
	a := NewAccount(NewClientID(1))
	for _, tx := range txs {
		if err := a.Apply(tx); err != nil {
			t.Fatalf("Apply(%s) error = %v", tx, err)
		}
	}
	return a
}

func assertDiff(t *testing.T, got, want diff) {
	t.Helper()
	if !got.available.Equal(want.available) {
		t.Errorf("diff.available = %s, want %s", got.available, want.available)
	}
	if !got.held.Equal(want.held) {
		t.Errorf("diff.held = %s, want %s", got.held, want.held)
	}
	switch {
	case (got.lock == nil) != (want.lock == nil):
		t.Errorf("diff.lock = %v, want %v", got.lock, want.lock)
	case got.lock != nil && *got.lock != *want.lock:
		t.Errorf("diff.lock = %t, want %t", *got.lock, *want.lock)
	}
	switch {
	case (got.dispute == nil) != (want.dispute == nil):
		t.Errorf("diff.dispute = %v, want %v", got.dispute, want.dispute)
	case got.dispute != nil && *got.dispute != *want.dispute:
		t.Errorf("diff.dispute = %v, want %v", *got.dispute, *want.dispute)
	}
}

func TestCalculateDiff_DepositOnlyAltersAvailable(t *testing.T) {
	a := newAccount(t)
	d, err := calculateDiff(a, NewDeposit(a.ID(), NewTxID(1), A(10)))
	if err != nil {
		t.Fatalf("calculateDiff() error = %v", err)
	}
	assertDiff(t, d, diff{available: A(10)})
}

func TestCalculateDiff_WithdrawalChecksFreeBalance(t *testing.T) {
	a := newAccount(t)
	withdrawal := NewWithdrawal(a.ID(), NewTxID(2), A(10))

	if _, err := calculateDiff(a, withdrawal); !errors.Is(err, ErrNotEnoughBalance) {
		t.Fatalf("calculateDiff() error = %v, want ErrNotEnoughBalance", err)
	}

	a = newAccount(t, NewDeposit(a.ID(), NewTxID(1), A(10)))
	d, err := calculateDiff(a, withdrawal)
	if err != nil {
		t.Fatalf("calculateDiff() error = %v", err)
	}
	assertDiff(t, d, diff{available: A(10).Neg()})
}

func TestCalculateDiff_DisputeFamilyIgnoresUnknownTx(t *testing.T) {
	a := newAccount(t)

	for _, tx := range []Tx{
		NewDispute(a.ID(), NewTxID(42)),
		NewResolve(a.ID(), NewTxID(42)),
		NewChargeback(a.ID(), NewTxID(42)),
	} {
		d, err := calculateDiff(a, tx)
		if err != nil {
			t.Fatalf("calculateDiff(%s) error = %v", tx, err)
		}
		if !d.isZero() {
			t.Errorf("calculateDiff(%s) = %+v, want zero diff for unknown tx", tx, d)
		}
	}
}

func TestCalculateDiff_DisputeFamilyIgnoresWithdrawals(t *testing.T) {
	// Withdrawals are logged but cannot be disputed.
	a := newAccount(t,
		NewDeposit(NewClientID(1), NewTxID(1), A(10)),
		NewWithdrawal(NewClientID(1), NewTxID(2), A(10)),
	)

	for _, tx := range []Tx{
		NewDispute(a.ID(), NewTxID(2)),
		NewResolve(a.ID(), NewTxID(2)),
		NewChargeback(a.ID(), NewTxID(2)),
	} {
		d, err := calculateDiff(a, tx)
		if err != nil {
			t.Fatalf("calculateDiff(%s) error = %v", tx, err)
		}
		if !d.isZero() {
			t.Errorf("calculateDiff(%s) = %+v, want zero diff for withdrawal target", tx, d)
		}
	}
}

func TestCalculateDiff_DisputeHoldsBalance(t *testing.T) {
	a := newAccount(t, NewDeposit(NewClientID(1), NewTxID(1), A(10)))

	d, err := calculateDiff(a, NewDispute(a.ID(), NewTxID(1)))
	if err != nil {
		t.Fatalf("calculateDiff() error = %v", err)
	}
	assertDiff(t, d, diff{
		available: A(10).Neg(),
		held:      A(10),
		dispute:   &disputeAction{id: NewTxID(1), start: true},
	})
}

func TestCalculateDiff_DisputeIgnoresAlreadyDisputedTx(t *testing.T) {
	a := newAccount(t,
		NewDeposit(NewClientID(1), NewTxID(1), A(10)),
		NewDispute(NewClientID(1), NewTxID(1)),
	)

	d, err := calculateDiff(a, NewDispute(a.ID(), NewTxID(1)))
	if err != nil {
		t.Fatalf("calculateDiff() error = %v", err)
	}
	if !d.isZero() {
		t.Errorf("calculateDiff() = %+v, want zero diff for already disputed tx", d)
	}
}

func TestCalculateDiff_ResolveIgnoresUndisputedTx(t *testing.T) {
	a := newAccount(t, NewDeposit(NewClientID(1), NewTxID(1), A(10)))

	d, err := calculateDiff(a, NewResolve(a.ID(), NewTxID(1)))
	if err != nil {
		t.Fatalf("calculateDiff() error = %v", err)
	}
	if !d.isZero() {
		t.Errorf("calculateDiff() = %+v, want zero diff for undisputed tx", d)
	}
}

func TestCalculateDiff_ResolveFreesDisputedBalance(t *testing.T) {
	a := newAccount(t,
		NewDeposit(NewClientID(1), NewTxID(1), A(10)),
		NewDispute(NewClientID(1), NewTxID(1)),
	)

	d, err := calculateDiff(a, NewResolve(a.ID(), NewTxID(1)))
	if err != nil {
		t.Fatalf("calculateDiff() error = %v", err)
	}
	assertDiff(t, d, diff{
		available: A(10),
		held:      A(10).Neg(),
		dispute:   &disputeAction{id: NewTxID(1)},
	})
}

func TestCalculateDiff_ChargebackIgnoresUndisputedTx(t *testing.T) {
	a := newAccount(t, NewDeposit(NewClientID(1), NewTxID(1), A(10)))

	d, err := calculateDiff(a, NewChargeback(a.ID(), NewTxID(1)))
	if err != nil {
		t.Fatalf("calculateDiff() error = %v", err)
	}
	if !d.isZero() {
		t.Errorf("calculateDiff() = %+v, want zero diff for undisputed tx", d)
	}
}

func TestCalculateDiff_ChargebackBurnsDisputedBalance(t *testing.T) {
	a := newAccount(t,
		NewDeposit(NewClientID(1), NewTxID(1), A(10)),
		NewDispute(NewClientID(1), NewTxID(1)),
	)

	d, err := calculateDiff(a, NewChargeback(a.ID(), NewTxID(1)))
	if err != nil {
		t.Fatalf("calculateDiff() error = %v", err)
	}
	locked := true
	assertDiff(t, d, diff{
		held:    A(10).Neg(),
		lock:    &locked,
		dispute: &disputeAction{id: NewTxID(1)},
	})
}
