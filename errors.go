package payx

import "errors"

// Transaction application errors.
//
// These three are the only business-rule failures the engine surfaces.
// Every other irregular situation around disputes (unknown reference,
// non-deposit target, duplicate or stale dispute signals) is treated as
// a best-effort signal and ignored without error.
var (
	// ErrLockedAccount rejects any transaction on a locked account.
	ErrLockedAccount = errors.New("account is locked")
	// ErrNotEnoughBalance rejects a withdrawal above the available funds.
	ErrNotEnoughBalance = errors.New("not enough balance to withdraw")
	// ErrDuplicateTransactionID rejects a deposit or withdrawal whose
	// identifier is already in the account's log.
	ErrDuplicateTransactionID = errors.New("duplicate transaction id")
)
