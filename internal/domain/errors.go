package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the services wraps exactly one of them.
var (
	ErrValidation          = errors.New("validation error")
	ErrAuthentication      = errors.New("authentication error")
	ErrNotFound            = errors.New("not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrTransactionConflict = errors.New("transaction conflict")
	ErrConflict            = errors.New("conflict")
	ErrDependency          = errors.New("dependency unavailable")
)

var (
	ErrInvalidUserID     = fmt.Errorf("%w: invalid user id", ErrValidation)
	ErrInvalidAmount     = fmt.Errorf("%w: amount must be a positive integer", ErrValidation)
	ErrInvalidFloor      = fmt.Errorf("%w: minimum balance floor must not be negative", ErrValidation)
	ErrInvalidTxKind     = fmt.Errorf("%w: transaction kind must be gain or spend", ErrValidation)
	ErrPasswordTooShort  = fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)
	ErrInvalidEmail      = fmt.Errorf("%w: invalid email", ErrValidation)
	ErrEmptyDisplayName  = fmt.Errorf("%w: display name is required", ErrValidation)
	ErrEmptyTitle        = fmt.Errorf("%w: quest title is required", ErrValidation)
	ErrTitleTooLong      = fmt.Errorf("%w: quest title is longer than %d characters", ErrValidation, MaxTitleLength)
	ErrInvalidQuestID    = fmt.Errorf("%w: invalid quest id", ErrValidation)
	ErrSpendWithQuestRef = fmt.Errorf("%w: only gain transactions may reference a quest", ErrValidation)
	ErrBalanceOverflow   = fmt.Errorf("%w: amount would overflow the balance", ErrValidation)
	ErrInvalidPosition   = fmt.Errorf("%w: invalid position", ErrValidation)

	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrAuthentication)

	ErrUserNotFound  = fmt.Errorf("%w: user", ErrNotFound)
	ErrQuestNotFound = fmt.Errorf("%w: quest", ErrNotFound)
	ErrQuestExpired  = fmt.Errorf("%w: quest expired", ErrNotFound)

	ErrQuestNotActive       = fmt.Errorf("%w: quest is no longer active", ErrTransactionConflict)
	ErrQuestAlreadyRewarded = fmt.Errorf("%w: quest already rewarded", ErrTransactionConflict)
	// ErrConcurrentUpdate is the only retryable error.
	ErrConcurrentUpdate = fmt.Errorf("%w: concurrent update", ErrTransactionConflict)

	ErrEmailTaken = fmt.Errorf("%w: email already registered", ErrConflict)
)

type Kind string

const (
	KindValidation          Kind = "validation"
	KindAuthentication      Kind = "authentication"
	KindNotFound            Kind = "not_found"
	KindInsufficientBalance Kind = "insufficient_balance"
	KindTransactionConflict Kind = "transaction_conflict"
	KindConflict            Kind = "conflict"
	KindDependency          Kind = "dependency"
	KindInternal            Kind = "internal"
)

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrValidation, KindValidation},
	{ErrAuthentication, KindAuthentication},
	{ErrNotFound, KindNotFound},
	{ErrInsufficientBalance, KindInsufficientBalance},
	{ErrTransactionConflict, KindTransactionConflict},
	{ErrConflict, KindConflict},
	{ErrDependency, KindDependency},
}

// KindOf classifies err; unknown errors are KindInternal and nil is "".
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}

func IsRetryable(err error) bool {
	return errors.Is(err, ErrConcurrentUpdate)
}
