package domain

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")

	ErrUserNotFound   = errors.New("user not found")
	ErrUserExists     = errors.New("user already exists")
	ErrItemNotFound   = errors.New("book not found")
	ErrNotOwned       = errors.New("book is not owned by user")
	ErrAlreadyOwned   = errors.New("book already owned")
	ErrPriceChanged   = errors.New("book price has changed")
	ErrTokenConflict  = errors.New("idempotency token already used for another top-up")
	ErrPaymentGateway = errors.New("payment gateway error")

	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrTransientStoreFailure marks store errors that are safe to retry.
	ErrTransientStoreFailure = errors.New("transient store failure")
	// ErrInvariantViolation means a balance would have gone negative despite the checks.
	ErrInvariantViolation = errors.New("balance invariant violation")
)
