package domain

import "errors"

// Client-facing failure modes. The api layer maps these to 400s;
// anything unrecognized is treated as a server error.
var (
	ErrDuplicateUser        = errors.New("username is already in use")
	ErrUserNotFound         = errors.New("user not found")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrInsufficientHoldings = errors.New("insufficient holdings")
	ErrPriceNotFound        = errors.New("price not found")
	ErrInvalidInput         = errors.New("invalid input")
)
