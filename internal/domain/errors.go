package domain

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrItemNotFound = errors.New("item not found")

	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrWeakPassword     = errors.New("password must be at least 7 characters")
	ErrPasswordTooLong  = errors.New("password must be at most 72 bytes")
	ErrEmptyUsername    = errors.New("username is empty")
)
