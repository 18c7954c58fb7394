package domain

import "errors"

var (
	ErrUninitialized      = errors.New("uninitialized")
	ErrInvalidAddress     = errors.New("invalid address")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrCorruptedState     = errors.New("corrupted state")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrAmountOverflow     = errors.New("amount overflow")
	ErrInvalidMessage     = errors.New("invalid message")
	ErrSettlementRejected = errors.New("settlement rejected by token service")
	ErrAccountExists      = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
