package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// Classification and validation errors
var (
	ErrUnknownTransactionType = errors.New("unknown transaction type")
	ErrInvalidAmount          = errors.New("amount must be a finite positive number")
	ErrInvalidRate            = errors.New("rate must be a finite non-negative number")
	ErrUnknownStatus          = errors.New("unknown status")
	ErrInvalidPaymentMode     = errors.New("invalid payment mode")
)
