package utils

import "errors"

var (
	// AI planning client
	ErrModelUnavailable   = errors.New("model temporarily unavailable")
	ErrModelQuotaExceeded = errors.New("model quota exceeded")
	ErrMissingAPIKey      = errors.New("missing or malformed API key")
	ErrMalformedPlan      = errors.New("model returned a malformed plan")
	ErrAllModelsExhausted = errors.New("all models exhausted")

	// general
	ErrInvalidInput  = errors.New("invalid input")
	ErrDatabaseError = errors.New("database error")

	// trip vault
	ErrTripNotFound = errors.New("trip not found")

	// accounts
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
)
