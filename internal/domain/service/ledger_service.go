// Package service defines contracts for external collaborators consumed by
// the lifecycle engine.
package service

import (
	"context"

	"tradein/internal/errors"
)

// Ledger error classes. The engine only special-cases ErrLedgerCustomerNotFound;
// the rest exist so callers and logs can tell transient failures apart.
var (
	// ErrLedgerCustomerNotFound is returned when no customer matches the identity.
	ErrLedgerCustomerNotFound = errors.New("ledger customer not found")
	// ErrLedgerAuth is returned when the platform rejects the API credentials.
	ErrLedgerAuth = errors.New("ledger authentication failed")
	// ErrLedgerRateLimited is returned when the platform throttles the caller.
	ErrLedgerRateLimited = errors.New("ledger rate limited")
	// ErrLedgerValidation is returned when the platform rejects the payload.
	ErrLedgerValidation = errors.New("ledger rejected the request")
)

// LedgerCustomer is an opaque reference to a customer record in the external
// commerce platform.
type LedgerCustomer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// LedgerService reads and mutates the per-customer loyalty-points balance
// held by the external commerce platform.
type LedgerService interface {
	// FindCustomerByEmail resolves a customer record by email address.
	FindCustomerByEmail(ctx context.Context, email string) (*LedgerCustomer, error)

	// GetPointsBalance reads the customer's current points balance.
	GetPointsBalance(ctx context.Context, customer *LedgerCustomer) (int64, error)

	// AddPoints atomically adds delta to the customer's balance and returns
	// the new total. The read-modify-write is safe against this process being
	// the single caller; no concurrent external mutation is assumed.
	AddPoints(ctx context.Context, customer *LedgerCustomer, delta int64) (int64, error)
}
