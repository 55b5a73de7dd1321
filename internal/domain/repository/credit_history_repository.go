package repository

import (
	"context"

	"tradein/internal/domain/entity"
)

// CreditHistoryRepository appends immutable credit-grant audit records.
// There is deliberately no update or delete: entries are append-only.
type CreditHistoryRepository interface {
	// Append persists a new credit history entry and returns its assigned ID.
	Append(ctx context.Context, entry *entity.CreditHistoryEntry) (string, error)

	// ListByOwner retrieves all entries for an owner, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.CreditHistoryEntry, error)

	// ListByRequest retrieves all entries linked to an exchange request, newest first.
	ListByRequest(ctx context.Context, exchangeRequestID string) ([]*entity.CreditHistoryEntry, error)
}
