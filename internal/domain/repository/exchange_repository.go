// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"tradein/internal/domain/entity"
	"tradein/internal/errors"
)

// Domain-specific errors for exchange request persistence.
var (
	// ErrExchangeRequestNotFound is returned when an exchange request is not found.
	ErrExchangeRequestNotFound = errors.New("exchange request not found")
)

// Document field keys accepted by ExchangeRequestRepository.Update. Keeping
// them here lets the lifecycle engine express partial updates without knowing
// how the backing store names its columns.
const (
	FieldProductName        = "productName"
	FieldDescription        = "description"
	FieldBrand              = "brand"
	FieldCondition          = "condition"
	FieldImages             = "images"
	FieldStatus             = "status"
	FieldTransitStatus      = "transitStatus"
	FieldCreditAmount       = "creditAmount"
	FieldTotalLoyaltyPoints = "totalLoyaltyPoints"
	FieldShippingDetails    = "shippingDetails"
	FieldWarehouseID        = "warehouseId"
	FieldWarehouseInfo      = "warehouseInfo"
	FieldAdminFeedback      = "adminFeedback"
	FieldLedgerCustomerID   = "ledgerCustomerId"
	FieldLedgerSuccess      = "ledgerSuccess"
	FieldCreditAssignedAt   = "creditAssignedAt"
	FieldCreditAssignedBy   = "creditAssignedBy"
	FieldUpdatedAt          = "updatedAt"
)

// ExchangeRequestRepository defines the interface for exchange request
// document operations.
type ExchangeRequestRepository interface {
	// Create persists a new exchange request and returns its assigned ID.
	Create(ctx context.Context, request *entity.ExchangeRequest) (string, error)

	// FindByID retrieves an exchange request by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.ExchangeRequest, error)

	// ListByOwner retrieves all requests belonging to an owner, ordered by
	// creation time descending. Implementations must produce the same
	// ordering whether or not the backing store can serve an ordered query.
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.ExchangeRequest, error)

	// ListAll retrieves every request, newest first, optionally filtered by status.
	ListAll(ctx context.Context, status *entity.Status) ([]*entity.ExchangeRequest, error)

	// Update applies a partial field update and returns the updated entity.
	// Keys must be the Field* constants declared in this package.
	Update(ctx context.Context, id string, fields map[string]any) (*entity.ExchangeRequest, error)

	// Delete removes an exchange request by its ID.
	Delete(ctx context.Context, id string) error
}
