// Package usecase defines the application's business operation interfaces.
package usecase

import (
	"context"

	"tradein/internal/domain/entity"
)

// CreateRequestInput carries the owner-supplied item description for a new
// exchange request.
type CreateRequestInput struct {
	ProductName string   `json:"product_name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Brand       string   `json:"brand,omitempty"`
	Condition   string   `json:"condition" validate:"required"`
	Images      []string `json:"images,omitempty"`
}

// UpdateRequestInput carries owner edits to the item description. Only
// non-nil fields are applied, and only while the request is still pending.
type UpdateRequestInput struct {
	ProductName *string   `json:"product_name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Brand       *string   `json:"brand,omitempty"`
	Condition   *string   `json:"condition,omitempty"`
	Images      *[]string `json:"images,omitempty"`
}

// SubmitShippingInput carries the owner's shipping announcement.
type SubmitShippingInput struct {
	Carrier        string `json:"carrier" validate:"required"`
	TrackingNumber string `json:"tracking_number" validate:"required"`
	ShippingDate   string `json:"shipping_date" validate:"required"`
	Address        string `json:"address,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// SetStatusInput carries an admin status decision.
type SetStatusInput struct {
	Status      string `json:"status" validate:"required"`
	WarehouseID string `json:"warehouse_id,omitempty"`
	Feedback    string `json:"feedback,omitempty"`
}

// SetTransitInput carries an admin transit-status update.
type SetTransitInput struct {
	TransitStatus string `json:"transit_status" validate:"required"`
	Feedback      string `json:"feedback,omitempty"`
}

// AssignCreditInput carries an admin credit grant.
type AssignCreditInput struct {
	Amount   int64  `json:"amount" validate:"required,gt=0"`
	Feedback string `json:"feedback,omitempty"`
}

// ExchangeUsecase is the exchange-request lifecycle engine. It is the sole
// writer of status, transit status and credit amount; every operation
// validates the requested transition against current state before applying it.
type ExchangeUsecase interface {
	// CreateRequest registers a new pending exchange request for the actor.
	CreateRequest(ctx context.Context, actor entity.Actor, input *CreateRequestInput) (*entity.ExchangeRequest, error)

	// GetRequest returns a request visible to the actor (owner or admin).
	GetRequest(ctx context.Context, actor entity.Actor, id string) (*entity.ExchangeRequest, error)

	// ListOwnRequests returns the actor's requests, newest first.
	ListOwnRequests(ctx context.Context, actor entity.Actor) ([]*entity.ExchangeRequest, error)

	// ListAllRequests returns every request (admin only), optionally filtered
	// by status, newest first.
	ListAllRequests(ctx context.Context, actor entity.Actor, status *entity.Status) ([]*entity.ExchangeRequest, error)

	// UpdateRequest applies owner edits while the request is still pending.
	UpdateRequest(ctx context.Context, actor entity.Actor, id string, input *UpdateRequestInput) (*entity.ExchangeRequest, error)

	// CancelRequest deletes the actor's own request while it is still pending.
	CancelRequest(ctx context.Context, actor entity.Actor, id string) error

	// SubmitShipping stores shipping details on an approved request and moves
	// the transit status to shipping.
	SubmitShipping(ctx context.Context, actor entity.Actor, id string, input *SubmitShippingInput) (*entity.ExchangeRequest, error)

	// SetStatus applies an admin status decision (approve, decline, complete).
	SetStatus(ctx context.Context, actor entity.Actor, id string, input *SetStatusInput) (*entity.ExchangeRequest, error)

	// SetTransitStatus applies an admin transit update (received, completed).
	SetTransitStatus(ctx context.Context, actor entity.Actor, id string, input *SetTransitInput) (*entity.ExchangeRequest, error)

	// AssignCredit grants loyalty points for a received item: it resolves the
	// owner in the external ledger, additively writes the balance, persists
	// the bookkeeping on the request and appends one credit history entry.
	AssignCredit(ctx context.Context, actor entity.Actor, id string, input *AssignCreditInput) (*entity.ExchangeRequest, error)

	// ListCreditHistory returns the audit records for a request (admin only).
	ListCreditHistory(ctx context.Context, actor entity.Actor, id string) ([]*entity.CreditHistoryEntry, error)
}
