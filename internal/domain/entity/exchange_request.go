// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

// ShippingDetails records how the owner shipped the item to the warehouse.
// It is set only while the request is approved and is immutable afterwards,
// except by re-submission while the request is still approved.
type ShippingDetails struct {
	Carrier        string    `json:"carrier"`
	TrackingNumber string    `json:"tracking_number"`
	ShippingDate   string    `json:"shipping_date"`
	Address        string    `json:"address,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

// WarehouseInfo is a frozen copy of the destination warehouse taken at
// approval time. Later edits to the warehouse record do not affect it.
type WarehouseInfo struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
}

// ExchangeRequest is a user's submission to trade a physical item for
// store credit. Status, TransitStatus and CreditAmount are mutated only by
// the lifecycle engine.
type ExchangeRequest struct {
	ID         string `json:"id"`
	OwnerID    string `json:"owner_id"`
	OwnerEmail string `json:"owner_email"`

	ProductName string   `json:"product_name"`
	Description string   `json:"description"`
	Brand       string   `json:"brand,omitempty"`
	Condition   string   `json:"condition"`
	Images      []string `json:"images,omitempty"` // insertion order meaningful

	Status        Status        `json:"status"`
	TransitStatus TransitStatus `json:"transit_status,omitempty"`

	CreditAmount       int64 `json:"credit_amount"`
	TotalLoyaltyPoints int64 `json:"total_loyalty_points"`

	ShippingDetails *ShippingDetails `json:"shipping_details,omitempty"`

	WarehouseID   string         `json:"warehouse_id,omitempty"`
	WarehouseInfo *WarehouseInfo `json:"warehouse_info,omitempty"`

	// AdminFeedback is an append-only free-text log, newline-joined across
	// admin actions.
	AdminFeedback string `json:"admin_feedback,omitempty"`

	LedgerCustomerID string     `json:"ledger_customer_id,omitempty"`
	LedgerSuccess    *bool      `json:"ledger_success,omitempty"`
	CreditAssignedAt *time.Time `json:"credit_assigned_at,omitempty"`
	CreditAssignedBy string     `json:"credit_assigned_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppendFeedback joins a new admin note onto the existing feedback log.
// Empty notes are ignored.
func (r *ExchangeRequest) AppendFeedback(note string) string {
	note = strings.TrimSpace(note)
	if note == "" {
		return r.AdminFeedback
	}
	if r.AdminFeedback == "" {
		return note
	}

	return r.AdminFeedback + "\n" + note
}

// CreditAssigned reports whether credit has already been granted for this
// request. Used as the re-entrancy guard for credit assignment.
func (r *ExchangeRequest) CreditAssigned() bool {
	return r.CreditAmount > 0
}
