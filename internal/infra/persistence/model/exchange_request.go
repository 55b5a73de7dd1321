// Package model holds the Firestore document shapes for all collections.
// Document keys are camelCase and must match the repository field constants.
package model

import (
	"time"

	"tradein/internal/domain/entity"
)

// ShippingDetails is the embedded shipping block on an exchange request document.
type ShippingDetails struct {
	Carrier        string    `firestore:"carrier"`
	TrackingNumber string    `firestore:"trackingNumber"`
	ShippingDate   string    `firestore:"shippingDate"`
	Address        string    `firestore:"address,omitempty"`
	Notes          string    `firestore:"notes,omitempty"`
	SubmittedAt    time.Time `firestore:"submittedAt"`
}

// WarehouseInfo is the frozen warehouse snapshot embedded on a document.
type WarehouseInfo struct {
	Name         string `firestore:"name"`
	AddressLine1 string `firestore:"addressLine1"`
	AddressLine2 string `firestore:"addressLine2,omitempty"`
	City         string `firestore:"city"`
	State        string `firestore:"state,omitempty"`
	PostalCode   string `firestore:"postalCode"`
	Country      string `firestore:"country"`
	ContactName  string `firestore:"contactName,omitempty"`
	ContactPhone string `firestore:"contactPhone,omitempty"`
	ContactEmail string `firestore:"contactEmail,omitempty"`
}

// ExchangeRequest is the document stored in the exchangeRequests collection.
type ExchangeRequest struct {
	OwnerID    string `firestore:"ownerId"`
	OwnerEmail string `firestore:"ownerEmail"`

	ProductName string   `firestore:"productName"`
	Description string   `firestore:"description"`
	Brand       string   `firestore:"brand,omitempty"`
	Condition   string   `firestore:"condition"`
	Images      []string `firestore:"images,omitempty"`

	Status        string `firestore:"status"`
	TransitStatus string `firestore:"transitStatus"`

	CreditAmount       int64 `firestore:"creditAmount"`
	TotalLoyaltyPoints int64 `firestore:"totalLoyaltyPoints"`

	ShippingDetails *ShippingDetails `firestore:"shippingDetails,omitempty"`

	WarehouseID   string         `firestore:"warehouseId,omitempty"`
	WarehouseInfo *WarehouseInfo `firestore:"warehouseInfo,omitempty"`

	AdminFeedback string `firestore:"adminFeedback,omitempty"`

	LedgerCustomerID string     `firestore:"ledgerCustomerId,omitempty"`
	LedgerSuccess    *bool      `firestore:"ledgerSuccess,omitempty"`
	CreditAssignedAt *time.Time `firestore:"creditAssignedAt,omitempty"`
	CreditAssignedBy string     `firestore:"creditAssignedBy,omitempty"`

	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

// FromExchangeRequestEntity converts a domain entity into its document shape.
func FromExchangeRequestEntity(r *entity.ExchangeRequest) *ExchangeRequest {
	return &ExchangeRequest{
		OwnerID:            r.OwnerID,
		OwnerEmail:         r.OwnerEmail,
		ProductName:        r.ProductName,
		Description:        r.Description,
		Brand:              r.Brand,
		Condition:          r.Condition,
		Images:             r.Images,
		Status:             string(r.Status),
		TransitStatus:      string(r.TransitStatus),
		CreditAmount:       r.CreditAmount,
		TotalLoyaltyPoints: r.TotalLoyaltyPoints,
		ShippingDetails:    FromShippingDetailsEntity(r.ShippingDetails),
		WarehouseID:        r.WarehouseID,
		WarehouseInfo:      FromWarehouseInfoEntity(r.WarehouseInfo),
		AdminFeedback:      r.AdminFeedback,
		LedgerCustomerID:   r.LedgerCustomerID,
		LedgerSuccess:      r.LedgerSuccess,
		CreditAssignedAt:   r.CreditAssignedAt,
		CreditAssignedBy:   r.CreditAssignedBy,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

// ToEntity converts the document back to a domain entity.
func (m *ExchangeRequest) ToEntity(id string) *entity.ExchangeRequest {
	return &entity.ExchangeRequest{
		ID:                 id,
		OwnerID:            m.OwnerID,
		OwnerEmail:         m.OwnerEmail,
		ProductName:        m.ProductName,
		Description:        m.Description,
		Brand:              m.Brand,
		Condition:          m.Condition,
		Images:             m.Images,
		Status:             entity.Status(m.Status),
		TransitStatus:      entity.TransitStatus(m.TransitStatus),
		CreditAmount:       m.CreditAmount,
		TotalLoyaltyPoints: m.TotalLoyaltyPoints,
		ShippingDetails:    m.ShippingDetails.toEntity(),
		WarehouseID:        m.WarehouseID,
		WarehouseInfo:      m.WarehouseInfo.toEntity(),
		AdminFeedback:      m.AdminFeedback,
		LedgerCustomerID:   m.LedgerCustomerID,
		LedgerSuccess:      m.LedgerSuccess,
		CreditAssignedAt:   m.CreditAssignedAt,
		CreditAssignedBy:   m.CreditAssignedBy,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// FromShippingDetailsEntity converts the embedded shipping block. Nil-safe.
func FromShippingDetailsEntity(d *entity.ShippingDetails) *ShippingDetails {
	if d == nil {
		return nil
	}

	return &ShippingDetails{
		Carrier:        d.Carrier,
		TrackingNumber: d.TrackingNumber,
		ShippingDate:   d.ShippingDate,
		Address:        d.Address,
		Notes:          d.Notes,
		SubmittedAt:    d.SubmittedAt,
	}
}

func (d *ShippingDetails) toEntity() *entity.ShippingDetails {
	if d == nil {
		return nil
	}

	return &entity.ShippingDetails{
		Carrier:        d.Carrier,
		TrackingNumber: d.TrackingNumber,
		ShippingDate:   d.ShippingDate,
		Address:        d.Address,
		Notes:          d.Notes,
		SubmittedAt:    d.SubmittedAt,
	}
}

// FromWarehouseInfoEntity converts the embedded warehouse snapshot. Nil-safe.
func FromWarehouseInfoEntity(w *entity.WarehouseInfo) *WarehouseInfo {
	if w == nil {
		return nil
	}

	return &WarehouseInfo{
		Name:         w.Name,
		AddressLine1: w.AddressLine1,
		AddressLine2: w.AddressLine2,
		City:         w.City,
		State:        w.State,
		PostalCode:   w.PostalCode,
		Country:      w.Country,
		ContactName:  w.ContactName,
		ContactPhone: w.ContactPhone,
		ContactEmail: w.ContactEmail,
	}
}

func (w *WarehouseInfo) toEntity() *entity.WarehouseInfo {
	if w == nil {
		return nil
	}

	return &entity.WarehouseInfo{
		Name:         w.Name,
		AddressLine1: w.AddressLine1,
		AddressLine2: w.AddressLine2,
		City:         w.City,
		State:        w.State,
		PostalCode:   w.PostalCode,
		Country:      w.Country,
		ContactName:  w.ContactName,
		ContactPhone: w.ContactPhone,
		ContactEmail: w.ContactEmail,
	}
}
