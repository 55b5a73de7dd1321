package model

import (
	"time"

	"tradein/internal/domain/entity"
)

// Warehouse is the document stored in the warehouses collection.
type Warehouse struct {
	Name         string    `firestore:"name"`
	AddressLine1 string    `firestore:"addressLine1"`
	AddressLine2 string    `firestore:"addressLine2,omitempty"`
	City         string    `firestore:"city"`
	State        string    `firestore:"state,omitempty"`
	PostalCode   string    `firestore:"postalCode"`
	Country      string    `firestore:"country"`
	ContactName  string    `firestore:"contactName,omitempty"`
	ContactPhone string    `firestore:"contactPhone,omitempty"`
	ContactEmail string    `firestore:"contactEmail,omitempty"`
	IsActive     bool      `firestore:"isActive"`
	CreatedAt    time.Time `firestore:"createdAt"`
	UpdatedAt    time.Time `firestore:"updatedAt"`
}

// FromWarehouseEntity converts a domain entity into its document shape.
func FromWarehouseEntity(w *entity.Warehouse) *Warehouse {
	return &Warehouse{
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
		IsActive:     w.IsActive,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}

// ToEntity converts the document back to a domain entity.
func (m *Warehouse) ToEntity(id string) *entity.Warehouse {
	return &entity.Warehouse{
		ID:           id,
		Name:         m.Name,
		AddressLine1: m.AddressLine1,
		AddressLine2: m.AddressLine2,
		City:         m.City,
		State:        m.State,
		PostalCode:   m.PostalCode,
		Country:      m.Country,
		ContactName:  m.ContactName,
		ContactPhone: m.ContactPhone,
		ContactEmail: m.ContactEmail,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
