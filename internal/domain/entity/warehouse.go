package entity

import "time"

// Warehouse is a named shipping destination for returned items. It is
// referenced by ID from an ExchangeRequest at approval time; the request
// stores a copy, not a live reference.
type Warehouse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	AddressLine1 string    `json:"address_line1"`
	AddressLine2 string    `json:"address_line2,omitempty"`
	City         string    `json:"city"`
	State        string    `json:"state,omitempty"`
	PostalCode   string    `json:"postal_code"`
	Country      string    `json:"country"`
	ContactName  string    `json:"contact_name,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	ContactEmail string    `json:"contact_email,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Snapshot freezes the warehouse's shippable fields for storage on an
// exchange request.
func (w *Warehouse) Snapshot() *WarehouseInfo {
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
