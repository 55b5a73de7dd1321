package usecase

import (
	"context"

	"tradein/internal/domain/entity"
)

// WarehouseInput carries admin-supplied warehouse fields.
type WarehouseInput struct {
	Name         string `json:"name" validate:"required"`
	AddressLine1 string `json:"address_line1" validate:"required"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postal_code" validate:"required"`
	Country      string `json:"country" validate:"required"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	ContactEmail string `json:"contact_email,omitempty" validate:"omitempty,email"`
	IsActive     *bool  `json:"is_active,omitempty"`
}

// WarehouseUsecase manages the directory of shippable return addresses.
// All operations require an admin actor.
type WarehouseUsecase interface {
	CreateWarehouse(ctx context.Context, actor entity.Actor, input *WarehouseInput) (*entity.Warehouse, error)
	GetWarehouse(ctx context.Context, actor entity.Actor, id string) (*entity.Warehouse, error)
	ListWarehouses(ctx context.Context, actor entity.Actor) ([]*entity.Warehouse, error)
	UpdateWarehouse(ctx context.Context, actor entity.Actor, id string, input *WarehouseInput) (*entity.Warehouse, error)
	DeleteWarehouse(ctx context.Context, actor entity.Actor, id string) error
}
