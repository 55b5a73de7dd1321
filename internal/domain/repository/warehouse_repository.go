package repository

import (
	"context"

	"tradein/internal/domain/entity"
	"tradein/internal/errors"
)

// ErrWarehouseNotFound is returned when a warehouse is not found.
var ErrWarehouseNotFound = errors.New("warehouse not found")

// WarehouseRepository defines the interface for warehouse document operations.
type WarehouseRepository interface {
	// Create persists a new warehouse and returns its assigned ID.
	Create(ctx context.Context, warehouse *entity.Warehouse) (string, error)

	// FindByID retrieves a warehouse by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Warehouse, error)

	// ListAll retrieves every warehouse, newest first.
	ListAll(ctx context.Context) ([]*entity.Warehouse, error)

	// Update replaces the mutable fields of a warehouse.
	Update(ctx context.Context, warehouse *entity.Warehouse) error

	// Delete removes a warehouse by its ID.
	Delete(ctx context.Context, id string) error
}
