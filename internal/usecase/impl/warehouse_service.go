package impl

import (
	"context"
	"log/slog"
	"time"

	"tradein/internal/domain/entity"
	domainerrors "tradein/internal/domain/errors"
	"tradein/internal/domain/repository"
	"tradein/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type warehouseService struct {
	warehouseRepo repository.WarehouseRepository
	logger        *slog.Logger
}

// WarehouseServiceParams holds dependencies for WarehouseService, injected by Fx.
type WarehouseServiceParams struct {
	fx.In

	WarehouseRepo repository.WarehouseRepository
	Logger        *slog.Logger
}

// NewWarehouseService creates the warehouse directory usecase.
func NewWarehouseService(params WarehouseServiceParams) usecase.WarehouseUsecase {
	return &warehouseService{
		warehouseRepo: params.WarehouseRepo,
		logger:        params.Logger,
	}
}

func (s *warehouseService) CreateWarehouse(ctx context.Context, actor entity.Actor, input *usecase.WarehouseInput) (*entity.Warehouse, error) {
	if !actor.IsAdmin {
		return nil, domainerrors.ErrAdminRequired
	}

	now := time.Now().UTC()
	warehouse := &entity.Warehouse{
		Name:         input.Name,
		AddressLine1: input.AddressLine1,
		AddressLine2: input.AddressLine2,
		City:         input.City,
		State:        input.State,
		PostalCode:   input.PostalCode,
		Country:      input.Country,
		ContactName:  input.ContactName,
		ContactPhone: input.ContactPhone,
		ContactEmail: input.ContactEmail,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if input.IsActive != nil {
		warehouse.IsActive = *input.IsActive
	}

	id, err := s.warehouseRepo.Create(ctx, warehouse)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create warehouse")
	}
	warehouse.ID = id

	return warehouse, nil
}

func (s *warehouseService) GetWarehouse(ctx context.Context, actor entity.Actor, id string) (*entity.Warehouse, error) {
	if !actor.IsAdmin {
		return nil, domainerrors.ErrAdminRequired
	}

	return s.loadWarehouse(ctx, id)
}

func (s *warehouseService) ListWarehouses(ctx context.Context, actor entity.Actor) ([]*entity.Warehouse, error) {
	if !actor.IsAdmin {
		return nil, domainerrors.ErrAdminRequired
	}

	warehouses, err := s.warehouseRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list warehouses")
	}

	return warehouses, nil
}

// UpdateWarehouse replaces the mutable fields of a warehouse. Requests that
// already snapshot this warehouse keep their frozen copy.
func (s *warehouseService) UpdateWarehouse(ctx context.Context, actor entity.Actor, id string, input *usecase.WarehouseInput) (*entity.Warehouse, error) {
	if !actor.IsAdmin {
		return nil, domainerrors.ErrAdminRequired
	}

	warehouse, err := s.loadWarehouse(ctx, id)
	if err != nil {
		return nil, err
	}

	warehouse.Name = input.Name
	warehouse.AddressLine1 = input.AddressLine1
	warehouse.AddressLine2 = input.AddressLine2
	warehouse.City = input.City
	warehouse.State = input.State
	warehouse.PostalCode = input.PostalCode
	warehouse.Country = input.Country
	warehouse.ContactName = input.ContactName
	warehouse.ContactPhone = input.ContactPhone
	warehouse.ContactEmail = input.ContactEmail
	if input.IsActive != nil {
		warehouse.IsActive = *input.IsActive
	}
	warehouse.UpdatedAt = time.Now().UTC()

	if err := s.warehouseRepo.Update(ctx, warehouse); err != nil {
		return nil, errors.Wrap(err, "failed to update warehouse")
	}

	return warehouse, nil
}

func (s *warehouseService) DeleteWarehouse(ctx context.Context, actor entity.Actor, id string) error {
	if !actor.IsAdmin {
		return domainerrors.ErrAdminRequired
	}

	if _, err := s.loadWarehouse(ctx, id); err != nil {
		return err
	}

	if err := s.warehouseRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete warehouse")
	}

	return nil
}

func (s *warehouseService) loadWarehouse(ctx context.Context, id string) (*entity.Warehouse, error) {
	warehouse, err := s.warehouseRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrWarehouseNotFound) {
			return nil, domainerrors.ErrWarehouseNotFound
		}

		return nil, errors.Wrap(err, "failed to load warehouse")
	}

	return warehouse, nil
}
