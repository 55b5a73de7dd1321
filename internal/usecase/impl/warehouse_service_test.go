package impl

import (
	"context"
	"testing"

	"tradein/internal/domain/entity"
	domainerrors "tradein/internal/domain/errors"
	"tradein/internal/domain/repository"
	mockRepo "tradein/internal/mocks/repository"
	"tradein/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWarehouseService(t *testing.T) (usecase.WarehouseUsecase, *mockRepo.MockWarehouseRepository) {
	t.Helper()

	repo := mockRepo.NewMockWarehouseRepository(t)
	svc := NewWarehouseService(WarehouseServiceParams{
		WarehouseRepo: repo,
		Logger:        newDiscardLogger(),
	})

	return svc, repo
}

func warehouseInput() *usecase.WarehouseInput {
	return &usecase.WarehouseInput{
		Name:         "Central Returns",
		AddressLine1: "1 Depot Way",
		City:         "Springfield",
		PostalCode:   "12345",
		Country:      "US",
	}
}

func TestWarehouseService_CreateWarehouse(t *testing.T) {
	svc, repo := newWarehouseService(t)
	ctx := context.Background()

	repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(w *entity.Warehouse) bool {
			return w.Name == "Central Returns" && w.IsActive
		})).
		Return("wh-1", nil)

	warehouse, err := svc.CreateWarehouse(ctx, adminActor, warehouseInput())
	require.NoError(t, err)
	assert.Equal(t, "wh-1", warehouse.ID)
	assert.True(t, warehouse.IsActive)
}

func TestWarehouseService_CreateWarehouse_InactiveOnRequest(t *testing.T) {
	svc, repo := newWarehouseService(t)
	ctx := context.Background()

	repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(w *entity.Warehouse) bool {
			return !w.IsActive
		})).
		Return("wh-1", nil)

	input := warehouseInput()
	inactive := false
	input.IsActive = &inactive

	_, err := svc.CreateWarehouse(ctx, adminActor, input)
	require.NoError(t, err)
}

func TestWarehouseService_NonAdminRejected(t *testing.T) {
	svc, _ := newWarehouseService(t)
	ctx := context.Background()

	_, err := svc.CreateWarehouse(ctx, ownerActor, warehouseInput())
	assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)

	_, err = svc.GetWarehouse(ctx, ownerActor, "wh-1")
	assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)

	_, err = svc.ListWarehouses(ctx, ownerActor)
	assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)

	_, err = svc.UpdateWarehouse(ctx, ownerActor, "wh-1", warehouseInput())
	assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)

	err = svc.DeleteWarehouse(ctx, ownerActor, "wh-1")
	assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)
}

func TestWarehouseService_UpdateWarehouse(t *testing.T) {
	svc, repo := newWarehouseService(t)
	ctx := context.Background()
	existing := &entity.Warehouse{ID: "wh-1", Name: "Old Name", IsActive: true}

	repo.EXPECT().
		FindByID(ctx, "wh-1").
		Return(existing, nil)

	repo.EXPECT().
		Update(ctx, mock.MatchedBy(func(w *entity.Warehouse) bool {
			return w.ID == "wh-1" && w.Name == "Central Returns"
		})).
		Return(nil)

	updated, err := svc.UpdateWarehouse(ctx, adminActor, "wh-1", warehouseInput())
	require.NoError(t, err)
	assert.Equal(t, "Central Returns", updated.Name)
}

func TestWarehouseService_UpdateWarehouse_NotFound(t *testing.T) {
	svc, repo := newWarehouseService(t)
	ctx := context.Background()

	repo.EXPECT().
		FindByID(ctx, "missing").
		Return(nil, repository.ErrWarehouseNotFound)

	_, err := svc.UpdateWarehouse(ctx, adminActor, "missing", warehouseInput())
	assert.ErrorIs(t, err, domainerrors.ErrWarehouseNotFound)
}

func TestWarehouseService_DeleteWarehouse(t *testing.T) {
	svc, repo := newWarehouseService(t)
	ctx := context.Background()

	repo.EXPECT().
		FindByID(ctx, "wh-1").
		Return(&entity.Warehouse{ID: "wh-1"}, nil)

	repo.EXPECT().
		Delete(ctx, "wh-1").
		Return(nil)

	require.NoError(t, svc.DeleteWarehouse(ctx, adminActor, "wh-1"))
}
