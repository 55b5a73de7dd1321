package firestore

import (
	"context"
	"log/slog"

	"tradein/internal/domain/constants"
	"tradein/internal/domain/entity"
	"tradein/internal/domain/repository"
	"tradein/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type warehouseRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// WarehouseRepoParams holds dependencies for the warehouse repository.
type WarehouseRepoParams struct {
	fx.In

	Client *firestore.Client
	Logger *slog.Logger
}

// NewWarehouseRepository creates the Firestore-backed warehouse repository.
func NewWarehouseRepository(params WarehouseRepoParams) repository.WarehouseRepository {
	return &warehouseRepository{
		client: params.Client,
		logger: params.Logger,
	}
}

func (r *warehouseRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(constants.CollectionWarehouses)
}

func (r *warehouseRepository) Create(ctx context.Context, warehouse *entity.Warehouse) (string, error) {
	ref, _, err := r.collection().Add(ctx, model.FromWarehouseEntity(warehouse))
	if err != nil {
		return "", errors.Wrap(err, "failed to create warehouse document")
	}

	return ref.ID, nil
}

func (r *warehouseRepository) FindByID(ctx context.Context, id string) (*entity.Warehouse, error) {
	doc, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrWarehouseNotFound
		}

		return nil, errors.Wrap(err, "failed to get warehouse document")
	}

	var m model.Warehouse
	if err := doc.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode warehouse document")
	}

	return m.ToEntity(doc.Ref.ID), nil
}

func (r *warehouseRepository) ListAll(ctx context.Context) ([]*entity.Warehouse, error) {
	docs, err := r.collection().OrderBy("createdAt", firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list warehouse documents")
	}

	warehouses := make([]*entity.Warehouse, 0, len(docs))
	for _, doc := range docs {
		var m model.Warehouse
		if err := doc.DataTo(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode warehouse document")
		}
		warehouses = append(warehouses, m.ToEntity(doc.Ref.ID))
	}

	return warehouses, nil
}

func (r *warehouseRepository) Update(ctx context.Context, warehouse *entity.Warehouse) error {
	_, err := r.collection().Doc(warehouse.ID).Set(ctx, model.FromWarehouseEntity(warehouse))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrWarehouseNotFound
		}

		return errors.Wrap(err, "failed to update warehouse document")
	}

	return nil
}

func (r *warehouseRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.collection().Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete warehouse document")
	}

	return nil
}
