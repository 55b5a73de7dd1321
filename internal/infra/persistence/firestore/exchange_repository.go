package firestore

import (
	"context"
	"log/slog"
	"sort"

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

type exchangeRequestRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// ExchangeRepoParams holds dependencies for the exchange request repository.
type ExchangeRepoParams struct {
	fx.In

	Client *firestore.Client
	Logger *slog.Logger
}

// NewExchangeRequestRepository creates the Firestore-backed exchange request repository.
func NewExchangeRequestRepository(params ExchangeRepoParams) repository.ExchangeRequestRepository {
	return &exchangeRequestRepository{
		client: params.Client,
		logger: params.Logger,
	}
}

func (r *exchangeRequestRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(constants.CollectionExchangeRequests)
}

func (r *exchangeRequestRepository) Create(ctx context.Context, request *entity.ExchangeRequest) (string, error) {
	ref, _, err := r.collection().Add(ctx, model.FromExchangeRequestEntity(request))
	if err != nil {
		return "", errors.Wrap(err, "failed to create exchange request document")
	}

	return ref.ID, nil
}

func (r *exchangeRequestRepository) FindByID(ctx context.Context, id string) (*entity.ExchangeRequest, error) {
	doc, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrExchangeRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to get exchange request document")
	}

	var m model.ExchangeRequest
	if err := doc.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode exchange request document")
	}

	return m.ToEntity(doc.Ref.ID), nil
}

func (r *exchangeRequestRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.ExchangeRequest, error) {
	return r.listSorted(ctx, r.collection().Where("ownerId", "==", ownerID))
}

func (r *exchangeRequestRepository) ListAll(ctx context.Context, filter *entity.Status) ([]*entity.ExchangeRequest, error) {
	query := r.collection().Query
	if filter != nil {
		query = query.Where("status", "==", string(*filter))
	}

	return r.listSorted(ctx, query)
}

// listSorted runs the query ordered by creation time descending. Firestore
// rejects ordered queries on filtered fields until a composite index exists;
// on FailedPrecondition the query is retried unordered and sorted client-side
// so both paths produce the same ordering.
func (r *exchangeRequestRepository) listSorted(ctx context.Context, query firestore.Query) ([]*entity.ExchangeRequest, error) {
	docs, err := query.OrderBy("createdAt", firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		if status.Code(err) != codes.FailedPrecondition {
			return nil, errors.Wrap(err, "failed to list exchange request documents")
		}

		r.logger.Warn("ordered query needs a composite index, sorting client-side",
			slog.Any("error", err),
		)

		docs, err = query.Documents(ctx).GetAll()
		if err != nil {
			return nil, errors.Wrap(err, "failed to list exchange request documents")
		}
	}

	requests := make([]*entity.ExchangeRequest, 0, len(docs))
	for _, doc := range docs {
		var m model.ExchangeRequest
		if err := doc.DataTo(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode exchange request document")
		}
		requests = append(requests, m.ToEntity(doc.Ref.ID))
	}
	sortByCreatedAtDesc(requests)

	return requests, nil
}

// sortByCreatedAtDesc orders newest first, with ID as a stable tiebreaker.
func sortByCreatedAtDesc(requests []*entity.ExchangeRequest) {
	sort.SliceStable(requests, func(i, j int) bool {
		if requests[i].CreatedAt.Equal(requests[j].CreatedAt) {
			return requests[i].ID > requests[j].ID
		}

		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
}

func (r *exchangeRequestRepository) Update(ctx context.Context, id string, fields map[string]any) (*entity.ExchangeRequest, error) {
	updates := make([]firestore.Update, 0, len(fields))
	for key, value := range fields {
		updates = append(updates, firestore.Update{Path: key, Value: toDocumentValue(key, value)})
	}

	if _, err := r.collection().Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrExchangeRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to update exchange request document")
	}

	return r.FindByID(ctx, id)
}

// toDocumentValue converts engine-level values into their document shapes.
// Enum types become plain strings and embedded structs take firestore tags.
func toDocumentValue(key string, value any) any {
	switch key {
	case repository.FieldStatus:
		if s, ok := value.(entity.Status); ok {
			return string(s)
		}
	case repository.FieldTransitStatus:
		if s, ok := value.(entity.TransitStatus); ok {
			return string(s)
		}
	case repository.FieldShippingDetails:
		if d, ok := value.(*entity.ShippingDetails); ok {
			return model.FromShippingDetailsEntity(d)
		}
	case repository.FieldWarehouseInfo:
		if w, ok := value.(*entity.WarehouseInfo); ok {
			return model.FromWarehouseInfoEntity(w)
		}
	}

	return value
}

func (r *exchangeRequestRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.collection().Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete exchange request document")
	}

	return nil
}
