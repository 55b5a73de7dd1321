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

type creditHistoryRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// CreditHistoryRepoParams holds dependencies for the credit history repository.
type CreditHistoryRepoParams struct {
	fx.In

	Client *firestore.Client
	Logger *slog.Logger
}

// NewCreditHistoryRepository creates the Firestore-backed credit history repository.
func NewCreditHistoryRepository(params CreditHistoryRepoParams) repository.CreditHistoryRepository {
	return &creditHistoryRepository{
		client: params.Client,
		logger: params.Logger,
	}
}

func (r *creditHistoryRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(constants.CollectionCreditHistory)
}

func (r *creditHistoryRepository) Append(ctx context.Context, entry *entity.CreditHistoryEntry) (string, error) {
	ref, _, err := r.collection().Add(ctx, model.FromCreditHistoryEntity(entry))
	if err != nil {
		return "", errors.Wrap(err, "failed to append credit history document")
	}

	return ref.ID, nil
}

func (r *creditHistoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.CreditHistoryEntry, error) {
	return r.listSorted(ctx, r.collection().Where("ownerId", "==", ownerID))
}

func (r *creditHistoryRepository) ListByRequest(ctx context.Context, exchangeRequestID string) ([]*entity.CreditHistoryEntry, error) {
	return r.listSorted(ctx, r.collection().Where("exchangeRequestId", "==", exchangeRequestID))
}

// listSorted mirrors the exchange repository's index fallback: ordered query
// first, unordered plus client-side sort when the composite index is missing.
func (r *creditHistoryRepository) listSorted(ctx context.Context, query firestore.Query) ([]*entity.CreditHistoryEntry, error) {
	docs, err := query.OrderBy("createdAt", firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		if status.Code(err) != codes.FailedPrecondition {
			return nil, errors.Wrap(err, "failed to list credit history documents")
		}

		r.logger.Warn("ordered query needs a composite index, sorting client-side",
			slog.Any("error", err),
		)

		docs, err = query.Documents(ctx).GetAll()
		if err != nil {
			return nil, errors.Wrap(err, "failed to list credit history documents")
		}
	}

	entries := make([]*entity.CreditHistoryEntry, 0, len(docs))
	for _, doc := range docs {
		var m model.CreditHistoryEntry
		if err := doc.DataTo(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode credit history document")
		}
		entries = append(entries, m.ToEntity(doc.Ref.ID))
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	return entries, nil
}
