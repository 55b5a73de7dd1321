package firestore

import (
	"testing"
	"time"

	"tradein/internal/domain/entity"
	"tradein/internal/domain/repository"
	"tradein/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
)

func TestSortByCreatedAtDesc(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	requests := []*entity.ExchangeRequest{
		{ID: "a", CreatedAt: base},
		{ID: "b", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "c", CreatedAt: base.Add(time.Hour)},
	}

	sortByCreatedAtDesc(requests)

	assert.Equal(t, []string{"b", "c", "a"}, []string{requests[0].ID, requests[1].ID, requests[2].ID})
}

// Client-side sorting must produce the same order a server-side ordered query
// would, including a deterministic result for equal timestamps.
func TestSortByCreatedAtDesc_EqualTimestamps(t *testing.T) {
	ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	requests := []*entity.ExchangeRequest{
		{ID: "a", CreatedAt: ts},
		{ID: "z", CreatedAt: ts},
		{ID: "m", CreatedAt: ts},
	}

	sortByCreatedAtDesc(requests)

	assert.Equal(t, []string{"z", "m", "a"}, []string{requests[0].ID, requests[1].ID, requests[2].ID})
}

func TestToDocumentValue(t *testing.T) {
	assert.Equal(t, "approved", toDocumentValue(repository.FieldStatus, entity.StatusApproved))
	assert.Equal(t, "received", toDocumentValue(repository.FieldTransitStatus, entity.TransitReceived))

	details := toDocumentValue(repository.FieldShippingDetails, &entity.ShippingDetails{Carrier: "UPS"})
	if assert.IsType(t, &model.ShippingDetails{}, details) {
		assert.Equal(t, "UPS", details.(*model.ShippingDetails).Carrier)
	}

	info := toDocumentValue(repository.FieldWarehouseInfo, &entity.WarehouseInfo{Name: "Central"})
	if assert.IsType(t, &model.WarehouseInfo{}, info) {
		assert.Equal(t, "Central", info.(*model.WarehouseInfo).Name)
	}

	// Scalar values pass through untouched.
	assert.Equal(t, int64(3000), toDocumentValue(repository.FieldCreditAmount, int64(3000)))
	assert.Equal(t, true, toDocumentValue(repository.FieldLedgerSuccess, true))
}
