package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"tradein/internal/domain/entity"
	mockRepo "tradein/internal/mocks/repository"
	mockSvc "tradein/internal/mocks/service"
	"tradein/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// engineMocks bundles the collaborator mocks backing one engine under test.
type engineMocks struct {
	exchangeRepo  *mockRepo.MockExchangeRequestRepository
	warehouseRepo *mockRepo.MockWarehouseRepository
	historyRepo   *mockRepo.MockCreditHistoryRepository
	ledger        *mockSvc.MockLedgerService
	publisher     *mockSvc.MockEventPublisher
}

func newEngine(t *testing.T) (usecase.ExchangeUsecase, *engineMocks) {
	t.Helper()

	m := &engineMocks{
		exchangeRepo:  mockRepo.NewMockExchangeRequestRepository(t),
		warehouseRepo: mockRepo.NewMockWarehouseRepository(t),
		historyRepo:   mockRepo.NewMockCreditHistoryRepository(t),
		ledger:        mockSvc.NewMockLedgerService(t),
		publisher:     mockSvc.NewMockEventPublisher(t),
	}
	engine := NewExchangeService(ExchangeServiceParams{
		ExchangeRepo:  m.exchangeRepo,
		WarehouseRepo: m.warehouseRepo,
		HistoryRepo:   m.historyRepo,
		Ledger:        m.ledger,
		Publisher:     m.publisher,
		Logger:        newDiscardLogger(),
	})

	return engine, m
}

var (
	ownerActor = entity.Actor{ID: "user-1", Email: "owner@example.com"}
	otherActor = entity.Actor{ID: "user-2", Email: "other@example.com"}
	adminActor = entity.Actor{ID: "admin-1", Email: "admin@example.com", IsAdmin: true}
)

func pendingRequest() *entity.ExchangeRequest {
	now := time.Now().UTC().Add(-time.Hour)

	return &entity.ExchangeRequest{
		ID:          "req-1",
		OwnerID:     ownerActor.ID,
		OwnerEmail:  ownerActor.Email,
		ProductName: "Mechanical Keyboard",
		Description: "87-key, lightly used",
		Condition:   "good",
		Status:      entity.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func approvedRequest() *entity.ExchangeRequest {
	r := pendingRequest()
	r.Status = entity.StatusApproved
	r.WarehouseID = "wh-1"
	r.WarehouseInfo = &entity.WarehouseInfo{
		Name:         "Central Returns",
		AddressLine1: "1 Depot Way",
		City:         "Springfield",
		PostalCode:   "12345",
		Country:      "US",
	}

	return r
}

func receivedRequest() *entity.ExchangeRequest {
	r := approvedRequest()
	r.TransitStatus = entity.TransitReceived
	r.ShippingDetails = &entity.ShippingDetails{
		Carrier:        "UPS",
		TrackingNumber: "1Z999",
		ShippingDate:   "2026-08-20",
		SubmittedAt:    time.Now().UTC().Add(-30 * time.Minute),
	}

	return r
}
