package impl

import (
	"context"
	"testing"

	"tradein/internal/domain/entity"
	domainerrors "tradein/internal/domain/errors"
	"tradein/internal/domain/repository"
	"tradein/internal/domain/service"
	"tradein/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExchangeService_GetRequest_NotFound(t *testing.T) {
	engine, m := newEngine(t)
	ctx := context.Background()

	m.exchangeRepo.EXPECT().
		FindByID(ctx, "missing").
		Return(nil, repository.ErrExchangeRequestNotFound)

	_, err := engine.GetRequest(ctx, ownerActor, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrRequestNotFound)
}

func TestExchangeService_GetRequest_StrangerForbidden(t *testing.T) {
	engine, m := newEngine(t)
	ctx := context.Background()
	existing := pendingRequest()

	m.exchangeRepo.EXPECT().
		FindByID(ctx, existing.ID).
		Return(existing, nil)

	_, err := engine.GetRequest(ctx, otherActor, existing.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestExchangeService_UpdateRequest_NotPending(t *testing.T) {
	engine, m := newEngine(t)
	ctx := context.Background()
	existing := approvedRequest()

	m.exchangeRepo.EXPECT().
		FindByID(ctx, existing.ID).
		Return(existing, nil)

	brand := "Keychron"
	_, err := engine.UpdateRequest(ctx, ownerActor, existing.ID, &usecase.UpdateRequestInput{Brand: &brand})
	assert.ErrorIs(t, err, domainerrors.ErrRequestNotPending)
}

func TestExchangeService_CancelRequest_NotPending(t *testing.T) {
	engine, m := newEngine(t)
	ctx := context.Background()

	for _, status := range []entity.Status{entity.StatusApproved, entity.StatusDeclined, entity.StatusCompleted} {
		existing := pendingRequest()
		existing.Status = status

		m.exchangeRepo.EXPECT().
			FindByID(ctx, existing.ID).
			Return(existing, nil).
			Once()

		err := engine.CancelRequest(ctx, ownerActor, existing.ID)
		assert.ErrorIs(t, err, domainerrors.ErrRequestNotPending, "status %s", status)
	}
}

func TestExchangeService_CancelRequest_NotOwner(t *testing.T) {
	engine, m := newEngine(t)
	ctx := context.Background()
	existing := pendingRequest()

	m.exchangeRepo.EXPECT().
		FindByID(ctx, existing.ID).
		Return(existing, nil)

	err := engine.CancelRequest(ctx, otherActor, existing.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestExchangeService_SubmitShipping_NotApproved(t *testing.T) {
	engine, m := newEngine(t)
	ctx := context.Background()
	existing := pendingRequest()

	m.exchangeRepo.EXPECT().
		FindByID(ctx, existing.ID).
		Return(existing, nil)

	_, err := engine.SubmitShipping(ctx, ownerActor, existing.ID, &usecase.SubmitShippingInput{
		Carrier:        "UPS",
		TrackingNumber: "1Z999",
		ShippingDate:   "2026-08-20",
	})
	assert.ErrorIs(t, err, domainerrors.ErrRequestNotApproved)
}

func TestExchangeService_SubmitShipping_MissingFields(t *testing.T) {
	engine, m := newEngine(t)
	ctx := context.Background()
	existing := approvedRequest()

	m.exchangeRepo.EXPECT().
		FindByID(ctx, existing.ID).
		Return(existing, nil)

	_, err := engine.SubmitShipping(ctx, ownerActor, existing.ID, &usecase.SubmitShippingInput{
		Carrier: "UPS",
	})
	assert.ErrorIs(t, err, domainerrors.ErrMissingShippingFields)
}

func TestExchangeService_SetStatus_NonAdmin(t *testing.T) {
	engine, _ := newEngine(t)
	ctx := context.Background()

	_, err := engine.SetStatus(ctx, ownerActor, "req-1", &usecase.SetStatusInput{Status: "approved"})
	assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)
}

func TestExchangeService_SetStatus_UnknownStatus(t *testing.T) {
	engine, _ := newEngine(t)
	ctx := context.Background()

	_, err := engine.SetStatus(ctx, adminActor, "req-1", &usecase.SetStatusInput{Status: "archived"})
	assert.ErrorIs(t, err, domainerrors.ErrUnknownStatus)
}

func TestExchangeService_SetStatus_PendingIsNotATarget(t *testing.T) {
	engine, m := newEngine(t)
	ctx := context.Background()
	existing := approvedRequest()

	m.exchangeRepo.EXPECT().
		FindByID(ctx, existing.ID).
		Return(existing, nil)

	_, err := engine.SetStatus(ctx, adminActor, existing.ID, &usecase.SetStatusInput{Status: "pending"})
	assert.ErrorIs(t, err, domainerrors.ErrUnknownStatus)
}

func TestExchangeService_SetStatus_Approve_MissingWarehouse(t *testing.T) {
	engine, m := newEngine(t)
	ctx := context.Background()
	existing := pendingRequest()

	m.exchangeRepo.EXPECT().
		FindByID(ctx, existing.ID).
		Return(existing, nil)

	_, err := engine.SetStatus(ctx, adminActor, existing.ID, &usecase.SetStatusInput{Status: "approved"})
	assert.ErrorIs(t, err, domainerrors.ErrMissingWarehouse)
}

func TestExchangeService_SetStatus_Approve_WarehouseNotFound(t *testing.T) {
	engine, m := newEngine(t)
	ctx := context.Background()
	existing := pendingRequest()

	m.exchangeRepo.EXPECT().
		FindByID(ctx, existing.ID).
		Return(existing, nil)

	m.warehouseRepo.EXPECT().
		FindByID(ctx, "wh-missing").
		Return(nil, repository.ErrWarehouseNotFound)

	_, err := engine.SetStatus(ctx, adminActor, existing.ID, &usecase.SetStatusInput{
		Status:      "approved",
		WarehouseID: "wh-missing",
	})
	assert.ErrorIs(t, err, domainerrors.ErrWarehouseNotFound)
}

// Terminal states accept no further status transition.
func TestExchangeService_SetStatus_TerminalStatesAreFinal(t *testing.T) {
	engine, m := newEngine(t)
	ctx := context.Background()

	for _, status := range []entity.Status{entity.StatusDeclined, entity.StatusCompleted} {
		existing := pendingRequest()
		existing.Status = status

		m.exchangeRepo.EXPECT().
			FindByID(ctx, existing.ID).
			Return(existing, nil).
			Times(3)

		for _, target := range []string{"approved", "declined", "completed"} {
			_, err := engine.SetStatus(ctx, adminActor, existing.ID, &usecase.SetStatusInput{
				Status:      target,
				WarehouseID: "wh-1",
			})
			require.Error(t, err, "status %s -> %s must be rejected", status, target)
		}
	}
}

func TestExchangeService_SetStatus_Complete_WithoutCredit(t *testing.T) {
	engine, m := newEngine(t)
	ctx := context.Background()
	existing := receivedRequest()

	m.exchangeRepo.EXPECT().
		FindByID(ctx, existing.ID).
		Return(existing, nil)

	_, err := engine.SetStatus(ctx, adminActor, existing.ID, &usecase.SetStatusInput{Status: "completed"})
	assert.ErrorIs(t, err, domainerrors.ErrCreditNotAssigned)
}

func TestExchangeService_SetTransitStatus_NonAdmin(t *testing.T) {
	engine, _ := newEngine(t)
	ctx := context.Background()

	_, err := engine.SetTransitStatus(ctx, ownerActor, "req-1", &usecase.SetTransitInput{TransitStatus: "received"})
	assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)
}

func TestExchangeService_SetTransitStatus_UnknownValue(t *testing.T) {
	engine, _ := newEngine(t)
	ctx := context.Background()

	_, err := engine.SetTransitStatus(ctx, adminActor, "req-1", &usecase.SetTransitInput{TransitStatus: "lost"})
	assert.ErrorIs(t, err, domainerrors.ErrUnknownTransitStatus)
}

// "shipping" is owner-driven through SubmitShipping; admins cannot set it.
func TestExchangeService_SetTransitStatus_ShippingRejected(t *testing.T) {
	engine, m := newEngine(t)
	ctx := context.Background()
	existing := approvedRequest()

	m.exchangeRepo.EXPECT().
		FindByID(ctx, existing.ID).
		Return(existing, nil)

	_, err := engine.SetTransitStatus(ctx, adminActor, existing.ID, &usecase.SetTransitInput{TransitStatus: "shipping"})
	assert.ErrorIs(t, err, domainerrors.ErrUnknownTransitStatus)
}

func TestExchangeService_SetTransitStatus_Received_WithoutShippingDetails(t *testing.T) {
	engine, m := newEngine(t)
	ctx := context.Background()
	existing := approvedRequest()

	m.exchangeRepo.EXPECT().
		FindByID(ctx, existing.ID).
		Return(existing, nil)

	_, err := engine.SetTransitStatus(ctx, adminActor, existing.ID, &usecase.SetTransitInput{TransitStatus: "received"})
	assert.ErrorIs(t, err, domainerrors.ErrShippingDetailsRequired)
}

func TestExchangeService_SetTransitStatus_Completed_WithoutCredit(t *testing.T) {
	engine, m := newEngine(t)
	ctx := context.Background()
	existing := receivedRequest()

	m.exchangeRepo.EXPECT().
		FindByID(ctx, existing.ID).
		Return(existing, nil)

	_, err := engine.SetTransitStatus(ctx, adminActor, existing.ID, &usecase.SetTransitInput{TransitStatus: "completed"})
	assert.ErrorIs(t, err, domainerrors.ErrCreditNotAssigned)
}

// Terminal states are final on the transit axis too: a settled request must
// not accept a replayed transit update even though its credit is assigned.
func TestExchangeService_SetTransitStatus_TerminalStatesAreFinal(t *testing.T) {
	engine, m := newEngine(t)
	ctx := context.Background()

	settled := receivedRequest()
	settled.Status = entity.StatusCompleted
	settled.TransitStatus = entity.TransitCompleted
	settled.CreditAmount = 3000
	settled.TotalLoyaltyPoints = 4500

	declined := pendingRequest()
	declined.Status = entity.StatusDeclined

	for _, existing := range []*entity.ExchangeRequest{settled, declined} {
		m.exchangeRepo.EXPECT().
			FindByID(ctx, existing.ID).
			Return(existing, nil).
			Times(2)

		for _, target := range []string{"received", "completed"} {
			_, err := engine.SetTransitStatus(ctx, adminActor, existing.ID, &usecase.SetTransitInput{TransitStatus: target})
			require.Error(t, err, "status %s -> transit %s must be rejected", existing.Status, target)
			assert.ErrorIs(t, err, domainerrors.ErrRequestNotApproved)
		}
	}
}

func TestExchangeService_AssignCredit_Guards(t *testing.T) {
	ctx := context.Background()

	t.Run("non admin", func(t *testing.T) {
		engine, _ := newEngine(t)

		_, err := engine.AssignCredit(ctx, ownerActor, "req-1", &usecase.AssignCreditInput{Amount: 100})
		assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)
	})

	t.Run("non positive amount", func(t *testing.T) {
		engine, _ := newEngine(t)

		_, err := engine.AssignCredit(ctx, adminActor, "req-1", &usecase.AssignCreditInput{Amount: 0})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCreditAmount)

		_, err = engine.AssignCredit(ctx, adminActor, "req-1", &usecase.AssignCreditInput{Amount: -50})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCreditAmount)
	})

	t.Run("not approved", func(t *testing.T) {
		engine, m := newEngine(t)
		existing := pendingRequest()

		m.exchangeRepo.EXPECT().
			FindByID(ctx, existing.ID).
			Return(existing, nil)

		_, err := engine.AssignCredit(ctx, adminActor, existing.ID, &usecase.AssignCreditInput{Amount: 100})
		assert.ErrorIs(t, err, domainerrors.ErrRequestNotApproved)
	})

	t.Run("not received", func(t *testing.T) {
		engine, m := newEngine(t)
		existing := approvedRequest()
		existing.TransitStatus = entity.TransitShipping

		m.exchangeRepo.EXPECT().
			FindByID(ctx, existing.ID).
			Return(existing, nil)

		_, err := engine.AssignCredit(ctx, adminActor, existing.ID, &usecase.AssignCreditInput{Amount: 100})
		assert.ErrorIs(t, err, domainerrors.ErrRequestNotReceived)
	})

	t.Run("already assigned", func(t *testing.T) {
		engine, m := newEngine(t)
		existing := receivedRequest()
		existing.CreditAmount = 3000

		m.exchangeRepo.EXPECT().
			FindByID(ctx, existing.ID).
			Return(existing, nil)

		_, err := engine.AssignCredit(ctx, adminActor, existing.ID, &usecase.AssignCreditInput{Amount: 100})
		assert.ErrorIs(t, err, domainerrors.ErrCreditAlreadyAssigned)
	})

	t.Run("ledger customer missing", func(t *testing.T) {
		engine, m := newEngine(t)
		existing := receivedRequest()

		m.exchangeRepo.EXPECT().
			FindByID(ctx, existing.ID).
			Return(existing, nil)

		m.ledger.EXPECT().
			FindCustomerByEmail(ctx, ownerActor.Email).
			Return(nil, service.ErrLedgerCustomerNotFound)

		_, err := engine.AssignCredit(ctx, adminActor, existing.ID, &usecase.AssignCreditInput{Amount: 100})
		assert.ErrorIs(t, err, domainerrors.ErrLedgerCustomerNotFound)
	})
}

func TestExchangeService_AssignCredit_HistoryAppendFailure(t *testing.T) {
	engine, m := newEngine(t)
	ctx := context.Background()
	existing := receivedRequest()
	customer := &service.LedgerCustomer{ID: "cust-9", Email: ownerActor.Email}

	m.exchangeRepo.EXPECT().
		FindByID(ctx, existing.ID).
		Return(existing, nil)

	m.ledger.EXPECT().
		FindCustomerByEmail(ctx, ownerActor.Email).
		Return(customer, nil)

	m.ledger.EXPECT().
		AddPoints(ctx, customer, int64(100)).
		Return(int64(100), nil)

	updated := receivedRequest()
	updated.CreditAmount = 100
	m.exchangeRepo.EXPECT().
		Update(ctx, existing.ID, mock.Anything).
		Return(updated, nil)

	m.historyRepo.EXPECT().
		Append(ctx, mock.Anything).
		Return("", assert.AnError)

	_, err := engine.AssignCredit(ctx, adminActor, existing.ID, &usecase.AssignCreditInput{Amount: 100})
	require.Error(t, err)
}

func TestExchangeService_ListAllRequests_NonAdmin(t *testing.T) {
	engine, _ := newEngine(t)
	ctx := context.Background()

	_, err := engine.ListAllRequests(ctx, ownerActor, nil)
	assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)
}

func TestExchangeService_ListCreditHistory_NonAdmin(t *testing.T) {
	engine, _ := newEngine(t)
	ctx := context.Background()

	_, err := engine.ListCreditHistory(ctx, ownerActor, "req-1")
	assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)
}
