// Package impl contains the usecase implementations, including the exchange
// lifecycle engine.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "tradein/internal/delivery/context"
	"tradein/internal/domain/entity"
	domainerrors "tradein/internal/domain/errors"
	"tradein/internal/domain/repository"
	"tradein/internal/domain/service"
	"tradein/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type exchangeService struct {
	exchangeRepo  repository.ExchangeRequestRepository
	warehouseRepo repository.WarehouseRepository
	historyRepo   repository.CreditHistoryRepository
	ledger        service.LedgerService
	publisher     service.EventPublisher
	logger        *slog.Logger
}

// ExchangeServiceParams holds dependencies for ExchangeService, injected by Fx.
type ExchangeServiceParams struct {
	fx.In

	ExchangeRepo  repository.ExchangeRequestRepository
	WarehouseRepo repository.WarehouseRepository
	HistoryRepo   repository.CreditHistoryRepository
	Ledger        service.LedgerService
	Publisher     service.EventPublisher
	Logger        *slog.Logger
}

// NewExchangeService creates the exchange lifecycle engine.
func NewExchangeService(params ExchangeServiceParams) usecase.ExchangeUsecase {
	return &exchangeService{
		exchangeRepo:  params.ExchangeRepo,
		warehouseRepo: params.WarehouseRepo,
		historyRepo:   params.HistoryRepo,
		ledger:        params.Ledger,
		publisher:     params.Publisher,
		logger:        params.Logger,
	}
}

// CreateRequest registers a new pending exchange request for the actor.
func (s *exchangeService) CreateRequest(ctx context.Context, actor entity.Actor, input *usecase.CreateRequestInput) (*entity.ExchangeRequest, error) {
	if input.ProductName == "" || input.Description == "" || input.Condition == "" {
		return nil, domainerrors.ErrValidation.WithDetails("product_name, description and condition are required")
	}

	now := time.Now().UTC()
	request := &entity.ExchangeRequest{
		OwnerID:       actor.ID,
		OwnerEmail:    actor.Email,
		ProductName:   input.ProductName,
		Description:   input.Description,
		Brand:         input.Brand,
		Condition:     input.Condition,
		Images:        input.Images,
		Status:        entity.StatusPending,
		TransitStatus: entity.TransitNone,
		CreditAmount:  0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	id, err := s.exchangeRepo.Create(ctx, request)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create exchange request")
	}
	request.ID = id

	return request, nil
}

// GetRequest returns a request visible to the actor.
func (s *exchangeService) GetRequest(ctx context.Context, actor entity.Actor, id string) (*entity.ExchangeRequest, error) {
	request, err := s.loadRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin && !actor.Owns(request) {
		return nil, domainerrors.ErrForbidden
	}

	return request, nil
}

// ListOwnRequests returns the actor's requests, newest first.
func (s *exchangeService) ListOwnRequests(ctx context.Context, actor entity.Actor) ([]*entity.ExchangeRequest, error) {
	requests, err := s.exchangeRepo.ListByOwner(ctx, actor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list exchange requests by owner")
	}

	return requests, nil
}

// ListAllRequests returns every request, optionally filtered by status.
func (s *exchangeService) ListAllRequests(ctx context.Context, actor entity.Actor, status *entity.Status) ([]*entity.ExchangeRequest, error) {
	if !actor.IsAdmin {
		return nil, domainerrors.ErrAdminRequired
	}

	requests, err := s.exchangeRepo.ListAll(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list exchange requests")
	}

	return requests, nil
}

// UpdateRequest applies owner edits while the request is still pending.
func (s *exchangeService) UpdateRequest(ctx context.Context, actor entity.Actor, id string, input *usecase.UpdateRequestInput) (*entity.ExchangeRequest, error) {
	request, err := s.loadRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.Owns(request) {
		return nil, domainerrors.ErrForbidden
	}
	if request.Status != entity.StatusPending {
		return nil, domainerrors.ErrRequestNotPending
	}

	fields := map[string]any{}
	if input.ProductName != nil {
		if *input.ProductName == "" {
			return nil, domainerrors.ErrValidation.WithDetails("product_name must not be empty")
		}
		fields[repository.FieldProductName] = *input.ProductName
	}
	if input.Description != nil {
		fields[repository.FieldDescription] = *input.Description
	}
	if input.Brand != nil {
		fields[repository.FieldBrand] = *input.Brand
	}
	if input.Condition != nil {
		fields[repository.FieldCondition] = *input.Condition
	}
	if input.Images != nil {
		fields[repository.FieldImages] = *input.Images
	}
	if len(fields) == 0 {
		return request, nil
	}
	fields[repository.FieldUpdatedAt] = time.Now().UTC()

	updated, err := s.exchangeRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update exchange request")
	}

	return updated, nil
}

// CancelRequest deletes the actor's own request while it is still pending.
func (s *exchangeService) CancelRequest(ctx context.Context, actor entity.Actor, id string) error {
	request, err := s.loadRequest(ctx, id)
	if err != nil {
		return err
	}

	if !actor.Owns(request) {
		return domainerrors.ErrForbidden
	}
	if request.Status != entity.StatusPending {
		return domainerrors.ErrRequestNotPending
	}

	if err := s.exchangeRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete exchange request")
	}

	return nil
}

// SubmitShipping stores shipping details on an approved request and moves the
// transit status to shipping. Re-submission is allowed while the request is
// still approved.
func (s *exchangeService) SubmitShipping(ctx context.Context, actor entity.Actor, id string, input *usecase.SubmitShippingInput) (*entity.ExchangeRequest, error) {
	request, err := s.loadRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.Owns(request) {
		return nil, domainerrors.ErrForbidden
	}
	if request.Status != entity.StatusApproved {
		return nil, domainerrors.ErrRequestNotApproved
	}
	if input.Carrier == "" || input.TrackingNumber == "" || input.ShippingDate == "" {
		return nil, domainerrors.ErrMissingShippingFields
	}

	now := time.Now().UTC()
	details := &entity.ShippingDetails{
		Carrier:        input.Carrier,
		TrackingNumber: input.TrackingNumber,
		ShippingDate:   input.ShippingDate,
		Address:        input.Address,
		Notes:          input.Notes,
		SubmittedAt:    now,
	}

	updated, err := s.exchangeRepo.Update(ctx, id, map[string]any{
		repository.FieldShippingDetails: details,
		repository.FieldTransitStatus:   entity.TransitShipping,
		repository.FieldUpdatedAt:       now,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store shipping details")
	}

	return updated, nil
}

// SetStatus applies an admin status decision (approve, decline, complete).
func (s *exchangeService) SetStatus(ctx context.Context, actor entity.Actor, id string, input *usecase.SetStatusInput) (*entity.ExchangeRequest, error) {
	if !actor.IsAdmin {
		return nil, domainerrors.ErrAdminRequired
	}

	target, ok := entity.ParseStatus(input.Status)
	if !ok {
		return nil, domainerrors.ErrUnknownStatus.WithDetails(input.Status)
	}

	request, err := s.loadRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	switch target {
	case entity.StatusApproved:
		return s.approve(ctx, request, input)
	case entity.StatusDeclined:
		return s.decline(ctx, request, input)
	case entity.StatusCompleted:
		return s.complete(ctx, request, input)
	default:
		// pending is the creation state; nothing transitions back into it.
		return nil, domainerrors.ErrUnknownStatus.WithDetails(input.Status)
	}
}

// approve moves pending -> approved and freezes the warehouse snapshot.
func (s *exchangeService) approve(ctx context.Context, request *entity.ExchangeRequest, input *usecase.SetStatusInput) (*entity.ExchangeRequest, error) {
	if request.Status != entity.StatusPending {
		return nil, domainerrors.ErrRequestNotPending
	}
	if input.WarehouseID == "" {
		return nil, domainerrors.ErrMissingWarehouse
	}

	warehouse, err := s.warehouseRepo.FindByID(ctx, input.WarehouseID)
	if err != nil {
		if errors.Is(err, repository.ErrWarehouseNotFound) {
			return nil, domainerrors.ErrWarehouseNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve warehouse")
	}

	snapshot := warehouse.Snapshot()
	updated, err := s.exchangeRepo.Update(ctx, request.ID, map[string]any{
		repository.FieldStatus:        entity.StatusApproved,
		repository.FieldWarehouseID:   warehouse.ID,
		repository.FieldWarehouseInfo: snapshot,
		repository.FieldAdminFeedback: request.AppendFeedback(input.Feedback),
		repository.FieldUpdatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to approve exchange request")
	}

	s.publish(ctx, &service.NotificationEvent{
		Type:              service.NotificationApproved,
		ExchangeRequestID: updated.ID,
		OwnerEmail:        updated.OwnerEmail,
		ProductName:       updated.ProductName,
		WarehouseInfo: map[string]string{
			"name":          snapshot.Name,
			"address_line1": snapshot.AddressLine1,
			"address_line2": snapshot.AddressLine2,
			"city":          snapshot.City,
			"state":         snapshot.State,
			"postal_code":   snapshot.PostalCode,
			"country":       snapshot.Country,
		},
	})

	return updated, nil
}

// decline moves pending -> declined.
func (s *exchangeService) decline(ctx context.Context, request *entity.ExchangeRequest, input *usecase.SetStatusInput) (*entity.ExchangeRequest, error) {
	if request.Status != entity.StatusPending {
		return nil, domainerrors.ErrRequestNotPending
	}

	updated, err := s.exchangeRepo.Update(ctx, request.ID, map[string]any{
		repository.FieldStatus:        entity.StatusDeclined,
		repository.FieldAdminFeedback: request.AppendFeedback(input.Feedback),
		repository.FieldUpdatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to decline exchange request")
	}

	return updated, nil
}

// complete moves approved -> completed. Requires assigned credit.
func (s *exchangeService) complete(ctx context.Context, request *entity.ExchangeRequest, input *usecase.SetStatusInput) (*entity.ExchangeRequest, error) {
	if request.Status != entity.StatusApproved {
		return nil, domainerrors.ErrRequestNotApproved
	}
	if !request.CreditAssigned() {
		return nil, domainerrors.ErrCreditNotAssigned
	}

	updated, err := s.exchangeRepo.Update(ctx, request.ID, map[string]any{
		repository.FieldStatus:        entity.StatusCompleted,
		repository.FieldAdminFeedback: request.AppendFeedback(input.Feedback),
		repository.FieldUpdatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to complete exchange request")
	}

	return updated, nil
}

// SetTransitStatus applies an admin transit update (received, completed).
func (s *exchangeService) SetTransitStatus(ctx context.Context, actor entity.Actor, id string, input *usecase.SetTransitInput) (*entity.ExchangeRequest, error) {
	if !actor.IsAdmin {
		return nil, domainerrors.ErrAdminRequired
	}

	target, ok := entity.ParseTransitStatus(input.TransitStatus)
	if !ok {
		return nil, domainerrors.ErrUnknownTransitStatus.WithDetails(input.TransitStatus)
	}

	request, err := s.loadRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	switch target {
	case entity.TransitReceived:
		return s.markReceived(ctx, request, input)
	case entity.TransitCompleted:
		return s.markTransitCompleted(ctx, request, input)
	default:
		// "shipping" is owner-driven via SubmitShipping; "" never re-enters.
		return nil, domainerrors.ErrUnknownTransitStatus.WithDetails(input.TransitStatus)
	}
}

// markReceived confirms the warehouse received the item. The transition is
// deliberately permissive about the prior transit state: any state, including
// none, may move to received as long as shipping details are on file.
func (s *exchangeService) markReceived(ctx context.Context, request *entity.ExchangeRequest, input *usecase.SetTransitInput) (*entity.ExchangeRequest, error) {
	if request.Status != entity.StatusApproved {
		return nil, domainerrors.ErrRequestNotApproved
	}
	if request.ShippingDetails == nil {
		return nil, domainerrors.ErrShippingDetailsRequired
	}

	updated, err := s.exchangeRepo.Update(ctx, request.ID, map[string]any{
		repository.FieldTransitStatus: entity.TransitReceived,
		repository.FieldAdminFeedback: request.AppendFeedback(input.Feedback),
		repository.FieldUpdatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to mark item received")
	}

	s.publish(ctx, &service.NotificationEvent{
		Type:              service.NotificationItemReceived,
		ExchangeRequestID: updated.ID,
		OwnerEmail:        updated.OwnerEmail,
		ProductName:       updated.ProductName,
	})

	return updated, nil
}

// markTransitCompleted settles the shipment. Completing the transit axis
// forces the overall status to completed as a combined side effect.
func (s *exchangeService) markTransitCompleted(ctx context.Context, request *entity.ExchangeRequest, input *usecase.SetTransitInput) (*entity.ExchangeRequest, error) {
	if request.Status != entity.StatusApproved {
		return nil, domainerrors.ErrRequestNotApproved
	}
	if !request.CreditAssigned() {
		return nil, domainerrors.ErrCreditNotAssigned
	}

	updated, err := s.exchangeRepo.Update(ctx, request.ID, map[string]any{
		repository.FieldTransitStatus: entity.TransitCompleted,
		repository.FieldStatus:        entity.StatusCompleted,
		repository.FieldAdminFeedback: request.AppendFeedback(input.Feedback),
		repository.FieldUpdatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to complete transit")
	}

	return updated, nil
}

// AssignCredit grants loyalty points for a received item. The ledger write is
// additive and performed exactly once per request: a request that already
// carries credit rejects a second assignment.
func (s *exchangeService) AssignCredit(ctx context.Context, actor entity.Actor, id string, input *usecase.AssignCreditInput) (*entity.ExchangeRequest, error) {
	if !actor.IsAdmin {
		return nil, domainerrors.ErrAdminRequired
	}
	if input.Amount <= 0 {
		return nil, domainerrors.ErrInvalidCreditAmount
	}

	request, err := s.loadRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if request.Status != entity.StatusApproved {
		return nil, domainerrors.ErrRequestNotApproved
	}
	if request.TransitStatus != entity.TransitReceived {
		return nil, domainerrors.ErrRequestNotReceived
	}
	if request.CreditAssigned() {
		return nil, domainerrors.ErrCreditAlreadyAssigned
	}

	customer, err := s.ledger.FindCustomerByEmail(ctx, request.OwnerEmail)
	if err != nil {
		if errors.Is(err, service.ErrLedgerCustomerNotFound) {
			return nil, domainerrors.ErrLedgerCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve ledger customer")
	}

	// The ledger write is attempted first. A failure here does not abort the
	// grant: the intent is recorded locally with ledgerSuccess=false and the
	// balance computed from the last known value, leaving reconciliation to
	// an operator rather than silently losing the credit.
	ledgerSuccess := true
	newBalance, err := s.ledger.AddPoints(ctx, customer, input.Amount)
	if err != nil {
		ledgerSuccess = false
		balance, balanceErr := s.ledger.GetPointsBalance(ctx, customer)
		if balanceErr != nil {
			balance = 0
		}
		newBalance = balance + input.Amount

		s.logger.Error("ledger write failed, recording credit as degraded",
			slog.String("exchange_request_id", request.ID),
			slog.String("ledger_customer_id", customer.ID),
			slog.Int64("amount", input.Amount),
			slog.Any("error", err),
		)
	}

	now := time.Now().UTC()
	updated, err := s.exchangeRepo.Update(ctx, request.ID, map[string]any{
		repository.FieldCreditAmount:       input.Amount,
		repository.FieldTotalLoyaltyPoints: newBalance,
		repository.FieldLedgerCustomerID:   customer.ID,
		repository.FieldLedgerSuccess:      ledgerSuccess,
		repository.FieldCreditAssignedAt:   now,
		repository.FieldCreditAssignedBy:   actor.ID,
		repository.FieldAdminFeedback:      request.AppendFeedback(input.Feedback),
		repository.FieldUpdatedAt:          now,
	})
	if err != nil {
		// The external balance may already be incremented at this point with
		// no matching local record. This is a reconciliation case, not a
		// rollback: surface it loudly.
		s.logger.Error("exchange request update failed after ledger write",
			slog.String("exchange_request_id", request.ID),
			slog.String("ledger_customer_id", customer.ID),
			slog.Int64("amount", input.Amount),
			slog.Bool("ledger_success", ledgerSuccess),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to persist credit assignment")
	}

	entry := &entity.CreditHistoryEntry{
		OwnerID:           request.OwnerID,
		ExchangeRequestID: request.ID,
		Amount:            input.Amount,
		Currency:          entity.CreditCurrencyPoints,
		Type:              entity.CreditTypeExchange,
		AssignedBy:        actor.ID,
		LedgerSuccess:     ledgerSuccess,
		LedgerCustomerID:  customer.ID,
		TotalBalance:      newBalance,
		CreatedAt:         now,
	}
	if _, err := s.historyRepo.Append(ctx, entry); err != nil {
		s.logger.Error("credit history append failed after ledger write",
			slog.String("exchange_request_id", request.ID),
			slog.Int64("amount", input.Amount),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to append credit history")
	}

	s.publish(ctx, &service.NotificationEvent{
		Type:              service.NotificationCreditAssigned,
		ExchangeRequestID: updated.ID,
		OwnerEmail:        updated.OwnerEmail,
		ProductName:       updated.ProductName,
		CreditAmount:      input.Amount,
		TotalPoints:       newBalance,
	})

	return updated, nil
}

// ListCreditHistory returns the audit records for a request.
func (s *exchangeService) ListCreditHistory(ctx context.Context, actor entity.Actor, id string) ([]*entity.CreditHistoryEntry, error) {
	if !actor.IsAdmin {
		return nil, domainerrors.ErrAdminRequired
	}

	entries, err := s.historyRepo.ListByRequest(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list credit history")
	}

	return entries, nil
}

// loadRequest fetches an entity, mapping store not-found onto the domain error.
func (s *exchangeService) loadRequest(ctx context.Context, id string) (*entity.ExchangeRequest, error) {
	request, err := s.exchangeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrExchangeRequestNotFound) {
			return nil, domainerrors.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to load exchange request")
	}

	return request, nil
}

// publish emits a notification intent. Notification delivery is best-effort:
// failures are logged and swallowed, never propagated to the caller.
func (s *exchangeService) publish(ctx context.Context, event *service.NotificationEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := s.publisher.PublishNotificationEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish notification event",
			slog.String("type", event.Type),
			slog.String("exchange_request_id", event.ExchangeRequestID),
			slog.Any("error", err),
		)
	}
}
