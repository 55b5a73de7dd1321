package handler

import (
	"log/slog"
	"net/http"

	"tradein/internal/delivery/http/middleware"
	"tradein/internal/delivery/http/response"
	"tradein/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ExchangeHandlerParams holds dependencies for ExchangeHandler, injected by Fx.
type ExchangeHandlerParams struct {
	fx.In

	ExchangeUC usecase.ExchangeUsecase
	Logger     *slog.Logger
}

// ExchangeHandler serves the owner-facing exchange request endpoints.
type ExchangeHandler struct {
	exchangeUC usecase.ExchangeUsecase
	logger     *slog.Logger
}

// NewExchangeHandler is the constructor for ExchangeHandler.
func NewExchangeHandler(params ExchangeHandlerParams) *ExchangeHandler {
	return &ExchangeHandler{
		exchangeUC: params.ExchangeUC,
		logger:     params.Logger,
	}
}

// CreateRequest handles POST /exchange-requests
func (h *ExchangeHandler) CreateRequest(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	var req usecase.CreateRequestInput
	if err := bindStrict(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	created, err := h.exchangeUC.CreateRequest(c.Request().Context(), actor, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, created, "Exchange request created")
}

// ListOwnRequests handles GET /exchange-requests
func (h *ExchangeHandler) ListOwnRequests(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	requests, err := h.exchangeUC.ListOwnRequests(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// GetRequest handles GET /exchange-requests/:id
func (h *ExchangeHandler) GetRequest(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	request, err := h.exchangeUC.GetRequest(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, request, "")
}

// UpdateRequest handles PATCH /exchange-requests/:id
func (h *ExchangeHandler) UpdateRequest(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	var req usecase.UpdateRequestInput
	if err := bindStrict(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	updated, err := h.exchangeUC.UpdateRequest(c.Request().Context(), actor, c.Param("id"), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, updated, "Exchange request updated")
}

// CancelRequest handles DELETE /exchange-requests/:id
func (h *ExchangeHandler) CancelRequest(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	if err := h.exchangeUC.CancelRequest(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Exchange request cancelled")
}

// SubmitShipping handles POST /exchange-requests/:id/shipping
func (h *ExchangeHandler) SubmitShipping(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	var req usecase.SubmitShippingInput
	if err := bindStrict(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	updated, err := h.exchangeUC.SubmitShipping(c.Request().Context(), actor, c.Param("id"), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, updated, "Shipping details submitted")
}
