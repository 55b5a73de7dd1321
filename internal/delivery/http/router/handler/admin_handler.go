package handler

import (
	"log/slog"
	"net/http"

	"tradein/internal/delivery/http/middleware"
	"tradein/internal/delivery/http/response"
	"tradein/internal/domain/entity"
	"tradein/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	ExchangeUC usecase.ExchangeUsecase
	Logger     *slog.Logger
}

// AdminHandler serves the admin-facing lifecycle endpoints.
type AdminHandler struct {
	exchangeUC usecase.ExchangeUsecase
	logger     *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		exchangeUC: params.ExchangeUC,
		logger:     params.Logger,
	}
}

// ListAllRequests handles GET /admin/exchange-requests?status=
func (h *AdminHandler) ListAllRequests(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	var statusFilter *entity.Status
	if raw := c.QueryParam("status"); raw != "" {
		status, valid := entity.ParseStatus(raw)
		if !valid {
			return response.BadRequest(c, "UNKNOWN_STATUS", "Unsupported status filter: "+raw)
		}
		statusFilter = &status
	}

	requests, err := h.exchangeUC.ListAllRequests(c.Request().Context(), actor, statusFilter)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// SetStatus handles PUT /admin/exchange-requests/:id/status
func (h *AdminHandler) SetStatus(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	var req usecase.SetStatusInput
	if err := bindStrict(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	updated, err := h.exchangeUC.SetStatus(c.Request().Context(), actor, c.Param("id"), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, updated, "Status updated")
}

// SetTransitStatus handles PUT /admin/exchange-requests/:id/transit
func (h *AdminHandler) SetTransitStatus(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	var req usecase.SetTransitInput
	if err := bindStrict(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	updated, err := h.exchangeUC.SetTransitStatus(c.Request().Context(), actor, c.Param("id"), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, updated, "Transit status updated")
}

// AssignCredit handles POST /admin/exchange-requests/:id/credit
func (h *AdminHandler) AssignCredit(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	var req usecase.AssignCreditInput
	if err := bindStrict(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	updated, err := h.exchangeUC.AssignCredit(c.Request().Context(), actor, c.Param("id"), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, updated, "Credit assigned")
}

// ListCreditHistory handles GET /admin/exchange-requests/:id/credit-history
func (h *AdminHandler) ListCreditHistory(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	entries, err := h.exchangeUC.ListCreditHistory(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, entries, "")
}
