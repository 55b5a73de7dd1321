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

// WarehouseHandlerParams holds dependencies for WarehouseHandler, injected by Fx.
type WarehouseHandlerParams struct {
	fx.In

	WarehouseUC usecase.WarehouseUsecase
	Logger      *slog.Logger
}

// WarehouseHandler serves the admin warehouse directory endpoints.
type WarehouseHandler struct {
	warehouseUC usecase.WarehouseUsecase
	logger      *slog.Logger
}

// NewWarehouseHandler is the constructor for WarehouseHandler.
func NewWarehouseHandler(params WarehouseHandlerParams) *WarehouseHandler {
	return &WarehouseHandler{
		warehouseUC: params.WarehouseUC,
		logger:      params.Logger,
	}
}

// CreateWarehouse handles POST /admin/warehouses
func (h *WarehouseHandler) CreateWarehouse(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	var req usecase.WarehouseInput
	if err := bindStrict(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	created, err := h.warehouseUC.CreateWarehouse(c.Request().Context(), actor, &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, created, "Warehouse created")
}

// ListWarehouses handles GET /admin/warehouses
func (h *WarehouseHandler) ListWarehouses(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	warehouses, err := h.warehouseUC.ListWarehouses(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, warehouses, "")
}

// GetWarehouse handles GET /admin/warehouses/:id
func (h *WarehouseHandler) GetWarehouse(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	warehouse, err := h.warehouseUC.GetWarehouse(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, warehouse, "")
}

// UpdateWarehouse handles PUT /admin/warehouses/:id
func (h *WarehouseHandler) UpdateWarehouse(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	var req usecase.WarehouseInput
	if err := bindStrict(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	updated, err := h.warehouseUC.UpdateWarehouse(c.Request().Context(), actor, c.Param("id"), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, updated, "Warehouse updated")
}

// DeleteWarehouse handles DELETE /admin/warehouses/:id
func (h *WarehouseHandler) DeleteWarehouse(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid actor in token")
	}

	if err := h.warehouseUC.DeleteWarehouse(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Warehouse deleted")
}
