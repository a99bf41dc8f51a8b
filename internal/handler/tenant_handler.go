package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Pearlman11/RentReady/internal/dto"
	"github.com/Pearlman11/RentReady/internal/service"
	"github.com/Pearlman11/RentReady/pkg/logger"
	"github.com/Pearlman11/RentReady/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// TenantHandler serves the /api/tenants resource
type TenantHandler struct {
	service *service.TenantService
}

// NewTenantHandler creates a tenant handler backed by the given service
func NewTenantHandler(svc *service.TenantService) *TenantHandler {
	return &TenantHandler{service: svc}
}

// List handles GET /api/tenants
func (h *TenantHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("tenant", "list")

	tenants, err := h.service.List(c.Request().Context())
	if err != nil {
		log.Error("Failed to list tenants", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve tenants",
		})
	}

	log.Info("Tenants retrieved successfully", zap.Int("count", len(tenants)))
	return c.JSON(http.StatusOK, tenants)
}

// Get handles GET /api/tenants/:id
func (h *TenantHandler) Get(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("tenant", "get")

	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid tenant id",
		})
	}

	tenant, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		log.Error("Failed to get tenant", zap.Uint("tenant_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve tenant",
		})
	}
	if tenant == nil {
		log.Warn("Tenant not found", zap.Uint("tenant_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Tenant not found",
		})
	}

	return c.JSON(http.StatusOK, tenant)
}

// Create handles POST /api/tenants
func (h *TenantHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("tenant", "create")

	var edit dto.TenantForEditDto
	if err := c.Bind(&edit); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	created, err := h.service.Create(c.Request().Context(), edit)
	if err != nil {
		log.Error("Failed to create tenant",
			zap.String("name", edit.Name),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create tenant",
		})
	}

	log.Info("Tenant created successfully",
		zap.Uint("tenant_id", created.ID),
		zap.String("name", created.Name))
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/tenants/%d", created.ID))
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/tenants/:id
func (h *TenantHandler) Update(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("tenant", "update")

	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid tenant id",
		})
	}

	var edit dto.TenantForEditDto
	if err := c.Bind(&edit); err != nil {
		log.Error("Invalid request data", zap.Uint("tenant_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	updated, err := h.service.Update(c.Request().Context(), id, edit)
	if errors.Is(err, service.ErrNotFound) {
		log.Warn("Tenant not found for update", zap.Uint("tenant_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Tenant not found",
		})
	}
	if err != nil {
		log.Error("Failed to update tenant", zap.Uint("tenant_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update tenant",
		})
	}

	log.Info("Tenant updated successfully", zap.Uint("tenant_id", id))
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/tenants/:id
func (h *TenantHandler) Delete(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("tenant", "delete")

	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid tenant id",
		})
	}

	err = h.service.Delete(c.Request().Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		log.Warn("Tenant not found for deletion", zap.Uint("tenant_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Tenant not found",
		})
	}
	if err != nil {
		log.Error("Failed to delete tenant", zap.Uint("tenant_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete tenant",
		})
	}

	log.Info("Tenant deleted successfully", zap.Uint("tenant_id", id))
	return c.NoContent(http.StatusNoContent)
}
