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

// LeaseHandler serves the /api/leases resource
type LeaseHandler struct {
	service *service.LeaseService
}

// NewLeaseHandler creates a lease handler backed by the given service
func NewLeaseHandler(svc *service.LeaseService) *LeaseHandler {
	return &LeaseHandler{service: svc}
}

// List handles GET /api/leases
func (h *LeaseHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("lease", "list")

	leases, err := h.service.List(c.Request().Context())
	if err != nil {
		log.Error("Failed to list leases", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve leases",
		})
	}

	log.Info("Leases retrieved successfully", zap.Int("count", len(leases)))
	return c.JSON(http.StatusOK, leases)
}

// Get handles GET /api/leases/:id
func (h *LeaseHandler) Get(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("lease", "get")

	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid lease id",
		})
	}

	lease, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		log.Error("Failed to get lease", zap.Uint("lease_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve lease",
		})
	}
	if lease == nil {
		log.Warn("Lease not found", zap.Uint("lease_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Lease not found",
		})
	}

	return c.JSON(http.StatusOK, lease)
}

// Create handles POST /api/leases
func (h *LeaseHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("lease", "create")

	var edit dto.LeaseForEditDto
	if err := c.Bind(&edit); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	created, err := h.service.Create(c.Request().Context(), edit)
	if err != nil {
		log.Error("Failed to create lease",
			zap.Uint("property_id", edit.PropertyID),
			zap.Uint("tenant_id", edit.TenantID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create lease",
		})
	}

	log.Info("Lease created successfully",
		zap.Uint("lease_id", created.ID),
		zap.Uint("property_id", created.PropertyID),
		zap.Uint("tenant_id", created.TenantID))
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/leases/%d", created.ID))
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/leases/:id
func (h *LeaseHandler) Update(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("lease", "update")

	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid lease id",
		})
	}

	var edit dto.LeaseForEditDto
	if err := c.Bind(&edit); err != nil {
		log.Error("Invalid request data", zap.Uint("lease_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	updated, err := h.service.Update(c.Request().Context(), id, edit)
	if errors.Is(err, service.ErrNotFound) {
		log.Warn("Lease not found for update", zap.Uint("lease_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Lease not found",
		})
	}
	if err != nil {
		log.Error("Failed to update lease", zap.Uint("lease_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update lease",
		})
	}

	log.Info("Lease updated successfully", zap.Uint("lease_id", id))
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/leases/:id
func (h *LeaseHandler) Delete(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("lease", "delete")

	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid lease id",
		})
	}

	err = h.service.Delete(c.Request().Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		log.Warn("Lease not found for deletion", zap.Uint("lease_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Lease not found",
		})
	}
	if err != nil {
		log.Error("Failed to delete lease", zap.Uint("lease_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete lease",
		})
	}

	log.Info("Lease deleted successfully", zap.Uint("lease_id", id))
	return c.NoContent(http.StatusNoContent)
}
