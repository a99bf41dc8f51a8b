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

// PropertyHandler serves the /api/properties resource
type PropertyHandler struct {
	service *service.PropertyService
}

// NewPropertyHandler creates a property handler backed by the given service
func NewPropertyHandler(svc *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: svc}
}

// List handles GET /api/properties
func (h *PropertyHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("property", "list")

	properties, err := h.service.List(c.Request().Context())
	if err != nil {
		log.Error("Failed to list properties", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve properties",
		})
	}

	log.Info("Properties retrieved successfully", zap.Int("count", len(properties)))
	return c.JSON(http.StatusOK, properties)
}

// Get handles GET /api/properties/:id
func (h *PropertyHandler) Get(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("property", "get")

	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid property id",
		})
	}

	property, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		log.Error("Failed to get property", zap.Uint("property_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve property",
		})
	}
	if property == nil {
		log.Warn("Property not found", zap.Uint("property_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Property not found",
		})
	}

	return c.JSON(http.StatusOK, property)
}

// Create handles POST /api/properties
func (h *PropertyHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("property", "create")

	var edit dto.PropertyForEditDto
	if err := c.Bind(&edit); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	created, err := h.service.Create(c.Request().Context(), edit)
	if err != nil {
		log.Error("Failed to create property",
			zap.String("address", edit.Address),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create property",
		})
	}

	log.Info("Property created successfully",
		zap.Uint("property_id", created.ID),
		zap.String("address", created.Address))
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/properties/%d", created.ID))
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/properties/:id
func (h *PropertyHandler) Update(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("property", "update")

	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid property id",
		})
	}

	var edit dto.PropertyForEditDto
	if err := c.Bind(&edit); err != nil {
		log.Error("Invalid request data", zap.Uint("property_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	updated, err := h.service.Update(c.Request().Context(), id, edit)
	if errors.Is(err, service.ErrNotFound) {
		log.Warn("Property not found for update", zap.Uint("property_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Property not found",
		})
	}
	if err != nil {
		log.Error("Failed to update property", zap.Uint("property_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update property",
		})
	}

	log.Info("Property updated successfully", zap.Uint("property_id", id))
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/properties/:id
func (h *PropertyHandler) Delete(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("property", "delete")

	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid property id",
		})
	}

	err = h.service.Delete(c.Request().Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		log.Warn("Property not found for deletion", zap.Uint("property_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Property not found",
		})
	}
	if err != nil {
		log.Error("Failed to delete property", zap.Uint("property_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete property",
		})
	}

	log.Info("Property deleted successfully", zap.Uint("property_id", id))
	return c.NoContent(http.StatusNoContent)
}
