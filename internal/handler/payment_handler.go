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

// PaymentHandler serves the /api/payments resource
type PaymentHandler struct {
	service *service.PaymentService
}

// NewPaymentHandler creates a payment handler backed by the given service
func NewPaymentHandler(svc *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: svc}
}

// List handles GET /api/payments
func (h *PaymentHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("payment", "list")

	payments, err := h.service.List(c.Request().Context())
	if err != nil {
		log.Error("Failed to list payments", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve payments",
		})
	}

	log.Info("Payments retrieved successfully", zap.Int("count", len(payments)))
	return c.JSON(http.StatusOK, payments)
}

// Get handles GET /api/payments/:id
func (h *PaymentHandler) Get(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("payment", "get")

	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid payment id",
		})
	}

	payment, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		log.Error("Failed to get payment", zap.Uint("payment_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to retrieve payment",
		})
	}
	if payment == nil {
		log.Warn("Payment not found", zap.Uint("payment_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Payment not found",
		})
	}

	return c.JSON(http.StatusOK, payment)
}

// Create handles POST /api/payments
func (h *PaymentHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("payment", "create")

	var edit dto.PaymentForEditDto
	if err := c.Bind(&edit); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	created, err := h.service.Create(c.Request().Context(), edit)
	if err != nil {
		log.Error("Failed to create payment",
			zap.Uint("lease_id", edit.LeaseID),
			zap.Float64("amount", edit.Amount),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to create payment",
		})
	}

	log.Info("Payment created successfully",
		zap.Uint("payment_id", created.ID),
		zap.Uint("lease_id", created.LeaseID),
		zap.Float64("amount", created.Amount))
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/payments/%d", created.ID))
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/payments/:id
func (h *PaymentHandler) Update(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("payment", "update")

	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid payment id",
		})
	}

	var edit dto.PaymentForEditDto
	if err := c.Bind(&edit); err != nil {
		log.Error("Invalid request data", zap.Uint("payment_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	updated, err := h.service.Update(c.Request().Context(), id, edit)
	if errors.Is(err, service.ErrNotFound) {
		log.Warn("Payment not found for update", zap.Uint("payment_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Payment not found",
		})
	}
	if err != nil {
		log.Error("Failed to update payment", zap.Uint("payment_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to update payment",
		})
	}

	log.Info("Payment updated successfully", zap.Uint("payment_id", id))
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/payments/:id
func (h *PaymentHandler) Delete(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("payment", "delete")

	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid payment id",
		})
	}

	err = h.service.Delete(c.Request().Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		log.Warn("Payment not found for deletion", zap.Uint("payment_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Payment not found",
		})
	}
	if err != nil {
		log.Error("Failed to delete payment", zap.Uint("payment_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to delete payment",
		})
	}

	log.Info("Payment deleted successfully", zap.Uint("payment_id", id))
	return c.NoContent(http.StatusNoContent)
}
