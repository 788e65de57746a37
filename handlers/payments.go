package handlers

import (
	"net/http"

	"studiobook/models"
	"studiobook/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes the public payment intent endpoint.
type PaymentHandler struct {
	Payments *payment.Service
	Logger   *zap.Logger
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(payments *payment.Service, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		Payments: payments,
		Logger:   logger,
	}
}

// CreatePaymentIntent creates a deposit payment intent for half the given
// amount. The amount is the full package price in pounds; the deposit is
// computed server-side.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var input struct {
		Amount         int                   `json:"amount" binding:"required,gt=0"`
		BookingDetails models.BookingDetails `json:"bookingDetails"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Payments.CreateIntent(input.Amount, input.BookingDetails)
	if err != nil {
		h.Logger.Error("Payment intent creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": result.ClientSecret})
}
