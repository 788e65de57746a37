package handlers

import (
	"net/http"

	"studiobook/database/repository/booking"
	"studiobook/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateBookingHandler exposes the direct booking persistence endpoint. The
// fields are trusted as already validated by the client; only presence is
// checked here. Status and creation time are set server-side regardless of
// the request body.
type CreateBookingHandler struct {
	Repo   bookingRepo.BookingRepository
	Logger *zap.Logger
}

// NewCreateBookingHandler creates a new CreateBookingHandler.
func NewCreateBookingHandler(repo bookingRepo.BookingRepository, logger *zap.Logger) *CreateBookingHandler {
	return &CreateBookingHandler{
		Repo:   repo,
		Logger: logger,
	}
}

// CreateBooking appends one booking record and returns its generated ID.
func (h *CreateBookingHandler) CreateBooking(c *gin.Context) {
	var input struct {
		Name            string         `json:"name" binding:"required"`
		Email           string         `json:"email" binding:"required"`
		Phone           string         `json:"phone" binding:"required"`
		Notes           string         `json:"notes"`
		Package         models.Package `json:"package" binding:"required"`
		Date            string         `json:"date" binding:"required"`
		TimeSlot        string         `json:"timeSlot" binding:"required"`
		PaymentIntentID string         `json:"paymentIntentId"`
		PaymentStatus   string         `json:"paymentStatus"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	paymentStatus := input.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = models.PaymentCompleted
	}

	bookingID, err := h.Repo.Create(c.Request.Context(), models.Booking{
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		Notes:           input.Notes,
		Package:         input.Package,
		Date:            input.Date,
		TimeSlot:        input.TimeSlot,
		PaymentIntentID: input.PaymentIntentID,
		PaymentStatus:   paymentStatus,
	})
	if err != nil {
		h.Logger.Error("Booking creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "bookingId": bookingID})
}
