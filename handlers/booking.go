package handlers

import (
	"errors"
	"net/http"

	"studiobook/services/booking"
	"studiobook/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking wizard over HTTP.
type BookingHandler struct {
	Wizard booking.WizardService
	Logger *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(wizard booking.WizardService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		Wizard: wizard,
		Logger: logger,
	}
}

// StartSession creates a new wizard session at the package step.
func (h *BookingHandler) StartSession(c *gin.Context) {
	session, err := h.Wizard.Start(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GetSession returns the current state of a wizard session.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Wizard.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectPackage records the chosen package for the session.
func (h *BookingHandler) SelectPackage(c *gin.Context) {
	var input struct {
		PackageID string `json:"packageId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Wizard.SelectPackage(c.Request.Context(), c.Param("sessionID"), input.PackageID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectSchedule records the desired date and time slot.
func (h *BookingHandler) SelectSchedule(c *gin.Context) {
	var input struct {
		Date     string `json:"date" binding:"required"`
		TimeSlot string `json:"timeSlot" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Wizard.SelectSchedule(c.Request.Context(), c.Param("sessionID"), input.Date, input.TimeSlot)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitContact validates and records the customer's contact details.
func (h *BookingHandler) SubmitContact(c *gin.Context) {
	var input booking.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Wizard.SubmitContact(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Back moves the session one step backward without clearing draft fields.
func (h *BookingHandler) Back(c *gin.Context) {
	session, err := h.Wizard.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// CreateSessionIntent issues (or reuses) the deposit payment handle for the
// session's confirm step.
func (h *BookingHandler) CreateSessionIntent(c *gin.Context) {
	result, err := h.Wizard.CreateIntent(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": result.ClientSecret})
}

// ConfirmSession verifies the confirmed payment and persists the booking.
func (h *BookingHandler) ConfirmSession(c *gin.Context) {
	var input struct {
		PaymentIntentID string `json:"paymentIntentId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	record, err := h.Wizard.Confirm(c.Request.Context(), c.Param("sessionID"), input.PaymentIntentID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": record})
}

// writeError maps service errors onto HTTP responses.
func (h *BookingHandler) writeError(c *gin.Context, err error) {
	var wizErr *booking.WizardError
	if errors.As(err, &wizErr) {
		switch wizErr.Code {
		case booking.CodeSessionNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": wizErr.Message})
		case booking.CodeInvalidInput:
			c.JSON(http.StatusBadRequest, gin.H{"error": wizErr.Message})
		case booking.CodeWrongStep, booking.CodeConfirmInFlight:
			c.JSON(http.StatusConflict, gin.H{"error": wizErr.Message})
		case booking.CodeNotSaved:
			c.JSON(http.StatusInternalServerError, gin.H{"error": wizErr.Message})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": wizErr.Message})
		}
		return
	}

	var valErr *booking.ValidationError
	if errors.As(err, &valErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": valErr.Fields})
		return
	}

	var payErr *payment.Error
	if errors.As(err, &payErr) {
		c.JSON(http.StatusPaymentRequired, gin.H{"error": payErr.Message})
		return
	}

	h.Logger.Error("Booking request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
}
