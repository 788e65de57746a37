package handlers

import (
	"errors"
	"net/http"
	"time"

	"studiobook/database/repository/booking"
	"studiobook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenTTL = 12 * time.Hour

// AdminHandler encapsulates the staff-facing read views over booking records.
type AdminHandler struct {
	Repo         bookingRepo.BookingRepository
	Email        string
	PasswordHash string
	JWTSecret    []byte
}

// NewAdminHandler creates a new AdminHandler from the configured admin
// credentials.
func NewAdminHandler(repo bookingRepo.BookingRepository, email, passwordHash, jwtSecret string) *AdminHandler {
	return &AdminHandler{
		Repo:         repo,
		Email:        email,
		PasswordHash: passwordHash,
		JWTSecret:    []byte(jwtSecret),
	}
}

// Login verifies the configured admin credentials and issues a session token.
func (ah *AdminHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if input.Email != ah.Email ||
		bcrypt.CompareHashAndPassword([]byte(ah.PasswordHash), []byte(input.Password)) != nil {
		zap.L().Warn("Admin login rejected", zap.String("email", input.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(ah.JWTSecret, "admin", ah.Email, adminTokenTTL)
	if err != nil {
		zap.L().Error("Failed to issue admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ListBookings returns all booking records, newest first.
func (ah *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := ah.Repo.ListAll(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to fetch bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking returns a single booking record by ID. A missing record is a
// distinct 404, not a generic failure.
func (ah *AdminHandler) GetBooking(c *gin.Context) {
	record, err := ah.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, bookingRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	if err != nil {
		zap.L().Error("Failed to fetch booking", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking"})
		return
	}
	c.JSON(http.StatusOK, record)
}
