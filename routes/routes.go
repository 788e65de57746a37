package routes

import (
	"net/http"
	"time"

	"studiobook/handlers"
	"studiobook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the handlers the route registrars wire up.
type HandlerBundle struct {
	Booking       *handlers.BookingHandler
	Payments      *handlers.PaymentHandler
	CreateBooking *handlers.CreateBookingHandler
	Admin         *handlers.AdminHandler
	JWTSecret     []byte
}

// RegisterBookingRoutes sets up the endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.Booking.StartSession)
		bookingGroup.GET("/session/:sessionID", hb.Booking.GetSession)
		bookingGroup.PUT("/session/:sessionID/package", hb.Booking.SelectPackage)
		bookingGroup.PUT("/session/:sessionID/schedule", hb.Booking.SelectSchedule)
		bookingGroup.PUT("/session/:sessionID/contact", hb.Booking.SubmitContact)
		bookingGroup.POST("/session/:sessionID/back", hb.Booking.Back)
		bookingGroup.POST("/session/:sessionID/payment-intent", hb.Booking.CreateSessionIntent)
		bookingGroup.POST("/session/:sessionID/confirm", hb.Booking.ConfirmSession)
	}
}

// RegisterPublicRoutes registers the package catalog and the two direct
// server operations used by the site.
func RegisterPublicRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/packages", handlers.ListPackages)
		api.POST("/payments/intent", hb.Payments.CreatePaymentIntent)
		api.POST("/bookings", hb.CreateBooking.CreateBooking)
	}
}

// RegisterAdminRoutes sets up endpoints for staff booking review.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.Admin.Login)

		protected := adminGroup.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware(hb.JWTSecret))
		protected.GET("/bookings", hb.Admin.ListBookings)
		protected.GET("/bookings/:id", hb.Admin.GetBooking)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPublicRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
