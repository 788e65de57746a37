package booking

import (
	"context"

	"studiobook/database/repository/booking"
	"studiobook/models"

	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// WizardService drives the four-step booking wizard: package, date & time,
// contact info, then confirm & pay.
type WizardService interface {
	Start(ctx context.Context) (*models.BookingSession, error)
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	SelectPackage(ctx context.Context, sessionID, packageID string) (*models.BookingSession, error)
	SelectSchedule(ctx context.Context, sessionID, date, timeSlot string) (*models.BookingSession, error)
	SubmitContact(ctx context.Context, sessionID string, info ContactInput) (*models.BookingSession, error)
	Back(ctx context.Context, sessionID string) (*models.BookingSession, error)
	CreateIntent(ctx context.Context, sessionID string) (*models.PaymentIntentResult, error)
	Confirm(ctx context.Context, sessionID, paymentIntentID string) (*models.Booking, error)
}

// ContactInput is the raw contact form submission for the third step.
type ContactInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// PaymentGateway is the slice of the payment service the wizard depends on.
type PaymentGateway interface {
	CreateIntent(amount int, details models.BookingDetails) (*models.PaymentIntentResult, error)
	Retrieve(intentID string) (*stripe.PaymentIntent, error)
	VerifyConfirmed(intentID string) (*stripe.PaymentIntent, error)
}

// TaskQueue enqueues post-booking email tasks. Enqueue failures must never
// affect the booking itself.
type TaskQueue interface {
	EnqueueBookingEmails(booking models.Booking) error
}

// DefaultWizardService is the production WizardService.
type DefaultWizardService struct {
	Store    SessionStore
	Payments PaymentGateway
	Repo     bookingRepo.BookingRepository
	Tasks    TaskQueue
	Logger   *zap.Logger
}
