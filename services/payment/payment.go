// Package payment wraps the Stripe PaymentIntents API for taking 50%
// deposits on studio bookings.
package payment

import (
	"fmt"
	"math"
	"strconv"

	"studiobook/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// IntentsAPI is the slice of the Stripe PaymentIntents API this service uses.
type IntentsAPI interface {
	Create(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	Get(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type stripeIntents struct{}

func (stripeIntents) Create(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	return paymentintent.New(params)
}

func (stripeIntents) Get(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	return paymentintent.Get(id, params)
}

// Service creates and verifies deposit payment intents.
type Service struct {
	Intents IntentsAPI
	Logger  *zap.Logger
}

// NewService returns a Service backed by the live Stripe API.
func NewService(logger *zap.Logger) *Service {
	return &Service{
		Intents: stripeIntents{},
		Logger:  logger,
	}
}

// DepositPence converts a full package price in pounds into the 50% deposit
// in pence.
func DepositPence(price int) int64 {
	return int64(math.Round(float64(price) / 2 * 100))
}

// CreateIntent creates a payment intent for half the given amount, attaching
// the booking details as metadata for auditability.
func (s *Service) CreateIntent(amount int, details models.BookingDetails) (*models.PaymentIntentResult, error) {
	deposit := DepositPence(amount)

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(deposit),
		Currency: stripe.String(string(stripe.CurrencyGBP)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("package", details.Package)
	params.AddMetadata("date", details.Date)
	params.AddMetadata("timeSlot", details.TimeSlot)
	params.AddMetadata("fullAmount", strconv.Itoa(amount))
	params.AddMetadata("depositAmount", strconv.FormatFloat(float64(amount)/2, 'f', -1, 64))

	pi, err := s.Intents.Create(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	s.Logger.Info("Payment intent created",
		zap.String("intent", pi.ID),
		zap.Int64("depositPence", deposit),
		zap.String("package", details.Package))

	return &models.PaymentIntentResult{
		IntentID:     pi.ID,
		ClientSecret: pi.ClientSecret,
		DepositPence: deposit,
	}, nil
}

// Retrieve fetches the current provider-side state of an intent.
func (s *Service) Retrieve(intentID string) (*stripe.PaymentIntent, error) {
	pi, err := s.Intents.Get(intentID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payment intent: %w", err)
	}
	return pi, nil
}

// Reusable reports whether an existing intent can still be confirmed
// client-side, so a retry does not need a fresh handle.
func Reusable(status stripe.PaymentIntentStatus) bool {
	switch status {
	case stripe.PaymentIntentStatusRequiresPaymentMethod,
		stripe.PaymentIntentStatusRequiresConfirmation,
		stripe.PaymentIntentStatusRequiresAction:
		return true
	}
	return false
}

// VerifyConfirmed retrieves the intent from the provider and requires a
// terminal succeeded status. A definitive provider failure comes back as a
// *Error with the provider's message; any other non-terminal status is a
// generic retryable failure.
func (s *Service) VerifyConfirmed(intentID string) (*stripe.PaymentIntent, error) {
	pi, err := s.Intents.Get(intentID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payment intent: %w", err)
	}

	switch {
	case pi.Status == stripe.PaymentIntentStatusSucceeded:
		return pi, nil
	case pi.Status == stripe.PaymentIntentStatusCanceled:
		return nil, NewProviderError(providerMessage(pi, "Payment was cancelled."))
	case pi.LastPaymentError != nil:
		return nil, NewProviderError(providerMessage(pi, "Payment failed."))
	default:
		return nil, NewIncompleteError("Payment was not successful. Please try again.")
	}
}

func providerMessage(pi *stripe.PaymentIntent, fallback string) string {
	if pi.LastPaymentError != nil && pi.LastPaymentError.Msg != "" {
		return pi.LastPaymentError.Msg
	}
	return fallback
}
