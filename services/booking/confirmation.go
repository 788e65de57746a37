package booking

import (
	"context"

	"studiobook/models"
	"studiobook/services/payment"
	"studiobook/services/validate"

	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// CreateIntent issues the payment handle for the session's deposit. It may
// only be called at the confirm step. If the session already holds a handle
// that is still confirmable, that handle is reused; a cancelled or expired
// one is replaced.
func (s *DefaultWizardService) CreateIntent(ctx context.Context, sessionID string) (*models.PaymentIntentResult, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepConfirm {
		return nil, newWizardError(CodeWrongStep, "session is not at the confirm step")
	}
	if err := verifyDraftComplete(&session.Draft); err != nil {
		return nil, err
	}

	if session.PaymentIntentID != "" {
		pi, err := s.Payments.Retrieve(session.PaymentIntentID)
		if err == nil && payment.Reusable(pi.Status) {
			return &models.PaymentIntentResult{
				IntentID:     pi.ID,
				ClientSecret: pi.ClientSecret,
				DepositPence: pi.Amount,
			}, nil
		}
		if err != nil {
			s.Logger.Warn("Failed to retrieve existing payment intent, issuing a new one",
				zap.String("session", sessionID), zap.Error(err))
		}
	}

	result, err := s.Payments.CreateIntent(session.Draft.Package.Price, models.BookingDetails{
		Package:       session.Draft.Package.Name,
		Date:          session.Draft.Date,
		TimeSlot:      session.Draft.TimeSlot,
		CustomerName:  session.Draft.Name,
		CustomerEmail: session.Draft.Email,
	})
	if err != nil {
		return nil, err
	}

	session.PaymentIntentID = result.IntentID
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return result, nil
}

// Confirm turns a paid-for draft into a persisted booking record, exactly
// once. It verifies the payment intent reached a terminal succeeded status
// before writing anything; a persistence failure after a successful payment
// is surfaced as ErrBookingNotSaved and never retried automatically.
func (s *DefaultWizardService) Confirm(ctx context.Context, sessionID, paymentIntentID string) (*models.Booking, error) {
	ok, err := s.Store.AcquireConfirmLock(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrConfirmInFlight
	}
	defer func() {
		if err := s.Store.ReleaseConfirmLock(ctx, sessionID); err != nil {
			s.Logger.Warn("Failed to release confirm lock", zap.String("session", sessionID), zap.Error(err))
		}
	}()

	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepConfirm {
		return nil, newWizardError(CodeWrongStep, "session is not at the confirm step")
	}
	if err := verifyDraftComplete(&session.Draft); err != nil {
		return nil, err
	}

	if paymentIntentID == "" {
		paymentIntentID = session.PaymentIntentID
	}
	if paymentIntentID == "" {
		return nil, newWizardError(CodeInvalidInput, "missing payment intent reference")
	}
	// A session that issued its own handle only ever confirms that handle.
	if session.PaymentIntentID != "" && paymentIntentID != session.PaymentIntentID {
		s.Logger.Warn("Confirm attempted with a foreign payment intent",
			zap.String("session", sessionID),
			zap.String("intent", paymentIntentID))
		return nil, newWizardError(CodeInvalidInput, "payment reference does not belong to this session")
	}

	pi, err := s.Payments.VerifyConfirmed(paymentIntentID)
	if err != nil {
		return nil, err
	}

	// Succeeded is not enough: the charge must be this booking's deposit.
	deposit := payment.DepositPence(session.Draft.Package.Price)
	if pi.Amount != deposit || pi.Currency != stripe.CurrencyGBP {
		s.Logger.Warn("Confirm attempted with a mismatched payment amount",
			zap.String("session", sessionID),
			zap.String("intent", pi.ID),
			zap.Int64("paidPence", pi.Amount),
			zap.Int64("depositPence", deposit),
			zap.String("currency", string(pi.Currency)))
		return nil, newWizardError(CodeInvalidInput, "payment does not match the booking deposit")
	}

	record := models.Booking{
		Name:            session.Draft.Name,
		Email:           session.Draft.Email,
		Phone:           session.Draft.Phone,
		Notes:           session.Draft.Notes,
		Package:         *session.Draft.Package,
		Date:            session.Draft.Date,
		TimeSlot:        session.Draft.TimeSlot,
		PaymentIntentID: pi.ID,
		PaymentStatus:   models.PaymentCompleted,
	}

	bookingID, err := s.Repo.Create(ctx, record)
	if err != nil {
		s.Logger.Error("Booking write failed after successful payment",
			zap.String("session", sessionID),
			zap.String("intent", pi.ID),
			zap.Error(err))
		return nil, ErrBookingNotSaved
	}

	record.ID = bookingID
	record.Status = models.StatusConfirmed

	session.Step = models.StepComplete
	session.BookingID = bookingID
	if err := s.Store.Save(ctx, session); err != nil {
		// The record is already durable; the session will simply expire.
		s.Logger.Warn("Failed to mark session complete", zap.String("session", sessionID), zap.Error(err))
	}

	if s.Tasks != nil {
		if err := s.Tasks.EnqueueBookingEmails(record); err != nil {
			s.Logger.Warn("Failed to enqueue booking emails", zap.String("booking", bookingID), zap.Error(err))
		}
	}

	s.Logger.Info("Booking confirmed",
		zap.String("booking", bookingID),
		zap.String("intent", pi.ID),
		zap.String("package", record.Package.ID))
	return &record, nil
}

// verifyDraftComplete re-checks every forward guard, independent of how the
// confirm step was reached.
func verifyDraftComplete(draft *models.BookingDraft) error {
	if draft.Package == nil {
		return newWizardError(CodeWrongStep, "no package selected")
	}
	if draft.Date == "" || draft.TimeSlot == "" {
		return newWizardError(CodeWrongStep, "no date or time slot selected")
	}
	if fieldErrs := validate.Contact(draft.Name, draft.Email, draft.Phone); len(fieldErrs) > 0 {
		return &ValidationError{Fields: fieldErrs}
	}
	return nil
}
