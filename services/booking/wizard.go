package booking

import (
	"context"
	"time"

	"studiobook/models"
	"studiobook/services/validate"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Start creates a new wizard session at the package step with an empty draft.
func (s *DefaultWizardService) Start(ctx context.Context) (*models.BookingSession, error) {
	session := &models.BookingSession{
		SessionID: uuid.New().String(),
		Step:      models.StepPackage,
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	s.Logger.Info("Booking session started", zap.String("session", session.SessionID))
	return session, nil
}

// Get returns the current state of a wizard session.
func (s *DefaultWizardService) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.Store.Get(ctx, sessionID)
}

// SelectPackage records the chosen package and advances to the date & time
// step. The session must currently be at the package step.
func (s *DefaultWizardService) SelectPackage(ctx context.Context, sessionID, packageID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepPackage {
		return nil, newWizardError(CodeWrongStep, "session is not at the package step")
	}

	pkg := models.FindPackage(packageID)
	if pkg == nil {
		return nil, newWizardError(CodeInvalidInput, "unknown package: "+packageID)
	}

	session.Draft.Package = pkg
	session.Step = models.StepDateTime
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectSchedule records the desired date and time slot and advances to the
// contact step. The date must be today or later.
func (s *DefaultWizardService) SelectSchedule(ctx context.Context, sessionID, date, timeSlot string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepDateTime {
		return nil, newWizardError(CodeWrongStep, "session is not at the date & time step")
	}

	day, err := parseBookingDate(date)
	if err != nil {
		return nil, newWizardError(CodeInvalidInput, "invalid booking date")
	}
	if day.Before(startOfToday()) {
		return nil, newWizardError(CodeInvalidInput, "booking date must not be in the past")
	}
	if !models.ValidTimeSlot(timeSlot) {
		return nil, newWizardError(CodeInvalidInput, "invalid time slot")
	}

	session.Draft.Date = date
	session.Draft.TimeSlot = timeSlot
	session.Step = models.StepContact
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SubmitContact validates the contact form and advances to the confirm step.
// Only the sanitized, normalized values are ever written into the draft.
func (s *DefaultWizardService) SubmitContact(ctx context.Context, sessionID string, info ContactInput) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepContact {
		return nil, newWizardError(CodeWrongStep, "session is not at the contact step")
	}

	if fieldErrs := validate.Contact(info.Name, info.Email, info.Phone); len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	session.Draft.Name = validate.Sanitize(info.Name)
	session.Draft.Email = validate.NormalizeEmail(info.Email)
	session.Draft.Phone = validate.NormalizePhone(info.Phone)
	session.Draft.Notes = validate.Sanitize(info.Notes)
	session.Step = models.StepConfirm
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back moves the session one step backward. Already-entered draft fields are
// kept. The package step has nothing to go back to and the complete step is
// terminal.
func (s *DefaultWizardService) Back(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var prev string
	switch session.Step {
	case models.StepDateTime:
		prev = models.StepPackage
	case models.StepContact:
		prev = models.StepDateTime
	case models.StepConfirm:
		prev = models.StepContact
	default:
		return nil, newWizardError(CodeWrongStep, "cannot go back from this step")
	}

	session.Step = prev
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func parseBookingDate(date string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, date); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", date)
}

func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
