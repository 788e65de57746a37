package booking

import "fmt"

// WizardError is a recoverable wizard failure. The code tells handlers which
// HTTP status to map it to; the message is safe to show the customer.
type WizardError struct {
	Code    string
	Message string
}

func (e *WizardError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	CodeSessionNotFound = "sessionNotFound"
	CodeWrongStep       = "wrongStep"
	CodeInvalidInput    = "invalidInput"
	CodeConfirmInFlight = "confirmInFlight"
	CodeNotSaved        = "bookingNotSaved"
)

func newWizardError(code, msg string) error {
	return &WizardError{Code: code, Message: msg}
}

// ErrSessionNotFound is returned when a wizard session does not exist or has
// expired.
var ErrSessionNotFound = newWizardError(CodeSessionNotFound, "booking session not found or expired")

// ErrConfirmInFlight is returned when a confirm attempt is already running
// for the session.
var ErrConfirmInFlight = newWizardError(CodeConfirmInFlight, "a payment confirmation is already in progress")

// ErrBookingNotSaved is the one failure a retry cannot fix: the deposit was
// taken but the booking record could not be written.
var ErrBookingNotSaved = newWizardError(CodeNotSaved, "Payment successful but failed to save booking. Please contact support.")

// ValidationError carries per-field messages from the contact step so the
// client can show them inline.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("contact validation failed: %v", e.Fields)
}
