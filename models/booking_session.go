package models

// Wizard steps, in order. A session only ever moves one step at a time.
const (
	StepPackage  = "package"
	StepDateTime = "datetime"
	StepContact  = "contact"
	StepConfirm  = "confirm"
	StepComplete = "complete"
)

// Bookable time slots.
const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
	SlotEvening   = "evening"
)

// ValidTimeSlot reports whether slot is one of the bookable time slots.
func ValidTimeSlot(slot string) bool {
	return slot == SlotMorning || slot == SlotAfternoon || slot == SlotEvening
}

// BookingDraft accumulates the customer's selections across wizard steps.
// It lives only inside a BookingSession and is discarded when the session
// completes or expires.
type BookingDraft struct {
	Package  *Package `json:"package,omitempty"`
	Date     string   `json:"date,omitempty"`
	TimeSlot string   `json:"timeSlot,omitempty"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Notes    string   `json:"notes"`
}

// BookingSession is the server-held state of one booking wizard run,
// cached between requests.
type BookingSession struct {
	SessionID       string       `json:"sessionId"`
	Step            string       `json:"step"`
	Draft           BookingDraft `json:"draft"`
	PaymentIntentID string       `json:"paymentIntentId,omitempty"`
	BookingID       string       `json:"bookingId,omitempty"`
}
