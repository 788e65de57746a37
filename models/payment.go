package models

// BookingDetails is the metadata attached to a payment intent so the charge
// can be audited against the booking it was taken for.
type BookingDetails struct {
	Package       string `json:"package"`
	Date          string `json:"date"`
	TimeSlot      string `json:"timeSlot"`
	CustomerName  string `json:"customerName,omitempty"`
	CustomerEmail string `json:"customerEmail,omitempty"`
}

// PaymentIntentResult carries the provider handle back to the client. The
// client secret is confirmable client-side against the deposit amount only.
type PaymentIntentResult struct {
	IntentID     string `json:"-"`
	ClientSecret string `json:"clientSecret"`
	DepositPence int64  `json:"-"`
}
