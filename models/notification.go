package models

// BookingEmailPayload is the payload for queued booking emails (confirmation
// and session reminders).
type BookingEmailPayload struct {
	BookingID   string `json:"bookingId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PackageName string `json:"packageName"`
	Date        string `json:"date"`
	TimeSlot    string `json:"timeSlot"`
}
