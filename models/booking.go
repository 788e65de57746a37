package models

import "time"

// Booking statuses. This system only ever writes "confirmed"; the other
// values exist so staff tooling can reason about the full lifecycle.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Payment statuses recorded against a booking.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Booking is a persisted booking record. Records are append-only: created
// exactly once when payment confirmation succeeds, never mutated or deleted.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Email           string    `bson:"email" json:"email"`
	Phone           string    `bson:"phone" json:"phone"`
	Notes           string    `bson:"notes" json:"notes"`
	Package         Package   `bson:"package" json:"package"`
	Date            string    `bson:"date" json:"date"`
	TimeSlot        string    `bson:"timeSlot" json:"timeSlot"`
	PaymentIntentID string    `bson:"paymentIntentId" json:"paymentIntentId"`
	PaymentStatus   string    `bson:"paymentStatus" json:"paymentStatus"`
	Status          string    `bson:"status" json:"status"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}
