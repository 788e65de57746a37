package bookingRepo

import (
	"context"
	"errors"

	"studiobook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a booking with the requested ID does not exist.
var ErrNotFound = errors.New("booking not found")

// BookingRepository is the append-only booking store. Records are written
// exactly once when payment succeeds and are never mutated afterwards.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListAll(ctx context.Context) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by the "bookings"
// collection of the given database handle.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
