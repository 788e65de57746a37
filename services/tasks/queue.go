package tasks

import (
	"fmt"
	"time"

	"studiobook/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Queue enqueues booking email tasks onto the asynq-backed work queue.
type Queue struct {
	Client *asynq.Client
	Logger *zap.Logger
}

// NewQueue returns a Queue over the given Redis connection options.
func NewQueue(redisOpts asynq.RedisClientOpt, logger *zap.Logger) *Queue {
	return &Queue{
		Client: asynq.NewClient(redisOpts),
		Logger: logger,
	}
}

// EnqueueBookingEmails queues the confirmation email for a freshly persisted
// booking, plus a session reminder 24 hours before the booked date when that
// moment is still in the future.
func (q *Queue) EnqueueBookingEmails(booking models.Booking) error {
	payload := models.BookingEmailPayload{
		BookingID:   booking.ID,
		Name:        booking.Name,
		Email:       booking.Email,
		PackageName: booking.Package.Name,
		Date:        booking.Date,
		TimeSlot:    booking.TimeSlot,
	}

	task, opts, err := NewConfirmationTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build confirmation task: %w", err)
	}
	if _, err := q.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue confirmation email: %w", err)
	}

	fireAt, ok := reminderTime(booking.Date)
	if !ok {
		return nil
	}
	task, opts, err = NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := q.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder email: %w", err)
	}

	q.Logger.Info("Booking emails enqueued",
		zap.String("booking", booking.ID),
		zap.Time("reminderAt", fireAt))
	return nil
}

// reminderTime returns the reminder fire time (24h before the session date),
// or false when the date is unparseable or the reminder would already be due.
func reminderTime(date string) (time.Time, bool) {
	day, err := time.Parse(time.RFC3339, date)
	if err != nil {
		day, err = time.Parse("2006-01-02", date)
	}
	if err != nil {
		return time.Time{}, false
	}
	fireAt := day.Add(-24 * time.Hour)
	if fireAt.Before(time.Now()) {
		return time.Time{}, false
	}
	return fireAt, true
}
