package tasks

import (
	"encoding/json"
	"time"

	"studiobook/models"

	"github.com/hibiken/asynq"
)

const (
	TypeSendConfirmation = "email:confirmation"
	TypeSendReminder     = "email:reminder"
)

// NewConfirmationTask builds an immediate booking-confirmation email task.
func NewConfirmationTask(payload models.BookingEmailPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	return asynq.NewTask(TypeSendConfirmation, b), nil, nil
}

// NewReminderTask builds a session-reminder email task scheduled for fireAt.
func NewReminderTask(payload models.BookingEmailPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return asynq.NewTask(TypeSendReminder, b), opts, nil
}
