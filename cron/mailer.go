package cron

import (
	"context"

	"studiobook/models"

	"go.uber.org/zap"
)

// LogMailer records outgoing emails in the service log instead of sending
// them. Used until an SMTP provider is wired in.
type LogMailer struct {
	Logger *zap.Logger
}

func (m *LogMailer) SendConfirmation(ctx context.Context, p models.BookingEmailPayload) error {
	m.Logger.Info("Booking confirmation email",
		zap.String("booking", p.BookingID),
		zap.String("to", p.Email),
		zap.String("package", p.PackageName),
		zap.String("date", p.Date),
		zap.String("timeSlot", p.TimeSlot))
	return nil
}

func (m *LogMailer) SendReminder(ctx context.Context, p models.BookingEmailPayload) error {
	m.Logger.Info("Session reminder email",
		zap.String("booking", p.BookingID),
		zap.String("to", p.Email),
		zap.String("date", p.Date),
		zap.String("timeSlot", p.TimeSlot))
	return nil
}
