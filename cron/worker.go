package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"studiobook/models"
	"studiobook/services/tasks"

	"github.com/hibiken/asynq"
)

// Mailer delivers booking emails. SMTP delivery is configured per
// deployment; the logging implementation below is the default.
type Mailer interface {
	SendConfirmation(ctx context.Context, p models.BookingEmailPayload) error
	SendReminder(ctx context.Context, p models.BookingEmailPayload) error
}

// InitEmailWorker runs the async email worker in background.
func InitEmailWorker(redisOpts asynq.RedisClientOpt, mailer Mailer) {
	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendConfirmation, handleEmailTask(mailer, "confirmation"))
	mux.HandleFunc(tasks.TypeSendReminder, handleEmailTask(mailer, "reminder"))

	// Start async worker with retry logic
	go func() {
		log.Println("[EmailWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[EmailWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[EmailWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleEmailTask(mailer Mailer, kind string) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.BookingEmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[EmailWorker] Invalid payload: %v", err)
			return err
		}

		var err error
		switch kind {
		case "confirmation":
			err = mailer.SendConfirmation(ctx, p)
		case "reminder":
			err = mailer.SendReminder(ctx, p)
		}
		if err != nil {
			log.Printf("[EmailWorker] Failed to send %s email for booking %s: %v", kind, p.BookingID, err)
		}
		return err
	}
}
