package queue

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// confirmationPayload matches the JSON enqueued by EnqueueConfirmationEmail.
type confirmationPayload struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Token      string `json:"token"`
	ConfirmURL string `json:"confirm_url"`
}

// passwordResetPayload matches the JSON enqueued by EnqueuePasswordResetEmail.
type passwordResetPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Token    string `json:"token"`
	ResetURL string `json:"reset_url"`
}

// Worker runs asynq task handlers for outbound email.
type Worker struct {
	srv *asynq.Server
	mux *asynq.ServeMux
	log zerolog.Logger
}

// NewWorker creates an asynq server and registers handlers. Call Run() to start.
func NewWorker(redisOpt asynq.RedisClientOpt, log zerolog.Logger) *Worker {
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 2,
		LogLevel:    asynq.InfoLevel,
	})
	mux := asynq.NewServeMux()
	w := &Worker{srv: srv, mux: mux, log: log}
	mux.HandleFunc(TypeSendConfirmation, w.handleSendConfirmation)
	mux.HandleFunc(TypeSendPasswordReset, w.handleSendPasswordReset)
	return w
}

func (w *Worker) handleSendConfirmation(ctx context.Context, t *asynq.Task) error {
	var p confirmationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		w.log.Error().Err(err).Msg("confirmation task payload invalid")
		return err
	}
	// Dev: log the code; production would send email via SMTP/sendgrid etc.
	w.log.Info().
		Str("email", p.Email).
		Str("name", p.Name).
		Str("token", p.Token).
		Str("confirm_url", p.ConfirmURL).
		Msg("confirmation email (log only; configure SMTP for real email)")
	return nil
}

func (w *Worker) handleSendPasswordReset(ctx context.Context, t *asynq.Task) error {
	var p passwordResetPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		w.log.Error().Err(err).Msg("password reset task payload invalid")
		return err
	}
	w.log.Info().
		Str("email", p.Email).
		Str("name", p.Name).
		Str("token", p.Token).
		Str("reset_url", p.ResetURL).
		Msg("password reset email (log only; configure SMTP for real email)")
	return nil
}

// Run blocks until shutdown. Use Shutdown for graceful stop.
func (w *Worker) Run() error {
	return w.srv.Run(w.mux)
}

// Shutdown stops the worker.
func (w *Worker) Shutdown() {
	w.srv.Shutdown()
}
