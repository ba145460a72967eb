package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/DiegoRoNa/uptask-api/internal/application/ports"
)

const (
	TypeSendConfirmation  = "email:confirmation"
	TypeSendPasswordReset = "email:password_reset"
)

// EmailEnqueuer enqueues outbound email through asynq. The frontend URL is
// baked into the message links here so use cases stay transport-agnostic.
type EmailEnqueuer struct {
	client      *asynq.Client
	frontendURL string
	log         zerolog.Logger
}

func NewAsynqEnqueuer(redisOpt asynq.RedisClientOpt, frontendURL string, log zerolog.Logger) (*EmailEnqueuer, error) {
	client := asynq.NewClient(redisOpt)
	return &EmailEnqueuer{client: client, frontendURL: frontendURL, log: log}, nil
}

func (q *EmailEnqueuer) Close() error {
	return q.client.Close()
}

func (q *EmailEnqueuer) EnqueueConfirmationEmail(ctx context.Context, name, email, token string) error {
	payload, _ := json.Marshal(map[string]string{
		"name":        name,
		"email":       email,
		"token":       token,
		"confirm_url": fmt.Sprintf("%s/auth/confirm-account", q.frontendURL),
	})
	task := asynq.NewTask(TypeSendConfirmation, payload)
	_, err := q.client.EnqueueContext(ctx, task)
	if err != nil {
		q.log.Warn().Err(err).Str("email", email).Msg("enqueue confirmation email failed")
		return err
	}
	return nil
}

func (q *EmailEnqueuer) EnqueuePasswordResetEmail(ctx context.Context, name, email, token string) error {
	payload, _ := json.Marshal(map[string]string{
		"name":      name,
		"email":     email,
		"token":     token,
		"reset_url": fmt.Sprintf("%s/auth/new-password", q.frontendURL),
	})
	task := asynq.NewTask(TypeSendPasswordReset, payload)
	_, err := q.client.EnqueueContext(ctx, task)
	if err != nil {
		q.log.Warn().Err(err).Str("email", email).Msg("enqueue password reset email failed")
		return err
	}
	return nil
}

var _ ports.EmailEnqueuer = (*EmailEnqueuer)(nil)
