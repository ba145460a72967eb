package queue

import (
	"context"

	"github.com/DiegoRoNa/uptask-api/internal/application/ports"
)

// NoopEnqueuer is a no-op enqueuer when Redis/Asynq is not configured.
type NoopEnqueuer struct{}

func NewNoopEnqueuer() *NoopEnqueuer {
	return &NoopEnqueuer{}
}

func (q *NoopEnqueuer) EnqueueConfirmationEmail(ctx context.Context, name, email, token string) error {
	return nil
}

func (q *NoopEnqueuer) EnqueuePasswordResetEmail(ctx context.Context, name, email, token string) error {
	return nil
}

var _ ports.EmailEnqueuer = (*NoopEnqueuer)(nil)
