package ports

import "context"

// EmailEnqueuer enqueues outbound transactional email. Every send is
// best-effort: callers log failures and never surface them to the request.
type EmailEnqueuer interface {
	EnqueueConfirmationEmail(ctx context.Context, name, email, token string) error
	EnqueuePasswordResetEmail(ctx context.Context, name, email, token string) error
}
