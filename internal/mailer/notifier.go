package mailer

import "context"

// Notifier delivers the two transactional emails the service sends. Both
// are best-effort: callers must not fail a request over a delivery error.
type Notifier interface {
	SendConfirmation(ctx context.Context, email, name, code string) error
	SendPasswordReset(ctx context.Context, email, name, code string) error
}
