package ports

import (
	"context"
	"errors"
)

// ErrNotificationsDisabled signals that no delivery was attempted because
// the gateway is not configured. Jobs log it as a skip, not a failure.
var ErrNotificationsDisabled = errors.New("notifications disabled")

// Notifier delivers a short text message to the operator. Implementations
// are fire-and-forget from the caller's point of view: jobs log a returned
// error and move on, they never retry or fail the run because of it.
type Notifier interface {
	Send(ctx context.Context, body string) error
}
