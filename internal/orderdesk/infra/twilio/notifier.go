// Package twilio implements the Notifier port against the Twilio SMS API.
package twilio

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/hoteldesk/orderdesk/internal/orderdesk/core/ports"
)

// Config holds the gateway credentials plus the fixed sender and recipient.
// The recipient is the operator's phone; there is exactly one.
type Config struct {
	AccountSID string
	AuthToken  string
	From       string
	To         string
}

// Enabled reports whether enough configuration is present to send.
func (c Config) Enabled() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.From != "" && c.To != ""
}

// New returns a Notifier for the given config. When credentials are absent
// it returns a disabled notifier that only logs — missing gateway
// configuration must never keep the rest of the system from running.
func New(cfg Config) ports.Notifier {
	if !cfg.Enabled() {
		slog.Warn("twilio credentials not configured, notifications disabled")
		return &disabled{}
	}
	return &notifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken,
		}),
		from: cfg.From,
		to:   cfg.To,
	}
}

var _ ports.Notifier = (*notifier)(nil)

type notifier struct {
	client *twilio.RestClient
	from   string
	to     string
}

// Send delivers body as an SMS to the operator. The Twilio SDK does not
// take a context; the ctx parameter satisfies the port and is unused here.
func (n *notifier) Send(_ context.Context, body string) error {
	params := &api.CreateMessageParams{}
	params.SetFrom(n.from)
	params.SetTo(n.to)
	params.SetBody(body)

	msg, err := n.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio: send message: %w", err)
	}
	if msg.Sid != nil {
		slog.Info("notification sent", "sid", *msg.Sid)
	}
	return nil
}

// disabled is the Notifier used when credentials are missing. It delivers
// nothing and says so, so callers don't log a skipped send as a success.
type disabled struct{}

func (d *disabled) Send(_ context.Context, _ string) error {
	return ports.ErrNotificationsDisabled
}
