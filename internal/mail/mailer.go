package mail

import (
	"context"
	"fmt"

	"property-catalog/pkg/config"

	"github.com/go-resty/resty/v2"
)

// Message is one outbound email handed to the relay.
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Sender delivers a message through the mail relay. Delivery is at-most-once:
// a failure is reported to the caller and never retried.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// RelayClient sends mail through an HTTP relay API (Resend-compatible JSON
// endpoint) with a bounded timeout.
type RelayClient struct {
	client *resty.Client
	apiURL string
}

func NewRelayClient(cfg *config.MailConfig) *RelayClient {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}
	return &RelayClient{client: client, apiURL: cfg.APIURL}
}

func (r *RelayClient) Send(ctx context.Context, msg Message) error {
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(msg).
		Post(r.apiURL)
	if err != nil {
		return fmt.Errorf("mail relay request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("mail relay returned %s: %s", resp.Status(), resp.String())
	}
	return nil
}
