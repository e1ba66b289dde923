package mail

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
)

// ResendMailer delivers through the Resend HTTP API.
type ResendMailer struct {
	client *resend.Client
}

func NewResendMailer(apiKey string) *ResendMailer {
	return &ResendMailer{client: resend.NewClient(apiKey)}
}

func (m *ResendMailer) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		if isRateLimited(err) {
			return fmt.Errorf("%w: %w", ErrRateLimited, err)
		}
		return err
	}
	return nil
}

// isRateLimited classifies the provider's 429 rejections. The SDK surfaces
// them as plain errors, so this matches on the message.
func isRateLimited(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "429") ||
		strings.Contains(s, "rate limit") ||
		strings.Contains(s, "too many requests")
}
