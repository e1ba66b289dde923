// Package mail abstracts outbound email so the reminder dispatcher can be
// tested without touching the provider.
package mail

import (
	"context"
	"errors"
)

// ErrRateLimited marks a send rejected by the provider for exceeding its
// outbound rate. It is the only failure class the dispatcher retries.
var ErrRateLimited = errors.New("mail: rate limited")

// Message is one outbound email.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Mailer delivers a single message. Implementations classify provider
// rate-limit rejections by wrapping ErrRateLimited.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
