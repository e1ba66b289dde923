package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/url"
	"strings"
	"time"

	"github.com/julien-sketch/progressive-pulse/internal/pulse/domain"
	"github.com/julien-sketch/progressive-pulse/internal/pulse/mail"
	"github.com/julien-sketch/progressive-pulse/internal/pulse/store"
	"github.com/julien-sketch/progressive-pulse/pkg/slogx"
)

const (
	defaultRetryBackoff   = 2 * time.Second
	defaultRecipientDelay = 500 * time.Millisecond
)

// ReminderService emails every responsible professional one message listing
// their projects with one-click advance links. Triggered by an external
// scheduler through the remind endpoint or the CLI; it has no scheduling of
// its own.
type ReminderService struct {
	Store  store.Store
	Mailer mail.Mailer

	// BaseURL is the public origin the advance links point at.
	BaseURL string
	// From is the sender identity, e.g. "Pulse <suivi@example.com>".
	From string

	// RetryBackoff is the wait before the single rate-limit retry.
	RetryBackoff time.Duration
	// RecipientDelay throttles sends between recipients.
	RecipientDelay time.Duration

	sleep func(time.Duration) // test hook
}

// Run sends one reminder per distinct broker email, aggregating all of that
// professional's projects. A failed recipient never blocks the rest; the
// caller gets the full per-recipient outcome list. Only a rate-limited send
// is retried, once, after a fixed backoff.
func (s *ReminderService) Run(ctx context.Context) ([]domain.ReminderOutcome, error) {
	log := slogx.FromContext(ctx)

	projects, err := s.Store.Projects().ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	// Group by responsible party, preserving first-seen order so runs are
	// deterministic for a given listing order.
	grouped := map[string][]domain.Project{}
	var recipients []string
	for _, p := range projects {
		email := strings.TrimSpace(p.BrokerEmail)
		if email == "" {
			continue
		}
		if _, seen := grouped[email]; !seen {
			recipients = append(recipients, email)
		}
		grouped[email] = append(grouped[email], p)
	}

	sleep := s.sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	backoff := s.RetryBackoff
	if backoff <= 0 {
		backoff = defaultRetryBackoff
	}
	delay := s.RecipientDelay
	if delay <= 0 {
		delay = defaultRecipientDelay
	}

	outcomes := make([]domain.ReminderOutcome, 0, len(recipients))
	for i, email := range recipients {
		if i > 0 {
			sleep(delay)
		}

		outcome := domain.ReminderOutcome{Recipient: email, Projects: len(grouped[email])}

		body, err := s.buildBody(ctx, grouped[email])
		if err != nil {
			outcome.Reason = err.Error()
			outcomes = append(outcomes, outcome)
			log.Error("failed to build reminder", "recipient", email, "error", err)
			continue
		}

		msg := mail.Message{
			From:    s.From,
			To:      []string{email},
			Subject: reminderSubject(grouped[email]),
			HTML:    body,
		}

		err = s.Mailer.Send(ctx, msg)
		if errors.Is(err, mail.ErrRateLimited) {
			sleep(backoff)
			outcome.Retried = true
			err = s.Mailer.Send(ctx, msg)
		}
		if err != nil {
			outcome.Reason = err.Error()
			log.Warn("reminder delivery failed", "recipient", email, "error", err)
		} else {
			outcome.OK = true
		}
		outcomes = append(outcomes, outcome)
	}

	sent := 0
	for _, o := range outcomes {
		if o.OK {
			sent++
		}
	}
	log.Info("reminder run completed", "recipients", len(outcomes), "sent", sent)
	return outcomes, nil
}

func reminderSubject(projects []domain.Project) string {
	if len(projects) == 1 {
		return "Où en est le dossier – " + projects[0].ClientName
	}
	return fmt.Sprintf("Suivi de vos %d dossiers en cours", len(projects))
}

// buildBody renders one project card per project: the client name, a button
// per step pointing at the advance endpoint, and the client tracking link.
func (s *ReminderService) buildBody(ctx context.Context, projects []domain.Project) (string, error) {
	var b strings.Builder
	b.WriteString(`<div style="font-family:system-ui,-apple-system,Segoe UI,Roboto,sans-serif;background:#f5f5f7;padding:24px">`)

	for _, p := range projects {
		steps, err := s.Store.Steps().ListSteps(ctx, p.ID)
		if err != nil {
			return "", err
		}

		b.WriteString(`<div style="max-width:560px;margin:0 auto 16px;background:#ffffff;border-radius:24px;padding:20px;border:1px solid #eef2f7">`)
		b.WriteString(`<h2 style="margin:0 0 6px;font-size:18px;color:#111">Mise à jour du dossier</h2>`)
		fmt.Fprintf(&b, `<p style="margin:0 0 14px;color:#555;font-weight:600">Client : %s</p>`,
			html.EscapeString(p.ClientName))
		b.WriteString(`<p style="margin:0 0 10px;color:#111;font-weight:800">Cliquez sur l'étape actuelle :</p>`)

		for _, step := range steps {
			href := fmt.Sprintf("%s/v1/advance?token=%s&step=%d",
				s.BaseURL, url.QueryEscape(p.AccessToken), step.OrderIndex)
			fmt.Fprintf(&b,
				`<a href="%s" style="display:block;text-decoration:none;padding:12px 14px;border-radius:14px;border:1px solid #e5e7eb;margin:8px 0;font-weight:700;color:#111;background:#fff">%d. %s</a>`,
				href, step.OrderIndex, html.EscapeString(step.Label))
		}

		trackLink := fmt.Sprintf("%s/v1/track/%s", s.BaseURL, url.PathEscape(p.AccessToken))
		fmt.Fprintf(&b,
			`<p style="margin:14px 0 0"><a href="%s" style="color:#111;font-weight:800;text-decoration:none">Voir le lien client</a></p>`,
			trackLink)
		b.WriteString(`</div>`)
	}

	b.WriteString(`</div>`)
	return b.String(), nil
}
