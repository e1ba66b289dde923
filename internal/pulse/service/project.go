package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/julien-sketch/progressive-pulse/internal/pulse/domain"
	"github.com/julien-sketch/progressive-pulse/internal/pulse/store"
	"github.com/julien-sketch/progressive-pulse/pkg/idx"
	"github.com/julien-sketch/progressive-pulse/pkg/slogx"
)

var (
	ErrMissingFields = errors.New("missing client name or broker email")
	ErrNoCredits     = errors.New("no credits left")
)

// ProjectService creates projects with their full step list and serves the
// read surfaces (tracking view, professional listing).
type ProjectService struct {
	Store  store.Store
	Tokens *TokenGenerator

	now func() time.Time // test hook
}

// CreateProjectInput carries the creation form. PropertyName is optional and
// only seeds the access token slug; DriveFolder is an optional external
// document folder link shown on the tracking page; ChargeWallet is set by the
// pro surface, the administrative surface bypasses the wallet.
type CreateProjectInput struct {
	ClientName   string
	BrokerEmail  string
	PropertyName string
	Category     domain.Category
	DriveFolder  string
	ChargeWallet bool
}

// CreateProject validates the input, derives a unique access token, and
// inserts the project together with its category's full ordered step list in
// one transaction. Returns the stored project; the access token is the piece
// callers care about.
func (s *ProjectService) CreateProject(ctx context.Context, in CreateProjectInput) (domain.Project, error) {
	log := slogx.FromContext(ctx)

	clientName := strings.TrimSpace(in.ClientName)
	brokerEmail := strings.TrimSpace(in.BrokerEmail)
	if clientName == "" || brokerEmail == "" {
		return domain.Project{}, ErrMissingFields
	}

	category, err := domain.ParseCategory(string(in.Category))
	if err != nil {
		return domain.Project{}, err
	}

	tpl, err := TemplateFor(category)
	if err != nil {
		log.Error("step template lookup failed", "category", category, "error", err)
		return domain.Project{}, err
	}

	base := strings.TrimSpace(in.PropertyName)
	if base == "" {
		base = clientName
	}
	token := s.Tokens.Generate(ctx, base)

	now := time.Now().UTC()
	if s.now != nil {
		now = s.now()
	}

	project := domain.Project{
		ID:              idx.New().String(),
		AccessToken:     token,
		ClientName:      clientName,
		BrokerEmail:     brokerEmail,
		Category:        category,
		ProgressPercent: 0,
		StatusText:      tpl.InitialStatus,
		DriveFolder:     strings.TrimSpace(in.DriveFolder),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	steps := make([]domain.Step, len(tpl.Steps))
	for i, label := range tpl.Steps {
		steps[i] = domain.Step{
			ProjectID:  project.ID,
			OrderIndex: i + 1,
			Label:      label,
		}
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if in.ChargeWallet {
			if err := tx.Wallets().DebitCredit(ctx, brokerEmail); err != nil {
				if errors.Is(err, store.ErrInsufficientCredits) {
					return ErrNoCredits
				}
				return err
			}
		}
		if err := tx.Projects().CreateProject(ctx, project); err != nil {
			return err
		}
		return tx.Steps().CreateSteps(ctx, steps)
	})
	if err != nil {
		if !errors.Is(err, ErrNoCredits) {
			log.Error("failed to create project",
				"client_name", clientName,
				"category", category,
				"error", err,
			)
		}
		return domain.Project{}, err
	}

	log.Info("project created",
		"project_id", project.ID,
		"category", category,
		"steps", len(steps),
	)

	return project, nil
}

// TrackView is everything the public tracking page shows for one token.
type TrackView struct {
	Project   domain.Project
	Steps     []domain.Step
	Documents []domain.Document
}

// Track resolves an access token into the read-only tracking view. Unknown
// and malformed tokens both come back as ErrProjectNotFound: the public
// surface renders a single "invalid link" state for both.
func (s *ProjectService) Track(ctx context.Context, token string) (TrackView, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return TrackView{}, ErrProjectNotFound
	}

	project, err := s.Store.Projects().GetProjectByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TrackView{}, ErrProjectNotFound
		}
		return TrackView{}, err
	}

	steps, err := s.Store.Steps().ListSteps(ctx, project.ID)
	if err != nil {
		return TrackView{}, err
	}

	documents, err := s.Store.Documents().ListDocuments(ctx, project.ID)
	if err != nil {
		return TrackView{}, err
	}

	return TrackView{Project: project, Steps: steps, Documents: documents}, nil
}

// Portfolio is the professional dashboard listing.
type Portfolio struct {
	Projects []domain.Project
	Credits  int
}

// ListByBroker returns a professional's projects, newest first, and their
// wallet balance. A professional with no wallet simply has zero credits.
func (s *ProjectService) ListByBroker(ctx context.Context, brokerEmail string) (Portfolio, error) {
	projects, err := s.Store.Projects().ListProjectsByBroker(ctx, brokerEmail)
	if err != nil {
		return Portfolio{}, err
	}

	credits := 0
	wallet, err := s.Store.Wallets().GetWallet(ctx, brokerEmail)
	switch {
	case err == nil:
		credits = wallet.Credits
	case errors.Is(err, store.ErrNotFound):
		// never provisioned, zero balance
	default:
		return Portfolio{}, err
	}

	return Portfolio{Projects: projects, Credits: credits}, nil
}

// GrantCredits tops up a professional's wallet. Administrative operation.
func (s *ProjectService) GrantCredits(ctx context.Context, brokerEmail string, credits int) error {
	brokerEmail = strings.TrimSpace(brokerEmail)
	if brokerEmail == "" || credits <= 0 {
		return ErrMissingFields
	}
	return s.Store.Wallets().GrantCredits(ctx, brokerEmail, credits)
}
