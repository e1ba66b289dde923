package store

import (
	"context"
	"errors"
	"time"

	"github.com/julien-sketch/progressive-pulse/internal/pulse/domain"
)

var (
	ErrNotFound            = errors.New("store: not found")
	ErrAlreadyExists       = errors.New("store: already exists")
	ErrInsufficientCredits = errors.New("store: insufficient credits")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Projects() Projects
	Steps() Steps
	Documents() Documents
	Wallets() Wallets

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, rolling back when fn returns
	// an error and committing otherwise. Multi-step mutations (project
	// creation with its steps, a progression update) go through this.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Projects interface {
	// CreateProject inserts a new project (id is provided by app via ULID).
	CreateProject(ctx context.Context, p domain.Project) error

	// GetProjectByID returns a project by internal id.
	GetProjectByID(ctx context.Context, id string) (domain.Project, error)

	// GetProjectByToken resolves an access token to its project.
	GetProjectByToken(ctx context.Context, token string) (domain.Project, error)

	// TokenExists reports whether an access token is already taken. Used by
	// the token generator's collision probe.
	TokenExists(ctx context.Context, token string) (bool, error)

	// ListProjects returns all projects ordered by creation date (newest first).
	ListProjects(ctx context.Context) ([]domain.Project, error)

	// ListProjectsByBroker returns the projects of one responsible party,
	// newest first.
	ListProjectsByBroker(ctx context.Context, email string) ([]domain.Project, error)

	// UpdateProgress sets progress_percent and status_text and bumps
	// updated_at.
	UpdateProgress(ctx context.Context, id string, percent int, statusText string, at time.Time) error
}

type Steps interface {
	// CreateSteps inserts a project's full ordered step list.
	CreateSteps(ctx context.Context, steps []domain.Step) error

	// ListSteps returns a project's steps ordered by order_index ascending.
	ListSteps(ctx context.Context, projectID string) ([]domain.Step, error)

	// CompleteThrough marks every step with order_index <= target as
	// completed and (re)stamps completed_at.
	CompleteThrough(ctx context.Context, projectID string, target int, at time.Time) error

	// ResetAfter marks every step with order_index > target as not completed
	// and clears completed_at.
	ResetAfter(ctx context.Context, projectID string, target int) error
}

type Documents interface {
	// CreateDocument records an uploaded file.
	CreateDocument(ctx context.Context, d domain.Document) error

	// ListDocuments returns a project's documents, newest first.
	ListDocuments(ctx context.Context, projectID string) ([]domain.Document, error)
}

type Wallets interface {
	// GetWallet returns a professional's wallet, or ErrNotFound when none
	// was ever provisioned.
	GetWallet(ctx context.Context, brokerEmail string) (domain.Wallet, error)

	// GrantCredits adds credits, creating the wallet on first grant.
	GrantCredits(ctx context.Context, brokerEmail string, credits int) error

	// DebitCredit takes one credit, returning ErrInsufficientCredits when the
	// balance is zero or the wallet does not exist.
	DebitCredit(ctx context.Context, brokerEmail string) error
}
