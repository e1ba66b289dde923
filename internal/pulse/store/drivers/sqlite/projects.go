package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/julien-sketch/progressive-pulse/internal/pulse/domain"
	"github.com/julien-sketch/progressive-pulse/internal/pulse/store"
)

type projectsRepo struct {
	db dbtx
}

const projectColumns = `id, access_token, client_name, broker_email, category,
	progress_percent, status_text, drive_folder, created_at, updated_at`

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO projects (`+projectColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.AccessToken, p.ClientName, p.BrokerEmail, string(p.Category),
		p.ProgressPercent, p.StatusText, p.DriveFolder, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *projectsRepo) GetProjectByID(ctx context.Context, id string) (domain.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	return scanProject(row)
}

func (r *projectsRepo) GetProjectByToken(ctx context.Context, token string) (domain.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE access_token = ?`, token)
	return scanProject(row)
}

func (r *projectsRepo) TokenExists(ctx context.Context, token string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM projects WHERE access_token = ?`, token).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *projectsRepo) ListProjects(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProjects(rows)
}

func (r *projectsRepo) ListProjectsByBroker(ctx context.Context, email string) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+projectColumns+` FROM projects
		WHERE broker_email = ?
		ORDER BY created_at DESC, id DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProjects(rows)
}

func (r *projectsRepo) UpdateProgress(
	ctx context.Context,
	id string,
	percent int,
	statusText string,
	at time.Time,
) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE projects
		SET progress_percent = ?, status_text = ?, updated_at = ?
		WHERE id = ?`,
		percent, statusText, at, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (domain.Project, error) {
	var p domain.Project
	var category string
	err := row.Scan(
		&p.ID, &p.AccessToken, &p.ClientName, &p.BrokerEmail, &category,
		&p.ProgressPercent, &p.StatusText, &p.DriveFolder, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Project{}, mapNotFound(err)
	}
	p.Category = domain.Category(category)
	return p, nil
}

func collectProjects(rows interface {
	rowScanner
	Next() bool
	Err() error
}) ([]domain.Project, error) {
	var out []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
