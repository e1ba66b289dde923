package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/julien-sketch/progressive-pulse/internal/pulse/domain"
)

type stepsRepo struct {
	db dbtx
}

func (r *stepsRepo) CreateSteps(ctx context.Context, steps []domain.Step) error {
	for _, s := range steps {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO project_steps (project_id, order_index, label, is_completed, completed_at)
			VALUES (?, ?, ?, ?, ?)`,
			s.ProjectID, s.OrderIndex, s.Label, s.Completed, optionalTime(s.CompletedAt))
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *stepsRepo) ListSteps(ctx context.Context, projectID string) ([]domain.Step, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT project_id, order_index, label, is_completed, completed_at
		FROM project_steps
		WHERE project_id = ?
		ORDER BY order_index ASC`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Step
	for rows.Next() {
		var s domain.Step
		var completedAt sql.NullTime
		if err := rows.Scan(&s.ProjectID, &s.OrderIndex, &s.Label, &s.Completed, &completedAt); err != nil {
			return nil, err
		}
		if completedAt.Valid {
			t := completedAt.Time
			s.CompletedAt = &t
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *stepsRepo) CompleteThrough(ctx context.Context, projectID string, target int, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE project_steps
		SET is_completed = 1, completed_at = ?
		WHERE project_id = ? AND order_index <= ?`,
		at, projectID, target)
	return err
}

func (r *stepsRepo) ResetAfter(ctx context.Context, projectID string, target int) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE project_steps
		SET is_completed = 0, completed_at = NULL
		WHERE project_id = ? AND order_index > ?`,
		projectID, target)
	return err
}

func optionalTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
