package sqlite

import (
	"context"

	"github.com/julien-sketch/progressive-pulse/internal/pulse/domain"
)

type documentsRepo struct {
	db dbtx
}

func (r *documentsRepo) CreateDocument(ctx context.Context, d domain.Document) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO documents (id, project_id, file_name, object_key, content_type, size_bytes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.ProjectID, d.FileName, d.ObjectKey, d.ContentType, d.SizeBytes, d.CreatedAt)
	return err
}

func (r *documentsRepo) ListDocuments(ctx context.Context, projectID string) ([]domain.Document, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, project_id, file_name, object_key, content_type, size_bytes, created_at
		FROM documents
		WHERE project_id = ?
		ORDER BY id DESC`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Document
	for rows.Next() {
		var d domain.Document
		if err := rows.Scan(&d.ID, &d.ProjectID, &d.FileName, &d.ObjectKey,
			&d.ContentType, &d.SizeBytes, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
