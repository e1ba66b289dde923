package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/julien-sketch/progressive-pulse/internal/pulse/blob"
	"github.com/julien-sketch/progressive-pulse/internal/pulse/domain"
	"github.com/julien-sketch/progressive-pulse/internal/pulse/store"
	"github.com/julien-sketch/progressive-pulse/pkg/idx"
	"github.com/julien-sketch/progressive-pulse/pkg/slogx"
	"github.com/julien-sketch/progressive-pulse/pkg/slugx"
)

var ErrEmptyUpload = errors.New("empty upload")

// DocumentService stores client uploads in the object store and records them
// against the project. No content-type validation happens here and the only
// size check is rejecting an empty file (the HTTP layer caps request size):
// possession of the token is the whole access model.
type DocumentService struct {
	Store store.Store
	Blobs blob.Store

	now func() time.Time // test hook
}

// Upload writes the file to the object store under a project-namespaced key
// and records it. The call blocks until the object write is durable, then
// returns the stored document.
func (s *DocumentService) Upload(
	ctx context.Context,
	token string,
	fileName string,
	contentType string,
	r io.Reader,
	size int64,
) (domain.Document, error) {
	log := slogx.FromContext(ctx)

	fileName = strings.TrimSpace(fileName)
	if fileName == "" || size <= 0 {
		return domain.Document{}, ErrEmptyUpload
	}

	project, err := s.Store.Projects().GetProjectByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Document{}, ErrProjectNotFound
		}
		return domain.Document{}, err
	}

	now := time.Now().UTC()
	if s.now != nil {
		now = s.now()
	}

	doc := domain.Document{
		ID:          idx.New().String(),
		ProjectID:   project.ID,
		FileName:    fileName,
		ContentType: contentType,
		SizeBytes:   size,
		CreatedAt:   now,
	}
	doc.ObjectKey = fmt.Sprintf("projects/%s/%s-%s", project.ID, doc.ID, safeFileName(fileName))

	if err := s.Blobs.Put(ctx, doc.ObjectKey, r, size, contentType); err != nil {
		log.Error("object store write failed",
			"project_id", project.ID,
			"object_key", doc.ObjectKey,
			"error", err,
		)
		return domain.Document{}, err
	}

	if err := s.Store.Documents().CreateDocument(ctx, doc); err != nil {
		// The object is already durable; the row is what the tracking page
		// lists, so surface the failure.
		log.Error("failed to record document",
			"project_id", project.ID,
			"object_key", doc.ObjectKey,
			"error", err,
		)
		return domain.Document{}, err
	}

	log.Info("document uploaded",
		"project_id", project.ID,
		"document_id", doc.ID,
		"size_bytes", size,
	)

	return doc, nil
}

// safeFileName keeps a recognizable filename inside the object key while
// dropping anything path- or URL-hostile.
func safeFileName(name string) string {
	base := name
	ext := ""
	if i := strings.LastIndex(name, "."); i > 0 {
		base, ext = name[:i], strings.ToLower(name[i+1:])
	}
	slug := slugx.Make(base)
	if slug == "" {
		slug = "document"
	}
	if extSlug := slugx.Make(ext); extSlug != "" {
		return slug + "." + extSlug
	}
	return slug
}
