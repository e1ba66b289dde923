package domain

import "time"

// Document is a client-uploaded file stored in the object store under a
// project-namespaced key.
type Document struct {
	ID          string
	ProjectID   string
	FileName    string
	ObjectKey   string
	ContentType string
	SizeBytes   int64
	CreatedAt   time.Time
}
