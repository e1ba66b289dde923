package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type memBlobStore struct {
	objects map[string][]byte
	types   map[string]string
}

func newMemBlobStore() *memBlobStore {
	return &memBlobStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *memBlobStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.objects[key] = data
	m.types[key] = contentType
	return nil
}

func TestUploadStoresObjectAndRecord(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	project := mustCreateProject(t, st, "Jean Dupont", "broker@example.com")

	blobs := newMemBlobStore()
	svc := &DocumentService{Store: st, Blobs: blobs}

	body := "fake pdf bytes"
	doc, err := svc.Upload(ctx, project.AccessToken, "Pièce d'identité.PDF", "application/pdf",
		strings.NewReader(body), int64(len(body)))
	require.NoError(t, err)
	require.Equal(t, project.ID, doc.ProjectID)
	require.Contains(t, doc.ObjectKey, "projects/"+project.ID+"/")
	require.Contains(t, doc.ObjectKey, "piece-d-identite.pdf")
	require.Equal(t, []byte(body), blobs.objects[doc.ObjectKey])
	require.Equal(t, "application/pdf", blobs.types[doc.ObjectKey])

	docs, err := st.Documents().ListDocuments(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, doc.ID, docs[0].ID)
	require.Equal(t, "Pièce d'identité.PDF", docs[0].FileName)
}

func TestUploadRejectsEmptyFile(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	project := mustCreateProject(t, st, "Jean Dupont", "broker@example.com")

	svc := &DocumentService{Store: st, Blobs: newMemBlobStore()}

	_, err := svc.Upload(ctx, project.AccessToken, "", "application/pdf", strings.NewReader(""), 0)
	require.ErrorIs(t, err, ErrEmptyUpload)

	_, err = svc.Upload(ctx, project.AccessToken, "file.pdf", "application/pdf", strings.NewReader(""), 0)
	require.ErrorIs(t, err, ErrEmptyUpload)
}

func TestUploadUnknownToken(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	svc := &DocumentService{Store: st, Blobs: newMemBlobStore()}

	_, err := svc.Upload(ctx, "no-such-token", "file.pdf", "application/pdf",
		strings.NewReader("x"), 1)
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestSafeFileName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "compromis-signe.pdf", safeFileName("Compromis signé.PDF"))
	require.Equal(t, "document", safeFileName("???"))
	require.Equal(t, "notes", safeFileName("notes"))
}
