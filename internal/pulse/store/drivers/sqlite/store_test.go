package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/julien-sketch/progressive-pulse/internal/pulse/domain"
	"github.com/julien-sketch/progressive-pulse/internal/pulse/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func testProject(id, token string) domain.Project {
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	return domain.Project{
		ID:          id,
		AccessToken: token,
		ClientName:  "Jean Dupont",
		BrokerEmail: "broker@example.com",
		Category:    domain.CategoryRealEstate,
		StatusText:  "Mandat non confirmé",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestProjectsRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	p := testProject("01JPROJECTAAAAAAAAAAAAAAAA", "jean-dupont-123")
	require.NoError(t, st.Projects().CreateProject(ctx, p))

	got, err := st.Projects().GetProjectByToken(ctx, "jean-dupont-123")
	require.NoError(t, err)
	require.Equal(t, p.ID, got.ID)
	require.Equal(t, domain.CategoryRealEstate, got.Category)

	got, err = st.Projects().GetProjectByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "jean-dupont-123", got.AccessToken)

	exists, err := st.Projects().TokenExists(ctx, "jean-dupont-123")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = st.Projects().TokenExists(ctx, "jean-dupont-124")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestProjectsNotFound(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	_, err := st.Projects().GetProjectByToken(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Projects().GetProjectByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	err = st.Projects().UpdateProgress(ctx, "missing", 50, "x", time.Now().UTC())
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestProjectsDuplicateToken(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	require.NoError(t, st.Projects().CreateProject(ctx,
		testProject("01JPROJECTAAAAAAAAAAAAAAAA", "jean-dupont-123")))

	err := st.Projects().CreateProject(ctx,
		testProject("01JPROJECTBBBBBBBBBBBBBBBB", "jean-dupont-123"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestStepsCompleteAndReset(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	p := testProject("01JPROJECTAAAAAAAAAAAAAAAA", "jean-dupont-123")
	require.NoError(t, st.Projects().CreateProject(ctx, p))

	steps := []domain.Step{
		{ProjectID: p.ID, OrderIndex: 1, Label: "Un"},
		{ProjectID: p.ID, OrderIndex: 2, Label: "Deux"},
		{ProjectID: p.ID, OrderIndex: 3, Label: "Trois"},
	}
	require.NoError(t, st.Steps().CreateSteps(ctx, steps))

	at := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	require.NoError(t, st.Steps().CompleteThrough(ctx, p.ID, 2, at))

	listed, err := st.Steps().ListSteps(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	require.True(t, listed[0].Completed)
	require.True(t, listed[1].Completed)
	require.NotNil(t, listed[1].CompletedAt)
	require.False(t, listed[2].Completed)

	require.NoError(t, st.Steps().ResetAfter(ctx, p.ID, 1))

	listed, err = st.Steps().ListSteps(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, listed[0].Completed)
	require.False(t, listed[1].Completed)
	require.Nil(t, listed[1].CompletedAt)
}

func TestWalletsGrantAndDebit(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	_, err := st.Wallets().GetWallet(ctx, "pro@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	// Debit on a wallet that was never provisioned
	err = st.Wallets().DebitCredit(ctx, "pro@example.com")
	require.ErrorIs(t, err, store.ErrInsufficientCredits)

	require.NoError(t, st.Wallets().GrantCredits(ctx, "pro@example.com", 2))
	require.NoError(t, st.Wallets().GrantCredits(ctx, "pro@example.com", 1))

	w, err := st.Wallets().GetWallet(ctx, "pro@example.com")
	require.NoError(t, err)
	require.Equal(t, 3, w.Credits)

	for range 3 {
		require.NoError(t, st.Wallets().DebitCredit(ctx, "pro@example.com"))
	}
	err = st.Wallets().DebitCredit(ctx, "pro@example.com")
	require.ErrorIs(t, err, store.ErrInsufficientCredits)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	p := testProject("01JPROJECTAAAAAAAAAAAAAAAA", "jean-dupont-123")
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Projects().CreateProject(ctx, p); err != nil {
			return err
		}
		return context.Canceled // force rollback
	})
	require.Error(t, err)

	_, err = st.Projects().GetProjectByToken(ctx, "jean-dupont-123")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDocumentsNewestFirst(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	p := testProject("01JPROJECTAAAAAAAAAAAAAAAA", "jean-dupont-123")
	require.NoError(t, st.Projects().CreateProject(ctx, p))

	now := time.Date(2026, 4, 3, 8, 0, 0, 0, time.UTC)
	for i, id := range []string{"01JDOCAAAA0000000000000000", "01JDOCBBBB0000000000000000"} {
		require.NoError(t, st.Documents().CreateDocument(ctx, domain.Document{
			ID:        id,
			ProjectID: p.ID,
			FileName:  "doc.pdf",
			ObjectKey: "projects/x/doc.pdf",
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		}))
	}

	docs, err := st.Documents().ListDocuments(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	// ULIDs sort by creation time, so descending id is newest first.
	require.Equal(t, "01JDOCBBBB0000000000000000", docs[0].ID)
}
