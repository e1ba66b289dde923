package service

import (
	"context"
	"testing"

	"github.com/julien-sketch/progressive-pulse/internal/pulse/domain"
	"github.com/julien-sketch/progressive-pulse/internal/pulse/store"
	"github.com/julien-sketch/progressive-pulse/internal/pulse/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newProjectService(st store.Store) *ProjectService {
	return &ProjectService{
		Store:  st,
		Tokens: &TokenGenerator{Projects: st.Projects()},
	}
}

func mustCreateProject(t *testing.T, st store.Store, clientName, brokerEmail string) domain.Project {
	t.Helper()

	svc := newProjectService(st)
	project, err := svc.CreateProject(context.Background(), CreateProjectInput{
		ClientName:  clientName,
		BrokerEmail: brokerEmail,
		Category:    domain.CategoryRealEstate,
	})
	require.NoError(t, err)
	return project
}
