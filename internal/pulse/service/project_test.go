package service

import (
	"context"
	"testing"

	"github.com/julien-sketch/progressive-pulse/internal/pulse/domain"
	"github.com/stretchr/testify/require"
)

func TestCreateProjectSeedsStepsAndStatus(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newProjectService(st)

	project, err := svc.CreateProject(ctx, CreateProjectInput{
		ClientName:   "Jean Dupont",
		BrokerEmail:  "broker@example.com",
		PropertyName: "12 rue de l'Église",
		Category:     domain.CategoryRealEstate,
	})
	require.NoError(t, err)
	require.NotEmpty(t, project.ID)
	require.Regexp(t, `^12-rue-de-l-eglise-\d{3}$`, project.AccessToken)
	require.Equal(t, 0, project.ProgressPercent)
	require.Equal(t, "Mandat non confirmé", project.StatusText)

	steps, err := st.Steps().ListSteps(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, steps, 8)
	require.Equal(t, "Mandat signé", steps[0].Label)
	require.Equal(t, "Acte authentique signé", steps[7].Label)
	for i, s := range steps {
		require.Equal(t, i+1, s.OrderIndex)
		require.False(t, s.Completed)
	}
}

func TestCreateProjectTokenFallsBackToClientName(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newProjectService(st)

	project, err := svc.CreateProject(ctx, CreateProjectInput{
		ClientName:  "Marie Curie",
		BrokerEmail: "broker@example.com",
		Category:    domain.CategoryTraining,
	})
	require.NoError(t, err)
	require.Regexp(t, `^marie-curie-\d{3}$`, project.AccessToken)
	require.Equal(t, "Inscription en attente", project.StatusText)
}

func TestCreateProjectValidation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newProjectService(st)

	t.Run("missing client name", func(t *testing.T) {
		_, err := svc.CreateProject(ctx, CreateProjectInput{
			BrokerEmail: "broker@example.com",
			Category:    domain.CategoryRealEstate,
		})
		require.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("missing broker email", func(t *testing.T) {
		_, err := svc.CreateProject(ctx, CreateProjectInput{
			ClientName: "Jean Dupont",
			Category:   domain.CategoryRealEstate,
		})
		require.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := svc.CreateProject(ctx, CreateProjectInput{
			ClientName:  "Jean Dupont",
			BrokerEmail: "broker@example.com",
			Category:    domain.Category("yachting"),
		})
		require.ErrorIs(t, err, domain.ErrUnknownCategory)
	})
}

func TestCreateProjectChargesWallet(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newProjectService(st)

	require.NoError(t, svc.GrantCredits(ctx, "broker@example.com", 1))

	_, err := svc.CreateProject(ctx, CreateProjectInput{
		ClientName:   "Jean Dupont",
		BrokerEmail:  "broker@example.com",
		Category:     domain.CategoryRealEstate,
		ChargeWallet: true,
	})
	require.NoError(t, err)

	wallet, err := st.Wallets().GetWallet(ctx, "broker@example.com")
	require.NoError(t, err)
	require.Equal(t, 0, wallet.Credits)

	// Empty wallet: creation fails and nothing is persisted.
	_, err = svc.CreateProject(ctx, CreateProjectInput{
		ClientName:   "Marie Curie",
		BrokerEmail:  "broker@example.com",
		Category:     domain.CategoryRealEstate,
		ChargeWallet: true,
	})
	require.ErrorIs(t, err, ErrNoCredits)

	portfolio, err := svc.ListByBroker(ctx, "broker@example.com")
	require.NoError(t, err)
	require.Len(t, portfolio.Projects, 1)
	require.Equal(t, 0, portfolio.Credits)
}

func TestTrackCollapsesUnknownTokens(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newProjectService(st)

	_, err := svc.Track(ctx, "")
	require.ErrorIs(t, err, ErrProjectNotFound)

	_, err = svc.Track(ctx, "no-such-token-999")
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestTrackReturnsFullView(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	project := mustCreateProject(t, st, "Jean Dupont", "broker@example.com")

	svc := newProjectService(st)
	view, err := svc.Track(ctx, project.AccessToken)
	require.NoError(t, err)
	require.Equal(t, project.ID, view.Project.ID)
	require.Len(t, view.Steps, 8)
	require.Empty(t, view.Documents)
}

func TestListByBrokerWithoutWallet(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mustCreateProject(t, st, "Jean Dupont", "solo@example.com")

	svc := newProjectService(st)
	portfolio, err := svc.ListByBroker(ctx, "solo@example.com")
	require.NoError(t, err)
	require.Len(t, portfolio.Projects, 1)
	require.Equal(t, 0, portfolio.Credits)
}
