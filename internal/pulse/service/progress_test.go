package service

import (
	"context"
	"testing"
	"time"

	"github.com/julien-sketch/progressive-pulse/internal/pulse/domain"
	"github.com/stretchr/testify/require"
)

func TestClampTarget(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		target, total int
		want          int
	}{
		{"below range", -3, 8, 1},
		{"zero", 0, 8, 1},
		{"lower bound", 1, 8, 1},
		{"in range", 4, 8, 4},
		{"upper bound", 8, 8, 8},
		{"above range", 42, 8, 8},
		{"single step", 5, 1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ClampTarget(tc.target, tc.total))
		})
	}
}

func TestProgressPercentRoundsHalfUp(t *testing.T) {
	t.Parallel()

	require.Equal(t, 13, ProgressPercent(1, 8)) // 12.5 rounds up
	require.Equal(t, 25, ProgressPercent(2, 8))
	require.Equal(t, 50, ProgressPercent(4, 8))
	require.Equal(t, 100, ProgressPercent(8, 8))
	require.Equal(t, 33, ProgressPercent(1, 3))
	require.Equal(t, 17, ProgressPercent(1, 6))
}

func TestAdvanceMarksPrefixComplete(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	project := mustCreateProject(t, st, "Jean Dupont", "broker@example.com")

	svc := &ProgressService{Store: st}

	progress, err := svc.Advance(ctx, project.AccessToken, 4)
	require.NoError(t, err)
	require.Equal(t, 50, progress.Project.ProgressPercent)
	require.Equal(t, "Visites en cours", progress.Project.StatusText)

	steps, err := st.Steps().ListSteps(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, steps, 8)
	for _, s := range steps {
		if s.OrderIndex <= 4 {
			require.True(t, s.Completed, "step %d should be complete", s.OrderIndex)
			require.NotNil(t, s.CompletedAt, "step %d should be stamped", s.OrderIndex)
		} else {
			require.False(t, s.Completed, "step %d should be incomplete", s.OrderIndex)
			require.Nil(t, s.CompletedAt, "step %d should not be stamped", s.OrderIndex)
		}
	}
}

func TestAdvanceClampsAboveTotal(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	project := mustCreateProject(t, st, "Jean Dupont", "broker@example.com")

	svc := &ProgressService{Store: st}

	progress, err := svc.Advance(ctx, project.AccessToken, 99)
	require.NoError(t, err)
	require.Equal(t, 100, progress.Project.ProgressPercent)
	require.Equal(t, "Acte authentique signé", progress.Project.StatusText)
}

func TestAdvanceIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	project := mustCreateProject(t, st, "Jean Dupont", "broker@example.com")

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := &ProgressService{Store: st, now: func() time.Time { return now }}

	first, err := svc.Advance(ctx, project.AccessToken, 3)
	require.NoError(t, err)
	second, err := svc.Advance(ctx, project.AccessToken, 3)
	require.NoError(t, err)

	require.Equal(t, first.Project, second.Project)
	require.Equal(t, first.Steps, second.Steps)
}

func TestAdvanceBackwardUncompletesLaterSteps(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	project := mustCreateProject(t, st, "Jean Dupont", "broker@example.com")

	svc := &ProgressService{Store: st}

	_, err := svc.Advance(ctx, project.AccessToken, 6)
	require.NoError(t, err)

	progress, err := svc.Advance(ctx, project.AccessToken, 2)
	require.NoError(t, err)
	require.Equal(t, 25, progress.Project.ProgressPercent)
	require.Equal(t, "Shooting photo réalisé", progress.Project.StatusText)

	steps, err := st.Steps().ListSteps(ctx, project.ID)
	require.NoError(t, err)
	for _, s := range steps {
		require.Equal(t, s.OrderIndex <= 2, s.Completed, "step %d", s.OrderIndex)
		if s.OrderIndex > 2 {
			require.Nil(t, s.CompletedAt, "step %d timestamp should be cleared", s.OrderIndex)
		}
	}
}

func TestAdvanceErrors(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	project := mustCreateProject(t, st, "Jean Dupont", "broker@example.com")

	svc := &ProgressService{Store: st}

	t.Run("rejects non-positive target", func(t *testing.T) {
		_, err := svc.Advance(ctx, project.AccessToken, 0)
		require.ErrorIs(t, err, ErrInvalidStep)
	})

	t.Run("rejects empty token", func(t *testing.T) {
		_, err := svc.Advance(ctx, "", 1)
		require.ErrorIs(t, err, ErrInvalidStep)
	})

	t.Run("unknown token is not found, not invalid", func(t *testing.T) {
		_, err := svc.Advance(ctx, "no-such-token-123", 1)
		require.ErrorIs(t, err, ErrProjectNotFound)
		require.NotErrorIs(t, err, ErrInvalidStep)
	})

	t.Run("project without steps is rejected", func(t *testing.T) {
		bare := domain.Project{
			ID:          "01JBAREPROJECT0000000000ID",
			AccessToken: "bare-123",
			ClientName:  "Sans Étapes",
			BrokerEmail: "broker@example.com",
			Category:    domain.CategoryRealEstate,
			CreatedAt:   time.Now().UTC(),
			UpdatedAt:   time.Now().UTC(),
		}
		require.NoError(t, st.Projects().CreateProject(ctx, bare))

		_, err := svc.Advance(ctx, "bare-123", 1)
		require.ErrorIs(t, err, ErrNoStepsConfigured)
	})
}
