package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/julien-sketch/progressive-pulse/internal/pulse/store"
	"github.com/stretchr/testify/require"
)

// fakeProjects implements only the probe the generator needs; the embedded
// interface panics on anything else.
type fakeProjects struct {
	store.Projects

	taken  map[string]bool
	probes []string
}

func (f *fakeProjects) TokenExists(ctx context.Context, token string) (bool, error) {
	f.probes = append(f.probes, token)
	return f.taken[token], nil
}

func TestGenerateTokenShape(t *testing.T) {
	t.Parallel()

	gen := &TokenGenerator{Projects: &fakeProjects{}}

	token := gen.Generate(context.Background(), "Jean Dupont")
	require.Regexp(t, regexp.MustCompile(`^jean-dupont-\d{3}$`), token)
}

func TestGenerateTokenEmptyBaseFallsBack(t *testing.T) {
	t.Parallel()

	gen := &TokenGenerator{Projects: &fakeProjects{}}

	for _, base := range []string{"", "   ", "!!!"} {
		token := gen.Generate(context.Background(), base)
		require.Regexp(t, regexp.MustCompile(`^[a-z0-9-]+-\d{3}$`), token)
		require.Regexp(t, regexp.MustCompile(`^dossier-`), token)
	}
}

func TestGenerateTokenProbesPastCollision(t *testing.T) {
	t.Parallel()

	suffixes := []int{100, 100, 101}
	i := 0
	gen := &TokenGenerator{
		Projects:   &fakeProjects{taken: map[string]bool{"jean-dupont-100": true}},
		randSuffix: func() int { s := suffixes[i%len(suffixes)]; i++; return s },
	}

	token := gen.Generate(context.Background(), "Jean Dupont")
	require.Equal(t, "jean-dupont-101", token)
}

func TestGenerateTokenDistinctSuffixesForSameBase(t *testing.T) {
	t.Parallel()

	fake := &fakeProjects{taken: map[string]bool{}}
	gen := &TokenGenerator{Projects: fake}

	first := gen.Generate(context.Background(), "Jean Dupont")
	fake.taken[first] = true
	second := gen.Generate(context.Background(), "Jean Dupont")

	require.NotEqual(t, first, second)
}

func TestGenerateTokenTimestampFallback(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)
	gen := &TokenGenerator{
		Projects:   &fakeProjects{taken: map[string]bool{"jean-dupont-500": true}},
		randSuffix: func() int { return 500 },
		now:        func() time.Time { return at },
	}

	token := gen.Generate(context.Background(), "Jean Dupont")
	require.Regexp(t, regexp.MustCompile(`^jean-dupont-\d{13}$`), token)
}

func TestGenerateTokenAgainstRealStore(t *testing.T) {
	st := newTestStore(t)
	gen := &TokenGenerator{Projects: st.Projects()}

	token := gen.Generate(context.Background(), "12 rue de l'Église")
	require.Regexp(t, regexp.MustCompile(`^12-rue-de-l-eglise-\d{3}$`), token)
}
