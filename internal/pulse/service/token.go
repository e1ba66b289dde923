package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/julien-sketch/progressive-pulse/internal/pulse/store"
	"github.com/julien-sketch/progressive-pulse/pkg/slugx"
)

const (
	// tokenAttempts bounds the collision probe loop. With a 900-value suffix
	// keyspace per slug, ten straight collisions are pathological.
	tokenAttempts = 10

	// fallbackBase keeps tokens shaped like {slug}-{digits} even when the
	// caller provides nothing slugable.
	fallbackBase = "dossier"
)

// TokenGenerator derives human-readable, probabilistically unique access
// tokens of the form {slug}-{3-digit-suffix}. The probe against the store is
// best effort: a race between probe and insert remains possible and is
// absorbed by the projects table's UNIQUE constraint.
type TokenGenerator struct {
	Projects store.Projects

	// hooks for tests; nil means production behavior
	randSuffix func() int
	now        func() time.Time
}

// Generate always returns a token and never an error. Probe failures (store
// errors included) count as collisions; after tokenAttempts collisions it
// appends a coarse timestamp, which is unique without a further existence
// check.
func (g *TokenGenerator) Generate(ctx context.Context, base string) string {
	slug := slugx.Make(base)
	if slug == "" {
		slug = fallbackBase
	}

	suffix := g.randSuffix
	if suffix == nil {
		suffix = func() int { return 100 + rand.IntN(900) }
	}

	for range tokenAttempts {
		candidate := fmt.Sprintf("%s-%03d", slug, suffix())
		taken, err := g.Projects.TokenExists(ctx, candidate)
		if err == nil && !taken {
			return candidate
		}
	}

	now := g.now
	if now == nil {
		now = time.Now
	}
	return fmt.Sprintf("%s-%d", slug, now().UnixMilli())
}
