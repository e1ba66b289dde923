package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/julien-sketch/progressive-pulse/internal/pulse/domain"
	"github.com/julien-sketch/progressive-pulse/internal/pulse/store"
	"github.com/julien-sketch/progressive-pulse/pkg/slogx"
)

var (
	ErrInvalidStep       = errors.New("invalid step number")
	ErrProjectNotFound   = errors.New("project not found")
	ErrNoStepsConfigured = errors.New("project has no steps configured")
)

// ProgressService applies step advancement: the one-click links from
// reminder emails and the dashboard's step buttons both land here.
type ProgressService struct {
	Store store.Store

	now func() time.Time // test hook
}

// Progress is the post-advance state returned to the caller.
type Progress struct {
	Project domain.Project
	Steps   []domain.Step
}

// Advance moves a project to the given target step. The target is clamped
// into [1, N]; completion is a total reassignment, so moving backward
// un-completes later steps. Percent, status text and the step flags update
// together in one transaction. Re-running with the same target is safe: the
// final state is a pure function of target and N.
func (s *ProgressService) Advance(ctx context.Context, token string, target int) (Progress, error) {
	log := slogx.FromContext(ctx)

	if token == "" || target < 1 {
		return Progress{}, ErrInvalidStep
	}

	project, err := s.Store.Projects().GetProjectByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Progress{}, ErrProjectNotFound
		}
		log.Error("failed to resolve access token", "error", err)
		return Progress{}, err
	}

	steps, err := s.Store.Steps().ListSteps(ctx, project.ID)
	if err != nil {
		log.Error("failed to list steps", "project_id", project.ID, "error", err)
		return Progress{}, err
	}
	total := len(steps)
	if total == 0 {
		log.Warn("project has no steps configured", "project_id", project.ID)
		return Progress{}, ErrNoStepsConfigured
	}

	clamped := ClampTarget(target, total)
	percent := ProgressPercent(clamped, total)
	status := statusTextFor(steps, clamped, total)

	now := time.Now().UTC()
	if s.now != nil {
		now = s.now()
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Steps().CompleteThrough(ctx, project.ID, clamped, now); err != nil {
			return err
		}
		if err := tx.Steps().ResetAfter(ctx, project.ID, clamped); err != nil {
			return err
		}
		return tx.Projects().UpdateProgress(ctx, project.ID, percent, status, now)
	})
	if err != nil {
		log.Error("failed to apply step advance",
			"project_id", project.ID,
			"target", clamped,
			"error", err,
		)
		return Progress{}, err
	}

	log.Info("step advanced",
		"project_id", project.ID,
		"target", clamped,
		"total", total,
		"percent", percent,
	)

	project.ProgressPercent = percent
	project.StatusText = status
	project.UpdatedAt = now
	for i := range steps {
		if steps[i].OrderIndex <= clamped {
			steps[i].Completed = true
			t := now
			steps[i].CompletedAt = &t
		} else {
			steps[i].Completed = false
			steps[i].CompletedAt = nil
		}
	}

	return Progress{Project: project, Steps: steps}, nil
}

// ClampTarget clamps a requested step into the closed range [1, total].
func ClampTarget(target, total int) int {
	return max(1, min(target, total))
}

// ProgressPercent derives the percent-complete for a clamped target,
// rounding half up: 1/8 is 13, 4/8 is 50.
func ProgressPercent(target, total int) int {
	return int(math.Round(float64(target) / float64(total) * 100))
}

// statusTextFor mirrors the label of the step at the target index. The
// generic fallback should be unreachable while order indexes stay contiguous.
func statusTextFor(steps []domain.Step, target, total int) string {
	for _, s := range steps {
		if s.OrderIndex == target && s.Label != "" {
			return s.Label
		}
	}
	return fmt.Sprintf("Étape %d/%d", target, total)
}
