// Package goal contains the savings goal tracker use cases.
package goal

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// DefaultOnTrackTolerance is the share of the expected linear progress a goal
// must reach to count as on track.
const DefaultOnTrackTolerance = 0.8

// Tracker owns the goal collection.
type Tracker struct {
	mu               sync.RWMutex
	repo             adapter.GoalRepository
	clock            adapter.Clock
	onTrackTolerance float64
	goals            []*entity.Goal
}

// NewTracker creates an empty Tracker. A tolerance outside (0,1] falls back
// to DefaultOnTrackTolerance. Call Load before use.
func NewTracker(repo adapter.GoalRepository, clock adapter.Clock, onTrackTolerance float64) *Tracker {
	if onTrackTolerance <= 0 || onTrackTolerance > 1 {
		onTrackTolerance = DefaultOnTrackTolerance
	}
	return &Tracker{
		repo:             repo,
		clock:            clock,
		onTrackTolerance: onTrackTolerance,
		goals:            []*entity.Goal{},
	}
}

// Load replaces the in-memory collection with the persisted one.
func (t *Tracker) Load(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.goals = t.repo.Load(ctx)
	slog.Info("Goals loaded", "count", len(t.goals))
}

// persist writes the whole collection. Callers hold the write lock.
func (t *Tracker) persist(ctx context.Context) {
	t.repo.Save(ctx, t.goals)
}

func (t *Tracker) indexOf(id uuid.UUID) int {
	for i, g := range t.goals {
		if g.ID == id {
			return i
		}
	}
	return -1
}

// completeIfReached moves a goal to completed once its target is covered.
// Completion is never reverted here.
func completeIfReached(g *entity.Goal) {
	if g.IsReached() {
		g.Status = entity.GoalStatusCompleted
	}
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
