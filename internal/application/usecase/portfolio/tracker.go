// Package portfolio contains the portfolio tracker use cases.
package portfolio

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// Tracker owns the portfolio holdings and the time of the last price refresh.
type Tracker struct {
	mu          sync.RWMutex
	repo        adapter.PortfolioRepository
	clock       adapter.Clock
	assets      []*entity.PortfolioAsset
	lastUpdated *time.Time
}

// NewTracker creates an empty Tracker. Call Load before use.
func NewTracker(repo adapter.PortfolioRepository, clock adapter.Clock) *Tracker {
	return &Tracker{
		repo:   repo,
		clock:  clock,
		assets: []*entity.PortfolioAsset{},
	}
}

// Load replaces the in-memory state with the persisted one.
func (t *Tracker) Load(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.assets = t.repo.Load(ctx)
	t.lastUpdated = t.repo.LoadLastUpdated(ctx)
	slog.Info("Portfolio loaded", "assets", len(t.assets))
}

// persist writes the whole collection. Callers hold the write lock.
func (t *Tracker) persist(ctx context.Context) {
	t.repo.Save(ctx, t.assets)
}

func (t *Tracker) indexOf(id uuid.UUID) int {
	for i, a := range t.assets {
		if a.ID == id {
			return i
		}
	}
	return -1
}
