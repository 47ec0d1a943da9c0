package goal

import (
	"github.com/google/uuid"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// Get returns the goal with id, or nil.
func (t *Tracker) Get(id uuid.UUID) *entity.Goal {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if i := t.indexOf(id); i >= 0 {
		return t.goals[i].Clone()
	}
	return nil
}

// All returns every goal in insertion order.
func (t *Tracker) All() []*entity.Goal {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]*entity.Goal, len(t.goals))
	for i, g := range t.goals {
		out[i] = g.Clone()
	}
	return out
}

// ActiveGoals returns the goals that are in progress.
func (t *Tracker) ActiveGoals() []*entity.Goal {
	t.mu.RLock()
	defer t.mu.RUnlock()

	active := make([]*entity.Goal, 0, len(t.goals))
	for _, g := range t.goals {
		if g.Status == entity.GoalStatusInProgress {
			active = append(active, g.Clone())
		}
	}
	return active
}
