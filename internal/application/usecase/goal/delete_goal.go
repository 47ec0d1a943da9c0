package goal

import (
	"context"

	"github.com/google/uuid"
)

// Delete removes the goal with id and persists the collection. It reports
// whether a goal was removed.
func (t *Tracker) Delete(ctx context.Context, id uuid.UUID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(id)
	if i < 0 {
		return false
	}

	t.goals = append(t.goals[:i:i], t.goals[i+1:]...)
	t.persist(ctx)

	return true
}
