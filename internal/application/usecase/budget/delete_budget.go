package budget

import (
	"context"

	"github.com/google/uuid"
)

// Delete removes the budget with id and persists the collection.
// It reports whether a budget was removed; an unknown id is a no-op.
func (t *Tracker) Delete(ctx context.Context, id uuid.UUID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(id)
	if i < 0 {
		return false
	}

	t.budgets = append(t.budgets[:i:i], t.budgets[i+1:]...)
	t.persist(ctx)
	return true
}
