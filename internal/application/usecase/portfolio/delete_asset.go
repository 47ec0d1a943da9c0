package portfolio

import (
	"context"

	"github.com/google/uuid"
)

// Delete removes the asset with id and persists the collection. It reports
// whether an asset was removed.
func (t *Tracker) Delete(ctx context.Context, id uuid.UUID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(id)
	if i < 0 {
		return false
	}

	t.assets = append(t.assets[:i:i], t.assets[i+1:]...)
	t.persist(ctx)

	return true
}
