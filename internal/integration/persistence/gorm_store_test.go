package persistence

import (
	"context"
	"errors"
	"testing"

	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
	"github.com/finance-tracker/smartfinance/internal/mock"
)

func newTestGormStore(t *testing.T) *gormStore {
	t.Helper()

	db, err := mock.NewDb()
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	store, err := NewGormStore(db)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store.(*gormStore)
}

func TestGormStore_SetGetOverwrite(t *testing.T) {
	ctx := context.Background()
	store := newTestGormStore(t)

	if err := store.Set(ctx, "transactions", []byte(`[]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Set(ctx, "transactions", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}

	got, err := store.Get(ctx, "transactions")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != `[{"id":"1"}]` {
		t.Errorf("expected overwritten value, got %s", got)
	}
}

func TestGormStore_MissingKey(t *testing.T) {
	_, err := newTestGormStore(t).Get(context.Background(), "missing")
	if !errors.Is(err, domainerror.ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestGormStore_KeysDeleteClear(t *testing.T) {
	ctx := context.Background()
	store := newTestGormStore(t)

	for _, key := range []string{"goals", "budgets", "transactions"} {
		if err := store.Set(ctx, key, []byte(`[]`)); err != nil {
			t.Fatalf("Set(%s) error = %v", key, err)
		}
	}

	keys, err := store.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys() error = %v", err)
	}
	want := []string{"budgets", "goals", "transactions"}
	if len(keys) != len(want) {
		t.Fatalf("expected %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %s, want %s", i, keys[i], want[i])
		}
	}

	if err := store.Delete(ctx, "goals"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := store.Delete(ctx, "goals"); err != nil {
		t.Errorf("deleting a missing key should not fail, got %v", err)
	}
	if _, err := store.Get(ctx, "goals"); !errors.Is(err, domainerror.ErrKeyNotFound) {
		t.Errorf("expected goals to be deleted, got %v", err)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	keys, _ = store.Keys(ctx)
	if len(keys) != 0 {
		t.Errorf("expected no keys after Clear, got %v", keys)
	}
}
