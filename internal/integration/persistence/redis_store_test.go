package persistence

import (
	"context"
	"errors"
	"testing"

	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
	"github.com/finance-tracker/smartfinance/internal/mock"
)

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	client, server, err := mock.NewRedis()
	if err != nil {
		t.Fatalf("failed to start redis: %v", err)
	}
	defer server.Close()
	defer client.Close()

	store := NewRedisStore(client, "smartfinance:")

	t.Run("set and get", func(t *testing.T) {
		if err := store.Set(ctx, "budgets", []byte(`[]`)); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		got, err := store.Get(ctx, "budgets")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if string(got) != `[]` {
			t.Errorf("unexpected value %s", got)
		}
		if !server.Exists("smartfinance:budgets") {
			t.Error("expected value to be stored under the prefix")
		}
	})

	t.Run("missing key", func(t *testing.T) {
		if _, err := store.Get(ctx, "missing"); !errors.Is(err, domainerror.ErrKeyNotFound) {
			t.Errorf("expected ErrKeyNotFound, got %v", err)
		}
	})

	t.Run("keys and clear stay inside the prefix", func(t *testing.T) {
		if err := server.Set("other-app:session", "keep"); err != nil {
			t.Fatalf("failed to seed foreign key: %v", err)
		}
		_ = store.Set(ctx, "goals", []byte(`[]`))

		keys, err := store.Keys(ctx)
		if err != nil {
			t.Fatalf("Keys() error = %v", err)
		}
		if len(keys) != 2 || keys[0] != "budgets" || keys[1] != "goals" {
			t.Errorf("unexpected keys %v", keys)
		}

		if err := store.Clear(ctx); err != nil {
			t.Fatalf("Clear() error = %v", err)
		}
		keys, _ = store.Keys(ctx)
		if len(keys) != 0 {
			t.Errorf("expected prefix to be empty, got %v", keys)
		}
		if !server.Exists("other-app:session") {
			t.Error("Clear must not remove keys outside the prefix")
		}
	})

	t.Run("delete", func(t *testing.T) {
		_ = store.Set(ctx, "goals", []byte(`[]`))
		if err := store.Delete(ctx, "goals"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if server.Exists("smartfinance:goals") {
			t.Error("expected key to be deleted")
		}
	})

	if err := mock.ClearRedis(client); err != nil {
		t.Errorf("failed to flush redis: %v", err)
	}
}
