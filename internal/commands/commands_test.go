package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/smartfinance/config"
	"github.com/finance-tracker/smartfinance/internal/application/usecase/budget"
	"github.com/finance-tracker/smartfinance/internal/application/usecase/transaction"
	"github.com/finance-tracker/smartfinance/internal/buildinfo"
	"github.com/finance-tracker/smartfinance/internal/commands"
	"github.com/finance-tracker/smartfinance/internal/domain/entity"
	"github.com/finance-tracker/smartfinance/internal/infra/dependency"
	"github.com/finance-tracker/smartfinance/internal/mock"
)

var now = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

func newConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		Storage: config.StorageConfig{
			Driver:     config.StorageDriverSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "smartfinance.db"),
			Timeout:    time.Second,
		},
		Categorization: config.CategorizationConfig{
			Provider: config.AIProviderRules,
			Timeout:  time.Second,
			CacheTTL: 30 * 24 * time.Hour,
		},
		Policy: config.PolicyConfig{
			BudgetAlertThreshold: 80,
			GoalOnTrackTolerance: 0.8,
		},
	}
}

func runCommand(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	cmd := commands.NewRootCommand(cfg, dependency.WithClock(mock.NewTime(now)))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// seed opens the storage directly, lets fn write to it and closes it again.
func seed(t *testing.T, cfg *config.Config, at time.Time, fn func(*dependency.Injector)) {
	t.Helper()
	injector, err := dependency.NewInjector(context.Background(), cfg, dependency.WithClock(mock.NewTime(at)))
	require.NoError(t, err)
	fn(injector)
	require.NoError(t, injector.Close())
}

func addExpense(t *testing.T, injector *dependency.Injector, amount int64, category entity.Category, date time.Time) {
	t.Helper()
	_, err := injector.Ledger.Add(context.Background(), transaction.AddTransactionInput{
		Amount:      decimal.NewFromInt(amount),
		Type:        entity.TransactionTypeExpense,
		Category:    &category,
		Description: "seeded",
		Date:        &date,
	})
	require.NoError(t, err)
}

func decode(t *testing.T, out string) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &body), "output: %s", out)
	return body
}

func TestVersion(t *testing.T) {
	out, err := runCommand(t, newConfig(t), "--version")
	require.NoError(t, err)
	assert.Contains(t, out, buildinfo.Version)
	assert.Contains(t, out, buildinfo.Commit)
}

func TestCategorize(t *testing.T) {
	t.Run("matches keyword rules", func(t *testing.T) {
		out, err := runCommand(t, newConfig(t), "categorize", "Uber", "ride", "home")
		require.NoError(t, err)

		body := decode(t, out)
		assert.Equal(t, "transport", body["category"])
		assert.Equal(t, "rules", body["source"])
		assert.Equal(t, 0.9, body["confidence"])
	})

	t.Run("requires a description", func(t *testing.T) {
		_, err := runCommand(t, newConfig(t), "categorize")
		assert.Error(t, err)
	})

	t.Run("rejects a blank description", func(t *testing.T) {
		_, err := runCommand(t, newConfig(t), "categorize", "   ")
		assert.Error(t, err)
	})
}

func TestStats(t *testing.T) {
	cfg := newConfig(t)
	seed(t, cfg, now, func(injector *dependency.Injector) {
		addExpense(t, injector, 120, entity.CategoryGroceries, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC))
		addExpense(t, injector, 80, entity.CategoryDining, time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC))
		addExpense(t, injector, 500, entity.CategoryTravel, time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC))
		addExpense(t, injector, 40, entity.CategoryDining, time.Date(2024, 3, 31, 18, 30, 0, 0, time.UTC))
	})

	t.Run("defaults to the current month", func(t *testing.T) {
		out, err := runCommand(t, cfg, "stats")
		require.NoError(t, err)

		body := decode(t, out)
		assert.Equal(t, "200", body["total_expenses"])
		assert.Equal(t, "100", body["average_expense"])
		assert.Equal(t, float64(2), body["transaction_count"])
	})

	t.Run("uses the given window", func(t *testing.T) {
		out, err := runCommand(t, cfg, "stats", "--start", "2024-04-01", "--end", "2024-04-30")
		require.NoError(t, err)

		body := decode(t, out)
		assert.Equal(t, "500", body["total_expenses"])
		assert.Equal(t, map[string]any{"travel": "500"}, body["category_breakdown"])
	})

	t.Run("includes the whole end day", func(t *testing.T) {
		out, err := runCommand(t, cfg, "stats", "--start", "2024-03-01", "--end", "2024-03-31")
		require.NoError(t, err)

		body := decode(t, out)
		assert.Equal(t, "40", body["total_expenses"])
		assert.Equal(t, float64(1), body["transaction_count"])
	})

	t.Run("rejects an inverted window", func(t *testing.T) {
		_, err := runCommand(t, cfg, "stats", "--start", "2024-05-31", "--end", "2024-05-01")
		assert.Error(t, err)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		_, err := runCommand(t, cfg, "stats", "--start", "yesterday")
		assert.Error(t, err)
	})
}

func TestBudgetsRecompute(t *testing.T) {
	cfg := newConfig(t)
	seed(t, cfg, now, func(injector *dependency.Injector) {
		_, err := injector.Budgets.Add(context.Background(), budget.AddBudgetInput{
			Name:     "Food",
			Amount:   decimal.NewFromInt(500),
			Category: entity.CategoryGroceries,
			Period:   entity.BudgetPeriodMonthly,
		})
		require.NoError(t, err)
		addExpense(t, injector, 450, entity.CategoryGroceries, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))
	})

	out, err := runCommand(t, cfg, "budgets", "recompute")
	require.NoError(t, err)

	budgets, ok := decode(t, out)["budgets"].([]any)
	require.True(t, ok)
	require.Len(t, budgets, 1)

	first := budgets[0].(map[string]any)
	assert.Equal(t, "450", first["spent"])
	assert.Equal(t, "warning", first["status"])

	// The recomputed spending was persisted.
	seed(t, cfg, now, func(injector *dependency.Injector) {
		all := injector.Budgets.All()
		require.Len(t, all, 1)
		assert.Equal(t, entity.BudgetStatusWarning, all[0].Status)
	})
}

func TestCacheEvict(t *testing.T) {
	cfg := newConfig(t)
	seed(t, cfg, now.AddDate(0, 0, -45), func(injector *dependency.Injector) {
		injector.Cache.Store(context.Background(), "Corner bakery", entity.CategoryDining, 0.8)
	})
	seed(t, cfg, now, func(injector *dependency.Injector) {
		injector.Cache.Store(context.Background(), "City parking", entity.CategoryTransport, 0.9)
	})

	out, err := runCommand(t, cfg, "cache", "evict")
	require.NoError(t, err)

	body := decode(t, out)
	assert.Equal(t, float64(1), body["evicted"])
	assert.Equal(t, float64(1), body["remaining"])
}

func TestUnknownCommand(t *testing.T) {
	_, err := runCommand(t, newConfig(t), "launch")
	assert.Error(t, err)
}
