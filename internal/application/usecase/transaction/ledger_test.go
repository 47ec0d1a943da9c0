package transaction

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	"github.com/finance-tracker/smartfinance/internal/domain/entity"
	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
	"github.com/finance-tracker/smartfinance/internal/integration/persistence"
	"github.com/finance-tracker/smartfinance/internal/mock"
)

var testNow = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

func newTestLedger(t *testing.T) (*Ledger, adapter.Storage, *mock.Time) {
	t.Helper()
	storage := persistence.NewJSONStorage(persistence.NewMemoryStore(), 0)
	clock := mock.NewTime(testNow)
	ledger := NewLedger(persistence.NewTransactionRepository(storage), clock)
	ledger.Load(context.Background())
	return ledger, storage, clock
}

func ptr[T any](v T) *T {
	return &v
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLedger_AddThenGet(t *testing.T) {
	ctx := context.Background()
	ledger, _, _ := newTestLedger(t)

	date := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	input := AddTransactionInput{
		Amount:        dec("42.10"),
		Type:          entity.TransactionTypeExpense,
		Category:      ptr(entity.CategoryGroceries),
		Description:   "Walmart",
		Date:          &date,
		Notes:         "weekly shop",
		AICategorized: true,
		AIConfidence:  ptr(0.92),
	}

	created, err := ledger.Add(ctx, input)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected an id to be assigned")
	}

	got := ledger.Get(created.ID)
	if got == nil {
		t.Fatal("expected transaction to be found")
	}
	if !got.Amount.Equal(input.Amount) || got.Type != input.Type || got.Category != entity.CategoryGroceries {
		t.Errorf("unexpected transaction %+v", got)
	}
	if got.Description != "Walmart" || got.Notes != "weekly shop" || !got.Date.Equal(date) {
		t.Errorf("unexpected transaction %+v", got)
	}
	if !got.AICategorized || got.AIConfidence == nil || *got.AIConfidence != 0.92 {
		t.Errorf("expected provenance to be kept, got %+v", got)
	}
	if !got.CreatedAt.Equal(testNow) || !got.UpdatedAt.Equal(testNow) {
		t.Errorf("expected audit timestamps at %v, got %v / %v", testNow, got.CreatedAt, got.UpdatedAt)
	}
}

func TestLedger_AddDefaults(t *testing.T) {
	ledger, _, _ := newTestLedger(t)

	created, err := ledger.Add(context.Background(), AddTransactionInput{
		Amount:      dec("5"),
		Type:        entity.TransactionTypeExpense,
		Description: "Something",
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if created.Category != entity.CategoryOther {
		t.Errorf("expected default category other, got %s", created.Category)
	}
	if !created.Date.Equal(testNow) {
		t.Errorf("expected default date now, got %v", created.Date)
	}
	if created.AICategorized || created.AIConfidence != nil {
		t.Errorf("expected no provenance, got %+v", created)
	}
}

func TestLedger_AddValidation(t *testing.T) {
	tests := []struct {
		name     string
		input    AddTransactionInput
		wantErr  error
		wantCode domainerror.TransactionErrorCode
	}{
		{
			name:     "invalid type",
			input:    AddTransactionInput{Amount: dec("1"), Type: "transfer"},
			wantErr:  domainerror.ErrInvalidTransactionType,
			wantCode: domainerror.ErrCodeInvalidTransactionType,
		},
		{
			name:     "negative amount",
			input:    AddTransactionInput{Amount: dec("-1"), Type: entity.TransactionTypeExpense},
			wantErr:  domainerror.ErrInvalidTransactionAmount,
			wantCode: domainerror.ErrCodeInvalidTransactionAmount,
		},
		{
			name:     "unknown category",
			input:    AddTransactionInput{Amount: dec("1"), Type: entity.TransactionTypeExpense, Category: ptr(entity.Category("snacks"))},
			wantErr:  domainerror.ErrInvalidTransactionCategory,
			wantCode: domainerror.ErrCodeInvalidTransactionCategory,
		},
		{
			name:     "description too long",
			input:    AddTransactionInput{Amount: dec("1"), Type: entity.TransactionTypeExpense, Description: strings.Repeat("a", 256)},
			wantErr:  domainerror.ErrDescriptionTooLong,
			wantCode: domainerror.ErrCodeDescriptionTooLong,
		},
		{
			name:     "notes too long",
			input:    AddTransactionInput{Amount: dec("1"), Type: entity.TransactionTypeExpense, Notes: strings.Repeat("n", 1001)},
			wantErr:  domainerror.ErrNotesTooLong,
			wantCode: domainerror.ErrCodeNotesTooLong,
		},
		{
			name:     "confidence out of range",
			input:    AddTransactionInput{Amount: dec("1"), Type: entity.TransactionTypeExpense, AIConfidence: ptr(1.5)},
			wantErr:  domainerror.ErrInvalidConfidence,
			wantCode: domainerror.ErrCodeInvalidConfidence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger, _, _ := newTestLedger(t)

			_, err := ledger.Add(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			var txnErr *domainerror.TransactionError
			if !errors.As(err, &txnErr) || txnErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %v", tt.wantCode, err)
			}
			if len(ledger.All()) != 0 {
				t.Error("invalid input must not be stored")
			}
		})
	}
}

func TestLedger_FilterWithoutCriteriaSortsByDateDescending(t *testing.T) {
	ctx := context.Background()
	ledger, _, _ := newTestLedger(t)

	day := func(d int) *time.Time { return ptr(time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC)) }
	add := func(description string, date *time.Time) {
		if _, err := ledger.Add(ctx, AddTransactionInput{Amount: dec("1"), Type: entity.TransactionTypeExpense, Description: description, Date: date}); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}
	add("old", day(1))
	add("same-first", day(5))
	add("newest", day(9))
	add("same-second", day(5))

	got := ledger.Filter(entity.TransactionFilter{})

	want := []string{"newest", "same-first", "same-second", "old"}
	if len(got) != len(want) {
		t.Fatalf("expected %d transactions, got %d", len(want), len(got))
	}
	for i, description := range want {
		if got[i].Description != description {
			t.Errorf("position %d: expected %s, got %s", i, description, got[i].Description)
		}
	}
}

func TestLedger_FilterCombinesCriteria(t *testing.T) {
	ctx := context.Background()
	ledger, _, _ := newTestLedger(t)

	inputs := []AddTransactionInput{
		{Amount: dec("20"), Type: entity.TransactionTypeExpense, Category: ptr(entity.CategoryDining), Description: "Pizza"},
		{Amount: dec("200"), Type: entity.TransactionTypeExpense, Category: ptr(entity.CategoryDining), Description: "Banquet"},
		{Amount: dec("20"), Type: entity.TransactionTypeIncome, Category: ptr(entity.CategoryIncome), Description: "Pizza refund"},
	}
	for _, in := range inputs {
		if _, err := ledger.Add(ctx, in); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	expense := entity.TransactionTypeExpense
	got := ledger.Filter(entity.TransactionFilter{
		Type:      &expense,
		MaxAmount: ptr(dec("100")),
		Search:    "pizza",
	})

	if len(got) != 1 || got[0].Description != "Pizza" {
		t.Errorf("expected only the pizza expense, got %v", got)
	}
}

func TestLedger_StatsOverWindow(t *testing.T) {
	ctx := context.Background()
	ledger, _, _ := newTestLedger(t)

	date := ptr(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC))
	_, _ = ledger.Add(ctx, AddTransactionInput{Amount: dec("100"), Type: entity.TransactionTypeExpense, Category: ptr(entity.CategoryShopping), Date: date})
	_, _ = ledger.Add(ctx, AddTransactionInput{Amount: dec("30"), Type: entity.TransactionTypeIncome, Category: ptr(entity.CategoryIncome), Date: date})
	_, _ = ledger.Add(ctx, AddTransactionInput{Amount: dec("999"), Type: entity.TransactionTypeExpense, Date: ptr(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))})

	stats, err := ledger.Stats(&DateRange{
		Start: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	if !stats.TotalExpenses.Equal(dec("100")) {
		t.Errorf("expected totalExpenses 100, got %s", stats.TotalExpenses)
	}
	if !stats.TotalIncome.Equal(dec("30")) {
		t.Errorf("expected totalIncome 30, got %s", stats.TotalIncome)
	}
	if !stats.NetBalance.Equal(dec("-70")) {
		t.Errorf("expected netBalance -70, got %s", stats.NetBalance)
	}
	if stats.TransactionCount != 2 {
		t.Errorf("expected 2 transactions, got %d", stats.TransactionCount)
	}
	if !stats.AverageExpense.Equal(dec("100")) {
		t.Errorf("expected averageExpense 100, got %s", stats.AverageExpense)
	}
	if len(stats.CategoryBreakdown) != 1 || !stats.CategoryBreakdown[entity.CategoryShopping].Equal(dec("100")) {
		t.Errorf("expected breakdown of expenses only, got %v", stats.CategoryBreakdown)
	}
}

func TestLedger_StatsDefaultsToCurrentMonth(t *testing.T) {
	ctx := context.Background()
	ledger, _, _ := newTestLedger(t)

	_, _ = ledger.Add(ctx, AddTransactionInput{Amount: dec("50"), Type: entity.TransactionTypeIncome, Date: ptr(time.Date(2024, 5, 31, 23, 59, 0, 0, time.UTC))})
	_, _ = ledger.Add(ctx, AddTransactionInput{Amount: dec("70"), Type: entity.TransactionTypeIncome, Date: ptr(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))})

	stats, err := ledger.Stats(nil)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	if stats.TransactionCount != 1 || !stats.TotalIncome.Equal(dec("50")) {
		t.Errorf("expected only the May income, got %+v", stats)
	}
	if !stats.AverageExpense.IsZero() {
		t.Errorf("expected averageExpense 0 without expenses, got %s", stats.AverageExpense)
	}
	if !stats.StartDate.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected window start %v", stats.StartDate)
	}
}

func TestLedger_StatsRejectsInvertedWindow(t *testing.T) {
	ledger, _, _ := newTestLedger(t)

	_, err := ledger.Stats(&DateRange{Start: testNow, End: testNow.Add(-time.Hour)})
	if !errors.Is(err, domainerror.ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestLedger_Update(t *testing.T) {
	ctx := context.Background()
	ledger, _, clock := newTestLedger(t)

	created, _ := ledger.Add(ctx, AddTransactionInput{Amount: dec("10"), Type: entity.TransactionTypeExpense, Description: "Coffee"})
	clock.Advance(time.Hour)

	updated, err := ledger.Update(ctx, created.ID, UpdateTransactionInput{
		Category: ptr(entity.CategoryDining),
		Notes:    ptr("with friends"),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Category != entity.CategoryDining || updated.Notes != "with friends" || updated.Description != "Coffee" {
		t.Errorf("unexpected merge result %+v", updated)
	}
	if !updated.UpdatedAt.Equal(testNow.Add(time.Hour)) {
		t.Errorf("expected updatedAt to be bumped, got %v", updated.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(testNow) {
		t.Errorf("createdAt must not change, got %v", updated.CreatedAt)
	}
	if updated.ID != created.ID {
		t.Error("id must not change")
	}
}

func TestLedger_UpdateUnknownID(t *testing.T) {
	ctx := context.Background()
	ledger, _, _ := newTestLedger(t)
	created, _ := ledger.Add(ctx, AddTransactionInput{Amount: dec("10"), Type: entity.TransactionTypeExpense})

	updated, err := ledger.Update(ctx, uuid.New(), UpdateTransactionInput{Notes: ptr("x")})
	if err != nil || updated != nil {
		t.Errorf("expected silent no-op, got %v, %v", updated, err)
	}
	if ledger.Get(created.ID).Notes != "" {
		t.Error("existing transaction must not change")
	}
}

func TestLedger_UpdateValidation(t *testing.T) {
	ctx := context.Background()
	ledger, _, _ := newTestLedger(t)
	created, _ := ledger.Add(ctx, AddTransactionInput{Amount: dec("10"), Type: entity.TransactionTypeExpense})

	_, err := ledger.Update(ctx, created.ID, UpdateTransactionInput{Amount: ptr(dec("-3"))})
	if !errors.Is(err, domainerror.ErrInvalidTransactionAmount) {
		t.Errorf("expected ErrInvalidTransactionAmount, got %v", err)
	}
	if !ledger.Get(created.ID).Amount.Equal(dec("10")) {
		t.Error("invalid patch must not be applied")
	}
}

func TestLedger_DeleteUnknownIDLeavesCollectionUnchanged(t *testing.T) {
	ctx := context.Background()
	ledger, _, _ := newTestLedger(t)
	_, _ = ledger.Add(ctx, AddTransactionInput{Amount: dec("10"), Type: entity.TransactionTypeExpense})

	if ledger.Delete(ctx, uuid.New()) {
		t.Error("expected no transaction to be removed")
	}
	if len(ledger.All()) != 1 {
		t.Errorf("expected collection to be unchanged, got %d", len(ledger.All()))
	}
}

func TestLedger_WriteThrough(t *testing.T) {
	ctx := context.Background()
	ledger, storage, clock := newTestLedger(t)

	first, _ := ledger.Add(ctx, AddTransactionInput{Amount: dec("10"), Type: entity.TransactionTypeExpense, Description: "first"})
	second, _ := ledger.Add(ctx, AddTransactionInput{Amount: dec("20"), Type: entity.TransactionTypeIncome, Description: "second"})
	ledger.Delete(ctx, first.ID)

	reloaded := NewLedger(persistence.NewTransactionRepository(storage), clock)
	reloaded.Load(ctx)

	all := reloaded.All()
	if len(all) != 1 || all[0].ID != second.ID {
		t.Fatalf("expected only the second transaction after reload, got %v", all)
	}

	reloaded.Clear(ctx)
	again := NewLedger(persistence.NewTransactionRepository(storage), clock)
	again.Load(ctx)
	if len(again.All()) != 0 {
		t.Error("expected cleared ledger to persist")
	}
}

func TestLedger_ReturnedRecordsAreCopies(t *testing.T) {
	ctx := context.Background()
	ledger, _, _ := newTestLedger(t)
	created, _ := ledger.Add(ctx, AddTransactionInput{Amount: dec("10"), Type: entity.TransactionTypeExpense, Description: "orig"})

	created.Description = "mutated"
	ledger.All()[0].Description = "mutated"

	if ledger.Get(created.ID).Description != "orig" {
		t.Error("callers must not be able to mutate ledger state")
	}
}
