package dto

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/internal/application/usecase/transaction"
	"github.com/finance-tracker/smartfinance/internal/domain/entity"
	"github.com/finance-tracker/smartfinance/internal/integration/persistence"
	"github.com/finance-tracker/smartfinance/internal/mock"
)

func TestParseEndDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "plain date covers the whole day",
			value: "2024-05-31",
			want:  time.Date(2024, 5, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC),
		},
		{
			name:  "timestamp is kept as given",
			value: "2024-05-31T10:30:00Z",
			want:  time.Date(2024, 5, 31, 10, 30, 0, 0, time.UTC),
		},
		{name: "malformed", value: "31/05/2024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEndDate(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseEndDate(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseEndDate(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestTransactionFilterQuery_ToFilter_IncludesWholeEndDay(t *testing.T) {
	filter, err := TransactionFilterQuery{StartDate: "2024-05-01", EndDate: "2024-05-31"}.ToFilter()
	if err != nil {
		t.Fatalf("ToFilter() error = %v", err)
	}

	tests := []struct {
		date time.Time
		want bool
	}{
		{date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), want: true},
		{date: time.Date(2024, 5, 31, 15, 0, 0, 0, time.UTC), want: true},
		{date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), want: false},
		{date: time.Date(2024, 4, 30, 23, 0, 0, 0, time.UTC), want: false},
	}

	for _, tt := range tests {
		txn := &entity.Transaction{Amount: decimal.NewFromInt(1), Type: entity.TransactionTypeExpense, Date: tt.date}
		if got := filter.Matches(txn); got != tt.want {
			t.Errorf("Matches(%v) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestStatsQuery_ToRange_IncludesWholeEndDay(t *testing.T) {
	clock := mock.NewTime(time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC))
	storage := persistence.NewJSONStorage(persistence.NewMemoryStore(), 0)
	ledger := transaction.NewLedger(persistence.NewTransactionRepository(storage), clock)

	category := entity.CategoryGroceries
	date := time.Date(2024, 5, 31, 15, 0, 0, 0, time.UTC)
	if _, err := ledger.Add(context.Background(), transaction.AddTransactionInput{
		Amount:   decimal.NewFromInt(100),
		Type:     entity.TransactionTypeExpense,
		Category: &category,
		Date:     &date,
	}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	window, err := StatsQuery{StartDate: "2024-05-01", EndDate: "2024-05-31"}.ToRange(clock.Now())
	if err != nil {
		t.Fatalf("ToRange() error = %v", err)
	}
	stats, err := ledger.Stats(window)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	if !stats.TotalExpenses.Equal(decimal.NewFromInt(100)) || stats.TransactionCount != 1 {
		t.Errorf("Stats() = %s over %d transactions, want 100 over 1", stats.TotalExpenses, stats.TransactionCount)
	}
}

func TestStatsQuery_ToRange_DefaultsToNil(t *testing.T) {
	window, err := StatsQuery{}.ToRange(time.Now())
	if err != nil || window != nil {
		t.Errorf("ToRange() = %v, %v, want nil, nil", window, err)
	}
}
