package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/internal/application/usecase/transaction"
	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
// An omitted category is resolved by the categorization service when
// auto-categorization is enabled.
type CreateTransactionRequest struct {
	Amount      *float64 `json:"amount" binding:"required"`
	Type        string   `json:"type" binding:"required"`
	Category    *string  `json:"category,omitempty"`
	Description string   `json:"description"`
	Date        *string  `json:"date,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

// ToInput converts the request into the ledger input.
func (r CreateTransactionRequest) ToInput() (transaction.AddTransactionInput, error) {
	date, err := datePtr(r.Date)
	if err != nil {
		return transaction.AddTransactionInput{}, err
	}
	return transaction.AddTransactionInput{
		Amount:      decimalOrZero(r.Amount),
		Type:        entity.TransactionType(r.Type),
		Category:    typedPtr[entity.Category](r.Category),
		Description: r.Description,
		Date:        date,
		Notes:       r.Notes,
	}, nil
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Amount      *float64 `json:"amount,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
	Date        *string  `json:"date,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
}

// ToInput converts the request into the ledger patch.
func (r UpdateTransactionRequest) ToInput() (transaction.UpdateTransactionInput, error) {
	date, err := datePtr(r.Date)
	if err != nil {
		return transaction.UpdateTransactionInput{}, err
	}
	return transaction.UpdateTransactionInput{
		Amount:      decimalPtr(r.Amount),
		Type:        typedPtr[entity.TransactionType](r.Type),
		Category:    typedPtr[entity.Category](r.Category),
		Description: r.Description,
		Date:        date,
		Notes:       r.Notes,
	}, nil
}

// TransactionFilterQuery represents the query parameters of GET /transactions.
type TransactionFilterQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Category  string `form:"category"`
	Type      string `form:"type"`
	MinAmount string `form:"min_amount"`
	MaxAmount string `form:"max_amount"`
	Search    string `form:"search"`
}

// ToFilter converts the query into a ledger filter. Empty parameters are
// left unset.
func (q TransactionFilterQuery) ToFilter() (entity.TransactionFilter, error) {
	filter := entity.TransactionFilter{Search: q.Search}

	if q.StartDate != "" {
		start, err := ParseDate(q.StartDate)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &start
	}
	if q.EndDate != "" {
		end, err := ParseEndDate(q.EndDate)
		if err != nil {
			return filter, err
		}
		filter.EndDate = &end
	}
	if q.Category != "" {
		category := entity.Category(q.Category)
		filter.Category = &category
	}
	if q.Type != "" {
		txnType := entity.TransactionType(q.Type)
		filter.Type = &txnType
	}
	if q.MinAmount != "" {
		minAmount, err := decimal.NewFromString(q.MinAmount)
		if err != nil {
			return filter, err
		}
		filter.MinAmount = &minAmount
	}
	if q.MaxAmount != "" {
		maxAmount, err := decimal.NewFromString(q.MaxAmount)
		if err != nil {
			return filter, err
		}
		filter.MaxAmount = &maxAmount
	}

	return filter, nil
}

// StatsQuery represents the query parameters of GET /transactions/stats.
type StatsQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// ToRange returns nil when neither bound is given, meaning the current month.
func (q StatsQuery) ToRange(now time.Time) (*transaction.DateRange, error) {
	if q.StartDate == "" && q.EndDate == "" {
		return nil, nil
	}

	r := transaction.CurrentMonth(now)
	if q.StartDate != "" {
		start, err := ParseDate(q.StartDate)
		if err != nil {
			return nil, err
		}
		r.Start = start
	}
	if q.EndDate != "" {
		end, err := ParseEndDate(q.EndDate)
		if err != nil {
			return nil, err
		}
		r.End = end
	}
	return &r, nil
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID            string    `json:"id"`
	Amount        string    `json:"amount"`
	Type          string    `json:"type"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Date          time.Time `json:"date"`
	Notes         string    `json:"notes"`
	AICategorized bool      `json:"ai_categorized"`
	AIConfidence  *float64  `json:"ai_confidence,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}

// TransactionStatsResponse represents aggregated ledger statistics.
type TransactionStatsResponse struct {
	TotalExpenses     string            `json:"total_expenses"`
	TotalIncome       string            `json:"total_income"`
	NetBalance        string            `json:"net_balance"`
	TransactionCount  int               `json:"transaction_count"`
	AverageExpense    string            `json:"average_expense"`
	CategoryBreakdown map[string]string `json:"category_breakdown"`
	StartDate         time.Time         `json:"start_date"`
	EndDate           time.Time         `json:"end_date"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID.String(),
		Amount:        t.Amount.String(),
		Type:          string(t.Type),
		Category:      string(t.Category),
		Description:   t.Description,
		Date:          t.Date,
		Notes:         t.Notes,
		AICategorized: t.AICategorized,
		AIConfidence:  t.AIConfidence,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// ToTransactionListResponse converts transactions to a TransactionListResponse DTO.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	items := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		items[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{
		Transactions: items,
		Count:        len(items),
	}
}

// ToTransactionStatsResponse converts ledger statistics to a response DTO.
func ToTransactionStatsResponse(s *entity.TransactionStats) TransactionStatsResponse {
	breakdown := make(map[string]string, len(s.CategoryBreakdown))
	for category, amount := range s.CategoryBreakdown {
		breakdown[string(category)] = amount.String()
	}
	return TransactionStatsResponse{
		TotalExpenses:     s.TotalExpenses.String(),
		TotalIncome:       s.TotalIncome.String(),
		NetBalance:        s.NetBalance.String(),
		TransactionCount:  s.TransactionCount,
		AverageExpense:    s.AverageExpense.String(),
		CategoryBreakdown: breakdown,
		StartDate:         s.StartDate,
		EndDate:           s.EndDate,
	}
}
