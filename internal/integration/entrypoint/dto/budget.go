package dto

import (
	"time"

	"github.com/finance-tracker/smartfinance/internal/application/usecase/budget"
	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Name           string   `json:"name" binding:"required"`
	Amount         *float64 `json:"amount" binding:"required"`
	Category       string   `json:"category" binding:"required"`
	Period         string   `json:"period" binding:"required"`
	AlertThreshold *float64 `json:"alert_threshold,omitempty"`
}

// ToInput converts the request into the tracker input.
func (r CreateBudgetRequest) ToInput() budget.AddBudgetInput {
	return budget.AddBudgetInput{
		Name:           r.Name,
		Amount:         decimalOrZero(r.Amount),
		Category:       entity.Category(r.Category),
		Period:         entity.BudgetPeriod(r.Period),
		AlertThreshold: r.AlertThreshold,
	}
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Name           *string  `json:"name,omitempty"`
	Amount         *float64 `json:"amount,omitempty"`
	Category       *string  `json:"category,omitempty"`
	Period         *string  `json:"period,omitempty"`
	AlertThreshold *float64 `json:"alert_threshold,omitempty"`
}

// ToInput converts the request into the tracker patch.
func (r UpdateBudgetRequest) ToInput() budget.UpdateBudgetInput {
	return budget.UpdateBudgetInput{
		Name:           r.Name,
		Amount:         decimalPtr(r.Amount),
		Category:       typedPtr[entity.Category](r.Category),
		Period:         typedPtr[entity.BudgetPeriod](r.Period),
		AlertThreshold: r.AlertThreshold,
	}
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Amount         string    `json:"amount"`
	Spent          string    `json:"spent"`
	Category       string    `json:"category"`
	Period         string    `json:"period"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Status         string    `json:"status"`
	AlertThreshold float64   `json:"alert_threshold"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// BudgetProgressResponse represents the derived progress of a budget.
type BudgetProgressResponse struct {
	BudgetID       string  `json:"budget_id"`
	Percentage     float64 `json:"percentage"`
	Remaining      string  `json:"remaining"`
	DaysRemaining  int     `json:"days_remaining"`
	IsOverBudget   bool    `json:"is_over_budget"`
	ProjectedSpend string  `json:"projected_spend"`
	WillExceed     bool    `json:"will_exceed"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:             b.ID.String(),
		Name:           b.Name,
		Amount:         b.Amount.String(),
		Spent:          b.Spent.String(),
		Category:       string(b.Category),
		Period:         string(b.Period),
		StartDate:      b.StartDate,
		EndDate:        b.EndDate,
		Status:         string(b.Status),
		AlertThreshold: b.AlertThreshold,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// ToBudgetListResponse converts budgets to a BudgetListResponse DTO.
func ToBudgetListResponse(budgets []*entity.Budget) BudgetListResponse {
	items := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		items[i] = ToBudgetResponse(b)
	}
	return BudgetListResponse{Budgets: items}
}

// ToBudgetProgressResponse converts budget progress to a response DTO.
func ToBudgetProgressResponse(p *entity.BudgetProgress) BudgetProgressResponse {
	return BudgetProgressResponse{
		BudgetID:       p.BudgetID.String(),
		Percentage:     p.Percentage,
		Remaining:      p.Remaining.String(),
		DaysRemaining:  p.DaysRemaining,
		IsOverBudget:   p.IsOverBudget,
		ProjectedSpend: p.ProjectedSpend.String(),
		WillExceed:     p.WillExceed,
	}
}
