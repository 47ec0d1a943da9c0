package dto

import (
	"time"

	"github.com/finance-tracker/smartfinance/internal/application/usecase/goal"
	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name          string   `json:"name" binding:"required"`
	TargetAmount  *float64 `json:"target_amount" binding:"required"`
	CurrentAmount *float64 `json:"current_amount,omitempty"`
	Deadline      *string  `json:"deadline,omitempty"`
	Priority      *string  `json:"priority,omitempty"`
	Description   string   `json:"description,omitempty"`
	Emoji         string   `json:"emoji,omitempty"`
}

// ToInput converts the request into the tracker input.
func (r CreateGoalRequest) ToInput() (goal.AddGoalInput, error) {
	deadline, err := datePtr(r.Deadline)
	if err != nil {
		return goal.AddGoalInput{}, err
	}
	return goal.AddGoalInput{
		Name:          r.Name,
		TargetAmount:  decimalOrZero(r.TargetAmount),
		CurrentAmount: decimalPtr(r.CurrentAmount),
		Deadline:      deadline,
		Priority:      typedPtr[entity.GoalPriority](r.Priority),
		Description:   r.Description,
		Emoji:         r.Emoji,
	}, nil
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Name          *string  `json:"name,omitempty"`
	TargetAmount  *float64 `json:"target_amount,omitempty"`
	Deadline      *string  `json:"deadline,omitempty"`
	ClearDeadline bool     `json:"clear_deadline,omitempty"`
	Priority      *string  `json:"priority,omitempty"`
	Status        *string  `json:"status,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Emoji         *string  `json:"emoji,omitempty"`
}

// ToInput converts the request into the tracker patch.
func (r UpdateGoalRequest) ToInput() (goal.UpdateGoalInput, error) {
	deadline, err := datePtr(r.Deadline)
	if err != nil {
		return goal.UpdateGoalInput{}, err
	}
	return goal.UpdateGoalInput{
		Name:          r.Name,
		TargetAmount:  decimalPtr(r.TargetAmount),
		Deadline:      deadline,
		ClearDeadline: r.ClearDeadline,
		Priority:      typedPtr[entity.GoalPriority](r.Priority),
		Status:        typedPtr[entity.GoalStatus](r.Status),
		Description:   r.Description,
		Emoji:         r.Emoji,
	}, nil
}

// DepositRequest represents the request body for a goal deposit.
type DepositRequest struct {
	Amount *float64 `json:"amount" binding:"required"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	TargetAmount  string     `json:"target_amount"`
	CurrentAmount string     `json:"current_amount"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	Priority      string     `json:"priority"`
	Status        string     `json:"status"`
	Description   string     `json:"description,omitempty"`
	Emoji         string     `json:"emoji,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// GoalProgressResponse represents the derived progress of a goal.
type GoalProgressResponse struct {
	GoalID                string  `json:"goal_id"`
	Percentage            float64 `json:"percentage"`
	Remaining             string  `json:"remaining"`
	DaysRemaining         *int    `json:"days_remaining"`
	RequiredMonthlySaving string  `json:"required_monthly_saving"`
	OnTrack               bool    `json:"on_track"`
	IsCompleted           bool    `json:"is_completed"`
	MilestoneReached      int     `json:"milestone_reached"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:            g.ID.String(),
		Name:          g.Name,
		TargetAmount:  g.TargetAmount.String(),
		CurrentAmount: g.CurrentAmount.String(),
		Deadline:      g.Deadline,
		Priority:      string(g.Priority),
		Status:        string(g.Status),
		Description:   g.Description,
		Emoji:         g.Emoji,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

// ToGoalListResponse converts goals to a GoalListResponse DTO.
func ToGoalListResponse(goals []*entity.Goal) GoalListResponse {
	items := make([]GoalResponse, len(goals))
	for i, g := range goals {
		items[i] = ToGoalResponse(g)
	}
	return GoalListResponse{Goals: items}
}

// ToGoalProgressResponse converts goal progress to a response DTO.
func ToGoalProgressResponse(p *entity.GoalProgress) GoalProgressResponse {
	return GoalProgressResponse{
		GoalID:                p.GoalID.String(),
		Percentage:            p.Percentage,
		Remaining:             p.Remaining.String(),
		DaysRemaining:         p.DaysRemaining,
		RequiredMonthlySaving: p.RequiredMonthlySaving.String(),
		OnTrack:               p.OnTrack,
		IsCompleted:           p.IsCompleted,
		MilestoneReached:      p.MilestoneReached,
	}
}
