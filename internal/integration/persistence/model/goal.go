package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
)

// GoalDocument is the stored JSON form of a savings goal.
type GoalDocument struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	Priority      string          `json:"priority"`
	Status        string          `json:"status"`
	Description   string          `json:"description,omitempty"`
	Emoji         string          `json:"emoji,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ToEntity converts a GoalDocument to a domain Goal entity.
func (d GoalDocument) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:            d.ID,
		Name:          d.Name,
		TargetAmount:  d.TargetAmount,
		CurrentAmount: d.CurrentAmount,
		Deadline:      d.Deadline,
		Priority:      entity.GoalPriority(d.Priority),
		Status:        entity.GoalStatus(d.Status),
		Description:   d.Description,
		Emoji:         d.Emoji,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalDocument from a domain Goal entity.
func GoalFromEntity(g *entity.Goal) GoalDocument {
	return GoalDocument{
		ID:            g.ID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Deadline:      g.Deadline,
		Priority:      string(g.Priority),
		Status:        string(g.Status),
		Description:   g.Description,
		Emoji:         g.Emoji,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}
