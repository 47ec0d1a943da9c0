// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalStatus represents the lifecycle state of a savings goal.
type GoalStatus string

const (
	GoalStatusInProgress GoalStatus = "in-progress"
	GoalStatusCompleted  GoalStatus = "completed"
	GoalStatusPaused     GoalStatus = "paused"
)

// IsValid reports whether s is a known status.
func (s GoalStatus) IsValid() bool {
	return s == GoalStatusInProgress || s == GoalStatusCompleted || s == GoalStatusPaused
}

// GoalPriority ranks goals against each other.
type GoalPriority string

const (
	GoalPriorityLow    GoalPriority = "low"
	GoalPriorityMedium GoalPriority = "medium"
	GoalPriorityHigh   GoalPriority = "high"
)

// IsValid reports whether p is a known priority.
func (p GoalPriority) IsValid() bool {
	return p == GoalPriorityLow || p == GoalPriorityMedium || p == GoalPriorityHigh
}

// Goal represents a savings goal. CurrentAmount grows through deposits.
type Goal struct {
	ID            uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      *time.Time
	Priority      GoalPriority
	Status        GoalStatus
	Description   string
	Emoji         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewGoal creates a new in-progress Goal entity.
func NewGoal(
	name string,
	targetAmount, currentAmount decimal.Decimal,
	deadline *time.Time,
	priority GoalPriority,
	description, emoji string,
	now time.Time,
) *Goal {
	return &Goal{
		ID:            uuid.New(),
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		Deadline:      deadline,
		Priority:      priority,
		Status:        GoalStatusInProgress,
		Description:   description,
		Emoji:         emoji,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsReached reports whether the current amount covers the target.
func (g *Goal) IsReached() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// Milestone returns the highest of 25, 50, 75 and 100 reached by percentage, or 0.
func Milestone(percentage float64) int {
	for _, m := range []int{100, 75, 50, 25} {
		if percentage >= float64(m) {
			return m
		}
	}
	return 0
}

// Clone returns a copy of g.
func (g *Goal) Clone() *Goal {
	c := *g
	if g.Deadline != nil {
		d := *g.Deadline
		c.Deadline = &d
	}
	return &c
}

// GoalProgress is the derived view of a goal at a point in time.
type GoalProgress struct {
	GoalID                uuid.UUID
	Percentage            float64
	Remaining             decimal.Decimal
	DaysRemaining         *int // Nil when the goal has no deadline
	RequiredMonthlySaving decimal.Decimal
	OnTrack               bool
	IsCompleted           bool
	MilestoneReached      int // 0, 25, 50, 75 or 100
}
