package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/internal/domain/entity"
	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
	"github.com/finance-tracker/smartfinance/internal/integration/persistence"
	"github.com/finance-tracker/smartfinance/internal/mock"
)

var testNow = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

func newTestTracker(t *testing.T) (*Tracker, *mock.Time) {
	t.Helper()
	clock := mock.NewTime(testNow)
	storage := persistence.NewJSONStorage(persistence.NewMemoryStore(), 0)
	tracker := NewTracker(persistence.NewGoalRepository(storage), clock, 0.8)
	tracker.Load(context.Background())
	return tracker, clock
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T {
	return &v
}

func addGoal(t *testing.T, tracker *Tracker, input AddGoalInput) *entity.Goal {
	t.Helper()
	g, err := tracker.Add(context.Background(), input)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	return g
}

func TestTracker_AddDefaults(t *testing.T) {
	tracker, _ := newTestTracker(t)

	g := addGoal(t, tracker, AddGoalInput{Name: " Emergency fund ", TargetAmount: dec("1000")})

	if g.Name != "Emergency fund" {
		t.Errorf("expected trimmed name, got %q", g.Name)
	}
	if !g.CurrentAmount.IsZero() {
		t.Errorf("expected current amount 0, got %s", g.CurrentAmount)
	}
	if g.Priority != entity.GoalPriorityMedium {
		t.Errorf("expected medium priority, got %s", g.Priority)
	}
	if g.Status != entity.GoalStatusInProgress {
		t.Errorf("expected in-progress, got %s", g.Status)
	}
	if !g.CreatedAt.Equal(testNow) || !g.UpdatedAt.Equal(testNow) {
		t.Errorf("unexpected timestamps %v %v", g.CreatedAt, g.UpdatedAt)
	}
	if got := tracker.Get(g.ID); got == nil || got.Name != g.Name {
		t.Errorf("expected goal to be retrievable, got %+v", got)
	}
}

func TestTracker_AddAlreadyReached(t *testing.T) {
	tracker, _ := newTestTracker(t)

	g := addGoal(t, tracker, AddGoalInput{Name: "Bike", TargetAmount: dec("300"), CurrentAmount: ptr(dec("300"))})

	if g.Status != entity.GoalStatusCompleted {
		t.Errorf("expected completed, got %s", g.Status)
	}
}

func TestTracker_AddValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   AddGoalInput
		wantErr error
	}{
		{name: "blank name", input: AddGoalInput{Name: "", TargetAmount: dec("1")}, wantErr: domainerror.ErrInvalidGoalName},
		{name: "zero target", input: AddGoalInput{Name: "g", TargetAmount: decimal.Zero}, wantErr: domainerror.ErrInvalidTargetAmount},
		{name: "negative current", input: AddGoalInput{Name: "g", TargetAmount: dec("1"), CurrentAmount: ptr(dec("-1"))}, wantErr: domainerror.ErrInvalidCurrentAmount},
		{name: "unknown priority", input: AddGoalInput{Name: "g", TargetAmount: dec("1"), Priority: ptr(entity.GoalPriority("urgent"))}, wantErr: domainerror.ErrInvalidGoalPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker, _ := newTestTracker(t)
			_, err := tracker.Add(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}

			var goalErr *domainerror.GoalError
			if !errors.As(err, &goalErr) {
				t.Errorf("expected *GoalError, got %T", err)
			}
		})
	}
}

func TestTracker_DepositCompletesGoal(t *testing.T) {
	ctx := context.Background()
	tracker, _ := newTestTracker(t)
	g := addGoal(t, tracker, AddGoalInput{Name: "Laptop", TargetAmount: dec("100"), CurrentAmount: ptr(dec("80"))})

	got, err := tracker.Deposit(ctx, g.ID, dec("40"))
	if err != nil {
		t.Fatalf("Deposit() error = %v", err)
	}
	if !got.CurrentAmount.Equal(dec("120")) {
		t.Errorf("expected current 120, got %s", got.CurrentAmount)
	}
	if got.Status != entity.GoalStatusCompleted {
		t.Errorf("expected completed, got %s", got.Status)
	}

	got, err = tracker.Deposit(ctx, g.ID, dec("5"))
	if err != nil {
		t.Fatalf("Deposit() error = %v", err)
	}
	if got.Status != entity.GoalStatusCompleted {
		t.Errorf("further deposits must keep completed, got %s", got.Status)
	}

	// Raising the target does not reopen a completed goal.
	got, err = tracker.Update(ctx, g.ID, UpdateGoalInput{TargetAmount: ptr(dec("500"))})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got.Status != entity.GoalStatusCompleted {
		t.Errorf("expected status to stay completed, got %s", got.Status)
	}
	if len(tracker.ActiveGoals()) != 0 {
		t.Error("completed goal must not be active")
	}
}

func TestTracker_DepositValidationAndUnknownID(t *testing.T) {
	ctx := context.Background()
	tracker, _ := newTestTracker(t)
	g := addGoal(t, tracker, AddGoalInput{Name: "Trip", TargetAmount: dec("100")})

	if _, err := tracker.Deposit(ctx, g.ID, decimal.Zero); !errors.Is(err, domainerror.ErrInvalidDepositAmount) {
		t.Errorf("expected ErrInvalidDepositAmount, got %v", err)
	}
	if got, err := tracker.Deposit(ctx, uuid.New(), dec("10")); got != nil || err != nil {
		t.Errorf("expected silent no-op, got %v, %v", got, err)
	}
	if !tracker.Get(g.ID).CurrentAmount.IsZero() {
		t.Error("goal must be unchanged")
	}
}

func TestTracker_Progress(t *testing.T) {
	tests := []struct {
		name          string
		current       string
		wantOnTrack   bool
		wantRequired  string
		wantPct       float64
		wantMilestone int
	}{
		{name: "ahead of schedule", current: "300", wantOnTrack: true, wantRequired: "350", wantPct: 30, wantMilestone: 25},
		{name: "behind schedule", current: "200", wantOnTrack: false, wantRequired: "400", wantPct: 20, wantMilestone: 0},
		{name: "half way", current: "500", wantOnTrack: true, wantRequired: "250", wantPct: 50, wantMilestone: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker, clock := newTestTracker(t)
			g := addGoal(t, tracker, AddGoalInput{
				Name:          "House",
				TargetAmount:  dec("1000"),
				CurrentAmount: ptr(dec(tt.current)),
				Deadline:      ptr(testNow.AddDate(0, 0, 90)),
			})
			clock.Advance(30 * 24 * time.Hour)

			p := tracker.Progress(g.ID)

			if p.DaysRemaining == nil || *p.DaysRemaining != 60 {
				t.Fatalf("expected 60 days remaining, got %v", p.DaysRemaining)
			}
			if p.Percentage != tt.wantPct {
				t.Errorf("expected %v%%, got %v", tt.wantPct, p.Percentage)
			}
			if !p.RequiredMonthlySaving.Equal(dec(tt.wantRequired)) {
				t.Errorf("expected required monthly saving %s, got %s", tt.wantRequired, p.RequiredMonthlySaving)
			}
			if p.OnTrack != tt.wantOnTrack {
				t.Errorf("expected onTrack %v, got %v", tt.wantOnTrack, p.OnTrack)
			}
			if p.MilestoneReached != tt.wantMilestone {
				t.Errorf("expected milestone %d, got %d", tt.wantMilestone, p.MilestoneReached)
			}
			if p.IsCompleted {
				t.Error("expected goal not completed")
			}
		})
	}
}

func TestTracker_ProgressWithoutDeadline(t *testing.T) {
	tracker, _ := newTestTracker(t)
	g := addGoal(t, tracker, AddGoalInput{Name: "Someday", TargetAmount: dec("100"), CurrentAmount: ptr(dec("10"))})

	p := tracker.Progress(g.ID)

	if p.DaysRemaining != nil {
		t.Errorf("expected no days remaining, got %d", *p.DaysRemaining)
	}
	if !p.OnTrack || !p.RequiredMonthlySaving.IsZero() {
		t.Errorf("expected onTrack with no required saving, got %+v", p)
	}
	if !p.Remaining.Equal(dec("90")) {
		t.Errorf("expected remaining 90, got %s", p.Remaining)
	}
}

func TestTracker_ProgressPastDeadline(t *testing.T) {
	tracker, clock := newTestTracker(t)
	g := addGoal(t, tracker, AddGoalInput{Name: "Late", TargetAmount: dec("100"), Deadline: ptr(testNow.AddDate(0, 0, 10))})
	clock.Advance(15 * 24 * time.Hour)

	p := tracker.Progress(g.ID)

	if *p.DaysRemaining != -5 {
		t.Errorf("expected -5 days remaining, got %d", *p.DaysRemaining)
	}
	if !p.RequiredMonthlySaving.IsZero() || !p.OnTrack {
		t.Errorf("expired deadline must not derive a saving rate, got %+v", p)
	}
}

func TestTracker_ProgressUnknownID(t *testing.T) {
	tracker, _ := newTestTracker(t)
	if p := tracker.Progress(uuid.New()); p != nil {
		t.Errorf("expected nil, got %+v", p)
	}
}

func TestTracker_Update(t *testing.T) {
	ctx := context.Background()
	tracker, clock := newTestTracker(t)
	g := addGoal(t, tracker, AddGoalInput{Name: "Car", TargetAmount: dec("5000"), Deadline: ptr(testNow.AddDate(1, 0, 0))})
	clock.Advance(time.Minute)

	got, err := tracker.Update(ctx, g.ID, UpdateGoalInput{
		Name:          ptr("New car"),
		Priority:      ptr(entity.GoalPriorityHigh),
		Status:        ptr(entity.GoalStatusPaused),
		ClearDeadline: true,
		Emoji:         ptr("🚗"),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if got.Name != "New car" || got.Priority != entity.GoalPriorityHigh || got.Status != entity.GoalStatusPaused {
		t.Errorf("unexpected update result %+v", got)
	}
	if got.Deadline != nil {
		t.Errorf("expected deadline cleared, got %v", got.Deadline)
	}
	if got.Emoji != "🚗" {
		t.Errorf("expected emoji, got %q", got.Emoji)
	}
	if !got.UpdatedAt.Equal(testNow.Add(time.Minute)) {
		t.Errorf("expected updatedAt bumped, got %v", got.UpdatedAt)
	}
	if len(tracker.ActiveGoals()) != 0 {
		t.Error("paused goal must not be active")
	}

	if _, err := tracker.Update(ctx, g.ID, UpdateGoalInput{Status: ptr(entity.GoalStatus("done"))}); !errors.Is(err, domainerror.ErrInvalidGoalStatus) {
		t.Errorf("expected ErrInvalidGoalStatus, got %v", err)
	}
	if got, err := tracker.Update(ctx, uuid.New(), UpdateGoalInput{Name: ptr("x")}); got != nil || err != nil {
		t.Errorf("expected silent no-op, got %v, %v", got, err)
	}
}

func TestTracker_DeleteAndReload(t *testing.T) {
	ctx := context.Background()
	clock := mock.NewTime(testNow)
	storage := persistence.NewJSONStorage(persistence.NewMemoryStore(), 0)
	tracker := NewTracker(persistence.NewGoalRepository(storage), clock, 0)
	tracker.Load(ctx)

	keep := addGoal(t, tracker, AddGoalInput{Name: "Keep", TargetAmount: dec("10"), Deadline: ptr(testNow.AddDate(0, 2, 0))})
	drop := addGoal(t, tracker, AddGoalInput{Name: "Drop", TargetAmount: dec("10")})

	if tracker.Delete(ctx, uuid.New()) {
		t.Error("expected unknown id to be ignored")
	}
	if !tracker.Delete(ctx, drop.ID) {
		t.Error("expected goal to be removed")
	}

	reloaded := NewTracker(persistence.NewGoalRepository(storage), clock, 0)
	reloaded.Load(ctx)

	all := reloaded.All()
	if len(all) != 1 || all[0].ID != keep.ID {
		t.Fatalf("expected only the kept goal, got %v", all)
	}
	if all[0].Deadline == nil || !all[0].Deadline.Equal(testNow.AddDate(0, 2, 0)) {
		t.Errorf("expected deadline to survive a reload, got %v", all[0].Deadline)
	}
	if reloaded.onTrackTolerance != DefaultOnTrackTolerance {
		t.Errorf("expected default tolerance, got %v", reloaded.onTrackTolerance)
	}
}

func TestTracker_DeleteKeepsOrder(t *testing.T) {
	ctx := context.Background()
	tracker, _ := newTestTracker(t)

	first := addGoal(t, tracker, AddGoalInput{Name: "First", TargetAmount: dec("10")})
	middle := addGoal(t, tracker, AddGoalInput{Name: "Middle", TargetAmount: dec("10")})
	last := addGoal(t, tracker, AddGoalInput{Name: "Last", TargetAmount: dec("10")})

	before := tracker.All()
	if !tracker.Delete(ctx, middle.ID) {
		t.Fatal("expected goal to be removed")
	}

	after := tracker.All()
	if len(after) != 2 || after[0].ID != first.ID || after[1].ID != last.ID {
		t.Fatalf("expected first and last in order, got %v", after)
	}
	if len(before) != 3 || before[1].ID != middle.ID {
		t.Errorf("expected earlier snapshot to be untouched, got %v", before)
	}
}
