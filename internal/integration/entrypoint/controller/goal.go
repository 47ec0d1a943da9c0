package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/smartfinance/internal/application/usecase/goal"
	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
	"github.com/finance-tracker/smartfinance/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	tracker *goal.Tracker
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(tracker *goal.Tracker) *GoalController {
	return &GoalController{
		tracker: tracker,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(c.tracker.All()))
}

// Active handles GET /goals/active requests.
func (c *GoalController) Active(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(c.tracker.ActiveGoals()))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingGoalFields))
		return
	}

	input, err := req.ToInput()
	if err != nil {
		badRequest(ctx, "Invalid deadline format", string(domainerror.ErrCodeMissingGoalFields))
		return
	}

	g, err := c.tracker.Add(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(g))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, "goal")
	if !ok {
		return
	}

	g := c.tracker.Get(id)
	if g == nil {
		notFound(ctx, "Goal")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(g))
}

// Update handles PATCH /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, "goal")
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingGoalFields))
		return
	}

	input, err := req.ToInput()
	if err != nil {
		badRequest(ctx, "Invalid deadline format", string(domainerror.ErrCodeMissingGoalFields))
		return
	}

	g, err := c.tracker.Update(ctx.Request.Context(), id, input)
	if err != nil {
		handleError(ctx, err)
		return
	}
	if g == nil {
		notFound(ctx, "Goal")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(g))
}

// Delete handles DELETE /goals/:id requests. Unknown ids are not an error.
func (c *GoalController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, "goal")
	if !ok {
		return
	}

	c.tracker.Delete(ctx.Request.Context(), id)
	ctx.Status(http.StatusNoContent)
}

// Progress handles GET /goals/:id/progress requests.
func (c *GoalController) Progress(ctx *gin.Context) {
	id, ok := parseID(ctx, "goal")
	if !ok {
		return
	}

	progress := c.tracker.Progress(id)
	if progress == nil {
		notFound(ctx, "Goal")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalProgressResponse(progress))
}

// Deposit handles POST /goals/:id/deposit requests.
func (c *GoalController) Deposit(ctx *gin.Context) {
	id, ok := parseID(ctx, "goal")
	if !ok {
		return
	}

	var req dto.DepositRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeInvalidDepositAmount))
		return
	}

	g, err := c.tracker.Deposit(ctx.Request.Context(), id, decimalFrom(*req.Amount))
	if err != nil {
		handleError(ctx, err)
		return
	}
	if g == nil {
		notFound(ctx, "Goal")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(g))
}
