package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/smartfinance/internal/application/usecase/budget"
	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
	"github.com/finance-tracker/smartfinance/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	tracker *budget.Tracker
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(tracker *budget.Tracker) *BudgetController {
	return &BudgetController{
		tracker: tracker,
	}
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(c.tracker.All()))
}

// Active handles GET /budgets/active requests.
func (c *BudgetController) Active(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(c.tracker.ActiveBudgets()))
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingBudgetFields))
		return
	}

	b, err := c.tracker.Add(ctx.Request.Context(), req.ToInput())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(b))
}

// Get handles GET /budgets/:id requests.
func (c *BudgetController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, "budget")
	if !ok {
		return
	}

	b := c.tracker.Get(id)
	if b == nil {
		notFound(ctx, "Budget")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(b))
}

// Update handles PATCH /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, "budget")
	if !ok {
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingBudgetFields))
		return
	}

	b, err := c.tracker.Update(ctx.Request.Context(), id, req.ToInput())
	if err != nil {
		handleError(ctx, err)
		return
	}
	if b == nil {
		notFound(ctx, "Budget")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(b))
}

// Delete handles DELETE /budgets/:id requests. Unknown ids are not an error.
func (c *BudgetController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, "budget")
	if !ok {
		return
	}

	c.tracker.Delete(ctx.Request.Context(), id)
	ctx.Status(http.StatusNoContent)
}

// Progress handles GET /budgets/:id/progress requests.
func (c *BudgetController) Progress(ctx *gin.Context) {
	id, ok := parseID(ctx, "budget")
	if !ok {
		return
	}

	progress := c.tracker.Progress(id)
	if progress == nil {
		notFound(ctx, "Budget")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetProgressResponse(progress))
}

// Recompute handles POST /budgets/recompute requests.
func (c *BudgetController) Recompute(ctx *gin.Context) {
	budgets := c.tracker.RecomputeSpending(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(budgets))
}
