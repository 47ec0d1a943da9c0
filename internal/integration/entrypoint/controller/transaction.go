package controller

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	"github.com/finance-tracker/smartfinance/internal/application/usecase/categorization"
	"github.com/finance-tracker/smartfinance/internal/application/usecase/transaction"
	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
	"github.com/finance-tracker/smartfinance/internal/integration/entrypoint/dto"
)

// TransactionCategorizer suggests a category for a transaction description.
type TransactionCategorizer interface {
	Categorize(ctx context.Context, description string) (*categorization.Result, error)
}

// AutoCategorizeToggle reports whether new transactions without a category
// are categorized automatically.
type AutoCategorizeToggle interface {
	AutoCategorizeEnabled() bool
}

// TransactionController handles transaction endpoints.
type TransactionController struct {
	ledger      *transaction.Ledger
	categorizer TransactionCategorizer
	toggle      AutoCategorizeToggle
	clock       adapter.Clock
}

// NewTransactionController creates a new transaction controller instance.
// categorizer and toggle may be nil, which disables auto-categorization.
func NewTransactionController(
	ledger *transaction.Ledger,
	categorizer TransactionCategorizer,
	toggle AutoCategorizeToggle,
	clock adapter.Clock,
) *TransactionController {
	return &TransactionController{
		ledger:      ledger,
		categorizer: categorizer,
		toggle:      toggle,
		clock:       clock,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	var query dto.TransactionFilterQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		badRequest(ctx, "Invalid query parameters: "+err.Error(), string(domainerror.ErrCodeMissingTransactionFields))
		return
	}

	filter, err := query.ToFilter()
	if err != nil {
		badRequest(ctx, "Invalid filter: "+err.Error(), string(domainerror.ErrCodeMissingTransactionFields))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(c.ledger.Filter(filter)))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingTransactionFields))
		return
	}

	input, err := req.ToInput()
	if err != nil {
		badRequest(ctx, "Invalid date format", string(domainerror.ErrCodeMissingTransactionFields))
		return
	}

	if input.Category == nil && c.autoCategorize() && strings.TrimSpace(input.Description) != "" {
		result, err := c.categorizer.Categorize(ctx.Request.Context(), input.Description)
		if err != nil {
			slog.Warn("Auto-categorization failed, using default category",
				"description", input.Description,
				"error", err,
			)
		} else {
			confidence := result.Confidence
			input.Category = &result.Category
			input.AICategorized = true
			input.AIConfidence = &confidence
		}
	}

	txn, err := c.ledger.Add(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// Get handles GET /transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, "transaction")
	if !ok {
		return
	}

	txn := c.ledger.Get(id)
	if txn == nil {
		notFound(ctx, "Transaction")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// Update handles PATCH /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, "transaction")
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingTransactionFields))
		return
	}

	input, err := req.ToInput()
	if err != nil {
		badRequest(ctx, "Invalid date format", string(domainerror.ErrCodeMissingTransactionFields))
		return
	}

	txn, err := c.ledger.Update(ctx.Request.Context(), id, input)
	if err != nil {
		handleError(ctx, err)
		return
	}
	if txn == nil {
		notFound(ctx, "Transaction")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// Delete handles DELETE /transactions/:id requests. Unknown ids are not an error.
func (c *TransactionController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, "transaction")
	if !ok {
		return
	}

	c.ledger.Delete(ctx.Request.Context(), id)
	ctx.Status(http.StatusNoContent)
}

// Stats handles GET /transactions/stats requests.
func (c *TransactionController) Stats(ctx *gin.Context) {
	var query dto.StatsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		badRequest(ctx, "Invalid query parameters: "+err.Error(), string(domainerror.ErrCodeInvalidDateRange))
		return
	}

	window, err := query.ToRange(c.clock.Now())
	if err != nil {
		badRequest(ctx, "Invalid date format", string(domainerror.ErrCodeInvalidDateRange))
		return
	}

	stats, err := c.ledger.Stats(window)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionStatsResponse(stats))
}

func (c *TransactionController) autoCategorize() bool {
	return c.categorizer != nil && c.toggle != nil && c.toggle.AutoCategorizeEnabled()
}
