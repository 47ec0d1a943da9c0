package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	"github.com/finance-tracker/smartfinance/internal/application/usecase/portfolio"
	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
	"github.com/finance-tracker/smartfinance/internal/integration/entrypoint/dto"
)

// PortfolioController handles portfolio endpoints.
type PortfolioController struct {
	tracker *portfolio.Tracker
	feed    adapter.PriceFeed
}

// NewPortfolioController creates a new portfolio controller instance.
func NewPortfolioController(tracker *portfolio.Tracker, feed adapter.PriceFeed) *PortfolioController {
	return &PortfolioController{
		tracker: tracker,
		feed:    feed,
	}
}

// List handles GET /portfolio/assets requests.
func (c *PortfolioController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToAssetListResponse(c.tracker.All()))
}

// Create handles POST /portfolio/assets requests.
func (c *PortfolioController) Create(ctx *gin.Context) {
	var req dto.CreateAssetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingAssetFields))
		return
	}

	asset, err := c.tracker.Add(ctx.Request.Context(), req.ToInput())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAssetResponse(asset))
}

// Get handles GET /portfolio/assets/:id requests.
func (c *PortfolioController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, "asset")
	if !ok {
		return
	}

	asset := c.tracker.Get(id)
	if asset == nil {
		notFound(ctx, "Asset")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// Update handles PATCH /portfolio/assets/:id requests.
func (c *PortfolioController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, "asset")
	if !ok {
		return
	}

	var req dto.UpdateAssetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingAssetFields))
		return
	}

	asset, err := c.tracker.Update(ctx.Request.Context(), id, req.ToInput())
	if err != nil {
		handleError(ctx, err)
		return
	}
	if asset == nil {
		notFound(ctx, "Asset")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// Delete handles DELETE /portfolio/assets/:id requests. Unknown ids are not an error.
func (c *PortfolioController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, "asset")
	if !ok {
		return
	}

	c.tracker.Delete(ctx.Request.Context(), id)
	ctx.Status(http.StatusNoContent)
}

// UpdatePrice handles PUT /portfolio/assets/:id/price requests.
func (c *PortfolioController) UpdatePrice(ctx *gin.Context) {
	id, ok := parseID(ctx, "asset")
	if !ok {
		return
	}

	var req dto.UpdatePriceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeInvalidPrice))
		return
	}

	asset, err := c.tracker.UpdatePrice(ctx.Request.Context(), id, decimalFrom(*req.Price))
	if err != nil {
		handleError(ctx, err)
		return
	}
	if asset == nil {
		notFound(ctx, "Asset")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// Summary handles GET /portfolio/summary requests.
func (c *PortfolioController) Summary(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToPortfolioSummaryResponse(c.tracker.Summary()))
}

// Refresh handles POST /portfolio/refresh requests. Per-asset failures are
// reported in the body, the prices that could be fetched are kept.
func (c *PortfolioController) Refresh(ctx *gin.Context) {
	if c.feed == nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Price feed is not configured",
			Code:  string(domainerror.ErrCodePriceFeedNotConfigured),
		})
		return
	}

	updated, err := c.tracker.RefreshPrices(ctx.Request.Context(), c.feed)
	ctx.JSON(http.StatusOK, dto.RefreshPricesResponse{
		Updated: updated,
		Errors:  errorMessages(err),
	})
}

// errorMessages flattens an errors.Join result into its messages.
func errorMessages(err error) []string {
	if err == nil {
		return nil
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []string{err.Error()}
	}
	errs := joined.Unwrap()
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Error())
	}
	return messages
}
