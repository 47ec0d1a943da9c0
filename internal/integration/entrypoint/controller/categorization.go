package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/smartfinance/internal/application/usecase/categorization"
	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
	"github.com/finance-tracker/smartfinance/internal/integration/entrypoint/dto"
)

// CategorizationController handles category suggestion endpoints.
type CategorizationController struct {
	service *categorization.Service
	cache   *categorization.Cache
}

// NewCategorizationController creates a new categorization controller instance.
func NewCategorizationController(service *categorization.Service, cache *categorization.Cache) *CategorizationController {
	return &CategorizationController{
		service: service,
		cache:   cache,
	}
}

// Categorize handles POST /categorize requests.
func (c *CategorizationController) Categorize(ctx *gin.Context) {
	var req dto.CategorizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeEmptyDescription))
		return
	}

	result, err := c.service.Categorize(ctx.Request.Context(), req.Description)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategorizeResponse(result))
}

// EvictExpired handles POST /categorize/cache/evict requests.
func (c *CategorizationController) EvictExpired(ctx *gin.Context) {
	evicted := c.cache.EvictExpired(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.EvictCacheResponse{
		Evicted:   evicted,
		Remaining: c.cache.Len(),
	})
}
