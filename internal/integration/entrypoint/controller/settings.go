package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/smartfinance/internal/application/usecase/settings"
	"github.com/finance-tracker/smartfinance/internal/integration/entrypoint/dto"
)

// SettingsController handles settings and profile endpoints.
type SettingsController struct {
	store *settings.Store
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(store *settings.Store) *SettingsController {
	return &SettingsController{
		store: store,
	}
}

// Get handles GET /settings requests.
func (c *SettingsController) Get(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(c.store.Settings()))
}

// Update handles PATCH /settings requests.
func (c *SettingsController) Update(ctx *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), "")
		return
	}

	updated, err := c.store.Update(ctx.Request.Context(), req.ToInput())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(updated))
}

// Reset handles POST /settings/reset requests.
func (c *SettingsController) Reset(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(c.store.Reset(ctx.Request.Context())))
}

// GetProfile handles GET /profile requests.
func (c *SettingsController) GetProfile(ctx *gin.Context) {
	profile := c.store.Profile()
	if profile == nil {
		notFound(ctx, "Profile")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// UpdateProfile handles PATCH /profile requests.
func (c *SettingsController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body: "+err.Error(), "")
		return
	}

	profile := c.store.UpdateProfile(ctx.Request.Context(), req.ToInput())
	ctx.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}
