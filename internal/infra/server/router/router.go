// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/smartfinance/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/smartfinance/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                   *gin.Engine
	healthController         *controller.HealthController
	transactionController    *controller.TransactionController
	budgetController         *controller.BudgetController
	goalController           *controller.GoalController
	portfolioController      *controller.PortfolioController
	categorizationController *controller.CategorizationController
	settingsController       *controller.SettingsController
	categorizeRateLimiter    *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	budgetController *controller.BudgetController,
	goalController *controller.GoalController,
	portfolioController *controller.PortfolioController,
	categorizationController *controller.CategorizationController,
	settingsController *controller.SettingsController,
	categorizeRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:         healthController,
		transactionController:    transactionController,
		budgetController:         budgetController,
		goalController:           goalController,
		portfolioController:      portfolioController,
		categorizationController: categorizationController,
		settingsController:       settingsController,
		categorizeRateLimiter:    categorizeRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		if r.transactionController != nil {
			transactions := v1.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.GET("/stats", r.transactionController.Stats)
				transactions.GET("/:id", r.transactionController.Get)
				transactions.PATCH("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		if r.budgetController != nil {
			budgets := v1.Group("/budgets")
			{
				budgets.GET("", r.budgetController.List)
				budgets.POST("", r.budgetController.Create)
				budgets.GET("/active", r.budgetController.Active)
				budgets.POST("/recompute", r.budgetController.Recompute)
				budgets.GET("/:id", r.budgetController.Get)
				budgets.PATCH("/:id", r.budgetController.Update)
				budgets.DELETE("/:id", r.budgetController.Delete)
				budgets.GET("/:id/progress", r.budgetController.Progress)
			}
		}

		if r.goalController != nil {
			goals := v1.Group("/goals")
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.GET("/active", r.goalController.Active)
				goals.GET("/:id", r.goalController.Get)
				goals.PATCH("/:id", r.goalController.Update)
				goals.DELETE("/:id", r.goalController.Delete)
				goals.GET("/:id/progress", r.goalController.Progress)
				goals.POST("/:id/deposit", r.goalController.Deposit)
			}
		}

		if r.portfolioController != nil {
			portfolio := v1.Group("/portfolio")
			{
				portfolio.GET("/summary", r.portfolioController.Summary)
				portfolio.POST("/refresh", r.portfolioController.Refresh)

				assets := portfolio.Group("/assets")
				{
					assets.GET("", r.portfolioController.List)
					assets.POST("", r.portfolioController.Create)
					assets.GET("/:id", r.portfolioController.Get)
					assets.PATCH("/:id", r.portfolioController.Update)
					assets.DELETE("/:id", r.portfolioController.Delete)
					assets.PUT("/:id/price", r.portfolioController.UpdatePrice)
				}
			}
		}

		if r.categorizationController != nil {
			categorize := v1.Group("/categorize")
			{
				if r.categorizeRateLimiter != nil {
					categorize.POST("", r.categorizeRateLimiter.Middleware(), r.categorizationController.Categorize)
				} else {
					categorize.POST("", r.categorizationController.Categorize)
				}
				categorize.POST("/cache/evict", r.categorizationController.EvictExpired)
			}
		}

		if r.settingsController != nil {
			v1.GET("/settings", r.settingsController.Get)
			v1.PATCH("/settings", r.settingsController.Update)
			v1.POST("/settings/reset", r.settingsController.Reset)
			v1.GET("/profile", r.settingsController.GetProfile)
			v1.PATCH("/profile", r.settingsController.UpdateProfile)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
