// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finance-tracker/smartfinance/config"
	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	"github.com/finance-tracker/smartfinance/internal/application/usecase/budget"
	"github.com/finance-tracker/smartfinance/internal/application/usecase/categorization"
	"github.com/finance-tracker/smartfinance/internal/application/usecase/goal"
	"github.com/finance-tracker/smartfinance/internal/application/usecase/portfolio"
	"github.com/finance-tracker/smartfinance/internal/application/usecase/settings"
	"github.com/finance-tracker/smartfinance/internal/application/usecase/transaction"
	"github.com/finance-tracker/smartfinance/internal/infra/db"
	"github.com/finance-tracker/smartfinance/internal/infra/server/router"
	"github.com/finance-tracker/smartfinance/internal/integration/adapters"
	"github.com/finance-tracker/smartfinance/internal/integration/email"
	"github.com/finance-tracker/smartfinance/internal/integration/email/templates"
	"github.com/finance-tracker/smartfinance/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/smartfinance/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/smartfinance/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config         *config.Config
	Database       *db.Database
	Clock          adapter.Clock
	Ledger         *transaction.Ledger
	Budgets        *budget.Tracker
	Goals          *goal.Tracker
	Portfolio      *portfolio.Tracker
	Cache          *categorization.Cache
	Categorization *categorization.Service
	Settings       *settings.Store
	PriceFeed      adapter.PriceFeed
	Router         *router.Router
}

// options holds collaborators that replace the configured ones.
type options struct {
	clock       adapter.Clock
	emailSender adapter.EmailSender
	priceFeed   adapter.PriceFeed
	remote      adapter.Categorizer
}

// Option overrides a collaborator the injector would otherwise build from config.
type Option func(*options)

// WithClock replaces the system clock.
func WithClock(clock adapter.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// WithEmailSender replaces the Resend client used for budget alerts.
func WithEmailSender(sender adapter.EmailSender) Option {
	return func(o *options) { o.emailSender = sender }
}

// WithPriceFeed replaces the EODHD price feed.
func WithPriceFeed(feed adapter.PriceFeed) Option {
	return func(o *options) { o.priceFeed = feed }
}

// WithRemoteCategorizer replaces the configured AI categorizer.
func WithRemoteCategorizer(remote adapter.Categorizer) Option {
	return func(o *options) { o.remote = remote }
}

// NewInjector opens the storage backend, wires every component and loads
// each one from storage before returning.
func NewInjector(ctx context.Context, cfg *config.Config, opts ...Option) (*Injector, error) {
	o := options{clock: adapter.SystemClock()}
	for _, opt := range opts {
		opt(&o)
	}

	database, err := db.Open(&cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	// Create repositories
	storage := persistence.NewJSONStorage(database.Store(), cfg.Storage.Timeout)
	transactionRepo := persistence.NewTransactionRepository(storage)
	budgetRepo := persistence.NewBudgetRepository(storage)
	goalRepo := persistence.NewGoalRepository(storage)
	portfolioRepo := persistence.NewPortfolioRepository(storage)
	cacheRepo := persistence.NewCategoryCacheRepository(storage)
	settingsRepo := persistence.NewSettingsRepository(storage)

	// Settings come first, the other components read their toggles.
	settingsStore := settings.NewStore(settingsRepo, o.clock)
	settingsStore.Load(ctx)

	ledger := transaction.NewLedger(transactionRepo, o.clock)
	ledger.Load(ctx)

	alerts, err := newBudgetAlerts(cfg, o.emailSender, settingsStore)
	if err != nil {
		_ = database.Close()
		return nil, err
	}
	budgets := budget.NewTracker(budgetRepo, ledger, o.clock, alerts, cfg.Policy.BudgetAlertThreshold)
	budgets.Load(ctx)

	goals := goal.NewTracker(goalRepo, o.clock, cfg.Policy.GoalOnTrackTolerance)
	goals.Load(ctx)

	assets := portfolio.NewTracker(portfolioRepo, o.clock)
	assets.Load(ctx)

	cache := categorization.NewCache(cacheRepo, o.clock, cfg.Categorization.CacheTTL)
	cache.Load(ctx)

	rules, err := newRulesCategorizer(cfg.Categorization.RulesPath)
	if err != nil {
		_ = database.Close()
		return nil, err
	}

	remote := o.remote
	if remote == nil {
		remote = newRemoteCategorizer(&cfg.Categorization)
	}

	service := categorization.NewService(categorization.ServiceConfig{
		Cache:   cache,
		Remote:  remote,
		Rules:   rules,
		Toggle:  settingsStore,
		Timeout: cfg.Categorization.Timeout,
	})

	feed := o.priceFeed
	if feed == nil && cfg.PriceFeed.APIKey != "" {
		feed = adapters.NewEODHDPriceFeed(cfg.PriceFeed.APIKey, cfg.PriceFeed.BaseURL, cfg.PriceFeed.Timeout)
	}

	// Create controllers
	healthController := controller.NewHealthController(database.HealthCheck, database.Driver())
	transactionController := controller.NewTransactionController(ledger, service, settingsStore, o.clock)
	budgetController := controller.NewBudgetController(budgets)
	goalController := controller.NewGoalController(goals)
	portfolioController := controller.NewPortfolioController(assets, feed)
	categorizationController := controller.NewCategorizationController(service, cache)
	settingsController := controller.NewSettingsController(settingsStore)

	// Use higher rate limits for test environments to prevent flaky tests
	var categorizeRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		categorizeRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute, o.clock)
	} else {
		categorizeRateLimiter = middleware.NewRateLimiter(o.clock)
	}

	// Create router
	r := router.NewRouter(
		healthController,
		transactionController,
		budgetController,
		goalController,
		portfolioController,
		categorizationController,
		settingsController,
		categorizeRateLimiter,
	)

	slog.Info("Components loaded",
		"storage_driver", database.Driver(),
		"transactions", len(ledger.All()),
		"budgets", len(budgets.All()),
		"goals", len(goals.All()),
		"assets", len(assets.All()),
		"cached_categories", cache.Len(),
		"categorizer", categorizerName(remote),
	)

	return &Injector{
		Config:         cfg,
		Database:       database,
		Clock:          o.clock,
		Ledger:         ledger,
		Budgets:        budgets,
		Goals:          goals,
		Portfolio:      assets,
		Cache:          cache,
		Categorization: service,
		Settings:       settingsStore,
		PriceFeed:      feed,
		Router:         r,
	}, nil
}

// Close releases the storage connection.
func (i *Injector) Close() error {
	return i.Database.Close()
}

// newBudgetAlerts returns the e-mail notifier, or nil when alerts cannot be
// delivered.
func newBudgetAlerts(cfg *config.Config, sender adapter.EmailSender, toggle email.AlertToggle) (adapter.BudgetAlertSender, error) {
	if !cfg.Email.Enabled || cfg.Email.AlertTo == "" {
		return nil, nil
	}
	if sender == nil {
		if cfg.Email.ResendAPIKey == "" {
			slog.Warn("Budget alert emails disabled, RESEND_API_KEY is not set")
			return nil, nil
		}
		sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	return email.NewBudgetAlertNotifier(sender, renderer, cfg.Email.AlertTo, toggle), nil
}

// newRulesCategorizer loads the keyword rules, from path when one is given.
func newRulesCategorizer(path string) (*adapters.RulesCategorizer, error) {
	if path == "" {
		return adapters.NewRulesCategorizer(adapters.DefaultRules()), nil
	}

	rules, err := adapters.LoadRules(path)
	if err != nil {
		return nil, err
	}
	slog.Info("Category rules loaded", "path", path, "rules", len(rules))
	return adapters.NewRulesCategorizer(rules), nil
}

// newRemoteCategorizer builds the configured AI categorizer. It returns nil
// when the provider is rules or its credentials are missing.
func newRemoteCategorizer(cfg *config.CategorizationConfig) adapter.Categorizer {
	switch cfg.Provider {
	case config.AIProviderGemini:
		gemini := adapters.NewGeminiCategorizer(cfg.GeminiAPIKey, cfg.GeminiModel)
		if !gemini.IsAvailable() {
			slog.Warn("Gemini categorizer not configured, using keyword rules only")
			return nil
		}
		return gemini
	case config.AIProviderOpenAI:
		openai, err := adapters.NewOpenAICategorizer(cfg.OpenAIAPIKey, cfg.OpenAIModel, "")
		if err != nil {
			slog.Warn("OpenAI categorizer not configured, using keyword rules only", "error", err)
			return nil
		}
		return openai
	case config.AIProviderRules:
		return nil
	default:
		slog.Warn("Unknown AI provider, using keyword rules only", "provider", cfg.Provider)
		return nil
	}
}

func categorizerName(c adapter.Categorizer) string {
	if c == nil {
		return "rules"
	}
	return c.Name()
}
