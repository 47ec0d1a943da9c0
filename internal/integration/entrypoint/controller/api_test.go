package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/smartfinance/config"
	"github.com/finance-tracker/smartfinance/internal/domain/entity"
	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
	"github.com/finance-tracker/smartfinance/internal/infra/dependency"
	"github.com/finance-tracker/smartfinance/internal/integration/email"
	"github.com/finance-tracker/smartfinance/internal/mock"
)

var featureNow = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

// TestFeatures runs all BDD feature tests.
func TestFeatures(t *testing.T) {
	opts := godog.Options{
		Format:      "pretty",
		Paths:       []string{"features"},
		Output:      colors.Colored(os.Stdout),
		Concurrency: 1,
		Randomize:   0,
		Strict:      true,
		TestingT:    t,
	}

	// Allow tag filtering via environment variable
	if tags := os.Getenv("GODOG_TAGS"); tags != "" {
		opts.Tags = tags
	}

	suite := godog.TestSuite{
		Name:                "smartfinance-api",
		ScenarioInitializer: InitializeScenario,
		Options:             &opts,
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

// stubPriceFeed answers quotes from a fixed table.
type stubPriceFeed struct {
	mu     sync.Mutex
	prices map[string]decimal.Decimal
}

func (f *stubPriceFeed) FetchPrice(_ context.Context, symbol string, _ entity.AssetType) (*entity.PriceQuote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	price, ok := f.prices[symbol]
	if !ok {
		return nil, domainerror.NewPriceFeedError(
			domainerror.ErrCodePriceUnavailable,
			symbol,
			"no quote available",
			false,
			domainerror.ErrPriceUnavailable,
		)
	}
	return &entity.PriceQuote{Symbol: symbol, Price: price, FetchedAt: featureNow}, nil
}

type apiResponse struct {
	status int
	body   any
}

// testContext holds the state of one scenario.
type testContext struct {
	engine   *gin.Engine
	injector *dependency.Injector
	clock    *mock.Time
	sender   *email.MockEmailSender
	feed     *stubPriceFeed
	response *apiResponse
	saved    map[string]string
}

// InitializeScenario registers the step definitions for one scenario.
func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &testContext{}

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		return ctx, tc.before(ctx)
	})
	ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		if tc.injector != nil {
			_ = tc.injector.Close()
		}
		return ctx, nil
	})

	ctx.Step(`^the API server is running$`, tc.theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, tc.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, tc.iSendARequestToWithBody)
	ctx.Step(`^I remember the response field "([^"]*)" as "([^"]*)"$`, tc.iRememberTheResponseFieldAs)
	ctx.Step(`^the market price of "([^"]*)" is "([^"]*)"$`, tc.theMarketPriceOfIs)
	ctx.Step(`^the response status should be (\d+)$`, tc.theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, tc.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, tc.theResponseFieldShouldExist)
	ctx.Step(`^the response list "([^"]*)" should have (\d+) items?$`, tc.theResponseListShouldHaveItems)
	ctx.Step(`^(\d+) budget alert emails? should have been sent$`, tc.budgetAlertEmailsShouldHaveBeenSent)
}

func (t *testContext) before(ctx context.Context) error {
	t.clock = mock.NewTime(featureNow)
	t.sender = email.NewMockEmailSender()
	t.feed = &stubPriceFeed{prices: map[string]decimal.Decimal{}}
	t.response = nil
	t.saved = map[string]string{}

	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		Storage: config.StorageConfig{
			Driver:  config.StorageDriverMemory,
			Timeout: time.Second,
		},
		Categorization: config.CategorizationConfig{
			Provider: config.AIProviderRules,
			Timeout:  time.Second,
			CacheTTL: 30 * 24 * time.Hour,
		},
		Policy: config.PolicyConfig{
			BudgetAlertThreshold: 80,
			GoalOnTrackTolerance: 0.8,
		},
		Email: config.EmailConfig{
			AlertTo: "alerts@example.com",
			Enabled: true,
		},
	}

	injector, err := dependency.NewInjector(ctx, cfg,
		dependency.WithClock(t.clock),
		dependency.WithEmailSender(t.sender),
		dependency.WithPriceFeed(t.feed),
	)
	if err != nil {
		return err
	}

	t.injector = injector
	t.engine = injector.Router.Setup(cfg.Server.Environment)
	return nil
}

func (t *testContext) theAPIServerIsRunning() error {
	if t.engine == nil {
		return errors.New("test server is not running")
	}
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	return t.executeRequest(method, path, []byte(t.replacePlaceholders(body.Content)))
}

func (t *testContext) iRememberTheResponseFieldAs(field, name string) error {
	value, err := t.field(field)
	if err != nil {
		return err
	}
	t.saved[name] = fmt.Sprintf("%v", value)
	return nil
}

func (t *testContext) theMarketPriceOfIs(symbol, price string) error {
	d, err := decimal.NewFromString(price)
	if err != nil {
		return err
	}
	t.feed.mu.Lock()
	defer t.feed.mu.Unlock()
	t.feed.prices[symbol] = d
	return nil
}

// replacePlaceholders substitutes {name} with remembered values.
func (t *testContext) replacePlaceholders(content string) string {
	for name, value := range t.saved {
		content = strings.ReplaceAll(content, "{"+name+"}", value)
	}
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	path = t.replacePlaceholders(path)

	var req *http.Request
	if payload != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	t.engine.ServeHTTP(rec, req)

	t.response = &apiResponse{status: rec.Code}
	if rec.Body.Len() > 0 {
		var body any
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			return fmt.Errorf("response is not JSON: %w (body: %s)", err, rec.Body.String())
		}
		t.response.body = body
	}
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	value, err := t.field(field)
	if err != nil {
		return err
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.field(field)
	return err
}

func (t *testContext) theResponseListShouldHaveItems(field string, count int) error {
	value, err := t.field(field)
	if err != nil {
		return err
	}
	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, value)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

func (t *testContext) budgetAlertEmailsShouldHaveBeenSent(count int) error {
	if sent := len(t.sender.Sent()); sent != count {
		return fmt.Errorf("expected %d budget alert emails, got %d", count, sent)
	}
	return nil
}

// field resolves a dotted path such as "budgets.0.status" in the response body.
func (t *testContext) field(path string) (any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}

	current := t.response.body
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field '%s' not found in response: %v", path, t.response.body)
			}
			current = value
		case []any:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(node) {
				return nil, fmt.Errorf("index '%s' out of range in response: %v", part, t.response.body)
			}
			current = node[i]
		default:
			return nil, fmt.Errorf("field '%s' not found in response: %v", path, t.response.body)
		}
	}
	return current, nil
}
