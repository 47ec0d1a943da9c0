package categorization

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	"github.com/finance-tracker/smartfinance/internal/domain/entity"
	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
)

// DefaultTimeout bounds a single remote classification.
const DefaultTimeout = 15 * time.Second

// AIToggle reports whether remote categorization is switched on.
type AIToggle interface {
	AIEnabled() bool
}

// Result is a category suggestion and where it came from.
type Result struct {
	Category   entity.Category
	Confidence float64
	Source     entity.ClassificationSource
	Fallback   bool // The remote categorizer failed and rules answered
}

// Service answers category suggestions from the cache, a remote categorizer
// and the local rules, in that order.
type Service struct {
	cache   *Cache
	remote  adapter.Categorizer
	rules   adapter.Categorizer
	toggle  AIToggle
	timeout time.Duration
}

// ServiceConfig holds the Service dependencies. Remote and Toggle may be nil.
type ServiceConfig struct {
	Cache   *Cache
	Remote  adapter.Categorizer
	Rules   adapter.Categorizer
	Toggle  AIToggle
	Timeout time.Duration
}

// NewService creates a new Service instance.
func NewService(cfg ServiceConfig) *Service {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{
		cache:   cfg.Cache,
		remote:  cfg.Remote,
		rules:   cfg.Rules,
		toggle:  cfg.Toggle,
		timeout: timeout,
	}
}

// Categorize suggests a category for description. Remote failures are logged
// and answered by the rules with Fallback set; they are never retried.
func (s *Service) Categorize(ctx context.Context, description string) (*Result, error) {
	if strings.TrimSpace(description) == "" {
		return nil, domainerror.NewCategorizationError(
			domainerror.ErrCodeEmptyDescription,
			false,
			domainerror.ErrEmptyDescription,
		)
	}

	if s.toggle != nil && !s.toggle.AIEnabled() {
		return s.classifyWithRules(ctx, description, false)
	}

	if entry, ok := s.cache.Lookup(description); ok {
		return &Result{
			Category:   entry.Category,
			Confidence: entry.Confidence,
			Source:     entity.ClassificationSourceCache,
		}, nil
	}

	if s.remote == nil {
		return s.classifyWithRules(ctx, description, false)
	}

	classification, err := s.classifyRemote(ctx, description)
	if err != nil {
		catErr := domainerror.ClassifyCategorizationError(err)
		slog.Warn("Remote categorization failed, using rules",
			"categorizer", s.remote.Name(),
			"code", catErr.Code,
			"retryable", catErr.Retryable,
			"error", err,
		)
		return s.classifyWithRules(ctx, description, true)
	}

	s.cache.Store(ctx, description, classification.Category, classification.Confidence)

	return &Result{
		Category:   classification.Category,
		Confidence: classification.Confidence,
		Source:     entity.ClassificationSourceAI,
	}, nil
}

func (s *Service) classifyRemote(ctx context.Context, description string) (*adapter.Classification, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	classification, err := s.remote.Classify(ctx, description)
	if err != nil {
		return nil, err
	}
	if !classification.Category.IsValid() {
		return nil, domainerror.NewCategorizationError(
			domainerror.ErrCodeAIParseError,
			true,
			domainerror.ErrUnknownCategory,
		)
	}
	classification.Confidence = clamp(classification.Confidence)
	return classification, nil
}

func (s *Service) classifyWithRules(ctx context.Context, description string, fallback bool) (*Result, error) {
	classification, err := s.rules.Classify(ctx, description)
	if err != nil {
		return nil, err
	}
	return &Result{
		Category:   classification.Category,
		Confidence: classification.Confidence,
		Source:     entity.ClassificationSourceRules,
		Fallback:   fallback,
	}, nil
}

func clamp(confidence float64) float64 {
	switch {
	case confidence < 0:
		return 0
	case confidence > 1:
		return 1
	default:
		return confidence
	}
}
