// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/finance-tracker/smartfinance/internal/application/adapter"
	"github.com/finance-tracker/smartfinance/internal/domain/entity"
	domainerror "github.com/finance-tracker/smartfinance/internal/domain/error"
)

// fallbackConfidence is reported when no keyword matches.
const fallbackConfidence = 0.6

// CategoryRule maps keywords to a category. The first rule with a keyword
// contained in the description wins.
type CategoryRule struct {
	Category   entity.Category `yaml:"category"`
	Confidence float64         `yaml:"confidence"`
	Keywords   []string        `yaml:"keywords"`
}

// rulesFile is the YAML layout of a rules override.
type rulesFile struct {
	Rules []CategoryRule `yaml:"rules"`
}

// DefaultRules returns the built-in keyword table.
func DefaultRules() []CategoryRule {
	return []CategoryRule{
		{Category: entity.CategoryGroceries, Confidence: 0.92, Keywords: []string{"grocery", "supermarket", "walmart", "target"}},
		{Category: entity.CategoryDining, Confidence: 0.88, Keywords: []string{"restaurant", "cafe", "starbucks", "mcdonald", "pizza", "food"}},
		{Category: entity.CategoryTransport, Confidence: 0.9, Keywords: []string{"uber", "lyft", "taxi", "gas", "parking", "metro"}},
		{Category: entity.CategoryShopping, Confidence: 0.85, Keywords: []string{"amazon", "shop", "store", "mall"}},
		{Category: entity.CategoryBills, Confidence: 0.93, Keywords: []string{"netflix", "spotify", "electric", "water", "internet", "phone"}},
		{Category: entity.CategoryEntertainment, Confidence: 0.87, Keywords: []string{"movie", "concert", "game", "entertainment"}},
		{Category: entity.CategoryHealth, Confidence: 0.89, Keywords: []string{"doctor", "pharmacy", "hospital", "clinic", "gym", "fitness"}},
		{Category: entity.CategoryEducation, Confidence: 0.91, Keywords: []string{"school", "university", "course", "book"}},
		{Category: entity.CategoryTravel, Confidence: 0.94, Keywords: []string{"flight", "hotel", "airbnb", "travel"}},
		{Category: entity.CategoryIncome, Confidence: 0.95, Keywords: []string{"salary", "paycheck", "income", "deposit"}},
		{Category: entity.CategoryInvestment, Confidence: 0.9, Keywords: []string{"stock", "crypto", "investment", "dividend"}},
	}
}

// LoadRules reads a YAML rules file.
func LoadRules(path string) ([]CategoryRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}
	return ParseRules(data)
}

// ParseRules decodes and validates a YAML rules document.
func ParseRules(data []byte) ([]CategoryRule, error) {
	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, domainerror.NewCategorizationError(domainerror.ErrCodeInvalidRules, false, fmt.Errorf("parsing rules: %w", err))
	}
	if len(file.Rules) == 0 {
		return nil, domainerror.NewCategorizationError(domainerror.ErrCodeInvalidRules, false, fmt.Errorf("%w: no rules defined", domainerror.ErrInvalidRules))
	}

	for i, rule := range file.Rules {
		category, ok := entity.ParseCategory(string(rule.Category))
		if !ok {
			return nil, domainerror.NewCategorizationError(domainerror.ErrCodeInvalidRules, false,
				fmt.Errorf("%w: rule %d has unknown category %q", domainerror.ErrInvalidRules, i, rule.Category))
		}
		if rule.Confidence < 0 || rule.Confidence > 1 {
			return nil, domainerror.NewCategorizationError(domainerror.ErrCodeInvalidRules, false,
				fmt.Errorf("%w: rule %d confidence must be within [0,1]", domainerror.ErrInvalidRules, i))
		}
		if len(rule.Keywords) == 0 {
			return nil, domainerror.NewCategorizationError(domainerror.ErrCodeInvalidRules, false,
				fmt.Errorf("%w: rule %d has no keywords", domainerror.ErrInvalidRules, i))
		}

		keywords := make([]string, 0, len(rule.Keywords))
		for _, k := range rule.Keywords {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				keywords = append(keywords, k)
			}
		}
		file.Rules[i] = CategoryRule{Category: category, Confidence: rule.Confidence, Keywords: keywords}
	}

	return file.Rules, nil
}

// RulesCategorizer classifies descriptions by keyword. It never fails.
type RulesCategorizer struct {
	rules []CategoryRule
}

var _ adapter.Categorizer = (*RulesCategorizer)(nil)

// NewRulesCategorizer creates a categorizer over rules, or over the default
// table when rules is empty.
func NewRulesCategorizer(rules []CategoryRule) *RulesCategorizer {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &RulesCategorizer{rules: rules}
}

// Classify returns the first matching rule's category, or other.
func (c *RulesCategorizer) Classify(_ context.Context, description string) (*adapter.Classification, error) {
	lower := strings.ToLower(description)

	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return &adapter.Classification{Category: rule.Category, Confidence: rule.Confidence}, nil
			}
		}
	}

	return &adapter.Classification{Category: entity.CategoryOther, Confidence: fallbackConfidence}, nil
}

// Name identifies the categorizer in logs.
func (c *RulesCategorizer) Name() string {
	return "rules"
}
