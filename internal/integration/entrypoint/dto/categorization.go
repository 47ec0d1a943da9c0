package dto

import (
	"github.com/finance-tracker/smartfinance/internal/application/usecase/categorization"
)

// CategorizeRequest represents the request body for a category suggestion.
type CategorizeRequest struct {
	Description string `json:"description"`
}

// CategorizeResponse represents a category suggestion.
type CategorizeResponse struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
	Fallback   bool    `json:"fallback"`
}

// EvictCacheResponse reports the outcome of a cache eviction.
type EvictCacheResponse struct {
	Evicted   int `json:"evicted"`
	Remaining int `json:"remaining"`
}

// ToCategorizeResponse converts a categorization result to a response DTO.
func ToCategorizeResponse(r *categorization.Result) CategorizeResponse {
	return CategorizeResponse{
		Category:   string(r.Category),
		Confidence: r.Confidence,
		Source:     string(r.Source),
		Fallback:   r.Fallback,
	}
}
