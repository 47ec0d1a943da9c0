// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"
)

// ClassificationSource tells where a categorization result came from.
type ClassificationSource string

const (
	ClassificationSourceCache ClassificationSource = "cache"
	ClassificationSourceAI    ClassificationSource = "ai"
	ClassificationSourceRules ClassificationSource = "rules"
)

// CategoryCacheEntry is a prior classification remembered for a description.
type CategoryCacheEntry struct {
	Category   Category
	Confidence float64
	Timestamp  time.Time
}

// IsFresh reports whether the entry is younger than ttl at now.
func (e CategoryCacheEntry) IsFresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.Timestamp) < ttl
}

// NormalizeDescription returns the cache key for a description.
func NormalizeDescription(description string) string {
	return strings.ToLower(strings.TrimSpace(description))
}
