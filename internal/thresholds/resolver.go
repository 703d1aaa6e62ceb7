// Package thresholds resolves the minimum number of non-whitespace characters
// a body must carry before it is considered substantive.
package thresholds

import (
	"github.com/goliatone/go-ccpm/internal/contexttag"
)

// Built-in minimums used when no override is configured.
const (
	DefaultEpicMinimum    = 100
	DefaultTaskMinimum    = 50
	DefaultCommentMinimum = 30
	DefaultMinimum        = 50
)

// Resolver maps context tags to minimum content lengths.
type Resolver struct {
	cfg Config
}

// NewResolver builds a resolver over the supplied overrides. A zero Config
// yields the built-in defaults.
func NewResolver(cfg Config) Resolver {
	return Resolver{cfg: cfg.clone()}
}

// Config returns a copy of the overrides backing the resolver.
func (r Resolver) Config() Config {
	return r.cfg.clone()
}

// MinLength returns the threshold for the tag. Categories are checked in a
// fixed order and unknown categories fall through to the default branch.
func (r Resolver) MinLength(tag string) int {
	parsed := contexttag.Parse(tag)
	switch {
	case parsed.Is(contexttag.CategoryEpic):
		return valueOr(r.cfg.Epic, DefaultEpicMinimum)
	case parsed.Is(contexttag.CategoryTask, contexttag.CategoryIssue):
		return valueOr(r.cfg.Task, DefaultTaskMinimum)
	case parsed.Is(
		contexttag.CategoryComment,
		contexttag.CategoryUpdate,
		contexttag.CategoryProgressUpdate,
		contexttag.CategoryCompletion,
	):
		return valueOr(r.cfg.Comment, DefaultCommentMinimum)
	default:
		return valueOr(r.cfg.Default, DefaultMinimum)
	}
}

// MinLength resolves the tag against the built-in defaults.
func MinLength(tag string) int {
	return Resolver{}.MinLength(tag)
}

func valueOr(value *int, fallback int) int {
	if value == nil || *value <= 0 {
		return fallback
	}
	return *value
}
