package thresholds

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Environment variables consulted by FromEnv.
const (
	EnvEpicMinimum    = "CCPM_MIN_EPIC_CONTENT"
	EnvTaskMinimum    = "CCPM_MIN_TASK_CONTENT"
	EnvCommentMinimum = "CCPM_MIN_COMMENT_CONTENT"
	EnvDefaultMinimum = "CCPM_MIN_DEFAULT_CONTENT"
)

// ErrThresholdInvalid is returned when an override is not a positive integer.
var ErrThresholdInvalid = errors.New("thresholds: minimum content length must be a positive integer")

// Config carries optional per-family overrides. A nil field means the
// built-in default applies.
type Config struct {
	// Epic overrides the minimum for epic bodies.
	Epic *int `yaml:"epic" json:"epic,omitempty"`
	// Task overrides the minimum for task and issue bodies.
	Task *int `yaml:"task" json:"task,omitempty"`
	// Comment overrides the minimum for comments, updates, progress updates and completions.
	Comment *int `yaml:"comment" json:"comment,omitempty"`
	// Default overrides the minimum for every other category.
	Default *int `yaml:"default" json:"default,omitempty"`
}

// DefaultConfig returns a Config with every field set to the built-in value.
func DefaultConfig() Config {
	return Config{
		Epic:    Int(DefaultEpicMinimum),
		Task:    Int(DefaultTaskMinimum),
		Comment: Int(DefaultCommentMinimum),
		Default: Int(DefaultMinimum),
	}
}

// Int returns a pointer to v, handy when building overrides inline.
func Int(v int) *int {
	return &v
}

// Validate ensures every configured override is positive.
func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Epic, positive(c.Epic)),
		validation.Field(&c.Task, positive(c.Task)),
		validation.Field(&c.Comment, positive(c.Comment)),
		validation.Field(&c.Default, positive(c.Default)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrThresholdInvalid, err)
	}
	return nil
}

// positive skips unset overrides; ozzo treats zero as empty, so Required is
// what rejects an explicit 0.
func positive(value *int) validation.Rule {
	return validation.When(value != nil, validation.Required, validation.Min(1))
}

// Merge returns a copy of c with every non-nil field from override applied.
func (c Config) Merge(override Config) Config {
	out := c.clone()
	if override.Epic != nil {
		out.Epic = Int(*override.Epic)
	}
	if override.Task != nil {
		out.Task = Int(*override.Task)
	}
	if override.Comment != nil {
		out.Comment = Int(*override.Comment)
	}
	if override.Default != nil {
		out.Default = Int(*override.Default)
	}
	return out
}

func (c Config) clone() Config {
	var out Config
	if c.Epic != nil {
		out.Epic = Int(*c.Epic)
	}
	if c.Task != nil {
		out.Task = Int(*c.Task)
	}
	if c.Comment != nil {
		out.Comment = Int(*c.Comment)
	}
	if c.Default != nil {
		out.Default = Int(*c.Default)
	}
	return out
}

// FromEnv reads the CCPM_MIN_* variables through lookup (os.LookupEnv in
// production). Unset or blank variables leave the corresponding field nil.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	var cfg Config
	if lookup == nil {
		return cfg, nil
	}

	fields := []struct {
		key    string
		target **int
	}{
		{EnvEpicMinimum, &cfg.Epic},
		{EnvTaskMinimum, &cfg.Task},
		{EnvCommentMinimum, &cfg.Comment},
		{EnvDefaultMinimum, &cfg.Default},
	}

	for _, field := range fields {
		raw, ok := lookup(field.key)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		value, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || value <= 0 {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrThresholdInvalid, field.key, raw)
		}
		*field.target = Int(value)
	}
	return cfg, nil
}
