package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-ccpm/internal/markdown"
	"github.com/goliatone/go-ccpm/internal/thresholds"
)

var ErrLoggingProviderRequired = errors.New("ccpm config: logging provider is required")
var ErrLoggingProviderUnknown = errors.New("ccpm config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("ccpm config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("ccpm config: logging format is invalid")

// ErrCommandTimeoutInvalid rejects negative command timeouts.
var ErrCommandTimeoutInvalid = errors.New("ccpm config: command timeout must be zero or positive")

// Config aggregates the settings consumed by the validator, the frontmatter
// stripper, the command handlers and the CLI.
type Config struct {
	Thresholds  thresholds.Config `yaml:"thresholds"`
	Frontmatter FrontmatterConfig `yaml:"frontmatter"`
	Markdown    MarkdownConfig    `yaml:"markdown"`
	Logging     LoggingConfig     `yaml:"logging"`
	Commands    CommandsConfig    `yaml:"commands"`
}

// FrontmatterConfig controls frontmatter stripping.
type FrontmatterConfig struct {
	// DefaultContent is written when a stripped body is empty.
	DefaultContent string `yaml:"default_content"`
}

// MarkdownConfig mirrors interfaces.ParseOptions for previews.
type MarkdownConfig struct {
	Extensions []string `yaml:"extensions"`
	HardWraps  bool     `yaml:"hard_wraps"`
	SafeMode   bool     `yaml:"safe_mode"`
}

// LoggingConfig selects and tunes the logger provider.
type LoggingConfig struct {
	Provider  string   `yaml:"provider"`
	Level     string   `yaml:"level"`
	Format    string   `yaml:"format"`
	AddSource bool     `yaml:"add_source"`
	Focus     []string `yaml:"focus"`
}

// CommandsConfig tunes the command handlers. A zero Timeout disables the
// per-command deadline.
type CommandsConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultConfig returns the settings used when no file or environment
// overrides are present.
func DefaultConfig() Config {
	return Config{
		Thresholds: thresholds.DefaultConfig(),
		Frontmatter: FrontmatterConfig{
			DefaultContent: markdown.DefaultPendingContent,
		},
		Markdown: MarkdownConfig{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "warn",
			Format:   "",
		},
		Commands: CommandsConfig{
			Timeout: 30 * time.Second,
		},
	}
}

// Validate performs consistency checks.
func (cfg Config) Validate() error {
	if err := cfg.Thresholds.Validate(); err != nil {
		return err
	}

	provider := normalizeProvider(cfg.Logging.Provider)
	if provider == "" {
		return ErrLoggingProviderRequired
	}
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}

	if cfg.Commands.Timeout < 0 {
		return fmt.Errorf("%w: %s", ErrCommandTimeoutInvalid, cfg.Commands.Timeout)
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
