package ccpm

import (
	"github.com/goliatone/go-ccpm/internal/markdown"
	"github.com/goliatone/go-ccpm/internal/runtimeconfig"
	"github.com/goliatone/go-ccpm/internal/thresholds"
)

var (
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
	ErrCommandTimeoutInvalid   = runtimeconfig.ErrCommandTimeoutInvalid
	ErrConfigFileInvalid       = runtimeconfig.ErrConfigFileInvalid
	ErrThresholdInvalid        = thresholds.ErrThresholdInvalid
	ErrInvalidEncoding         = markdown.ErrInvalidEncoding
)

type (
	Config            = runtimeconfig.Config
	ThresholdsConfig  = thresholds.Config
	FrontmatterConfig = runtimeconfig.FrontmatterConfig
	MarkdownConfig    = runtimeconfig.MarkdownConfig
	LoggingConfig     = runtimeconfig.LoggingConfig
	CommandsConfig    = runtimeconfig.CommandsConfig
)

// DefaultConfig returns the built-in thresholds with console logging at warn.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig layers the YAML file at path (optional) and the CCPM_*
// environment variables read through lookup over DefaultConfig.
func LoadConfig(path string, lookup func(string) (string, bool)) (Config, error) {
	return runtimeconfig.Load(path, lookup)
}

// Int returns a pointer to v for threshold overrides.
func Int(v int) *int {
	return thresholds.Int(v)
}
