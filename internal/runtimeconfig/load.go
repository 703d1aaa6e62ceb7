package runtimeconfig

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-ccpm/internal/thresholds"
	"github.com/goliatone/go-ccpm/internal/validation"
)

// EnvLogLevel overrides Logging.Level.
const EnvLogLevel = "CCPM_LOG_LEVEL"

// ErrConfigFileInvalid wraps failures reading or decoding a config file.
var ErrConfigFileInvalid = errors.New("ccpm config: config file is invalid")

//go:embed schema.json
var schemaSource []byte

var documentSchema = validation.MustCompile("ccpm-config.json", schemaSource)

// LoadFile applies the YAML document at path on top of base. The document is
// checked against the embedded schema before decoding.
func LoadFile(base Config, path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("%w: %s: %v", ErrConfigFileInvalid, path, err)
	}
	return Decode(base, data)
}

// Decode applies a YAML document on top of base. Keys absent from the
// document keep their base value.
func Decode(base Config, data []byte) (Config, error) {
	if err := documentSchema.ValidateYAML(data); err != nil {
		return base, fmt.Errorf("%w: %w", ErrConfigFileInvalid, err)
	}

	cfg := base
	cfg.Thresholds = base.Thresholds.Merge(thresholds.Config{})

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("%w: %v", ErrConfigFileInvalid, err)
	}
	return cfg, nil
}

// ApplyEnv applies CCPM_* environment overrides read through lookup
// (os.LookupEnv in production).
func ApplyEnv(base Config, lookup func(string) (string, bool)) (Config, error) {
	if lookup == nil {
		return base, nil
	}

	overrides, err := thresholds.FromEnv(lookup)
	if err != nil {
		return base, err
	}

	cfg := base
	cfg.Thresholds = base.Thresholds.Merge(overrides)
	if level, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(level) != "" {
		cfg.Logging.Level = strings.TrimSpace(level)
	}
	return cfg, nil
}

// Load builds the effective configuration: defaults, then the optional file
// at path, then environment overrides. The result is validated.
func Load(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	if strings.TrimSpace(path) != "" {
		loaded, err := LoadFile(cfg, path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	cfg, err := ApplyEnv(cfg, lookup)
	if err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
