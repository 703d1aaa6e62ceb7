package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goliatone/go-ccpm"
	"github.com/goliatone/go-ccpm/internal/di"
	"github.com/goliatone/go-ccpm/internal/logging"
	"github.com/goliatone/go-ccpm/pkg/interfaces"
	"github.com/google/uuid"
)

// Options captures configuration for the CLI bootstrap. Empty flag values
// leave the file and environment settings untouched.
type Options struct {
	ConfigPath  string
	LogLevel    string
	LogFormat   string
	LogProvider string

	// Lookup reads environment variables. Defaults to os.LookupEnv.
	Lookup         func(string) (string, bool)
	Diagnostics    io.Writer
	LogWriter      io.Writer
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the ccpm module and the CLI logger.
type Module struct {
	Module *ccpm.Module
	Logger interfaces.Logger
}

// BuildModule loads configuration and constructs the ccpm module.
func BuildModule(opts Options) (*Module, error) {
	lookup := opts.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	cfg, err := ccpm.LoadConfig(strings.TrimSpace(opts.ConfigPath), lookup)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	applyLoggingFlags(&cfg, opts)

	diOpts := []di.Option{
		di.WithDiagnostics(opts.Diagnostics),
		di.WithLogWriter(opts.LogWriter),
	}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := ccpm.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise ccpm module: %w", err)
	}

	logger := logging.ModuleLogger(module.Container().LoggerProvider(), "ccpm.cli")

	return &Module{
		Module: module,
		Logger: logger,
	}, nil
}

// RunContext tags ctx with a run id so every log entry of one invocation
// can be correlated.
func RunContext(ctx context.Context, command string) (context.Context, string) {
	runID := uuid.NewString()
	return logging.ContextWithFields(ctx, map[string]any{
		"run_id":  runID,
		"command": command,
	}), runID
}

func applyLoggingFlags(cfg *ccpm.Config, opts Options) {
	if value := strings.TrimSpace(opts.LogLevel); value != "" {
		cfg.Logging.Level = value
	}
	if value := strings.TrimSpace(opts.LogFormat); value != "" {
		cfg.Logging.Format = value
	}
	if value := strings.TrimSpace(opts.LogProvider); value != "" {
		cfg.Logging.Provider = value
	}
}
