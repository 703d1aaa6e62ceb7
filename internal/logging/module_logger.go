package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-ccpm/pkg/interfaces"
)

const (
	rootModule     = "ccpm"
	contentModule  = "ccpm.content"
	markdownModule = "ccpm.markdown"
	configModule   = "ccpm.config"
)

const (
	fieldDocumentPath    = "path"
	fieldDocumentContext = "context"
	fieldDocumentAction  = "action"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as a structured field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ContentLogger returns the logger namespace reserved for body validation.
func ContentLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, contentModule)
}

// MarkdownLogger returns the logger namespace reserved for frontmatter and
// rendering work.
func MarkdownLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markdownModule)
}

// ConfigLogger returns the logger namespace used while loading configuration.
func ConfigLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, configModule)
}

// WithDocumentContext enriches logger with the body file path, context tag and
// action being performed. Empty values are ignored.
func WithDocumentContext(logger interfaces.Logger, path, contextTag, action string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldDocumentPath] = trimmed
	}
	if trimmed := strings.TrimSpace(contextTag); trimmed != "" {
		fields[fieldDocumentContext] = trimmed
	}
	if trimmed := strings.TrimSpace(action); trimmed != "" {
		fields[fieldDocumentAction] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
