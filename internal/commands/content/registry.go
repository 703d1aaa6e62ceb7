package contentcmd

import (
	"errors"

	"github.com/goliatone/go-ccpm/internal/commands"
	"github.com/goliatone/go-ccpm/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the content command handlers produced by RegisterContentCommands.
type HandlerSet struct {
	Validate *ValidateBodyHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	validateHandlerOpts []commands.HandlerOption[ValidateBodyCommand]
}

// WithValidateHandlerOptions forwards options to the ValidateBodyHandler constructor.
func WithValidateHandlerOptions(opts ...commands.HandlerOption[ValidateBodyCommand]) Option {
	return func(cfg *options) {
		cfg.validateHandlerOpts = append(cfg.validateHandlerOpts, opts...)
	}
}

// RegisterContentCommands builds the content handlers and registers them with reg when
// it is non-nil.
func RegisterContentCommands(reg CommandRegistry, validator interfaces.ContentValidator, provider interfaces.LoggerProvider, opts ...Option) (*HandlerSet, error) {
	if validator == nil {
		return nil, errors.New("content command registration: validator is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "content")
	validate := NewValidateBodyHandler(validator, logger, cfg.validateHandlerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(validate); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{Validate: validate}, nil
}
