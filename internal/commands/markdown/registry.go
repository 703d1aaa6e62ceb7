package markdowncmd

import (
	"errors"

	"github.com/goliatone/go-ccpm/internal/commands"
	"github.com/goliatone/go-ccpm/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the Markdown command handlers produced by RegisterMarkdownCommands.
type HandlerSet struct {
	Strip *StripFrontmatterHandler
	Check *CheckFrontmatterHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	stripHandlerOpts []commands.HandlerOption[StripFrontmatterCommand]
	checkHandlerOpts []commands.HandlerOption[CheckFrontmatterCommand]
}

// WithStripHandlerOptions forwards options to the StripFrontmatterHandler constructor.
func WithStripHandlerOptions(opts ...commands.HandlerOption[StripFrontmatterCommand]) Option {
	return func(cfg *options) {
		cfg.stripHandlerOpts = append(cfg.stripHandlerOpts, opts...)
	}
}

// WithCheckHandlerOptions forwards options to the CheckFrontmatterHandler constructor.
func WithCheckHandlerOptions(opts ...commands.HandlerOption[CheckFrontmatterCommand]) Option {
	return func(cfg *options) {
		cfg.checkHandlerOpts = append(cfg.checkHandlerOpts, opts...)
	}
}

// RegisterMarkdownCommands builds Markdown command handlers and registers them with the provided
// registry. The constructed handlers are returned so callers can wire a dispatcher as well.
func RegisterMarkdownCommands(reg CommandRegistry, service interfaces.FrontmatterService, provider interfaces.LoggerProvider, opts ...Option) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("markdown command registration: service is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "markdown")

	strip := NewStripFrontmatterHandler(service, logger, cfg.stripHandlerOpts...)
	check := NewCheckFrontmatterHandler(service, logger, cfg.checkHandlerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(strip); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(check); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{
		Strip: strip,
		Check: check,
	}, nil
}
