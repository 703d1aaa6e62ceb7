package di

import (
	"io"
	"os"
	"strings"

	"github.com/goliatone/go-ccpm/internal/commands"
	contentcmd "github.com/goliatone/go-ccpm/internal/commands/content"
	markdowncmd "github.com/goliatone/go-ccpm/internal/commands/markdown"
	"github.com/goliatone/go-ccpm/internal/content"
	"github.com/goliatone/go-ccpm/internal/logging"
	"github.com/goliatone/go-ccpm/internal/markdown"
	"github.com/goliatone/go-ccpm/internal/placeholder"
	"github.com/goliatone/go-ccpm/internal/runtimeconfig"
	"github.com/goliatone/go-ccpm/internal/thresholds"
	"github.com/goliatone/go-ccpm/pkg/interfaces"
)

// CommandRegistry receives the command handlers built by the container.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// Container wires the validator, the frontmatter service and their command
// handlers from a single runtime configuration.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	logWriter      io.Writer
	diagnostics    io.Writer
	parser         interfaces.MarkdownParser
	detector       *placeholder.Detector
	registry       CommandRegistry

	resolver    thresholds.Resolver
	validator   *content.Validator
	markdownSvc *markdown.Service

	contentCommands  *contentcmd.HandlerSet
	markdownCommands *markdowncmd.HandlerSet
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider selected by cfg.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.loggerProvider = provider
		}
	}
}

// WithLogWriter redirects console log output. Ignored when a provider is
// injected or the gologger provider is configured.
func WithLogWriter(w io.Writer) Option {
	return func(c *Container) {
		if w != nil {
			c.logWriter = w
		}
	}
}

// WithDiagnostics sets the writer receiving the validator's user-facing
// messages. Defaults to stderr.
func WithDiagnostics(w io.Writer) Option {
	return func(c *Container) {
		if w != nil {
			c.diagnostics = w
		}
	}
}

// WithParser overrides the goldmark parser used for previews.
func WithParser(parser interfaces.MarkdownParser) Option {
	return func(c *Container) {
		if parser != nil {
			c.parser = parser
		}
	}
}

// WithDetector overrides the placeholder catalogue.
func WithDetector(detector *placeholder.Detector) Option {
	return func(c *Container) {
		if detector != nil {
			c.detector = detector
		}
	}
}

// WithCommandRegistry registers every command handler with reg.
func WithCommandRegistry(reg CommandRegistry) Option {
	return func(c *Container) {
		c.registry = reg
	}
}

// NewContainer validates cfg and builds the module services.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		Config:      cfg,
		logWriter:   os.Stderr,
		diagnostics: os.Stderr,
		detector:    placeholder.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	c.configureServices()
	if err := c.configureCommands(); err != nil {
		return nil, err
	}

	logging.ModuleLogger(c.loggerProvider, "ccpm").Debug("container.configured",
		"logging_provider", normalizedProvider(cfg.Logging.Provider),
		"command_timeout", cfg.Commands.Timeout.String(),
	)
	return c, nil
}

func (c *Container) configureServices() {
	c.resolver = thresholds.NewResolver(c.Config.Thresholds)

	c.validator = content.NewValidator(
		content.WithThresholds(c.resolver),
		content.WithDetector(c.detector),
		content.WithDiagnostics(c.diagnostics),
		content.WithLogger(logging.ContentLogger(c.loggerProvider)),
	)

	serviceOpts := []markdown.ServiceOption{
		markdown.WithLogger(logging.MarkdownLogger(c.loggerProvider)),
	}
	if c.parser != nil {
		serviceOpts = append(serviceOpts, markdown.WithParser(c.parser))
	}
	c.markdownSvc = markdown.NewService(markdownServiceConfig(c.Config), serviceOpts...)
}

func (c *Container) configureCommands() error {
	timeout := c.Config.Commands.Timeout

	contentSet, err := contentcmd.RegisterContentCommands(c.registry, c.validator, c.loggerProvider,
		contentcmd.WithValidateHandlerOptions(commands.WithTimeout[contentcmd.ValidateBodyCommand](timeout)),
	)
	if err != nil {
		return err
	}

	markdownSet, err := markdowncmd.RegisterMarkdownCommands(c.registry, c.markdownSvc, c.loggerProvider,
		markdowncmd.WithStripHandlerOptions(commands.WithTimeout[markdowncmd.StripFrontmatterCommand](timeout)),
		markdowncmd.WithCheckHandlerOptions(commands.WithTimeout[markdowncmd.CheckFrontmatterCommand](timeout)),
	)
	if err != nil {
		return err
	}

	c.contentCommands = contentSet
	c.markdownCommands = markdownSet
	return nil
}

// LoggerProvider returns the provider every module logger is drawn from.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Thresholds returns the resolver built from the configured overrides.
func (c *Container) Thresholds() thresholds.Resolver {
	return c.resolver
}

// Validator returns the content validator.
func (c *Container) Validator() *content.Validator {
	return c.validator
}

// MarkdownService returns the frontmatter service.
func (c *Container) MarkdownService() *markdown.Service {
	return c.markdownSvc
}

// ContentCommands returns the content command handlers.
func (c *Container) ContentCommands() *contentcmd.HandlerSet {
	return c.contentCommands
}

// MarkdownCommands returns the markdown command handlers.
func (c *Container) MarkdownCommands() *markdowncmd.HandlerSet {
	return c.markdownCommands
}

func markdownServiceConfig(cfg runtimeconfig.Config) markdown.Config {
	return markdown.Config{
		DefaultContent: cfg.Frontmatter.DefaultContent,
		Parser: interfaces.ParseOptions{
			Extensions: append([]string(nil), cfg.Markdown.Extensions...),
			HardWraps:  cfg.Markdown.HardWraps,
			SafeMode:   cfg.Markdown.SafeMode,
		},
	}
}

func normalizedProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}
