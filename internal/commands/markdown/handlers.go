package markdowncmd

import (
	"context"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-ccpm/internal/commands"
	"github.com/goliatone/go-ccpm/internal/logging"
	"github.com/goliatone/go-ccpm/pkg/interfaces"
)

const (
	stripOperation = "markdown.strip_frontmatter"
	checkOperation = "markdown.check_frontmatter"
)

var (
	_ command.Commander[StripFrontmatterCommand] = (*StripFrontmatterHandler)(nil)
	_ command.Commander[CheckFrontmatterCommand] = (*CheckFrontmatterHandler)(nil)
)

// StripFrontmatterHandler strips frontmatter via the shared command handler foundation.
type StripFrontmatterHandler struct {
	inner *commands.Handler[StripFrontmatterCommand]
}

// NewStripFrontmatterHandler creates a handler bound to the supplied frontmatter service.
func NewStripFrontmatterHandler(service interfaces.FrontmatterService, logger interfaces.Logger, opts ...commands.HandlerOption[StripFrontmatterCommand]) *StripFrontmatterHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg StripFrontmatterCommand) error {
		return service.Strip(ctx, msg.InputPath, msg.OutputPath, msg.DefaultContent)
	}

	handlerOpts := []commands.HandlerOption[StripFrontmatterCommand]{
		commands.WithLogger[StripFrontmatterCommand](baseLogger),
		commands.WithOperation[StripFrontmatterCommand](stripOperation),
		commands.WithMessageFields(func(msg StripFrontmatterCommand) map[string]any {
			return map[string]any{
				"input_path":  msg.InputPath,
				"output_path": msg.OutputPath,
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[StripFrontmatterCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &StripFrontmatterHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[StripFrontmatterCommand].
func (h *StripFrontmatterHandler) Execute(ctx context.Context, msg StripFrontmatterCommand) error {
	return h.inner.Execute(ctx, msg)
}

// CheckFrontmatterHandler runs the frontmatter presence check via the shared command handler foundation.
type CheckFrontmatterHandler struct {
	inner *commands.Handler[CheckFrontmatterCommand]
}

// NewCheckFrontmatterHandler creates a handler bound to the supplied frontmatter service.
func NewCheckFrontmatterHandler(service interfaces.FrontmatterService, logger interfaces.Logger, opts ...commands.HandlerOption[CheckFrontmatterCommand]) *CheckFrontmatterHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg CheckFrontmatterCommand) error {
		ok, err := service.HasContent(ctx, msg.Path)
		if err != nil {
			return err
		}
		if msg.Result != nil {
			msg.Result.HasContent = ok
		}
		logging.WithFields(baseLogger, map[string]any{
			"path":        msg.Path,
			"has_content": ok,
		}).Debug("markdown.command.check_frontmatter.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[CheckFrontmatterCommand]{
		commands.WithLogger[CheckFrontmatterCommand](baseLogger),
		commands.WithOperation[CheckFrontmatterCommand](checkOperation),
		commands.WithMessageFields(func(msg CheckFrontmatterCommand) map[string]any {
			return map[string]any{"path": msg.Path}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[CheckFrontmatterCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CheckFrontmatterHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[CheckFrontmatterCommand].
func (h *CheckFrontmatterHandler) Execute(ctx context.Context, msg CheckFrontmatterCommand) error {
	return h.inner.Execute(ctx, msg)
}
