package contentcmd

import (
	"context"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-ccpm/internal/commands"
	"github.com/goliatone/go-ccpm/internal/logging"
	"github.com/goliatone/go-ccpm/pkg/interfaces"
)

const validateOperation = "content.validate_body"

var _ command.Commander[ValidateBodyCommand] = (*ValidateBodyHandler)(nil)

// ValidateBodyHandler runs the content validator through the shared command
// handler foundation.
type ValidateBodyHandler struct {
	inner *commands.Handler[ValidateBodyCommand]
}

// NewValidateBodyHandler creates a handler bound to the supplied validator.
func NewValidateBodyHandler(validator interfaces.ContentValidator, logger interfaces.Logger, opts ...commands.HandlerOption[ValidateBodyCommand]) *ValidateBodyHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ValidateBodyCommand) error {
		valid, err := validator.Validate(ctx, msg.Path, msg.Context, interfaces.ValidateOptions{
			MinChars: msg.MinChars,
		})
		if err != nil {
			return err
		}
		if msg.Result != nil {
			msg.Result.Valid = valid
		}
		logging.WithDocumentContext(baseLogger, msg.Path, msg.Context, "validate").
			Debug("content.command.validate_body.completed", "valid", valid)
		return nil
	}

	handlerOpts := []commands.HandlerOption[ValidateBodyCommand]{
		commands.WithLogger[ValidateBodyCommand](baseLogger),
		commands.WithOperation[ValidateBodyCommand](validateOperation),
		commands.WithMessageFields(func(msg ValidateBodyCommand) map[string]any {
			fields := map[string]any{
				"path":    msg.Path,
				"context": msg.Context,
			}
			if msg.MinChars != nil {
				fields["min_chars"] = *msg.MinChars
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ValidateBodyCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ValidateBodyHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ValidateBodyCommand].
func (h *ValidateBodyHandler) Execute(ctx context.Context, msg ValidateBodyCommand) error {
	return h.inner.Execute(ctx, msg)
}
