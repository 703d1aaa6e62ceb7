package commands

import (
	"context"
	"maps"
	"time"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-ccpm/internal/logging"
	"github.com/goliatone/go-ccpm/pkg/interfaces"
)

// DefaultCommandTimeout bounds every execution unless WithTimeout says otherwise.
const DefaultCommandTimeout = 30 * time.Second

// HandlerOption configures a Handler instance.
type HandlerOption[T command.Message] func(*Handler[T])

// Handler runs a body-file operation behind message validation, a deadline,
// module logging and go-errors text codes.
type Handler[T command.Message] struct {
	exec          command.CommandFunc[T]
	logger        interfaces.Logger
	timeout       time.Duration
	operation     string
	messageFields func(T) map[string]any
	telemetry     Telemetry[T]
}

// NewHandler creates a handler that satisfies go-command's Commander interface.
func NewHandler[T command.Message](fn command.CommandFunc[T], opts ...HandlerOption[T]) *Handler[T] {
	if fn == nil {
		panic("commands: handler function cannot be nil")
	}
	h := &Handler[T]{
		exec:    fn,
		logger:  logging.NoOp(),
		timeout: DefaultCommandTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Execute conforms to command.Commander[T]. Rejected messages never reach
// the wrapped function; every returned error carries a text code.
func (h *Handler[T]) Execute(ctx context.Context, msg T) error {
	if err := command.ValidateMessage(msg); err != nil {
		return invalidMessage(err)
	}

	ctx, cancel := h.scope(ctx)
	defer cancel()
	if err := ctx.Err(); err != nil {
		return executionFailure(err)
	}

	report := Report{
		Command:   command.GetMessageType(msg),
		Operation: h.operation,
		Fields:    h.fields(msg),
	}
	report.Logger = logging.WithFields(h.logger.WithContext(ctx), report.Fields)
	report.Logger.Debug("command.execute.start")

	started := time.Now()
	err := h.exec(ctx, msg)
	if err == nil {
		err = ctx.Err()
	}
	report.Elapsed = time.Since(started)
	report.Err = executionFailure(err)
	report.Code = ErrorCode(report.Err)
	switch {
	case report.Err == nil:
		report.Outcome = OutcomeSucceeded
	case isContextFailure(report.Err):
		report.Outcome = OutcomeInterrupted
	default:
		report.Outcome = OutcomeFailed
	}

	if h.telemetry != nil {
		h.telemetry(ctx, msg, report)
	} else {
		logReport(report.Logger, report)
	}
	return report.Err
}

func (h *Handler[T]) scope(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if h.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.timeout)
}

func (h *Handler[T]) fields(msg T) map[string]any {
	fields := map[string]any{"command": command.GetMessageType(msg)}
	if h.operation != "" {
		fields["operation"] = h.operation
	}
	if h.messageFields != nil {
		maps.Copy(fields, h.messageFields(msg))
	}
	return fields
}

// WithTimeout overrides the default execution timeout. Zero or negative
// values disable the deadline.
func WithTimeout[T command.Message](timeout time.Duration) HandlerOption[T] {
	return func(h *Handler[T]) {
		if timeout <= 0 {
			h.timeout = 0
			return
		}
		h.timeout = timeout
	}
}

// WithLogger injects the logger used during execution. Defaults to a no-op logger.
func WithLogger[T command.Message](logger interfaces.Logger) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.logger = EnsureLogger(logger)
	}
}

// WithOperation sets a human-friendly operation name emitted with every log entry.
func WithOperation[T command.Message](operation string) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.operation = operation
	}
}

// WithMessageFields derives structured log fields from each message.
func WithMessageFields[T command.Message](fn func(T) map[string]any) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.messageFields = fn
	}
}

// WithTelemetry installs a callback that receives every execution outcome.
// When set it replaces the handler's own outcome log entry.
func WithTelemetry[T command.Message](fn Telemetry[T]) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.telemetry = fn
	}
}
