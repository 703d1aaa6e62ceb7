package commands

import (
	"context"
	"time"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-ccpm/internal/logging"
	"github.com/goliatone/go-ccpm/pkg/interfaces"
)

// Outcome classifies a finished command execution.
type Outcome string

const (
	OutcomeSucceeded   Outcome = "success"
	OutcomeFailed      Outcome = "failed"
	OutcomeInterrupted Outcome = "interrupted"
)

// Report describes one finished execution. Code carries the text code of Err.
type Report struct {
	Command   string
	Operation string
	Fields    map[string]any
	Elapsed   time.Duration
	Outcome   Outcome
	Code      string
	Err       error
	Logger    interfaces.Logger
}

// Telemetry receives a Report after every execution.
type Telemetry[T command.Message] func(ctx context.Context, msg T, report Report)

// DefaultTelemetry logs each report through logger, or through the handler's
// own logger when logger is nil.
func DefaultTelemetry[T command.Message](logger interfaces.Logger) Telemetry[T] {
	return func(ctx context.Context, _ T, report Report) {
		entry := report.Logger
		if logger != nil {
			entry = logging.WithFields(logger.WithContext(ctx), report.Fields)
		}
		logReport(EnsureLogger(entry), report)
	}
}

func logReport(logger interfaces.Logger, report Report) {
	event := "command.execute." + string(report.Outcome)
	elapsed := report.Elapsed.Milliseconds()
	if report.Outcome == OutcomeSucceeded {
		logger.Info(event, "duration_ms", elapsed)
		return
	}
	logger.Error(event, "duration_ms", elapsed, "code", report.Code, "error", report.Err)
}
