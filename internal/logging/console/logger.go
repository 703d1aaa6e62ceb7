package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-ccpm/internal/logging"
	"github.com/goliatone/go-ccpm/pkg/interfaces"
)

// Level is the severity of an entry. Entries below the provider's minimum
// are dropped.
type Level uint8

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelLabels = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

var levelNames = map[string]Level{
	"trace":   LevelTrace,
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
	"fatal":   LevelFatal,
}

func (l Level) String() string {
	if int(l) < len(levelLabels) {
		return levelLabels[l]
	}
	return levelLabels[LevelInfo]
}

// ErrUnknownLevel is returned by ParseLevel for unrecognised level names.
var ErrUnknownLevel = errors.New("console: unknown log level")

// ParseLevel maps a ccpm.yaml or CCPM_LOG_LEVEL value onto a Level. Case and
// surrounding whitespace are ignored.
func ParseLevel(name string) (Level, error) {
	if level, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return level, nil
	}
	return LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

// Options configures the console provider. Writer defaults to stdout,
// TimeFunc to time.Now and MinLevel to LevelDebug.
type Options struct {
	Writer   io.Writer
	TimeFunc func() time.Time
	MinLevel *Level
}

// sink serialises writes from every logger a provider hands out.
type sink struct {
	mu  sync.Mutex
	out io.Writer
	now func() time.Time
	min Level
}

func (s *sink) write(line []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = s.out.Write(line)
}

type provider struct {
	sink *sink
}

// NewProvider returns a provider writing one logfmt-style line per entry:
// timestamp, level, event name, then key=value pairs sorted by key.
func NewProvider(opts Options) interfaces.LoggerProvider {
	s := &sink{out: opts.Writer, now: opts.TimeFunc, min: LevelDebug}
	if s.out == nil {
		s.out = os.Stdout
	}
	if s.now == nil {
		s.now = time.Now
	}
	if opts.MinLevel != nil {
		s.min = *opts.MinLevel
	}
	return &provider{sink: s}
}

func (p *provider) GetLogger(name string) interfaces.Logger {
	return &consoleLogger{sink: p.sink, fields: map[string]any{"logger": name}}
}

type consoleLogger struct {
	sink   *sink
	fields map[string]any
	ctx    context.Context
}

var (
	_ interfaces.Logger       = (*consoleLogger)(nil)
	_ interfaces.FieldsLogger = (*consoleLogger)(nil)
)

func (l *consoleLogger) Trace(msg string, args ...any) { l.emit(LevelTrace, msg, args) }
func (l *consoleLogger) Debug(msg string, args ...any) { l.emit(LevelDebug, msg, args) }
func (l *consoleLogger) Info(msg string, args ...any)  { l.emit(LevelInfo, msg, args) }
func (l *consoleLogger) Warn(msg string, args ...any)  { l.emit(LevelWarn, msg, args) }
func (l *consoleLogger) Error(msg string, args ...any) { l.emit(LevelError, msg, args) }
func (l *consoleLogger) Fatal(msg string, args ...any) { l.emit(LevelFatal, msg, args) }

func (l *consoleLogger) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}
	child := &consoleLogger{sink: l.sink, fields: maps.Clone(l.fields), ctx: l.ctx}
	if child.fields == nil {
		child.fields = make(map[string]any, len(fields))
	}
	maps.Copy(child.fields, fields)
	return child
}

func (l *consoleLogger) WithContext(ctx context.Context) interfaces.Logger {
	return &consoleLogger{sink: l.sink, fields: l.fields, ctx: ctx}
}

// emit merges logger fields, context fields and call arguments, in that
// order of precedence from lowest to highest, and writes the entry.
func (l *consoleLogger) emit(level Level, msg string, args []any) {
	if l.sink == nil || level < l.sink.min {
		return
	}
	fields := maps.Clone(l.fields)
	if fields == nil {
		fields = map[string]any{}
	}
	maps.Copy(fields, logging.ContextFields(l.ctx))
	maps.Copy(fields, pairs(args))

	l.sink.write(appendEntry(nil, l.sink.now().UTC(), level, msg, fields))
}

// pairs turns alternating key/value arguments into a map. Values whose key
// is missing or not a string are kept under "arg<N>", N being the value's
// position in args.
func pairs(args []any) map[string]any {
	if len(args) == 0 {
		return nil
	}
	out := make(map[string]any, (len(args)+1)/2)
	for i := 0; i < len(args); i += 2 {
		if i+1 == len(args) {
			out["arg"+strconv.Itoa(i)] = args[i]
			break
		}
		key, ok := args[i].(string)
		if !ok || key == "" {
			key = "arg" + strconv.Itoa(i+1)
		}
		out[key] = args[i+1]
	}
	return out
}

func appendEntry(buf []byte, at time.Time, level Level, msg string, fields map[string]any) []byte {
	buf = at.AppendFormat(buf, time.RFC3339Nano)
	buf = append(buf, ' ')
	buf = append(buf, level.String()...)
	buf = append(buf, ' ')
	buf = append(buf, msg...)
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		buf = append(buf, ' ')
		buf = append(buf, key...)
		buf = append(buf, '=')
		buf = appendValue(buf, fields[key])
	}
	return append(buf, '\n')
}

func appendValue(buf []byte, value any) []byte {
	var text string
	switch v := value.(type) {
	case nil:
		return append(buf, "null"...)
	case string:
		text = v
	case time.Time:
		text = v.UTC().Format(time.RFC3339Nano)
	case error:
		text = v.Error()
	case fmt.Stringer:
		text = v.String()
	default:
		text = fmt.Sprint(v)
	}
	if needsQuotes(text) {
		return strconv.AppendQuote(buf, text)
	}
	return append(buf, text...)
}

func needsQuotes(text string) bool {
	if text == "" {
		return true
	}
	return strings.ContainsFunc(text, func(r rune) bool {
		return r <= ' ' || r == '=' || r == '"'
	})
}
