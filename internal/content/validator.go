// Package content guarantees that issue, pull request and comment bodies are
// substantive before they are submitted. A body that is too short or still
// carries placeholder text is replaced with the default template for its
// context.
package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode"

	"github.com/goliatone/go-ccpm/internal/logging"
	"github.com/goliatone/go-ccpm/internal/markdown"
	"github.com/goliatone/go-ccpm/internal/placeholder"
	"github.com/goliatone/go-ccpm/internal/templates"
	"github.com/goliatone/go-ccpm/internal/thresholds"
	"github.com/goliatone/go-ccpm/pkg/interfaces"
)

// Option customises a Validator.
type Option func(*Validator)

// WithThresholds sets the resolver used when no explicit minimum is given.
func WithThresholds(resolver thresholds.Resolver) Option {
	return func(v *Validator) {
		v.thresholds = resolver
	}
}

// WithDetector replaces the built-in placeholder catalogue.
func WithDetector(detector *placeholder.Detector) Option {
	return func(v *Validator) {
		if detector != nil {
			v.detector = detector
		}
	}
}

// WithDiagnostics sets the writer that receives the human-readable lines
// describing missing and repaired bodies. Pass io.Discard to silence them.
func WithDiagnostics(w io.Writer) Option {
	return func(v *Validator) {
		if w != nil {
			v.diagnostics = w
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// Validator evaluates body files and repairs them in place. It holds no
// per-file state but does not coordinate concurrent calls on the same path.
type Validator struct {
	thresholds  thresholds.Resolver
	detector    *placeholder.Detector
	diagnostics io.Writer
	logger      interfaces.Logger
}

var _ interfaces.ContentValidator = (*Validator)(nil)

// NewValidator builds a validator with default thresholds, the built-in
// placeholder catalogue and diagnostics written to stderr.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{
		thresholds:  thresholds.NewResolver(thresholds.Config{}),
		detector:    placeholder.Default(),
		diagnostics: os.Stderr,
		logger:      logging.NoOp(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// MinLength resolves the threshold for contextTag.
func (v *Validator) MinLength(contextTag string) int {
	return v.thresholds.MinLength(contextTag)
}

// Evaluate measures path against opts.MinChars, or against the resolved
// threshold when it is nil. A missing file is reported through
// Evaluation.Missing rather than an error.
func (v *Validator) Evaluate(ctx context.Context, path, contextTag string, opts interfaces.ValidateOptions) (interfaces.Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return interfaces.Evaluation{}, err
	}

	eval := interfaces.Evaluation{Path: path, Context: contextTag}

	source, err := markdown.ReadSource(path)
	if errors.Is(err, fs.ErrNotExist) {
		eval.Missing = true
		return eval, nil
	}
	if err != nil {
		return interfaces.Evaluation{}, fmt.Errorf("content evaluate read %s: %w", path, err)
	}

	minChars := v.MinLength(contextTag)
	if opts.MinChars != nil {
		minChars = *opts.MinChars
	}

	eval.Length = CountNonWhitespace(source)
	eval.Minimum = minChars
	if match, ok := v.detector.FirstMatch(source); ok {
		eval.Placeholder = true
		eval.PlaceholderMatch = match.Pattern
	}
	return eval, nil
}

// Repair overwrites path with the default template for contextTag.
func (v *Validator) Repair(ctx context.Context, path, contextTag string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(templates.For(contextTag)), 0o644); err != nil {
		return fmt.Errorf("content repair %w %s: %w", markdown.ErrBodyWrite, path, err)
	}
	return nil
}

// Validate ensures path holds a substantive body for contextTag. It returns
// false only when the file does not exist, in which case nothing is created.
// Short or placeholder bodies are replaced with the default template and the
// call still succeeds. Valid bodies are left untouched.
func (v *Validator) Validate(ctx context.Context, path, contextTag string, opts interfaces.ValidateOptions) (bool, error) {
	logger := logging.WithDocumentContext(v.logger.WithContext(ctx), path, contextTag, "validate")

	eval, err := v.Evaluate(ctx, path, contextTag, opts)
	if err != nil {
		logger.Error("content.validate.failed", "error", err)
		return false, err
	}

	if eval.Missing {
		v.reportMissing(eval)
		logger.Warn("content.validate.missing")
		return false, nil
	}

	if !eval.NeedsRepair() {
		logger.Debug("content.validate.passed", "length", eval.Length, "minimum", eval.Minimum)
		return true, nil
	}

	v.reportRepair(eval)
	if err := v.Repair(ctx, path, contextTag); err != nil {
		logger.Error("content.validate.failed", "error", err)
		return false, err
	}

	logger.Info("content.validate.repaired",
		"length", eval.Length,
		"minimum", eval.Minimum,
		"placeholder", eval.PlaceholderMatch,
		"template", string(templates.KindFor(contextTag)),
	)
	return true, nil
}

// CountNonWhitespace returns the number of runes in text that are not
// Unicode whitespace.
func CountNonWhitespace(text string) int {
	count := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	return count
}
