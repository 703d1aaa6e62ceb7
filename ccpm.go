// Package ccpm validates the issue and comment bodies the project manager
// hands to GitHub. Bodies that are missing, too short or still carry
// placeholder text are replaced with a structured default template.
package ccpm

import (
	"context"

	"github.com/goliatone/go-ccpm/internal/content"
	"github.com/goliatone/go-ccpm/internal/di"
	"github.com/goliatone/go-ccpm/internal/markdown"
	"github.com/goliatone/go-ccpm/internal/placeholder"
	"github.com/goliatone/go-ccpm/internal/templates"
	"github.com/goliatone/go-ccpm/internal/thresholds"
	"github.com/goliatone/go-ccpm/pkg/interfaces"
)

// ContentValidator exports the validator contract.
type ContentValidator = interfaces.ContentValidator

// FrontmatterService exports the frontmatter contract.
type FrontmatterService = interfaces.FrontmatterService

type (
	Evaluation      = interfaces.Evaluation
	ValidateOptions = interfaces.ValidateOptions
	DocumentInfo    = interfaces.DocumentInfo
	FrontMatter     = interfaces.FrontMatter
	Heading         = interfaces.Heading
)

// WithMinChars returns ValidateOptions pinning the threshold to n.
func WithMinChars(n int) ValidateOptions {
	return interfaces.WithMinChars(n)
}

// Module represents the top level ccpm runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Validator returns the configured content validator.
func (m *Module) Validator() ContentValidator {
	return m.container.Validator()
}

// Frontmatter returns the configured frontmatter service.
func (m *Module) Frontmatter() FrontmatterService {
	return m.container.MarkdownService()
}

// Validate checks the body at path and, when it is too short or still a
// placeholder, overwrites it with the template for contextTag. A missing file
// yields false and nothing is created. A nil opts.MinChars uses the
// configured threshold for contextTag.
func (m *Module) Validate(ctx context.Context, path, contextTag string, opts ValidateOptions) (bool, error) {
	return m.container.Validator().Validate(ctx, path, contextTag, opts)
}

// Evaluate reports on the body at path without touching it.
func (m *Module) Evaluate(ctx context.Context, path, contextTag string, opts ValidateOptions) (Evaluation, error) {
	return m.container.Validator().Evaluate(ctx, path, contextTag, opts)
}

// MinLength resolves the configured threshold for contextTag.
func (m *Module) MinLength(contextTag string) int {
	return m.container.Thresholds().MinLength(contextTag)
}

// Strip writes the body of inputPath to outputPath. An empty defaultContent
// uses the configured pending text.
func (m *Module) Strip(ctx context.Context, inputPath, outputPath, defaultContent string) error {
	return m.container.MarkdownService().Strip(ctx, inputPath, outputPath, defaultContent)
}

// HasContent reports whether path has a non-blank line after its frontmatter.
func (m *Module) HasContent(ctx context.Context, path string) (bool, error) {
	return m.container.MarkdownService().HasContent(ctx, path)
}

// Inspect parses the frontmatter and heading outline of path.
func (m *Module) Inspect(ctx context.Context, path string) (*DocumentInfo, error) {
	return m.container.MarkdownService().Inspect(ctx, path)
}

// Preview renders the body of path to HTML.
func (m *Module) Preview(ctx context.Context, path string) ([]byte, error) {
	return m.container.MarkdownService().Preview(ctx, path)
}

// MinLength resolves contextTag against the built-in thresholds.
func MinLength(contextTag string) int {
	return thresholds.MinLength(contextTag)
}

// IsPlaceholder reports whether text matches the placeholder catalogue.
func IsPlaceholder(text string) bool {
	return placeholder.Detect(text)
}

// DefaultTemplate returns the default body for contextTag.
func DefaultTemplate(contextTag string) string {
	return templates.For(contextTag)
}

// StripFrontmatter returns source without its leading frontmatter block.
func StripFrontmatter(source string) string {
	return markdown.StripFrontmatter(source)
}

// CountNonWhitespace counts the runes of text that are not whitespace.
func CountNonWhitespace(text string) int {
	return content.CountNonWhitespace(text)
}
