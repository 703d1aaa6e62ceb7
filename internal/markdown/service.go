package markdown

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-ccpm/internal/logging"
	"github.com/goliatone/go-ccpm/pkg/interfaces"
)

// Config controls the service defaults.
type Config struct {
	// DefaultContent replaces an empty body when Strip is called without one.
	DefaultContent string
	Parser         interfaces.ParseOptions
}

// Service implements interfaces.FrontmatterService for filesystem documents.
type Service struct {
	cfg    Config
	parser interfaces.MarkdownParser
	logger interfaces.Logger
}

// ServiceOption customises a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger used for strip and inspect events.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithParser overrides the goldmark parser used for previews.
func WithParser(parser interfaces.MarkdownParser) ServiceOption {
	return func(s *Service) {
		if parser != nil {
			s.parser = parser
		}
	}
}

// NewService constructs a frontmatter service.
func NewService(cfg Config, opts ...ServiceOption) *Service {
	if strings.TrimSpace(cfg.DefaultContent) == "" {
		cfg.DefaultContent = DefaultPendingContent
	}
	svc := &Service{
		cfg:    cfg,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.parser == nil {
		svc.parser = NewGoldmarkParser(cfg.Parser)
	}
	return svc
}

var _ interfaces.FrontmatterService = (*Service)(nil)

// DefaultContent reports the configured fallback body.
func (s *Service) DefaultContent() string {
	return s.cfg.DefaultContent
}

// Strip writes the stripped body of inputPath to outputPath. An empty
// defaultContent selects the configured fallback.
func (s *Service) Strip(ctx context.Context, inputPath, outputPath, defaultContent string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if defaultContent == "" {
		defaultContent = s.cfg.DefaultContent
	}

	logger := logging.WithDocumentContext(s.logger.WithContext(ctx), inputPath, "", "strip")
	if err := StripFrontmatterFile(inputPath, outputPath, defaultContent); err != nil {
		logger.Error("markdown.strip.failed", "error", err)
		return err
	}
	logger.Debug("markdown.strip.written", "output", outputPath)
	return nil
}

// HasContent reports whether path has a body after its frontmatter.
func (s *Service) HasContent(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	ok, err := HasContentAfterFrontmatter(path)
	if err != nil {
		return false, err
	}
	logging.WithDocumentContext(s.logger.WithContext(ctx), path, "", "has-content").
		Debug("markdown.presence.checked", "has_content", ok)
	return ok, nil
}

// Inspect reads path and reports its declared metadata and heading outline.
// Metadata that fails to decode is reported on DocumentInfo.MetadataErr rather
// than failing the call, matching how stripping tolerates malformed blocks.
func (s *Service) Inspect(ctx context.Context, path string) (*interfaces.DocumentInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source, err := ReadSource(path)
	if err != nil {
		return nil, fmt.Errorf("markdown inspect read %s: %w", path, err)
	}

	sections := Split(source)
	info := &interfaces.DocumentInfo{
		Path:           path,
		HasFrontMatter: sections.HasFrontMatter,
		Closed:         sections.Closed,
		Body:           sections.Body,
		Outline:        Outline([]byte(sections.Body)),
	}

	if sections.Closed {
		meta, _, metaErr := ReadMetadata([]byte(source))
		if metaErr != nil {
			info.MetadataErr = metaErr
			logging.WithDocumentContext(s.logger.WithContext(ctx), path, "", "inspect").
				Warn("markdown.inspect.metadata_invalid", "error", metaErr)
		} else {
			info.FrontMatter = meta
		}
	}
	return info, nil
}

// Preview renders the body of path as HTML.
func (s *Service) Preview(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	source, err := ReadSource(path)
	if err != nil {
		return nil, fmt.Errorf("markdown preview read %s: %w", path, err)
	}
	return s.parser.Parse([]byte(StripFrontmatter(source)))
}
