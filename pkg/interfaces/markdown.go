package interfaces

import (
	"context"
)

// MarkdownParser defines how raw Markdown bytes are converted into HTML for
// previews of issue and comment bodies.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// FrontmatterService exposes the body preparation steps PM workflow commands
// run before handing a document to the issue tracker.
type FrontmatterService interface {
	// Strip writes the body of inputPath (frontmatter removed, trimmed) to
	// outputPath, substituting defaultContent when nothing remains.
	Strip(ctx context.Context, inputPath, outputPath, defaultContent string) error
	// HasContent reports whether anything remains after the frontmatter block.
	HasContent(ctx context.Context, path string) (bool, error)
	// Inspect reads metadata and the heading outline of a document.
	Inspect(ctx context.Context, path string) (*DocumentInfo, error)
}

// FrontMatter models the metadata PM documents (PRDs, epics, tasks) carry in
// their leading YAML block. Unknown keys land in Extra.
type FrontMatter struct {
	Name          string         `yaml:"name" json:"name,omitempty"`
	Title         string         `yaml:"title" json:"title,omitempty"`
	Status        string         `yaml:"status" json:"status,omitempty"`
	Created       string         `yaml:"created" json:"created,omitempty"`
	Updated       string         `yaml:"updated" json:"updated,omitempty"`
	GitHub        string         `yaml:"github" json:"github,omitempty"`
	Epic          string         `yaml:"epic" json:"epic,omitempty"`
	PRD           string         `yaml:"prd" json:"prd,omitempty"`
	Progress      string         `yaml:"progress" json:"progress,omitempty"`
	DependsOn     []string       `yaml:"depends_on" json:"depends_on,omitempty"`
	ConflictsWith []string       `yaml:"conflicts_with" json:"conflicts_with,omitempty"`
	Parallel      bool           `yaml:"parallel" json:"parallel,omitempty"`
	Extra         map[string]any `yaml:",inline" json:"extra,omitempty"`
}

// Heading is a single entry of a document outline.
type Heading struct {
	Level int
	Text  string
}

// DocumentInfo summarises a markdown file without modifying it.
type DocumentInfo struct {
	Path        string
	FrontMatter FrontMatter
	// HasFrontMatter is true when the file opens with a "---" line.
	HasFrontMatter bool
	// Closed is false for a frontmatter block missing its closing delimiter.
	Closed      bool
	Body        string
	Outline     []Heading
	MetadataErr error
}
