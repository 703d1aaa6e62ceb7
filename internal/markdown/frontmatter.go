package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-ccpm/pkg/interfaces"
)

// DefaultPendingContent is written when stripping leaves no body.
const DefaultPendingContent = "Content pending."

const delimiter = "---"

var (
	// ErrInvalidEncoding is returned when a document is not valid UTF-8.
	ErrInvalidEncoding = errors.New("markdown: document is not valid UTF-8")
	// ErrBodyWrite marks failures to write a body file. The underlying
	// filesystem error stays in the chain.
	ErrBodyWrite = errors.New("markdown: body file write failed")
)

// Sections is a document split at its frontmatter delimiters.
type Sections struct {
	// HasFrontMatter is true when the first line is a delimiter.
	HasFrontMatter bool
	// Closed is true when a closing delimiter was found.
	Closed bool
	// FrontMatter holds the lines between the delimiters. When the block is
	// never closed it is empty and every line after the opener is body.
	FrontMatter []string
	// Body is the remainder with surrounding whitespace trimmed.
	Body string
}

// ReadSource reads a document from disk. CRLF line endings are normalised to
// LF. A missing file yields an error matching fs.ErrNotExist.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrInvalidEncoding, path)
	}
	return normaliseNewlines(string(data)), nil
}

// Split separates source into frontmatter and body. A delimiter is any line
// that equals "---" once surrounding whitespace is removed.
func Split(source string) Sections {
	source = normaliseNewlines(source)
	lines := strings.Split(source, "\n")
	if !isDelimiter(lines[0]) {
		return Sections{Body: strings.TrimSpace(source)}
	}

	for idx := 1; idx < len(lines); idx++ {
		if isDelimiter(lines[idx]) {
			return Sections{
				HasFrontMatter: true,
				Closed:         true,
				FrontMatter:    append([]string(nil), lines[1:idx]...),
				Body:           joinTrimmed(lines[idx+1:]),
			}
		}
	}

	return Sections{
		HasFrontMatter: true,
		Body:           joinTrimmed(lines[1:]),
	}
}

// StripFrontmatter returns the trimmed body of source. Malformed frontmatter
// is recovered rather than rejected.
func StripFrontmatter(source string) string {
	return Split(source).Body
}

// StripFrontmatterFile writes the body of inputPath to outputPath, replacing
// any existing file. When the input does not exist, or nothing remains after
// stripping, defaultContent is written verbatim instead.
func StripFrontmatterFile(inputPath, outputPath, defaultContent string) error {
	body := defaultContent

	source, err := ReadSource(inputPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return fmt.Errorf("strip frontmatter read %s: %w", inputPath, err)
	default:
		if stripped := StripFrontmatter(source); stripped != "" {
			body = stripped
		}
	}

	if err := os.WriteFile(outputPath, []byte(body), 0o644); err != nil {
		return fmt.Errorf("strip frontmatter %w %s: %w", ErrBodyWrite, outputPath, err)
	}
	return nil
}

// HasContentAfterFrontmatter reports whether path holds any non-whitespace
// text once its frontmatter block is removed. Missing and empty files report
// false. The file is never modified.
func HasContentAfterFrontmatter(path string) (bool, error) {
	source, err := ReadSource(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("frontmatter presence read %s: %w", path, err)
	}
	return StripFrontmatter(source) != "", nil
}

// ReadMetadata decodes the PM frontmatter declared by source and returns it
// together with the body bytes. Documents without frontmatter yield an empty
// FrontMatter and the full source as body.
func ReadMetadata(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta interfaces.FrontMatter

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	if meta.Extra == nil {
		meta.Extra = map[string]any{}
	}
	return meta, body, nil
}

func isDelimiter(line string) bool {
	return strings.TrimSpace(line) == delimiter
}

func joinTrimmed(lines []string) string {
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func normaliseNewlines(source string) string {
	if !strings.Contains(source, "\r\n") {
		return source
	}
	return strings.ReplaceAll(source, "\r\n", "\n")
}
