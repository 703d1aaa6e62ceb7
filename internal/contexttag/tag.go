// Package contexttag parses the "<category>:<identifier>" strings PM workflow
// commands attach to every body they validate. The category selects both the
// minimum length policy and the default template.
package contexttag

import (
	"strings"

	"github.com/goliatone/go-slug"
)

// Well known categories emitted by the PM workflow commands.
const (
	CategoryEpic           = "epic"
	CategoryTask           = "task"
	CategoryIssue          = "issue"
	CategoryComment        = "comment"
	CategoryUpdate         = "update"
	CategoryProgressUpdate = "progress-update"
	CategoryCompletion     = "completion"
)

const bodyFileSuffix = "-body.md"

// Tag is a parsed context tag. Identifier carries no validated structure.
type Tag struct {
	Raw        string
	Category   string
	Identifier string
}

// Parse splits the raw tag at the first colon. Without a colon the whole
// string is the category and the identifier is empty.
func Parse(raw string) Tag {
	category, identifier, found := strings.Cut(raw, ":")
	if !found {
		return Tag{Raw: raw, Category: raw}
	}
	return Tag{Raw: raw, Category: category, Identifier: identifier}
}

// CategoryOf is shorthand for Parse(raw).Category.
func CategoryOf(raw string) string {
	return Parse(raw).Category
}

// Is reports whether the tag category matches any of the supplied categories.
// Matching is exact and case-sensitive.
func (t Tag) Is(categories ...string) bool {
	for _, category := range categories {
		if t.Category == category {
			return true
		}
	}
	return false
}

// String returns the raw tag.
func (t Tag) String() string {
	return t.Raw
}

// BodyFileName derives a filesystem friendly name for the body file that
// workflow commands stage before handing it to the issue tracker, for example
// "task:Add OAuth" becomes "task-add-oauth-body.md".
func (t Tag) BodyFileName() string {
	base := t.Category
	if strings.TrimSpace(t.Identifier) != "" {
		base = t.Category + " " + t.Identifier
	}

	name, err := slug.Normalize(base)
	if err != nil || name == "" {
		name, err = slug.Normalize(t.Category)
	}
	if err != nil || name == "" {
		return "body.md"
	}
	return name + bodyFileSuffix
}
