// Package placeholder recognises the idioms authors leave behind in unfinished
// markdown ("TODO", "TBD", "insert ... here"). Every idiom is an independent
// case-insensitive pattern; a text is a placeholder when any pattern matches.
package placeholder

import (
	"regexp"
)

// Pattern is a single named placeholder idiom.
type Pattern struct {
	Name string
	expr *regexp.Regexp
}

// NewPattern compiles expr case-insensitively. It panics on an invalid
// expression, so it is meant for package level catalogues.
func NewPattern(name, expr string) Pattern {
	return Pattern{Name: name, expr: regexp.MustCompile(`(?i)` + expr)}
}

// NewTokenPattern matches word only when it stands alone: the runes on either
// side, if any, are not letters, marks, digits or underscores. RE2's \b only knows
// ASCII word characters, so it would accept "todoé".
func NewTokenPattern(name, word string) Pattern {
	edge := `[^\p{L}\p{M}\p{N}_]`
	return NewPattern(name, `(?:^|`+edge+`)(`+regexp.QuoteMeta(word)+`)(?:`+edge+`|$)`)
}

// Match reports whether the pattern occurs anywhere in text.
func (p Pattern) Match(text string) bool {
	return p.expr != nil && p.expr.MatchString(text)
}

// Expr returns the compiled expression source.
func (p Pattern) Expr() string {
	if p.expr == nil {
		return ""
	}
	return p.expr.String()
}

// Match describes the first idiom found in a text.
type Match struct {
	Pattern string
	Text    string
}

// Tokens such as "to ... be ... added" may have arbitrary text between them
// on the same line. todo and wip must stand alone so "mytodo", "todoé" or
// "wipe" do not count.
var catalogue = []Pattern{
	NewPattern("insert-here", `insert.*here`),
	NewPattern("to-be-added", `to.*be.*added`),
	NewTokenPattern("todo", "todo"),
	NewPattern("tbd", `tbd`),
	NewPattern("placeholder", `placeholder`),
	NewPattern("description-here", `description.*here`),
	NewPattern("add-content", `add.*content`),
	NewPattern("write-here", `write.*here`),
	NewPattern("fill-in", `fill.*in`),
	NewPattern("coming-soon", `coming.*soon`),
	NewPattern("work-in-progress", `work.*in.*progress`),
	NewTokenPattern("wip", "wip"),
	NewPattern("xxx", `xxx`),
	NewPattern("fixme", `fixme`),
	NewPattern("update-this", `update.*this`),
}

// Detector evaluates an ordered list of patterns.
type Detector struct {
	patterns []Pattern
}

var defaultDetector = NewDetector(catalogue...)

// NewDetector builds a detector over the supplied patterns, in order.
func NewDetector(patterns ...Pattern) *Detector {
	return &Detector{patterns: append([]Pattern(nil), patterns...)}
}

// Default returns the detector backed by the built-in catalogue.
func Default() *Detector {
	return defaultDetector
}

// Patterns returns a copy of the built-in catalogue.
func Patterns() []Pattern {
	return append([]Pattern(nil), catalogue...)
}

// Detect reports whether text contains any placeholder idiom.
func (d *Detector) Detect(text string) bool {
	_, found := d.FirstMatch(text)
	return found
}

// FirstMatch returns the first pattern in catalogue order that matches text.
func (d *Detector) FirstMatch(text string) (Match, bool) {
	if d == nil {
		return Match{}, false
	}
	for _, pattern := range d.patterns {
		if pattern.expr == nil {
			continue
		}
		loc := pattern.expr.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		// Token patterns capture the word without its surrounding runes.
		if len(loc) >= 4 && loc[2] >= 0 {
			loc = loc[2:4]
		}
		return Match{Pattern: pattern.Name, Text: text[loc[0]:loc[1]]}, true
	}
	return Match{}, false
}

// Detect runs the built-in catalogue against text.
func Detect(text string) bool {
	return defaultDetector.Detect(text)
}
