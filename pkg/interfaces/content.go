package interfaces

import "context"

// ContentValidator guarantees a body file is substantive before it is
// submitted as an issue, pull request, or comment body.
type ContentValidator interface {
	// Evaluate measures the file without side effects.
	Evaluate(ctx context.Context, path, contextTag string, opts ValidateOptions) (Evaluation, error)
	// Repair overwrites the file with the default body for contextTag.
	Repair(ctx context.Context, path, contextTag string) error
	// Validate evaluates and, when needed, repairs the file. It reports false
	// only when the file does not exist.
	Validate(ctx context.Context, path, contextTag string, opts ValidateOptions) (bool, error)
}

// ThresholdResolver maps a context tag to its minimum non-whitespace length.
type ThresholdResolver interface {
	MinLength(contextTag string) int
}

// PlaceholderDetector reports whether text still contains placeholder idioms.
type PlaceholderDetector interface {
	Detect(text string) bool
}

// ValidateOptions tunes a single validation call.
type ValidateOptions struct {
	// MinChars pins the threshold. Nil resolves it from the context tag; an
	// explicit 0 disables the length check so only placeholders trigger a repair.
	MinChars *int
}

// WithMinChars returns options pinning the threshold to n.
func WithMinChars(n int) ValidateOptions {
	return ValidateOptions{MinChars: &n}
}

// Evaluation is the outcome of measuring a body file.
type Evaluation struct {
	Path    string
	Context string
	// Missing is true when the file does not exist; other fields are zero.
	Missing bool
	// Length counts the characters left after removing every whitespace character.
	Length  int
	Minimum int
	// Placeholder is true when a placeholder idiom was found; PlaceholderMatch
	// names the first matching idiom.
	Placeholder      bool
	PlaceholderMatch string
}

// Insufficient reports whether the measured length is below the minimum.
func (e Evaluation) Insufficient() bool {
	return !e.Missing && e.Length < e.Minimum
}

// NeedsRepair reports whether the body must be replaced with default content.
func (e Evaluation) NeedsRepair() bool {
	return !e.Missing && (e.Length < e.Minimum || e.Placeholder)
}
