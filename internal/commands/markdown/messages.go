package markdowncmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	stripFrontmatterMessageType = "ccpm.markdown.strip_frontmatter"
	checkFrontmatterMessageType = "ccpm.markdown.check_frontmatter"
)

// StripFrontmatterCommand writes the body of InputPath, without its YAML
// frontmatter, to OutputPath.
type StripFrontmatterCommand struct {
	// InputPath is the source document. A missing file is not an error.
	InputPath string `json:"input_path"`
	// OutputPath receives the stripped body and is overwritten when present.
	OutputPath string `json:"output_path"`
	// DefaultContent replaces an empty body. Empty selects the service default.
	DefaultContent string `json:"default_content,omitempty"`
}

// Type implements command.Message.
func (StripFrontmatterCommand) Type() string { return stripFrontmatterMessageType }

// Validate ensures both paths are present before handlers execute.
func (cmd StripFrontmatterCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.InputPath, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("ccpm.markdown.strip_frontmatter.input_required", "input path is required")
			}
			return nil
		})),
		validation.Field(&cmd.OutputPath, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("ccpm.markdown.strip_frontmatter.output_required", "output path is required")
			}
			return nil
		})),
	)
}

// CheckFrontmatterCommand asks whether Path has any content after its
// frontmatter block.
type CheckFrontmatterCommand struct {
	Path string `json:"path"`
	// Result, when non-nil, receives the outcome.
	Result *CheckFrontmatterResult `json:"-"`
}

// CheckFrontmatterResult reports the outcome of a CheckFrontmatterCommand.
type CheckFrontmatterResult struct {
	HasContent bool
}

// Type implements command.Message.
func (CheckFrontmatterCommand) Type() string { return checkFrontmatterMessageType }

// Validate ensures the path is present before handlers execute.
func (cmd CheckFrontmatterCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Path, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("ccpm.markdown.check_frontmatter.path_required", "path is required")
			}
			return nil
		})),
	)
}
