package contentcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const validateBodyMessageType = "ccpm.content.validate_body"

// ValidateBodyCommand asks for a body file to be validated, and repaired when
// it is too short or still carries placeholder text.
type ValidateBodyCommand struct {
	// Path locates the body file on disk.
	Path string `json:"path"`
	// Context is the "<category>:<identifier>" tag used for thresholds and templates.
	Context string `json:"context"`
	// MinChars pins the threshold when set; nil resolves it from Context.
	MinChars *int `json:"min_chars,omitempty"`
	// Result, when non-nil, receives the outcome.
	Result *ValidateBodyResult `json:"-"`
}

// ValidateBodyResult reports the outcome of a ValidateBodyCommand.
type ValidateBodyResult struct {
	// Valid is false only when the body file does not exist.
	Valid bool
}

// Type implements command.Message.
func (ValidateBodyCommand) Type() string { return validateBodyMessageType }

// Validate ensures the message carries a path and context before reaching handlers.
func (cmd ValidateBodyCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Path, validation.Required, validation.By(notBlank(
			"ccpm.content.validate_body.path_required", "path is required",
		))),
		validation.Field(&cmd.Context, validation.Required, validation.By(notBlank(
			"ccpm.content.validate_body.context_required", "context is required",
		))),
		validation.Field(&cmd.MinChars, validation.Min(0)),
	)
}

func notBlank(code, message string) validation.RuleFunc {
	return func(value any) error {
		if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}
