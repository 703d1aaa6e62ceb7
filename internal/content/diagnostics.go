package content

import (
	"fmt"

	"github.com/goliatone/go-ccpm/pkg/interfaces"
)

func (v *Validator) reportMissing(eval interfaces.Evaluation) {
	fmt.Fprintf(v.diagnostics, "Error: Body file %s does not exist for %s\n", eval.Path, eval.Context)
}

func (v *Validator) reportRepair(eval interfaces.Evaluation) {
	fmt.Fprintf(v.diagnostics, "Warning: Body file %s has insufficient content for %s\n", eval.Path, eval.Context)
	fmt.Fprintf(v.diagnostics, "  Content length: %d chars (minimum: %d)\n", eval.Length, eval.Minimum)
	if eval.Placeholder {
		fmt.Fprintln(v.diagnostics, "  Placeholder text detected - replacing with proper default")
	}
	fmt.Fprintln(v.diagnostics, "Adding appropriate default content...")
}
