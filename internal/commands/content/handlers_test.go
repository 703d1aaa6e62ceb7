package contentcmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-command/dispatcher"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-ccpm/internal/commands"
	"github.com/goliatone/go-ccpm/internal/commands/fixtures"
	"github.com/goliatone/go-ccpm/internal/content"
	"github.com/goliatone/go-ccpm/internal/markdown"
	"github.com/goliatone/go-ccpm/pkg/interfaces"
)

func intPtr(n int) *int { return &n }

type validateCall struct {
	path    string
	context string
	opts    interfaces.ValidateOptions
}

type stubValidator struct {
	calls []validateCall
	valid bool
	err   error
}

func (s *stubValidator) Evaluate(context.Context, string, string, interfaces.ValidateOptions) (interfaces.Evaluation, error) {
	return interfaces.Evaluation{}, nil
}

func (s *stubValidator) Repair(context.Context, string, string) error { return nil }

func (s *stubValidator) Validate(_ context.Context, path, contextTag string, opts interfaces.ValidateOptions) (bool, error) {
	s.calls = append(s.calls, validateCall{path: path, context: contextTag, opts: opts})
	return s.valid, s.err
}

func TestValidateBodyCommandValidate(t *testing.T) {
	cases := []struct {
		name string
		msg  ValidateBodyCommand
		ok   bool
	}{
		{"valid", ValidateBodyCommand{Path: "/tmp/task-body.md", Context: "task:1"}, true},
		{"missing path", ValidateBodyCommand{Context: "task:1"}, false},
		{"blank path", ValidateBodyCommand{Path: "  ", Context: "task:1"}, false},
		{"blank context", ValidateBodyCommand{Path: "/tmp/x.md", Context: " "}, false},
		{"negative minimum", ValidateBodyCommand{Path: "/tmp/x.md", Context: "task:1", MinChars: intPtr(-1)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.ok && err != nil {
				t.Fatalf("expected valid message, got %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestValidateBodyHandlerPassesOptionsAndResult(t *testing.T) {
	validator := &stubValidator{valid: true}
	handler := NewValidateBodyHandler(validator, nil)

	result := &ValidateBodyResult{}
	err := handler.Execute(context.Background(), ValidateBodyCommand{
		Path:     "/tmp/epic-body.md",
		Context:  "epic:checkout",
		MinChars: intPtr(120),
		Result:   result,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !result.Valid {
		t.Fatal("expected result to be populated")
	}
	if len(validator.calls) != 1 {
		t.Fatalf("expected one validator call, got %d", len(validator.calls))
	}
	call := validator.calls[0]
	if call.path != "/tmp/epic-body.md" || call.context != "epic:checkout" || call.opts.MinChars == nil || *call.opts.MinChars != 120 {
		t.Fatalf("unexpected call %+v", call)
	}
}

func TestValidateBodyHandlerRejectsInvalidMessage(t *testing.T) {
	validator := &stubValidator{}
	handler := NewValidateBodyHandler(validator, nil)

	err := handler.Execute(context.Background(), ValidateBodyCommand{Context: "task:1"})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if len(validator.calls) != 0 {
		t.Fatal("expected validator not to run")
	}
}

func TestValidateBodyHandlerWrapsValidatorError(t *testing.T) {
	validator := &stubValidator{err: errors.New("disk full")}
	handler := NewValidateBodyHandler(validator, nil)

	err := handler.Execute(context.Background(), ValidateBodyCommand{Path: "/tmp/x.md", Context: "task:1"})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestValidateBodyHandlerTagsRepairWriteFailure(t *testing.T) {
	validator := &stubValidator{err: fmt.Errorf("content repair %w /tmp/x.md: %w", markdown.ErrBodyWrite, fs.ErrPermission)}
	handler := NewValidateBodyHandler(validator, nil)

	err := handler.Execute(context.Background(), ValidateBodyCommand{Path: "/tmp/x.md", Context: "task:1"})
	if code := commands.ErrorCode(err); code != commands.CodeBodyWriteFailed {
		t.Fatalf("expected %s, got %q", commands.CodeBodyWriteFailed, code)
	}
}

func TestValidateBodyHandlerTagsInvalidEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "epic-body.md")
	if err := os.WriteFile(path, []byte{'o', 'k', 0xc3}, 0o644); err != nil {
		t.Fatalf("write body: %v", err)
	}
	handler := NewValidateBodyHandler(content.NewValidator(content.WithDiagnostics(io.Discard)), nil)

	err := handler.Execute(context.Background(), ValidateBodyCommand{Path: path, Context: "epic:auth"})
	if code := commands.ErrorCode(err); code != commands.CodeInvalidEncoding {
		t.Fatalf("expected %s, got %q (%v)", commands.CodeInvalidEncoding, code, err)
	}
}

func TestRegisterContentCommands(t *testing.T) {
	reg := fixtures.NewRecordingRegistry()

	set, err := RegisterContentCommands(reg, &stubValidator{}, nil)
	if err != nil {
		t.Fatalf("register content commands: %v", err)
	}
	if set == nil || set.Validate == nil {
		t.Fatalf("expected validate handler, got %#v", set)
	}
	if len(reg.Handlers) != 1 || reg.Handlers[0] != set.Validate {
		t.Fatalf("expected validate handler registered, got %#v", reg.Handlers)
	}

	if _, err := RegisterContentCommands(reg, nil, nil); err == nil {
		t.Fatal("expected error for nil validator")
	}

	reg.Err = errors.New("registry closed")
	if _, err := RegisterContentCommands(reg, &stubValidator{}, nil); !errors.Is(err, reg.Err) {
		t.Fatalf("expected registry error, got %v", err)
	}
}

func TestRegisterContentCommandsAppliesHandlerOptions(t *testing.T) {
	applied := false
	_, err := RegisterContentCommands(nil, &stubValidator{}, nil,
		WithValidateHandlerOptions(func(h *commands.Handler[ValidateBodyCommand]) {
			applied = true
		}),
	)
	if err != nil {
		t.Fatalf("register content commands: %v", err)
	}
	if !applied {
		t.Fatal("expected validate handler options applied")
	}
}

func TestDispatchValidateBodyRepairsShortBody(t *testing.T) {
	var diag bytes.Buffer
	validator := content.NewValidator(content.WithDiagnostics(&diag))

	handler := NewValidateBodyHandler(validator, nil)
	sub := dispatcher.SubscribeCommand[ValidateBodyCommand](handler)
	t.Cleanup(sub.Unsubscribe)

	path := filepath.Join(t.TempDir(), "comment-body.md")
	if err := os.WriteFile(path, []byte("ok"), 0o644); err != nil {
		t.Fatalf("write body: %v", err)
	}

	result := &ValidateBodyResult{}
	if err := dispatcher.Dispatch(context.Background(), ValidateBodyCommand{
		Path:    path,
		Context: "comment:12",
		Result:  result,
	}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if !result.Valid {
		t.Fatal("expected repaired body to validate")
	}

	body, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.HasPrefix(string(body), "## Progress Update") {
		t.Fatalf("expected progress template, got %q", body)
	}
	if !strings.Contains(diag.String(), "Content length: 2 chars (minimum: 30)") {
		t.Fatalf("expected diagnostics, got %q", diag.String())
	}
}
