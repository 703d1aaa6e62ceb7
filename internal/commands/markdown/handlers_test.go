package markdowncmd

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-command/dispatcher"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-ccpm/internal/commands"
	"github.com/goliatone/go-ccpm/internal/commands/fixtures"
	"github.com/goliatone/go-ccpm/internal/markdown"
	"github.com/goliatone/go-ccpm/pkg/interfaces"
)

type stripCall struct {
	input          string
	output         string
	defaultContent string
}

type stubFrontmatterService struct {
	stripCalls []stripCall
	checkPaths []string
	hasContent bool
	err        error
}

func (s *stubFrontmatterService) Strip(_ context.Context, input, output, defaultContent string) error {
	s.stripCalls = append(s.stripCalls, stripCall{input: input, output: output, defaultContent: defaultContent})
	return s.err
}

func (s *stubFrontmatterService) HasContent(_ context.Context, path string) (bool, error) {
	s.checkPaths = append(s.checkPaths, path)
	return s.hasContent, s.err
}

func (s *stubFrontmatterService) Inspect(context.Context, string) (*interfaces.DocumentInfo, error) {
	return nil, nil
}

func TestStripFrontmatterCommandValidate(t *testing.T) {
	if err := (StripFrontmatterCommand{InputPath: "a.md", OutputPath: "b.md"}).Validate(); err != nil {
		t.Fatalf("expected valid message, got %v", err)
	}
	if err := (StripFrontmatterCommand{InputPath: "a.md", OutputPath: " "}).Validate(); err == nil {
		t.Fatal("expected blank output path to be rejected")
	}
	if err := (StripFrontmatterCommand{OutputPath: "b.md"}).Validate(); err == nil {
		t.Fatal("expected missing input path to be rejected")
	}
	if err := (CheckFrontmatterCommand{}).Validate(); err == nil {
		t.Fatal("expected missing path to be rejected")
	}
}

func TestStripFrontmatterHandlerDelegates(t *testing.T) {
	service := &stubFrontmatterService{}
	handler := NewStripFrontmatterHandler(service, nil)

	err := handler.Execute(context.Background(), StripFrontmatterCommand{
		InputPath:      "epic.md",
		OutputPath:     "epic-body.md",
		DefaultContent: "Pending.",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(service.stripCalls) != 1 {
		t.Fatalf("expected one strip call, got %d", len(service.stripCalls))
	}
	if got := service.stripCalls[0]; got.input != "epic.md" || got.output != "epic-body.md" || got.defaultContent != "Pending." {
		t.Fatalf("unexpected strip call %+v", got)
	}
}

func TestStripFrontmatterHandlerWrapsErrors(t *testing.T) {
	service := &stubFrontmatterService{err: errors.New("read-only filesystem")}
	handler := NewStripFrontmatterHandler(service, nil)

	err := handler.Execute(context.Background(), StripFrontmatterCommand{InputPath: "a.md", OutputPath: "b.md"})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestStripFrontmatterHandlerTagsInvalidEncoding(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "prd.md")
	if err := os.WriteFile(in, []byte{'-', '-', '-', '\n', 0xff, '\n'}, 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	handler := NewStripFrontmatterHandler(markdown.NewService(markdown.Config{}), nil)

	err := handler.Execute(context.Background(), StripFrontmatterCommand{InputPath: in, OutputPath: filepath.Join(dir, "out.md")})
	if code := commands.ErrorCode(err); code != commands.CodeInvalidEncoding {
		t.Fatalf("expected %s, got %q (%v)", commands.CodeInvalidEncoding, code, err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "out.md")); !errors.Is(statErr, fs.ErrNotExist) {
		t.Fatalf("expected no output to be written, got %v", statErr)
	}
}

func TestCheckFrontmatterHandlerPopulatesResult(t *testing.T) {
	service := &stubFrontmatterService{hasContent: true}
	handler := NewCheckFrontmatterHandler(service, nil)

	result := &CheckFrontmatterResult{}
	if err := handler.Execute(context.Background(), CheckFrontmatterCommand{Path: "task.md", Result: result}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !result.HasContent {
		t.Fatal("expected HasContent to be populated")
	}
	if len(service.checkPaths) != 1 || service.checkPaths[0] != "task.md" {
		t.Fatalf("unexpected check calls %v", service.checkPaths)
	}
}

func TestDispatchStripFrontmatterWithService(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "task.md")
	out := filepath.Join(dir, "task-body.md")
	if err := os.WriteFile(in, []byte("---\nname: x\n---\n\nImplement the thing.\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	set, err := RegisterMarkdownCommands(nil, markdown.NewService(markdown.Config{}), nil)
	if err != nil {
		t.Fatalf("register markdown commands: %v", err)
	}
	stripSub := dispatcher.SubscribeCommand[StripFrontmatterCommand](set.Strip)
	t.Cleanup(stripSub.Unsubscribe)
	checkSub := dispatcher.SubscribeCommand[CheckFrontmatterCommand](set.Check)
	t.Cleanup(checkSub.Unsubscribe)

	if err := dispatcher.Dispatch(context.Background(), StripFrontmatterCommand{InputPath: in, OutputPath: out}); err != nil {
		t.Fatalf("dispatch strip: %v", err)
	}
	body, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(body) != "Implement the thing." {
		t.Fatalf("unexpected body %q", body)
	}

	result := &CheckFrontmatterResult{}
	if err := dispatcher.Dispatch(context.Background(), CheckFrontmatterCommand{Path: in, Result: result}); err != nil {
		t.Fatalf("dispatch check: %v", err)
	}
	if !result.HasContent {
		t.Fatal("expected content after frontmatter")
	}
}

func TestRegisterMarkdownCommandsRegistersHandlers(t *testing.T) {
	reg := fixtures.NewRecordingRegistry()
	stripApplied := false
	checkApplied := false

	set, err := RegisterMarkdownCommands(reg, &stubFrontmatterService{}, nil,
		WithStripHandlerOptions(func(h *commands.Handler[StripFrontmatterCommand]) {
			stripApplied = true
		}),
		WithCheckHandlerOptions(func(h *commands.Handler[CheckFrontmatterCommand]) {
			checkApplied = true
		}),
	)
	if err != nil {
		t.Fatalf("register markdown commands: %v", err)
	}
	if !stripApplied || !checkApplied {
		t.Fatal("expected handler options applied")
	}
	if len(reg.Handlers) != 2 {
		t.Fatalf("expected two handlers registered, got %d", len(reg.Handlers))
	}
	if reg.Handlers[0] != set.Strip || reg.Handlers[1] != set.Check {
		t.Fatalf("unexpected registration order %#v", reg.Handlers)
	}

	if _, err := RegisterMarkdownCommands(reg, nil, nil); err == nil {
		t.Fatal("expected error for nil service")
	}
}
