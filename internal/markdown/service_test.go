package markdown

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestServiceStripUsesConfiguredDefault(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(Config{DefaultContent: "Nothing to report yet."})

	in := writeFile(t, dir, "epic.md", "---\nname: x\n---\n")
	out := filepath.Join(dir, "epic-body.md")

	if err := svc.Strip(context.Background(), in, out, ""); err != nil {
		t.Fatalf("Strip: %v", err)
	}
	assertFile(t, out, "Nothing to report yet.")

	if err := svc.Strip(context.Background(), in, out, "explicit"); err != nil {
		t.Fatalf("Strip: %v", err)
	}
	assertFile(t, out, "explicit")
}

func TestServiceDefaultsPendingContent(t *testing.T) {
	if got := NewService(Config{}).DefaultContent(); got != DefaultPendingContent {
		t.Fatalf("expected %q, got %q", DefaultPendingContent, got)
	}
}

func TestServiceHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewService(Config{})
	if err := svc.Strip(ctx, "in.md", "out.md", ""); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := svc.HasContent(ctx, "in.md"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestServiceInspect(t *testing.T) {
	svc := NewService(Config{})

	info, err := svc.Inspect(context.Background(), "testdata/task.md")
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if !info.HasFrontMatter || !info.Closed {
		t.Fatalf("expected closed frontmatter, got %+v", info)
	}
	if info.MetadataErr != nil {
		t.Fatalf("unexpected metadata error: %v", info.MetadataErr)
	}
	if info.FrontMatter.Status != "open" {
		t.Fatalf("expected status open, got %q", info.FrontMatter.Status)
	}
	if len(info.Outline) != 3 || info.Outline[0].Text != "Task: Wire body validation" {
		t.Fatalf("unexpected outline %#v", info.Outline)
	}
}

func TestServiceInspectReportsBrokenMetadata(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.md", "---\nname: [unclosed\n---\nBody text\n")

	info, err := NewService(Config{}).Inspect(context.Background(), path)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if info.MetadataErr == nil {
		t.Fatalf("expected metadata error to be recorded")
	}
	if info.Body != "Body text" {
		t.Fatalf("expected body to survive broken metadata, got %q", info.Body)
	}
}

func TestServicePreviewStripsFrontmatter(t *testing.T) {
	html, err := NewService(Config{}).Preview(context.Background(), "testdata/task.md")
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	out := string(html)
	if strings.Contains(out, "status: open") {
		t.Fatalf("expected frontmatter to be stripped, got %s", out)
	}
	if !strings.Contains(out, "<h1") {
		t.Fatalf("expected rendered heading, got %s", out)
	}
}
