package markdown

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-ccpm/pkg/testsupport"
)

func TestStripFrontmatter(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"no frontmatter", "# Title\n\nBody text.\n", "# Title\n\nBody text."},
		{"closed block", "---\ntitle: X\n---\n\nBody here\n", "Body here"},
		{"frontmatter only", "---\ntitle: X\n---", ""},
		{"frontmatter only trailing newline", "---\ntitle: X\n---\n\n\n", ""},
		{"unterminated keeps trailing lines", "---\ntitle: Y\nSome real content\n", "title: Y\nSome real content"},
		{"padded delimiters", "  ---  \nstatus: open\n---\t\nBody", "Body"},
		{"crlf", "---\r\ntitle: X\r\n---\r\nLine one\r\nLine two\r\n", "Line one\nLine two"},
		{"later rule is body", "Intro\n---\nMore", "Intro\n---\nMore"},
		{"empty", "", ""},
		{"whitespace", " \n\t\n", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripFrontmatter(tc.source); got != tc.want {
				t.Fatalf("StripFrontmatter: want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestSplitReportsDelimiterState(t *testing.T) {
	closed := Split("---\na: 1\nb: 2\n---\nbody")
	if !closed.HasFrontMatter || !closed.Closed {
		t.Fatalf("expected closed frontmatter, got %+v", closed)
	}
	if len(closed.FrontMatter) != 2 || closed.FrontMatter[0] != "a: 1" {
		t.Fatalf("unexpected frontmatter lines: %#v", closed.FrontMatter)
	}

	open := Split("---\na: 1\nbody")
	if !open.HasFrontMatter || open.Closed {
		t.Fatalf("expected unterminated frontmatter, got %+v", open)
	}
	if open.Body != "a: 1\nbody" {
		t.Fatalf("unexpected body %q", open.Body)
	}

	none := Split("body")
	if none.HasFrontMatter || none.Closed {
		t.Fatalf("expected no frontmatter, got %+v", none)
	}
}

func TestStripFrontmatterFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("round trip", func(t *testing.T) {
		in := writeFile(t, dir, "in.md", "---\ntitle: X\n---\n\n# Heading\n\nParagraph.\n\n")
		out := filepath.Join(dir, "out.md")

		if err := StripFrontmatterFile(in, out, DefaultPendingContent); err != nil {
			t.Fatalf("StripFrontmatterFile: %v", err)
		}
		assertFile(t, out, "# Heading\n\nParagraph.")
	})

	t.Run("frontmatter only uses default", func(t *testing.T) {
		in := writeFile(t, dir, "only.md", "---\ntitle: X\n---")
		out := filepath.Join(dir, "only-out.md")

		if err := StripFrontmatterFile(in, out, DefaultPendingContent); err != nil {
			t.Fatalf("StripFrontmatterFile: %v", err)
		}
		assertFile(t, out, "Content pending.")
	})

	t.Run("missing input writes default verbatim", func(t *testing.T) {
		out := filepath.Join(dir, "missing-out.md")

		if err := StripFrontmatterFile(filepath.Join(dir, "nope.md"), out, "  custom default\n"); err != nil {
			t.Fatalf("StripFrontmatterFile: %v", err)
		}
		assertFile(t, out, "  custom default\n")
	})

	t.Run("overwrites existing output", func(t *testing.T) {
		in := writeFile(t, dir, "src.md", "Fresh body")
		out := writeFile(t, dir, "stale.md", "stale content that is longer")

		if err := StripFrontmatterFile(in, out, DefaultPendingContent); err != nil {
			t.Fatalf("StripFrontmatterFile: %v", err)
		}
		assertFile(t, out, "Fresh body")
	})

	t.Run("unwritable output propagates", func(t *testing.T) {
		in := writeFile(t, dir, "ok.md", "Body")
		out := filepath.Join(dir, "no-such-dir", "out.md")

		if err := StripFrontmatterFile(in, out, DefaultPendingContent); err == nil {
			t.Fatalf("expected write error")
		}
	})

	t.Run("invalid utf8 is rejected", func(t *testing.T) {
		in := writeFile(t, dir, "bad.md", "\xff\xfe body")
		out := filepath.Join(dir, "bad-out.md")

		err := StripFrontmatterFile(in, out, DefaultPendingContent)
		if !errors.Is(err, ErrInvalidEncoding) {
			t.Fatalf("expected ErrInvalidEncoding, got %v", err)
		}
		if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
			t.Fatalf("expected no output file, stat err %v", statErr)
		}
	})
}

func TestHasContentAfterFrontmatter(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name   string
		source string
		want   bool
	}{
		{"frontmatter only", "---\ntitle: X\n---", false},
		{"frontmatter and body", "---\ntitle: X\n---\nBody", true},
		{"no frontmatter", "Just text", true},
		{"empty", "", false},
		{"whitespace after block", "---\ntitle: X\n---\n   \n\t\n", false},
		{"unterminated", "---\ntitle: X\n", true},
		{"only opener", "---\n", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, dir, filepath.Base(t.Name())+".md", tc.source)
			got, err := HasContentAfterFrontmatter(path)
			if err != nil {
				t.Fatalf("HasContentAfterFrontmatter: %v", err)
			}
			if got != tc.want {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
			assertFile(t, path, tc.source)
		})
	}

	got, err := HasContentAfterFrontmatter(filepath.Join(dir, "missing.md"))
	if err != nil || got {
		t.Fatalf("missing file: want false,nil got %v,%v", got, err)
	}
}

func TestReadMetadata(t *testing.T) {
	data := readFixture(t, "testdata/task.md")

	meta, body, err := ReadMetadata(data)
	if err != nil {
		t.Fatalf("ReadMetadata: %v", err)
	}

	if meta.Name != "Wire body validation into issue-start" {
		t.Fatalf("unexpected name %q", meta.Name)
	}
	if meta.Status != "open" {
		t.Fatalf("unexpected status %q", meta.Status)
	}
	if meta.GitHub != "https://github.com/example/project/issues/42" {
		t.Fatalf("unexpected github %q", meta.GitHub)
	}
	if len(meta.DependsOn) != 2 || meta.DependsOn[0] != "41" {
		t.Fatalf("unexpected depends_on %#v", meta.DependsOn)
	}
	if !meta.Parallel {
		t.Fatalf("expected parallel true")
	}
	if meta.Epic != "content-validation" {
		t.Fatalf("unexpected epic %q", meta.Epic)
	}
	if meta.Extra["owner"] != "platform" {
		t.Fatalf("expected unknown keys in Extra, got %#v", meta.Extra)
	}
	if len(body) == 0 {
		t.Fatalf("expected body to be returned")
	}
}

func TestReadMetadataWithoutFrontmatter(t *testing.T) {
	meta, body, err := ReadMetadata([]byte("# Plain\n\nNo metadata."))
	if err != nil {
		t.Fatalf("ReadMetadata: %v", err)
	}
	if meta.Name != "" || len(meta.Extra) != 0 {
		t.Fatalf("expected empty metadata, got %+v", meta)
	}
	if string(body) != "# Plain\n\nNo metadata." {
		t.Fatalf("expected full source as body, got %q", body)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func assertFile(t *testing.T, path, want string) {
	t.Helper()
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if string(got) != want {
		t.Fatalf("%s: want %q, got %q", filepath.Base(path), want, string(got))
	}
}

func readFixture(t *testing.T, path string) []byte {
	t.Helper()
	data, err := testsupport.LoadFixture(path)
	if err != nil {
		t.Fatalf("read fixture %s: %v", path, err)
	}
	return data
}
