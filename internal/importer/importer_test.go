package importer

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		path        string
		wantTitle   string
		wantContent string
	}{
		{"heading", "# Hello\n\nBody text.\n", "a.md", "Hello", "Body text."},
		{"heading after preamble", "intro\n# Title\nmore", "a.md", "Title", "intro\nmore"},
		{"no heading", "\njust text\n", "notes/today.md", "today", "just text"},
		{"subheading only", "## Sub\ntext", "x.markdown", "x", "## Sub\ntext"},
		{"crlf", "# Win\r\nline\r\n", "w.md", "Win", "line"},
		{"heading in fence", "```sh\n# comment\n```\n# Real\ntext", "f.md", "Real", "```sh\n# comment\n```\ntext"},
		{"only fenced heading", "~~~\n# not a title\n~~~", "code.md", "code", "~~~\n# not a title\n~~~"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Parse(tt.content, tt.path)
			if d.Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", d.Title, tt.wantTitle)
			}
			if d.Content != tt.wantContent {
				t.Errorf("content = %q, want %q", d.Content, tt.wantContent)
			}
		})
	}
}

func TestCollectDefaults(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b.md", "# Bee\nbuzz")
	writeFile(t, root, "docs/a.md", "# Ay\nfirst")
	writeFile(t, root, "docs/skip.txt", "not markdown")
	writeFile(t, root, "node_modules/pkg/readme.md", "# Vendored")
	writeFile(t, root, ".git/info.md", "# Git")

	docs, err := Collect(root, nil)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d: %+v", len(docs), docs)
	}
	if docs[0].RelPath != "b.md" || docs[1].RelPath != "docs/a.md" {
		t.Errorf("unexpected order: %s, %s", docs[0].RelPath, docs[1].RelPath)
	}
	if docs[1].Draft.Title != "Ay" || docs[1].Draft.Content != "first" {
		t.Errorf("unexpected draft: %+v", docs[1].Draft)
	}
}

func TestCollectPatterns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "posts/2024/one.md", "# One")
	writeFile(t, root, "posts/two.md", "# Two")
	writeFile(t, root, "other/three.md", "# Three")

	docs, err := Collect(root, []string{"posts/**/*.md"})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %+v", docs)
	}
	for _, d := range docs {
		if d.Draft.Title == "Three" {
			t.Error("other/three.md should not match")
		}
	}
}

func TestCollectInvalidPattern(t *testing.T) {
	if _, err := Collect(t.TempDir(), []string{"posts/[.md"}); err == nil {
		t.Error("expected error for malformed pattern")
	}
}

func TestCollectMissingRoot(t *testing.T) {
	if _, err := Collect(filepath.Join(t.TempDir(), "missing"), nil); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestMatchesAny(t *testing.T) {
	tests := []struct {
		path     string
		patterns []string
		want     bool
	}{
		{"a/b/c.md", []string{"**/*.md"}, true},
		{"c.md", []string{"*.md"}, true},
		{"a/c.md", []string{"*.md"}, true},
		{"a/c.txt", []string{"**/*.md"}, false},
		{"a/c.md", []string{"b/**"}, false},
	}
	for _, tt := range tests {
		if got := matchesAny(tt.path, tt.patterns); got != tt.want {
			t.Errorf("matchesAny(%q, %v) = %v, want %v", tt.path, tt.patterns, got, tt.want)
		}
	}
}
