package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ziadkadry99/postboard/internal/api"
	"github.com/ziadkadry99/postboard/internal/config"
)

func TestApplyBaseURLPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postboard.yml")
	cfg := config.DefaultConfig()

	if err := applyBaseURL(cfg, path, " http://localhost:5002/api/ "); err != nil {
		t.Fatalf("applyBaseURL: %v", err)
	}
	if cfg.BaseURL != "http://localhost:5002/api" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}

	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.BaseURL != "http://localhost:5002/api" {
		t.Errorf("persisted BaseURL = %q", loaded.BaseURL)
	}
}

func TestApplyBaseURLInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postboard.yml")
	cfg := config.DefaultConfig()
	if err := applyBaseURL(cfg, path, "ftp://example.com"); err == nil {
		t.Fatal("expected error for non-http URL")
	}
	if cfg.BaseURL != config.DefaultBaseURL {
		t.Errorf("BaseURL changed to %q", cfg.BaseURL)
	}
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.BaseURL = ""
	if _, err := newClient(cfg); !errors.Is(err, api.ErrNoBaseURL) {
		t.Errorf("expected ErrNoBaseURL, got %v", err)
	}
}

func TestPrintPostsTable(t *testing.T) {
	var buf bytes.Buffer
	printPostsTable(&buf, nil)
	if buf.String() != "No posts.\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}

	buf.Reset()
	printPostsTable(&buf, []api.Post{{ID: "1", Title: "First", Content: "line one\nline two"}})
	out := buf.String()
	if !strings.Contains(out, "[1] First") || !strings.Contains(out, "line one line two") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestPrintPostsJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := printPostsJSON(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("expected [], got %q", buf.String())
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := truncate("abcdefghij", 4); got != "abcd..." {
		t.Errorf("got %q", got)
	}
}
