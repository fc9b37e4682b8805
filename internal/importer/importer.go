// Package importer turns a tree of Markdown files into post drafts.
package importer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ziadkadry99/postboard/internal/api"
)

// DefaultMaxFileSize is the largest file read as a post (1 MB).
const DefaultMaxFileSize int64 = 1 << 20

// Document is one Markdown file mapped to a post draft.
type Document struct {
	RelPath string
	Draft   api.Draft
}

// Collect walks root and returns a Document for every file matching one of
// patterns (DefaultPatterns when empty). Results are sorted by path.
func Collect(root string, patterns []string) ([]Document, error) {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	if err := ValidatePatterns(patterns); err != nil {
		return nil, err
	}

	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("importer: resolve root: %w", err)
	}

	var docs []Document
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			return nil
		}
		if d.IsDir() {
			if path != root && shouldExcludeDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil || !matchesAny(relPath, patterns) {
			return nil
		}
		info, err := d.Info()
		if err != nil || info.Size() > DefaultMaxFileSize {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("importer: reading %s: %w", relPath, err)
		}
		docs = append(docs, Document{
			RelPath: filepath.ToSlash(relPath),
			Draft:   Parse(string(content), relPath),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("importer: traversal: %w", err)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].RelPath < docs[j].RelPath })
	return docs, nil
}

// Parse maps Markdown source onto a draft. The first "# " heading outside a
// fenced code block becomes the title and is removed from the content;
// without one the file name is used.
func Parse(content, relPath string) api.Draft {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")
	inFence := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			continue
		}
		if !inFence && strings.HasPrefix(trimmed, "# ") {
			rest := append(append([]string{}, lines[:i]...), lines[i+1:]...)
			return api.Draft{
				Title:   strings.TrimSpace(strings.TrimPrefix(trimmed, "# ")),
				Content: strings.TrimSpace(strings.Join(rest, "\n")),
			}
		}
	}
	base := filepath.Base(relPath)
	return api.Draft{
		Title:   strings.TrimSuffix(base, filepath.Ext(base)),
		Content: strings.TrimSpace(content),
	}
}
