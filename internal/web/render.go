package web

import (
	"bytes"
	"encoding/hex"
	"html/template"
	"log"
	"net/http"
	"net/url"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"

	"github.com/ziadkadry99/postboard/internal/api"
)

// pageData holds the data passed to index.html.
type pageData struct {
	BaseURL       string
	Notice        string
	Loaded        bool
	Posts         []postView
	SearchTitle   string
	SearchContent string
	SortField     string
	SortDirection string
}

// postView is one post as rendered in the post container.
type postView struct {
	ID          string
	PathID      string
	ModalID     string
	Title       string
	Content     string
	ContentHTML template.HTML
}

func (f *Frontend) newPage(r *http.Request) pageData {
	return pageData{
		BaseURL:       f.baseURL(r),
		SortDirection: "asc",
	}
}

func (f *Frontend) views(posts []api.Post) []postView {
	out := make([]postView, 0, len(posts))
	for _, p := range posts {
		v := postView{
			ID:      p.ID.String(),
			PathID:  url.PathEscape(p.ID.String()),
			ModalID: modalID(p.ID.String()),
			Title:   p.Title,
			Content: p.Content,
		}
		if f.md != nil {
			v.ContentHTML = f.renderMarkdown(p.Content)
		}
		out = append(out, v)
	}
	return out
}

// newMarkdown builds the goldmark renderer. Raw HTML inside post content
// is omitted from the output.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
	)
}

func (f *Frontend) renderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := f.md.Convert([]byte(src), &buf); err != nil {
		log.Printf("web: rendering markdown: %v", err)
		return template.HTML("<p>" + template.HTMLEscapeString(src) + "</p>")
	}
	return template.HTML(buf.String())
}

// modalID returns the element id of a post's edit modal. Purely alphanumeric
// ids are used as is; any other id is hex-encoded behind a "_" marker, so two
// distinct ids never share a modal.
func modalID(id string) string {
	if id != "" && isAlnum(id) {
		return "edit-modal-" + id
	}
	return "edit-modal-_" + hex.EncodeToString([]byte(id))
}

func isAlnum(s string) bool {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
