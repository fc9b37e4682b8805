// Package web serves the browser front-end for a posts API. Pages are
// rendered on the server: every form submit maps to one API request through
// api.Client and the page is rebuilt from that response.
package web

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"

	"github.com/ziadkadry99/postboard/internal/api"
)

// BaseURLCookie persists the API base URL in the browser.
const BaseURLCookie = "apiBaseUrl"

const baseURLCookieMaxAge = 365 * 24 * time.Hour

// Options configures a Frontend.
type Options struct {
	// DefaultBaseURL is used when the browser has no apiBaseUrl cookie.
	DefaultBaseURL string
	// Markdown renders post content as Markdown instead of plain text.
	Markdown bool
}

// Frontend is the browser-facing UI.
type Frontend struct {
	client *api.Client
	opts   Options
	tmpl   *template.Template
	md     goldmark.Markdown
}

// New creates a Frontend. client supplies the HTTP transport; its base URL
// is replaced per request by the browser's configured one.
func New(client *api.Client, opts Options) (*Frontend, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	f := &Frontend{
		client: client,
		opts:   opts,
		tmpl:   tmpl,
	}
	if opts.Markdown {
		f.md = newMarkdown()
	}
	return f, nil
}

// RegisterRoutes mounts all front-end routes onto the given router.
func (f *Frontend) RegisterRoutes(r chi.Router) {
	r.Get("/", f.handleIndex)
	r.Post("/base-url", f.handleSetBaseURL)
	r.Get("/search", f.handleSearch)
	r.Get("/clear-search", f.handleClearSearch)
	r.Get("/sort", f.handleSort)
	r.Post("/posts", f.handleCreate)
	r.Post("/posts/{id}", f.handleUpdate)
	r.Post("/posts/{id}/delete", f.handleDelete)
}

// baseURL returns the browser's saved API base URL, or the default.
func (f *Frontend) baseURL(r *http.Request) string {
	if c, err := r.Cookie(BaseURLCookie); err == nil && c.Value != "" {
		if v, err := url.QueryUnescape(c.Value); err == nil {
			return v
		}
	}
	return f.opts.DefaultBaseURL
}

// clientFor returns a client bound to the request's base URL, or nil when none is known.
func (f *Frontend) clientFor(r *http.Request) *api.Client {
	base := f.baseURL(r)
	if base == "" {
		return nil
	}
	return f.client.WithBaseURL(base)
}

func setBaseURLCookie(w http.ResponseWriter, base string) {
	http.SetCookie(w, &http.Cookie{
		Name:     BaseURLCookie,
		Value:    url.QueryEscape(base),
		Path:     "/",
		MaxAge:   int(baseURLCookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearBaseURLCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:   BaseURLCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}
