package web

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/postboard/internal/api"
	"github.com/ziadkadry99/postboard/internal/config"
)

const (
	noticeEmptySearch   = "Please enter a search term for title or content"
	noticeMissingFields = "Please fill in both title and content"
	noticeBadBaseURL    = "Please enter a valid http(s) API base URL"
)

func (f *Frontend) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := f.newPage(r)
	if client := f.clientFor(r); client != nil {
		posts, err := client.List(r.Context())
		f.fill(&data, posts, err)
	}
	f.render(w, http.StatusOK, data)
}

func (f *Frontend) handleSetBaseURL(w http.ResponseWriter, r *http.Request) {
	base := strings.TrimSpace(r.PostFormValue("api-base-url"))
	if base == "" {
		clearBaseURLCookie(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := config.ValidateBaseURL(base); err != nil {
		data := f.newPage(r)
		data.BaseURL = base
		data.Notice = noticeBadBaseURL
		f.render(w, http.StatusBadRequest, data)
		return
	}
	setBaseURLCookie(w, base)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (f *Frontend) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := api.SearchQuery{
		Title:   r.URL.Query().Get("search-title"),
		Content: r.URL.Query().Get("search-content"),
	}
	data := f.newPage(r)
	data.SearchTitle = q.Title
	data.SearchContent = q.Content

	if q.Empty() {
		data.Notice = noticeEmptySearch
		f.render(w, http.StatusBadRequest, data)
		return
	}

	if client := f.clientFor(r); client != nil {
		posts, err := client.Search(r.Context(), q)
		f.fill(&data, posts, err)
	}
	f.render(w, http.StatusOK, data)
}

func (f *Frontend) handleClearSearch(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (f *Frontend) handleSort(w http.ResponseWriter, r *http.Request) {
	order := api.SortOrder{
		Field:     r.URL.Query().Get("sort-field"),
		Direction: r.URL.Query().Get("sort-direction"),
	}
	data := f.newPage(r)
	data.SortField = order.Field
	data.SortDirection = order.Direction

	if client := f.clientFor(r); client != nil {
		posts, err := client.Sort(r.Context(), order)
		f.fill(&data, posts, err)
	}
	f.render(w, http.StatusOK, data)
}

func (f *Frontend) handleCreate(w http.ResponseWriter, r *http.Request) {
	draft := api.Draft{
		Title:   r.PostFormValue("post-title"),
		Content: r.PostFormValue("post-content"),
	}
	if client := f.clientFor(r); client != nil {
		post, err := client.Create(r.Context(), draft)
		if err != nil {
			log.Printf("web: %v", err)
		} else {
			log.Printf("web: post added: %s", post.ID)
		}
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (f *Frontend) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := postID(r)
	draft := api.Draft{
		Title:   r.PostFormValue("edit-post-title"),
		Content: r.PostFormValue("edit-post-content"),
	}
	if draft.Title == "" || draft.Content == "" {
		data := f.newPage(r)
		data.Notice = noticeMissingFields
		f.render(w, http.StatusBadRequest, data)
		return
	}

	if client := f.clientFor(r); client != nil {
		post, err := client.Update(r.Context(), id, draft)
		if err != nil {
			log.Printf("web: %v", err)
		} else {
			log.Printf("web: post updated: %s", post.ID)
		}
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (f *Frontend) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := postID(r)
	if client := f.clientFor(r); client != nil {
		if err := client.Delete(r.Context(), id); err != nil {
			log.Printf("web: %v", err)
		} else {
			log.Printf("web: post deleted: %s", id)
		}
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// postID returns the {id} path parameter as the API id. chi matches on the
// escaped path when the request has one, so the parameter is unescaped then.
func postID(r *http.Request) api.ID {
	raw := chi.URLParam(r, "id")
	if r.URL.RawPath != "" {
		if v, err := url.PathUnescape(raw); err == nil {
			return api.ID(v)
		}
	}
	return api.ID(raw)
}

// fill copies a fetch result into the page. Failures are logged and leave
// the container empty.
func (f *Frontend) fill(data *pageData, posts []api.Post, err error) {
	if err != nil {
		if !errors.Is(err, api.ErrEmptySearch) {
			log.Printf("web: %v", err)
		}
		return
	}
	data.Loaded = true
	data.Posts = f.views(posts)
}

func (f *Frontend) render(w http.ResponseWriter, status int, data pageData) {
	var buf bytes.Buffer
	if err := f.tmpl.ExecuteTemplate(&buf, "index.html", data); err != nil {
		log.Printf("web: rendering page: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
