package posts

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

var logf = log.Printf

// RegisterRoutes mounts the posts API under /api/posts.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/api/posts", func(r chi.Router) {
		r.Get("/", handleList(store))
		r.Post("/", handleCreate(store))
		r.Get("/search", handleSearch(store))
		r.Get("/{id}", handleGet(store))
		r.Put("/{id}", handleUpdate(store))
		r.Delete("/{id}", handleDelete(store))
	})
}

func handleList(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := ListFilter{
			Sort:      SortField(q.Get("sort")),
			Direction: Direction(q.Get("direction")),
		}

		posts, err := store.List(r.Context(), filter)
		if errors.Is(err, ErrInvalidSort) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, posts)
	}
}

func handleSearch(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		posts, err := store.Search(r.Context(), SearchFilter{
			Title:   q.Get("title"),
			Content: q.Get("content"),
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, posts)
	}
}

func handleGet(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := postID(w, r)
		if !ok {
			return
		}
		p, err := store.Get(r.Context(), id)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("Post with id %d not found", id))
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func handleCreate(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, ok := decodeObject(w, r)
		if !ok {
			return
		}
		title, hasTitle := fields["title"]
		if !hasTitle {
			writeError(w, http.StatusBadRequest, "Title is required")
			return
		}
		content, hasContent := fields["content"]
		if !hasContent {
			writeError(w, http.StatusBadRequest, "Content is required")
			return
		}

		p, err := store.Create(r.Context(), title, content)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, p)
	}
}

func handleUpdate(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := postID(w, r)
		if !ok {
			return
		}
		fields, ok := decodeObject(w, r)
		if !ok {
			return
		}

		var patch Patch
		if v, ok := fields["title"]; ok {
			patch.Title = &v
		}
		if v, ok := fields["content"]; ok {
			patch.Content = &v
		}

		p, err := store.Update(r.Context(), id, patch)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("Post with id %d not found", id))
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func handleDelete(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := postID(w, r)
		if !ok {
			return
		}
		err := store.Delete(r.Context(), id)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("Post with id %d not found", id))
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"message": fmt.Sprintf("Post with id %d has been deleted successfully.", id),
		})
	}
}

// postID parses the {id} path parameter, answering 404 when it is not an integer.
func postID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Post with id %s not found", raw))
		return 0, false
	}
	return id, true
}

// decodeObject reads a JSON object of string fields. Non-string values are
// rejected so a title can never silently become "123".
func decodeObject(w http.ResponseWriter, r *http.Request) (map[string]string, bool) {
	data, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil || len(bytes.TrimSpace(data)) == 0 {
		writeError(w, http.StatusBadRequest, "Request body must be JSON")
		return nil, false
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || len(raw) == 0 {
		writeError(w, http.StatusBadRequest, "Request body must be JSON")
		return nil, false
	}

	fields := make(map[string]string, len(raw))
	for _, key := range []string{"title", "content"} {
		v, ok := raw[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("%s must be a string", key))
			return nil, false
		}
		fields[key] = s
	}
	return fields, true
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
