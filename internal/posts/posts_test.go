package posts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/postboard/internal/audit"
	"github.com/ziadkadry99/postboard/internal/db"
)

func setupTestStore(t *testing.T) (*Store, *audit.Store) {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	auditStore := audit.NewStore(database)
	return NewStore(database, auditStore), auditStore
}

func setupRouter(t *testing.T, store *Store) chi.Router {
	t.Helper()
	r := chi.NewRouter()
	RegisterRoutes(r, store)
	return r
}

func serve(r chi.Router, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var payload map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("error body is not JSON: %q", w.Body.String())
	}
	return payload["error"]
}

func TestSeed(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	if err := store.Seed(ctx); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	// Seeding twice must not duplicate.
	if err := store.Seed(ctx); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	all, err := store.List(ctx, ListFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 seeded posts, got %d", len(all))
	}
	if all[0].ID != 1 || all[0].Title != "First post" || all[1].ID != 2 {
		t.Errorf("unexpected seed %+v", all)
	}
}

func TestCreateUsesHighestIDPlusOne(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()
	store.Seed(ctx)

	p, err := store.Create(ctx, "Third", "third content")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID != 3 {
		t.Errorf("expected id 3, got %d", p.ID)
	}

	if err := store.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	p, _ = store.Create(ctx, "Fourth", "")
	if p.ID != 4 {
		t.Errorf("expected id 4 after deleting a lower id, got %d", p.ID)
	}
}

func TestListSorted(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()
	store.Create(ctx, "banana", "zeta")
	store.Create(ctx, "Apple", "alpha")
	store.Create(ctx, "cherry", "Mu")

	tests := []struct {
		filter ListFilter
		want   []string
	}{
		{ListFilter{}, []string{"banana", "Apple", "cherry"}},
		{ListFilter{Sort: SortTitle}, []string{"Apple", "banana", "cherry"}},
		{ListFilter{Sort: SortTitle, Direction: Desc}, []string{"cherry", "banana", "Apple"}},
		{ListFilter{Sort: SortContent, Direction: Asc}, []string{"Apple", "cherry", "banana"}},
	}
	for _, tt := range tests {
		got, err := store.List(ctx, tt.filter)
		if err != nil {
			t.Fatalf("List(%+v): %v", tt.filter, err)
		}
		var titles []string
		for _, p := range got {
			titles = append(titles, p.Title)
		}
		if strings.Join(titles, ",") != strings.Join(tt.want, ",") {
			t.Errorf("List(%+v) = %v, want %v", tt.filter, titles, tt.want)
		}
	}
}

func TestListInvalidSort(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	if _, err := store.List(ctx, ListFilter{Sort: "id; DROP TABLE posts"}); !errors.Is(err, ErrInvalidSort) {
		t.Errorf("expected ErrInvalidSort for field, got %v", err)
	}
	if _, err := store.List(ctx, ListFilter{Sort: SortTitle, Direction: "up"}); !errors.Is(err, ErrInvalidSort) {
		t.Errorf("expected ErrInvalidSort for direction, got %v", err)
	}
}

func TestSearch(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()
	store.Seed(ctx)
	store.Create(ctx, "100% done", "under_score")

	tests := []struct {
		name   string
		filter SearchFilter
		want   int
	}{
		{"title case-insensitive", SearchFilter{Title: "FIRST"}, 1},
		{"content", SearchFilter{Content: "second post"}, 1},
		{"either term", SearchFilter{Title: "first", Content: "second"}, 2},
		{"percent is literal", SearchFilter{Title: "%"}, 1},
		{"underscore is literal", SearchFilter{Content: "_"}, 1},
		{"no match", SearchFilter{Title: "nothing"}, 0},
		{"empty filter", SearchFilter{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.Search(ctx, tt.filter)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("expected %d results, got %d: %+v", tt.want, len(got), got)
			}
		})
	}
}

func TestUpdatePartial(t *testing.T) {
	store, auditStore := setupTestStore(t)
	ctx := context.Background()
	store.Seed(ctx)

	title := "Renamed"
	p, err := store.Update(ctx, 1, Patch{Title: &title})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if p.Title != "Renamed" || p.Content != "This is the first post." {
		t.Errorf("unexpected post after partial update: %+v", p)
	}

	stored, _ := store.Get(ctx, 1)
	if stored.Title != "Renamed" {
		t.Errorf("update not persisted: %+v", stored)
	}

	entries, _ := auditStore.Query(ctx, audit.QueryFilter{Action: audit.ActionPostUpdated})
	if len(entries) != 1 {
		t.Fatalf("expected 1 update audit entry, got %d", len(entries))
	}
	if !strings.Contains(entries[0].PreviousValue, "First post") || !strings.Contains(entries[0].NewValue, "Renamed") {
		t.Errorf("audit snapshots wrong: %+v", entries[0])
	}
}

func TestUpdateDeleteMissing(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	if _, err := store.Update(ctx, 99, Patch{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update: expected ErrNotFound, got %v", err)
	}
	if err := store.Delete(ctx, 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete: expected ErrNotFound, got %v", err)
	}
}

func TestMutationsAreAudited(t *testing.T) {
	store, auditStore := setupTestStore(t)
	ctx := context.Background()

	p, _ := store.Create(ctx, "t", "c")
	store.Delete(ctx, p.ID)

	entries, err := auditStore.Query(ctx, audit.QueryFilter{PostID: p.ID})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 audit entries, got %d", len(entries))
	}
	actions := map[audit.Action]bool{}
	for _, e := range entries {
		actions[e.Action] = true
	}
	if !actions[audit.ActionPostCreated] || !actions[audit.ActionPostDeleted] {
		t.Errorf("missing actions: %v", actions)
	}
}

func TestStoreWithoutAudit(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer database.Close()
	store := NewStore(database, nil)
	if _, err := store.Create(context.Background(), "t", "c"); err != nil {
		t.Fatalf("Create without audit: %v", err)
	}
}

// HTTP handler tests

func TestRoute_List(t *testing.T) {
	store, _ := setupTestStore(t)
	store.Seed(context.Background())
	r := setupRouter(t, store)

	w := serve(r, "GET", "/api/posts/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var got []Post
	json.Unmarshal(w.Body.Bytes(), &got)
	if len(got) != 2 {
		t.Errorf("expected 2 posts, got %d", len(got))
	}
	if strings.Contains(w.Body.String(), "created_at") {
		t.Errorf("timestamps should not be exposed: %s", w.Body.String())
	}
}

func TestRoute_ListEmptyIsArray(t *testing.T) {
	store, _ := setupTestStore(t)
	r := setupRouter(t, store)

	w := serve(r, "GET", "/api/posts/", "")
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("expected [], got %q", w.Body.String())
	}
}

func TestRoute_ListSorted(t *testing.T) {
	store, _ := setupTestStore(t)
	store.Seed(context.Background())
	r := setupRouter(t, store)

	w := serve(r, "GET", "/api/posts/?sort=title&direction=desc", "")
	var got []Post
	json.Unmarshal(w.Body.Bytes(), &got)
	if len(got) != 2 || got[0].Title != "Second post" {
		t.Errorf("expected Second post first, got %+v", got)
	}

	w = serve(r, "GET", "/api/posts/?sort=author", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid sort, got %d", w.Code)
	}
}

func TestRoute_Search(t *testing.T) {
	store, _ := setupTestStore(t)
	store.Seed(context.Background())
	r := setupRouter(t, store)

	w := serve(r, "GET", "/api/posts/search?title=second", "")
	var got []Post
	json.Unmarshal(w.Body.Bytes(), &got)
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("unexpected search result %+v", got)
	}
}

func TestRoute_Create(t *testing.T) {
	store, _ := setupTestStore(t)
	store.Seed(context.Background())
	r := setupRouter(t, store)

	w := serve(r, "POST", "/api/posts/", `{"title":"New","content":"Body"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var p Post
	json.Unmarshal(w.Body.Bytes(), &p)
	if p.ID != 3 || p.Title != "New" {
		t.Errorf("unexpected created post %+v", p)
	}
}

func TestRoute_CreateValidation(t *testing.T) {
	store, _ := setupTestStore(t)
	r := setupRouter(t, store)

	tests := []struct {
		body    string
		wantErr string
	}{
		{"", "Request body must be JSON"},
		{"not json", "Request body must be JSON"},
		{"null", "Request body must be JSON"},
		{"{}", "Request body must be JSON"},
		{`{"content":"x"}`, "Title is required"},
		{`{"title":"x"}`, "Content is required"},
		{`{"title":1,"content":"x"}`, "title must be a string"},
	}
	for _, tt := range tests {
		w := serve(r, "POST", "/api/posts/", tt.body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %d", tt.body, w.Code)
			continue
		}
		if got := errorOf(t, w); got != tt.wantErr {
			t.Errorf("body %q: error = %q, want %q", tt.body, got, tt.wantErr)
		}
	}
}

func TestRoute_Update(t *testing.T) {
	store, _ := setupTestStore(t)
	store.Seed(context.Background())
	r := setupRouter(t, store)

	w := serve(r, "PUT", "/api/posts/2", `{"content":"changed"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var p Post
	json.Unmarshal(w.Body.Bytes(), &p)
	if p.Title != "Second post" || p.Content != "changed" {
		t.Errorf("unexpected updated post %+v", p)
	}

	w = serve(r, "PUT", "/api/posts/42", `{"title":"x"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestRoute_Delete(t *testing.T) {
	store, _ := setupTestStore(t)
	store.Seed(context.Background())
	r := setupRouter(t, store)

	w := serve(r, "DELETE", "/api/posts/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var msg map[string]string
	json.Unmarshal(w.Body.Bytes(), &msg)
	if msg["message"] != "Post with id 1 has been deleted successfully." {
		t.Errorf("unexpected message %q", msg["message"])
	}

	w = serve(r, "DELETE", "/api/posts/1", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", w.Code)
	}
	if got := errorOf(t, w); got != "Post with id 1 not found" {
		t.Errorf("error = %q", got)
	}
}

func TestRoute_NonNumericID(t *testing.T) {
	store, _ := setupTestStore(t)
	r := setupRouter(t, store)

	w := serve(r, "GET", "/api/posts/abc", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
