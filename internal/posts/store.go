package posts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ziadkadry99/postboard/internal/audit"
	"github.com/ziadkadry99/postboard/internal/db"
)

var (
	// ErrNotFound is returned when a post does not exist.
	ErrNotFound = errors.New("post not found")
	// ErrInvalidSort is returned for an unknown sort field or direction.
	ErrInvalidSort = errors.New("invalid sort")
)

// Store manages persistence of posts. Mutations are recorded in the audit
// trail when an audit store is attached.
type Store struct {
	db    *db.DB
	audit *audit.Store
}

// NewStore creates a new posts store. auditStore may be nil.
func NewStore(database *db.DB, auditStore *audit.Store) *Store {
	return &Store{db: database, audit: auditStore}
}

// Seed inserts the initial posts when the table is empty.
func (s *Store) Seed(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count); err != nil {
		return fmt.Errorf("counting posts: %w", err)
	}
	if count > 0 {
		return nil
	}
	now := time.Now().UTC()
	for _, p := range seedPosts {
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO posts (id, title, content, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
			p.ID, p.Title, p.Content, now, now,
		); err != nil {
			return fmt.Errorf("seeding post %d: %w", p.ID, err)
		}
	}
	return nil
}

// Create stores a new post. Its id is the highest existing id plus one.
func (s *Store) Create(ctx context.Context, title, content string) (*Post, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO posts (title, content, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		title, content, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting post: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading post id: %w", err)
	}
	p := &Post{ID: id, Title: title, Content: content, CreatedAt: now, UpdatedAt: now}

	s.record(ctx, audit.ActionPostCreated, id, fmt.Sprintf("Created post %d", id), nil, p)
	return p, nil
}

// Get retrieves a post by id.
func (s *Store) Get(ctx context.Context, id int64) (*Post, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, content, created_at, updated_at FROM posts WHERE id = ?`, id)
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting post: %w", err)
	}
	return p, nil
}

// List returns all posts, by id unless a sort is requested.
func (s *Store) List(ctx context.Context, filter ListFilter) ([]Post, error) {
	order, err := orderClause(filter)
	if err != nil {
		return nil, err
	}
	return s.query(ctx, `SELECT id, title, content, created_at, updated_at FROM posts `+order)
}

// Search returns posts where any non-empty term of f is a case-insensitive
// substring of the matching field.
func (s *Store) Search(ctx context.Context, f SearchFilter) ([]Post, error) {
	var conds []string
	var args []any
	if f.Title != "" {
		conds = append(conds, `title LIKE ? ESCAPE '\'`)
		args = append(args, likePattern(f.Title))
	}
	if f.Content != "" {
		conds = append(conds, `content LIKE ? ESCAPE '\'`)
		args = append(args, likePattern(f.Content))
	}
	if len(conds) == 0 {
		return []Post{}, nil
	}
	return s.query(ctx,
		`SELECT id, title, content, created_at, updated_at FROM posts WHERE `+
			strings.Join(conds, " OR ")+` ORDER BY id`, args...)
}

// Update applies a partial update and returns the stored post.
func (s *Store) Update(ctx context.Context, id int64, patch Patch) (*Post, error) {
	before, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	after := *before
	if patch.Title != nil {
		after.Title = *patch.Title
	}
	if patch.Content != nil {
		after.Content = *patch.Content
	}
	after.UpdatedAt = time.Now().UTC()

	if _, err := s.db.ExecContext(ctx,
		`UPDATE posts SET title = ?, content = ?, updated_at = ? WHERE id = ?`,
		after.Title, after.Content, after.UpdatedAt, id,
	); err != nil {
		return nil, fmt.Errorf("updating post: %w", err)
	}

	s.record(ctx, audit.ActionPostUpdated, id, fmt.Sprintf("Updated post %d", id), before, &after)
	return &after, nil
}

// Delete removes a post.
func (s *Store) Delete(ctx context.Context, id int64) error {
	before, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}

	s.record(ctx, audit.ActionPostDeleted, id, fmt.Sprintf("Deleted post %d", id), before, nil)
	return nil
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]Post, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	defer rows.Close()

	posts := []Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning post: %w", err)
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

// record writes an audit entry. Failures are not fatal to the mutation.
func (s *Store) record(ctx context.Context, action audit.Action, id int64, summary string, before, after *Post) {
	if s.audit == nil {
		return
	}
	entry := audit.Entry{
		Action:        action,
		PostID:        id,
		Summary:       summary,
		PreviousValue: snapshot(before),
		NewValue:      snapshot(after),
	}
	if err := s.audit.Log(ctx, entry); err != nil {
		logf("posts: audit %s for post %d: %v", action, id, err)
	}
}

func snapshot(p *Post) string {
	if p == nil {
		return ""
	}
	data, err := json.Marshal(p)
	if err != nil {
		return ""
	}
	return string(data)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPost(sc scanner) (*Post, error) {
	var p Post
	if err := sc.Scan(&p.ID, &p.Title, &p.Content, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// orderClause whitelists the sort column and direction.
func orderClause(f ListFilter) (string, error) {
	dir := "ASC"
	switch f.Direction {
	case "", Asc:
	case Desc:
		dir = "DESC"
	default:
		return "", fmt.Errorf("%w: direction must be asc or desc, got %q", ErrInvalidSort, f.Direction)
	}

	switch f.Sort {
	case SortNone:
		return "ORDER BY id", nil
	case SortTitle, SortContent:
		return fmt.Sprintf("ORDER BY %s COLLATE NOCASE %s, id", f.Sort, dir), nil
	default:
		return "", fmt.Errorf("%w: sort field must be title or content, got %q", ErrInvalidSort, f.Sort)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
