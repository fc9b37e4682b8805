package posts

import "time"

// Post is a stored blog post.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// SortField is a column posts can be ordered by.
type SortField string

const (
	SortNone    SortField = ""
	SortTitle   SortField = "title"
	SortContent SortField = "content"
)

// Direction orders a sorted listing.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ListFilter controls ordering of a listing.
type ListFilter struct {
	Sort      SortField
	Direction Direction
}

// SearchFilter holds case-insensitive substring terms. A post matches when
// any non-empty term is found in its field.
type SearchFilter struct {
	Title   string
	Content string
}

// Patch is a partial update; nil fields keep their stored value.
type Patch struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// seedPosts are inserted into an empty database.
var seedPosts = []Post{
	{ID: 1, Title: "First post", Content: "This is the first post."},
	{ID: 2, Title: "Second post", Content: "This is the second post."},
}
