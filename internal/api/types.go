package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ID identifies a post. The API may send it as a JSON number or string;
// it is kept opaque and only ever echoed back into URL paths.
type ID string

// UnmarshalJSON accepts numbers as well as strings.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("post id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON writes canonical integer ids as numbers so they round-trip
// unchanged. Anything else, including "007" or "+5", is written as a string.
func (id ID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ID) String() string { return string(id) }

// Post is the only entity the API serves.
type Post struct {
	ID      ID     `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Draft is the body sent on create and update.
type Draft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// SearchQuery holds the optional title and content terms of a search.
type SearchQuery struct {
	Title   string
	Content string
}

// Empty reports whether neither term is set.
func (q SearchQuery) Empty() bool {
	return q.Title == "" && q.Content == ""
}

// SortOrder selects a server-side sort. An empty Field means response order.
type SortOrder struct {
	Field     string
	Direction string
}

var (
	// ErrNoBaseURL is returned when no API base URL has been configured.
	ErrNoBaseURL = errors.New("no API base URL configured")
	// ErrEmptySearch is returned when a search has neither a title nor a content term.
	ErrEmptySearch = errors.New("please enter a search term for title or content")
	// ErrMissingFields is returned when an update lacks a title or content.
	ErrMissingFields = errors.New("please fill in both title and content")
)

// StatusError is returned for non-2xx API responses.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("posts API error (%d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == 404
}
