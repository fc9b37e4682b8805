package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/postboard/internal/api"
)

func (s *Server) handleListPosts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	order := api.SortOrder{
		Field:     request.GetString("sort", ""),
		Direction: request.GetString("direction", "asc"),
	}
	posts, err := s.client.Sort(ctx, order)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing posts failed: %v", err)), nil
	}
	return mcp.NewToolResultText(formatPosts(posts)), nil
}

func (s *Server) handleSearchPosts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	q := api.SearchQuery{
		Title:   request.GetString("title", ""),
		Content: request.GetString("content", ""),
	}
	if q.Empty() {
		return mcp.NewToolResultError("provide a title or content search term"), nil
	}
	posts, err := s.client.Search(ctx, q)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}
	return mcp.NewToolResultText(formatPosts(posts)), nil
}

func (s *Server) handleCreatePost(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: title"), nil
	}
	content, err := request.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: content"), nil
	}

	post, err := s.client.Create(ctx, api.Draft{Title: title, Content: content})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("creating post failed: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Created post %s.\n\n%s", post.ID, formatPost(*post))), nil
}

func (s *Server) handleUpdatePost(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}
	draft := api.Draft{
		Title:   request.GetString("title", ""),
		Content: request.GetString("content", ""),
	}

	post, err := s.client.Update(ctx, api.ID(id), draft)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("updating post %s failed: %v", id, err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Updated post %s.\n\n%s", post.ID, formatPost(*post))), nil
}

func (s *Server) handleDeletePost(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}
	if err := s.client.Delete(ctx, api.ID(id)); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("deleting post %s failed: %v", id, err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Deleted post %s.", id)), nil
}

// formatPosts renders posts as Markdown for the model.
func formatPosts(posts []api.Post) string {
	if len(posts) == 0 {
		return "No posts found."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d post(s):\n", len(posts))
	for _, p := range posts {
		sb.WriteString("\n")
		sb.WriteString(formatPost(p))
	}
	return sb.String()
}

func formatPost(p api.Post) string {
	return fmt.Sprintf("## [%s] %s\n%s\n", p.ID, p.Title, p.Content)
}
