package mcp

import "github.com/mark3labs/mcp-go/mcp"

var listPostsTool = mcp.NewTool("list_posts",
	mcp.WithDescription("List all blog posts, optionally sorted by title or content."),
	mcp.WithString("sort",
		mcp.Description("Field to sort by"),
		mcp.Enum("title", "content"),
	),
	mcp.WithString("direction",
		mcp.Description("Sort direction (default asc)"),
		mcp.Enum("asc", "desc"),
	),
)

var searchPostsTool = mcp.NewTool("search_posts",
	mcp.WithDescription("Search posts by case-insensitive substring of title and/or content. At least one term is required."),
	mcp.WithString("title",
		mcp.Description("Substring to look for in post titles"),
	),
	mcp.WithString("content",
		mcp.Description("Substring to look for in post content"),
	),
)

var createPostTool = mcp.NewTool("create_post",
	mcp.WithDescription("Create a new blog post."),
	mcp.WithString("title",
		mcp.Required(),
		mcp.Description("Post title"),
	),
	mcp.WithString("content",
		mcp.Required(),
		mcp.Description("Post content"),
	),
)

var updatePostTool = mcp.NewTool("update_post",
	mcp.WithDescription("Replace the title and content of an existing post."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Post id"),
	),
	mcp.WithString("title",
		mcp.Required(),
		mcp.Description("New title"),
	),
	mcp.WithString("content",
		mcp.Required(),
		mcp.Description("New content"),
	),
)

var deletePostTool = mcp.NewTool("delete_post",
	mcp.WithDescription("Delete a post by id."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Post id"),
	),
)
