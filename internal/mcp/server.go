package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/postboard/internal/api"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the posts API as tools.
type Server struct {
	client *api.Client
	mcp    *server.MCPServer
}

// NewServer creates a new MCP server that forwards tool calls through client.
func NewServer(client *api.Client) *Server {
	s := &Server{client: client}

	s.mcp = server.NewMCPServer(
		"postboard",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(listPostsTool, s.handleListPosts)
	s.mcp.AddTool(searchPostsTool, s.handleSearchPosts)
	s.mcp.AddTool(createPostTool, s.handleCreatePost)
	s.mcp.AddTool(updatePostTool, s.handleUpdatePost)
	s.mcp.AddTool(deletePostTool, s.handleDeletePost)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
