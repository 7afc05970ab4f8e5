// ABOUTME: MCP server setup for the nosh nutrition tracker.
// ABOUTME: Wraps the MCP server with food log and profile store access.
package mcp

import (
	"context"

	"github.com/harperreed/nosh/internal/foodlog"
	"github.com/harperreed/nosh/internal/profile"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with store access.
type Server struct {
	mcpServer *mcp.Server
	logs      *foodlog.Store
	profiles  *profile.Store
}

// NewServer creates a new MCP server over the given stores.
func NewServer(logs *foodlog.Store, profiles *profile.Store) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "nosh",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		logs:      logs,
		profiles:  profiles,
	}

	s.registerTools()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
