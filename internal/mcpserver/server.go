// Package mcpserver exposes the meme generator as an MCP tool server over
// stdio or SSE.
package mcpserver

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/kozko2001/meme-generator-mcp/internal/config"
	"github.com/kozko2001/meme-generator-mcp/internal/logger"
)

const instructions = `Meme generator tools. Typical flow: call suggest_templates with your
content (or search_templates with keywords), pick a template, shorten the
content to one line per slot (extract_quotes helps for long text), then call
render_meme. Use fetch_url_text to pull article text before suggesting.`

// Server bundles the MCP server with its transport configuration.
type Server struct {
	mcp *server.MCPServer
	cfg *config.Config
	log zerolog.Logger
}

// New builds the tool handlers and registers every tool. Fails when the
// built-in catalog is inconsistent.
func New(cfg *config.Config) (*Server, error) {
	h, err := NewHandlers(cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing tool handlers: %w", err)
	}

	s := server.NewMCPServer(
		cfg.Server.Name,
		cfg.Server.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)
	registerTools(s, h)

	return &Server{
		mcp: s,
		cfg: cfg,
		log: logger.Get().With().Str("component", "mcpserver").Logger(),
	}, nil
}

// Serve blocks serving the configured transport.
func (s *Server) Serve() error {
	switch s.cfg.Server.Transport {
	case "sse":
		s.log.Info().Str("listen", s.cfg.Server.Listen).Msg("Starting MCP server over SSE")
		return server.NewSSEServer(s.mcp).Start(s.cfg.Server.Listen)
	default:
		s.log.Info().Msg("Starting MCP server on stdio")
		return server.ServeStdio(s.mcp)
	}
}
