package handlers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kozko2001/meme-generator-mcp/internal/config"
	"github.com/kozko2001/meme-generator-mcp/internal/logger"
	"github.com/kozko2001/meme-generator-mcp/internal/mcpserver"
)

// NewServeCmd creates the serve command for starting the MCP server
func NewServeCmd() *cobra.Command {
	var (
		transport string
		listen    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP tool server",
		Long: `Start the MCP server exposing the meme generator tools.

The server provides:
  • search_templates, suggest_templates, analyze_content
  • extract_quotes, fetch_url_text
  • list_templates, get_template, list_categories
  • render_meme, render_meme_batch

By default the server speaks the stdio transport, which is what MCP
clients such as Claude Desktop expect. The sse transport serves the
same tools over HTTP for clients that connect via Server-Sent Events.

Examples:
  # Serve over stdio (for MCP client configs)
  meme-mcp serve

  # Serve over SSE on the default listen address
  meme-mcp serve --transport sse

  # Serve over SSE on a custom address
  meme-mcp serve --transport sse --listen :9000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(transport, listen)
		},
	}

	cmd.Flags().StringVar(&transport, "transport", "", "transport to serve on: stdio or sse (default from config: stdio)")
	cmd.Flags().StringVar(&listen, "listen", "", "listen address for the sse transport (default from config: :8475)")

	return cmd
}

func runServe(transport, listen string) error {
	log := logger.Get()

	cfg := config.Get()

	// Override server config from flags if provided
	if transport != "" {
		cfg.Server.Transport = transport
	}
	if listen != "" {
		cfg.Server.Listen = listen
	}

	switch cfg.Server.Transport {
	case "stdio", "sse":
	default:
		return fmt.Errorf("unknown transport %q (supported: stdio, sse)", cfg.Server.Transport)
	}
	if cfg.Server.Transport == "sse" && cfg.Server.Listen == "" {
		return fmt.Errorf("the sse transport requires a listen address")
	}

	srv, err := mcpserver.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	log.Info().
		Str("transport", cfg.Server.Transport).
		Str("version", cfg.Server.Version).
		Msg("Starting MCP server")

	return srv.Serve()
}
