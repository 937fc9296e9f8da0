package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerTools declares every tool schema and binds it to its handler.
func registerTools(s *server.MCPServer, h *Handlers) {
	s.AddTool(mcp.NewTool("search_templates",
		mcp.WithDescription("Search meme templates by keyword. Returns templates ranked by how well their keywords match the query terms."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Space-separated search terms, e.g. \"surprised reaction\""),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results to return"),
			mcp.DefaultNumber(5),
			mcp.Min(1),
			mcp.Max(10),
		),
	), h.handleSearchTemplates)

	s.AddTool(mcp.NewTool("suggest_templates",
		mcp.WithDescription("Suggest meme templates for a piece of content. Analyzes the text for tone, tense, and humor signals and returns scored suggestions with reasons."),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("The text to find a meme template for"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of suggestions to return"),
			mcp.DefaultNumber(5),
			mcp.Min(1),
			mcp.Max(10),
		),
	), h.handleSuggestTemplates)

	s.AddTool(mcp.NewTool("analyze_content",
		mcp.WithDescription("Analyze text for the semantic and grammatical signals the suggester scores on: surprise, irony, confusion, preference, tense, questions, and more."),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("The text to analyze"),
		),
	), h.handleAnalyzeContent)

	s.AddTool(mcp.NewTool("extract_quotes",
		mcp.WithDescription("Extract short meme-worthy quotes from longer content. Returns candidate lines scored by punchiness with the reasons behind each score."),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("The text to mine for quotable lines"),
		),
		mcp.WithNumber("max_length",
			mcp.Description("Maximum quote length in characters"),
			mcp.DefaultNumber(100),
			mcp.Min(10),
			mcp.Max(200),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of quotes to return"),
			mcp.DefaultNumber(10),
			mcp.Min(1),
			mcp.Max(20),
		),
	), h.handleExtractQuotes)

	s.AddTool(mcp.NewTool("list_templates",
		mcp.WithDescription("List available meme templates with their metadata, optionally filtered by category."),
		mcp.WithString("category",
			mcp.Description("Restrict the listing to one category, e.g. \"reactions\""),
		),
	), h.handleListTemplates)

	s.AddTool(mcp.NewTool("get_template",
		mcp.WithDescription("Get one template's full record: slot count, example text, metadata, similar templates, and an example image URL."),
		mcp.WithString("template_id",
			mcp.Required(),
			mcp.Description("Template identifier, e.g. \"drake\""),
		),
	), h.handleGetTemplate)

	s.AddTool(mcp.NewTool("list_categories",
		mcp.WithDescription("List the template categories with their member templates."),
	), h.handleListCategories)

	s.AddTool(mcp.NewTool("render_meme",
		mcp.WithDescription("Render a meme image. Takes a template ID and one text line per slot; returns the image and its shareable URL."),
		mcp.WithString("template_id",
			mcp.Required(),
			mcp.Description("Template identifier, e.g. \"drake\""),
		),
		mcp.WithArray("text_lines",
			mcp.Required(),
			mcp.Description("Text for each slot, in order. Use an empty string to leave a slot blank."),
			mcp.Items(map[string]any{"type": "string"}),
		),
	), h.handleRenderMeme)

	s.AddTool(mcp.NewTool("render_meme_batch",
		mcp.WithDescription("Render up to 10 memes in one call. Items fail independently; the response reports each item's URL or error plus a success tally."),
		mcp.WithArray("items",
			mcp.Required(),
			mcp.Description("Render requests, each with a template_id and text_lines"),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"template_id": map[string]any{
						"type":        "string",
						"description": "Template identifier",
					},
					"text_lines": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "Text for each slot, in order",
					},
				},
				"required": []string{"template_id", "text_lines"},
			}),
		),
	), h.handleRenderMemeBatch)

	s.AddTool(mcp.NewTool("fetch_url_text",
		mcp.WithDescription("Fetch a web page and return its readable text, for meming an article's content."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("The http(s) URL to fetch"),
		),
	), h.handleFetchURLText)
}
