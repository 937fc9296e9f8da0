package mcpserver

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"

	"github.com/kozko2001/meme-generator-mcp/internal/analysis"
	"github.com/kozko2001/meme-generator-mcp/internal/catalog"
	"github.com/kozko2001/meme-generator-mcp/internal/config"
	"github.com/kozko2001/meme-generator-mcp/internal/fetch"
	"github.com/kozko2001/meme-generator-mcp/internal/logger"
	"github.com/kozko2001/meme-generator-mcp/internal/memegen"
	"github.com/kozko2001/meme-generator-mcp/internal/memerr"
	"github.com/kozko2001/meme-generator-mcp/internal/quotes"
	"github.com/kozko2001/meme-generator-mcp/internal/search"
	"github.com/kozko2001/meme-generator-mcp/internal/suggest"
)

const (
	minBatchItems = 1
	maxBatchItems = 10
)

// Handlers holds the engines behind the MCP tools.
type Handlers struct {
	cfg       *config.Config
	cat       *catalog.Catalog
	index     *search.Index
	analyzer  *analysis.Analyzer
	suggester *suggest.Suggester
	extractor *quotes.Extractor
	renderer  *memegen.Client
	fetcher   *fetch.Fetcher
	log       zerolog.Logger
}

// NewHandlers loads the catalog and wires up all tool engines. A catalog
// consistency failure aborts startup.
func NewHandlers(cfg *config.Config) (*Handlers, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, err
	}

	analyzer := analysis.NewAnalyzer()
	return &Handlers{
		cfg:       cfg,
		cat:       cat,
		index:     search.NewIndex(cat),
		analyzer:  analyzer,
		suggester: suggest.NewSuggester(cat, analyzer),
		extractor: quotes.NewExtractor(),
		renderer:  memegen.NewClient(cfg.Memegen.BaseURL, cfg.Memegen.TimeoutDuration(), cfg.Memegen.MaxConcurrent),
		fetcher:   fetch.NewFetcher(cfg.Fetch.TimeoutDuration(), cfg.Fetch.MaxWords),
		log:       logger.Get().With().Str("component", "mcpserver").Logger(),
	}, nil
}

// templateView is a catalog entry merged with its metadata for tool output.
type templateView struct {
	catalog.Template
	Category   catalog.CategoryID `json:"category"`
	Usage      string             `json:"usage"`
	Keywords   []string           `json:"keywords"`
	Popularity catalog.Popularity `json:"popularity"`
}

func (h *Handlers) viewFor(t catalog.Template) templateView {
	v := templateView{Template: t}
	if m, ok := h.cat.Metadata(t.ID); ok {
		v.Category = m.Category
		v.Usage = m.UsageDescription
		v.Keywords = m.Keywords
		v.Popularity = m.Popularity
	}
	return v
}

func (h *Handlers) handleSearchTemplates(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := requireTrimmedString(req, "query")
	if err != nil {
		return errResult(err), nil
	}
	limit, err := optionalIntArg(req, "limit", h.cfg.Search.DefaultLimit, 1, 10)
	if err != nil {
		return errResult(err), nil
	}

	results := h.index.Search(query)
	total := len(results)
	if total > limit {
		results = results[:limit]
	}
	h.log.Debug().Str("query", query).Int("matches", total).Msg("Searched templates")

	return jsonResult(map[string]any{
		"query":         query,
		"results":       results,
		"total_matches": total,
	}), nil
}

func (h *Handlers) handleSuggestTemplates(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := requireTrimmedString(req, "content")
	if err != nil {
		return errResult(err), nil
	}
	limit, err := optionalIntArg(req, "limit", h.cfg.Suggest.DefaultLimit, suggest.MinLimit, suggest.MaxLimit)
	if err != nil {
		return errResult(err), nil
	}

	suggestions := h.suggester.Suggest(content, limit)
	h.log.Debug().Int("suggestions", len(suggestions)).Msg("Suggested templates")

	return jsonResult(map[string]any{
		"suggestions": suggestions,
	}), nil
}

func (h *Handlers) handleAnalyzeContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := requireTrimmedString(req, "content")
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(h.analyzer.Analyze(content)), nil
}

func (h *Handlers) handleExtractQuotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := requireTrimmedString(req, "content")
	if err != nil {
		return errResult(err), nil
	}
	maxLength, err := optionalIntArg(req, "max_length", h.cfg.Quotes.DefaultMaxLength, quotes.MinMaxLength, quotes.MaxMaxLength)
	if err != nil {
		return errResult(err), nil
	}
	limit, err := optionalIntArg(req, "limit", h.cfg.Quotes.DefaultLimit, quotes.MinLimit, quotes.MaxLimit)
	if err != nil {
		return errResult(err), nil
	}

	return jsonResult(h.extractor.Extract(content, maxLength, limit)), nil
}

func (h *Handlers) handleListTemplates(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := strings.TrimSpace(req.GetString("category", ""))

	var templates []catalog.Template
	if category == "" {
		for _, id := range h.cat.SortedIDs() {
			if t, ok := h.cat.Template(id); ok {
				templates = append(templates, t)
			}
		}
	} else {
		catID := catalog.CategoryID(strings.ToLower(category))
		if _, ok := h.cat.Category(catID); !ok {
			return errResult(memerr.NotFoundf("category", "unknown category %q, valid categories: %s", category, strings.Join(h.categoryIDs(), ", "))), nil
		}
		templates = h.cat.TemplatesInCategory(catID)
	}

	views := make([]templateView, 0, len(templates))
	for _, t := range templates {
		views = append(views, h.viewFor(t))
	}

	return jsonResult(map[string]any{
		"templates": views,
		"count":     len(views),
	}), nil
}

func (h *Handlers) handleGetTemplate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireTrimmedString(req, "template_id")
	if err != nil {
		return errResult(err), nil
	}

	t, ok := h.cat.Template(id)
	if !ok {
		return errResult(memerr.NotFoundf("template_id", "unknown template %q", id)), nil
	}

	view := h.viewFor(t)
	var similar []string
	if m, ok := h.cat.Metadata(id); ok {
		similar = m.SimilarTemplates
	}

	return jsonResult(map[string]any{
		"template":          view,
		"similar_templates": similar,
		"example_url":       h.renderer.URL(t.ID, t.ExampleText),
	}), nil
}

func (h *Handlers) handleListCategories(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type categoryView struct {
		catalog.Category
		TemplateCount int `json:"template_count"`
	}

	cats := h.cat.Categories()
	views := make([]categoryView, 0, len(cats))
	for _, c := range cats {
		views = append(views, categoryView{Category: c, TemplateCount: len(c.TemplateIDs)})
	}

	return jsonResult(map[string]any{
		"categories": views,
		"count":      len(views),
	}), nil
}

func (h *Handlers) handleRenderMeme(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireTrimmedString(req, "template_id")
	if err != nil {
		return errResult(err), nil
	}
	lines, err := requireStringSlice(req, "text_lines")
	if err != nil {
		return errResult(err), nil
	}

	t, ok := h.cat.Template(id)
	if !ok {
		return errResult(memerr.NotFoundf("template_id", "unknown template %q", id)), nil
	}
	if len(lines) != t.SlotCount {
		return errResult(memerr.Validationf("text_lines", "template %q takes %d text lines, got %d", id, t.SlotCount, len(lines))), nil
	}

	img, err := h.renderer.Render(ctx, id, lines)
	if err != nil {
		return errResult(err), nil
	}
	h.log.Debug().Str("template", id).Int("bytes", len(img.Data)).Msg("Rendered meme")

	summary, err := json.MarshalIndent(img, "", "  ")
	if err != nil {
		return errResult(fmt.Errorf("encoding result: %w", err)), nil
	}
	return mcp.NewToolResultImage(string(summary), base64.StdEncoding.EncodeToString(img.Data), img.ContentType), nil
}

func (h *Handlers) handleRenderMemeBatch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawItems, ok := req.GetArguments()["items"].([]any)
	if !ok {
		return errResult(memerr.Validationf("items", "must be an array of render items")), nil
	}
	if len(rawItems) < minBatchItems || len(rawItems) > maxBatchItems {
		return errResult(memerr.Validationf("items", "must contain between %d and %d items, got %d", minBatchItems, maxBatchItems, len(rawItems))), nil
	}

	results := make([]memegen.BatchResult, len(rawItems))
	var renderable []memegen.BatchItem
	for i, raw := range rawItems {
		id, lines, err := h.parseBatchItem(raw)
		if err != nil {
			results[i] = memegen.BatchResult{Index: i, TemplateID: id, Error: err.Error()}
			continue
		}
		renderable = append(renderable, memegen.BatchItem{Index: i, TemplateID: id, Lines: lines})
	}

	for _, r := range h.renderer.RenderBatch(ctx, renderable) {
		results[r.Index] = r
	}

	succeeded := 0
	for _, r := range results {
		if r.OK {
			succeeded++
		}
	}
	h.log.Debug().Int("items", len(results)).Int("succeeded", succeeded).Msg("Rendered meme batch")

	return jsonResult(map[string]any{
		"results":   results,
		"succeeded": succeeded,
		"failed":    len(results) - succeeded,
	}), nil
}

// parseBatchItem validates one batch entry against the catalog. The returned
// template ID is best-effort so failures can still name the template.
func (h *Handlers) parseBatchItem(raw any) (string, []string, error) {
	item, ok := raw.(map[string]any)
	if !ok {
		return "", nil, memerr.Validationf("items", "each item must be an object with template_id and text_lines")
	}

	id, _ := item["template_id"].(string)
	if strings.TrimSpace(id) == "" {
		return id, nil, memerr.Validationf("template_id", "must not be empty")
	}
	lines, ok := toStringSlice(item["text_lines"])
	if !ok {
		return id, nil, memerr.Validationf("text_lines", "must be an array of strings")
	}

	t, found := h.cat.Template(id)
	if !found {
		return id, nil, memerr.NotFoundf("template_id", "unknown template %q", id)
	}
	if len(lines) != t.SlotCount {
		return id, nil, memerr.Validationf("text_lines", "template %q takes %d text lines, got %d", id, t.SlotCount, len(lines))
	}
	return id, lines, nil
}

func (h *Handlers) handleFetchURLText(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawURL, err := requireTrimmedString(req, "url")
	if err != nil {
		return errResult(err), nil
	}

	extract, err := h.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return errResult(err), nil
	}
	return jsonResult(extract), nil
}

func (h *Handlers) categoryIDs() []string {
	cats := h.cat.Categories()
	ids := make([]string, 0, len(cats))
	for _, c := range cats {
		ids = append(ids, string(c.ID))
	}
	return ids
}

// requireTrimmedString fetches a required string argument and rejects blank
// values.
func requireTrimmedString(req mcp.CallToolRequest, name string) (string, error) {
	s, err := req.RequireString(name)
	if err != nil {
		return "", memerr.Validationf(name, "required string argument is missing")
	}
	if strings.TrimSpace(s) == "" {
		return "", memerr.Validationf(name, "must not be empty")
	}
	return s, nil
}

// requireStringSlice fetches a required array-of-strings argument.
func requireStringSlice(req mcp.CallToolRequest, name string) ([]string, error) {
	raw, ok := req.GetArguments()[name]
	if !ok {
		return nil, memerr.Validationf(name, "required array argument is missing")
	}
	lines, ok := toStringSlice(raw)
	if !ok {
		return nil, memerr.Validationf(name, "must be an array of strings")
	}
	return lines, nil
}

// optionalIntArg returns the fallback when the argument is absent, and a
// validation error when it is present but not a whole number in [min, max].
// An explicit out-of-range value is rejected rather than clamped.
func optionalIntArg(req mcp.CallToolRequest, name string, fallback, min, max int) (int, error) {
	raw, ok := req.GetArguments()[name]
	if !ok || raw == nil {
		return fallback, nil
	}
	n, ok := toInt(raw)
	if !ok {
		return 0, memerr.Validationf(name, "must be a whole number")
	}
	if n < min || n > max {
		return 0, memerr.Validationf(name, "must be between %d and %d, got %d", min, max, n)
	}
	return n, nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	}
	return 0, false
}

func toStringSlice(v any) ([]string, bool) {
	switch vals := v.(type) {
	case []string:
		return vals, true
	case []any:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

// jsonResult wraps a value as pretty-printed JSON text content.
func jsonResult(v any) *mcp.CallToolResult {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("internal: encoding result: %v", err))
	}
	return mcp.NewToolResultText(string(b))
}

// errResult maps an error to MCP tool-error text. Typed errors keep their
// kind prefix so callers can branch on it.
func errResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(err.Error())
}
