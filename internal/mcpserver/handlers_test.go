package mcpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kozko2001/meme-generator-mcp/internal/config"
)

func testHandlers(t *testing.T, memegenURL string) *Handlers {
	t.Helper()
	cfg := &config.Config{
		Server:  config.Server{Name: "meme-generator", Version: "test", Transport: "stdio"},
		Memegen: config.Memegen{BaseURL: memegenURL, Timeout: "2s", MaxConcurrent: 2},
		Fetch:   config.Fetch{Timeout: "2s", MaxWords: 500},
		Search:  config.Search{DefaultLimit: 5},
		Suggest: config.Suggest{DefaultLimit: 5},
		Quotes:  config.Quotes{DefaultMaxLength: 100, DefaultLimit: 10},
	}
	h, err := NewHandlers(cfg)
	if err != nil {
		t.Fatalf("NewHandlers failed: %v", err)
	}
	return h
}

func callReq(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("Result has no content")
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("Expected text content, got %T", res.Content[0])
	}
	return tc.Text
}

func decodeResult(t *testing.T, res *mcp.CallToolResult, into any) {
	t.Helper()
	if res.IsError {
		t.Fatalf("Unexpected tool error: %s", textOf(t, res))
	}
	if err := json.Unmarshal([]byte(textOf(t, res)), into); err != nil {
		t.Fatalf("Failed to decode result JSON: %v", err)
	}
}

func memegenStub(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "broken") {
			http.Error(w, "boom", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png-bytes"))
	}))
}

func TestSearchTemplatesTool(t *testing.T) {
	h := testHandlers(t, "http://unused.invalid")

	res, err := h.handleSearchTemplates(context.Background(), callReq("search_templates", map[string]any{
		"query": "surprised",
	}))
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	var payload struct {
		Query   string `json:"query"`
		Results []struct {
			TemplateID      string   `json:"template_id"`
			Score           float64  `json:"score"`
			MatchedKeywords []string `json:"matched_keywords"`
		} `json:"results"`
		TotalMatches int `json:"total_matches"`
	}
	decodeResult(t, res, &payload)

	if len(payload.Results) == 0 {
		t.Fatal("Expected search results")
	}
	if payload.Results[0].TemplateID != "pikachu" {
		t.Errorf("Expected pikachu first for 'surprised', got %s", payload.Results[0].TemplateID)
	}
	if payload.TotalMatches < len(payload.Results) {
		t.Errorf("total_matches %d below returned count %d", payload.TotalMatches, len(payload.Results))
	}
	if len(payload.Results) > 5 {
		t.Errorf("Expected default limit of 5, got %d results", len(payload.Results))
	}
}

func TestSearchTemplatesEmptyQuery(t *testing.T) {
	h := testHandlers(t, "http://unused.invalid")

	for _, query := range []string{"", "   "} {
		res, err := h.handleSearchTemplates(context.Background(), callReq("search_templates", map[string]any{
			"query": query,
		}))
		if err != nil {
			t.Fatalf("Handler returned error: %v", err)
		}
		if !res.IsError {
			t.Errorf("Expected tool error for query %q", query)
		}
		if !strings.Contains(textOf(t, res), "validation") {
			t.Errorf("Expected validation kind in message, got %q", textOf(t, res))
		}
	}
}

func TestSearchTemplatesLimitRejected(t *testing.T) {
	h := testHandlers(t, "http://unused.invalid")

	for _, limit := range []int{0, 11} {
		res, err := h.handleSearchTemplates(context.Background(), callReq("search_templates", map[string]any{
			"query": "surprised",
			"limit": limit,
		}))
		if err != nil {
			t.Fatalf("Handler returned error: %v", err)
		}
		if !res.IsError {
			t.Errorf("Expected tool error for limit %d", limit)
		}
		if !strings.Contains(textOf(t, res), "between 1 and 10") {
			t.Errorf("Expected range in message, got %q", textOf(t, res))
		}
	}
}

func TestSuggestTemplatesTool(t *testing.T) {
	h := testHandlers(t, "http://unused.invalid")

	res, err := h.handleSuggestTemplates(context.Background(), callReq("suggest_templates", map[string]any{
		"content": "I used to use manual deployments, but now I use a CI/CD pipeline.",
	}))
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	var payload struct {
		Suggestions []struct {
			TemplateID string  `json:"template_id"`
			Score      float64 `json:"score"`
			Confidence string  `json:"confidence"`
			Reason     string  `json:"reason"`
		} `json:"suggestions"`
	}
	decodeResult(t, res, &payload)

	if len(payload.Suggestions) == 0 {
		t.Fatal("Expected suggestions")
	}
	if payload.Suggestions[0].TemplateID != "drake" {
		t.Errorf("Expected drake first, got %s", payload.Suggestions[0].TemplateID)
	}
	if payload.Suggestions[0].Confidence != "high" {
		t.Errorf("Expected high confidence, got %s", payload.Suggestions[0].Confidence)
	}
	if len(payload.Suggestions) > 5 {
		t.Errorf("Expected default limit of 5, got %d", len(payload.Suggestions))
	}
}

func TestSuggestTemplatesLimitRejected(t *testing.T) {
	h := testHandlers(t, "http://unused.invalid")

	for _, limit := range []any{0, 11, 2.5, "three"} {
		res, err := h.handleSuggestTemplates(context.Background(), callReq("suggest_templates", map[string]any{
			"content": "Some content.",
			"limit":   limit,
		}))
		if err != nil {
			t.Fatalf("Handler returned error: %v", err)
		}
		if !res.IsError {
			t.Errorf("Expected tool error for limit %v", limit)
		}
	}
}

func TestAnalyzeContentTool(t *testing.T) {
	h := testHandlers(t, "http://unused.invalid")

	res, err := h.handleAnalyzeContent(context.Background(), callReq("analyze_content", map[string]any{
		"content": "Why is this broken? It never worked.",
	}))
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	var signals struct {
		Negation      bool `json:"negation"`
		QuestionCount int  `json:"question_count"`
		SentenceCount int  `json:"sentence_count"`
		PastTense     bool `json:"past_tense"`
	}
	decodeResult(t, res, &signals)

	if signals.QuestionCount != 1 {
		t.Errorf("Expected 1 question, got %d", signals.QuestionCount)
	}
	if !signals.Negation {
		t.Error("Expected negation signal")
	}
	if signals.SentenceCount != 2 {
		t.Errorf("Expected 2 sentences, got %d", signals.SentenceCount)
	}
	if !signals.PastTense {
		t.Error("Expected past tense signal")
	}
}

func TestExtractQuotesTool(t *testing.T) {
	h := testHandlers(t, "http://unused.invalid")

	res, err := h.handleExtractQuotes(context.Background(), callReq("extract_quotes", map[string]any{
		"content": "Stop shipping on Fridays. Why does everything break at once?",
	}))
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	var payload struct {
		Quotes []struct {
			Text  string  `json:"text"`
			Score float64 `json:"score"`
		} `json:"quotes"`
		Analysis struct {
			SentenceCount int `json:"sentence_count"`
		} `json:"analysis"`
	}
	decodeResult(t, res, &payload)

	if len(payload.Quotes) == 0 {
		t.Fatal("Expected quotes")
	}
	if payload.Analysis.SentenceCount != 2 {
		t.Errorf("Expected 2 sentences, got %d", payload.Analysis.SentenceCount)
	}
}

func TestExtractQuotesArgsRejected(t *testing.T) {
	h := testHandlers(t, "http://unused.invalid")

	cases := []map[string]any{
		{"content": "Some content.", "max_length": 5},
		{"content": "Some content.", "max_length": 300},
		{"content": "Some content.", "limit": 0},
		{"content": "Some content.", "limit": 21},
		{"content": "   "},
	}
	for _, args := range cases {
		res, err := h.handleExtractQuotes(context.Background(), callReq("extract_quotes", args))
		if err != nil {
			t.Fatalf("Handler returned error: %v", err)
		}
		if !res.IsError {
			t.Errorf("Expected tool error for args %v", args)
		}
	}
}

func TestListTemplatesTool(t *testing.T) {
	h := testHandlers(t, "http://unused.invalid")

	res, err := h.handleListTemplates(context.Background(), callReq("list_templates", nil))
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	var payload struct {
		Templates []struct {
			ID       string `json:"id"`
			Category string `json:"category"`
		} `json:"templates"`
		Count int `json:"count"`
	}
	decodeResult(t, res, &payload)

	if payload.Count != h.cat.Len() {
		t.Errorf("Expected %d templates, got %d", h.cat.Len(), payload.Count)
	}
	for _, tpl := range payload.Templates {
		if tpl.Category == "" {
			t.Errorf("Template %s missing category in listing", tpl.ID)
		}
	}
}

func TestListTemplatesByCategory(t *testing.T) {
	h := testHandlers(t, "http://unused.invalid")

	res, err := h.handleListTemplates(context.Background(), callReq("list_templates", map[string]any{
		"category": "reactions",
	}))
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	var payload struct {
		Templates []struct {
			ID       string `json:"id"`
			Category string `json:"category"`
		} `json:"templates"`
	}
	decodeResult(t, res, &payload)

	if len(payload.Templates) == 0 {
		t.Fatal("Expected templates in reactions category")
	}
	for _, tpl := range payload.Templates {
		if tpl.Category != "reactions" {
			t.Errorf("Template %s has category %s in reactions listing", tpl.ID, tpl.Category)
		}
	}
}

func TestListTemplatesUnknownCategory(t *testing.T) {
	h := testHandlers(t, "http://unused.invalid")

	res, err := h.handleListTemplates(context.Background(), callReq("list_templates", map[string]any{
		"category": "dramas",
	}))
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}
	if !res.IsError {
		t.Fatal("Expected tool error for unknown category")
	}
	msg := textOf(t, res)
	if !strings.Contains(msg, "not_found") {
		t.Errorf("Expected not_found kind, got %q", msg)
	}
	if !strings.Contains(msg, "reactions") {
		t.Errorf("Expected valid category IDs in message, got %q", msg)
	}
}

func TestGetTemplateTool(t *testing.T) {
	h := testHandlers(t, "http://unused.invalid")

	res, err := h.handleGetTemplate(context.Background(), callReq("get_template", map[string]any{
		"template_id": "drake",
	}))
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	var payload struct {
		Template struct {
			ID        string `json:"id"`
			SlotCount int    `json:"slot_count"`
		} `json:"template"`
		ExampleURL string `json:"example_url"`
	}
	decodeResult(t, res, &payload)

	if payload.Template.ID != "drake" {
		t.Errorf("Expected drake, got %s", payload.Template.ID)
	}
	if payload.Template.SlotCount != 2 {
		t.Errorf("Expected 2 slots, got %d", payload.Template.SlotCount)
	}
	if !strings.Contains(payload.ExampleURL, "/images/drake/") {
		t.Errorf("Expected example URL for drake, got %s", payload.ExampleURL)
	}
	if !strings.HasSuffix(payload.ExampleURL, ".png") {
		t.Errorf("Expected .png example URL, got %s", payload.ExampleURL)
	}
}

func TestGetTemplateUnknown(t *testing.T) {
	h := testHandlers(t, "http://unused.invalid")

	res, err := h.handleGetTemplate(context.Background(), callReq("get_template", map[string]any{
		"template_id": "no-such-template",
	}))
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}
	if !res.IsError {
		t.Fatal("Expected tool error for unknown template")
	}
	if !strings.Contains(textOf(t, res), "not_found") {
		t.Errorf("Expected not_found kind, got %q", textOf(t, res))
	}
}

func TestListCategoriesTool(t *testing.T) {
	h := testHandlers(t, "http://unused.invalid")

	res, err := h.handleListCategories(context.Background(), callReq("list_categories", nil))
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	var payload struct {
		Categories []struct {
			ID            string   `json:"id"`
			TemplateIDs   []string `json:"template_ids"`
			TemplateCount int      `json:"template_count"`
		} `json:"categories"`
		Count int `json:"count"`
	}
	decodeResult(t, res, &payload)

	if payload.Count != 9 {
		t.Errorf("Expected 9 categories, got %d", payload.Count)
	}
	for _, c := range payload.Categories {
		if c.TemplateCount == 0 {
			t.Errorf("Category %s has no templates", c.ID)
		}
		if c.TemplateCount != len(c.TemplateIDs) {
			t.Errorf("Category %s count %d does not match %d members", c.ID, c.TemplateCount, len(c.TemplateIDs))
		}
	}
}

func TestRenderMemeTool(t *testing.T) {
	stub := memegenStub(t)
	defer stub.Close()
	h := testHandlers(t, stub.URL)

	res, err := h.handleRenderMeme(context.Background(), callReq("render_meme", map[string]any{
		"template_id": "drake",
		"text_lines":  []any{"manual deploys", "CI/CD"},
	}))
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}
	if res.IsError {
		t.Fatalf("Unexpected tool error: %s", textOf(t, res))
	}
	if len(res.Content) != 2 {
		t.Fatalf("Expected text + image content, got %d items", len(res.Content))
	}

	img, ok := res.Content[1].(mcp.ImageContent)
	if !ok {
		t.Fatalf("Expected image content, got %T", res.Content[1])
	}
	if img.MIMEType != "image/png" {
		t.Errorf("Expected image/png, got %s", img.MIMEType)
	}
	if img.Data == "" {
		t.Error("Expected base64 image data")
	}
	if !strings.Contains(textOf(t, res), "/images/drake/") {
		t.Errorf("Expected rendered URL in text content, got %q", textOf(t, res))
	}
}

func TestRenderMemeValidation(t *testing.T) {
	h := testHandlers(t, "http://unused.invalid")

	res, err := h.handleRenderMeme(context.Background(), callReq("render_meme", map[string]any{
		"template_id": "drake",
		"text_lines":  []any{"only one line"},
	}))
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}
	if !res.IsError {
		t.Fatal("Expected tool error for slot mismatch")
	}
	msg := textOf(t, res)
	if !strings.Contains(msg, "takes 2 text lines, got 1") {
		t.Errorf("Expected got/want in message, got %q", msg)
	}

	res, err = h.handleRenderMeme(context.Background(), callReq("render_meme", map[string]any{
		"template_id": "no-such-template",
		"text_lines":  []any{"a"},
	}))
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}
	if !res.IsError || !strings.Contains(textOf(t, res), "not_found") {
		t.Errorf("Expected not_found for unknown template, got %q", textOf(t, res))
	}

	res, err = h.handleRenderMeme(context.Background(), callReq("render_meme", map[string]any{
		"template_id": "drake",
	}))
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}
	if !res.IsError || !strings.Contains(textOf(t, res), "text_lines") {
		t.Errorf("Expected validation error naming text_lines, got %q", textOf(t, res))
	}
}

func TestRenderMemeBatchTool(t *testing.T) {
	stub := memegenStub(t)
	defer stub.Close()
	h := testHandlers(t, stub.URL)

	res, err := h.handleRenderMemeBatch(context.Background(), callReq("render_meme_batch", map[string]any{
		"items": []any{
			map[string]any{"template_id": "drake", "text_lines": []any{"a", "b"}},
			map[string]any{"template_id": "no-such-template", "text_lines": []any{"c"}},
			map[string]any{"template_id": "fine", "text_lines": []any{"d", "e"}},
		},
	}))
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	var payload struct {
		Results []struct {
			Index      int    `json:"index"`
			TemplateID string `json:"template_id"`
			OK         bool   `json:"ok"`
			URL        string `json:"url"`
			Error      string `json:"error"`
		} `json:"results"`
		Succeeded int `json:"succeeded"`
		Failed    int `json:"failed"`
	}
	decodeResult(t, res, &payload)

	if payload.Succeeded != 2 || payload.Failed != 1 {
		t.Errorf("Expected 2 succeeded / 1 failed, got %d / %d", payload.Succeeded, payload.Failed)
	}
	if len(payload.Results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(payload.Results))
	}
	if !payload.Results[0].OK || !strings.Contains(payload.Results[0].URL, "/images/drake/") {
		t.Errorf("Expected first item rendered, got %+v", payload.Results[0])
	}
	if payload.Results[1].OK || !strings.Contains(payload.Results[1].Error, "not_found") {
		t.Errorf("Expected second item to fail with not_found, got %+v", payload.Results[1])
	}
	if !payload.Results[2].OK {
		t.Errorf("Expected third item rendered despite sibling failure, got %+v", payload.Results[2])
	}
}

func TestRenderMemeBatchSizeRejected(t *testing.T) {
	h := testHandlers(t, "http://unused.invalid")

	res, err := h.handleRenderMemeBatch(context.Background(), callReq("render_meme_batch", map[string]any{
		"items": []any{},
	}))
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}
	if !res.IsError {
		t.Error("Expected tool error for empty batch")
	}

	oversized := make([]any, 11)
	for i := range oversized {
		oversized[i] = map[string]any{"template_id": "drake", "text_lines": []any{"a", "b"}}
	}
	res, err = h.handleRenderMemeBatch(context.Background(), callReq("render_meme_batch", map[string]any{
		"items": oversized,
	}))
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}
	if !res.IsError || !strings.Contains(textOf(t, res), "between 1 and 10") {
		t.Errorf("Expected size range in message, got %q", textOf(t, res))
	}
}

func TestFetchURLTextTool(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head><title>Release Notes</title></head><body><main><p>Everything broke on Friday.</p></main></body></html>`))
	}))
	defer page.Close()

	h := testHandlers(t, "http://unused.invalid")

	res, err := h.handleFetchURLText(context.Background(), callReq("fetch_url_text", map[string]any{
		"url": page.URL,
	}))
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}

	var payload struct {
		Title     string `json:"title"`
		Text      string `json:"text"`
		WordCount int    `json:"word_count"`
	}
	decodeResult(t, res, &payload)

	if payload.Title != "Release Notes" {
		t.Errorf("Expected title, got %q", payload.Title)
	}
	if !strings.Contains(payload.Text, "Everything broke on Friday.") {
		t.Errorf("Expected page text, got %q", payload.Text)
	}
	if payload.WordCount != 4 {
		t.Errorf("Expected 4 words, got %d", payload.WordCount)
	}

	res, err = h.handleFetchURLText(context.Background(), callReq("fetch_url_text", map[string]any{
		"url": "not-a-url",
	}))
	if err != nil {
		t.Fatalf("Handler returned error: %v", err)
	}
	if !res.IsError || !strings.Contains(textOf(t, res), "validation") {
		t.Errorf("Expected validation error, got %q", textOf(t, res))
	}
}
