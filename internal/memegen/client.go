package memegen

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/kozko2001/meme-generator-mcp/internal/logger"
	"github.com/kozko2001/meme-generator-mcp/internal/memerr"
)

const (
	// DefaultBaseURL points at the public memegen service.
	DefaultBaseURL = "https://api.memegen.link"

	defaultTimeout       = 8 * time.Second
	defaultMaxConcurrent = 4

	// maxImageBytes caps a single rendered image read.
	maxImageBytes = 10 << 20

	userAgent = "meme-generator-mcp/1.0"
)

// Image is one successfully rendered meme.
type Image struct {
	TemplateID  string `json:"template_id"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}

// BatchItem is one render request inside a batch. Index ties the result back
// to the caller's input ordering.
type BatchItem struct {
	Index      int
	TemplateID string
	Lines      []string
}

// BatchResult reports one batch item's outcome. Failures carry the error
// text; successes carry the rendered URL and payload size.
type BatchResult struct {
	Index      int    `json:"index"`
	TemplateID string `json:"template_id"`
	OK         bool   `json:"ok"`
	URL        string `json:"url,omitempty"`
	Bytes      int    `json:"bytes,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Client renders memes over HTTP.
type Client struct {
	baseURL       string
	maxConcurrent int
	httpClient    *http.Client
	log           zerolog.Logger
}

// NewClient builds a render client. Zero values fall back to the public
// service, an 8 second timeout, and 4 concurrent batch renders.
func NewClient(baseURL string, timeout time.Duration, maxConcurrent int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrent
	}
	return &Client{
		baseURL:       baseURL,
		maxConcurrent: maxConcurrent,
		httpClient:    &http.Client{Timeout: timeout},
		log:           logger.Get().With().Str("component", "memegen").Logger(),
	}
}

// URL returns the rendered-image URL without fetching it.
func (c *Client) URL(templateID string, lines []string) string {
	return RenderURL(c.baseURL, templateID, lines)
}

// Render fetches the rendered image for a template and its caption lines.
// All failures surface as upstream errors; the caller validates template IDs
// and slot counts before delegating here.
func (c *Client) Render(ctx context.Context, templateID string, lines []string) (*Image, error) {
	url := c.URL(templateID, lines)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, memerr.Upstreamf(err, "memegen", "building render request for %q", templateID)
	}
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, memerr.Upstreamf(err, "memegen", "render request for %q failed", templateID)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, memerr.Upstreamf(nil, "memegen", "render for %q returned status %d", templateID, resp.StatusCode)
	}
	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, memerr.Upstreamf(nil, "memegen", "render for %q returned content type %q, want an image", templateID, contentType)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, memerr.Upstreamf(err, "memegen", "reading rendered image for %q", templateID)
	}

	c.log.Debug().
		Str("template_id", templateID).
		Int("bytes", len(data)).
		Dur("elapsed", time.Since(start)).
		Msg("Rendered meme")

	return &Image{
		TemplateID:  templateID,
		URL:         url,
		ContentType: contentType,
		Data:        data,
	}, nil
}

// RenderBatch renders every item, bounding concurrency and isolating
// failures: one item's error never aborts its siblings. Results come back in
// the order the items were given.
func (c *Client) RenderBatch(ctx context.Context, items []BatchItem) []BatchResult {
	results := make([]BatchResult, len(items))

	sem := make(chan struct{}, c.maxConcurrent)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for i, item := range items {
		wg.Add(1)
		go func(slot int, it BatchItem) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			res := BatchResult{Index: it.Index, TemplateID: it.TemplateID}
			img, err := c.Render(ctx, it.TemplateID, it.Lines)
			if err != nil {
				res.Error = err.Error()
				c.log.Warn().Err(err).Str("template_id", it.TemplateID).Msg("Batch render item failed")
			} else {
				res.OK = true
				res.URL = img.URL
				res.Bytes = len(img.Data)
			}

			mu.Lock()
			results[slot] = res
			mu.Unlock()
		}(i, item)
	}
	wg.Wait()

	return results
}
