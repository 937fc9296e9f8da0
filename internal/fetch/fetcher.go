// Package fetch downloads a web page and reduces it to the plain text that
// the analysis and quote extraction layers work on.
package fetch

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kozko2001/meme-generator-mcp/internal/logger"
	"github.com/kozko2001/meme-generator-mcp/internal/memerr"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultMaxWords = 8000
	maxBodyBytes    = 5 << 20
	userAgent       = "meme-generator-mcp/1.0"
)

// boilerplateSelectors are removed from the document before text extraction.
var boilerplateSelectors = "script, style, nav, footer, header, aside, form, iframe, noscript, " +
	".sidebar, #sidebar, .ad, .advertisement, .popup, .modal, .cookie-banner"

// mainContentSelectors are tried in order; the first one that yields text wins.
var mainContentSelectors = []string{
	"article", "main", ".main-content", ".entry-content", ".post-content",
	".post-body", ".article-body",
	"[role='main']",
	".content", "#content",
}

// Extract is the plain-text result of fetching a URL.
type Extract struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	WordCount int       `json:"word_count"`
	Truncated bool      `json:"truncated"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Fetcher downloads pages and extracts readable text.
type Fetcher struct {
	httpClient *http.Client
	maxWords   int
	log        zerolog.Logger
}

// NewFetcher creates a Fetcher. Zero values select the defaults.
func NewFetcher(timeout time.Duration, maxWords int) *Fetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if maxWords <= 0 {
		maxWords = defaultMaxWords
	}
	return &Fetcher{
		httpClient: &http.Client{Timeout: timeout},
		maxWords:   maxWords,
		log:        logger.Get().With().Str("component", "fetch").Logger(),
	}
}

// Fetch downloads rawURL and returns its readable text. Only http and https
// URLs serving HTML or plain text are accepted.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Extract, error) {
	parsed, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return nil, memerr.Validationf("url", "invalid URL %q", rawURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, memerr.Validationf("url", "unsupported scheme %q, only http and https are allowed", parsed.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, memerr.Validationf("url", "building request for %q: %v", rawURL, err)
	}
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, memerr.Upstreamf(err, "url", "fetching %s", rawURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, memerr.Upstreamf(nil, "url", "fetching %s: status code %d", rawURL, resp.StatusCode)
	}

	mediaType := resp.Header.Get("Content-Type")
	if mediaType != "" {
		if mt, _, err := mime.ParseMediaType(mediaType); err == nil {
			mediaType = mt
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, memerr.Upstreamf(err, "url", "reading response from %s", rawURL)
	}

	var title, text string
	switch {
	case mediaType == "" || mediaType == "text/html" || mediaType == "application/xhtml+xml":
		title, text, err = extractHTML(string(body))
		if err != nil {
			return nil, memerr.Upstreamf(err, "url", "parsing HTML from %s", rawURL)
		}
	case mediaType == "text/plain":
		text = normalizeBlocks(strings.Split(string(body), "\n\n"))
	default:
		return nil, memerr.Upstreamf(nil, "url", "unsupported content type %q from %s", mediaType, rawURL)
	}

	words := strings.Fields(text)
	truncated := false
	if len(words) > f.maxWords {
		text = strings.Join(words[:f.maxWords], " ")
		words = words[:f.maxWords]
		truncated = true
	}

	if title == "" {
		title = fallbackTitle(words)
	}
	if text == "" {
		f.log.Warn().Str("url", rawURL).Msg("No text extracted after cleaning")
	}

	f.log.Debug().
		Str("url", rawURL).
		Int("words", len(words)).
		Bool("truncated", truncated).
		Dur("elapsed", time.Since(start)).
		Msg("Fetched URL text")

	return &Extract{
		ID:        uuid.NewString(),
		URL:       rawURL,
		Title:     title,
		Text:      text,
		WordCount: len(words),
		Truncated: truncated,
		FetchedAt: time.Now().UTC(),
	}, nil
}

// extractHTML pulls the title and readable text out of an HTML document.
func extractHTML(htmlContent string) (title, text string, err error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", "", fmt.Errorf("parsing document: %w", err)
	}

	title = extractTitle(doc)

	doc.Find(boilerplateSelectors).Remove()

	var blocks []string
	collect := func(_ int, item *goquery.Selection) {
		if t := strings.TrimSpace(item.Text()); t != "" {
			blocks = append(blocks, t)
		}
	}

	for _, selector := range mainContentSelectors {
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			s.Find("p, h1, h2, h3, h4, h5, h6, li, blockquote, pre").Each(collect)
		})
		if len(blocks) > 0 {
			break
		}
	}

	// No recognizable main content container: take all block text from the body.
	if len(blocks) == 0 {
		doc.Find("body").Find("p, h1, h2, h3, h4, h5, h6, li, blockquote, pre, div").Each(collect)
	}

	return title, normalizeBlocks(blocks), nil
}

// extractTitle tries the document title, then the OpenGraph title, then the
// first h1.
func extractTitle(doc *goquery.Document) string {
	if title := strings.TrimSpace(doc.Find("head title").First().Text()); title != "" {
		return title
	}
	if ogTitle, ok := doc.Find("meta[property='og:title']").Attr("content"); ok {
		if title := strings.TrimSpace(ogTitle); title != "" {
			return title
		}
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}

// normalizeBlocks collapses intra-block whitespace and joins blocks with
// blank lines, dropping empty ones.
func normalizeBlocks(blocks []string) string {
	var cleaned []string
	for _, b := range blocks {
		if fields := strings.Fields(b); len(fields) > 0 {
			cleaned = append(cleaned, strings.Join(fields, " "))
		}
	}
	return strings.Join(cleaned, "\n\n")
}

// fallbackTitle derives a title from the first few words of the content.
func fallbackTitle(words []string) string {
	if len(words) == 0 {
		return ""
	}
	if len(words) > 10 {
		return strings.Join(words[:10], " ") + "..."
	}
	return strings.Join(words, " ")
}
