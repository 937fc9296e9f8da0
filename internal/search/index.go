// Package search implements keyword lookup over the template catalog. An
// Index is built once from catalog metadata and serves all queries; scoring
// favors exact keyword hits over fuzzy substring hits and normalizes by
// keyword count so keyword-heavy templates are not favored.
package search

import (
	"sort"
	"strings"

	"github.com/kozko2001/meme-generator-mcp/internal/catalog"
)

// Result is one scored catalog hit.
type Result struct {
	TemplateID       string   `json:"template_id"`
	DisplayName      string   `json:"display_name"`
	Score            float64  `json:"score"`
	MatchedKeywords  []string `json:"matched_keywords"`
	UsageDescription string   `json:"usage"`
}

type matchKind int

const (
	matchPartial matchKind = iota
	matchExact
)

// Index maps keywords to template IDs for exact lookup plus a flat keyword
// list for the fuzzy substring pass.
type Index struct {
	cat      *catalog.Catalog
	buckets  map[string][]string
	keywords []string
}

// NewIndex builds the keyword index from catalog metadata. Keywords are
// already lower-cased by the catalog loader.
func NewIndex(cat *catalog.Catalog) *Index {
	ix := &Index{
		cat:     cat,
		buckets: make(map[string][]string),
	}
	for _, id := range cat.IDs() {
		meta, _ := cat.Metadata(id)
		for _, kw := range meta.Keywords {
			ix.buckets[kw] = append(ix.buckets[kw], id)
		}
	}
	ix.keywords = make([]string, 0, len(ix.buckets))
	for kw := range ix.buckets {
		ix.keywords = append(ix.keywords, kw)
	}
	sort.Strings(ix.keywords)
	return ix
}

// Search scores every template against the whitespace-split, lower-cased
// query terms and returns matches ordered by descending score. An empty
// query returns no results.
func (ix *Index) Search(query string) []Result {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return []Result{}
	}

	// matched[templateID][keyword] records how that keyword was hit. Exact
	// hits win over fuzzy hits for the same keyword.
	matched := make(map[string]map[string]matchKind)
	record := func(id, kw string, kind matchKind) {
		kws, ok := matched[id]
		if !ok {
			kws = make(map[string]matchKind)
			matched[id] = kws
		}
		if prev, seen := kws[kw]; !seen || kind > prev {
			kws[kw] = kind
		}
	}

	for _, term := range terms {
		for _, id := range ix.buckets[term] {
			record(id, term, matchExact)
		}
		for _, kw := range ix.keywords {
			if kw == term {
				continue
			}
			if strings.Contains(kw, term) || strings.Contains(term, kw) {
				for _, id := range ix.buckets[kw] {
					record(id, kw, matchPartial)
				}
			}
		}
	}

	results := make([]Result, 0, len(matched))
	for _, id := range ix.cat.IDs() {
		meta, _ := ix.cat.Metadata(id)
		tpl, _ := ix.cat.Template(id)

		var exact, partial int
		for _, kind := range matched[id] {
			if kind == matchExact {
				exact++
			} else {
				partial++
			}
		}

		descHits := 0
		desc := strings.ToLower(meta.UsageDescription)
		for _, term := range terms {
			if strings.Contains(desc, term) {
				descHits++
			}
		}

		score := (2.0*float64(exact) + float64(partial) + 0.5*float64(descHits)) / float64(len(meta.Keywords)+1)
		if score <= 0 {
			continue
		}

		kws := make([]string, 0, len(matched[id]))
		for kw := range matched[id] {
			kws = append(kws, kw)
		}
		sort.Strings(kws)

		results = append(results, Result{
			TemplateID:       id,
			DisplayName:      tpl.DisplayName,
			Score:            score,
			MatchedKeywords:  kws,
			UsageDescription: meta.UsageDescription,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// Keywords returns every indexed keyword in lexical order.
func (ix *Index) Keywords() []string {
	out := make([]string, len(ix.keywords))
	copy(out, ix.keywords)
	return out
}
