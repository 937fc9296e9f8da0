// Package suggest ranks catalog templates against a piece of content. Every
// triggered bonus contributes both score and a human-readable reason, so a
// suggestion can always explain itself.
package suggest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kozko2001/meme-generator-mcp/internal/analysis"
	"github.com/kozko2001/meme-generator-mcp/internal/catalog"
	"github.com/kozko2001/meme-generator-mcp/internal/logger"
)

// Limit bounds for a single suggestion request.
const (
	MinLimit     = 1
	MaxLimit     = 10
	DefaultLimit = 5
)

// Confidence buckets derived from the numeric score.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Suggestion is one ranked template recommendation.
type Suggestion struct {
	TemplateID       string   `json:"template_id"`
	DisplayName      string   `json:"display_name"`
	Category         string   `json:"category"`
	Score            float64  `json:"score"`
	Confidence       string   `json:"confidence"`
	Reason           string   `json:"reason"`
	UsageDescription string   `json:"usage"`
	SlotCount        int      `json:"slot_count"`
	ExampleText      []string `json:"example_text"`
}

// Suggester scores every catalog template against analyzed content.
type Suggester struct {
	cat      *catalog.Catalog
	analyzer *analysis.Analyzer
	log      zerolog.Logger
}

// NewSuggester builds a Suggester over the catalog.
func NewSuggester(cat *catalog.Catalog, analyzer *analysis.Analyzer) *Suggester {
	return &Suggester{
		cat:      cat,
		analyzer: analyzer,
		log:      logger.Get().With().Str("component", "suggest").Logger(),
	}
}

// Suggest returns the top suggestions for content, best first. A limit
// outside 1..10 is clamped; zero means the default of 5. Templates that
// accumulate no score are excluded, except that highly popular templates
// surface as weak fallbacks when nothing else matches.
func (s *Suggester) Suggest(content string, limit int) []Suggestion {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	lower := strings.ToLower(content)
	sig := s.analyzer.Analyze(content)

	type candidate struct {
		id      string
		score   float64
		reasons []string
	}
	candidates := make([]candidate, 0, s.cat.Len())
	for _, id := range s.cat.IDs() {
		tpl, _ := s.cat.Template(id)
		meta, _ := s.cat.Metadata(id)
		score, reasons := s.scoreTemplate(lower, sig, tpl, meta)
		if score <= 0 {
			continue
		}
		candidates = append(candidates, candidate{id: id, score: score, reasons: reasons})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	s.log.Debug().Int("candidates", len(candidates)).Int("limit", limit).Msg("Scored suggestion candidates")

	out := make([]Suggestion, 0, len(candidates))
	for _, c := range candidates {
		tpl, _ := s.cat.Template(c.id)
		meta, _ := s.cat.Metadata(c.id)
		out = append(out, Suggestion{
			TemplateID:       c.id,
			DisplayName:      tpl.DisplayName,
			Category:         string(meta.Category),
			Score:            c.score,
			Confidence:       confidenceFor(c.score),
			Reason:           strings.Join(c.reasons, "; "),
			UsageDescription: meta.UsageDescription,
			SlotCount:        tpl.SlotCount,
			ExampleText:      tpl.ExampleText,
		})
	}
	return out
}

// scoreTemplate sums the independent bonuses for one template. Bonuses are
// evaluated in a fixed order so the joined reason text is deterministic.
func (s *Suggester) scoreTemplate(lower string, sig analysis.Signals, tpl catalog.Template, meta catalog.Metadata) (float64, []string) {
	var score float64
	var reasons []string

	var matched []string
	for _, kw := range meta.Keywords {
		if strings.Contains(lower, kw) {
			matched = append(matched, kw)
		}
	}
	if len(matched) > 0 {
		score += 3 * float64(len(matched))
		reasons = append(reasons, "matches keywords: "+strings.Join(matched, ", "))
	}

	if sig.Preference && meta.Category == catalog.CategoryComparisons {
		score += 2
		reasons = append(reasons, "expresses a preference between options")
	}
	if sig.Confusion && meta.Category == catalog.CategoryQuestioning {
		score += 2
		reasons = append(reasons, "confused, uncertain tone")
	}
	if sig.Awkwardness && meta.Category == catalog.CategorySocial {
		score += 2
		reasons = append(reasons, "an awkward social moment")
	}
	if sig.Confidence && sig.Opinion {
		score += 2
		reasons = append(reasons, "confidently stated opinion")
	}
	if sig.Success && meta.Category == catalog.CategorySuccessFail {
		score += 2
		reasons = append(reasons, "celebrates a win")
	}
	if sig.Failure && meta.Category == catalog.CategorySuccessFail {
		score += 2
		reasons = append(reasons, "describes things going wrong")
	}

	if sig.PastTense && sig.PresentTense && meta.Category == catalog.CategoryComparisons {
		score += 3
		reasons = append(reasons, "mixes past and present tense for a before/after contrast")
	}
	if sig.Contrast && meta.Category == catalog.CategoryComparisons {
		score += 2
		reasons = append(reasons, "contrast transition suits side-by-side framing")
	}
	if sig.QuestionCount > 0 && meta.Category == catalog.CategoryQuestioning {
		score += float64(2 * sig.QuestionCount)
		if sig.QuestionCount == 1 {
			reasons = append(reasons, "contains a question")
		} else {
			reasons = append(reasons, fmt.Sprintf("contains %d questions", sig.QuestionCount))
		}
	}
	if sig.Doubt() {
		score++
		reasons = append(reasons, "doubt pattern: negation alongside a question")
	}

	for _, r := range specialRules {
		if r.TemplateID == tpl.ID && r.When(lower, sig) {
			score += r.Delta
			reasons = append(reasons, r.Reason)
		}
	}

	if score == 0 && meta.Popularity == catalog.PopularityHigh {
		score = 0.5
		reasons = append(reasons, "widely recognized fallback pick")
	}
	return score, reasons
}

func confidenceFor(score float64) string {
	switch {
	case score >= 5:
		return ConfidenceHigh
	case score >= 2:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
