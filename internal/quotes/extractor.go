// Package quotes pulls short, meme-worthy lines out of longer content.
// Sentences are scored on length, position, punctuation, and grammar; word
// n-grams fill in when full sentences run long.
package quotes

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/kozko2001/meme-generator-mcp/internal/analysis"
	"github.com/kozko2001/meme-generator-mcp/internal/logger"
)

// Bounds for a single extraction request.
const (
	MinMaxLength     = 10
	MaxMaxLength     = 200
	DefaultMaxLength = 100

	MinLimit     = 1
	MaxLimit     = 20
	DefaultLimit = 10
)

// Position classifies where in the content a quote came from.
const (
	PositionBeginning = "beginning"
	PositionMiddle    = "middle"
	PositionEnd       = "end"
)

// Quote is one extracted candidate.
type Quote struct {
	Text     string  `json:"text"`
	Score    float64 `json:"score"`
	Reason   string  `json:"reason"`
	Position string  `json:"position"`
}

// Analysis summarizes the scanned content.
type Analysis struct {
	ContentLength         int `json:"content_length"`
	SentenceCount         int `json:"sentence_count"`
	AverageSentenceLength int `json:"average_sentence_length"`
}

// Result is the full extraction output.
type Result struct {
	Quotes   []Quote  `json:"quotes"`
	Analysis Analysis `json:"analysis"`
}

var (
	contrastWordRx = regexp.MustCompile(`\b(but|however|yet|although|while|whereas|instead)\b`)
	emotionalRx    = regexp.MustCompile(`\b(love|hate|amazing|terrible|shocking|surprising|ironic|ridiculous|absurd|perfect)\b`)
	hedgingRx      = regexp.MustCompile(`\b(literally|actually|basically|obviously|clearly)\b`)
)

var subjectOpeners = map[string]bool{
	"i": true, "you": true, "we": true, "they": true, "he": true, "she": true,
	"it": true, "this": true, "that": true, "these": true, "those": true,
}

var imperativeOpeners = map[string]bool{
	"stop": true, "start": true, "never": true, "always": true, "don't": true, "do": true,
}

type candidate struct {
	text     string
	score    float64
	reasons  []string
	position string
}

// Extractor scores and ranks quote candidates.
type Extractor struct {
	log zerolog.Logger
}

// NewExtractor returns a ready Extractor.
func NewExtractor() *Extractor {
	return &Extractor{log: logger.Get().With().Str("component", "quotes").Logger()}
}

// Extract returns up to limit quotes no longer than maxLength characters,
// best first. Zero or out-of-range parameters are clamped to their defaults
// and declared bounds.
func (e *Extractor) Extract(content string, maxLength, limit int) Result {
	maxLength = clamp(maxLength, MinMaxLength, MaxMaxLength, DefaultMaxLength)
	limit = clamp(limit, MinLimit, MaxLimit, DefaultLimit)

	sentences, err := analysis.ParseSentences(content)
	if err != nil {
		e.log.Warn().Err(err).Msg("Sentence parsing failed, using n-gram candidates only")
		sentences = nil
	}

	seen := make(map[string]bool)
	var pool []candidate
	add := func(c candidate) {
		key := strings.ToLower(c.text)
		if seen[key] {
			return
		}
		seen[key] = true
		pool = append(pool, c)
	}

	for i, s := range sentences {
		score, reasons := e.scoreSentence(s, i, len(sentences), maxLength)
		add(candidate{
			text:     s.Text,
			score:    score,
			reasons:  reasons,
			position: positionFor(i, len(sentences)),
		})
	}
	for _, c := range e.ngramCandidates(content, maxLength) {
		add(c)
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].score > pool[j].score
	})

	quotes := make([]Quote, 0, limit)
	for _, c := range pool {
		if c.score <= 0 || len(c.text) > maxLength {
			continue
		}
		quotes = append(quotes, Quote{
			Text:     c.text,
			Score:    c.score,
			Reason:   strings.Join(c.reasons, "; "),
			Position: c.position,
		})
		if len(quotes) == limit {
			break
		}
	}

	return Result{
		Quotes:   quotes,
		Analysis: e.analyze(content, sentences),
	}
}

// scoreSentence applies the additive bonus set to one sentence. Bonuses are
// independent; each appends its own reason.
func (e *Extractor) scoreSentence(s analysis.Sentence, idx, total, maxLength int) (float64, []string) {
	var score float64
	var reasons []string

	length := len(s.Text)
	switch {
	case length > maxLength:
		score -= 2
		reasons = append(reasons, "exceeds length limit")
	case length <= 50:
		score += 5
		reasons = append(reasons, "concise")
	case length <= 80:
		score += 3
		reasons = append(reasons, "moderate length")
	default:
		score++
		reasons = append(reasons, "long but usable")
	}

	if idx == 0 {
		score += 2
		reasons = append(reasons, "opening hook")
	}
	if idx == total-1 {
		score += 3
		reasons = append(reasons, "closing punchline")
	}
	if idx > 0 && float64(idx) < 0.2*float64(total) {
		score++
		reasons = append(reasons, "early position")
	}
	if idx < total-1 && float64(idx) >= 0.8*float64(total) {
		score += 2
		reasons = append(reasons, "late position")
	}

	lower := strings.ToLower(s.Text)
	if strings.Contains(s.Text, "?") {
		score += 2
		reasons = append(reasons, "asks a question")
	}
	if strings.Contains(s.Text, "!") {
		score++
		reasons = append(reasons, "exclamation")
	}
	if contrastWordRx.MatchString(lower) {
		score += 2
		reasons = append(reasons, "contrast transition")
	}
	first := firstWord(lower)
	if subjectOpeners[first] {
		score++
		reasons = append(reasons, "direct subject opening")
	}
	if strings.ContainsAny(s.Text, "\"“”") {
		score++
		reasons = append(reasons, "quoted speech")
	}
	if emotionalRx.MatchString(lower) {
		score += 2
		reasons = append(reasons, "emotional vocabulary")
	}
	if hedgingRx.MatchString(lower) {
		score++
		reasons = append(reasons, "emphasis adverb")
	}
	if imperativeOpeners[first] {
		score++
		reasons = append(reasons, "imperative opening")
	}

	if s.VerbCount > 0 {
		score += 0.5 * float64(s.VerbCount)
		reasons = append(reasons, plural(s.VerbCount, "verb"))
	}
	if s.AdjectiveCount > 0 {
		score += 0.3 * float64(s.AdjectiveCount)
		reasons = append(reasons, plural(s.AdjectiveCount, "adjective"))
	}
	if s.HasProperNoun {
		score++
		reasons = append(reasons, "names something specific")
	}
	if s.IsQuestion {
		score += 2
		reasons = append(reasons, "phrased as a question")
	}
	if s.HasNegation {
		score++
		reasons = append(reasons, "contains negation")
	}

	return score, reasons
}

// ngramCandidates builds word n-gram fillers over the whole text for window
// sizes 3 and 5.
func (e *Extractor) ngramCandidates(content string, maxLength int) []candidate {
	words := strings.Fields(content)
	var out []candidate
	for _, window := range []int{3, 5} {
		for i := 0; i+window <= len(words); i++ {
			text := strings.Join(words[i:i+window], " ")
			if len(text) > maxLength {
				continue
			}
			score := 1.0
			reasons := []string{"word fragment"}
			if len(text) <= 40 {
				score += 2
				reasons = append(reasons, "very short")
			}
			out = append(out, candidate{
				text:     text,
				score:    score,
				reasons:  reasons,
				position: positionForWord(i, len(words)),
			})
		}
	}
	return out
}

func (e *Extractor) analyze(content string, sentences []analysis.Sentence) Analysis {
	a := Analysis{
		ContentLength: len(content),
		SentenceCount: len(sentences),
	}
	if len(sentences) > 0 {
		total := 0
		for _, s := range sentences {
			total += len(s.Text)
		}
		a.AverageSentenceLength = int(math.Round(float64(total) / float64(len(sentences))))
	}
	return a
}

// positionFor classifies a sentence index by its relative position.
func positionFor(idx, total int) string {
	return classifyRelative(float64(idx) / float64(maxInt(total-1, 1)))
}

func positionForWord(idx, totalWords int) string {
	return classifyRelative(float64(idx) / float64(maxInt(totalWords-1, 1)))
}

func classifyRelative(rel float64) string {
	switch {
	case rel < 0.33:
		return PositionBeginning
	case rel > 0.66:
		return PositionEnd
	default:
		return PositionMiddle
	}
}

func firstWord(lower string) string {
	fields := strings.Fields(lower)
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimFunc(fields[0], func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func clamp(v, min, max, def int) int {
	if v == 0 {
		return def
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
