package analysis

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kozko2001/meme-generator-mcp/internal/logger"
)

// Signals is the flat signal set extracted from a piece of content. All
// fields are derived deterministically from the text.
type Signals struct {
	Surprise    bool `json:"surprise"`
	Confusion   bool `json:"confusion"`
	Irony       bool `json:"irony"`
	Preference  bool `json:"preference"`
	Comparison  bool `json:"comparison"`
	Success     bool `json:"success"`
	Failure     bool `json:"failure"`
	Awkwardness bool `json:"awkwardness"`
	Confidence  bool `json:"confidence"`
	Opinion     bool `json:"opinion"`

	PastTense    bool `json:"past_tense"`
	PresentTense bool `json:"present_tense"`
	FutureTense  bool `json:"future_tense"`

	Negation         bool `json:"negation"`
	Contrast         bool `json:"contrast"`
	QuestionCount    int  `json:"question_count"`
	ExclamationCount int  `json:"exclamation_count"`
	SentenceCount    int  `json:"sentence_count"`
}

// Doubt reports the doubt pattern: a negation alongside at least one
// question.
func (s Signals) Doubt() bool {
	return s.Negation && s.QuestionCount > 0
}

// Active lists the names of the signals that fired, for compact display.
func (s Signals) Active() []string {
	var names []string
	for _, f := range []struct {
		name string
		on   bool
	}{
		{"surprise", s.Surprise},
		{"confusion", s.Confusion},
		{"irony", s.Irony},
		{"preference", s.Preference},
		{"comparison", s.Comparison},
		{"success", s.Success},
		{"failure", s.Failure},
		{"awkwardness", s.Awkwardness},
		{"confidence", s.Confidence},
		{"opinion", s.Opinion},
		{"past_tense", s.PastTense},
		{"present_tense", s.PresentTense},
		{"future_tense", s.FutureTense},
		{"negation", s.Negation},
		{"contrast", s.Contrast},
	} {
		if f.on {
			names = append(names, f.name)
		}
	}
	if s.QuestionCount > 0 {
		names = append(names, fmt.Sprintf("questions=%d", s.QuestionCount))
	}
	if s.ExclamationCount > 0 {
		names = append(names, fmt.Sprintf("exclamations=%d", s.ExclamationCount))
	}
	if len(names) == 0 {
		names = append(names, "none")
	}
	return names
}

// Analyzer extracts Signals from content.
type Analyzer struct {
	log zerolog.Logger
}

// NewAnalyzer returns a ready Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{log: logger.Get().With().Str("component", "analysis").Logger()}
}

// Analyze derives the signal set for content. If tagging fails, the lexical
// signals still apply and the grammatical ones degrade to punctuation
// counting.
func (a *Analyzer) Analyze(content string) Signals {
	var sig Signals

	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return sig
	}
	lower := strings.ToLower(trimmed)

	sig.Surprise = surpriseRx.MatchString(lower)
	sig.Irony = ironyRx.MatchString(lower)
	sig.Preference = preferenceRx.MatchString(lower)
	sig.Comparison = comparisonRx.MatchString(lower)
	sig.Success = successRx.MatchString(lower)
	sig.Failure = failureRx.MatchString(lower)
	sig.Awkwardness = awkwardnessRx.MatchString(lower)
	sig.Confidence = confidenceRx.MatchString(lower)
	sig.Opinion = opinionRx.MatchString(lower)
	sig.ExclamationCount = strings.Count(trimmed, "!")

	sentences, err := ParseSentences(trimmed)
	if err != nil {
		a.log.Warn().Err(err).Msg("Sentence tagging failed, falling back to punctuation counting")
		sig.QuestionCount = strings.Count(trimmed, "?")
		sig.Negation = negationFallbackRx.MatchString(lower)
	} else {
		sig.SentenceCount = len(sentences)
		for _, s := range sentences {
			if s.IsQuestion {
				sig.QuestionCount++
			}
			if s.HasNegation {
				sig.Negation = true
			}
			if s.HasPastTense {
				sig.PastTense = true
			}
			if s.HasPresentTense {
				sig.PresentTense = true
			}
			if s.HasFutureTense {
				sig.FutureTense = true
			}
			if s.HasContrast {
				sig.Contrast = true
			}
		}
	}

	// Confusion needs both an uncertainty keyword and a detected question;
	// either alone is too weak a signal.
	sig.Confusion = uncertaintyRx.MatchString(lower) && sig.QuestionCount > 0

	if contrastIdiomRx.MatchString(lower) {
		sig.Contrast = true
	}
	return sig
}
