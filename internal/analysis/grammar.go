// Package analysis turns free-form text into the grammatical and lexical
// signals the suggestion and quote engines score against. Tagging is backed
// by prose; everything derived from it is deterministic for a given input.
package analysis

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jdkato/prose/v2"
)

// Token is one tagged word. Tags follow the Penn Treebank set.
type Token struct {
	Text string
	Tag  string
}

// Sentence carries one segmented sentence plus the grammatical facts the
// scoring engines care about.
type Sentence struct {
	Text            string
	Tokens          []Token
	IsQuestion      bool
	HasNegation     bool
	HasPastTense    bool
	HasPresentTense bool
	HasFutureTense  bool
	HasContrast     bool
	HasProperNoun   bool
	VerbCount       int
	AdjectiveCount  int
}

var negationTokens = map[string]bool{
	"not":     true,
	"n't":     true,
	"never":   true,
	"no":      true,
	"cannot":  true,
	"nothing": true,
	"nobody":  true,
	"none":    true,
}

// contrastTokens are the transition words treated as contrast markers.
var contrastTokens = map[string]bool{
	"but":      true,
	"however":  true,
	"yet":      true,
	"although": true,
	"while":    true,
	"whereas":  true,
	"instead":  true,
}

var goingToRx = regexp.MustCompile(`\bgoing to\s+\w`)

// ParseSentences segments text and tags each sentence. Whitespace-only input
// yields no sentences and no error.
func ParseSentences(text string) ([]Sentence, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}

	segmented, err := prose.NewDocument(trimmed,
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("segmenting text: %w", err)
	}

	raw := segmented.Sentences()
	out := make([]Sentence, 0, len(raw))
	for _, s := range raw {
		sentText := strings.TrimSpace(s.Text)
		if sentText == "" {
			continue
		}
		tagged, err := prose.NewDocument(sentText,
			prose.WithSegmentation(false),
			prose.WithExtraction(false))
		if err != nil {
			return nil, fmt.Errorf("tagging sentence: %w", err)
		}
		out = append(out, buildSentence(sentText, tagged.Tokens()))
	}
	return out, nil
}

func buildSentence(text string, tagged []prose.Token) Sentence {
	s := Sentence{Text: text}
	for _, tok := range tagged {
		s.Tokens = append(s.Tokens, Token{Text: tok.Text, Tag: tok.Tag})
		// The tagger can keep sentence-final punctuation attached to a token
		// ("No." stays one token), which would miss the lookup tables below.
		lower := strings.TrimRight(strings.ToLower(tok.Text), ".,;:!?")

		switch {
		case strings.HasPrefix(tok.Tag, "VB"):
			s.VerbCount++
		case strings.HasPrefix(tok.Tag, "JJ"):
			s.AdjectiveCount++
		}

		switch tok.Tag {
		case "VBD", "VBN":
			s.HasPastTense = true
		case "VBP", "VBZ", "VBG":
			s.HasPresentTense = true
		case "NNP", "NNPS":
			s.HasProperNoun = true
		case "MD":
			switch lower {
			case "will", "'ll", "wo", "shall":
				s.HasFutureTense = true
			}
		}

		if negationTokens[lower] {
			s.HasNegation = true
		}
		if contrastTokens[lower] {
			s.HasContrast = true
		}
	}

	if !s.HasFutureTense && goingToRx.MatchString(strings.ToLower(text)) {
		s.HasFutureTense = true
	}
	s.IsQuestion = detectQuestion(text, s.Tokens)
	return s
}

// detectQuestion treats a trailing question mark or a leading wh-word as a
// question.
func detectQuestion(text string, tokens []Token) bool {
	if strings.HasSuffix(strings.TrimSpace(text), "?") {
		return true
	}
	if len(tokens) == 0 {
		return false
	}
	switch tokens[0].Tag {
	case "WDT", "WP", "WP$", "WRB":
		return true
	}
	return false
}
