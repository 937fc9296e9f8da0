package quotes

import (
	"strings"
	"testing"
)

func TestExtractRespectsMaxLength(t *testing.T) {
	e := NewExtractor()
	content := "Short opening line here. " +
		"This middle sentence rambles on far beyond any reasonable meme caption length and should be dropped. " +
		"Short closing line here."

	result := e.Extract(content, 50, 10)
	if len(result.Quotes) == 0 {
		t.Fatal("Expected quotes")
	}
	for _, q := range result.Quotes {
		if len(q.Text) > 50 {
			t.Errorf("Expected quote within 50 chars, got %d: %q", len(q.Text), q.Text)
		}
		if strings.EqualFold(q.Text, "This middle sentence rambles on far beyond any reasonable meme caption length and should be dropped.") {
			t.Errorf("Expected the overlong sentence to be excluded")
		}
	}
}

func TestExtractPositionBonuses(t *testing.T) {
	e := NewExtractor()
	content := "Alpha service waits patiently. Bravo service waits patiently. Charlie service waits patiently."

	result := e.Extract(content, 100, 3)
	if len(result.Quotes) < 3 {
		t.Fatalf("Expected 3 quotes, got %d", len(result.Quotes))
	}

	if !strings.HasPrefix(result.Quotes[0].Text, "Charlie") {
		t.Errorf("Expected closing sentence first, got %q", result.Quotes[0].Text)
	}
	if !strings.HasPrefix(result.Quotes[1].Text, "Alpha") {
		t.Errorf("Expected opening sentence second, got %q", result.Quotes[1].Text)
	}
	if !strings.HasPrefix(result.Quotes[2].Text, "Bravo") {
		t.Errorf("Expected middle sentence last, got %q", result.Quotes[2].Text)
	}

	if !strings.Contains(result.Quotes[1].Reason, "opening hook") {
		t.Errorf("Expected opening hook reason, got %q", result.Quotes[1].Reason)
	}
	if !strings.Contains(result.Quotes[0].Reason, "closing punchline") {
		t.Errorf("Expected closing punchline reason, got %q", result.Quotes[0].Reason)
	}
}

func TestExtractPositionClassification(t *testing.T) {
	e := NewExtractor()
	content := "Alpha service waits patiently. Bravo service waits patiently. Charlie service waits patiently."

	result := e.Extract(content, 100, 3)
	positions := make(map[string]string)
	for _, q := range result.Quotes {
		positions[strings.Fields(q.Text)[0]] = q.Position
	}

	if positions["Alpha"] != PositionBeginning {
		t.Errorf("Expected beginning for first sentence, got %q", positions["Alpha"])
	}
	if positions["Bravo"] != PositionMiddle {
		t.Errorf("Expected middle for middle sentence, got %q", positions["Bravo"])
	}
	if positions["Charlie"] != PositionEnd {
		t.Errorf("Expected end for last sentence, got %q", positions["Charlie"])
	}
}

func TestExtractQuestionScoresAboveStatement(t *testing.T) {
	e := NewExtractor()

	statement := e.Extract("The cache is warm today.", 100, 1)
	question := e.Extract("Is the cache warm today?", 100, 1)
	if len(statement.Quotes) == 0 || len(question.Quotes) == 0 {
		t.Fatal("Expected one quote each")
	}

	if question.Quotes[0].Score <= statement.Quotes[0].Score {
		t.Errorf("Expected question %.1f to outscore statement %.1f",
			question.Quotes[0].Score, statement.Quotes[0].Score)
	}
	if !strings.Contains(question.Quotes[0].Reason, "question") {
		t.Errorf("Expected question reason, got %q", question.Quotes[0].Reason)
	}
}

func TestExtractDeduplicatesSentenceAndNgram(t *testing.T) {
	e := NewExtractor()
	content := "Stop the line. Everyone saw the demo fail on stage."

	result := e.Extract(content, 100, 20)
	count := 0
	for _, q := range result.Quotes {
		if strings.EqualFold(q.Text, "Stop the line.") {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected exactly one copy of the duplicated phrase, got %d", count)
	}
}

func TestExtractLimit(t *testing.T) {
	e := NewExtractor()
	content := "One short line. Two short lines. Three short lines. Four short lines. Five short lines."

	result := e.Extract(content, 100, 2)
	if len(result.Quotes) > 2 {
		t.Errorf("Expected at most 2 quotes, got %d", len(result.Quotes))
	}
}

func TestExtractDefaultsApplied(t *testing.T) {
	e := NewExtractor()
	content := "A sentence for the default path. Another sentence follows it."

	result := e.Extract(content, 0, 0)
	if len(result.Quotes) == 0 {
		t.Fatal("Expected quotes with default parameters")
	}
	if len(result.Quotes) > DefaultLimit {
		t.Errorf("Expected at most %d quotes, got %d", DefaultLimit, len(result.Quotes))
	}
	for _, q := range result.Quotes {
		if len(q.Text) > DefaultMaxLength {
			t.Errorf("Expected quotes within %d chars, got %d", DefaultMaxLength, len(q.Text))
		}
	}
}

func TestExtractAnalysisStats(t *testing.T) {
	e := NewExtractor()
	content := "One two three. Four five six."

	result := e.Extract(content, 100, 5)
	if result.Analysis.ContentLength != len(content) {
		t.Errorf("Expected content length %d, got %d", len(content), result.Analysis.ContentLength)
	}
	if result.Analysis.SentenceCount != 2 {
		t.Errorf("Expected 2 sentences, got %d", result.Analysis.SentenceCount)
	}
	if result.Analysis.AverageSentenceLength != 14 {
		t.Errorf("Expected average sentence length 14, got %d", result.Analysis.AverageSentenceLength)
	}
}

func TestExtractEmptyContent(t *testing.T) {
	e := NewExtractor()

	result := e.Extract("", 100, 5)
	if len(result.Quotes) != 0 {
		t.Errorf("Expected no quotes for empty content, got %d", len(result.Quotes))
	}
	if result.Analysis.SentenceCount != 0 || result.Analysis.AverageSentenceLength != 0 {
		t.Errorf("Expected zeroed analysis, got %+v", result.Analysis)
	}
}

func TestExtractDeterminism(t *testing.T) {
	e := NewExtractor()
	content := "Never trust a green build. It always has been flaky, but nobody checks."

	first := e.Extract(content, 80, 10)
	second := e.Extract(content, 80, 10)
	if len(first.Quotes) != len(second.Quotes) {
		t.Fatalf("Expected identical counts, got %d and %d", len(first.Quotes), len(second.Quotes))
	}
	for i := range first.Quotes {
		if first.Quotes[i] != second.Quotes[i] {
			t.Errorf("Expected identical quote at %d: %+v vs %+v", i, first.Quotes[i], second.Quotes[i])
		}
	}
}
