package suggest

import (
	"strings"
	"testing"

	"github.com/kozko2001/meme-generator-mcp/internal/analysis"
	"github.com/kozko2001/meme-generator-mcp/internal/catalog"
)

func newTestSuggester(t *testing.T) *Suggester {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("Catalog load failed: %v", err)
	}
	return NewSuggester(cat, analysis.NewAnalyzer())
}

func findSuggestion(suggestions []Suggestion, id string) (Suggestion, bool) {
	for _, s := range suggestions {
		if s.TemplateID == id {
			return s, true
		}
	}
	return Suggestion{}, false
}

func TestSuggestPreferenceSurfacesComparisons(t *testing.T) {
	s := newTestSuggester(t)

	got := s.Suggest("I used to use manual deployments, but now I use a CI/CD pipeline.", 5)
	if len(got) == 0 {
		t.Fatal("Expected suggestions")
	}

	if got[0].TemplateID != "drake" {
		t.Errorf("Expected drake first, got %q", got[0].TemplateID)
	}
	if got[0].Confidence != ConfidenceHigh {
		t.Errorf("Expected high confidence, got %q", got[0].Confidence)
	}
	for i := 0; i < 3 && i < len(got); i++ {
		if got[i].Category != string(catalog.CategoryComparisons) {
			t.Errorf("Expected comparisons in top 3, got %q at %d", got[i].Category, i)
		}
	}
	if !strings.Contains(got[0].Reason, "past and present tense") {
		t.Errorf("Expected tense contrast in reason, got %q", got[0].Reason)
	}
}

func TestSuggestMisidentificationOutranksCharacters(t *testing.T) {
	s := newTestSuggester(t)

	got := s.Suggest("Is this a feature? No, it's clearly a bug.", 10)
	if len(got) == 0 {
		t.Fatal("Expected suggestions")
	}

	pigeon, ok := findSuggestion(got, "pigeon")
	if !ok {
		t.Fatal("Expected pigeon in suggestions")
	}
	if got[0].TemplateID != "pigeon" {
		t.Errorf("Expected pigeon ranked first, got %q", got[0].TemplateID)
	}
	if pigeon.Confidence != ConfidenceHigh {
		t.Errorf("Expected high confidence for pigeon, got %q (score %.1f)", pigeon.Confidence, pigeon.Score)
	}

	for _, sg := range got {
		if sg.Category == string(catalog.CategoryCharacters) && sg.Score >= pigeon.Score {
			t.Errorf("Expected pigeon to outrank characters template %q (%.1f >= %.1f)", sg.TemplateID, sg.Score, pigeon.Score)
		}
	}
}

func TestSuggestLimitClamping(t *testing.T) {
	s := newTestSuggester(t)
	content := "This is a plain statement about the weather."

	if got := s.Suggest(content, 0); len(got) > DefaultLimit {
		t.Errorf("Expected default limit of %d for limit 0, got %d", DefaultLimit, len(got))
	}
	if got := s.Suggest(content, 99); len(got) > MaxLimit {
		t.Errorf("Expected at most %d for oversized limit, got %d", MaxLimit, len(got))
	}
	if got := s.Suggest(content, 2); len(got) > 2 {
		t.Errorf("Expected at most 2 suggestions, got %d", len(got))
	}
}

func TestSuggestFallbackForWeakContent(t *testing.T) {
	s := newTestSuggester(t)

	got := s.Suggest("Quarterly figures were within range.", 5)
	if len(got) == 0 {
		t.Fatal("Expected fallback suggestions for weak content")
	}
	for _, sg := range got {
		if sg.Confidence != ConfidenceLow {
			t.Errorf("Expected low confidence fallback, got %q for %q", sg.Confidence, sg.TemplateID)
		}
		if !strings.Contains(sg.Reason, "fallback") {
			t.Errorf("Expected fallback reason, got %q", sg.Reason)
		}
	}
}

func TestSuggestDoubtPatternAppliesBroadly(t *testing.T) {
	s := newTestSuggester(t)

	got := s.Suggest("No. Why would that ever work?", 10)
	if len(got) == 0 {
		t.Fatal("Expected suggestions")
	}

	facepalm, ok := findSuggestion(got, "facepalm")
	if !ok {
		t.Fatal("Expected facepalm among doubt-scored templates")
	}
	if !strings.Contains(facepalm.Reason, "doubt") {
		t.Errorf("Expected doubt reason, got %q", facepalm.Reason)
	}
}

func TestSuggestReasonsAreJoined(t *testing.T) {
	s := newTestSuggester(t)

	got := s.Suggest("I used to use manual deployments, but now I use a CI/CD pipeline.", 5)
	drake, ok := findSuggestion(got, "drake")
	if !ok {
		t.Fatal("Expected drake in suggestions")
	}
	if !strings.Contains(drake.Reason, "; ") {
		t.Errorf("Expected multiple reasons joined with '; ', got %q", drake.Reason)
	}
}

func TestSuggestPayloadComplete(t *testing.T) {
	s := newTestSuggester(t)

	got := s.Suggest("Is this a feature? No, it's clearly a bug.", 5)
	for _, sg := range got {
		if sg.DisplayName == "" {
			t.Errorf("Expected display name for %q", sg.TemplateID)
		}
		if sg.UsageDescription == "" {
			t.Errorf("Expected usage description for %q", sg.TemplateID)
		}
		if sg.SlotCount < 1 {
			t.Errorf("Expected positive slot count for %q", sg.TemplateID)
		}
		if len(sg.ExampleText) != sg.SlotCount {
			t.Errorf("Expected %d example lines for %q, got %d", sg.SlotCount, sg.TemplateID, len(sg.ExampleText))
		}
		if sg.Reason == "" {
			t.Errorf("Expected a reason for %q", sg.TemplateID)
		}
	}
}

func TestSuggestDeterministicOrdering(t *testing.T) {
	s := newTestSuggester(t)
	content := "Not sure if this is progress? Maybe it always has been."

	first := s.Suggest(content, 10)
	second := s.Suggest(content, 10)
	if len(first) != len(second) {
		t.Fatalf("Expected identical lengths, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].TemplateID != second[i].TemplateID || first[i].Score != second[i].Score {
			t.Errorf("Expected stable results at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}
