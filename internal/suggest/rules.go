package suggest

import (
	"regexp"
	"strings"

	"github.com/kozko2001/meme-generator-mcp/internal/analysis"
)

// rule is one curated per-template heuristic. The table encodes domain
// knowledge about individual meme formats and is matched by template ID.
type rule struct {
	TemplateID string
	Delta      float64
	Reason     string
	When       func(lower string, sig analysis.Signals) bool
}

var (
	beforeAfterRx = regexp.MustCompile(`\b(used to|back then|back in the day|no longer|not anymore|these days|nowadays)\b`)
	mistakeRx     = regexp.MustCompile(`\b(mistake|mistaken|mixed up|wrong|turns out|clearly a|actually a)\b`)
)

var specialRules = []rule{
	{
		TemplateID: "drake",
		Delta:      4,
		Reason:     "rejects the old way and embraces the new one",
		When: func(lower string, sig analysis.Signals) bool {
			return (sig.PastTense && sig.PresentTense) || beforeAfterRx.MatchString(lower)
		},
	},
	{
		TemplateID: "fry",
		Delta:      3,
		Reason:     "uncertainty voiced as a question",
		When: func(lower string, sig analysis.Signals) bool {
			return sig.Confusion && sig.QuestionCount > 0
		},
	},
	{
		TemplateID: "pigeon",
		Delta:      3,
		Reason:     "misidentifies one thing as another",
		When: func(lower string, sig analysis.Signals) bool {
			return strings.Contains(lower, "is this") && (sig.Confusion || mistakeRx.MatchString(lower))
		},
	},
	{
		TemplateID: "cmm",
		Delta:      3,
		Reason:     "a confidently defended hot take",
		When: func(lower string, sig analysis.Signals) bool {
			return sig.Confidence && sig.Opinion
		},
	},
	{
		TemplateID: "success",
		Delta:      3,
		Reason:     "an unqualified win",
		When: func(lower string, sig analysis.Signals) bool {
			return sig.Success && !sig.Failure
		},
	},
	{
		TemplateID: "fine",
		Delta:      3,
		Reason:     "calm denial while everything burns",
		When: func(lower string, sig analysis.Signals) bool {
			return sig.Failure && sig.Irony
		},
	},
	{
		TemplateID: "db",
		Delta:      3,
		Reason:     "attention drifting toward the newer option",
		When: func(lower string, sig analysis.Signals) bool {
			return sig.Preference && sig.Comparison
		},
	},
	{
		TemplateID: "morpheus",
		Delta:      3,
		Reason:     "a dramatic reveal of a hidden truth",
		When: func(lower string, sig analysis.Signals) bool {
			return strings.Contains(lower, "what if") || sig.Surprise
		},
	},
	{
		TemplateID: "yuno",
		Delta:      3,
		Reason:     "an exasperated demand",
		When: func(lower string, sig analysis.Signals) bool {
			return sig.QuestionCount > 0 && sig.ExclamationCount > 0
		},
	},
	{
		TemplateID: "astronaut",
		Delta:      3,
		Reason:     "a late realization of what was true all along",
		When: func(lower string, sig analysis.Signals) bool {
			return strings.Contains(lower, "always has been") || (sig.Surprise && sig.PastTense)
		},
	},
}
