package catalog

// metadataTable is the suggestion-facing catalog. Keywords are matched as
// substrings of lower-cased content, so entries stay at three characters or
// more and multi-word phrases are allowed.
var metadataTable = []Metadata{
	// reactions
	{
		ID:               "facepalm",
		UsageDescription: "Exasperated reaction when someone does something obviously wrong.",
		Category:         CategoryReactions,
		Keywords:         []string{"facepalm", "frustration", "disappointment", "obvious", "exasperation"},
		Popularity:       PopularityHigh,
		SimilarTemplates: []string{"harold", "woman-cat"},
	},
	{
		ID:               "fine",
		UsageDescription: "Pretending everything is fine while the situation burns down around you.",
		Category:         CategoryReactions,
		Keywords:         []string{"fine", "disaster", "denial", "calm", "burning", "coping"},
		Popularity:       PopularityHigh,
		SimilarTemplates: []string{"disastergirl", "harold"},
	},
	{
		ID:               "harold",
		UsageDescription: "Smiling politely through internal suffering.",
		Category:         CategoryReactions,
		Keywords:         []string{"pain", "fake smile", "suffering", "endure", "grin"},
		Popularity:       PopularityMedium,
		SimilarTemplates: []string{"fine", "facepalm"},
	},
	{
		ID:               "woman-cat",
		UsageDescription: "A heated one-sided argument met with total indifference.",
		Category:         CategoryReactions,
		Keywords:         []string{"yelling", "argument", "accusation", "blame", "dinner"},
		Popularity:       PopularityHigh,
		SimilarTemplates: []string{"facepalm", "grumpycat"},
	},
	{
		ID:               "spongebob",
		UsageDescription: "Mocking a statement by repeating it in a silly voice.",
		Category:         CategoryReactions,
		Keywords:         []string{"mocking", "sarcasm", "imitate", "ridicule", "repeat"},
		Popularity:       PopularityHigh,
		SimilarTemplates: []string{"wonka", "kermit"},
	},
	{
		ID:               "pikachu",
		UsageDescription: "Mock shock at the entirely predictable outcome of your own choices.",
		Category:         CategoryReactions,
		Keywords:         []string{"surprised", "shock", "shocked", "reaction", "consequences"},
		Popularity:       PopularityHigh,
		SimilarTemplates: []string{"scc", "astronaut"},
	},

	// comparisons
	{
		ID:               "drake",
		UsageDescription: "Rejecting the first option while smugly preferring the second.",
		Category:         CategoryComparisons,
		Keywords:         []string{"prefer", "reject", "choice", "versus", "approve", "upgrade"},
		Popularity:       PopularityHigh,
		SimilarTemplates: []string{"db", "ds"},
	},
	{
		ID:               "db",
		UsageDescription: "Attention drifting from the current commitment to a tempting alternative.",
		Category:         CategoryComparisons,
		Keywords:         []string{"distracted", "temptation", "jealous", "shiny", "attention"},
		Popularity:       PopularityHigh,
		SimilarTemplates: []string{"drake", "buzz"},
	},
	{
		ID:               "ds",
		UsageDescription: "Sweating over two equally tempting or equally terrible buttons.",
		Category:         CategoryComparisons,
		Keywords:         []string{"buttons", "dilemma", "struggle", "decide", "sweat"},
		Popularity:       PopularityMedium,
		SimilarTemplates: []string{"drake", "philosoraptor"},
	},
	{
		ID:               "spiderman",
		UsageDescription: "Two identical things accusing each other of being the impostor.",
		Category:         CategoryComparisons,
		Keywords:         []string{"identical", "pointing", "impostor", "duplicate", "lookalike"},
		Popularity:       PopularityMedium,
		SimilarTemplates: []string{"db"},
	},
	{
		ID:               "both",
		UsageDescription: "Refusing a false dilemma by happily choosing both options.",
		Category:         CategoryComparisons,
		Keywords:         []string{"both", "compromise", "middle ground", "either"},
		Popularity:       PopularityLow,
		SimilarTemplates: []string{"ds"},
	},
	{
		ID:               "wddth",
		UsageDescription: "Pitting an overwhelming favorite against one absurd underdog.",
		Category:         CategoryComparisons,
		Keywords:         []string{"versus", "battle", "matchup", "contest", "underdog"},
		Popularity:       PopularityMedium,
		SimilarTemplates: []string{"spiderman", "ds"},
	},

	// questioning
	{
		ID:               "fry",
		UsageDescription: "Squinting in doubt, unable to tell two explanations apart.",
		Category:         CategoryQuestioning,
		Keywords:         []string{"not sure", "suspicious", "squint", "doubt", "uncertain"},
		Popularity:       PopularityHigh,
		SimilarTemplates: []string{"pigeon", "philosoraptor"},
	},
	{
		ID:               "pigeon",
		UsageDescription: "Confidently misidentifying one thing as something entirely different.",
		Category:         CategoryQuestioning,
		Keywords:         []string{"is this", "misidentify", "butterfly", "mistaken", "mislabel"},
		Popularity:       PopularityHigh,
		SimilarTemplates: []string{"fry"},
	},
	{
		ID:               "philosoraptor",
		UsageDescription: "Pondering a pseudo-profound question with claw on chin.",
		Category:         CategoryQuestioning,
		Keywords:         []string{"philosophical", "ponder", "paradox", "deep thought", "wonder"},
		Popularity:       PopularityMedium,
		SimilarTemplates: []string{"fry", "keanu"},
	},
	{
		ID:               "yuno",
		UsageDescription: "An exasperated, demanding question aimed at someone or something.",
		Category:         CategoryQuestioning,
		Keywords:         []string{"why", "frustration", "demand", "complain", "exasperated"},
		Popularity:       PopularityMedium,
		SimilarTemplates: []string{"facepalm"},
	},
	{
		ID:               "morpheus",
		UsageDescription: "Dramatically revealing a truth the audience is not ready for.",
		Category:         CategoryQuestioning,
		Keywords:         []string{"what if", "reveal", "truth", "revelation", "red pill"},
		Popularity:       PopularityHigh,
		SimilarTemplates: []string{"aag", "astronaut"},
	},

	// opinions
	{
		ID:               "cmm",
		UsageDescription: "Planting a confident, debatable claim and daring the world to refute it.",
		Category:         CategoryOpinions,
		Keywords:         []string{"opinion", "debate", "prove", "convince", "hot take", "challenge"},
		Popularity:       PopularityHigh,
		SimilarTemplates: []string{"wonka", "kermit"},
	},
	{
		ID:               "wonka",
		UsageDescription: "Feigned interest dripping with condescension.",
		Category:         CategoryOpinions,
		Keywords:         []string{"condescending", "sarcasm", "patronize", "mocking", "oh really"},
		Popularity:       PopularityHigh,
		SimilarTemplates: []string{"spongebob", "kermit"},
	},
	{
		ID:               "kermit",
		UsageDescription: "Making a pointed observation and then theatrically minding your own business.",
		Category:         CategoryOpinions,
		Keywords:         []string{"passive aggressive", "gossip", "judging", "shade", "none of my business"},
		Popularity:       PopularityMedium,
		SimilarTemplates: []string{"wonka"},
	},
	{
		ID:               "interesting",
		UsageDescription: "Rare habits framed as distinguished exceptions.",
		Category:         CategoryOpinions,
		Keywords:         []string{"rarely", "classy", "exception", "distinguished", "habits"},
		Popularity:       PopularityMedium,
		SimilarTemplates: []string{"cmm"},
	},
	{
		ID:               "rollsafe",
		UsageDescription: "Celebrating a flawed shortcut as genius-level thinking.",
		Category:         CategoryOpinions,
		Keywords:         []string{"clever", "loophole", "galaxy brain", "shortcut", "big brain"},
		Popularity:       PopularityHigh,
		SimilarTemplates: []string{"interesting", "philosoraptor"},
	},

	// success-fail
	{
		ID:               "success",
		UsageDescription: "Celebrating a small but satisfying victory with a clenched fist.",
		Category:         CategorySuccessFail,
		Keywords:         []string{"success", "victory", "nailed it", "achievement", "finally"},
		Popularity:       PopularityHigh,
		SimilarTemplates: []string{"stonks", "leo"},
	},
	{
		ID:               "disastergirl",
		UsageDescription: "Smirking proudly in front of the chaos you caused.",
		Category:         CategorySuccessFail,
		Keywords:         []string{"disaster", "chaos", "smirk", "arson", "destruction"},
		Popularity:       PopularityHigh,
		SimilarTemplates: []string{"fine"},
	},
	{
		ID:               "stonks",
		UsageDescription: "Ironically celebrating dubious gains like a business genius.",
		Category:         CategorySuccessFail,
		Keywords:         []string{"profit", "gains", "stonks", "numbers go up", "finance"},
		Popularity:       PopularityMedium,
		SimilarTemplates: []string{"success"},
	},
	{
		ID:               "tried",
		UsageDescription: "A consolation trophy for an effort that went nowhere.",
		Category:         CategorySuccessFail,
		Keywords:         []string{"tried", "participation", "consolation", "effort", "shrug"},
		Popularity:       PopularityLow,
		SimilarTemplates: []string{"bad"},
	},
	{
		ID:               "bad",
		UsageDescription: "Bluntly informing someone their work is bad and shame is warranted.",
		Category:         CategorySuccessFail,
		Keywords:         []string{"feel bad", "shame", "scold", "criticism", "zoidberg"},
		Popularity:       PopularityLow,
		SimilarTemplates: []string{"tried", "dwight"},
	},

	// social
	{
		ID:               "awkward",
		UsageDescription: "Reliving a small, mortifying social failure.",
		Category:         CategorySocial,
		Keywords:         []string{"awkward", "embarrassing", "cringe", "uncomfortable", "social"},
		Popularity:       PopularityMedium,
		SimilarTemplates: []string{"awesome-awkward", "harold"},
	},
	{
		ID:               "awesome-awkward",
		UsageDescription: "A social triumph that collapses into immediate awkwardness.",
		Category:         CategorySocial,
		Keywords:         []string{"awkward", "awesome", "mixed bag", "backfire"},
		Popularity:       PopularityLow,
		SimilarTemplates: []string{"awkward"},
	},
	{
		ID:               "oag",
		UsageDescription: "Unsettling enthusiasm and over-attachment after minimal contact.",
		Category:         CategorySocial,
		Keywords:         []string{"clingy", "attached", "obsessive", "stare", "devotion"},
		Popularity:       PopularityMedium,
		SimilarTemplates: []string{"awkward"},
	},
	{
		ID:               "leo",
		UsageDescription: "Raising a glass in smug or sincere salute.",
		Category:         CategorySocial,
		Keywords:         []string{"cheers", "toast", "congratulations", "respect", "salute"},
		Popularity:       PopularityMedium,
		SimilarTemplates: []string{"success"},
	},
	{
		ID:               "hipster",
		UsageDescription: "Smug claims of liking things before they were popular.",
		Category:         CategorySocial,
		Keywords:         []string{"hipster", "mainstream", "ironic", "trendy", "before it was cool"},
		Popularity:       PopularityLow,
		SimilarTemplates: []string{"interesting"},
	},

	// animals
	{
		ID:               "doge",
		UsageDescription: "Broken-English superlatives from an easily impressed shiba.",
		Category:         CategoryAnimals,
		Keywords:         []string{"doge", "wow", "such", "very", "shiba"},
		Popularity:       PopularityHigh,
		SimilarTemplates: []string{"grumpycat"},
	},
	{
		ID:               "grumpycat",
		UsageDescription: "Flat, joyless refusal of whatever was suggested.",
		Category:         CategoryAnimals,
		Keywords:         []string{"grumpy", "nope", "refuse", "hate", "cranky"},
		Popularity:       PopularityHigh,
		SimilarTemplates: []string{"woman-cat", "doge"},
	},
	{
		ID:               "icanhas",
		UsageDescription: "A hopeful, badly spelled request for something simple.",
		Category:         CategoryAnimals,
		Keywords:         []string{"can has", "kitty", "plead", "request", "lolcat"},
		Popularity:       PopularityMedium,
		SimilarTemplates: []string{"grumpycat"},
	},
	{
		ID:               "sadfrog",
		UsageDescription: "Wallowing in low-grade misery after a letdown.",
		Category:         CategoryAnimals,
		Keywords:         []string{"sad", "feels", "depressed", "misery", "letdown"},
		Popularity:       PopularityMedium,
		SimilarTemplates: []string{"tried", "harold"},
	},

	// characters
	{
		ID:               "aag",
		UsageDescription: "Explaining anything inexplicable with a single word: aliens.",
		Category:         CategoryCharacters,
		Keywords:         []string{"aliens", "conspiracy", "explanation", "history", "theory"},
		Popularity:       PopularityHigh,
		SimilarTemplates: []string{"morpheus", "keanu"},
	},
	{
		ID:               "ackbar",
		UsageDescription: "Shouting a warning about an obvious trap.",
		Category:         CategoryCharacters,
		Keywords:         []string{"trap", "warning", "danger", "alarm", "admiral"},
		Popularity:       PopularityMedium,
		SimilarTemplates: []string{"keanu"},
	},
	{
		ID:               "yodawg",
		UsageDescription: "Recursive absurdity: putting a thing inside the same thing.",
		Category:         CategoryCharacters,
		Keywords:         []string{"recursion", "nested", "yo dawg", "inception", "layered"},
		Popularity:       PopularityMedium,
		SimilarTemplates: []string{"doge"},
	},
	{
		ID:               "dwight",
		UsageDescription: "Pedantically correcting someone with deadpan certainty.",
		Category:         CategoryCharacters,
		Keywords:         []string{"false", "correction", "facts", "pedantic", "actually"},
		Popularity:       PopularityMedium,
		SimilarTemplates: []string{"bad", "wonka"},
	},
	{
		ID:               "bender",
		UsageDescription: "Storming off to build your own version out of spite.",
		Category:         CategoryCharacters,
		Keywords:         []string{"build my own", "spite", "fork", "walk out", "blackjack"},
		Popularity:       PopularityMedium,
		SimilarTemplates: []string{"yuno"},
	},
	{
		ID:               "keanu",
		UsageDescription: "A paranoid shower thought taken far too seriously.",
		Category:         CategoryCharacters,
		Keywords:         []string{"conspiracy", "shower thought", "paranoid", "woah", "what if"},
		Popularity:       PopularityLow,
		SimilarTemplates: []string{"philosoraptor", "aag"},
	},

	// situations
	{
		ID:               "gru",
		UsageDescription: "A confident plan that falls apart at the final step.",
		Category:         CategorySituations,
		Keywords:         []string{"plan", "backfire", "scheme", "step", "unravel"},
		Popularity:       PopularityMedium,
		SimilarTemplates: []string{"fine", "pikachu"},
	},
	{
		ID:               "buzz",
		UsageDescription: "Gesturing at the overwhelming abundance of one thing.",
		Category:         CategorySituations,
		Keywords:         []string{"everywhere", "abundance", "flood", "overwhelmed"},
		Popularity:       PopularityHigh,
		SimilarTemplates: []string{"doge"},
	},
	{
		ID:               "scc",
		UsageDescription: "A blinding mid-party realization of the obvious.",
		Category:         CategorySituations,
		Keywords:         []string{"realization", "clarity", "surprise", "epiphany"},
		Popularity:       PopularityLow,
		SimilarTemplates: []string{"pikachu", "astronaut"},
	},
	{
		ID:               "astronaut",
		UsageDescription: "Discovering a hidden truth moments before the betrayal.",
		Category:         CategorySituations,
		Keywords:         []string{"always has been", "betrayal", "realization", "space", "reveal"},
		Popularity:       PopularityHigh,
		SimilarTemplates: []string{"morpheus", "scc"},
	},
	{
		ID:               "whatyear",
		UsageDescription: "Total time disorientation after resurfacing from a long absence.",
		Category:         CategorySituations,
		Keywords:         []string{"what year", "time warp", "confused", "woke up", "jumanji"},
		Popularity:       PopularityLow,
		SimilarTemplates: []string{"scc"},
	},
}
