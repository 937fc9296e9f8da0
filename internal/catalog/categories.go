package catalog

// categoryTable partitions the template set. Load verifies that every
// template appears in exactly one member list and that the list agrees with
// the template's own metadata.
var categoryTable = []Category{
	{
		ID:          CategoryReactions,
		DisplayName: "Reactions",
		Description: "Faces and gestures that answer a feeling: shock, despair, smugness, denial.",
		TemplateIDs: []string{"facepalm", "fine", "harold", "woman-cat", "spongebob", "pikachu"},
	},
	{
		ID:          CategoryComparisons,
		DisplayName: "Comparisons",
		Description: "Old versus new, this versus that, rejecting one option for another.",
		TemplateIDs: []string{"drake", "db", "ds", "spiderman", "both", "wddth"},
	},
	{
		ID:          CategoryQuestioning,
		DisplayName: "Questioning",
		Description: "Confusion, doubt, and questions both rhetorical and genuine.",
		TemplateIDs: []string{"fry", "pigeon", "philosoraptor", "yuno", "morpheus"},
	},
	{
		ID:          CategoryOpinions,
		DisplayName: "Opinions",
		Description: "Hot takes, confident claims, condescension, and passive aggression.",
		TemplateIDs: []string{"cmm", "wonka", "kermit", "interesting", "rollsafe"},
	},
	{
		ID:          CategorySuccessFail,
		DisplayName: "Success & Failure",
		Description: "Wins, losses, and plans that worked out or very much did not.",
		TemplateIDs: []string{"success", "disastergirl", "stonks", "tried", "bad"},
	},
	{
		ID:          CategorySocial,
		DisplayName: "Social Situations",
		Description: "Awkwardness, attachment, celebration, and other people problems.",
		TemplateIDs: []string{"awkward", "awesome-awkward", "oag", "leo", "hipster"},
	},
	{
		ID:          CategoryAnimals,
		DisplayName: "Animals",
		Description: "The classic animal cast: dogs, cats, frogs, and other creatures.",
		TemplateIDs: []string{"doge", "grumpycat", "icanhas", "sadfrog"},
	},
	{
		ID:          CategoryCharacters,
		DisplayName: "Characters",
		Description: "Recognizable people and fictional characters with a fixed catchphrase energy.",
		TemplateIDs: []string{"aag", "ackbar", "yodawg", "dwight", "bender", "keanu"},
	},
	{
		ID:          CategorySituations,
		DisplayName: "Situations",
		Description: "Scene-based humor: everything on fire, sudden clarity, time distortion.",
		TemplateIDs: []string{"gru", "buzz", "scc", "astronaut", "whatyear"},
	},
}
