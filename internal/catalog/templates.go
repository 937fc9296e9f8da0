package catalog

// templateTable is the render-facing catalog. Slot counts follow the classic
// memegen layouts; example text shows one idiomatic filling per slot.
var templateTable = []Template{
	// reactions
	{ID: "facepalm", DisplayName: "Picard Facepalm", SlotCount: 2, ExampleText: []string{"why would you", "do any of that"}},
	{ID: "fine", DisplayName: "This Is Fine", SlotCount: 2, ExampleText: []string{"this is fine", "everything is fine"}},
	{ID: "harold", DisplayName: "Hide the Pain Harold", SlotCount: 2, ExampleText: []string{"smiling on the outside", "crying on the inside"}},
	{ID: "woman-cat", DisplayName: "Woman Yelling at a Cat", SlotCount: 2, ExampleText: []string{"you broke the build", "i merely pushed to main"}},
	{ID: "spongebob", DisplayName: "Mocking Spongebob", SlotCount: 2, ExampleText: []string{"just write tests", "jUsT wRiTe TeStS"}},
	{ID: "pikachu", DisplayName: "Surprised Pikachu", SlotCount: 2, ExampleText: []string{"skip code review", "bug reaches production"}},

	// comparisons
	{ID: "drake", DisplayName: "Drake Hotline Bling", SlotCount: 2, ExampleText: []string{"manual deployments", "one-click pipeline"}},
	{ID: "db", DisplayName: "Distracted Boyfriend", SlotCount: 3, ExampleText: []string{"me", "shiny new framework", "the unfinished rewrite"}},
	{ID: "ds", DisplayName: "Daily Struggle", SlotCount: 2, ExampleText: []string{"fix the root cause", "add another workaround"}},
	{ID: "spiderman", DisplayName: "Spider-Man Pointing", SlotCount: 1, ExampleText: []string{"two services blaming each other"}},
	{ID: "both", DisplayName: "Why Not Both?", SlotCount: 2, ExampleText: []string{"tabs or spaces?", "why not both?"}},
	{ID: "wddth", DisplayName: "Who Would Win?", SlotCount: 2, ExampleText: []string{"a carefully planned roadmap", "one spicy incident ticket"}},

	// questioning
	{ID: "fry", DisplayName: "Futurama Fry", SlotCount: 2, ExampleText: []string{"not sure if feature", "or elaborate bug"}},
	{ID: "pigeon", DisplayName: "Is This a Pigeon?", SlotCount: 3, ExampleText: []string{"junior devs", "a segfault", "is this a compiler bug?"}},
	{ID: "philosoraptor", DisplayName: "Philosoraptor", SlotCount: 2, ExampleText: []string{"if tests test code", "what tests the tests?"}},
	{ID: "yuno", DisplayName: "Y U No", SlotCount: 2, ExampleText: []string{"compiler", "y u no give useful error"}},
	{ID: "morpheus", DisplayName: "Matrix Morpheus", SlotCount: 2, ExampleText: []string{"what if i told you", "the bug was in your code all along"}},

	// opinions
	{ID: "cmm", DisplayName: "Change My Mind", SlotCount: 1, ExampleText: []string{"vim is an operating system, change my mind"}},
	{ID: "wonka", DisplayName: "Condescending Wonka", SlotCount: 2, ExampleText: []string{"oh, you deploy on fridays?", "tell me how that goes"}},
	{ID: "kermit", DisplayName: "But That's None of My Business", SlotCount: 2, ExampleText: []string{"they said the estimate was final", "but that's none of my business"}},
	{ID: "interesting", DisplayName: "The Most Interesting Man in the World", SlotCount: 2, ExampleText: []string{"i don't always test my code", "but when i do, i do it in production"}},
	{ID: "rollsafe", DisplayName: "Roll Safe", SlotCount: 2, ExampleText: []string{"can't miss the deadline", "if you never set one"}},

	// success-fail
	{ID: "success", DisplayName: "Success Kid", SlotCount: 2, ExampleText: []string{"merged on friday", "nothing broke"}},
	{ID: "disastergirl", DisplayName: "Disaster Girl", SlotCount: 2, ExampleText: []string{"the legacy system", "my small refactor"}},
	{ID: "stonks", DisplayName: "Stonks", SlotCount: 1, ExampleText: []string{"rename all variables, stonks"}},
	{ID: "tried", DisplayName: "At Least You Tried", SlotCount: 1, ExampleText: []string{"my attempt at estimating this sprint"}},
	{ID: "bad", DisplayName: "You Should Feel Bad", SlotCount: 2, ExampleText: []string{"your code is bad", "and you should feel bad"}},

	// social
	{ID: "awkward", DisplayName: "Socially Awkward Penguin", SlotCount: 2, ExampleText: []string{"wave at a stranger", "they were waving at someone else"}},
	{ID: "awesome-awkward", DisplayName: "Socially Awesome Awkward Penguin", SlotCount: 2, ExampleText: []string{"nail the opening joke", "forget everyone's names"}},
	{ID: "oag", DisplayName: "Overly Attached Girlfriend", SlotCount: 2, ExampleText: []string{"you merged my pr", "so we're pairing forever now"}},
	{ID: "leo", DisplayName: "Leonardo DiCaprio Cheers", SlotCount: 2, ExampleText: []string{"cheers to whoever", "wrote this comment"}},
	{ID: "hipster", DisplayName: "Hipster Barista", SlotCount: 2, ExampleText: []string{"i used microservices", "before they were cool"}},

	// animals
	{ID: "doge", DisplayName: "Doge", SlotCount: 5, ExampleText: []string{"wow", "such code", "very quality", "much wow", "so ship"}},
	{ID: "grumpycat", DisplayName: "Grumpy Cat", SlotCount: 2, ExampleText: []string{"i reviewed your pr", "it was terrible"}},
	{ID: "icanhas", DisplayName: "I Can Has Cheezburger?", SlotCount: 2, ExampleText: []string{"i can has", "code review?"}},
	{ID: "sadfrog", DisplayName: "Feels Bad Man", SlotCount: 2, ExampleText: []string{"demo worked locally", "feels bad man"}},

	// characters
	{ID: "aag", DisplayName: "Ancient Aliens Guy", SlotCount: 1, ExampleText: []string{"aliens"}},
	{ID: "ackbar", DisplayName: "It's a Trap!", SlotCount: 2, ExampleText: []string{"free pizza at the meeting", "it's a trap!"}},
	{ID: "yodawg", DisplayName: "Xzibit Yo Dawg", SlotCount: 2, ExampleText: []string{"yo dawg, i heard you like containers", "so we put containers in your containers"}},
	{ID: "dwight", DisplayName: "Schrute Facts", SlotCount: 2, ExampleText: []string{"false", "bears do not beat battlestar galactica"}},
	{ID: "bender", DisplayName: "Blackjack and Hookers", SlotCount: 2, ExampleText: []string{"fine, i'll build my own ci", "with blackjack"}},
	{ID: "keanu", DisplayName: "Conspiracy Keanu", SlotCount: 2, ExampleText: []string{"what if staging", "is someone else's production"}},

	// situations
	{ID: "gru", DisplayName: "Gru's Plan", SlotCount: 4, ExampleText: []string{"ship the mvp", "collect feedback", "feedback is all bug reports", "feedback is all bug reports"}},
	{ID: "buzz", DisplayName: "X, X Everywhere", SlotCount: 2, ExampleText: []string{"deprecation warnings", "deprecation warnings everywhere"}},
	{ID: "scc", DisplayName: "Sudden Clarity Clarence", SlotCount: 2, ExampleText: []string{"standups are just", "status emails read out loud"}},
	{ID: "astronaut", DisplayName: "Always Has Been", SlotCount: 2, ExampleText: []string{"wait, it's all config?", "always has been"}},
	{ID: "whatyear", DisplayName: "What Year Is It?", SlotCount: 1, ExampleText: []string{"reopening a ticket from 2019: what year is it?"}},
}
