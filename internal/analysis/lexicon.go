package analysis

import "regexp"

// Lexical patterns matched against lower-cased content. Word boundaries keep
// short entries from firing inside longer words.
var (
	surpriseRx = regexp.MustCompile(`\b(wow|unexpected|unexpectedly|can't believe|cannot believe|turns out|plot twist|suddenly|shocked|surprised|surprising|stunned)\b`)

	uncertaintyRx = regexp.MustCompile(`\b(not sure|no idea|confused|confusing|unclear|can't tell|cannot tell|huh|maybe|perhaps|i guess|who knows)\b`)

	ironyRx = regexp.MustCompile(`\b(ironic|irony|ironically|of course it|naturally it|as always|what could go wrong|just my luck|totally fine|perfectly fine|this is fine)\b`)

	preferenceRx = regexp.MustCompile(`\b(prefer|preferred|rather|better than|worse than|instead of|switch(ed)? to|upgrade[ds]? to|used to \w[^.!?]{0,40}\bnow\b|no longer use)`)

	comparisonRx = regexp.MustCompile(`\b(than|versus|vs\.?|compared to|instead of|rather than|used to|old way|new way|before and after)\b`)

	successRx = regexp.MustCompile(`\b(success|succeeded|nailed it|finally work(s|ed)?|achieved|accomplished|shipped it|victory|won|passed|it work(s|ed))\b`)

	failureRx = regexp.MustCompile(`\b(fail|failed|failure|broke|broken|crashed|ruined|went wrong|gave up|disaster|lost)\b`)

	awkwardnessRx = regexp.MustCompile(`\b(awkward|awkwardly|embarrassing|embarrassed|cringe|uncomfortable|mortifying|social anxiety)\b`)

	confidenceRx = regexp.MustCompile(`\b(clearly|obviously|definitely|absolutely|certainly|undoubtedly|no doubt|without question|i'm sure|trust me)\b`)

	opinionRx = regexp.MustCompile(`\b(i think|i believe|in my opinion|in my view|my take|opinion|unpopular|hot take|change my mind|fight me|overrated|underrated|should)\b`)

	contrastIdiomRx = regexp.MustCompile(`\b(used to|back then|back in the day|these days|not anymore|no longer|at first|in the past|nowadays)\b`)

	negationFallbackRx = regexp.MustCompile(`\b(not|no|never|nothing|nobody|none|cannot|can't|won't|don't|doesn't|isn't|wasn't)\b`)
)
