package keywords

// stopWords covers grammatical words plus high-frequency generic verbs that
// carry no topical signal. Shared by the lemmatizer, the synonym filter and
// the RAKE extractor.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "been": true, "by": true, "for": true, "from": true, "has": true,
	"he": true, "in": true, "is": true, "it": true, "its": true, "of": true,
	"on": true, "that": true, "the": true, "to": true, "was": true, "were": true,
	"will": true, "with": true, "would": true, "could": true, "should": true,
	"may": true, "might": true, "can": true, "must": true, "shall": true,
	"this": true, "these": true, "they": true, "them": true, "their": true,
	"there": true, "then": true, "than": true, "or": true, "but": true,
	"not": true, "no": true, "nor": true, "so": true, "yet": true,
	"however": true, "therefore": true, "thus": true, "hence": true,
	"because": true, "since": true, "although": true, "though": true,
	"unless": true, "until": true, "while": true, "where": true, "when": true,
	"who": true, "whom": true, "whose": true, "which": true, "what": true,
	"why": true, "how": true, "if": true, "do": true, "does": true, "did": true,
	"have": true, "had": true, "having": true, "get": true, "got": true,
	"getting": true, "go": true, "going": true, "gone": true, "went": true,
	"come": true, "came": true, "coming": true, "take": true, "took": true,
	"taken": true, "taking": true, "make": true, "made": true, "making": true,
	"see": true, "saw": true, "seen": true, "seeing": true, "know": true,
	"knew": true, "known": true, "knowing": true, "say": true, "said": true,
	"saying": true, "think": true, "thought": true, "thinking": true,
	"his": true, "her": true, "she": true, "we": true, "you": true,
	"your": true, "our": true, "us": true, "me": true, "my": true, "i": true,
	"thing": true, "things": true, "something": true, "anything": true,
	"everything": true, "very": true, "also": true, "just": true, "more": true,
	"most": true, "some": true, "any": true, "all": true, "each": true,
	"other": true, "such": true, "own": true, "same": true,
}

// IsStopWord reports whether the lowercase word carries no topical signal.
func IsStopWord(word string) bool {
	return stopWords[word]
}
