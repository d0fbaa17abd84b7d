package keywords

// Lemmatizer reduces free text to content-bearing base terms. It is an
// injected capability so tests can substitute a deterministic stub.
type Lemmatizer interface {
	Lemmas(text string) ([]string, error)
}

// SnowballLemmatizer tokenizes, drops stop words and collapses inflected
// forms by keeping the first surface token seen for each snowball stem.
type SnowballLemmatizer struct{}

func NewSnowballLemmatizer() *SnowballLemmatizer {
	return &SnowballLemmatizer{}
}

func (l *SnowballLemmatizer) Lemmas(text string) ([]string, error) {
	var lemmas []string
	seen := make(map[string]bool)

	for _, tok := range Tokenize(text) {
		if len(tok) < 2 || IsStopWord(tok) {
			continue
		}
		stem := Stem(tok)
		if seen[stem] {
			continue
		}
		seen[stem] = true
		lemmas = append(lemmas, tok)
	}

	return lemmas, nil
}
