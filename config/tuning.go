package config

type Tuning struct {
	// Heading detection
	HeadingFontRatio float64
	MaxHeadingRunes  int

	// Score combination
	LexicalWeight  float64
	SemanticWeight float64

	// Keyword weights
	SynonymWeight float64
	SummaryWeight float64

	// Keyword filtering
	MinTermLen  int
	SummaryTopK int

	// Selection
	TopSections    int
	RefinedTextLen int
	MaxEmbedTokens int
}

// DefaultTuning returns the ranking constants used in production runs.
func DefaultTuning() Tuning {
	return Tuning{
		HeadingFontRatio: 1.15,
		MaxHeadingRunes:  80,
		LexicalWeight:    0.7,
		SemanticWeight:   0.3,
		SynonymWeight:    0.5,
		SummaryWeight:    0.7,
		MinTermLen:       3,
		SummaryTopK:      5,
		TopSections:      5,
		RefinedTextLen:   500,
		MaxEmbedTokens:   200,
	}
}
