package relevance

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"docrank/config"
	"docrank/extract"
	"docrank/keywords"
)

// stubEmbedder returns canned vectors per exact input text so semantic
// scores are fully controlled.
type stubEmbedder struct {
	vectors  map[string][]float32
	fallback []float32
	err      error
}

func (s *stubEmbedder) GetEmbeddings(_ context.Context, texts []string) ([][]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		if vec, ok := s.vectors[text]; ok {
			out[i] = vec
		} else {
			out[i] = s.fallback
		}
	}
	return out, nil
}

func travelSet() *keywords.Set {
	return &keywords.Set{
		Primary: []keywords.Term{
			{Text: "travel", Weight: 1.0},
			{Text: "trip", Weight: 1.0},
		},
		Synonyms: []keywords.Term{
			{Text: "journey", Weight: 0.5},
		},
	}
}

func newTestScorer(t *testing.T, embedder *stubEmbedder) *Scorer {
	t.Helper()
	scorer, err := NewScorer(context.Background(), travelSet(), embedder, config.DefaultTuning(), zap.NewNop())
	require.NoError(t, err)
	return scorer
}

func TestScoreAllCombinesLexicalAndSemantic(t *testing.T) {
	embedder := &stubEmbedder{
		vectors: map[string][]float32{
			"travel trip": {1, 0},
		},
		fallback: []float32{0, 1},
	}
	scorer := newTestScorer(t, embedder)

	sections := []Scored{
		{Section: extract.Section{Title: "Travel tips", Body: "plan your trip and journey well", Page: 1}},
		{Section: extract.Section{Title: "Legal Notice", Body: "all rights reserved", Page: 2}},
	}

	scored, err := scorer.ScoreAll(context.Background(), sections)
	require.NoError(t, err)

	// First section matches travel, trip and journey: full lexical score.
	require.InDelta(t, 1.0, scored[0].Lexical, 1e-9)
	// Fallback vector is orthogonal to the query: cosine 0 maps to 0.5.
	require.InDelta(t, 0.5, scored[0].Semantic, 1e-9)
	require.InDelta(t, 0.7*1.0+0.3*0.5, scored[0].Combined, 1e-9)

	require.Zero(t, scored[1].Lexical)
	require.InDelta(t, 0.5, scored[1].Semantic, 1e-9)

	for _, s := range scored {
		require.GreaterOrEqual(t, s.Combined, 0.0)
		require.LessOrEqual(t, s.Combined, 1.0)
	}
}

func TestScoreAllPartialMatch(t *testing.T) {
	embedder := &stubEmbedder{fallback: []float32{0, 1}}
	scorer := newTestScorer(t, embedder)

	// "travels" stems to "travel": an exact stem match. "roadtrip" contains
	// the keyword stem "trip" as a substring.
	sections := []Scored{
		{Section: extract.Section{Title: "Notes", Body: "she travels often", Page: 1}},
		{Section: extract.Section{Title: "Notes", Body: "a roadtrip playlist", Page: 2}},
	}

	scored, err := scorer.ScoreAll(context.Background(), sections)
	require.NoError(t, err)
	require.InDelta(t, 1.0/2.5, scored[0].Lexical, 1e-9)
	require.InDelta(t, 1.0/2.5, scored[1].Lexical, 1e-9)
}

func TestScoreMonotonicity(t *testing.T) {
	embedder := &stubEmbedder{
		vectors: map[string][]float32{
			"travel trip": {1, 0},
			"Rich match travel trip journey": {1, 0},
		},
		fallback: []float32{-1, 0},
	}
	scorer := newTestScorer(t, embedder)

	sections := []Scored{
		{Section: extract.Section{Title: "Rich match", Body: "travel trip journey", Page: 1}},
		{Section: extract.Section{Title: "Poor match", Body: "nothing relevant here", Page: 2}},
	}

	scored, err := scorer.ScoreAll(context.Background(), sections)
	require.NoError(t, err)

	a, b := scored[0], scored[1]
	require.GreaterOrEqual(t, a.Lexical, b.Lexical)
	require.GreaterOrEqual(t, a.Semantic, b.Semantic)
	require.GreaterOrEqual(t, a.Combined, b.Combined)
}

func TestScoreAllEmbeddingFailureDegrades(t *testing.T) {
	scorer := newTestScorer(t, &stubEmbedder{fallback: []float32{1, 0}})
	scorer.embedder = &stubEmbedder{err: errors.New("service down")}

	sections := []Scored{
		{Section: extract.Section{Title: "Travel", Body: "a trip", Page: 1}},
	}

	scored, err := scorer.ScoreAll(context.Background(), sections)
	require.NoError(t, err)
	require.Zero(t, scored[0].Semantic)
	require.Greater(t, scored[0].Lexical, 0.0)
}

// miscountEmbedder always returns a single vector regardless of batch size.
type miscountEmbedder struct{}

func (miscountEmbedder) GetEmbeddings(_ context.Context, _ []string) ([][]float32, error) {
	return [][]float32{{1, 0}}, nil
}

func TestScoreAllEmbeddingCountMismatch(t *testing.T) {
	scorer, err := NewScorer(context.Background(), travelSet(), miscountEmbedder{}, config.DefaultTuning(), zap.NewNop())
	require.NoError(t, err)

	sections := []Scored{
		{Section: extract.Section{Title: "Travel", Body: "a trip", Page: 1}},
		{Section: extract.Section{Title: "Notes", Body: "unrelated text", Page: 2}},
	}

	scored, err := scorer.ScoreAll(context.Background(), sections)
	require.NoError(t, err)
	for _, s := range scored {
		require.Zero(t, s.Semantic)
	}
	require.Greater(t, scored[0].Lexical, 0.0)
}

func TestNewScorerQueryEmbedFailure(t *testing.T) {
	_, err := NewScorer(context.Background(), travelSet(), &stubEmbedder{err: errors.New("service down")}, config.DefaultTuning(), zap.NewNop())
	require.Error(t, err)
}

func TestLexicalScoreEmptyKeywordSet(t *testing.T) {
	scorer := newTestScorer(t, &stubEmbedder{fallback: []float32{1, 0}})
	scorer.matcher = nil
	scorer.totalWeight = 0

	require.Zero(t, scorer.lexicalScore("any text at all"))
}
