package relevance

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudflare/ahocorasick"
	"go.uber.org/zap"

	"docrank/config"
	"docrank/extract"
	"docrank/keywords"
	"docrank/pkg/embedding"
)

// Scored carries a section candidate with its relevance scores. DocIndex is
// the position of the source document in the job's input order and feeds
// the deterministic tie-break.
type Scored struct {
	extract.Section
	DocIndex int
	Lexical  float64
	Semantic float64
	Combined float64
}

// Scorer combines stemmed lexical keyword matching (dominant weight) with
// embedding similarity (minor weight). The keyword-set matcher and the
// query embedding are built once and shared read-only across calls.
type Scorer struct {
	matcher     *ahocorasick.Matcher
	weights     []float64
	totalWeight float64
	queryVec    []float32
	embedder    embedding.Client
	tuning      config.Tuning
	logger      *zap.Logger
}

func NewScorer(ctx context.Context, set *keywords.Set, embedder embedding.Client, tuning config.Tuning, logger *zap.Logger) (*Scorer, error) {
	var patterns []string
	var weights []float64
	var total float64
	seen := make(map[string]bool)

	// Primary terms come first in Terms(), so a stem shared by a primary
	// term and a synonym keeps the primary weight.
	for _, term := range set.Terms() {
		stem := keywords.Stem(term.Text)
		if stem == "" || seen[stem] {
			continue
		}
		seen[stem] = true
		patterns = append(patterns, stem)
		weights = append(weights, term.Weight)
		total += term.Weight
	}

	queryVecs, err := embedder.GetEmbeddings(ctx, []string{set.PrimaryQuery()})
	if err != nil {
		return nil, fmt.Errorf("failed to embed keyword query: %w", err)
	}

	var matcher *ahocorasick.Matcher
	if len(patterns) > 0 {
		matcher = ahocorasick.NewStringMatcher(patterns)
	}

	return &Scorer{
		matcher:     matcher,
		weights:     weights,
		totalWeight: total,
		queryVec:    queryVecs[0],
		embedder:    embedder,
		tuning:      tuning,
		logger:      logger,
	}, nil
}

// ScoreAll scores every candidate. Section embeddings go out as one batch
// call to keep per-document model calls bounded; if the batch fails the
// semantic component degrades to zero and lexical evidence decides alone.
func (s *Scorer) ScoreAll(ctx context.Context, sections []Scored) ([]Scored, error) {
	if len(sections) == 0 {
		return sections, nil
	}

	texts := make([]string, len(sections))
	for i, sec := range sections {
		texts[i] = truncateText(sec.Title+" "+sec.Body, s.tuning.MaxEmbedTokens)
	}

	vecs, err := s.embedder.GetEmbeddings(ctx, texts)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Warn("section embedding failed, semantic score disabled", zap.Error(err))
		vecs = nil
	}
	if vecs != nil && len(vecs) != len(texts) {
		s.logger.Warn("embedding count mismatch, semantic score disabled",
			zap.Int("expected", len(texts)),
			zap.Int("got", len(vecs)))
		vecs = nil
	}

	for i := range sections {
		sections[i].Lexical = s.lexicalScore(sections[i].Title + " " + sections[i].Body)
		if vecs != nil {
			sections[i].Semantic = normalizeCosine(embedding.CosineSimilarity(s.queryVec, vecs[i]))
		}
		sections[i].Combined = clamp01(
			s.tuning.LexicalWeight*sections[i].Lexical + s.tuning.SemanticWeight*sections[i].Semantic)
	}

	return sections, nil
}

// lexicalScore matches keyword stems against the stemmed section text. A
// keyword counts when its stem equals a content token's stem or is a
// substring of one, and the matched weights are normalized by the total
// keyword weight.
func (s *Scorer) lexicalScore(text string) float64 {
	if s.matcher == nil || s.totalWeight == 0 {
		return 0
	}

	stemmed := strings.Join(keywords.StemTokens(text), " ")
	hits := s.matcher.MatchThreadSafe([]byte(stemmed))
	if len(hits) == 0 {
		return 0
	}

	matched := make(map[int]struct{})
	for _, idx := range hits {
		matched[idx] = struct{}{}
	}

	var sum float64
	for idx := range matched {
		sum += s.weights[idx]
	}
	return clamp01(sum / s.totalWeight)
}

// normalizeCosine maps cosine similarity from [-1,1] into [0,1].
func normalizeCosine(cos float32) float64 {
	return clamp01((float64(cos) + 1) / 2)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// truncateText approximates token length by character count.
// Safe upper bound: ~4 chars ≈ 1 token (English).
func truncateText(text string, maxTokens int) string {
	maxChars := maxTokens * 4
	if len(text) <= maxChars {
		return text
	}
	return text[:maxChars]
}
