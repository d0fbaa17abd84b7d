package embedding

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

const termFreqDim = 256

// TermFreqVectorizer is a deterministic bag-of-words embedder used when no
// embedding service is configured. Tokens are hashed into a fixed-size
// vector and the result is L2-normalized, so cosine similarity over it
// behaves like token-overlap similarity. Batch runs stay fully offline.
type TermFreqVectorizer struct{}

func NewTermFreqVectorizer() *TermFreqVectorizer {
	return &TermFreqVectorizer{}
}

func (v *TermFreqVectorizer) GetEmbeddings(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		out[i] = vectorize(text)
	}
	return out, nil
}

func vectorize(text string) []float32 {
	vec := make([]float32, termFreqDim)
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, tok := range tokens {
		if len(tok) < 2 {
			continue
		}
		h := fnv.New32a()
		h.Write([]byte(tok))
		vec[h.Sum32()%termFreqDim]++
	}

	var norm float64
	for _, x := range vec {
		norm += float64(x) * float64(x)
	}
	if norm == 0 {
		return vec
	}
	scale := float32(1 / math.Sqrt(norm))
	for i := range vec {
		vec[i] *= scale
	}
	return vec
}
