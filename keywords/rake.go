package keywords

import (
	"regexp"
	"sort"
	"strings"
)

type termScore struct {
	Term  string
	Score float64
}

// RAKEExtractor mines the highest-signal words from short summary text
// using phrase co-occurrence scoring.
type RAKEExtractor struct {
	punctuation   *regexp.Regexp
	wordSeparator *regexp.Regexp
}

func NewRAKEExtractor() *RAKEExtractor {
	return &RAKEExtractor{
		punctuation:   regexp.MustCompile(`[^\w\s]`),
		wordSeparator: regexp.MustCompile(`\s+`),
	}
}

func (r *RAKEExtractor) extractCandidatePhrases(text string) []string {
	text = strings.ToLower(text)
	text = r.punctuation.ReplaceAllString(text, " ")
	text = r.wordSeparator.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	var phrases []string
	var currentPhrase []string

	for _, word := range strings.Fields(text) {
		if IsStopWord(word) {
			if len(currentPhrase) > 0 {
				phrases = append(phrases, strings.Join(currentPhrase, " "))
				currentPhrase = nil
			}
			continue
		}
		if len(word) >= 2 {
			currentPhrase = append(currentPhrase, word)
		}
	}

	if len(currentPhrase) > 0 {
		phrases = append(phrases, strings.Join(currentPhrase, " "))
	}

	return phrases
}

func (r *RAKEExtractor) calculateWordScores(phrases []string) map[string]float64 {
	wordFreq := make(map[string]int)
	wordDegree := make(map[string]int)

	for _, phrase := range phrases {
		words := strings.Fields(phrase)
		phraseLength := len(words)

		for _, word := range words {
			wordFreq[word]++
			wordDegree[word] += phraseLength - 1
		}
	}

	wordScores := make(map[string]float64)
	for word, freq := range wordFreq {
		degree := wordDegree[word]
		wordScores[word] = float64(degree+freq) / float64(freq)
	}

	return wordScores
}

// ExtractTerms returns the topK words of the text ranked by RAKE word
// score. Ties are broken alphabetically so the result is deterministic.
func (r *RAKEExtractor) ExtractTerms(text string, topK int) []string {
	phrases := r.extractCandidatePhrases(text)
	if len(phrases) == 0 {
		return nil
	}

	wordScores := r.calculateWordScores(phrases)

	scored := make([]termScore, 0, len(wordScores))
	for word, score := range wordScores {
		scored = append(scored, termScore{Term: word, Score: score})
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Term < scored[j].Term
	})

	limit := topK
	if len(scored) < limit {
		limit = len(scored)
	}

	terms := make([]string, 0, limit)
	for _, ts := range scored[:limit] {
		terms = append(terms, ts.Term)
	}
	return terms
}
