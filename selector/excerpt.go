package selector

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"

	"docrank/keywords"
)

// ExcerptBuilder derives a bounded-length refined excerpt from a section
// body, preferring sentences that contain keyword matches.
type ExcerptBuilder struct {
	sentenceTokenizer *sentences.DefaultSentenceTokenizer
	maxLen            int
}

func NewExcerptBuilder(maxLen int) (*ExcerptBuilder, error) {
	sentenceTokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create sentence tokenizer: %w", err)
	}

	return &ExcerptBuilder{
		sentenceTokenizer: sentenceTokenizer,
		maxLen:            maxLen,
	}, nil
}

// Build assembles the excerpt: keyword-bearing sentences first in their
// original order, then leading context sentences, until the character
// budget is spent.
func (b *ExcerptBuilder) Build(body string, keywordStems []string) string {
	body = strings.TrimSpace(body)
	if body == "" {
		return ""
	}

	sentenceObjs := b.sentenceTokenizer.Tokenize(body)
	if len(sentenceObjs) == 0 {
		return truncate(body, b.maxLen)
	}

	var matched, rest []string
	for _, sentenceObj := range sentenceObjs {
		sentence := strings.TrimSpace(sentenceObj.Text)
		if sentence == "" {
			continue
		}
		if containsKeyword(sentence, keywordStems) {
			matched = append(matched, sentence)
		} else {
			rest = append(rest, sentence)
		}
	}

	var out strings.Builder
	appendWithin := func(sentence string) bool {
		if out.Len() > 0 && out.Len()+1+len(sentence) > b.maxLen {
			return false
		}
		if out.Len() > 0 {
			out.WriteString(" ")
		}
		out.WriteString(sentence)
		return true
	}

	for _, sentence := range matched {
		if !appendWithin(sentence) {
			break
		}
	}
	for _, sentence := range rest {
		if !appendWithin(sentence) {
			break
		}
	}

	if out.Len() == 0 {
		return truncate(body, b.maxLen)
	}
	return truncate(out.String(), b.maxLen)
}

func containsKeyword(sentence string, keywordStems []string) bool {
	stemmed := " " + strings.Join(keywords.StemTokens(sentence), " ") + " "
	for _, stem := range keywordStems {
		if strings.Contains(stemmed, stem) {
			return true
		}
	}
	return false
}

func truncate(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	cut := text[:maxLen]
	if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
		cut = cut[:idx]
	}
	return cut
}
