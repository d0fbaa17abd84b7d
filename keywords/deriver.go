package keywords

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"docrank/config"
)

// Term is a weighted keyword.
type Term struct {
	Text   string
	Weight float64
}

// Set is the keyword set derived once per job and shared read-only across
// all scoring calls.
type Set struct {
	Primary  []Term
	Synonyms []Term
	Summary  []Term
}

// Terms returns all terms, primary first, then summary, then synonyms, so
// that downstream dedup keeps the highest-weighted form.
func (s *Set) Terms() []Term {
	terms := make([]Term, 0, len(s.Primary)+len(s.Summary)+len(s.Synonyms))
	terms = append(terms, s.Primary...)
	terms = append(terms, s.Summary...)
	terms = append(terms, s.Synonyms...)
	return terms
}

// PrimaryQuery joins the primary terms into one query string for semantic
// comparison.
func (s *Set) PrimaryQuery() string {
	texts := make([]string, 0, len(s.Primary))
	for _, t := range s.Primary {
		texts = append(texts, t.Text)
	}
	return strings.Join(texts, " ")
}

// Deriver builds a Set from the job's persona and task plus the per-document
// summaries.
type Deriver struct {
	lemmatizer Lemmatizer
	synonyms   SynonymProvider
	rake       *RAKEExtractor
	tuning     config.Tuning
	logger     *zap.Logger
}

func NewDeriver(lemmatizer Lemmatizer, synonyms SynonymProvider, tuning config.Tuning, logger *zap.Logger) *Deriver {
	return &Deriver{
		lemmatizer: lemmatizer,
		synonyms:   synonyms,
		rake:       NewRAKEExtractor(),
		tuning:     tuning,
		logger:     logger,
	}
}

// Derive is deterministic: every term group comes out sorted, so identical
// inputs produce an identical Set.
func (d *Deriver) Derive(persona, task string, summaries []string) (*Set, error) {
	lemmas, err := d.lemmatizer.Lemmas(task + " " + persona)
	if err != nil {
		return nil, fmt.Errorf("failed to derive keywords: %w", err)
	}

	seen := make(map[string]bool)
	var primary []Term
	for _, lemma := range lemmas {
		if utf8.RuneCountInString(lemma) < d.tuning.MinTermLen || seen[lemma] {
			continue
		}
		seen[lemma] = true
		primary = append(primary, Term{Text: lemma, Weight: 1.0})
	}
	sortTerms(primary)

	var summary []Term
	for _, text := range summaries {
		for _, term := range d.rake.ExtractTerms(text, d.tuning.SummaryTopK) {
			if utf8.RuneCountInString(term) < d.tuning.MinTermLen || seen[term] {
				continue
			}
			seen[term] = true
			summary = append(summary, Term{Text: term, Weight: d.tuning.SummaryWeight})
		}
	}
	sortTerms(summary)

	var synonyms []Term
	for _, p := range primary {
		for _, syn := range d.synonyms.Synonyms(p.Text) {
			syn = strings.ToLower(strings.TrimSpace(syn))
			if utf8.RuneCountInString(syn) < d.tuning.MinTermLen || IsStopWord(syn) || seen[syn] {
				continue
			}
			seen[syn] = true
			synonyms = append(synonyms, Term{Text: syn, Weight: d.tuning.SynonymWeight})
		}
	}
	sortTerms(synonyms)

	set := &Set{Primary: primary, Synonyms: synonyms, Summary: summary}
	d.logger.Info("derived keyword set",
		zap.Int("primary", len(primary)),
		zap.Int("synonyms", len(synonyms)),
		zap.Int("summary", len(summary)))

	if len(primary) == 0 {
		d.logger.Warn("no primary keywords derived", zap.String("persona", persona), zap.String("task", task))
	}
	return set, nil
}

func sortTerms(terms []Term) {
	sort.Slice(terms, func(i, j int) bool {
		return terms[i].Text < terms[j].Text
	})
}
