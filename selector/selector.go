package selector

import (
	"sort"
	"strings"

	"docrank/config"
	"docrank/keywords"
	"docrank/relevance"
)

// Ranked is a selected section with its dense importance rank and refined
// excerpt.
type Ranked struct {
	relevance.Scored
	Rank    int
	Refined string
}

// Selector orders scored sections into the final top-N selection.
type Selector struct {
	builder *ExcerptBuilder
	tuning  config.Tuning
}

func New(tuning config.Tuning) (*Selector, error) {
	builder, err := NewExcerptBuilder(tuning.RefinedTextLen)
	if err != nil {
		return nil, err
	}
	return &Selector{
		builder: builder,
		tuning:  tuning,
	}, nil
}

// Rank sorts all scored sections into a deterministic total order, drops
// near-identical headings, truncates to the configured top-N and attaches a
// refined excerpt per selection. Sections with lexical evidence always win
// a slot over sections carried by semantic similarity alone.
func (s *Selector) Rank(sections []relevance.Scored, set *keywords.Set) []Ranked {
	ordered := make([]relevance.Scored, len(sections))
	copy(ordered, sections)

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Combined != ordered[j].Combined {
			return ordered[i].Combined > ordered[j].Combined
		}
		if ordered[i].Lexical != ordered[j].Lexical {
			return ordered[i].Lexical > ordered[j].Lexical
		}
		if ordered[i].DocIndex != ordered[j].DocIndex {
			return ordered[i].DocIndex < ordered[j].DocIndex
		}
		return ordered[i].Page < ordered[j].Page
	})

	stems := keywordStems(set)

	var ranked []Ranked
	seenTitles := make(map[string]bool)
	take := func(eligible func(relevance.Scored) bool) {
		for _, sec := range ordered {
			if len(ranked) == s.tuning.TopSections {
				return
			}
			if !eligible(sec) {
				continue
			}
			title := normalizeTitle(sec.Title)
			if seenTitles[title] {
				continue
			}
			seenTitles[title] = true

			ranked = append(ranked, Ranked{
				Scored:  sec,
				Rank:    len(ranked) + 1,
				Refined: s.builder.Build(sec.Body, stems),
			})
		}
	}

	// Sections without a single keyword match only backfill slots left
	// after every keyword-matched section is placed.
	take(func(sec relevance.Scored) bool { return sec.Lexical > 0 })
	take(func(sec relevance.Scored) bool { return sec.Lexical == 0 })

	return ranked
}

// normalizeTitle folds case and whitespace so repeated boilerplate headings
// across documents dedupe to one entry.
func normalizeTitle(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}

func keywordStems(set *keywords.Set) []string {
	terms := set.Terms()
	stems := make([]string, 0, len(terms))
	seen := make(map[string]bool)
	for _, term := range terms {
		stem := keywords.Stem(term.Text)
		if stem == "" || seen[stem] {
			continue
		}
		seen[stem] = true
		stems = append(stems, stem)
	}
	return stems
}
