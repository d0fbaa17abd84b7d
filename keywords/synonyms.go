package keywords

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// SynonymProvider looks up alternative surface forms for a term. It is an
// injected capability so tests can substitute a deterministic stub.
type SynonymProvider interface {
	Synonyms(term string) []string
}

// Dictionary is a static synonym table keyed by lowercase term.
type Dictionary struct {
	entries map[string][]string
}

// NewDictionary returns the built-in synonym table.
func NewDictionary() *Dictionary {
	return &Dictionary{entries: defaultSynonyms()}
}

// LoadDictionary reads a YAML file of term -> synonym list and merges it
// over the built-in table.
func LoadDictionary(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read synonym file: %w", err)
	}

	var loaded map[string][]string
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse synonym file: %w", err)
	}

	entries := defaultSynonyms()
	for term, syns := range loaded {
		entries[strings.ToLower(term)] = syns
	}
	return &Dictionary{entries: entries}, nil
}

func (d *Dictionary) Synonyms(term string) []string {
	return d.entries[strings.ToLower(term)]
}

func defaultSynonyms() map[string][]string {
	return map[string][]string{
		"plan":       {"organize", "arrange", "prepare", "schedule"},
		"trip":       {"journey", "tour", "travel", "excursion"},
		"travel":     {"trip", "journey", "tour"},
		"guide":      {"handbook", "manual", "reference"},
		"visit":      {"tour", "explore"},
		"city":       {"town", "metropolis"},
		"hotel":      {"accommodation", "lodging", "stay"},
		"restaurant": {"dining", "eatery", "cuisine"},
		"activity":   {"attraction", "experience", "entertainment"},
		"food":       {"cuisine", "dish", "meal"},
		"cook":       {"prepare", "recipe"},
		"recipe":     {"dish", "preparation"},
		"menu":       {"dishes", "courses"},
		"form":       {"document", "template"},
		"manage":     {"organize", "administer", "handle"},
		"create":     {"build", "generate", "produce"},
		"edit":       {"modify", "revise", "update"},
		"sign":       {"signature", "approve"},
		"learn":      {"study", "understand"},
		"research":   {"study", "analysis", "investigation"},
		"report":     {"summary", "analysis", "overview"},
		"student":    {"learner", "pupil"},
		"teacher":    {"instructor", "educator"},
		"budget":     {"cost", "expense", "price"},
		"group":      {"team", "party"},
		"event":      {"gathering", "occasion"},
	}
}
