package extract

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"docrank/config"
)

// Extractor turns a document's page stream into Section candidates using
// font-size and layout heuristics to separate headings from body text.
type Extractor struct {
	tuning config.Tuning
	logger *zap.Logger
}

func NewExtractor(tuning config.Tuning, logger *zap.Logger) *Extractor {
	return &Extractor{
		tuning: tuning,
		logger: logger,
	}
}

// ExtractFile reads a PDF from disk and returns its section candidates.
func (e *Extractor) ExtractFile(path, document string) ([]Section, error) {
	pages, err := ReadPages(path)
	if err != nil {
		return nil, err
	}
	return e.Sections(document, pages), nil
}

// Sections is a pure function of the page stream: the body-text mode font
// size is computed per page and passed down instead of being tracked as
// mutable state.
func (e *Extractor) Sections(document string, pages []Page) []Section {
	var sections []Section
	for _, page := range pages {
		mode := modeFontSize(page.Lines)
		sections = append(sections, e.pageSections(document, page, mode)...)
	}
	e.logger.Debug("extracted sections",
		zap.String("document", document),
		zap.Int("pages", len(pages)),
		zap.Int("sections", len(sections)))
	return sections
}

func (e *Extractor) pageSections(document string, page Page, mode float64) []Section {
	placeholder := fmt.Sprintf("Page %d content", page.Number)
	current := Section{
		Document: document,
		Title:    placeholder,
		Page:     page.Number,
	}

	var sections []Section
	var body strings.Builder

	// Sections without body text are dropped; a trailing heading with
	// nothing under it has no content to rank or excerpt.
	flush := func() {
		current.Body = strings.TrimSpace(body.String())
		if current.Body != "" {
			sections = append(sections, current)
		}
		body.Reset()
	}

	for _, line := range page.Lines {
		if e.isHeading(line, mode) {
			if strings.TrimSpace(body.String()) != "" {
				flush()
				current = Section{
					Document: document,
					Title:    line.Text,
					Page:     page.Number,
				}
			} else {
				current.Title = line.Text
			}
			continue
		}
		body.WriteString(line.Text)
		body.WriteString(" ")
	}
	flush()

	return sections
}

// isHeading applies the heading policy: a line whose font size exceeds the
// page body mode by the configured ratio, or a short line with layout cues
// (bold, ALL CAPS, title case).
func (e *Extractor) isHeading(line Line, mode float64) bool {
	text := strings.TrimSpace(line.Text)
	if text == "" || utf8.RuneCountInString(text) > e.tuning.MaxHeadingRunes {
		return false
	}

	if mode > 0 && line.FontSize >= mode*e.tuning.HeadingFontRatio {
		return true
	}

	// Cue-based detection only applies to lines that don't read like
	// running sentences.
	if strings.HasSuffix(text, ".") || strings.HasSuffix(text, ",") || strings.HasSuffix(text, ";") {
		return false
	}
	if line.Bold {
		return true
	}
	if isAllCaps(text) {
		return true
	}
	return isTitleCase(text)
}

func isAllCaps(text string) bool {
	hasLetter := false
	for _, r := range text {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func isTitleCase(text string) bool {
	words := strings.Fields(text)
	if len(words) == 0 || len(words) > 8 {
		return false
	}
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		if unicode.IsLetter(r) && !unicode.IsUpper(r) && !smallWord(w) {
			return false
		}
	}
	r, _ := utf8.DecodeRuneInString(words[0])
	return unicode.IsUpper(r)
}

// smallWord reports connective words allowed in lowercase inside a
// title-case heading ("Things to Do").
func smallWord(w string) bool {
	switch strings.ToLower(w) {
	case "a", "an", "and", "at", "by", "for", "in", "of", "on", "or", "the", "to", "with":
		return true
	}
	return false
}

// modeFontSize returns the most common font size across the page's lines,
// weighted by text length, as the body-text reference.
func modeFontSize(lines []Line) float64 {
	counts := make(map[float64]int)
	for _, line := range lines {
		counts[line.FontSize] += len(line.Text)
	}

	var mode float64
	best := 0
	for size, n := range counts {
		if n > best || (n == best && size < mode) {
			mode = size
			best = n
		}
	}
	return mode
}
