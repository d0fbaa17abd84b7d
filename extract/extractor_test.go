package extract

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"docrank/config"
)

func testExtractor() *Extractor {
	return NewExtractor(config.DefaultTuning(), zap.NewNop())
}

func TestIsHeading(t *testing.T) {
	e := testExtractor()
	mode := 10.0

	testCases := []struct {
		name     string
		line     Line
		expected bool
	}{
		{"LargerFont", Line{Text: "Introduction", FontSize: 18}, true},
		{"FontAtRatio", Line{Text: "Overview", FontSize: 11.5}, true},
		{"BoldShortLine", Line{Text: "Packing list", FontSize: 10, Bold: true}, true},
		{"AllCaps", Line{Text: "THINGS TO DO", FontSize: 10}, true},
		{"TitleCase", Line{Text: "Things to Do", FontSize: 10}, true},
		{"BodySentence", Line{Text: "the coast has many small villages worth a detour.", FontSize: 10}, false},
		{"SentencePunctuation", Line{Text: "Pack Light For The Trip.", FontSize: 10}, false},
		{"Empty", Line{Text: "", FontSize: 18}, false},
		{"TooLong", Line{
			Text:     "This Heading Candidate Is Far Too Long To Be A Plausible Section Title Under The Configured Limit Of Eighty Runes",
			FontSize: 18,
		}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := e.isHeading(tc.line, mode); got != tc.expected {
				t.Errorf("isHeading(%q) = %v, want %v", tc.line.Text, got, tc.expected)
			}
		})
	}
}

func TestModeFontSize(t *testing.T) {
	lines := []Line{
		{Text: "Big Title", FontSize: 18},
		{Text: "a long paragraph of ordinary body text that dominates the page by length", FontSize: 10},
		{Text: "another long paragraph of ordinary body text on the same page", FontSize: 10},
	}
	if got := modeFontSize(lines); got != 10 {
		t.Errorf("modeFontSize = %v, want 10", got)
	}
}

func TestSectionsSpansHeadings(t *testing.T) {
	e := testExtractor()
	pages := []Page{
		{
			Number: 1,
			Lines: []Line{
				{Text: "Things to Do", FontSize: 18},
				{Text: "visit the old town and walk along the harbour.", FontSize: 10},
				{Text: "the local market opens early in the morning.", FontSize: 10},
				{Text: "Legal Notice", FontSize: 18},
				{Text: "all rights reserved by the publisher.", FontSize: 10},
			},
		},
	}

	sections := e.Sections("guide.pdf", pages)
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d: %+v", len(sections), sections)
	}

	if sections[0].Title != "Things to Do" {
		t.Errorf("first title = %q", sections[0].Title)
	}
	if sections[0].Body != "visit the old town and walk along the harbour. the local market opens early in the morning." {
		t.Errorf("unexpected first body %q", sections[0].Body)
	}
	if sections[1].Title != "Legal Notice" {
		t.Errorf("second title = %q", sections[1].Title)
	}
}

func TestSectionsPlaceholderForHeadingless(t *testing.T) {
	e := testExtractor()
	pages := []Page{
		{
			Number: 3,
			Lines: []Line{
				{Text: "just ordinary text with no heading at all on this page.", FontSize: 10},
				{Text: "it continues with more ordinary text below.", FontSize: 10},
			},
		},
	}

	sections := e.Sections("guide.pdf", pages)
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].Title != "Page 3 content" {
		t.Errorf("placeholder title = %q", sections[0].Title)
	}
	if sections[0].Page != 3 {
		t.Errorf("page = %d, want 3", sections[0].Page)
	}
}

func TestSectionsDropTrailingHeadingWithoutBody(t *testing.T) {
	e := testExtractor()
	pages := []Page{
		{
			Number: 1,
			Lines: []Line{
				{Text: "Things to Do", FontSize: 18},
				{Text: "visit the old town and walk along the harbour.", FontSize: 10},
				{Text: "See Also", FontSize: 18},
			},
		},
		{
			Number: 2,
			Lines: []Line{
				{Text: "Heading Only Page", FontSize: 18},
			},
		},
	}

	sections := e.Sections("guide.pdf", pages)
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d: %+v", len(sections), sections)
	}
	if sections[0].Title != "Things to Do" {
		t.Errorf("title = %q", sections[0].Title)
	}
	for _, sec := range sections {
		if sec.Body == "" {
			t.Errorf("section %q emitted with empty body", sec.Title)
		}
	}
}

func TestSectionsInvariants(t *testing.T) {
	e := testExtractor()
	pages := []Page{
		{Number: 1, Lines: []Line{
			{Text: "Overview", FontSize: 18},
			{Text: "some body text goes here to fill the page with content.", FontSize: 10},
		}},
		{Number: 2, Lines: []Line{
			{Text: "plain body page without any detected heading lines at all.", FontSize: 10},
		}},
	}

	for _, sec := range e.Sections("doc.pdf", pages) {
		if sec.Title == "" {
			t.Error("section with empty title")
		}
		if sec.Page < 1 {
			t.Errorf("section with page %d", sec.Page)
		}
	}
}

func TestReadPagesMissingFile(t *testing.T) {
	_, err := ReadPages("/nonexistent/dir/nothing.pdf")
	if !errors.Is(err, ErrFileMissing) {
		t.Fatalf("expected ErrFileMissing, got %v", err)
	}
}
