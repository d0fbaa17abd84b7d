package extract

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	ErrFileMissing = errors.New("document file missing")
	ErrUnreadable  = errors.New("document unreadable")
)

// ReadPages opens a PDF with github.com/ledongthuc/pdf and flattens its
// styled text runs into per-page lines. The reader panics on some malformed
// files, so the whole read is guarded.
func ReadPages(path string) (pages []Page, err error) {
	if _, statErr := os.Stat(path); statErr != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileMissing, path)
	}

	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("%w: %s: %v", ErrUnreadable, path, r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	defer f.Close()

	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		p := reader.Page(pageNum)
		if p.V.IsNull() {
			continue
		}
		rows, rowErr := p.GetTextByRow()
		if rowErr != nil {
			continue
		}
		sort.Slice(rows, func(i, j int) bool {
			return rows[i].Position > rows[j].Position
		})

		page := Page{Number: pageNum}
		for _, row := range rows {
			line := rowToLine(row)
			if line.Text == "" {
				continue
			}
			page.Lines = append(page.Lines, line)
		}
		if len(page.Lines) > 0 {
			pages = append(pages, page)
		}
	}

	return pages, nil
}

func rowToLine(row *pdf.Row) Line {
	var sb strings.Builder
	sizeChars := make(map[float64]int)
	boldChars := 0
	totalChars := 0

	for _, run := range row.Content {
		sb.WriteString(run.S)
		n := len(strings.TrimSpace(run.S))
		if n == 0 {
			continue
		}
		sizeChars[run.FontSize] += n
		totalChars += n
		if strings.Contains(run.Font, "Bold") {
			boldChars += n
		}
	}

	text := strings.Join(strings.Fields(sb.String()), " ")

	// Dominant font size by character coverage; ties resolved toward the
	// smaller size so body text wins over stray large runs.
	var size float64
	best := 0
	for s, n := range sizeChars {
		if n > best || (n == best && s < size) {
			size = s
			best = n
		}
	}

	return Line{
		Text:     text,
		FontSize: size,
		Bold:     totalChars > 0 && boldChars*2 > totalChars,
	}
}
