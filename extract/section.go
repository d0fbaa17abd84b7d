package extract

// Section is a heading-to-next-heading span detected in one document page.
type Section struct {
	Document string
	Title    string
	Body     string
	Page     int
}

// Line is a single visual row of text with its dominant style.
type Line struct {
	Text     string
	FontSize float64
	Bold     bool
}

// Page is an ordered sequence of lines from one PDF page.
type Page struct {
	Number int
	Lines  []Line
}
