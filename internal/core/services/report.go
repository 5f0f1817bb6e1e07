package services

import "strings"

// Normalise collapses every run of two or more line breaks in text into a
// single line break. No other character is changed.
func Normalise(text string) string {
	if !strings.Contains(text, "\n\n") {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	prevNewline := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\n' {
			if prevNewline {
				continue
			}
			prevNewline = true
		} else {
			prevNewline = false
		}
		b.WriteByte(c)
	}

	return b.String()
}

// ReportBuilder folds page texts into a report, in the order they are added.
// Each page is followed by exactly one line break.
type ReportBuilder struct {
	b     strings.Builder
	pages int
}

// AddPage appends one page.
func (r *ReportBuilder) AddPage(text string) {
	r.b.WriteString(text)
	r.b.WriteByte('\n')
	r.pages++
}

// Pages returns the number of pages added.
func (r *ReportBuilder) Pages() int {
	return r.pages
}

// String returns the assembled report.
func (r *ReportBuilder) String() string {
	return r.b.String()
}

// Assemble builds a report from already-normalised page texts.
func Assemble(pages ...string) string {
	var r ReportBuilder
	for _, p := range pages {
		r.AddPage(p)
	}
	return r.String()
}
