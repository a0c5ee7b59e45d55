package citeneeded

import "strings"

// Section groups the passages found under one heading.
type Section struct {
	Heading  string
	Passages []string
}

// Report aggregates the citation-needed markers found on a page.
type Report struct {
	// Count is the number of markers located, resolvable or not.
	Count int

	// Passages holds the paragraph text of every marker that has one,
	// in document order. A paragraph holding several markers repeats.
	Passages []string

	// Sections groups passages by heading, ordered by first occurrence.
	// Markers lacking a paragraph or a heading are left out.
	Sections []Section

	// Unparented counts markers with no enclosing paragraph.
	Unparented int

	// Unsectioned counts markers with a paragraph but no heading.
	Unsectioned int
}

// NewReport builds a Report from markers in document order.
func NewReport(markers []Marker) *Report {
	r := &Report{Count: len(markers)}
	index := make(map[string]int)

	for _, m := range markers {
		if !m.InParagraph {
			r.Unparented++
			continue
		}
		r.Passages = append(r.Passages, m.Paragraph)

		if !m.InSection {
			r.Unsectioned++
			continue
		}
		i, ok := index[m.Heading]
		if !ok {
			i = len(r.Sections)
			index[m.Heading] = i
			r.Sections = append(r.Sections, Section{Heading: m.Heading})
		}
		r.Sections[i].Passages = append(r.Sections[i].Passages, m.Paragraph)
	}

	return r
}

// Text returns the passages joined into a single report, each followed by
// a blank line. Returns an empty string when there are no passages.
func (r *Report) Text() string {
	var b strings.Builder
	for _, p := range r.Passages {
		b.WriteString(p)
		b.WriteString("\n\n")
	}
	return b.String()
}

// BySection returns the passages keyed by section heading.
// The map is never nil.
func (r *Report) BySection() map[string][]string {
	m := make(map[string][]string, len(r.Sections))
	for _, s := range r.Sections {
		m[s.Heading] = s.Passages
	}
	return m
}

// Section returns the passages recorded under heading, or nil.
func (r *Report) Section(heading string) []string {
	for _, s := range r.Sections {
		if s.Heading == heading {
			return s.Passages
		}
	}
	return nil
}
