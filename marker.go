package citeneeded

// MarkerTag is the element name of the citation-needed annotation.
const MarkerTag = "sup"

// MarkerClass is the exact class attribute value of the citation-needed
// annotation. Matching compares the whole attribute string, so reordered or
// additional classes do not match.
const MarkerClass = "noprint Inline-Template Template-Fact"

// Marker is a located citation-needed annotation resolved against its
// enclosing paragraph and section heading.
type Marker struct {
	// Paragraph is the trimmed text of the nearest enclosing p element.
	Paragraph string
	// InParagraph reports whether an enclosing paragraph exists.
	InParagraph bool

	// Heading is the trimmed text of the marker's section heading.
	Heading string
	// InSection reports whether a section heading was resolved.
	InSection bool
}

// HeadingMode selects how a marker's section heading is resolved.
type HeadingMode string

const (
	// HeadingAncestor uses the nearest h1-h6 element enclosing the marker.
	HeadingAncestor HeadingMode = "ancestor"

	// HeadingPreceding uses the last h1-h6 element that starts before the
	// marker in document order.
	HeadingPreceding HeadingMode = "preceding"
)

// Scanner locates citation-needed markers in an HTML document.
type Scanner interface {
	// Scan parses html and returns every marker in document order.
	Scan(html string) ([]Marker, error)
}
