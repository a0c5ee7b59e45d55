package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/citeneeded"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Scanner implements citeneeded.Scanner at compile time.
var _ citeneeded.Scanner = (*Scanner)(nil)

const headingSelector = "h1, h2, h3, h4, h5, h6"

// Scanner locates citation-needed markers and resolves the paragraph and
// section heading around each one.
type Scanner struct {
	class    string
	headings citeneeded.HeadingMode
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithMarkerClass sets the class attribute value a marker must carry.
// The value is compared exactly. Defaults to citeneeded.MarkerClass.
func WithMarkerClass(class string) Option {
	return func(s *Scanner) {
		s.class = class
	}
}

// WithHeadingMode sets how section headings are resolved.
// Defaults to citeneeded.HeadingAncestor.
func WithHeadingMode(mode citeneeded.HeadingMode) Option {
	return func(s *Scanner) {
		s.headings = mode
	}
}

// NewScanner creates a new Scanner.
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{
		class:    citeneeded.MarkerClass,
		headings: citeneeded.HeadingAncestor,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan parses the HTML and returns one Marker per matching element,
// in document order.
func (s *Scanner) Scan(htmlContent string) ([]citeneeded.Marker, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, citeneeded.Errorf(citeneeded.EINVALID, "failed to parse HTML: %v", err)
	}

	var preceding map[*html.Node]*html.Node
	if s.headings == citeneeded.HeadingPreceding {
		preceding = s.precedingHeadings(doc.Get(0))
	}

	var markers []citeneeded.Marker
	s.locate(doc).Each(func(_ int, sel *goquery.Selection) {
		var m citeneeded.Marker

		if p := sel.ParentsFiltered("p").First(); p.Length() > 0 {
			m.Paragraph = strings.TrimSpace(p.Text())
			m.InParagraph = true
		}

		var heading *goquery.Selection
		if s.headings == citeneeded.HeadingPreceding {
			if n := preceding[sel.Get(0)]; n != nil {
				heading = doc.FindNodes(n)
			}
		} else {
			heading = sel.ParentsFiltered(headingSelector).First()
		}
		if heading != nil && heading.Length() > 0 {
			m.Heading = strings.TrimSpace(heading.Text())
			m.InSection = true
		}

		markers = append(markers, m)
	})

	return markers, nil
}

// locate returns the marker elements of doc in document order.
func (s *Scanner) locate(doc *goquery.Document) *goquery.Selection {
	return doc.Find(citeneeded.MarkerTag).FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return s.isMarker(sel.Get(0))
	})
}

// isMarker reports whether n is a marker element. The class attribute must
// equal the configured class exactly.
func (s *Scanner) isMarker(n *html.Node) bool {
	if n.Type != html.ElementNode || n.Data != citeneeded.MarkerTag {
		return false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == "class" {
			return a.Val == s.class
		}
	}
	return false
}

// precedingHeadings walks the tree in document order and maps each marker
// node to the last heading that started before it. Markers appearing before
// any heading are absent from the map.
func (s *Scanner) precedingHeadings(root *html.Node) map[*html.Node]*html.Node {
	result := make(map[*html.Node]*html.Node)
	var current *html.Node

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if isHeading(n) {
				current = n
			} else if current != nil && s.isMarker(n) {
				result[n] = current
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return result
}

func isHeading(n *html.Node) bool {
	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	}
	return false
}
