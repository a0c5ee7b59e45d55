package mock

import "github.com/fwojciec/citeneeded"

var _ citeneeded.Scanner = (*Scanner)(nil)

// Scanner is a mock implementation of citeneeded.Scanner.
type Scanner struct {
	ScanFn func(html string) ([]citeneeded.Marker, error)
}

func (s *Scanner) Scan(html string) ([]citeneeded.Marker, error) {
	return s.ScanFn(html)
}
