package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/citeneeded"
)

// Ensure LoggingScanner implements citeneeded.Scanner.
var _ citeneeded.Scanner = (*LoggingScanner)(nil)

// LoggingScanner wraps a Scanner with logging. Markers that the report will
// leave out are logged as warnings.
type LoggingScanner struct {
	next   citeneeded.Scanner
	logger *slog.Logger
}

// NewLoggingScanner creates a new LoggingScanner.
func NewLoggingScanner(next citeneeded.Scanner, logger *slog.Logger) *LoggingScanner {
	return &LoggingScanner{next: next, logger: logger}
}

// Scan delegates to the wrapped scanner and logs the result.
func (s *LoggingScanner) Scan(html string) (markers []citeneeded.Marker, err error) {
	defer func(begin time.Time) {
		s.logger.Info("scan",
			"bytes", len(html),
			"markers", len(markers),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	markers, err = s.next.Scan(html)
	if err != nil {
		return nil, err
	}

	for i, m := range markers {
		switch {
		case !m.InParagraph:
			s.logger.Warn("marker has no enclosing paragraph",
				"index", i,
				"heading", m.Heading,
			)
		case !m.InSection:
			s.logger.Warn("marker has no section heading",
				"index", i,
				"paragraph", truncate(m.Paragraph, 80),
			)
		}
	}

	return markers, nil
}

// truncate shortens s to at most n runes, appending an ellipsis when cut.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
