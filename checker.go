package citeneeded

import "context"

// Checker fetches a page and reports its citation-needed passages.
type Checker struct {
	Fetcher Fetcher
	Scanner Scanner
}

// Check fetches url once, scans it, and builds the report.
func (c *Checker) Check(ctx context.Context, url string) (*Report, error) {
	if url == "" {
		return nil, Errorf(EINVALID, "url required")
	}

	html, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	markers, err := c.Scanner.Scan(html)
	if err != nil {
		return nil, err
	}

	return NewReport(markers), nil
}

// Count returns the number of citation-needed markers on the page.
func (c *Checker) Count(ctx context.Context, url string) (int, error) {
	r, err := c.Check(ctx, url)
	if err != nil {
		return 0, err
	}
	return r.Count, nil
}

// Report returns the blank-line separated passages that need citations.
func (c *Checker) Report(ctx context.Context, url string) (string, error) {
	r, err := c.Check(ctx, url)
	if err != nil {
		return "", err
	}
	return r.Text(), nil
}

// BySection returns the passages that need citations keyed by heading.
func (c *Checker) BySection(ctx context.Context, url string) (map[string][]string, error) {
	r, err := c.Check(ctx, url)
	if err != nil {
		return nil, err
	}
	return r.BySection(), nil
}
