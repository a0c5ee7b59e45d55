package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/citeneeded"
	main "github.com/fwojciec/citeneeded/cmd/citeneeded"
	"github.com/fwojciec/citeneeded/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<!DOCTYPE html>
<html>
<body>
<h1 id="firstHeading">History of Mexico</h1>
<p>The lead paragraph.<sup class="noprint Inline-Template Template-Fact">[<i>citation needed</i>]</sup></p>
<div class="mw-heading mw-heading2"><h2 id="Colonial_era">Colonial era</h2></div>
<p>A colonial claim.<sup class="noprint Inline-Template Template-Fact">[<i>citation needed</i>]</sup></p>
<p>A sourced claim.<sup class="reference">[1]</sup></p>
</body>
</html>`

func newStubFetcher(html string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(context.Context, string) (string, error) {
			return html, nil
		},
		CloseFn: func() error { return nil },
	}
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "citeneeded")
	assert.Contains(t, stdout.String(), "--headings")
}

func TestMain_Run_DefaultsToHistoryOfMexico(t *testing.T) {
	t.Parallel()

	var fetched string
	m := main.NewMain()
	m.Fetcher = &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			fetched = url
			return "<html></html>", nil
		},
		CloseFn: func() error { return nil },
	}
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, main.DefaultURL, fetched)
	assert.Contains(t, stdout.String(), "Number of citations needed: 0")
}

func TestMain_Run_WritesReport(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.Fetcher = newStubFetcher(articleHTML)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"https://en.wikipedia.org/wiki/History_of_Mexico"}, &stdout, &stderr)

	require.NoError(t, err)
	output := stdout.String()
	assert.Contains(t, output, "Number of citations needed: 2\n")
	assert.Contains(t, output, "The lead paragraph.[citation needed]\n\n")
	assert.Contains(t, output, "A colonial claim.[citation needed]\n\n")
	assert.NotContains(t, output, "A sourced claim.")
	// Headings are siblings of paragraphs, so the default lookup finds none.
	assert.NotContains(t, output, "Section:")
	assert.Empty(t, stderr.String())
}

func TestMain_Run_PrecedingHeadings(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.Fetcher = newStubFetcher(articleHTML)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--headings=preceding", "https://en.wikipedia.org/wiki/History_of_Mexico"}, &stdout, &stderr)

	require.NoError(t, err)
	output := stdout.String()
	assert.Contains(t, output, "Section: History of Mexico\nThe lead paragraph.[citation needed]\n\n")
	assert.Contains(t, output, "Section: Colonial era\nA colonial claim.[citation needed]\n\n")
}

func TestMain_Run_RejectsUnknownHeadingMode(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.Fetcher = newStubFetcher(articleHTML)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--headings=nearest"}, &stdout, &stderr)

	require.Error(t, err)
}

func TestMain_Run_FileAndRenderAreExclusive(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--file=page.html", "--render"}, &stdout, &stderr)

	require.Error(t, err)
}

func TestMain_Run_ReadsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "History_of_Mexico.html")
	require.NoError(t, os.WriteFile(path, []byte(articleHTML), 0644))

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--file", path}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Number of citations needed: 2")
}

func TestMain_Run_FetchesOverHTTP(t *testing.T) {
	t.Parallel()

	userAgent := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent <- r.UserAgent()
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer server.Close()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{server.URL + "/wiki/History_of_Mexico"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, main.DefaultUserAgent, <-userAgent)
	assert.Contains(t, stdout.String(), "Number of citations needed: 2")
}

func TestMain_Run_ReportsHTTPStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{server.URL}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, citeneeded.ESTATUS, citeneeded.ErrorCode(err))
	assert.Contains(t, stderr.String(), "error: HTTP 403")
	assert.Empty(t, stdout.String())
}

func TestMain_Run_VerboseLogsDroppedMarkers(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.Fetcher = newStubFetcher(`<ul><li>Listed.<sup class="noprint Inline-Template Template-Fact">[x]</sup></li></ul>`)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--verbose", "https://example.com"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Number of citations needed: 1")
	assert.Contains(t, stderr.String(), "marker has no enclosing paragraph")
	assert.Contains(t, stderr.String(), "msg=fetch")
}

func TestMain_Run_CustomClass(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.Fetcher = newStubFetcher(`<p>Vague.<sup class="noprint Inline-Template">[clarification needed]</sup></p>`)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--class", "noprint Inline-Template", "https://example.com"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Number of citations needed: 1")
	assert.Contains(t, stdout.String(), "Vague.[clarification needed]")
}
