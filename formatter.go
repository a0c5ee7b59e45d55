package citeneeded

import (
	"fmt"
	"io"
)

// WriteReport writes r as plain text: the count line, the passage report,
// then one block per section listing its heading and passages.
func WriteReport(w io.Writer, r *Report) error {
	if _, err := fmt.Fprintf(w, "Number of citations needed: %d\n", r.Count); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Citations report:\n%s\n", r.Text()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Citations by section:"); err != nil {
		return err
	}

	for _, s := range r.Sections {
		if _, err := fmt.Fprintf(w, "Section: %s\n", s.Heading); err != nil {
			return err
		}
		for _, p := range s.Passages {
			if _, err := fmt.Fprintln(w, p); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}
