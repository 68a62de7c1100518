package ingest

import (
	"strings"

	"golang.org/x/net/html"
)

// CleanText normalizes a free-text cell: scraped HTML markup is
// reduced to its text content and runs of whitespace collapse to
// single spaces.
func CleanText(s string) string {
	if strings.ContainsRune(s, '<') {
		s = stripHTML(s)
	}
	return strings.Join(strings.Fields(s), " ")
}

// stripHTML extracts the text content of an HTML fragment. On a
// tokenizer error the input is returned as-is; a broken description is
// still better than an empty one.
func stripHTML(s string) string {
	var b strings.Builder
	tz := html.NewTokenizer(strings.NewReader(s))
	for {
		switch tz.Next() {
		case html.ErrorToken:
			out := strings.TrimSpace(b.String())
			if out == "" {
				return s
			}
			return out
		case html.TextToken:
			b.Write(tz.Text())
			b.WriteByte(' ')
		}
	}
}
