package taxonomy

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
)

// Score is a keyword-match tally. Phrases counts multi-word keyword
// hits, Words counts single-word hits. Comparison is lexicographic, so
// one phrase hit beats any number of word hits: specific terms dominate
// generic ones regardless of frequency.
type Score struct {
	Phrases int
	Words   int
}

// Beats reports whether s strictly outranks other.
func (s Score) Beats(other Score) bool {
	if s.Phrases != other.Phrases {
		return s.Phrases > other.Phrases
	}
	return s.Words > other.Words
}

// IsZero reports whether nothing matched.
func (s Score) IsZero() bool {
	return s.Phrases == 0 && s.Words == 0
}

// Text is the normalized form of a title+description pair, prepared
// once and scored against many keyword sets.
type Text struct {
	joined string
	tokens map[string]bool
}

// NewText lowercases and segments the combined course text. Single-word
// keywords are matched against whole word tokens (so "ai" does not hit
// "train"); multi-word keywords are matched as substrings of the joined
// text.
func NewText(title, description string) Text {
	joined := strings.ToLower(strings.TrimSpace(title + " " + description))
	tokens := make(map[string]bool)
	iter := words.FromString(joined)
	for iter.Next() {
		tok := strings.TrimSpace(iter.Value())
		if tok != "" {
			tokens[tok] = true
		}
	}
	return Text{joined: joined, tokens: tokens}
}

// Contains reports whether a single keyword matches the text, using
// whole-word matching for single words and substring matching for
// phrases. Each keyword counts at most once.
func (t Text) Contains(keyword string) bool {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return false
	}
	if strings.ContainsAny(kw, " -") {
		return strings.Contains(t.joined, kw)
	}
	return t.tokens[kw]
}

// ScoreKeywords tallies a keyword set against the text.
func (t Text) ScoreKeywords(keywords []string) Score {
	var s Score
	for _, kw := range keywords {
		if !t.Contains(kw) {
			continue
		}
		if strings.ContainsAny(kw, " -") {
			s.Phrases++
		} else {
			s.Words++
		}
	}
	return s
}
