package content

import (
	"regexp"
	"strings"
)

var (
	parenthetical = regexp.MustCompile(`\s*\([^)]*\)`)
	levelMarker   = regexp.MustCompile(`(?i)[\s:,-]*(level\s*\d+|part\s*\d+)$`)
	romanNumeral  = regexp.MustCompile(`\s+(I{1,3}|IV|V|VI{0,3}|IX|X)$`)
	trailingNum   = regexp.MustCompile(`[\s:,-]*\d+$`)
	introPrefix   = regexp.MustCompile(`(?i)^(an?\s+)?introduction\s+to\s+`)
)

// ExtractPhrase normalizes a course title into a short topic phrase:
// parentheticals, trailing level markers ("Level 1", "II", bare
// numbers) and surrounding colons are stripped, and an "Introduction
// to X" title reduces to X. Returns "" when nothing usable remains.
func ExtractPhrase(title string) string {
	s := strings.TrimSpace(title)
	s = parenthetical.ReplaceAllString(s, "")
	s = introPrefix.ReplaceAllString(s, "")

	for {
		trimmed := levelMarker.ReplaceAllString(s, "")
		trimmed = romanNumeral.ReplaceAllString(trimmed, "")
		trimmed = trailingNum.ReplaceAllString(trimmed, "")
		trimmed = strings.Trim(trimmed, ": \t")
		if trimmed == s {
			break
		}
		s = trimmed
	}

	if !containsLetter(s) {
		return ""
	}
	return s
}

func containsLetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r > 127 {
			return true
		}
	}
	return false
}

// DetectLanguage reports the language-course entry matching the text,
// if any. Matching is plain substring on the lowercased text so that
// native-script keywords work regardless of word segmentation.
func (l *Library) DetectLanguage(title, description string) (*Language, bool) {
	combined := strings.ToLower(title + " " + description)
	for i := range l.Languages {
		for _, kw := range l.Languages[i].Match {
			if kw != "" && strings.Contains(combined, strings.ToLower(kw)) {
				return &l.Languages[i], true
			}
		}
	}
	return nil, false
}
