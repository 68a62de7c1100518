package content

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"catalog-gen/internal/taxonomy"
)

const placeholder = "{topic}"

// Decomposer turns a course title+description into 4-5 content titles
// using a template library. Deterministic: the same inputs always
// produce the same list.
type Decomposer struct {
	lib   *Library
	caser cases.Caser
}

// NewDecomposer returns a decomposer over the given library. The
// library must not be mutated afterwards.
func NewDecomposer(lib *Library) *Decomposer {
	return &Decomposer{
		lib:   lib,
		caser: cases.Title(language.English),
	}
}

// Titles produces the content-title list for a course already
// classified into categoryName. The result has 4 or 5 entries, none
// empty, none duplicated.
func (d *Decomposer) Titles(title, description, categoryName string) []string {
	if lang, ok := d.lib.DetectLanguage(title, description); ok {
		out := make([]string, len(lang.Titles))
		copy(out, lang.Titles)
		return sanitize(out)
	}

	text := taxonomy.NewText(title, description)

	if topic := d.matchTopic(text, categoryName); topic != nil {
		display := topic.Display
		if display == "" {
			display = topic.Name
		}
		tmpl := topic.Titles
		if len(tmpl) == 0 {
			tmpl = d.lib.Generic
		}
		out := expand(tmpl, display)
		out = d.specialize(out, text, topic, display)
		return sanitize(out)
	}

	// No recognizable topic: parametrize the generic list with the
	// normalized title phrase, or drop the Introduction entry when the
	// title yields no usable phrase.
	if phrase := ExtractPhrase(title); phrase != "" {
		return sanitize(expand(d.lib.Generic, phrase))
	}
	return sanitize(expand(d.lib.Generic[1:], ""))
}

// MainTopic reports the topic name a course resolves to, for logging
// and the run summary. Falls back to the extracted title phrase, then
// the category name.
func (d *Decomposer) MainTopic(title, description, categoryName string) string {
	if lang, ok := d.lib.DetectLanguage(title, description); ok {
		return lang.Topic
	}
	text := taxonomy.NewText(title, description)
	if topic := d.matchTopic(text, categoryName); topic != nil {
		return topic.Name
	}
	if phrase := ExtractPhrase(title); phrase != "" {
		return phrase
	}
	return categoryName
}

// Language reports the language-course name a course matches, if any.
func (d *Decomposer) Language(title, description string) (string, bool) {
	if lang, ok := d.lib.DetectLanguage(title, description); ok {
		return lang.Name, true
	}
	return "", false
}

func (d *Decomposer) matchTopic(text taxonomy.Text, categoryName string) *Topic {
	for i := range d.lib.Topics {
		t := &d.lib.Topics[i]
		if t.Category != categoryName {
			continue
		}
		for _, kw := range t.Match {
			if text.Contains(kw) {
				return t
			}
		}
	}
	return nil
}

// specialize replaces leading entries with "Topic: Subtopic" for each
// of the topic's subtopic keywords found in the text, at most four.
func (d *Decomposer) specialize(titles []string, text taxonomy.Text, topic *Topic, display string) []string {
	i := 0
	for _, sub := range topic.Subtopics {
		if i >= 4 || i >= len(titles) {
			break
		}
		if !text.Contains(sub) {
			continue
		}
		titles[i] = display + ": " + d.caser.String(sub)
		i++
	}
	return titles
}

func expand(templates []string, topic string) []string {
	out := make([]string, len(templates))
	for i, t := range templates {
		out[i] = strings.ReplaceAll(t, placeholder, topic)
	}
	return out
}

// sanitize enforces the output invariants: no empty entries, no
// duplicates, between 4 and 5 titles. Short lists are padded from the
// fallback fillers.
func sanitize(titles []string) []string {
	fillers := []string{"Basic Concepts", "Intermediate Topics", "Advanced Topics", "Practical Applications", "Course Review"}

	out := make([]string, 0, 5)
	seen := make(map[string]bool)
	appendTitle := func(t string) {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] || len(out) >= 5 {
			return
		}
		seen[t] = true
		out = append(out, t)
	}
	for _, t := range titles {
		appendTitle(t)
	}
	for _, f := range fillers {
		if len(out) >= 4 {
			break
		}
		appendTitle(f)
	}
	return out
}
