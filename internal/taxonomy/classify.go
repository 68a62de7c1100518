package taxonomy

import "sort"

// Classifier scores course text against a Table. The zero value is not
// usable; construct with New.
type Classifier struct {
	table *Table
}

// New returns a classifier over the given table. The table must not be
// mutated afterwards.
func New(table *Table) *Classifier {
	return &Classifier{table: table}
}

// Classify picks the best-scoring category for the combined course text
// and the top 1-2 subcategories within it. Ties go to the earlier table
// entry; if nothing matches at all, the first category and its first
// subcategory are returned.
func (c *Classifier) Classify(title, description string) (*Category, []string) {
	text := NewText(title, description)

	best := c.table.Fallback()
	bestScore := Score{}
	for i := range c.table.Categories {
		cat := &c.table.Categories[i]
		if s := text.ScoreKeywords(cat.Keywords); s.Beats(bestScore) {
			best, bestScore = cat, s
		}
	}

	return best, c.subcategories(text, best)
}

// subcategories returns the top 1-2 nonzero-scoring subcategory names,
// ordered best first, or the category's first subcategory when nothing
// matches.
func (c *Classifier) subcategories(text Text, cat *Category) []string {
	type scored struct {
		name  string
		score Score
	}
	var hits []scored
	for _, sub := range cat.Subcategories {
		s := text.ScoreKeywords(sub.Keywords)
		if s.IsZero() {
			continue
		}
		hits = append(hits, scored{name: sub.Name, score: s})
	}
	if len(hits) == 0 {
		return []string{cat.Subcategories[0].Name}
	}

	// Beats is strict, so equal scores keep table order.
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score.Beats(hits[j].score)
	})

	names := []string{hits[0].name}
	if len(hits) > 1 {
		names = append(names, hits[1].name)
	}
	return names
}

// SkillFor picks the skillName for a classified course: the first of
// the category's skills found in the description, else the category's
// first skill.
func (c *Classifier) SkillFor(cat *Category, description string) string {
	text := NewText("", description)
	for _, skill := range cat.Skills {
		if text.Contains(skill) {
			return skill
		}
	}
	return cat.Skills[0]
}
