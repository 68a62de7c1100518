package domain

// SourceCourse is one row of the input export. Fields mirror the source
// columns after header mapping; text fields are empty strings when the
// cell is missing, never absent.
type SourceCourse struct {
	Title       string // "Name"
	University  string // "University"
	Difficulty  string // "Difficulty Level"
	Link        string // "Link"
	About       string // "About" (short description)
	Description string // "Course Description"
}

// CatalogEntry is the canonical representation of one generated catalog
// row. It is constructed once per source row and never mutated after;
// the export package is the only consumer.
type CatalogEntry struct {
	ID            string // time-sortable ULID
	LessonTitle   string
	ContentTitles []string // 4-5 synthesized sub-lesson titles
	SkillName     string
	Level         string
	CategoryID    string // "cat001".."cat008"
	CategoryName  string
	Subcategories []string // 1-2 names from the category's own list

	CoverImageID   string
	PreviewVideoID string

	CreatedAt string // RFC3339, +07:00
	UpdatedAt string // RFC3339, +07:00
	DeletedAt string // empty unless Status == "deleted"
	Status    string // "active", "draft", "archived", "deleted"

	ShortDescription string
	Description      string
	University       string
	Link             string
}
