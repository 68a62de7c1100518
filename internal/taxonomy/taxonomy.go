// Package taxonomy assigns a category and subcategories to a course from
// fixed keyword tables. Classification is a pure function of the input
// text and the table; the same text always yields the same labels.
package taxonomy

// Subcategory is one entry of a category's second-level vocabulary.
type Subcategory struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Category is one first-level label. Keywords drive classification,
// Skills supply the skillName column (first match wins, first entry is
// the default). The first subcategory in the list is the fallback when
// no subcategory keyword matches.
type Category struct {
	ID            string        `yaml:"id"`
	Name          string        `yaml:"name"`
	Keywords      []string      `yaml:"keywords"`
	Skills        []string      `yaml:"skills"`
	Subcategories []Subcategory `yaml:"subcategories"`
}

// Table is the whole two-level vocabulary. Declaration order is
// significant: it is the tie-break key everywhere, and the first
// category is the fallback when nothing matches.
type Table struct {
	Categories []Category `yaml:"categories"`
}

// Default returns the built-in table. Callers must treat it as
// immutable.
func Default() *Table {
	return &Table{Categories: []Category{
		{
			ID:   "cat001",
			Name: "Computer Science",
			Keywords: []string{
				"programming", "coding", "algorithms", "data structures",
				"software engineering", "computer science", "python", "java",
				"javascript", "web development", "artificial intelligence", "ai",
				"machine learning", "deep learning", "cybersecurity", "software",
			},
			Skills: []string{
				"Programming", "Algorithms", "Data Structures", "Software Engineering",
				"Computer Science", "Python", "JavaScript", "Web Development",
			},
			Subcategories: []Subcategory{
				{Name: "Introduction", Keywords: []string{"intro", "introduction", "beginner", "basic", "getting started"}},
				{Name: "Programming Fundamentals", Keywords: []string{"programming", "coding", "variables", "loops", "functions", "basics"}},
				{Name: "Algorithms & Data Structures", Keywords: []string{"algorithm", "data structure", "efficiency", "optimization", "sorting"}},
				{Name: "Web Development", Keywords: []string{"web", "html", "css", "javascript", "frontend", "backend"}},
				{Name: "Software Engineering", Keywords: []string{"software engineering", "development lifecycle", "testing", "debugging", "version control"}},
				{Name: "Computer Architecture", Keywords: []string{"computer architecture", "hardware", "systems", "low-level", "assembly"}},
			},
		},
		{
			ID:   "cat002",
			Name: "Business & Management",
			Keywords: []string{
				"leadership", "project management", "marketing", "finance",
				"management", "business", "strategy", "organizational behavior",
				"entrepreneurship", "accounting",
			},
			Skills: []string{
				"Leadership", "Project Management", "Marketing", "Finance",
				"Management", "Business", "Strategy", "Organizational Behavior",
			},
			Subcategories: []Subcategory{
				{Name: "Introduction", Keywords: []string{"intro", "introduction", "beginner", "basic", "getting started"}},
				{Name: "Leadership", Keywords: []string{"leadership", "leading", "managing teams", "influence", "motivation"}},
				{Name: "Project Management", Keywords: []string{"project management", "planning", "execution", "milestones", "timeline"}},
				{Name: "Marketing", Keywords: []string{"marketing", "promotion", "branding", "customer acquisition", "market research"}},
				{Name: "Finance", Keywords: []string{"finance", "financial", "budgeting", "investment", "accounting"}},
				{Name: "Strategy", Keywords: []string{"strategy", "strategic planning", "competitive advantage", "business model"}},
			},
		},
		{
			ID:   "cat003",
			Name: "Data Analysis & Statistics",
			Keywords: []string{
				"data analysis", "statistics", "data visualization", "analytics",
				"data science", "big data", "statistical",
			},
			Skills: []string{
				"Data Analysis", "Statistics", "Machine Learning", "Data Visualization",
				"Analytics", "Data Science", "R", "Big Data",
			},
			Subcategories: []Subcategory{
				{Name: "Introduction", Keywords: []string{"intro", "introduction", "beginner", "basic", "getting started"}},
				{Name: "Statistical Analysis", Keywords: []string{"statistics", "statistical", "probability", "distribution", "hypothesis testing"}},
				{Name: "Machine Learning", Keywords: []string{"machine learning", "prediction", "classification", "regression", "clustering"}},
				{Name: "Data Visualization", Keywords: []string{"visualization", "charts", "graphs", "dashboard", "presentation"}},
				{Name: "Data Processing", Keywords: []string{"data processing", "cleaning", "transformation", "wrangling", "preprocessing"}},
				{Name: "Big Data", Keywords: []string{"big data", "large scale", "distributed computing", "hadoop", "spark"}},
			},
		},
		{
			ID:   "cat004",
			Name: "Education & Teacher Training",
			Keywords: []string{
				"teaching", "curriculum design", "educational technology", "assessment",
				"education", "learning", "training", "instructional design", "pedagogy",
			},
			Skills: []string{
				"Teaching", "Curriculum Design", "Educational Technology", "Assessment",
				"Education", "Learning", "Training", "Instructional Design",
			},
			Subcategories: []Subcategory{
				{Name: "Introduction", Keywords: []string{"intro", "introduction", "beginner", "basic", "getting started"}},
				{Name: "Teaching Methods", Keywords: []string{"teaching", "instruction", "pedagogy", "lesson planning", "classroom"}},
				{Name: "Educational Technology", Keywords: []string{"educational technology", "edtech", "digital learning", "online education"}},
				{Name: "Assessment", Keywords: []string{"assessment", "evaluation", "testing", "feedback", "grading"}},
				{Name: "Curriculum Design", Keywords: []string{"curriculum", "syllabus", "course design", "learning objectives"}},
				{Name: "Learning Theory", Keywords: []string{"learning theory", "educational psychology", "cognition", "knowledge acquisition"}},
			},
		},
		{
			ID:   "cat005",
			Name: "Health & Safety",
			Keywords: []string{
				"public health", "mental health", "safety", "wellness", "health",
				"psychology", "medicine", "healthcare", "nutrition", "first aid",
			},
			Skills: []string{
				"Public Health", "Mental Health", "Safety", "Wellness",
				"Health", "Psychology", "Medicine", "Healthcare",
			},
			Subcategories: []Subcategory{
				{Name: "Introduction", Keywords: []string{"intro", "introduction", "beginner", "basic", "getting started"}},
				{Name: "Public Health", Keywords: []string{"public health", "population health", "epidemiology", "health policy"}},
				{Name: "Mental Health", Keywords: []string{"mental health", "psychology", "wellbeing", "stress", "mindfulness"}},
				{Name: "Safety", Keywords: []string{"safety", "risk assessment", "hazard prevention", "workplace safety"}},
				{Name: "Healthcare", Keywords: []string{"healthcare", "medicine", "clinical", "patient care", "health systems"}},
				{Name: "Wellness", Keywords: []string{"wellness", "health promotion", "lifestyle", "prevention", "self-care"}},
			},
		},
		{
			ID:   "cat006",
			Name: "Communication",
			Keywords: []string{
				"public speaking", "writing", "interpersonal communication",
				"digital communication", "communication", "presentation",
				"negotiation", "media", "journalism",
			},
			Skills: []string{
				"Public Speaking", "Writing", "Interpersonal Communication",
				"Digital Communication", "Communication", "Presentation",
				"Negotiation", "Media",
			},
			Subcategories: []Subcategory{
				{Name: "Introduction", Keywords: []string{"intro", "introduction", "beginner", "basic", "getting started"}},
				{Name: "Public Speaking", Keywords: []string{"public speaking", "presentation", "speaking", "audience", "delivery"}},
				{Name: "Writing", Keywords: []string{"writing", "composition", "grammar", "style", "content creation"}},
				{Name: "Interpersonal Communication", Keywords: []string{"interpersonal", "conversation", "listening", "empathy", "relationships"}},
				{Name: "Digital Communication", Keywords: []string{"digital communication", "social media", "online", "virtual", "remote"}},
				{Name: "Media Studies", Keywords: []string{"media", "journalism", "content creation", "broadcasting", "publishing"}},
			},
		},
		{
			ID:   "cat007",
			Name: "Humanities",
			Keywords: []string{
				"history", "philosophy", "literature", "art", "culture", "society",
				"ethics", "critical thinking", "justice", "law", "music",
			},
			Skills: []string{
				"History", "Philosophy", "Literature", "Art",
				"Culture", "Society", "Ethics", "Critical Thinking",
			},
			Subcategories: []Subcategory{
				{Name: "Introduction", Keywords: []string{"intro", "introduction", "beginner", "basic", "getting started"}},
				{Name: "History", Keywords: []string{"history", "historical", "past", "civilization", "chronology"}},
				{Name: "Philosophy", Keywords: []string{"philosophy", "philosophical", "ethics", "logic", "metaphysics"}},
				{Name: "Literature", Keywords: []string{"literature", "literary", "fiction", "poetry", "drama"}},
				{Name: "Art", Keywords: []string{"art", "artistic", "aesthetics", "creative expression", "visual arts"}},
				{Name: "Cultural Studies", Keywords: []string{"culture", "cultural", "society", "anthropology", "social studies"}},
			},
		},
		{
			ID:   "cat008",
			Name: "Science",
			Keywords: []string{
				"biology", "chemistry", "physics", "environmental science",
				"research", "mathematics", "engineering", "scientific method",
				"astronomy",
			},
			Skills: []string{
				"Biology", "Chemistry", "Physics", "Environmental Science",
				"Research", "Mathematics", "Engineering", "Scientific Method",
			},
			Subcategories: []Subcategory{
				{Name: "Introduction", Keywords: []string{"intro", "introduction", "beginner", "basic", "getting started"}},
				{Name: "Biology", Keywords: []string{"biology", "biological", "organism", "ecosystem", "genetics"}},
				{Name: "Chemistry", Keywords: []string{"chemistry", "chemical", "molecular", "reaction", "compounds"}},
				{Name: "Physics", Keywords: []string{"physics", "physical", "energy", "motion", "forces"}},
				{Name: "Environmental Science", Keywords: []string{"environmental", "climate", "sustainability", "ecology", "conservation"}},
				{Name: "Scientific Method", Keywords: []string{"scientific method", "research", "experimentation", "hypothesis", "analysis"}},
			},
		},
	}}
}

// Lookup returns the category with the given name, or nil.
func (t *Table) Lookup(name string) *Category {
	for i := range t.Categories {
		if t.Categories[i].Name == name {
			return &t.Categories[i]
		}
	}
	return nil
}

// Fallback is the category used when no keyword matches: the first one
// in declaration order.
func (t *Table) Fallback() *Category {
	return &t.Categories[0]
}
