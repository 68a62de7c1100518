// Package content synthesizes the 4-5 sub-lesson titles for a course
// from its title, description and category.
package content

// Topic is a recognizable course subject within one category. Match
// keywords select it (first match in declaration order wins), Titles
// are its 5 templates with a {topic} placeholder; an empty Titles falls
// back to the library's Generic list. Display overrides the name
// substituted into {topic} (e.g. "AI").
type Topic struct {
	Name      string   `yaml:"name"`
	Display   string   `yaml:"display"`
	Category  string   `yaml:"category"`
	Match     []string `yaml:"match"`
	Titles    []string `yaml:"titles"`
	Subtopics []string `yaml:"subtopics"`
}

// Language is a language-course entry. Its Titles are literal, no
// placeholder substitution.
type Language struct {
	Name   string   `yaml:"name"`
	Topic  string   `yaml:"topic"` // reported main topic, e.g. "Mandarin Chinese"
	Match  []string `yaml:"match"`
	Titles []string `yaml:"titles"`
}

// Library is the full template table. Languages are checked before
// topics; Generic serves topics without templates and courses where no
// topic is recognized.
type Library struct {
	Topics    []Topic    `yaml:"topics"`
	Languages []Language `yaml:"languages"`
	Generic   []string   `yaml:"generic"`
}

// Default returns the built-in library. Callers must treat it as
// immutable.
func Default() *Library {
	return &Library{
		Generic: []string{
			"Introduction to {topic}",
			"Basic Concepts",
			"Intermediate Topics",
			"Advanced Topics",
			"Practical Applications",
		},
		Languages: []Language{
			{
				Name:  "chinese",
				Topic: "Mandarin Chinese",
				Match: []string{"chinese", "mandarin", "中文", "汉语"},
				Titles: []string{
					"Introduction to Mandarin Chinese",
					"Pinyin and Characters",
					"Grammar and Sentence Structure",
					"Reading and Writing",
					"Listening and Speaking",
				},
			},
			{
				Name:  "spanish",
				Topic: "Spanish",
				Match: []string{"spanish", "español"},
				Titles: []string{
					"Introduction to Spanish",
					"Spanish Pronunciation",
					"Basic Spanish Grammar",
					"Vocabulary Building",
					"Conversation Practice",
				},
			},
			{
				Name:  "french",
				Topic: "French",
				Match: []string{"french", "français"},
				Titles: []string{
					"Introduction to French",
					"French Pronunciation",
					"Basic French Grammar",
					"Vocabulary Building",
					"Conversation Practice",
				},
			},
			{
				Name:  "german",
				Topic: "German",
				Match: []string{"german", "deutsch"},
				Titles: []string{
					"Introduction to German",
					"German Pronunciation",
					"Basic German Grammar",
					"Vocabulary Building",
					"Conversation Practice",
				},
			},
			{
				Name:  "japanese",
				Topic: "Japanese",
				Match: []string{"japanese", "日本語"},
				Titles: []string{
					"Introduction to Japanese",
					"Hiragana and Katakana",
					"Basic Japanese Grammar",
					"Kanji and Vocabulary Building",
					"Conversation Practice",
				},
			},
			{
				Name:  "arabic",
				Topic: "Arabic",
				Match: []string{"arabic", "العربية"},
				Titles: []string{
					"Introduction to Arabic",
					"Arabic Alphabet and Pronunciation",
					"Basic Arabic Grammar",
					"Vocabulary Building",
					"Conversation Practice",
				},
			},
		},
		Topics: []Topic{
			// Computer Science
			{
				Name: "Python", Category: "Computer Science",
				Match: []string{"python"},
				Titles: []string{
					"Introduction to {topic}",
					"Variables and Operators",
					"Data Types",
					"Control Structures",
					"Functions",
				},
				Subtopics: []string{"variables", "data types", "control flow", "functions", "object-oriented programming", "modules", "debugging"},
			},
			{
				Name: "Programming", Category: "Computer Science",
				Match: []string{"programming", "coding"},
				Titles: []string{
					"Introduction to {topic}",
					"Variables and Data Types",
					"Control Structures",
					"Functions and Methods",
					"Error Handling and Debugging",
				},
				Subtopics: []string{"variables", "data types", "control structures", "functions", "error handling", "testing", "debugging"},
			},
			{
				Name: "JavaScript", Category: "Computer Science",
				Match: []string{"javascript"},
			},
			{
				Name: "Java", Category: "Computer Science",
				Match: []string{"java"},
			},
			{
				Name: "Web Development", Category: "Computer Science",
				Match: []string{"web development", "web"},
				Titles: []string{
					"HTML and CSS Fundamentals",
					"JavaScript Essentials",
					"Responsive Web Design",
					"Frontend Frameworks",
					"Backend Development",
				},
				Subtopics: []string{"html", "css", "javascript", "responsive design", "backend development", "frontend frameworks"},
			},
			{
				Name: "Artificial Intelligence", Display: "AI", Category: "Computer Science",
				Match: []string{"artificial intelligence", "ai"},
				Titles: []string{
					"Introduction to {topic}",
					"Machine Learning",
					"Deep Learning",
					"Natural Language Processing",
					"Computer Vision",
				},
				Subtopics: []string{"machine learning", "neural networks", "deep learning", "natural language processing", "computer vision", "ethics"},
			},
			{
				Name: "Data Science", Category: "Computer Science",
				Match: []string{"data science"},
				Titles: []string{
					"Introduction to {topic}",
					"Data Collection and Cleaning",
					"Statistical Analysis",
					"Data Visualization",
					"Machine Learning Applications",
				},
				Subtopics: []string{"data collection", "data cleaning", "data analysis", "data visualization", "machine learning"},
			},
			{
				Name: "Algorithms", Category: "Computer Science",
				Match: []string{"algorithms", "data structures"},
			},
			{
				Name: "Cybersecurity", Category: "Computer Science",
				Match: []string{"cybersecurity", "security"},
			},

			// Business & Management
			{
				Name: "Marketing", Category: "Business & Management",
				Match: []string{"marketing"},
				Titles: []string{
					"{topic} Fundamentals",
					"Market Research and Analysis",
					"Consumer Behavior",
					"Digital Marketing Strategies",
					"Marketing Campaign Planning",
				},
				Subtopics: []string{"market research", "consumer behavior", "digital marketing", "content strategy", "branding"},
			},
			{
				Name: "Finance", Category: "Business & Management",
				Match: []string{"finance", "financial", "accounting"},
				Titles: []string{
					"Introduction to {topic}",
					"Financial Planning and Analysis",
					"Investment Strategies",
					"Risk Management",
					"Portfolio Management",
				},
				Subtopics: []string{"financial planning", "investment", "risk management", "financial analysis", "budgeting"},
			},
			{
				Name: "Leadership", Category: "Business & Management",
				Match: []string{"leadership", "management"},
				Titles: []string{
					"{topic} Fundamentals",
					"Team Building and Management",
					"Effective Communication",
					"Decision Making and Problem Solving",
					"Strategic Leadership",
				},
				Subtopics: []string{"team building", "communication", "decision making", "conflict resolution", "motivation"},
			},
			{
				Name: "Entrepreneurship", Category: "Business & Management",
				Match: []string{"entrepreneurship", "startup"},
			},

			// Data Analysis & Statistics
			{
				Name: "Data Analysis", Category: "Data Analysis & Statistics",
				Match: []string{"data analysis", "analytics"},
				Titles: []string{
					"Introduction to {topic}",
					"Data Collection Methods",
					"Statistical Analysis Techniques",
					"Data Visualization",
					"Data Interpretation and Reporting",
				},
				Subtopics: []string{"data collection", "statistical analysis", "data visualization", "data interpretation", "reporting"},
			},
			{
				Name: "Statistics", Category: "Data Analysis & Statistics",
				Match: []string{"statistics", "statistical"},
				Titles: []string{
					"Introduction to {topic}",
					"Probability Theory",
					"Statistical Inference",
					"Hypothesis Testing",
					"Regression Analysis",
				},
				Subtopics: []string{"probability theory", "statistical inference", "hypothesis testing", "regression analysis", "bayesian statistics"},
			},

			// Education & Teacher Training
			{
				Name: "Teaching", Category: "Education & Teacher Training",
				Match: []string{"teaching", "education", "pedagogy"},
				Titles: []string{
					"Introduction to {topic}",
					"Lesson Planning and Design",
					"Classroom Management Techniques",
					"Assessment and Evaluation",
					"Educational Technology",
				},
				Subtopics: []string{"lesson planning", "classroom management", "assessment techniques", "educational psychology", "inclusive teaching"},
			},

			// Health & Safety
			{
				Name: "Health", Category: "Health & Safety",
				Match: []string{"health", "wellness", "nutrition"},
				Titles: []string{
					"Introduction to Health and Wellness",
					"Nutrition and Diet",
					"Exercise and Physical Activity",
					"Mental Health and Stress Management",
					"Disease Prevention",
				},
				Subtopics: []string{"nutrition", "exercise", "mental wellness", "disease prevention", "healthcare systems"},
			},

			// Communication
			{
				Name: "Communication", Category: "Communication",
				Match: []string{"communication", "public speaking", "writing"},
				Titles: []string{
					"{topic} Fundamentals",
					"Verbal and Nonverbal Communication",
					"Interpersonal Skills",
					"Public Speaking",
					"Digital Communication",
				},
				Subtopics: []string{"verbal communication", "nonverbal communication", "interpersonal skills", "public speaking", "digital communication"},
			},

			// Humanities
			{
				Name: "Philosophy", Category: "Humanities",
				Match: []string{"philosophy"},
				Titles: []string{
					"Introduction to {topic}",
					"Ethics and Moral Philosophy",
					"Logic and Critical Thinking",
					"Metaphysics and Epistemology",
					"Philosophy of Mind",
				},
				Subtopics: []string{"metaphysics", "epistemology", "ethics", "logic", "political philosophy"},
			},
			{
				Name: "History", Category: "Humanities",
				Match: []string{"history"},
				Titles: []string{
					"Introduction to {topic}",
					"Historical Methods and Research",
					"World History Overview",
					"Cultural History",
					"Historical Analysis and Interpretation",
				},
				Subtopics: []string{"historical methods", "ancient history", "medieval history", "modern history", "cultural history"},
			},
			{
				Name: "Art", Category: "Humanities",
				Match: []string{"art", "music"},
				Titles: []string{
					"Introduction to {topic}",
					"Art History and Movements",
					"Drawing Techniques",
					"Color Theory",
					"Art Appreciation",
				},
				Subtopics: []string{"art history", "drawing techniques", "color theory", "art movements", "art appreciation"},
			},
			{
				Name: "Justice", Category: "Humanities",
				Match: []string{"justice", "law"},
				Titles: []string{
					"Introduction to {topic}",
					"Legal System",
					"Criminal Law",
					"Civil Law",
					"Ethics and {topic}",
				},
				Subtopics: []string{"legal systems", "criminal law", "civil law", "international law", "ethics in justice"},
			},

			// Science
			{
				Name: "Biology", Category: "Science",
				Match: []string{"biology"},
				Titles: []string{
					"Introduction to {topic}",
					"Cell Biology",
					"Genetics and Evolution",
					"Ecology and Ecosystems",
					"Human Biology",
				},
				Subtopics: []string{"cell biology", "genetics", "evolution", "ecology", "human anatomy"},
			},
			{
				Name: "Chemistry", Category: "Science",
				Match: []string{"chemistry"},
				Titles: []string{
					"Introduction to {topic}",
					"Atomic Structure and Periodic Table",
					"Chemical Bonds and Reactions",
					"Organic Chemistry",
					"Biochemistry",
				},
				Subtopics: []string{"atomic structure", "chemical bonds", "chemical reactions", "organic chemistry", "biochemistry"},
			},
			{
				Name: "Physics", Category: "Science",
				Match: []string{"physics"},
				Titles: []string{
					"Introduction to {topic}",
					"Mechanics",
					"Thermodynamics",
					"Electromagnetism",
					"Quantum Physics",
				},
				Subtopics: []string{"mechanics", "thermodynamics", "electromagnetism", "quantum physics", "relativity"},
			},
		},
	}
}
