package questionnaires

import "github.com/ZanzyTHEbar/career-compass/internal/assessment"

// Big Five personality traits
const (
	Openness          assessment.CategoryID = "openness"
	Conscientiousness assessment.CategoryID = "conscientiousness"
	Extraversion      assessment.CategoryID = "extraversion"
	Agreeableness     assessment.CategoryID = "agreeableness"
	Neuroticism       assessment.CategoryID = "neuroticism"
)

const LogicalReasoning assessment.CategoryID = "logical_reasoning"

const (
	VisionID = "vision"

	// Sub-profile, index and selection ids of the vision result
	VisionInterests       = "riasec"
	VisionAptitude        = "aptitude"
	VisionPersonality     = "personality"
	VisionCareerInterests = "career_interests"
	VisionWorkStyle       = "work_style"
)

// Recommended study streams
const (
	StreamScience    = "Science & Technology"
	StreamCommerce   = "Commerce"
	StreamHumanities = "Humanities"
	StreamArts       = "Creative Arts"
)

func multi(id, prompt string, options ...string) assessment.Question {
	return assessment.Question{ID: id, Prompt: prompt, Modality: assessment.ModalityMultiChoice, Options: options}
}

func single(id, prompt string, options ...string) assessment.Question {
	return assessment.Question{ID: id, Prompt: prompt, Modality: assessment.ModalitySingleChoice, Options: options}
}

// quiz is a knowledge item: the correct option scores full marks, the
// others nothing.
func quiz(id, prompt, correct string, options ...string) assessment.Question {
	opts := make([]option, len(options))
	for i, o := range options {
		opts[i] = option{text: o}
		if o == correct {
			opts[i].value = assessment.DefaultMaxValue
		}
	}
	return choice(id, prompt, assessment.ModalitySingleChoice, opts...)
}

func trait(highDesc string, highRecs []string, lowDesc string, lowRecs []string) assessment.TieredNarrative {
	return assessment.HighLow(
		assessment.Narrative{Description: highDesc, Recommendations: highRecs},
		assessment.Narrative{Description: lowDesc, Recommendations: lowRecs},
	)
}

func interest(desc string, titles ...string) assessment.TieredNarrative {
	return assessment.Uniform(assessment.Narrative{Description: desc, Careers: careers(titles...)})
}

// Vision is the thirty item Career Vision composite: a Big Five personality
// profile with interest and aptitude sub-profiles, a stream decision table and
// echoed preferences.
func Vision() assessment.Questionnaire {
	bank := assessment.NewBank([]assessment.Question{
		likert("cv1", "I enjoy exploring new ideas or subjects."),
		likert("cv2", "I like learning about new cultures or traditions."),
		likert("cv3", "I make sure to complete my homework/assignments on time."),
		likert("cv4", "I am well-organized and keep my study materials/books in order."),
		likert("cv5", "I enjoy participating in group discussions in class."),
		likert("cv6", "I like being the centre of attention at social gatherings."),
		likert("cv7", "I often help my classmates with their studies."),
		likert("cv8", "I get along well with most of my classmates and teachers."),
		likert("cv9", "I often feel anxious before exams."),
		likert("cv10", "I get upset easily when things don't go as planned or as expected."),
		likert("cv11", "I enjoy working on science/non-science projects or experiments."),
		likert("cv12", "I enjoy solving puzzles and brainteasers."),
		likert("cv13", "I like doing research on topics that interest me."),
		likert("cv14", "I enjoy drawing, painting, designing, or any other forms of art."),
		likert("cv15", "I like writing stories, poems, or essays."),
		likert("cv16", "I enjoy helping my friends with their problems."),
		likert("cv17", "I like participating in community service activities."),
		likert("cv18", "I enjoy working with numbers and data."),
		likert("cv19", "I like following a set schedule and routine."),
		multi("cv20", "Which of the following best describe your personality?",
			"Outgoing", "Analytical", "Creative", "Detail-oriented", "Empathetic", "Adventurous", "Organized",
			"Independent", "Cooperative", "Ambitious", "Patient", "Assertive", "Flexible", "Responsible",
			"Optimistic", "Curious", "Practical", "Sensitive", "Confident", "Strategic"),
		multi("cv21", "How do you typically handle challenges?",
			"Stay calm and think through solutions", "Seek help from others", "Take immediate action",
			"Analyze the problem in detail", "Try to avoid the situation", "Look for creative solutions",
			"Break the problem into smaller parts", "Use past experiences to guide decisions",
			"Consult with a mentor or expert", "Collaborate with a team", "Remain optimistic and positive",
			"Develop a step-by-step plan", "Take a break and revisit later"),
		multi("cv22", "What activities do you enjoy in your free time?",
			"Reading", "Playing sports", "Artistic activities (painting, drawing)", "Solving puzzles",
			"Socializing with friends", "Volunteering", "Traveling", "Gaming", "Cooking", "Writing", "Gardening",
			"Listening to music", "Watching movies or TV shows", "Practicing a musical instrument",
			"Hiking or outdoor activities", "Working on DIY projects", "Learning new skills or hobbies",
			"Meditating or practicing yoga", "Exercising or going to the gym"),
		quiz("cv23", "What is the next number in the sequence 2, 4, 8, 16, ...?", "32", "24", "32", "64", "128"),
		quiz("cv24", "What is 15% of 200?", "30", "20", "30", "40", "50"),
		quiz("cv25", "Which word does not belong in the following list? Dog, Cat, Bird, Car.", "Car", "Dog", "Cat", "Bird", "Car"),
		quiz("cv26", "Which shape completes the pattern?", "Circle", "Circle", "Square", "Triangle", "Rectangle"),
		likert("cv27", "I prefer working in a group rather than alone."),
		likert("cv28", "I like taking on leadership roles in a group."),
		multi("cv29", "Which career clusters interest you?",
			"Health Science", "Information Technology", "Arts, Audio/Video Technology, and Communications",
			"Education and Training", "Finance", "Hospitality and Tourism", "Human Services",
			"Science, Technology, Engineering, and Mathematics (STEM)", "Business Management and Administration",
			"Law, Public Safety, Corrections, and Security", "Agriculture, Food, and Natural Resources",
			"Manufacturing", "Marketing, Sales, and Service", "Government and Public Administration",
			"Architecture and Construction", "Transportation, Distribution, and Logistics", "Energy and Utilities",
			"Environmental Science", "Real Estate", "Media and Entertainment", "Nonprofit and Social Services",
			"Fashion and Design", "Sports and Recreation"),
		single("cv30", "What type of work environment do you prefer?",
			"Collaborative and team-oriented", "Independent and autonomous", "Research-oriented",
			"Project-based/Short-term", "Remote work", "Office-based", "Field work",
			"Mixed environment(remote, field and office-based)", "Open to anything"),
	})

	personality := assessment.Scale{
		ID:    "big_five",
		Title: "Personality Profile",
		Categories: []assessment.Category{
			{ID: Openness, Label: "Openness"},
			{ID: Conscientiousness, Label: "Conscientiousness"},
			{ID: Extraversion, Label: "Extraversion"},
			{ID: Agreeableness, Label: "Agreeableness"},
			{ID: Neuroticism, Label: "Neuroticism"},
		},
		Map: assessment.CategoryMap{
			"cv1": {Openness}, "cv2": {Openness},
			"cv3": {Conscientiousness}, "cv4": {Conscientiousness},
			"cv5": {Extraversion}, "cv6": {Extraversion},
			"cv7": {Agreeableness}, "cv8": {Agreeableness},
			"cv9": {Neuroticism}, "cv10": {Neuroticism},
		},
		Narratives: assessment.RuleTable{
			Openness: trait(
				"You are highly curious and open to new experiences",
				[]string{"Well-suited for creative and innovative roles", "Consider research or artistic careers"},
				"You prefer familiar and traditional approaches",
				[]string{"Consider structured roles with clear guidelines", "Look for positions with established procedures"},
			),
			Conscientiousness: trait(
				"You are highly organized and detail-oriented",
				[]string{"Excel in project management roles", "Consider analytical or planning positions"},
				"You prefer flexibility and spontaneity",
				[]string{"Look for roles with variety", "Consider creative or dynamic positions"},
			),
			Extraversion: trait(
				"You are outgoing and energized by social interaction",
				[]string{"Consider sales or management roles", "Look for team-based environments"},
				"You prefer working independently",
				[]string{"Consider technical or analytical roles", "Look for independent work opportunities"},
			),
			Agreeableness: trait(
				"You are cooperative and focused on helping others",
				[]string{"Well-suited for helping professions", "Consider teaching or counseling roles"},
				"You are independent and objective in your approach",
				[]string{"Consider analytical or technical roles", "Look for positions requiring objective decision-making"},
			),
			Neuroticism: trait(
				"You may benefit from low-stress environments",
				[]string{"Consider structured, predictable environments", "Look for roles with good work-life balance"},
				"You handle pressure well",
				[]string{"Consider challenging, dynamic roles", "Look for positions with significant responsibility"},
			),
		},
		Summary: assessment.CombinationTemplate{
			Text:     "Your personality profile shows strong {labels}. This combination suggests you would excel in careers that value these traits.",
			Fallback: "Your personality profile shows a balanced combination of traits, suggesting adaptability across different career paths.",
		},
	}

	interests := assessment.Scale{
		ID:    VisionInterests,
		Title: "Interest Profile",
		Categories: []assessment.Category{
			{ID: Realistic, Label: "Realistic"},
			{ID: Investigative, Label: "Investigative"},
			{ID: Artistic, Label: "Artistic"},
			{ID: Social, Label: "Social"},
			{ID: Enterprising, Label: "Enterprising"},
			{ID: Conventional, Label: "Conventional"},
		},
		// cv19 feeds two types; several items are shared with the personality scale
		Map: assessment.CategoryMap{
			"cv11": {Realistic}, "cv18": {Realistic}, "cv19": {Realistic, Conventional},
			"cv12": {Investigative}, "cv13": {Investigative},
			"cv14": {Artistic}, "cv15": {Artistic},
			"cv7": {Social}, "cv8": {Social}, "cv16": {Social}, "cv17": {Social},
			"cv5": {Enterprising}, "cv6": {Enterprising}, "cv28": {Enterprising},
			"cv3": {Conventional}, "cv4": {Conventional},
		},
		Narratives: assessment.RuleTable{
			Realistic: interest("You prefer working with things rather than ideas or people. You enjoy practical, hands-on problems and solutions.",
				"Engineering", "Architecture", "Computer Hardware", "Construction", "Technical Support", "Manufacturing"),
			Investigative: interest("You like to solve complex problems and engage in research. You enjoy analytical and intellectual activities.",
				"Scientific Research", "Data Analysis", "Medical Science", "Technology Development", "Market Research", "Academic Research"),
			Artistic: interest("You value self-expression and creativity. You prefer unstructured situations and artistic activities.",
				"Graphic Design", "Content Creation", "Art Direction", "UX/UI Design", "Creative Writing", "Digital Media"),
			Social: interest("You enjoy working with and helping others. You prefer activities that involve interpersonal relationships.",
				"Teaching", "Counseling", "Healthcare", "Social Work", "Human Resources", "Customer Relations"),
			Enterprising: interest("You like to lead and persuade others. You enjoy taking risks and starting initiatives.",
				"Business Management", "Sales", "Marketing", "Entrepreneurship", "Project Management", "Business Development"),
			Conventional: interest("You prefer organized, systematic activities. You enjoy working with data and details.",
				"Accounting", "Financial Analysis", "Quality Assurance", "Data Management", "Operations", "Administrative Management"),
		},
		Summary: assessment.CombinationTemplate{
			Text:     "Your interests align strongly with {labels} occupations. This suggests you would thrive in careers that combine {labels_lower} activities.",
			Fallback: "Your interests show a balanced profile across different types of work. Consider exploring careers that combine multiple aspects of your interests.",
		},
		SuggestPerCategory: 2,
	}
	aptitude := assessment.Scale{
		ID:         VisionAptitude,
		Title:      "Aptitude",
		Categories: []assessment.Category{{ID: LogicalReasoning, Label: "Logical Reasoning"}},
		Map: assessment.CategoryMap{
			"cv23": {LogicalReasoning}, "cv24": {LogicalReasoning},
			"cv25": {LogicalReasoning}, "cv26": {LogicalReasoning},
		},
	}

	return assessment.Questionnaire{
		ID:          VisionID,
		Title:       "Career Vision Assessment",
		Description: "This assessment helps us understand your career aspirations and create a personalized roadmap for your future.",
		Bank:        bank,
		Scale:       personality,
		Profiles:    []assessment.Scale{interests, aptitude},
		Indices: []assessment.IndexRule{
			{
				ID:         VisionPersonality,
				Label:      "Personality Profile",
				Categories: []assessment.CategoryID{Openness, Conscientiousness, Extraversion, Agreeableness, Neuroticism},
			},
			{
				ID:         VisionAptitude,
				Label:      "Logical Reasoning",
				Categories: []assessment.CategoryID{LogicalReasoning},
				Bands: []assessment.IndexBand{
					{
						Min:         80,
						Level:       "excellent",
						Description: "Excellent analytical and problem-solving abilities",
						Recommendations: []string{
							"Consider STEM fields or analytical careers",
							"Take advanced mathematics or science courses",
							"Participate in olympiads and competitions",
						},
					},
					{
						Min:         60,
						Level:       "good",
						Description: "Good logical reasoning skills with room for development",
						Recommendations: []string{
							"Practice problem-solving regularly",
							"Focus on understanding concepts thoroughly",
							"Consider additional tutoring in challenging areas",
						},
					},
					{
						Min:         0,
						Level:       "developing",
						Description: "Consider focusing on strengthening analytical skills",
						Recommendations: []string{
							"Start with basic concept strengthening",
							"Use interactive learning tools and apps",
							"Seek help with difficult topics early",
						},
					},
				},
			},
		},
		Decisions: []assessment.DecisionRule{
			{Outcome: StreamScience, When: []assessment.Condition{{Category: LogicalReasoning, Min: 70}, {Category: Openness, Min: 70}}},
			{Outcome: StreamCommerce, When: []assessment.Condition{{Category: Extraversion, Min: 70}}},
			{Outcome: StreamHumanities, When: []assessment.Condition{{Category: Agreeableness, Min: 70}}},
			{Outcome: StreamArts, When: []assessment.Condition{{Category: Openness, Min: 70}}},
		},
		Selections: []assessment.SelectionRule{
			{ID: VisionCareerInterests, Label: "Career Interests", QuestionID: "cv29", Split: 3},
			{ID: VisionWorkStyle, Label: "Work Style Preference", QuestionID: "cv30", Default: "Mixed environment"},
		},
		Plan: assessment.RecommendationPlan{
			Immediate: []assessment.RecommendationRule{
				assessment.FromPaths(
					"Consider {paths} stream for further education",
					"Talk to a teacher or counselor about which stream fits your strengths",
				),
				assessment.Static(
					"Research entrance exams required for your chosen field",
					"Start preparing for competitive exams early",
					"Join relevant study groups or coaching classes",
					"Develop good study habits and time management skills",
				),
			},
			LongTerm: []assessment.RecommendationRule{
				assessment.FromSelection(VisionCareerInterests, 3,
					"Research detailed requirements for {selection}",
					"Research requirements for your fields of interest",
				),
				assessment.Static(
					"Connect with professionals in your chosen field",
					"Look for internship opportunities",
					"Build a strong academic foundation",
					"Develop relevant skills through online courses",
				),
			},
			Growth: []assessment.RecommendationRule{
				assessment.Static(
					"Focus on communication skills through debates and presentations",
					"Develop computer literacy and basic programming skills",
					"Practice time management and organization",
					"Build teamwork skills through group activities",
					"Learn a new language or technical skill",
				),
				assessment.EachBelow("", 60, "Improve {label_lower} through targeted activities"),
			},
		},
	}
}
