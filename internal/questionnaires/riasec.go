package questionnaires

import "github.com/ZanzyTHEbar/career-compass/internal/assessment"

// Holland interest types
const (
	Realistic     assessment.CategoryID = "realistic"
	Investigative assessment.CategoryID = "investigative"
	Artistic      assessment.CategoryID = "artistic"
	Social        assessment.CategoryID = "social"
	Enterprising  assessment.CategoryID = "enterprising"
	Conventional  assessment.CategoryID = "conventional"
)

const RIASECID = "riasec"

func likert(id, prompt string) assessment.Question {
	return assessment.Question{ID: id, Prompt: prompt, Modality: assessment.ModalityScale}
}

func careers(titles ...string) []assessment.Career {
	out := make([]assessment.Career, len(titles))
	for i, t := range titles {
		out[i] = assessment.Career{Title: t}
	}
	return out
}

// RIASEC is the twelve item Holland interest inventory
func RIASEC() assessment.Questionnaire {
	bank := assessment.NewBank([]assessment.Question{
		likert("r1", "I enjoy building or fixing things with my hands."),
		likert("r2", "I like learning how machines and technology work."),
		likert("i1", "I enjoy solving puzzles and complex problems."),
		likert("i2", "I like doing experiments and discovering how things work."),
		likert("a1", "I enjoy expressing myself through art, music, or writing."),
		likert("a2", "I like coming up with creative ideas and solutions."),
		likert("s1", "I enjoy helping others learn new things."),
		likert("s2", "I like working with others in group activities."),
		likert("e1", "I enjoy leading group projects or activities."),
		likert("e2", "I like presenting my ideas and convincing others."),
		likert("c1", "I enjoy organizing and keeping track of information."),
		likert("c2", "I like following clear rules and instructions."),
	})

	narratives := assessment.RuleTable{
		Realistic: assessment.Uniform(assessment.Narrative{
			Description:     "You enjoy hands-on activities and working with tools, machines, or technology.",
			Careers:         careers("Computer Technician", "Video Game Developer", "Robotics Engineer", "Sports Coach", "Mobile App Developer", "Digital Content Creator"),
			Characteristics: []string{"Practical", "Technical-minded", "Hands-on", "Systematic", "Athletic"},
			Environments:    []string{"Technology labs", "Gaming studios", "Sports facilities", "Maker spaces", "Digital workshops"},
		}),
		Investigative: assessment.Uniform(assessment.Narrative{
			Description:     "You enjoy solving problems, conducting experiments, and understanding how things work.",
			Careers:         careers("Data Scientist", "AI Researcher", "Environmental Scientist", "Cybersecurity Analyst", "Medical Researcher", "Tech Innovation Specialist"),
			Characteristics: []string{"Analytical", "Curious", "Problem-solver", "Detail-oriented", "Scientific"},
			Environments:    []string{"Research labs", "Tech companies", "Innovation centers", "Science facilities", "Digital research hubs"},
		}),
		Artistic: assessment.Uniform(assessment.Narrative{
			Description:     "You enjoy creative activities and expressing yourself through art, music, or design.",
			Careers:         careers("Digital Artist", "UX/UI Designer", "Social Media Creator", "Game Designer", "Music Producer", "Animation Artist"),
			Characteristics: []string{"Creative", "Imaginative", "Original", "Expressive", "Design-oriented"},
			Environments:    []string{"Design studios", "Digital media agencies", "Gaming companies", "Creative spaces", "Content creation studios"},
		}),
		Social: assessment.Uniform(assessment.Narrative{
			Description:     "You enjoy working with and helping others learn and grow.",
			Careers:         careers("Online Teacher", "Social Media Manager", "Community Manager", "Digital Learning Specialist", "Youth Counselor", "E-sports Coach"),
			Characteristics: []string{"Helpful", "Collaborative", "Understanding", "Patient", "Communicative"},
			Environments:    []string{"Online learning platforms", "Social media teams", "Community organizations", "Digital education spaces", "Youth centers"},
		}),
		Enterprising: assessment.Uniform(assessment.Narrative{
			Description:     "You enjoy leading projects and influencing others with your ideas.",
			Careers:         careers("Tech Startup Founder", "Digital Marketing Manager", "E-commerce Entrepreneur", "Content Creator", "Project Leader", "Innovation Manager"),
			Characteristics: []string{"Leadership-oriented", "Persuasive", "Goal-driven", "Confident", "Initiative-taking"},
			Environments:    []string{"Start-up companies", "Digital marketing firms", "Online businesses", "Tech incubators", "Innovation hubs"},
		}),
		Conventional: assessment.Uniform(assessment.Narrative{
			Description:     "You enjoy organizing information and following clear procedures.",
			Careers:         careers("Data Analyst", "Digital Project Manager", "Quality Assurance Tester", "Financial Technology Specialist", "Systems Administrator", "Digital Operations Coordinator"),
			Characteristics: []string{"Organized", "Detail-focused", "Systematic", "Precise", "Structured"},
			Environments:    []string{"Tech companies", "Digital operations centers", "Online platforms", "Financial technology firms", "Data centers"},
		}),
	}

	return assessment.Questionnaire{
		ID:          RIASECID,
		Title:       "RIASEC Career Assessment",
		Description: "This assessment helps determine your career interests based on Holland's RIASEC model.",
		Bank:        bank,
		Scale: assessment.Scale{
			ID:    RIASECID,
			Title: "Interest Types",
			Categories: []assessment.Category{
				{ID: Realistic, Label: "Realistic"},
				{ID: Investigative, Label: "Investigative"},
				{ID: Artistic, Label: "Artistic"},
				{ID: Social, Label: "Social"},
				{ID: Enterprising, Label: "Enterprising"},
				{ID: Conventional, Label: "Conventional"},
			},
			Map: assessment.CategoryMap{
				"r1": {Realistic}, "r2": {Realistic},
				"i1": {Investigative}, "i2": {Investigative},
				"a1": {Artistic}, "a2": {Artistic},
				"s1": {Social}, "s2": {Social},
				"e1": {Enterprising}, "e2": {Enterprising},
				"c1": {Conventional}, "c2": {Conventional},
			},
			Narratives: narratives,
			Summary: assessment.CombinationTemplate{
				Text:     "Your strongest interest areas are {labels}. Careers that draw on {labels_lower} activities are a natural place to start.",
				Fallback: "Your interests are spread across several areas. Trying a range of activities will help you discover what you enjoy most.",
			},
			SuggestPerCategory: 2,
		},
		Plan: assessment.RecommendationPlan{
			Immediate: []assessment.RecommendationRule{
				assessment.PrimarySet("Focus on careers that combine your strongest interests: {labels}", ""),
				assessment.EachPrimary("Explore activities related to {label} interests like {highlights}"),
			},
			Growth: []assessment.RecommendationRule{
				assessment.Static(
					"Join clubs or activities that match your interests",
					"Look for online courses or tutorials in your areas of interest",
					"Talk to people working in careers you find interesting",
					"Consider summer programs or workshops in these fields",
				),
			},
		},
	}
}
