package questionnaires

import "github.com/ZanzyTHEbar/career-compass/internal/assessment"

// Emerging career clusters
const (
	TechInnovator      assessment.CategoryID = "tech_innovator"
	DigitalCreator     assessment.CategoryID = "digital_creator"
	DataAnalyst        assessment.CategoryID = "data_analyst"
	FutureEntrepreneur assessment.CategoryID = "future_entrepreneur"
	TechHelper         assessment.CategoryID = "tech_helper"
)

const ClustersID = "clusters"

// Clusters is the fifteen item Future Pathways Explorer
func Clusters() assessment.Questionnaire {
	bank := assessment.NewBank([]assessment.Question{
		likert("cc1", "I enjoy figuring out how things work and how to fix them when they are broken."),
		likert("cc2", "I like to draw, paint, create videos, or express myself through creative activities."),
		likert("cc3", "Numbers and patterns fascinate me. I like to find logic in things."),
		likert("cc4", "I have lots of ideas and often think about starting my own projects or businesses."),
		likert("cc5", "I care about making the world a better place and helping people in need."),
		likert("cc6", "I am curious about new technologies like robots, AI, and virtual reality."),
		likert("cc7", "I enjoy telling stories and communicating my ideas to others."),
		likert("cc8", "I am good at analyzing information and finding solutions to complex problems."),
		likert("cc9", "I am interested in learning how businesses and organizations work."),
		likert("cc10", "I believe technology can be used to solve major problems like climate change or poverty."),
		likert("cc11", "I like playing video games or exploring virtual worlds."),
		likert("cc12", "I enjoy working with computers and learning about software and coding."),
		likert("cc13", "I like to understand trends and predict what might happen in the future."),
		likert("cc14", "I am interested in leadership roles and guiding teams to achieve goals."),
		likert("cc15", "I want to use my skills to help people improve their health and well-being."),
	})

	narratives := assessment.RuleTable{
		TechInnovator: assessment.Uniform(assessment.Narrative{
			Title:       "The Future Architect: Building Tomorrow's World with Technology",
			Description: "You are fascinated by how things work and love to create and fix them! You are likely drawn to building new technologies, software, and even robots. In the future, the world needs people like you to design and build the amazing tech we'll all use.",
			Careers: []assessment.Career{
				{Title: "AI Solutions Architect", Description: "Design and build AI systems for businesses and organizations"},
				{Title: "Robotics Engineer", Description: "Create and improve robots for various industries"},
				{Title: "VR/AR Developer", Description: "Build immersive and interactive digital experiences"},
				{Title: "Biotech Engineer", Description: "Create new healthcare technologies using engineering principles"},
			},
			Skills:  []string{"Programming", "Problem-solving", "System design", "Technical creativity", "Analytical thinking"},
			Courses: []string{"Computer Science", "Robotics", "AI & Machine Learning", "Engineering Design"},
			Reasons: []string{"You enjoy working with technology and solving technical problems"},
		}),
		DigitalCreator: assessment.Uniform(assessment.Narrative{
			Title:       "The Metaverse Maestro: Crafting Immersive Digital Worlds",
			Description: "You have a creative soul and love expressing yourself through art, stories, music, videos, or games! You are likely interested in creating digital content and experiences that entertain and engage people.",
			Careers: []assessment.Career{
				{Title: "Metaverse Architect", Description: "Design and build virtual worlds and experiences"},
				{Title: "Digital Content Strategist", Description: "Create AI-driven content across platforms"},
				{Title: "Game Designer", Description: "Create next-generation video games and interactive experiences"},
				{Title: "Digital Fashion Designer", Description: "Design virtual clothing and accessories for avatars"},
			},
			Skills:  []string{"Digital art", "Storytelling", "UI/UX design", "Creative thinking", "Visual communication"},
			Courses: []string{"Digital Arts", "Game Development", "Interactive Media", "Creative Technology"},
			Reasons: []string{"You have a strong creative and artistic inclination"},
		}),
		DataAnalyst: assessment.Uniform(assessment.Narrative{
			Title:       "The Insight Navigator: Decoding the World with Data",
			Description: "You are naturally curious about numbers, patterns, and solving puzzles! You like to analyze information and find hidden meanings within data. In the future, data will be everywhere, and we need skilled people to make sense of it all.",
			Careers: []assessment.Career{
				{Title: "AI Ethicist", Description: "Ensure AI systems are used responsibly and fairly"},
				{Title: "Data Scientist", Description: "Use data to forecast future trends and help organizations plan"},
				{Title: "Cybersecurity Analyst", Description: "Protect sensitive data and systems from cyber threats"},
				{Title: "Bioinformatician", Description: "Analyze biological data to understand diseases and develop treatments"},
			},
			Skills:  []string{"Data analysis", "Statistical thinking", "Pattern recognition", "Problem-solving", "Critical thinking"},
			Courses: []string{"Data Science", "Statistics", "Machine Learning", "Research Methods"},
			Reasons: []string{"You show strong analytical and logical thinking abilities"},
		}),
		FutureEntrepreneur: assessment.Uniform(assessment.Narrative{
			Title:       "The Innovation Catalyst: Leading the Tech Revolution",
			Description: "You are a natural leader with big ideas and a drive to make things happen! You are likely interested in starting your own projects or businesses and leading teams.",
			Careers: []assessment.Career{
				{Title: "Innovation Manager", Description: "Lead teams to develop and implement new technologies"},
				{Title: "Tech Startup Founder", Description: "Create new businesses that solve social or environmental problems"},
				{Title: "Digital Transformation Consultant", Description: "Help traditional businesses adapt to the digital age"},
				{Title: "E-commerce Strategist", Description: "Develop online business strategies using AI personalization"},
			},
			Skills:  []string{"Leadership", "Strategic thinking", "Innovation management", "Business acumen", "Communication"},
			Courses: []string{"Entrepreneurship", "Business Technology", "Innovation Management", "Digital Strategy"},
			Reasons: []string{"You demonstrate leadership qualities and business interest"},
		}),
		TechHelper: assessment.Uniform(assessment.Narrative{
			Title:       "The Compassionate Technologist: Using Tech for Good",
			Description: "You are caring and want to use your skills to help people and make a positive impact on the world! You believe technology can be a powerful tool for solving real-world problems.",
			Careers: []assessment.Career{
				{Title: "Telehealth Specialist", Description: "Use technology to provide healthcare services remotely"},
				{Title: "EdTech Innovator", Description: "Develop new technologies to make learning more effective"},
				{Title: "Environmental Data Analyst", Description: "Use data to monitor and address environmental issues"},
				{Title: "Assistive Technology Developer", Description: "Create technologies to help people with disabilities"},
			},
			Skills:  []string{"Problem-solving", "Empathy", "Technical skills", "Communication", "Project management"},
			Courses: []string{"Social Innovation", "Healthcare Technology", "Environmental Science", "Assistive Technology"},
			Reasons: []string{"You show a strong desire to help others through technology"},
		}),
	}

	return assessment.Questionnaire{
		ID:          ClustersID,
		Title:       "Future Pathways Explorer",
		Description: "Discover which emerging tech-focused career clusters align with your interests and explore exciting future possibilities.",
		Bank:        bank,
		Scale: assessment.Scale{
			ID:    ClustersID,
			Title: "Career Clusters",
			Categories: []assessment.Category{
				{ID: TechInnovator, Label: "Tech Innovator & Builder"},
				{ID: DigitalCreator, Label: "Digital Creator & Storyteller"},
				{ID: DataAnalyst, Label: "Data Analyst & Scientist"},
				{ID: FutureEntrepreneur, Label: "Future-Focused Entrepreneur & Leader"},
				{ID: TechHelper, Label: "Tech-Enabled Helper & Problem Solver"},
			},
			// several items feed two clusters with equal weight
			// TODO: per-cluster item counts differ (4 or 5); review the weighting with the content authors
			Map: assessment.CategoryMap{
				"cc1":  {TechInnovator},
				"cc2":  {DigitalCreator},
				"cc3":  {DataAnalyst},
				"cc4":  {FutureEntrepreneur},
				"cc5":  {TechHelper},
				"cc6":  {TechInnovator, DigitalCreator},
				"cc7":  {DigitalCreator, FutureEntrepreneur},
				"cc8":  {DataAnalyst, TechHelper},
				"cc9":  {FutureEntrepreneur},
				"cc10": {TechHelper, TechInnovator},
				"cc11": {DigitalCreator},
				"cc12": {TechInnovator, DataAnalyst},
				"cc13": {DataAnalyst, FutureEntrepreneur},
				"cc14": {FutureEntrepreneur},
				"cc15": {TechHelper},
			},
			Narratives: narratives,
			Summary: assessment.CombinationTemplate{
				Text:     "You show strong alignment with {count} career clusters that match your interests and preferences. These emerging fields offer exciting opportunities for your future career journey.",
				Fallback: "Your interests span multiple areas, which gives you flexibility in choosing your career path. Consider exploring these clusters further to find your best fit.",
			},
			Bands: []assessment.Band{
				{Min: 80, Label: "Excellent Match"},
				{Min: 70, Label: "Strong Match"},
				{Min: 60, Label: "Good Match"},
				{Min: 0, Label: "Potential Match"},
			},
			Signal: &assessment.Signal{
				MinValue: 4,
				Reason:   "You showed strong interest in activities related to this field",
			},
		},
		Plan: assessment.RecommendationPlan{
			Immediate: []assessment.RecommendationRule{
				assessment.Static(
					"Research the specific careers within your top clusters",
					"Look for internship or project opportunities in these fields",
				),
			},
			Growth: []assessment.RecommendationRule{
				assessment.Static(
					"Consider taking relevant courses or certifications",
					"Join clubs or activities related to your interests",
				),
			},
			LongTerm: []assessment.RecommendationRule{
				assessment.Static("Connect with professionals working in these areas"),
			},
		},
	}
}
