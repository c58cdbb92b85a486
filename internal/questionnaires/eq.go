package questionnaires

import "github.com/ZanzyTHEbar/career-compass/internal/assessment"

// Emotional intelligence dimensions
const (
	SelfAwareness       assessment.CategoryID = "self_awareness"
	Empathy             assessment.CategoryID = "empathy"
	EmotionalManagement assessment.CategoryID = "emotional_management"
)

const EQID = "eq"

// option is a choice answer together with the value it scores
type option struct {
	text  string
	value int
}

func choice(id, prompt string, modality assessment.Modality, opts ...option) assessment.Question {
	q := assessment.Question{
		ID:       id,
		Prompt:   prompt,
		Modality: modality,
		Options:  make([]string, len(opts)),
		Values:   make(map[string]int, len(opts)),
	}
	for i, o := range opts {
		q.Options[i] = o.text
		q.Values[o.text] = o.value
	}
	return q
}

func scenario(id, prompt string, opts ...option) assessment.Question {
	return choice(id, prompt, assessment.ModalitySingleChoice, opts...)
}

// eqTiers builds a high/moderate/low narrative where the moderate and low
// tiers share everything but the description.
func eqTiers(high assessment.Narrative, moderate, low string, developing assessment.Narrative) assessment.TieredNarrative {
	mid := developing
	mid.Description = moderate
	bottom := developing
	bottom.Description = low
	return assessment.TieredNarrative{Primary: high, Secondary: mid, Tertiary: bottom}
}

// EQ is the ten scenario EQ Navigator
func EQ() assessment.Questionnaire {
	bank := assessment.NewBank([]assessment.Question{
		scenario("eq1", "You're excited to share some good news with a friend, but they seem distracted and uninterested. You...",
			option{"Get angry and accuse them of not caring about you", 1},
			option{"Feel disappointed but try to understand why they might be distracted", 5},
			option{"Pretend you're not bothered, even though you're a little hurt", 3},
			option{"Stop talking about your news and change the subject", 2},
		),
		scenario("eq2", "You witness a classmate making fun of another student's appearance. You...",
			option{"Laugh along with the classmate", 1},
			option{"Ignore it and hope it stops", 2},
			option{"Tell the classmate that it's not okay and support the targeted student", 5},
			option{"Tell the targeted student to ignore the comments", 3},
		),
		scenario("eq3", "You're feeling really stressed about upcoming exams. You...",
			option{"Isolate yourself and worry constantly", 1},
			option{"Talk to someone and find healthy ways to manage stress", 5},
			option{"Procrastinate and avoid thinking about the exams", 2},
			option{"Try to convince yourself you don't care about the exams", 2},
		),
		scenario("eq4", "A friend is going through a tough time (e.g., family issues, break-up). You...",
			option{"Offer a listening ear and support, letting them know you're there", 5},
			option{"Try to give them advice, even if you're not sure what to say", 3},
			option{"Avoid them because you don't know how to handle the situation", 1},
			option{`Tell them to "toughen up"`, 1},
		),
		scenario("eq5", "You receive constructive criticism on a project. You...",
			option{"Get defensive and argue with the person giving feedback", 1},
			option{"Listen to the feedback and try to learn from it", 5},
			option{"Feel hurt and take it personally", 2},
			option{"Ignore the feedback completely", 1},
		),
		scenario("eq6", "You have a strong disagreement with a friend. You...",
			option{"Resort to personal insults and name-calling", 1},
			option{"Try to see things from their perspective and find a compromise", 5},
			option{"Refuse to talk to your friend anymore", 2},
			option{"Give them the silent treatment", 1},
		),
		scenario("eq7", "You achieve a goal you've been working towards. You...",
			option{"Brag about your achievement to everyone", 2},
			option{"Celebrate your success and acknowledge your effort", 5},
			option{"Downplay your achievement, as if it wasn't a big deal", 3},
			option{"Immediately start worrying about your next goal", 2},
		),
		scenario("eq8", "You make a mistake. You...",
			option{"Blame someone else", 1},
			option{"Take responsibility and try to fix the mistake", 5},
			option{"Try to hide the mistake", 2},
			option{"Beat yourself up about it excessively", 2},
		),
		scenario("eq9", "You see a new student struggling to fit in. You...",
			option{"Ignore them", 2},
			option{"Make fun of them", 1},
			option{"Introduce yourself and try to make them feel welcome", 5},
			option{"Observe them from a distance but don't interact", 2},
		),
		scenario("eq10", "You feel overwhelmed by your emotions. You...",
			option{"Try to suppress or ignore your feelings", 2},
			option{"Find healthy ways to express your emotions", 5},
			option{"Lash out at others", 1},
			option{"Engage in self-destructive behaviors", 1},
		),
	})

	narratives := assessment.RuleTable{
		SelfAwareness: eqTiers(
			assessment.Narrative{
				Description:     "You show strong self-awareness and understanding of your emotions",
				Strengths:       []string{"Recognize and understand your emotions well", "Good at self-reflection"},
				GrowthAreas:     []string{"Continue developing emotional vocabulary", "Share insights with others"},
				Recommendations: []string{"Keep a mood journal", "Share your experiences with peers"},
			},
			"You have a developing sense of self-awareness",
			"You could benefit from developing stronger self-awareness",
			assessment.Narrative{
				Strengths:       []string{"Some ability to recognize emotions", "Willing to learn and grow"},
				GrowthAreas:     []string{"Practice identifying emotions", "Develop self-reflection habits"},
				Recommendations: []string{"Start mindfulness practices", "Talk to trusted adults about feelings"},
			},
		),
		Empathy: eqTiers(
			assessment.Narrative{
				Description:     "You show strong empathy and understanding for others",
				Strengths:       []string{"Good at understanding others' feelings", "Supportive friend"},
				GrowthAreas:     []string{"Lead by example", "Help others develop empathy"},
				Recommendations: []string{"Mentor others", "Join peer support programs"},
			},
			"You show developing empathy skills",
			"You could benefit from developing stronger empathy",
			assessment.Narrative{
				Strengths:       []string{"Show potential for empathy", "Care about others"},
				GrowthAreas:     []string{"Practice perspective-taking", "Listen more actively"},
				Recommendations: []string{"Practice active listening", "Read stories about different experiences"},
			},
		),
		EmotionalManagement: eqTiers(
			assessment.Narrative{
				Description:     "You handle emotions effectively and positively",
				Strengths:       []string{"Good emotional regulation", "Positive coping strategies"},
				GrowthAreas:     []string{"Share strategies with others", "Handle complex situations"},
				Recommendations: []string{"Learn advanced coping techniques", "Help others manage stress"},
			},
			"You show developing emotional management skills",
			"You could benefit from developing better emotional management",
			assessment.Narrative{
				Strengths:       []string{"Some coping mechanisms", "Willing to improve"},
				GrowthAreas:     []string{"Develop healthy coping strategies", "Practice stress management"},
				Recommendations: []string{"Try breathing exercises", "Talk to counselors about stress management"},
			},
		),
	}

	return assessment.Questionnaire{
		ID:          EQID,
		Title:       "EQ Navigator Assessment",
		Description: "Discover your emotional intelligence strengths and areas for growth through real-life scenarios.",
		Bank:        bank,
		Scale: assessment.Scale{
			ID:    EQID,
			Title: "Emotional Intelligence",
			Categories: []assessment.Category{
				{ID: SelfAwareness, Label: "Self-Awareness"},
				{ID: Empathy, Label: "Empathy"},
				{ID: EmotionalManagement, Label: "Emotional Management"},
			},
			Map: assessment.CategoryMap{
				"eq3": {SelfAwareness}, "eq5": {SelfAwareness}, "eq7": {SelfAwareness}, "eq10": {SelfAwareness},
				"eq1": {Empathy}, "eq2": {Empathy}, "eq4": {Empathy}, "eq9": {Empathy},
				"eq6": {EmotionalManagement}, "eq8": {EmotionalManagement},
			},
			Narratives: narratives,
			Bands: []assessment.Band{
				{Min: 70, Label: "high"},
				{Min: 50, Label: "moderate"},
				{Min: 0, Label: "low"},
			},
		},
		Indices: []assessment.IndexRule{{
			ID:         "total",
			Label:      "Overall EQ",
			Categories: []assessment.CategoryID{SelfAwareness, Empathy, EmotionalManagement},
			Bands: []assessment.IndexBand{
				{
					Min:         70,
					Level:       "high",
					Title:       "Empathetic Explorer",
					Description: "You demonstrate exceptional emotional intelligence across multiple areas. Your ability to understand and manage emotions, both your own and others', is impressive.",
				},
				{
					Min:         50,
					Level:       "moderate",
					Title:       "Developing Navigator",
					Description: "You show strong emotional intelligence skills with some areas for growth. You're on a great path to developing even stronger emotional awareness and management.",
				},
				{
					Min:         40,
					Level:       "low",
					Title:       "Emerging Explorer",
					Description: "You're developing your emotional intelligence skills. With practice and support, you can strengthen these important abilities.",
				},
				{
					Min:         0,
					Level:       "low",
					Title:       "Compass Explorer",
					Description: "You're at the beginning of your emotional intelligence journey. Everyone starts somewhere, and there's great potential for growth!",
				},
			},
		}},
		SummaryIndex: "total",
		Plan: assessment.RecommendationPlan{
			Growth: []assessment.RecommendationRule{
				assessment.Static(
					"Practice mindfulness and self-reflection daily",
					"Seek support from trusted adults when needed",
					"Join school clubs or activities to practice social skills",
					"Read books or watch videos about emotional intelligence",
					"Keep a journal to track your emotional experiences",
				),
			},
		},
		Resources: []assessment.Resource{
			{Title: "Mindfulness for Teens", URL: "https://mindfulnessforteens.com"},
			{Title: "Child Mind Institute", URL: "https://childmind.org"},
			{Title: "NIMHANS Youth Resources", URL: "https://nimhans.ac.in/pssmhs-nimhans/youth-resources/"},
		},
	}
}
