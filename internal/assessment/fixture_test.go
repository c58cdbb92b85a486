package assessment

import "fmt"

const (
	catA CategoryID = "a"
	catB CategoryID = "b"
	catC CategoryID = "c"
	catD CategoryID = "d"
	catE CategoryID = "e"
)

// fiveByTwo is ten rating questions, two per category
func fiveByTwo() (Bank, Scale) {
	ids := []CategoryID{catA, catB, catC, catD, catE}
	var questions []Question
	m := CategoryMap{}
	var cats []Category
	for i, id := range ids {
		cats = append(cats, Category{ID: id, Label: "Type " + string(id)})
		for j := 1; j <= 2; j++ {
			qid := fmt.Sprintf("q%d", i*2+j)
			questions = append(questions, Question{ID: qid, Prompt: "rate " + qid, Modality: ModalityScale})
			m[qid] = []CategoryID{id}
		}
	}
	return NewBank(questions), Scale{ID: "main", Title: "Main", Categories: cats, Map: m}
}

func allRated(bank Bank, n float64) []Answer {
	var out []Answer
	for _, q := range bank.Questions() {
		out = append(out, Answer{QuestionID: q.ID, Value: Number(n)})
	}
	return out
}

func testQuestionnaire() Questionnaire {
	bank, scale := fiveByTwo()
	questions := append(bank.Questions(), Question{
		ID:       "pick",
		Prompt:   "pick careers",
		Modality: ModalityMultiChoice,
		Options:  []string{"Pilot", "Chef", "Nurse", "Writer"},
		Values:   map[string]int{"Pilot": 1, "Chef": 1, "Nurse": 1, "Writer": 1},
	})

	scale.Narratives = RuleTable{}
	for _, c := range scale.Categories {
		scale.Narratives[c.ID] = HighLow(
			Narrative{
				Description:     "high " + string(c.ID),
				Characteristics: []string{"bold", "curious", "calm"},
				Careers:         []Career{{Title: "Career " + string(c.ID) + "1"}, {Title: "Shared"}, {Title: "Career " + string(c.ID) + "3"}},
			},
			Narrative{Description: "low " + string(c.ID)},
		)
	}
	scale.Summary = CombinationTemplate{
		Text:     "Strong in {labels}.",
		Fallback: "A balanced profile.",
	}
	scale.Bands = []Band{{Min: 80, Label: "Excellent"}, {Min: 0, Label: "Potential"}}
	scale.Signal = &Signal{MinValue: 4, Reason: "strong answers"}
	scale.SuggestPerCategory = 2

	return Questionnaire{
		ID:    "test",
		Title: "Test",
		Bank:  NewBank(questions),
		Scale: scale,
		Plan: RecommendationPlan{
			Immediate: []RecommendationRule{
				PrimarySet("Focus on {labels}", ""),
				FromPaths("Consider {paths}", "Explore several paths"),
			},
			Growth: []RecommendationRule{
				EachPrimary("Explore {label} like {highlights}"),
				EachBelow("", 60, "Improve {label_lower}"),
				Static("Keep learning"),
			},
			LongTerm: []RecommendationRule{
				FromSelection("careers", 3, "Research {selection}", "Research your interests"),
			},
		},
		Decisions: []DecisionRule{
			{Outcome: "P", When: []Condition{{Category: catA, Min: 70}, {Category: catB, Min: 70}}},
			{Outcome: "Q", When: []Condition{{Category: catC, Min: 70}}},
			{Outcome: "R", When: []Condition{{Category: catD, Min: 70}}},
		},
		Indices: []IndexRule{{
			ID:         "overall",
			Label:      "Overall",
			Categories: []CategoryID{catA, catB, catC, catD, catE},
			Bands: []IndexBand{
				{Min: 70, Level: "high", Description: "High overall."},
				{Min: 0, Level: "low", Description: "Low overall."},
			},
		}},
		Selections: []SelectionRule{{ID: "careers", Label: "Careers", QuestionID: "pick", Split: 2}},
		Resources:  []Resource{{Title: "Guide", URL: "https://example.org"}},
	}
}

func answersFor(scores map[string]float64) []Answer {
	var out []Answer
	for i := 1; i <= 10; i++ {
		qid := fmt.Sprintf("q%d", i)
		if v, ok := scores[qid]; ok {
			out = append(out, Answer{QuestionID: qid, Value: Number(v)})
		}
	}
	return out
}
