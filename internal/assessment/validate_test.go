package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_TestQuestionnaire(t *testing.T) {
	require.NoError(t, testQuestionnaire().Validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(q *Questionnaire)
		wantErr error
	}{
		{
			name: "duplicate question",
			mutate: func(q *Questionnaire) {
				qs := append(q.Bank.Questions(), Question{ID: "q1", Modality: ModalityScale})
				q.Bank = NewBank(qs)
			},
			wantErr: ErrDuplicateQuestion,
		},
		{
			name:    "mapped question missing from bank",
			mutate:  func(q *Questionnaire) { q.Scale.Map["ghost"] = []CategoryID{catA} },
			wantErr: ErrUnknownQuestion,
		},
		{
			name:    "mapped to unknown category",
			mutate:  func(q *Questionnaire) { q.Scale.Map["q1"] = []CategoryID{"zzz"} },
			wantErr: ErrUnknownCategory,
		},
		{
			name: "category without questions",
			mutate: func(q *Questionnaire) {
				q.Scale.Categories = append(q.Scale.Categories, Category{ID: "lonely"})
				q.Scale.Narratives["lonely"] = Uniform(Narrative{Description: "x"})
			},
			wantErr: ErrEmptyCategory,
		},
		{
			name:    "rule table missing a category",
			mutate:  func(q *Questionnaire) { delete(q.Scale.Narratives, catC) },
			wantErr: ErrMissingNarrative,
		},
		{
			name:    "empty summary fallback",
			mutate:  func(q *Questionnaire) { q.Scale.Summary.Fallback = "" },
			wantErr: ErrMissingFallback,
		},
		{
			name: "scored choice question without values",
			mutate: func(q *Questionnaire) {
				qs := append(q.Bank.Questions(), Question{ID: "c1", Modality: ModalitySingleChoice, Options: []string{"x"}})
				q.Bank = NewBank(qs)
				q.Scale.Map["c1"] = []CategoryID{catA}
			},
			wantErr: ErrMissingValues,
		},
		{
			name: "value key not an option",
			mutate: func(q *Questionnaire) {
				qs := append(q.Bank.Questions(), Question{
					ID: "c1", Modality: ModalitySingleChoice,
					Options: []string{"x"}, Values: map[string]int{"y": 5},
				})
				q.Bank = NewBank(qs)
			},
			wantErr: ErrInvalidValueOption,
		},
		{
			name: "decision on unknown category",
			mutate: func(q *Questionnaire) {
				q.Decisions = append(q.Decisions, DecisionRule{Outcome: "Z", When: []Condition{{Category: "nope", Min: 1}}})
			},
			wantErr: ErrUnknownCategory,
		},
		{
			name:    "decision without conditions",
			mutate:  func(q *Questionnaire) { q.Decisions = append(q.Decisions, DecisionRule{Outcome: "Z"}) },
			wantErr: ErrInvalidRule,
		},
		{
			name:    "index on unknown category",
			mutate:  func(q *Questionnaire) { q.Indices[0].Categories = []CategoryID{"nope"} },
			wantErr: ErrUnknownCategory,
		},
		{
			name:    "undeclared summary index",
			mutate:  func(q *Questionnaire) { q.SummaryIndex = "missing" },
			wantErr: ErrInvalidRule,
		},
		{
			name: "duplicate category across scales",
			mutate: func(q *Questionnaire) {
				q.Profiles = []Scale{{ID: "p", Categories: []Category{{ID: catA}}, Map: CategoryMap{"q1": {catA}}}}
			},
			wantErr: ErrDuplicateCategory,
		},
		{
			name: "selection rule without fallback",
			mutate: func(q *Questionnaire) {
				q.Plan.LongTerm = []RecommendationRule{FromSelection("careers", 3, "Research {selection}", "")}
			},
			wantErr: ErrMissingFallback,
		},
		{
			name:    "no summary source",
			mutate:  func(q *Questionnaire) { q.Scale.Summary = CombinationTemplate{} },
			wantErr: ErrMissingSummary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := testQuestionnaire()
			tt.mutate(&q)
			err := q.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecide(t *testing.T) {
	rules := []DecisionRule{
		{Outcome: "Science", When: []Condition{{Category: catA, Min: 70}, {Category: catB, Min: 70}}},
		{Outcome: "Commerce", When: []Condition{{Category: catC, Min: 70}}},
		{Outcome: "Arts", When: []Condition{{Category: catA, Min: 70}}},
	}

	tests := []struct {
		name      string
		scores    map[CategoryID]int
		primary   []string
		secondary []string
	}{
		{
			name:      "joint condition holds",
			scores:    map[CategoryID]int{catA: 75, catB: 90, catC: 10},
			primary:   []string{"Science", "Arts"},
			secondary: []string{"Commerce"},
		},
		{
			name:      "one side of joint condition fails",
			scores:    map[CategoryID]int{catA: 75, catB: 69},
			primary:   []string{"Arts"},
			secondary: []string{"Science", "Commerce"},
		},
		{
			name:      "missing categories count as zero",
			scores:    nil,
			primary:   []string{},
			secondary: []string{"Science", "Commerce", "Arts"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Decide(rules, tt.scores)
			assert.Equal(t, tt.primary, p.Primary)
			assert.Equal(t, tt.secondary, p.Secondary)
			assert.Len(t, append(p.Primary, p.Secondary...), len(rules))
		})
	}
}

func TestIndexRule_Compute(t *testing.T) {
	rule := IndexRule{
		ID:         "total",
		Categories: []CategoryID{catA, catB, catC},
		Bands: []IndexBand{
			{Min: 70, Level: "high", Title: "Top"},
			{Min: 40, Level: "low", Title: "Middle"},
			{Min: 0, Level: "low", Title: "Start"},
		},
	}

	idx := rule.Compute(map[CategoryID]int{catA: 80, catB: 70, catC: 61})
	assert.Equal(t, 70, idx.Score)
	assert.Equal(t, "Top", idx.Title)

	idx = rule.Compute(map[CategoryID]int{catA: 40, catB: 40, catC: 41})
	assert.Equal(t, 40, idx.Score)
	assert.Equal(t, "Middle", idx.Title)

	idx = rule.Compute(map[CategoryID]int{})
	assert.Equal(t, 0, idx.Score)
	assert.Equal(t, "Start", idx.Title)
}
