package assessment

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, opts ...EngineOption) *Engine {
	t.Helper()
	e, err := NewEngine(testQuestionnaire(), opts...)
	require.NoError(t, err)
	return e
}

func TestEngine_AllFives(t *testing.T) {
	e := newTestEngine(t)
	bank, _ := fiveByTwo()

	res := e.Assess(allRated(bank, 5))

	require.Len(t, res.Categories, 5)
	for _, cr := range res.Categories {
		assert.Equal(t, 100, cr.Score)
		assert.Equal(t, TierPrimary, cr.Tier)
		assert.Equal(t, "Excellent", cr.Band)
		assert.Equal(t, "high "+string(cr.ID), cr.Description)
		assert.Equal(t, []string{"strong answers"}, cr.Reasons)
	}
	assert.Len(t, res.Primary, 5)
	assert.Empty(t, res.Secondary)
	assert.Empty(t, res.Tertiary)
	assert.Equal(t, "Strong in Type a, Type b, Type c, Type d, Type e.", res.OverallSummary)

	assert.Equal(t, []string{"P", "Q", "R"}, res.Paths.Primary)
	assert.Empty(t, res.Paths.Secondary)

	idx, ok := res.Index("overall")
	require.True(t, ok)
	assert.Equal(t, 100, idx.Score)
	assert.Equal(t, "high", idx.Level)

	assert.Equal(t, []string{"Career a1", "Shared", "Career b1", "Career c1", "Career d1", "Career e1"}, res.Suggestions)
	assert.Equal(t, 10, res.Answered)
	assert.Equal(t, 11, res.Total)
	assert.False(t, res.Complete)
}

func TestEngine_AllOnesFallsBackToBalanced(t *testing.T) {
	e := newTestEngine(t)
	bank, _ := fiveByTwo()

	res := e.Assess(allRated(bank, 1))

	assert.Empty(t, res.Primary)
	assert.Empty(t, res.Secondary)
	assert.Len(t, res.Tertiary, 5)
	assert.Equal(t, "A balanced profile.", res.OverallSummary)
	for _, cr := range res.Categories {
		assert.Equal(t, "low "+string(cr.ID), cr.Description)
		assert.Empty(t, cr.Reasons)
		assert.Equal(t, "Potential", cr.Band)
	}
	assert.Equal(t, []string{"Explore several paths"}, res.Recommendations.Immediate)
	assert.Empty(t, res.Paths.Primary)
	assert.Equal(t, []string{"P", "Q", "R"}, res.Paths.Secondary)
	assert.Nil(t, res.Suggestions)
}

func TestEngine_EmptyAnswers(t *testing.T) {
	e := newTestEngine(t)

	res := e.Assess(nil)

	require.Len(t, res.Categories, 5)
	for _, cr := range res.Categories {
		assert.Equal(t, 0, cr.Score)
		assert.Equal(t, 0, cr.Answered)
		assert.NotEmpty(t, cr.Description)
	}
	assert.Equal(t, "A balanced profile.", res.OverallSummary)
	// unanswered categories get no improvement advice
	assert.Equal(t, []string{"Keep learning"}, res.Recommendations.Growth)
	assert.Equal(t, []string{"Research your interests"}, res.Recommendations.LongTerm)

	_, err := json.Marshal(res)
	assert.NoError(t, err)
}

func TestEngine_DecisionPaths(t *testing.T) {
	e := newTestEngine(t)

	res := e.Assess(answersFor(map[string]float64{
		"q1": 5, "q2": 4, // a = 90
		"q3": 4, "q4": 4, // b = 80
		"q5": 1, "q6": 2, // c = 30
	}))

	require.NotNil(t, res.Paths)
	assert.Equal(t, []string{"P"}, res.Paths.Primary)
	assert.Equal(t, []string{"Q", "R"}, res.Paths.Secondary)
	assert.Equal(t, []string{"Focus on Type a, Type b", "Consider P"}, res.Recommendations.Immediate)
	assert.Equal(t, []string{
		"Explore Type a like bold and curious",
		"Explore Type b like bold and curious",
		"Improve type c",
		"Keep learning",
	}, res.Recommendations.Growth)
}

func TestEngine_Selection(t *testing.T) {
	e := newTestEngine(t)

	res := e.Assess([]Answer{{QuestionID: "pick", Value: List("Pilot", "Chef", "Nurse", "Writer")}})

	sel, ok := res.Selection("careers")
	require.True(t, ok)
	assert.Equal(t, []string{"Pilot", "Chef"}, sel.Primary)
	assert.Equal(t, []string{"Nurse", "Writer"}, sel.Secondary)
	assert.Equal(t, []string{"Research Pilot, Chef, Nurse"}, res.Recommendations.LongTerm)
}

func TestEngine_Idempotent(t *testing.T) {
	e := newTestEngine(t)
	answers := answersFor(map[string]float64{"q1": 5, "q2": 5, "q3": 3, "q7": 4})

	first := e.Assess(answers)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, e.Assess(answers))
	}
}

func TestEngine_ResultDoesNotAliasConfig(t *testing.T) {
	e := newTestEngine(t)
	bank, _ := fiveByTwo()

	res := e.Assess(allRated(bank, 5))
	res.Categories[0].Characteristics[0] = "mutated"
	res.Resources[0].Title = "mutated"

	again := e.Assess(allRated(bank, 5))
	assert.Equal(t, "bold", again.Categories[0].Characteristics[0])
	assert.Equal(t, "Guide", again.Resources[0].Title)
}

func TestEngine_LogsIssues(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	e := newTestEngine(t, WithLogger(logger))

	res, issues := e.Evaluate([]Answer{{QuestionID: "q1", Value: Number(42)}})
	require.Len(t, issues, 1)
	a := res.Categories[0]
	assert.Equal(t, 60, a.Score)
	assert.Zero(t, buf.Len(), "Evaluate does not log")

	e.Assess([]Answer{{QuestionID: "q1", Value: Number(42)}, {QuestionID: "x", Value: Number(1)}})
	assert.Contains(t, buf.String(), `"question_id":"q1"`)
	assert.Contains(t, buf.String(), `"kind":"unknown_question"`)
}

func TestEngine_Observer(t *testing.T) {
	var calls int
	var seen []IssueKind
	e := newTestEngine(t, WithObserver(func(res Result, issues []Issue) {
		calls++
		assert.Equal(t, "test", res.Questionnaire)
		assert.False(t, res.Complete)
		for _, is := range issues {
			seen = append(seen, is.Kind)
		}
	}))

	e.Assess([]Answer{{QuestionID: "q1", Value: Text("lots")}})
	e.Assess(nil)

	assert.Equal(t, 2, calls)
	assert.Equal(t, []IssueKind{IssueWrongType}, seen)

	_, _ = e.Evaluate([]Answer{{QuestionID: "q1", Value: Text("lots")}})
	assert.Equal(t, 2, calls, "Evaluate does not notify")
}

func TestEngine_Profiles(t *testing.T) {
	q := testQuestionnaire()
	q.Profiles = []Scale{{
		ID:         "extra",
		Title:      "Extra",
		Categories: []Category{{ID: "x", Label: "Extra X"}},
		Map:        CategoryMap{"q1": {"x"}, "q10": {"x"}},
		Summary:    CombinationTemplate{Text: "Extra: {labels}", Fallback: "No extra strength"},
	}}
	q.Decisions = append(q.Decisions, DecisionRule{
		Outcome: "X",
		When:    []Condition{{Category: "x", Min: 70}, {Category: catA, Min: 50}},
	})
	e, err := NewEngine(q)
	require.NoError(t, err)

	res := e.Assess(answersFor(map[string]float64{"q1": 5, "q10": 4}))

	p, ok := res.Profile("extra")
	require.True(t, ok)
	require.Len(t, p.Categories, 1)
	assert.Equal(t, 90, p.Categories[0].Score)
	assert.Equal(t, "Extra: Extra X", p.Summary)
	assert.Contains(t, res.Paths.Primary, "X")
}

func TestEngine_ProfileWithoutSummary(t *testing.T) {
	q := testQuestionnaire()
	q.Profiles = []Scale{{
		ID:         "plain",
		Title:      "Plain",
		Categories: []Category{{ID: "x", Label: "Plain X"}},
		Map:        CategoryMap{"q1": {"x"}},
	}}
	e, err := NewEngine(q)
	require.NoError(t, err)

	res := e.Assess(answersFor(map[string]float64{"q1": 5}))
	p, ok := res.Profile("plain")
	require.True(t, ok)
	assert.Empty(t, p.Summary)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"summary"`)
}

func TestMustEngine_PanicsOnInvalidConfig(t *testing.T) {
	q := testQuestionnaire()
	q.Scale.Summary.Fallback = ""

	assert.Panics(t, func() { MustEngine(q) })
}
