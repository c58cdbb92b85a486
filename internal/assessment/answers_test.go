package assessment

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	bank, _ := fiveByTwo()

	set, issues := Collect(bank, []Answer{
		{QuestionID: "q1", Value: Number(2)},
		{QuestionID: "zz", Value: Number(5)},
		{QuestionID: "q1", Value: Number(4)},
		{QuestionID: "q2", Value: Number(3)},
	})

	require.Len(t, issues, 1)
	assert.Equal(t, IssueUnknownQuestion, issues[0].Kind)
	assert.Equal(t, "zz", issues[0].QuestionID)

	assert.Equal(t, 2, set.Len())
	v, ok := set.Get("q1")
	require.True(t, ok)
	assert.True(t, v.Equal(Number(4)), "last write wins")
	assert.False(t, set.Complete())
	assert.Equal(t, "2/10 answered", set.String())
}

func TestAnswerSet_SetAndClear(t *testing.T) {
	bank, _ := fiveByTwo()
	set := NewAnswerSet(bank)

	assert.False(t, set.Set("nope", Number(1)))
	assert.True(t, set.Set("q3", Number(1)))
	assert.True(t, set.Set("q3", Value{}))
	assert.False(t, set.Set("q3", Value{}))
	assert.Equal(t, 0, set.Len())
}

func TestAnswerSet_CompleteAndOrdered(t *testing.T) {
	bank, _ := fiveByTwo()
	answers := allRated(bank, 3)
	// reverse to check the set reports bank order
	for i, j := 0, len(answers)-1; i < j; i, j = i+1, j-1 {
		answers[i], answers[j] = answers[j], answers[i]
	}

	set, issues := Collect(bank, answers)
	assert.Empty(t, issues)
	assert.True(t, set.Complete())
	assert.Equal(t, "q1", set.Answers()[0].QuestionID)
	assert.Equal(t, "q10", set.Answers()[9].QuestionID)
}

func TestValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Value
	}{
		{name: "number", input: `4`, expected: Number(4)},
		{name: "text", input: `"Car"`, expected: Text("Car")},
		{name: "list", input: `["Doctor","Engineer"]`, expected: List("Doctor", "Engineer")},
		{name: "numeric list", input: `[32, "30"]`, expected: List("32", "30")},
		{name: "null", input: `null`, expected: Value{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Value
			require.NoError(t, json.Unmarshal([]byte(tt.input), &v))
			assert.True(t, tt.expected.Equal(v), "got %s", v)
		})
	}
}

func TestValue_UnmarshalJSONUnsupportedShapes(t *testing.T) {
	for _, payload := range []string{`{"a":1}`, `true`, `false`, `[{"a":1}]`, `["a",null]`, `[true]`} {
		t.Run(payload, func(t *testing.T) {
			var v Value
			require.NoError(t, json.Unmarshal([]byte(payload), &v))
			assert.False(t, v.IsValid())
			assert.False(t, v.IsZero())
			_, ok := v.Number()
			assert.False(t, ok)
			_, ok = v.Option()
			assert.False(t, ok)
			assert.Equal(t, payload, v.String())
		})
	}

	var v Value
	require.NoError(t, json.Unmarshal([]byte(`null`), &v))
	assert.True(t, v.IsZero())
	assert.True(t, v.IsValid())
}

func TestValue_Option(t *testing.T) {
	opt, ok := Number(32).Option()
	assert.True(t, ok)
	assert.Equal(t, "32", opt)

	opt, ok = List("Circle").Option()
	assert.True(t, ok)
	assert.Equal(t, "Circle", opt)

	_, ok = List("a", "b").Option()
	assert.False(t, ok)
}

func TestAnswer_DecodesRequestShape(t *testing.T) {
	var answers []Answer
	payload := `[{"questionId":"q1","value":5},{"questionId":"cv29","value":["Doctor"]}]`
	require.NoError(t, json.Unmarshal([]byte(payload), &answers))

	require.Len(t, answers, 2)
	assert.True(t, answers[0].Value.Equal(Number(5)))
	assert.Equal(t, []string{"Doctor"}, answers[1].Value.Items())
}
