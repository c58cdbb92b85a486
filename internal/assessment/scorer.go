package assessment

import (
	"fmt"
	"math"
)

// CategoryScore is the outcome of scoring one category
type CategoryScore struct {
	Category Category
	Raw      float64 // sum of contributions
	Answered int     // mapped questions that contributed
	Peak     float64 // highest single contribution
	Score    int     // normalized percentage in [0,100]
}

// Scores keeps category order as declared by the scale
type Scores []CategoryScore

func (s Scores) Get(id CategoryID) (CategoryScore, bool) {
	for _, cs := range s {
		if cs.Category.ID == id {
			return cs, true
		}
	}
	return CategoryScore{}, false
}

// Score maps an answer set onto every category of the scale. Unanswered
// questions do not contribute; a category without contributions scores 0.
// Uninterpretable answers contribute the bank's neutral value and are
// reported as issues.
func Score(answers *AnswerSet, scale Scale, bank Bank) (Scores, []Issue) {
	acc := make(map[CategoryID]*CategoryScore, len(scale.Categories))
	out := make(Scores, len(scale.Categories))
	for i, c := range scale.Categories {
		out[i] = CategoryScore{Category: c}
		acc[c.ID] = &out[i]
	}

	var issues []Issue
	for _, q := range bank.questions {
		targets := scale.Map[q.ID]
		if len(targets) == 0 {
			continue
		}
		v, ok := answers.Get(q.ID)
		if !ok {
			continue
		}
		value, counted, qIssues := contribution(q, v, bank)
		issues = append(issues, qIssues...)
		if !counted {
			continue
		}
		for _, id := range targets {
			cs, known := acc[id]
			if !known {
				continue
			}
			cs.Raw += value
			cs.Answered++
			if value > cs.Peak {
				cs.Peak = value
			}
		}
	}

	for i := range out {
		out[i].Score = normalize(out[i].Raw, out[i].Answered, bank.maxValue)
	}
	return out, issues
}

// normalize converts a raw sum into a percentage of the attainable maximum
func normalize(raw float64, answered, maxValue int) int {
	if answered == 0 || maxValue <= 0 {
		return 0
	}
	pct := math.Round(raw / float64(maxValue*answered) * 100)
	if math.IsNaN(pct) {
		return 0
	}
	return int(clip(pct, 0, 100))
}

// contribution derives the numeric value an answer adds to its categories
func contribution(q Question, v Value, bank Bank) (float64, bool, []Issue) {
	if v.IsZero() {
		return 0, false, nil
	}
	if !v.IsValid() {
		return bank.neutral, true, []Issue{{
			Kind:       IssueWrongType,
			QuestionID: q.ID,
			Detail:     fmt.Sprintf("unsupported answer %s", v),
		}}
	}

	switch q.Modality {
	case ModalityScale:
		n, ok := v.Number()
		if !ok {
			return bank.neutral, true, []Issue{{
				Kind:       IssueWrongType,
				QuestionID: q.ID,
				Detail:     fmt.Sprintf("rating %s is not numeric", v),
			}}
		}
		if n < 1 || n > float64(bank.maxValue) {
			return bank.neutral, true, []Issue{{
				Kind:       IssueOutOfRange,
				QuestionID: q.ID,
				Detail:     fmt.Sprintf("rating %s outside 1..%d", v, bank.maxValue),
			}}
		}
		return n, true, nil

	case ModalitySingleChoice:
		opt, ok := v.Option()
		if !ok {
			return bank.neutral, true, []Issue{{
				Kind:       IssueWrongType,
				QuestionID: q.ID,
				Detail:     fmt.Sprintf("expected a single option, got %s", v),
			}}
		}
		value, issue := lookup(q, opt, bank)
		if issue != nil {
			return value, true, []Issue{*issue}
		}
		return value, true, nil

	case ModalityMultiChoice:
		items := v.Items()
		if len(items) == 0 {
			return 0, false, nil
		}
		var (
			sum    float64
			issues []Issue
		)
		for _, opt := range items {
			value, issue := lookup(q, opt, bank)
			if issue != nil {
				issues = append(issues, *issue)
			}
			sum += value
		}
		return sum / float64(len(items)), true, issues
	}

	return bank.neutral, true, []Issue{{
		Kind:       IssueWrongType,
		QuestionID: q.ID,
		Detail:     fmt.Sprintf("unsupported modality %s", q.Modality),
	}}
}

func lookup(q Question, option string, bank Bank) (float64, *Issue) {
	if value, ok := q.Values[option]; ok {
		return float64(value), nil
	}
	return bank.neutral, &Issue{
		Kind:       IssueUnknownOption,
		QuestionID: q.ID,
		Detail:     fmt.Sprintf("option %q has no score", option),
	}
}

func clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
