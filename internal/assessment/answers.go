package assessment

import "fmt"

// Answer is one response supplied by the caller
type Answer struct {
	QuestionID string `json:"questionId" binding:"required"`
	Value      Value  `json:"value"`
}

// AnswerSet holds at most one answer per bank question. Later writes for the
// same question replace earlier ones; answers to questions outside the bank
// are dropped.
type AnswerSet struct {
	bank   Bank
	values map[string]Value
}

func NewAnswerSet(bank Bank) *AnswerSet {
	return &AnswerSet{bank: bank, values: make(map[string]Value, bank.Len())}
}

// Collect builds an answer set from an ordered answer list. Orphan answers are
// reported as issues instead of failing.
func Collect(bank Bank, answers []Answer) (*AnswerSet, []Issue) {
	set := NewAnswerSet(bank)
	var issues []Issue
	for _, a := range answers {
		if !set.Set(a.QuestionID, a.Value) && !bank.Has(a.QuestionID) {
			issues = append(issues, Issue{
				Kind:       IssueUnknownQuestion,
				QuestionID: a.QuestionID,
				Detail:     "question is not part of this questionnaire",
			})
		}
	}
	return set, issues
}

// Set records or replaces the answer for a question. A zero value clears it.
// It reports whether the set changed.
func (s *AnswerSet) Set(questionID string, v Value) bool {
	if !s.bank.Has(questionID) {
		return false
	}
	if v.IsZero() {
		if _, ok := s.values[questionID]; ok {
			delete(s.values, questionID)
			return true
		}
		return false
	}
	s.values[questionID] = v
	return true
}

func (s *AnswerSet) Get(questionID string) (Value, bool) {
	v, ok := s.values[questionID]
	return v, ok
}

// Len is the number of distinct answered questions
func (s *AnswerSet) Len() int { return len(s.values) }

// Complete reports whether every bank question has an answer
func (s *AnswerSet) Complete() bool { return len(s.values) == s.bank.Len() }

// Answers returns the set in bank order
func (s *AnswerSet) Answers() []Answer {
	out := make([]Answer, 0, len(s.values))
	for _, q := range s.bank.questions {
		if v, ok := s.values[q.ID]; ok {
			out = append(out, Answer{QuestionID: q.ID, Value: v})
		}
	}
	return out
}

func (s *AnswerSet) String() string {
	return fmt.Sprintf("%d/%d answered", s.Len(), s.bank.Len())
}
