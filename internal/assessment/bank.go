package assessment

import "slices"

const (
	// DefaultMaxValue is the highest value a single answer can contribute
	DefaultMaxValue = 5
	// DefaultNeutralValue replaces answers that cannot be interpreted
	DefaultNeutralValue = 3
)

// Bank is the ordered, read-only question set of one questionnaire
type Bank struct {
	questions  []Question
	index      map[string]int
	duplicates []string
	maxValue   int
	neutral    float64
}

// BankOption customises a Bank at construction time
type BankOption func(*Bank)

// WithValueRange sets the per-question maximum and the neutral fallback value
func WithValueRange(maxValue int, neutral float64) BankOption {
	return func(b *Bank) {
		b.maxValue = maxValue
		b.neutral = neutral
	}
}

// NewBank indexes the questions. Duplicate ids keep their first position and
// are reported by Validate.
func NewBank(questions []Question, opts ...BankOption) Bank {
	b := Bank{
		questions: slices.Clone(questions),
		index:     make(map[string]int, len(questions)),
		maxValue:  DefaultMaxValue,
		neutral:   DefaultNeutralValue,
	}
	for _, opt := range opts {
		opt(&b)
	}
	for i, q := range b.questions {
		if _, dup := b.index[q.ID]; dup {
			b.duplicates = append(b.duplicates, q.ID)
			continue
		}
		b.index[q.ID] = i
	}
	return b
}

// Questions returns a copy of the questions in bank order
func (b Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	for i, q := range b.questions {
		q.Options = slices.Clone(q.Options)
		q.Values = nil
		out[i] = q
	}
	return out
}

func (b Bank) Question(id string) (Question, bool) {
	i, ok := b.index[id]
	if !ok {
		return Question{}, false
	}
	return b.questions[i], true
}

func (b Bank) Has(id string) bool {
	_, ok := b.index[id]
	return ok
}

// Len is the number of distinct questions
func (b Bank) Len() int { return len(b.index) }

func (b Bank) MaxValue() int { return b.maxValue }

func (b Bank) NeutralValue() float64 { return b.neutral }

// CategoryMap maps a question id to the categories it feeds. A question
// feeding several categories contributes its full value to each.
type CategoryMap map[string][]CategoryID

// QuestionsFor lists the questions mapped to a category, in bank order
func (m CategoryMap) QuestionsFor(bank Bank, id CategoryID) []string {
	var out []string
	for _, q := range bank.questions {
		if slices.Contains(m[q.ID], id) {
			out = append(out, q.ID)
		}
	}
	return out
}
