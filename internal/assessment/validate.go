package assessment

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrDuplicateQuestion  = errors.New("duplicate question id")
	ErrUnknownQuestion    = errors.New("unknown question")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrEmptyCategory      = errors.New("category has no questions")
	ErrMissingValues      = errors.New("choice question has no value table")
	ErrMissingNarrative   = errors.New("rule table is missing a category")
	ErrMissingFallback    = errors.New("template has no fallback")
	ErrDuplicateCategory  = errors.New("duplicate category id")
	ErrInvalidRule        = errors.New("invalid rule")
	ErrMissingSummary     = errors.New("questionnaire has no summary source")
	ErrInvalidValueOption = errors.New("value table key is not an option")
)

// Validate checks the static configuration. Every problem found is reported,
// joined into one error.
func (q Questionnaire) Validate() error {
	var errs []error
	add := func(err error, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...)))
	}

	if q.ID == "" {
		add(ErrInvalidRule, "questionnaire id is empty")
	}
	for _, id := range q.Bank.duplicates {
		add(ErrDuplicateQuestion, "%s", id)
	}
	for _, question := range q.Bank.questions {
		if question.ID == "" {
			add(ErrUnknownQuestion, "question with empty id")
		}
		if question.Modality == ModalityScale || len(question.Options) == 0 {
			continue
		}
		for opt := range question.Values {
			if !slices.Contains(question.Options, opt) {
				add(ErrInvalidValueOption, "%s: %q", question.ID, opt)
			}
		}
	}

	seen := make(map[CategoryID]string)
	scales := append([]Scale{q.Scale}, q.Profiles...)
	scaleIDs := map[string]bool{"": true}
	for _, s := range scales {
		scaleIDs[s.ID] = true
		errs = append(errs, s.validate(q.Bank, seen)...)
	}
	if q.Scale.Summary.Text == "" && q.SummaryIndex == "" {
		add(ErrMissingSummary, "%s", q.ID)
	}

	for _, r := range q.Decisions {
		if r.Outcome == "" || len(r.When) == 0 {
			add(ErrInvalidRule, "decision %q has no outcome or conditions", r.Outcome)
		}
		for _, c := range r.When {
			if _, ok := seen[c.Category]; !ok {
				add(ErrUnknownCategory, "decision %q references %s", r.Outcome, c.Category)
			}
		}
	}

	indexIDs := make(map[string]bool)
	for _, r := range q.Indices {
		if indexIDs[r.ID] {
			add(ErrInvalidRule, "duplicate index %q", r.ID)
		}
		indexIDs[r.ID] = true
		if len(r.Categories) == 0 {
			add(ErrInvalidRule, "index %q has no categories", r.ID)
		}
		for _, id := range r.Categories {
			if _, ok := seen[id]; !ok {
				add(ErrUnknownCategory, "index %q references %s", r.ID, id)
			}
		}
	}
	if q.SummaryIndex != "" && !indexIDs[q.SummaryIndex] {
		add(ErrInvalidRule, "summary index %q is not declared", q.SummaryIndex)
	}

	selectionIDs := make(map[string]bool)
	for _, r := range q.Selections {
		selectionIDs[r.ID] = true
		if !q.Bank.Has(r.QuestionID) {
			add(ErrUnknownQuestion, "selection %q reads %s", r.ID, r.QuestionID)
		}
	}

	for _, group := range [][]RecommendationRule{q.Plan.Immediate, q.Plan.Growth, q.Plan.LongTerm} {
		for _, r := range group {
			switch r.Kind {
			case RuleStatic:
				if len(r.Items) == 0 {
					add(ErrInvalidRule, "static recommendation without items")
				}
			case RulePrimarySet, RuleEachPrimary:
				if r.Text == "" {
					add(ErrInvalidRule, "recommendation rule without text")
				}
			case RuleEachBelow:
				if !scaleIDs[r.Scale] {
					add(ErrInvalidRule, "recommendation reads unknown scale %q", r.Scale)
				}
			case RulePaths:
				if len(q.Decisions) == 0 {
					add(ErrInvalidRule, "path recommendation without decision rules")
				}
				if r.Fallback == "" {
					add(ErrMissingFallback, "path recommendation %q", r.Text)
				}
			case RuleSelection:
				if !selectionIDs[r.Selection] {
					add(ErrInvalidRule, "recommendation reads unknown selection %q", r.Selection)
				}
				if r.Fallback == "" {
					add(ErrMissingFallback, "selection recommendation %q", r.Text)
				}
			default:
				add(ErrInvalidRule, "unknown recommendation kind %d", r.Kind)
			}
		}
	}

	return errors.Join(errs...)
}

// validate checks one scale and records its categories in seen
func (s Scale) validate(bank Bank, seen map[CategoryID]string) []error {
	var errs []error
	add := func(err error, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: scale %q: %s", err, s.ID, fmt.Sprintf(format, args...)))
	}

	if len(s.Categories) == 0 {
		add(ErrInvalidRule, "no categories")
	}
	for _, c := range s.Categories {
		if owner, dup := seen[c.ID]; dup {
			add(ErrDuplicateCategory, "%s already declared by scale %q", c.ID, owner)
			continue
		}
		seen[c.ID] = s.ID
	}

	for qid, targets := range s.Map {
		question, ok := bank.Question(qid)
		if !ok {
			add(ErrUnknownQuestion, "%s", qid)
		}
		if ok && question.Modality != ModalityScale && len(question.Values) == 0 {
			add(ErrMissingValues, "%s", qid)
		}
		for _, id := range targets {
			if _, ok := s.Category(id); !ok {
				add(ErrUnknownCategory, "%s maps to %s", qid, id)
			}
		}
	}
	for _, c := range s.Categories {
		if len(s.Map.QuestionsFor(bank, c.ID)) == 0 {
			add(ErrEmptyCategory, "%s", c.ID)
		}
	}

	if len(s.Narratives) > 0 {
		for _, c := range s.Categories {
			tn, ok := s.Narratives[c.ID]
			if !ok {
				add(ErrMissingNarrative, "%s", c.ID)
				continue
			}
			for _, n := range []Narrative{tn.Primary, tn.Secondary, tn.Tertiary} {
				if n.Description == "" {
					add(ErrMissingNarrative, "%s has an empty description", c.ID)
					break
				}
			}
		}
		for id := range s.Narratives {
			if _, ok := s.Category(id); !ok {
				add(ErrUnknownCategory, "narrative for %s", id)
			}
		}
	}

	if s.Summary.Text != "" && s.Summary.Fallback == "" {
		add(ErrMissingFallback, "summary")
	}
	return errs
}
