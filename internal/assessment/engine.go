package assessment

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
)

// Resource is an external reference attached to every result of a questionnaire
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Questionnaire is the complete static configuration of one questionnaire
// variant. Variants differ only in this data.
type Questionnaire struct {
	ID          string
	Title       string
	Description string
	Bank        Bank

	// Scale is the main profile reported at the top level of a Result
	Scale Scale
	// Profiles are additional scales over the same bank
	Profiles []Scale

	Plan         RecommendationPlan
	Decisions    []DecisionRule
	Indices      []IndexRule
	SummaryIndex string
	Selections   []SelectionRule
	Resources    []Resource
}

// CategoryResult is one scored category with its narrative
type CategoryResult struct {
	Category
	Score    int    `json:"score"`
	Tier     Tier   `json:"tier"`
	Band     string `json:"band,omitempty"`
	Answered int    `json:"answered"`
	Narrative
}

// Profile is the outcome of a secondary scale
type Profile struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Categories  []CategoryResult `json:"categories"`
	Primary     []Category       `json:"primary"`
	Secondary   []Category       `json:"secondary"`
	Tertiary    []Category       `json:"tertiary"`
	Summary     string           `json:"summary,omitempty"`
	Suggestions []string         `json:"suggestions,omitempty"`
}

// Result is the immutable outcome of one questionnaire attempt
type Result struct {
	Questionnaire   string           `json:"questionnaire"`
	Title           string           `json:"title"`
	Categories      []CategoryResult `json:"categories"`
	Primary         []Category       `json:"primary"`
	Secondary       []Category       `json:"secondary"`
	Tertiary        []Category       `json:"tertiary"`
	OverallSummary  string           `json:"overall_summary"`
	Recommendations Recommendations  `json:"recommendations"`
	Suggestions     []string         `json:"suggestions,omitempty"`
	Indices         []Index          `json:"indices,omitempty"`
	Paths           *Paths           `json:"paths,omitempty"`
	Profiles        []Profile        `json:"profiles,omitempty"`
	Selections      []Selection      `json:"selections,omitempty"`
	Resources       []Resource       `json:"resources,omitempty"`
	Answered        int              `json:"answered"`
	Total           int              `json:"total"`
	Complete        bool             `json:"complete"`
}

// Index returns the derived index with the given id
func (r Result) Index(id string) (Index, bool) {
	for _, idx := range r.Indices {
		if idx.ID == id {
			return idx, true
		}
	}
	return Index{}, false
}

// Profile returns the sub-profile with the given id
func (r Result) Profile(id string) (Profile, bool) {
	for _, p := range r.Profiles {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}

// Selection returns the echoed selection with the given id
func (r Result) Selection(id string) (Selection, bool) {
	for _, s := range r.Selections {
		if s.ID == id {
			return s, true
		}
	}
	return Selection{}, false
}

// Engine assesses answer sets against one validated questionnaire. It holds
// no mutable state and is safe for concurrent use.
type Engine struct {
	q        Questionnaire
	logger   *slog.Logger
	observer func(res Result, issues []Issue)
}

type EngineOption func(*Engine)

// WithLogger sets the logger used for answer diagnostics
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithObserver registers a callback that Assess invokes with every result and
// the issues recovered while producing it
func WithObserver(fn func(res Result, issues []Issue)) EngineOption {
	return func(e *Engine) {
		e.observer = fn
	}
}

// NewEngine validates the questionnaire and builds an engine for it
func NewEngine(q Questionnaire, opts ...EngineOption) (*Engine, error) {
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("questionnaire %q: %w", q.ID, err)
	}
	e := &Engine{
		q:      q,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// MustEngine is NewEngine for compiled-in configuration. An invalid
// questionnaire is a programming error.
func MustEngine(q Questionnaire, opts ...EngineOption) *Engine {
	e, err := NewEngine(q, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Engine) Questionnaire() Questionnaire { return e.q }

func (e *Engine) ID() string { return e.q.ID }

// Assess scores an answer list and logs any recovered issues
func (e *Engine) Assess(answers []Answer) Result {
	res, issues := e.Evaluate(answers)
	for _, is := range issues {
		e.logger.Warn("Answer issue recovered",
			"questionnaire", e.q.ID,
			"question_id", is.QuestionID,
			"kind", string(is.Kind),
			"detail", is.Detail,
		)
	}
	if e.observer != nil {
		e.observer(res, issues)
	}
	return res
}

// Evaluate is the pure form of Assess: it returns the result together with
// the issues that were recovered while scoring.
func (e *Engine) Evaluate(answers []Answer) (Result, []Issue) {
	q := e.q
	set, issues := Collect(q.Bank, answers)

	main, mainPart, scaleIssues := scoreScale(q.Scale, set, q.Bank)
	issues = append(issues, scaleIssues...)

	flat := make(map[CategoryID]int)
	byScale := map[string][]CategoryResult{"": main, q.Scale.ID: main}
	for _, cr := range main {
		flat[cr.ID] = cr.Score
	}

	profiles := make([]Profile, 0, len(q.Profiles))
	for _, s := range q.Profiles {
		results, part, pIssues := scoreScale(s, set, q.Bank)
		// the same answer is reported once even when several scales read it
		for _, is := range pIssues {
			if !slices.Contains(issues, is) {
				issues = append(issues, is)
			}
		}
		for _, cr := range results {
			flat[cr.ID] = cr.Score
		}
		byScale[s.ID] = results
		profiles = append(profiles, Profile{
			ID:          s.ID,
			Title:       s.Title,
			Categories:  results,
			Primary:     categories(part.Primary),
			Secondary:   categories(part.Secondary),
			Tertiary:    categories(part.Tertiary),
			Summary:     SynthesizeCombination(s.Summary, categories(part.Primary)),
			Suggestions: suggest(s, results, part),
		})
	}

	res := Result{
		Questionnaire: q.ID,
		Title:         q.Title,
		Categories:    main,
		Primary:       categories(mainPart.Primary),
		Secondary:     categories(mainPart.Secondary),
		Tertiary:      categories(mainPart.Tertiary),
		Suggestions:   suggest(q.Scale, main, mainPart),
		Answered:      set.Len(),
		Total:         q.Bank.Len(),
		Complete:      set.Complete(),
	}
	if len(profiles) > 0 {
		res.Profiles = profiles
	}

	for _, rule := range q.Indices {
		res.Indices = append(res.Indices, rule.Compute(flat))
	}
	if len(q.Decisions) > 0 {
		paths := Decide(q.Decisions, flat)
		res.Paths = &paths
	}
	selections := make(map[string]Selection, len(q.Selections))
	for _, rule := range q.Selections {
		sel := rule.apply(set)
		selections[sel.ID] = sel
		res.Selections = append(res.Selections, sel)
	}

	res.OverallSummary = SynthesizeCombination(q.Scale.Summary, res.Primary)
	if idx, ok := res.Index(q.SummaryIndex); ok && idx.Description != "" {
		res.OverallSummary = idx.Description
	}

	primary := make([]CategoryResult, 0, len(mainPart.Primary))
	for _, cs := range mainPart.Primary {
		primary = append(primary, findResult(main, cs.Category.ID))
	}
	res.Recommendations = q.Plan.expand(planInput{
		primary:    primary,
		scales:     byScale,
		paths:      res.Paths,
		selections: selections,
	})
	if len(q.Resources) > 0 {
		res.Resources = slices.Clone(q.Resources)
	}
	return res, issues
}

// scoreScale scores, classifies and narrates one scale. Results keep the
// declared category order.
func scoreScale(s Scale, set *AnswerSet, bank Bank) ([]CategoryResult, Partitioned, []Issue) {
	scores, issues := Score(set, s, bank)
	out := make([]CategoryResult, len(scores))
	for i, cs := range scores {
		tier := Classify(cs.Score)
		n := Synthesize(s.Narratives, cs.Category, cs.Score, tier)
		if s.Signal != nil && cs.Answered > 0 && cs.Peak >= s.Signal.MinValue {
			n.Reasons = append([]string{s.Signal.Reason}, n.Reasons...)
		}
		out[i] = CategoryResult{
			Category:  cs.Category,
			Score:     cs.Score,
			Tier:      tier,
			Band:      BandLabel(s.Bands, cs.Score),
			Answered:  cs.Answered,
			Narrative: n,
		}
	}
	return out, Partition(scores), issues
}

// suggest collects the leading careers of every primary category without
// duplicates, in rank order.
func suggest(s Scale, results []CategoryResult, part Partitioned) []string {
	if s.SuggestPerCategory <= 0 || len(part.Primary) == 0 {
		return nil
	}
	var out []string
	for _, cs := range part.Primary {
		careers := findResult(results, cs.Category.ID).Careers
		if len(careers) > s.SuggestPerCategory {
			careers = careers[:s.SuggestPerCategory]
		}
		for _, c := range careers {
			if !slices.Contains(out, c.Title) {
				out = append(out, c.Title)
			}
		}
	}
	return out
}

func findResult(results []CategoryResult, id CategoryID) CategoryResult {
	for _, cr := range results {
		if cr.ID == id {
			return cr
		}
	}
	return CategoryResult{}
}
