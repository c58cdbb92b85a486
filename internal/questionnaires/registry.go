package questionnaires

import (
	"fmt"

	"github.com/ZanzyTHEbar/career-compass/internal/assessment"
)

// Builtin returns every compiled-in questionnaire in display order
func Builtin() []assessment.Questionnaire {
	return []assessment.Questionnaire{RIASEC(), EQ(), Clusters(), Vision()}
}

// Summary describes a questionnaire without its content
type Summary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	QuestionCount int    `json:"question_count"`
}

// Registry holds one engine per questionnaire. It is read-only after
// construction.
type Registry struct {
	engines map[string]*assessment.Engine
	order   []string
}

// NewRegistry validates every questionnaire and builds its engine. The
// options apply to every engine.
func NewRegistry(qs []assessment.Questionnaire, opts ...assessment.EngineOption) (*Registry, error) {
	r := &Registry{engines: make(map[string]*assessment.Engine, len(qs))}
	for _, q := range qs {
		if _, dup := r.engines[q.ID]; dup {
			return nil, fmt.Errorf("questionnaire %q registered twice", q.ID)
		}
		e, err := assessment.NewEngine(q, opts...)
		if err != nil {
			return nil, err
		}
		r.add(e)
	}
	return r, nil
}

// Default is the registry of built-in questionnaires. It panics on invalid
// configuration.
func Default(opts ...assessment.EngineOption) *Registry {
	qs := Builtin()
	r := &Registry{engines: make(map[string]*assessment.Engine, len(qs))}
	for _, q := range qs {
		r.add(assessment.MustEngine(q, opts...))
	}
	return r
}

func (r *Registry) add(e *assessment.Engine) {
	r.engines[e.ID()] = e
	r.order = append(r.order, e.ID())
}

// Get returns the engine for a questionnaire id
func (r *Registry) Get(id string) (*assessment.Engine, bool) {
	e, ok := r.engines[id]
	return e, ok
}

func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

func (r *Registry) List() []Summary {
	out := make([]Summary, 0, len(r.order))
	for _, id := range r.order {
		q := r.engines[id].Questionnaire()
		out = append(out, Summary{
			ID:            q.ID,
			Title:         q.Title,
			Description:   q.Description,
			QuestionCount: q.Bank.Len(),
		})
	}
	return out
}
