package assessment

// Scale is one scored profile over a question bank: its closed category set,
// the category map feeding it and the rule tables that turn its scores into
// narrative.
type Scale struct {
	ID         string
	Title      string
	Categories []Category
	Map        CategoryMap
	Narratives RuleTable
	Summary    CombinationTemplate
	Bands      []Band

	// Signal adds a reason to categories where a single answer reached MinValue
	Signal *Signal

	// SuggestPerCategory is how many careers each primary category lends to
	// the suggestion list. Zero disables suggestions for the scale.
	SuggestPerCategory int
}

type Signal struct {
	MinValue float64
	Reason   string
}

// Category returns the declared category with the given id
func (s Scale) Category(id CategoryID) (Category, bool) {
	for _, c := range s.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryIDs lists the declared ids in order
func (s Scale) CategoryIDs() []CategoryID {
	out := make([]CategoryID, len(s.Categories))
	for i, c := range s.Categories {
		out[i] = c.ID
	}
	return out
}
