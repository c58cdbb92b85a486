package assessment

// SelectionRule echoes the answer of a choice question into the result
type SelectionRule struct {
	ID         string
	Label      string
	QuestionID string
	// Split is how many leading items count as primary. Zero keeps all.
	Split   int
	Default string
}

type Selection struct {
	ID        string   `json:"id"`
	Label     string   `json:"label"`
	Primary   []string `json:"primary"`
	Secondary []string `json:"secondary"`
}

// Items returns primary then secondary items
func (s Selection) Items() []string {
	out := make([]string, 0, len(s.Primary)+len(s.Secondary))
	out = append(out, s.Primary...)
	return append(out, s.Secondary...)
}

func (r SelectionRule) apply(answers *AnswerSet) Selection {
	sel := Selection{ID: r.ID, Label: r.Label, Primary: []string{}, Secondary: []string{}}

	var items []string
	if v, ok := answers.Get(r.QuestionID); ok {
		items = v.Items()
	}
	if len(items) == 0 && r.Default != "" {
		items = []string{r.Default}
	}

	split := r.Split
	if split <= 0 || split > len(items) {
		split = len(items)
	}
	sel.Primary = append(sel.Primary, items[:split]...)
	sel.Secondary = append(sel.Secondary, items[split:]...)
	return sel
}
