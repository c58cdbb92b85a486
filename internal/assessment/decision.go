package assessment

// Condition holds when a category score reaches Min
type Condition struct {
	Category CategoryID
	Min      int
}

// DecisionRule recommends Outcome as a primary path when every condition
// holds, and as a secondary path otherwise.
type DecisionRule struct {
	Outcome string
	When    []Condition
}

// Paths partitions every decision outcome. No outcome is ever omitted.
type Paths struct {
	Primary   []string `json:"primary"`
	Secondary []string `json:"secondary"`
}

// Decide evaluates the rules in order against a flat score table. A category
// absent from the table counts as 0.
func Decide(rules []DecisionRule, scores map[CategoryID]int) Paths {
	p := Paths{Primary: []string{}, Secondary: []string{}}
	for _, r := range rules {
		if r.holds(scores) {
			p.Primary = append(p.Primary, r.Outcome)
		} else {
			p.Secondary = append(p.Secondary, r.Outcome)
		}
	}
	return p
}

func (r DecisionRule) holds(scores map[CategoryID]int) bool {
	if len(r.When) == 0 {
		return false
	}
	for _, c := range r.When {
		if scores[c.Category] < c.Min {
			return false
		}
	}
	return true
}
