package assessment

import (
	"fmt"
	"strings"
)

// RuleKind selects how a recommendation rule expands into text
type RuleKind int

const (
	// RuleStatic emits Items unchanged
	RuleStatic RuleKind = iota
	// RulePrimarySet renders Text over all primary categories as a combination
	RulePrimarySet
	// RuleEachPrimary renders Text once per primary category
	RuleEachPrimary
	// RuleEachBelow renders Text once per answered category scoring below Below
	RuleEachBelow
	// RulePaths renders Text over the primary decision outcomes
	RulePaths
	// RuleSelection renders Text over the first Limit items of a selection
	RuleSelection
)

// RecommendationRule is one enumerable entry of a recommendation plan.
//
// Placeholders: {label} and {label_lower} for per-category rules, {highlights}
// for the first two characteristics of a category narrative, {labels},
// {labels_lower} and {count} for RulePrimarySet, {paths} for RulePaths and
// {selection} for RuleSelection. Fallback replaces Text when the input set is
// empty; an empty Fallback emits nothing in that case.
type RecommendationRule struct {
	Kind      RuleKind
	Text      string
	Fallback  string
	Items     []string
	Scale     string // scale id for per-category rules, empty for the main scale
	Below     int
	Selection string
	Limit     int
}

func Static(items ...string) RecommendationRule {
	return RecommendationRule{Kind: RuleStatic, Items: items}
}

func PrimarySet(text, fallback string) RecommendationRule {
	return RecommendationRule{Kind: RulePrimarySet, Text: text, Fallback: fallback}
}

func EachPrimary(text string) RecommendationRule {
	return RecommendationRule{Kind: RuleEachPrimary, Text: text}
}

func EachBelow(scale string, below int, text string) RecommendationRule {
	return RecommendationRule{Kind: RuleEachBelow, Scale: scale, Below: below, Text: text}
}

func FromPaths(text, fallback string) RecommendationRule {
	return RecommendationRule{Kind: RulePaths, Text: text, Fallback: fallback}
}

func FromSelection(id string, limit int, text, fallback string) RecommendationRule {
	return RecommendationRule{Kind: RuleSelection, Selection: id, Limit: limit, Text: text, Fallback: fallback}
}

// RecommendationPlan lists the rules feeding each recommendation group
type RecommendationPlan struct {
	Immediate []RecommendationRule
	Growth    []RecommendationRule
	LongTerm  []RecommendationRule
}

type Recommendations struct {
	Immediate []string `json:"immediate"`
	Growth    []string `json:"growth"`
	LongTerm  []string `json:"long_term"`
}

// planInput is everything a rule may read
type planInput struct {
	primary    []CategoryResult
	scales     map[string][]CategoryResult
	paths      *Paths
	selections map[string]Selection
}

func (p RecommendationPlan) expand(in planInput) Recommendations {
	return Recommendations{
		Immediate: expandRules(p.Immediate, in),
		Growth:    expandRules(p.Growth, in),
		LongTerm:  expandRules(p.LongTerm, in),
	}
}

func expandRules(rules []RecommendationRule, in planInput) []string {
	out := []string{}
	for _, r := range rules {
		out = append(out, r.expand(in)...)
	}
	return out
}

func (r RecommendationRule) expand(in planInput) []string {
	switch r.Kind {
	case RuleStatic:
		return r.Items

	case RulePrimarySet:
		cats := make([]Category, len(in.primary))
		for i, cr := range in.primary {
			cats[i] = cr.Category
		}
		s := SynthesizeCombination(CombinationTemplate{Text: r.Text, Fallback: r.Fallback}, cats)
		return nonEmpty(s)

	case RuleEachPrimary:
		var out []string
		for _, cr := range in.primary {
			out = append(out, renderCategory(r.Text, cr))
		}
		return out

	case RuleEachBelow:
		var out []string
		for _, cr := range in.scales[r.Scale] {
			if cr.Answered > 0 && cr.Score < r.Below {
				out = append(out, renderCategory(r.Text, cr))
			}
		}
		return out

	case RulePaths:
		if in.paths == nil || len(in.paths.Primary) == 0 {
			return nonEmpty(r.Fallback)
		}
		return []string{strings.ReplaceAll(r.Text, "{paths}", strings.Join(in.paths.Primary, " or "))}

	case RuleSelection:
		sel := in.selections[r.Selection]
		items := sel.Items()
		if r.Limit > 0 && len(items) > r.Limit {
			items = items[:r.Limit]
		}
		if len(items) == 0 {
			return nonEmpty(r.Fallback)
		}
		return []string{strings.ReplaceAll(r.Text, "{selection}", strings.Join(items, ", "))}
	}
	panic(fmt.Sprintf("assessment: unknown recommendation rule kind %d", r.Kind))
}

func renderCategory(text string, cr CategoryResult) string {
	highlights := cr.Characteristics
	if len(highlights) > 2 {
		highlights = highlights[:2]
	}
	return strings.NewReplacer(
		"{label}", cr.Label,
		"{label_lower}", strings.ToLower(cr.Label),
		"{highlights}", strings.Join(highlights, " and "),
	).Replace(text)
}

func nonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}
