package assessment

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Career is one suggested occupation. Description is optional.
type Career struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Narrative is the text bundle attached to a scored category
type Narrative struct {
	Title           string   `json:"title,omitempty"`
	Description     string   `json:"description"`
	Characteristics []string `json:"characteristics,omitempty"`
	Strengths       []string `json:"strengths,omitempty"`
	GrowthAreas     []string `json:"growth_areas,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
	Careers         []Career `json:"careers,omitempty"`
	Environments    []string `json:"environments,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	Courses         []string `json:"courses,omitempty"`
	Reasons         []string `json:"reasons,omitempty"`
}

func (n Narrative) clone() Narrative {
	n.Characteristics = slices.Clone(n.Characteristics)
	n.Strengths = slices.Clone(n.Strengths)
	n.GrowthAreas = slices.Clone(n.GrowthAreas)
	n.Recommendations = slices.Clone(n.Recommendations)
	n.Careers = slices.Clone(n.Careers)
	n.Environments = slices.Clone(n.Environments)
	n.Skills = slices.Clone(n.Skills)
	n.Courses = slices.Clone(n.Courses)
	n.Reasons = slices.Clone(n.Reasons)
	return n
}

// TieredNarrative holds the narrative of one category for each coarse tier
type TieredNarrative struct {
	Primary   Narrative
	Secondary Narrative
	Tertiary  Narrative
}

// Uniform uses the same narrative for every tier
func Uniform(n Narrative) TieredNarrative {
	return TieredNarrative{Primary: n, Secondary: n, Tertiary: n}
}

// HighLow uses high for primary scores and low for everything else
func HighLow(high, low Narrative) TieredNarrative {
	return TieredNarrative{Primary: high, Secondary: low, Tertiary: low}
}

func (t TieredNarrative) For(tier Tier) Narrative {
	switch tier {
	case TierPrimary:
		return t.Primary
	case TierSecondary:
		return t.Secondary
	default:
		return t.Tertiary
	}
}

// RuleTable maps every category of a scale to its tiered narrative
type RuleTable map[CategoryID]TieredNarrative

// Synthesize picks the narrative for a category at the given tier. A category
// missing from the table gets a generic narrative built from its label and
// score. The returned value shares no memory with the table.
func Synthesize(table RuleTable, category Category, score int, tier Tier) Narrative {
	if tn, ok := table[category.ID]; ok {
		if n := tn.For(tier); n.Description != "" {
			return n.clone()
		}
	}
	return genericNarrative(category, score, tier)
}

func genericNarrative(category Category, score int, tier Tier) Narrative {
	label := category.Label
	if label == "" {
		label = string(category.ID)
	}
	var desc string
	switch tier {
	case TierPrimary:
		desc = fmt.Sprintf("%s is one of your strongest areas with a score of %d%%.", label, score)
	case TierSecondary:
		desc = fmt.Sprintf("%s is a developing area with a score of %d%%.", label, score)
	default:
		desc = fmt.Sprintf("%s scored %d%%. Trying new activities in this area can show whether it suits you.", label, score)
	}
	return Narrative{Title: label, Description: desc}
}

// CombinationTemplate renders one sentence over a set of categories.
// Text may use {labels} (joined with ", "), {labels_lower} (lower case, joined
// with " and ") and {count}. Fallback is used verbatim for an empty set.
type CombinationTemplate struct {
	Text     string
	Fallback string
}

// SynthesizeCombination renders the template over the given categories
func SynthesizeCombination(tpl CombinationTemplate, cats []Category) string {
	if len(cats) == 0 {
		return tpl.Fallback
	}
	labels := make([]string, len(cats))
	lower := make([]string, len(cats))
	for i, c := range cats {
		labels[i] = c.Label
		lower[i] = strings.ToLower(c.Label)
	}
	r := strings.NewReplacer(
		"{labels}", strings.Join(labels, ", "),
		"{labels_lower}", strings.Join(lower, " and "),
		"{count}", strconv.Itoa(len(cats)),
	)
	return r.Replace(tpl.Text)
}
