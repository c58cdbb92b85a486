package assessment

import "sort"

// Fixed tier thresholds shared by every questionnaire
const (
	PrimaryThreshold   = 70
	SecondaryThreshold = 50
)

// Classify maps a normalized score to its tier
func Classify(score int) Tier {
	switch {
	case score >= PrimaryThreshold:
		return TierPrimary
	case score >= SecondaryThreshold:
		return TierSecondary
	default:
		return TierNone
	}
}

// Partitioned splits category scores by tier. Every input category appears in
// exactly one list.
type Partitioned struct {
	Primary   Scores
	Secondary Scores
	Tertiary  Scores
}

// Partition sorts by descending score, keeping input order on ties, and
// splits the result by tier.
func Partition(scores Scores) Partitioned {
	ranked := make(Scores, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	var p Partitioned
	for _, cs := range ranked {
		switch Classify(cs.Score) {
		case TierPrimary:
			p.Primary = append(p.Primary, cs)
		case TierSecondary:
			p.Secondary = append(p.Secondary, cs)
		default:
			p.Tertiary = append(p.Tertiary, cs)
		}
	}
	return p
}

// Band is a display label for scores at or above Min. Bands refine the
// presentation of a score and never change its tier.
type Band struct {
	Min   int
	Label string
}

// BandLabel returns the label of the highest band the score reaches
func BandLabel(bands []Band, score int) string {
	best := -1
	label := ""
	for _, b := range bands {
		if score >= b.Min && b.Min > best {
			best = b.Min
			label = b.Label
		}
	}
	return label
}

func categories(scores Scores) []Category {
	out := make([]Category, len(scores))
	for i, cs := range scores {
		out[i] = cs.Category
	}
	return out
}
