package assessment

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		score    int
		expected Tier
	}{
		{0, TierNone},
		{49, TierNone},
		{50, TierSecondary},
		{69, TierSecondary},
		{70, TierPrimary},
		{100, TierPrimary},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Classify(tt.score), "score %d", tt.score)
	}
}

func scored(pairs ...any) Scores {
	var out Scores
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, CategoryScore{
			Category: Category{ID: pairs[i].(CategoryID)},
			Score:    pairs[i+1].(int),
		})
	}
	return out
}

func TestPartition_OrderAndTies(t *testing.T) {
	p := Partition(scored(catA, 55, catB, 80, catC, 80, catD, 10, catE, 95))

	assert.Equal(t, []CategoryID{catE, catB, catC}, idsOf(p.Primary))
	assert.Equal(t, []CategoryID{catA}, idsOf(p.Secondary))
	assert.Equal(t, []CategoryID{catD}, idsOf(p.Tertiary))
}

func TestPartition_NothingAboveFifty(t *testing.T) {
	p := Partition(scored(catA, 20, catB, 49))

	assert.Empty(t, p.Primary)
	assert.Empty(t, p.Secondary)
	assert.Equal(t, []CategoryID{catB, catA}, idsOf(p.Tertiary))
}

func TestPartition_TotalAndDisjoint(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ids := []CategoryID{catA, catB, catC, catD, catE}

	for round := 0; round < 200; round++ {
		var in Scores
		for _, id := range ids {
			in = append(in, CategoryScore{Category: Category{ID: id}, Score: rng.Intn(101)})
		}
		p := Partition(in)

		seen := map[CategoryID]int{}
		for _, group := range []Scores{p.Primary, p.Secondary, p.Tertiary} {
			for i, cs := range group {
				seen[cs.Category.ID]++
				if i > 0 {
					require.GreaterOrEqual(t, group[i-1].Score, cs.Score)
				}
			}
		}
		require.Len(t, seen, len(ids))
		for id, n := range seen {
			require.Equal(t, 1, n, "category %s", id)
		}
		for _, cs := range p.Primary {
			require.Equal(t, TierPrimary, Classify(cs.Score))
		}
		for _, cs := range p.Secondary {
			require.Equal(t, TierSecondary, Classify(cs.Score))
		}
	}
}

func TestPartition_DoesNotReorderInput(t *testing.T) {
	in := scored(catA, 10, catB, 90)
	Partition(in)
	assert.Equal(t, catA, in[0].Category.ID)
}

func TestBandLabel(t *testing.T) {
	bands := []Band{
		{Min: 60, Label: "Good"},
		{Min: 80, Label: "Excellent"},
		{Min: 0, Label: "Potential"},
		{Min: 70, Label: "Strong"},
	}

	assert.Equal(t, "Excellent", BandLabel(bands, 85))
	assert.Equal(t, "Strong", BandLabel(bands, 70))
	assert.Equal(t, "Good", BandLabel(bands, 69))
	assert.Equal(t, "Potential", BandLabel(bands, 0))
	assert.Equal(t, "", BandLabel(nil, 50))
}

func idsOf(scores Scores) []CategoryID {
	var out []CategoryID
	for _, cs := range scores {
		out = append(out, cs.Category.ID)
	}
	return out
}
