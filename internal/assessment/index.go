package assessment

import "math"

// IndexBand describes an index value at or above Min
type IndexBand struct {
	Min             int
	Level           string
	Title           string
	Description     string
	Recommendations []string
}

// IndexRule derives one aggregate score from several category scores
type IndexRule struct {
	ID         string
	Label      string
	Categories []CategoryID
	// Bands are checked in order; the first one reached wins
	Bands []IndexBand
}

type Index struct {
	ID              string   `json:"id"`
	Label           string   `json:"label"`
	Score           int      `json:"score"`
	Level           string   `json:"level,omitempty"`
	Title           string   `json:"title,omitempty"`
	Description     string   `json:"description,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// Compute averages the listed categories. Missing categories count as 0.
func (r IndexRule) Compute(scores map[CategoryID]int) Index {
	idx := Index{ID: r.ID, Label: r.Label}
	if len(r.Categories) > 0 {
		var sum int
		for _, id := range r.Categories {
			sum += scores[id]
		}
		idx.Score = int(math.Round(float64(sum) / float64(len(r.Categories))))
	}
	for _, b := range r.Bands {
		if idx.Score >= b.Min {
			idx.Level = b.Level
			idx.Title = b.Title
			idx.Description = b.Description
			idx.Recommendations = append([]string(nil), b.Recommendations...)
			break
		}
	}
	return idx
}
