package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ZanzyTHEbar/career-compass/internal/assessment"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

type renderer func(w io.Writer, res assessment.Result) error

var renderers = map[string]renderer{
	"json": renderJSON,
	"yaml": renderYAML,
	"text": renderText,
}

func renderJSON(w io.Writer, res assessment.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// renderYAML goes through the JSON encoding so keys and their order match
// the API response
func renderYAML(w io.Writer, res assessment.Result) error {
	data, err := json.Marshal(res)
	if err != nil {
		return err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	blockStyle(&doc)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}

// blockStyle drops the flow and quoting styles inherited from JSON
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

func renderText(w io.Writer, res assessment.Result) error {
	heading := color.New(color.FgCyan, color.Bold)
	tierColor := map[assessment.Tier]*color.Color{
		assessment.TierPrimary:   color.New(color.FgGreen, color.Bold),
		assessment.TierSecondary: color.New(color.FgYellow),
		assessment.TierNone:      color.New(color.FgWhite),
	}

	heading.Fprintln(w, res.Title)
	fmt.Fprintf(w, "Answered %d of %d questions\n\n", res.Answered, res.Total)

	for _, cr := range res.Categories {
		c := tierColor[cr.Tier]
		if c == nil {
			c = color.New()
		}
		c.Fprintf(w, "  %-28s %3d  %-9s", cr.Label, cr.Score, cr.Tier)
		if cr.Band != "" {
			fmt.Fprintf(w, " %s", cr.Band)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, res.OverallSummary)

	for _, idx := range res.Indices {
		fmt.Fprintf(w, "%s: %d", idx.Label, idx.Score)
		if idx.Level != "" {
			fmt.Fprintf(w, " (%s)", idx.Level)
		}
		fmt.Fprintln(w)
	}
	if res.Paths != nil {
		list(w, heading, "Primary paths", res.Paths.Primary)
		list(w, heading, "Secondary paths", res.Paths.Secondary)
	}
	for _, sel := range res.Selections {
		list(w, heading, sel.Label, sel.Items())
	}
	list(w, heading, "Suggested careers", res.Suggestions)
	list(w, heading, "Next steps", res.Recommendations.Immediate)
	list(w, heading, "Growth", res.Recommendations.Growth)
	list(w, heading, "Long term", res.Recommendations.LongTerm)
	return nil
}

func list(w io.Writer, heading *color.Color, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(w)
	heading.Fprintln(w, title)
	fmt.Fprintf(w, "  - %s\n", strings.Join(items, "\n  - "))
}
