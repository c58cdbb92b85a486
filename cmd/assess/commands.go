package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/career-compass/internal/assessment"
	"github.com/ZanzyTHEbar/career-compass/internal/config"
	apperrors "github.com/ZanzyTHEbar/career-compass/internal/errors"
	"github.com/ZanzyTHEbar/career-compass/internal/questionnaires"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in questionnaires",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			bold := color.New(color.Bold)
			for _, s := range questionnaires.Default().List() {
				bold.Fprintf(w, "%-10s", s.ID)
				fmt.Fprintf(w, " %s (%d questions)\n", s.Title, s.QuestionCount)
			}
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <questionnaire>",
		Short: "Print a questionnaire's categories and questions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := lookup(args[0])
			if err != nil {
				return err
			}
			q := engine.Questionnaire()
			w := cmd.OutOrStdout()

			color.New(color.FgCyan, color.Bold).Fprintln(w, q.Title)
			if q.Description != "" {
				fmt.Fprintln(w, q.Description)
			}
			fmt.Fprintln(w)
			labels := make([]string, len(q.Scale.Categories))
			for i, c := range q.Scale.Categories {
				labels[i] = c.Label
			}
			fmt.Fprintf(w, "Categories: %s\n\n", strings.Join(labels, ", "))

			for i, question := range q.Bank.Questions() {
				fmt.Fprintf(w, "%2d. [%s] %s (%s)\n", i+1, question.ID, question.Prompt, question.Modality)
				for _, opt := range question.Options {
					fmt.Fprintf(w, "      - %s\n", opt)
				}
			}
			return nil
		},
	}
}

type scoreOptions struct {
	answers string
	format  string
}

func newScoreCmd() *cobra.Command {
	opts := &scoreOptions{}
	cmd := &cobra.Command{
		Use:   "score <questionnaire>",
		Short: "Score an answer file",
		Long: "Scores a JSON answer file against a questionnaire. The file holds either " +
			`{"answers":[{"questionId":"...","value":...}]} or the bare answer array; "-" reads stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.answers, "answers", "a", "", "Path to the answer file, or - for stdin (required)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: json, yaml or text")
	if err := cmd.MarkFlagRequired("answers"); err != nil {
		panic(fmt.Sprintf("failed to mark answers flag as required: %v", err))
	}
	return cmd
}

func runScore(cmd *cobra.Command, id string, opts *scoreOptions) error {
	render, ok := renderers[opts.format]
	if !ok {
		return fmt.Errorf("unknown format %q (want json, yaml or text)", opts.format)
	}
	engine, err := lookup(id)
	if err != nil {
		return err
	}

	var data []byte
	if opts.answers == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(opts.answers)
	}
	if err != nil {
		return apperrors.WrapError(err, "failed to read answers from %s", opts.answers)
	}
	answers, err := decodeAnswers(data)
	if err != nil {
		return err
	}

	res, issues := engine.Evaluate(answers)
	warn := color.New(color.FgYellow)
	for _, is := range issues {
		warn.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", is)
	}
	return render(cmd.OutOrStdout(), res)
}

// decodeAnswers accepts the request body shape used by the HTTP API or a
// bare answer array
func decodeAnswers(data []byte) ([]assessment.Answer, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var answers []assessment.Answer
		if err := json.Unmarshal(data, &answers); err != nil {
			return nil, fmt.Errorf("failed to parse answers: %w", err)
		}
		return answers, nil
	}

	var body struct {
		Answers []assessment.Answer `json:"answers"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("failed to parse answers: %w", err)
	}
	return body.Answers, nil
}

func newValidateCmd() *cobra.Command {
	var envFile string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the built-in questionnaires and the service configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			ok := color.New(color.FgGreen).SprintFunc()
			bad := color.New(color.FgRed).SprintFunc()

			failed := 0
			for _, q := range questionnaires.Builtin() {
				if err := q.Validate(); err != nil {
					failed++
					fmt.Fprintf(w, "%s %s\n%s\n", bad("FAIL"), q.ID, indent(err.Error()))
					continue
				}
				fmt.Fprintf(w, "%s %s\n", ok("ok"), q.ID)
			}

			if _, err := config.Load(envFile); err != nil {
				failed++
				fmt.Fprintf(w, "%s config\n%s\n", bad("FAIL"), indent(err.Error()))
			} else {
				fmt.Fprintf(w, "%s config\n", ok("ok"))
			}

			if failed > 0 {
				return fmt.Errorf("%d check(s) failed", failed)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&envFile, "env", ".env", "Optional .env file to load before validating the configuration")
	return cmd
}

func lookup(id string) (*assessment.Engine, error) {
	registry := questionnaires.Default()
	engine, ok := registry.Get(id)
	if !ok {
		return nil, fmt.Errorf("unknown questionnaire %q (available: %s)", id, strings.Join(registry.IDs(), ", "))
	}
	return engine, nil
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}
