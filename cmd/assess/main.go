// Command assess scores questionnaire answers from the command line
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "assess",
		Short:         "Career Compass questionnaire scoring",
		Long:          "Lists the built-in questionnaires, scores answer files against them and validates their configuration.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newListCmd(), newShowCmd(), newScoreCmd(), newValidateCmd())
	return root
}
