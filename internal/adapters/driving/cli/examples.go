package cli

import (
	"github.com/spf13/cobra"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Show example questions and texts",
	Long:  `Prints canned prompts you can run as-is with 'ask' and 'summarise'.`,
	RunE:  runExamples,
}

func init() {
	rootCmd.AddCommand(examplesCmd)
}

func runExamples(cmd *cobra.Command, _ []string) error {
	examples := domain.Examples()

	cmd.Println("Corpus questions (courtside ask \"...\"):")
	for _, ex := range examples {
		if ex.Kind != domain.ExampleCorpusQuestion {
			continue
		}
		cmd.Printf("  %s\n    %q\n", ex.Label, ex.Question)
	}

	cmd.Println()
	cmd.Println("Context QA (courtside ask --context \"...\" \"question\"):")
	for _, ex := range examples {
		if ex.Kind != domain.ExampleContextQA {
			continue
		}
		cmd.Printf("  %s\n    Context:  %s\n    Question: %q\n", ex.Label, ex.Context, ex.Question)
	}

	summaries := false
	for _, ex := range examples {
		if ex.Kind != domain.ExampleSummary {
			continue
		}
		if !summaries {
			cmd.Println()
			cmd.Println("Summaries (courtside summarise \"...\"):")
			summaries = true
		}
		cmd.Printf("  %s\n    %s\n", ex.Label, ex.Context)
	}

	return nil
}
