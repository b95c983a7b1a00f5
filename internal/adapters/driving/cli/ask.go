package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driving"
	"github.com/courtside-labs/courtside-cli/internal/logger"
)

// excerptRadius is how many runes of passage context --details shows
// around the answer span.
const excerptRadius = 120

var (
	askContextText string
	askContextFile string
	askTopK        int
	askJSON        bool
	askDetails     bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a sports question",
	Long: `Answers a natural-language question from the QASports corpus.
Retrieval narrows the corpus to candidate passages, then the reader
model extracts answer spans with confidence scores.

The first run downloads and indexes the dataset, which can take a few
minutes; later runs reuse the local cache.

With --context or --context-file the question is answered from the
supplied passage instead and the corpus is not loaded.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askContextText, "context", "", "answer from this passage instead of the corpus")
	askCmd.Flags().StringVar(&askContextFile, "context-file", "", "read the passage from a file")
	askCmd.Flags().IntVarP(&askTopK, "top-k", "n", 0, "maximum number of answers")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output answers as JSON")
	askCmd.Flags().BoolVar(&askDetails, "details", false, "include passage excerpts")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := args[0]

	if qaService == nil {
		return errors.New("question answering service not configured")
	}

	ctx := context.Background()

	// Direct mode: answer from a supplied passage, no corpus needed
	if askContextText != "" || askContextFile != "" {
		passage := askContextText
		if askContextFile != "" {
			data, err := os.ReadFile(askContextFile)
			if err != nil {
				return fmt.Errorf("read context file: %w", err)
			}
			passage = string(data)
		}

		result, err := qaService.AskContext(ctx, question, passage)
		if err != nil {
			return renderAskFailure(cmd, err, domain.MsgEmptyContextQA)
		}
		return outputAnswers(cmd, result)
	}

	// Corpus mode: make sure the corpus is ready first
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}
	if _, err := ingestWithProgress(ctx, cmd, driving.IngestOptions{}); err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}

	result, err := qaService.Ask(ctx, question, domain.AskOptions{ReaderTopK: askTopK})
	if err != nil {
		return renderAskFailure(cmd, err, domain.MsgNoAnswer)
	}
	return outputAnswers(cmd, result)
}

// renderAskFailure maps pipeline failures onto the user-facing
// messages. The underlying cause only shows with --verbose.
func renderAskFailure(cmd *cobra.Command, err error, invalidMsg string) error {
	if askJSON {
		return fmt.Errorf("ask failed: %w", err)
	}

	logger.Debug("Ask failed: %v", err)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		cmd.Println(invalidMsg)
	case errors.Is(err, domain.ErrLowMemory):
		cmd.Println(domain.MsgLowMemory)
	default:
		cmd.Println(domain.MsgNoAnswer)
	}
	return nil
}

func outputAnswers(cmd *cobra.Command, result *domain.AskResult) error {
	if askJSON {
		return outputAnswersJSON(cmd, result)
	}
	return outputAnswerCards(cmd, result)
}

func outputAnswersJSON(cmd *cobra.Command, result *domain.AskResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputAnswerCards(cmd *cobra.Command, result *domain.AskResult) error {
	cmd.Println()
	for i := range result.Answers {
		answer := result.Answers[i]

		cmd.Printf("Answer %d: %q | Score: %s\n", i+1, answer.Text, answer.FormattedScore())
		if answer.Document.Title != "" {
			cmd.Printf("  Document: %s\n", answer.Document.Title)
		}
		if answer.Document.URL != "" {
			cmd.Printf("  URL: %s\n", answer.Document.URL)
		}
		if askDetails {
			if excerpt := answer.Excerpt(excerptRadius); excerpt != "" {
				cmd.Printf("  Passage: %s\n", excerpt)
			}
		}
		cmd.Println()
	}

	cmd.Printf("Answered in %s\n", result.Elapsed.Round(time.Millisecond))
	return nil
}

// ingestWithProgress runs ingest while printing stage progress lines.
func ingestWithProgress(ctx context.Context, cmd *cobra.Command, opts driving.IngestOptions) (*domain.IngestReport, error) {
	type outcome struct {
		report *domain.IngestReport
		err    error
	}

	done := make(chan outcome, 1)
	go func() {
		report, err := ingestService.Ingest(ctx, opts)
		done <- outcome{report: report, err: err}
	}()

	// Poll status every 250ms
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	var lastStage domain.IngestStage
	lastFetched := 0
	for {
		select {
		case result := <-done:
			if lastStage != "" {
				cmd.Println()
			}
			return result.report, result.err

		case <-ticker.C:
			status := ingestService.Status()
			if status.Stage != lastStage {
				if lastStage != "" {
					cmd.Println()
				}
				cmd.Print(status.Stage.Description())
				lastStage = status.Stage
				lastFetched = 0
			}
			if status.Stage == domain.StageDownloading && status.Fetched > lastFetched {
				if status.Total > 0 {
					cmd.Printf("\r%s %d/%d rows", status.Stage.Description(), status.Fetched, status.Total)
				} else {
					cmd.Printf("\r%s %d rows", status.Stage.Description(), status.Fetched)
				}
				lastFetched = status.Fetched
			}
		}
	}
}
