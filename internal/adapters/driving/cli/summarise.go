package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driving"
	"github.com/courtside-labs/courtside-cli/internal/logger"
)

var (
	summariseFile     string
	summariseProfile  string
	summariseProvider string
	summariseJSON     bool
	summariseWatch    bool
)

var summariseCmd = &cobra.Command{
	Use:   "summarise [text]",
	Short: "Summarise text with a pretrained model",
	Long: `Condenses text into a short summary rendered as numbered points.

Text comes from the argument or from --file. Profiles select the
hosted model and its length bounds:
  distilbart - compact summary (default)
  bart       - longer summary

With --watch the file is re-summarised every time it is written.
Press Ctrl-C to stop watching.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSummarise,
}

func init() {
	summariseCmd.Flags().StringVarP(&summariseFile, "file", "f", "", "read the text from a file")
	summariseCmd.Flags().StringVarP(&summariseProfile, "profile", "p", "", "summary profile (distilbart, bart)")
	summariseCmd.Flags().StringVar(&summariseProvider, "provider", "", "summariser provider for this run (huggingface, ollama, openai)")
	summariseCmd.Flags().BoolVar(&summariseJSON, "json", false, "output the summary as JSON")
	summariseCmd.Flags().BoolVarP(&summariseWatch, "watch", "w", false, "re-summarise the file on every write")
	rootCmd.AddCommand(summariseCmd)
}

//nolint:gocyclo // Orchestration function with necessary sequential steps
func runSummarise(cmd *cobra.Command, args []string) error {
	service := summariseService

	// A provider override builds a one-off service for this run
	if summariseProvider != "" {
		if summariserFactory == nil {
			return errors.New("summariser factory not configured")
		}
		provider := domain.AIProvider(summariseProvider)
		if !provider.IsValid() {
			return fmt.Errorf("invalid summariser provider: %s", summariseProvider)
		}
		override, err := summariserFactory(provider)
		if err != nil {
			return fmt.Errorf("configure summariser: %w", err)
		}
		service = override
	}

	if service == nil {
		return errors.New("summarise service not configured")
	}

	ctx := context.Background()

	if summariseWatch {
		if summariseFile == "" {
			return errors.New("--watch requires --file")
		}
		return watchAndSummarise(ctx, cmd, service)
	}

	text, err := summariseInput(args)
	if err != nil {
		return err
	}

	summary, err := service.Summarise(ctx, text, domain.SummaryOptions{Profile: summariseProfile})
	if err != nil {
		return renderSummariseFailure(cmd, err)
	}
	return outputSummary(cmd, summary)
}

// summariseInput resolves the text from the argument or --file.
func summariseInput(args []string) (string, error) {
	if summariseFile != "" {
		data, err := os.ReadFile(summariseFile)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return args[0], nil
	}
	return "", errors.New("nothing to summarise: pass text or --file")
}

func renderSummariseFailure(cmd *cobra.Command, err error) error {
	if summariseJSON {
		return fmt.Errorf("summarise failed: %w", err)
	}

	logger.Debug("Summarise failed: %v", err)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		cmd.Println(domain.MsgEmptySummaryInput)
		return nil
	case errors.Is(err, domain.ErrLowMemory):
		cmd.Println(domain.MsgLowMemory)
		return nil
	default:
		return fmt.Errorf("summarise failed: %w", err)
	}
}

func outputSummary(cmd *cobra.Command, summary *domain.Summary) error {
	if summariseJSON {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal summary: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println("Summary:")
	for i, point := range summary.Points {
		cmd.Printf("  %d. %s\n", i+1, point)
	}
	cmd.Println()
	cmd.Printf("Model: %s (%s)\n", summary.Model, summary.Elapsed.Round(time.Millisecond))
	return nil
}

// watchAndSummarise re-summarises the file on every write until
// interrupted.
func watchAndSummarise(ctx context.Context, cmd *cobra.Command, service driving.SummariseService) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck // Watcher teardown on exit

	// Watch the directory: editors replace files on save, which drops
	// a watch placed on the file itself.
	dir := filepath.Dir(summariseFile)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	target := filepath.Clean(summariseFile)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	cmd.Printf("Watching %s (Ctrl-C to stop)\n\n", summariseFile)

	// Summarise the current contents before waiting for writes
	if err := summariseOnce(ctx, cmd, service); err != nil {
		return err
	}

	// Editors emit bursts of events per save; debounce them
	var debounce <-chan time.Time
	for {
		select {
		case <-sigCh:
			cmd.Println("Stopped watching.")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			debounce = time.After(200 * time.Millisecond)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)

		case <-debounce:
			debounce = nil
			cmd.Printf("--- %s changed ---\n", filepath.Base(summariseFile))
			if err := summariseOnce(ctx, cmd, service); err != nil {
				return err
			}
		}
	}
}

func summariseOnce(ctx context.Context, cmd *cobra.Command, service driving.SummariseService) error {
	data, err := os.ReadFile(summariseFile)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	summary, err := service.Summarise(ctx, string(data), domain.SummaryOptions{Profile: summariseProfile})
	if err != nil {
		return renderSummariseFailure(cmd, err)
	}
	return outputSummary(cmd, summary)
}
