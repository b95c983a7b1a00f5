package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/courtside-labs/courtside-cli/internal/core/ports/driving"
)

var (
	fetchRefresh bool
	fetchJSON    bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download and index the corpus",
	Long: `Builds the local corpus cache: downloads the configured dataset
splits, deduplicates passages by context ID and indexes them for
retrieval. Later runs of 'ask' reuse the cache.

Use --refresh to discard the cache and fetch the dataset again.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().BoolVar(&fetchRefresh, "refresh", false, "discard the cache and fetch anew")
	fetchCmd.Flags().BoolVar(&fetchJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, _ []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	ctx := context.Background()

	report, err := ingestWithProgress(ctx, cmd, driving.IngestOptions{Refresh: fetchRefresh})
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	if fetchJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if report.FromCache {
		cmd.Printf("Corpus served from cache: %d documents\n", report.Documents)
		return nil
	}

	cmd.Printf("Corpus ready: %d documents in %s\n", report.Documents, report.Elapsed.Round(time.Millisecond))
	for _, split := range report.Ref.Splits {
		cmd.Printf("  %s: %d rows\n", split, report.FetchedBySplit[split])
	}
	cmd.Printf("  skipped: %d empty, %d duplicate\n", report.SkippedEmpty, report.SkippedDuplicate)
	return nil
}
