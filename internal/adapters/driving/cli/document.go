package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Browse the loaded corpus",
	Long:  `List corpus passages, print one in full, or open its source page.`,
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List corpus passages",
	RunE:  runDocsList,
}

var docsShowCmd = &cobra.Command{
	Use:   "show [doc-id]",
	Short: "Print a passage in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsShow,
}

var docsOpenCmd = &cobra.Command{
	Use:   "open [doc-id]",
	Short: "Open the passage's source page in the browser",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsOpen,
}

var (
	docsLimit  int
	docsOffset int
)

func init() {
	docsListCmd.Flags().IntVar(&docsLimit, "limit", 20, "maximum passages to list")
	docsListCmd.Flags().IntVar(&docsOffset, "offset", 0, "passages to skip")

	docsCmd.AddCommand(docsListCmd)
	docsCmd.AddCommand(docsShowCmd)
	docsCmd.AddCommand(docsOpenCmd)
	rootCmd.AddCommand(docsCmd)
}

func runDocsList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := context.Background()

	total, err := documentService.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count documents: %w", err)
	}
	if total == 0 {
		cmd.Println("Corpus is empty. Run 'courtside fetch' first.")
		return nil
	}

	docs, err := documentService.List(ctx, docsLimit, docsOffset)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	for i := range docs {
		cmd.Printf("  %s\n", docs[i].ID)
		cmd.Printf("    Title: %s\n", docs[i].Title)
		if docs[i].URL != "" {
			cmd.Printf("    URL: %s\n", docs[i].URL)
		}
		cmd.Println()
	}

	cmd.Printf("Showing %d of %d passages", len(docs), total)
	if docsOffset+len(docs) < total {
		cmd.Printf(" (next: --offset %d)", docsOffset+len(docs))
	}
	cmd.Println()
	return nil
}

func runDocsShow(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := context.Background()

	doc, err := documentService.Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	cmd.Printf("Document: %s\n\n", doc.ID)
	cmd.Printf("  Title:   %s\n", doc.Title)
	if doc.Source != "" {
		cmd.Printf("  Source:  %s\n", doc.Source)
	}
	if doc.Split != "" {
		cmd.Printf("  Split:   %s\n", doc.Split)
	}
	if doc.URL != "" {
		cmd.Printf("  URL:     %s\n", doc.URL)
	}
	if !doc.FetchedAt.IsZero() {
		cmd.Printf("  Fetched: %s\n", doc.FetchedAt.Format("2006-01-02 15:04:05"))
	}
	cmd.Println()
	cmd.Println(strings.TrimSpace(doc.Content))
	return nil
}

func runDocsOpen(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := context.Background()

	if err := documentService.Open(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}

	cmd.Printf("Opened document %s in the default browser.\n", args[0])
	return nil
}
