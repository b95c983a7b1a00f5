package cli

import (
	"github.com/spf13/cobra"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driving"
	"github.com/courtside-labs/courtside-cli/internal/logger"
)

// version is overridden at build time via ldflags.
var version = "dev"

// SummariserFactory builds a summarise service for a provider chosen
// on the command line, bypassing the configured default.
type SummariserFactory func(provider domain.AIProvider) (driving.SummariseService, error)

// Services used by the commands. Injected from main before Execute.
var (
	qaService         driving.QAService
	summariseService  driving.SummariseService
	ingestService     driving.IngestService
	documentService   driving.DocumentService
	settingsService   driving.SettingsService
	summariserFactory SummariserFactory
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "courtside",
	Short: "Sports question answering from your terminal",
	Long: `Courtside answers natural-language sports questions from the QASports
reading-comprehension dataset and summarises text with pretrained models.

Questions run through a two-stage pipeline: BM25 retrieval narrows the
corpus to candidate passages, then an extractive reader model pulls
answer spans out of them. Summarisation delegates to a configurable
provider (Hugging Face, Ollama or OpenAI).

The first question downloads and indexes the dataset; later runs reuse
the local cache. Run 'courtside fetch' to build the cache up front.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Services bundles the driving ports the commands call.
type Services struct {
	QA               driving.QAService
	Summarise        driving.SummariseService
	Ingest           driving.IngestService
	Document         driving.DocumentService
	Settings         driving.SettingsService
	SummariserForCLI SummariserFactory
}

// SetServices injects the service implementations used by the commands.
func SetServices(services *Services) {
	if services == nil {
		return
	}
	qaService = services.QA
	summariseService = services.Summarise
	ingestService = services.Ingest
	documentService = services.Document
	settingsService = services.Settings
	summariserFactory = services.SummariserForCLI
}

// SetVersion sets the version string shown by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}
