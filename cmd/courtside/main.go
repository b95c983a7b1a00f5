// Command courtside is a terminal tool that answers natural-language
// sports questions from the QASports reading-comprehension dataset and
// summarises pasted text with pretrained models.
package main

import (
	"fmt"
	"os"

	"github.com/courtside-labs/courtside-cli/internal/adapters/driven/ai"
	"github.com/courtside-labs/courtside-cli/internal/adapters/driven/config/file"
	"github.com/courtside-labs/courtside-cli/internal/adapters/driven/dataset/huggingface"
	"github.com/courtside-labs/courtside-cli/internal/adapters/driven/resources/gopsutil"
	"github.com/courtside-labs/courtside-cli/internal/adapters/driven/retriever/bm25"
	"github.com/courtside-labs/courtside-cli/internal/adapters/driven/storage/memory"
	"github.com/courtside-labs/courtside-cli/internal/adapters/driven/storage/sqlite"
	"github.com/courtside-labs/courtside-cli/internal/adapters/driving/cli"
	"github.com/courtside-labs/courtside-cli/internal/core/domain"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driven"
	"github.com/courtside-labs/courtside-cli/internal/core/ports/driving"
	"github.com/courtside-labs/courtside-cli/internal/core/services"
	"github.com/courtside-labs/courtside-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config and prompt stores under ~/.courtside
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	promptStore, err := file.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("opening prompt store: %w", err)
	}

	settingsService := services.NewSettingsService(configStore, ai.NewConfigValidator())

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	token := settings.HuggingFace.Token

	// Driven adapters: dataset source, cache, store, retriever, models
	source := huggingface.NewSource(huggingface.Config{Token: token})

	var cache driven.DatasetCache
	if sqliteCache, err := sqlite.NewCache(""); err != nil {
		// Without the cache every run refetches the dataset.
		logger.Warn("Dataset cache unavailable: %v", err)
	} else {
		cache = sqliteCache
		defer sqliteCache.Close()
	}

	docStore := memory.NewDocumentStore()
	retriever := bm25.New()
	probe := gopsutil.NewProbe()

	reader := ai.CreateReaderService(&settings.Reader, token)

	summariseConfig := services.SummariseConfig{
		DefaultProfile: settings.Summariser.Profile,
		MinAvailableMB: settings.Resources.MinAvailableMB,
		HostedModels:   settings.Summariser.Provider == domain.AIProviderHuggingFace,
	}

	var summariseService driving.SummariseService
	if summariser, err := ai.CreateSummariserService(&settings.Summariser, token, promptStore); err != nil {
		// Question answering still works; only summarisation is down.
		logger.Warn("Summariser unavailable: %v", err)
	} else {
		summariseService = services.NewSummariseService(summariser, probe, summariseConfig)
	}

	// Core services
	ingestService := services.NewIngestService(
		source, cache, docStore, retriever, reader, probe,
		settings.DatasetRef(), settings.Resources.MinAvailableMB,
	)
	qaService := services.NewQAService(retriever, reader, settings.Retriever.TopK, settings.Reader.TopK)
	documentService := services.NewDocumentService(docStore)

	// --provider override on the summarise command builds a fresh
	// summariser instead of the configured one.
	summariserForCLI := func(provider domain.AIProvider) (driving.SummariseService, error) {
		override := settings.Summariser
		override.Provider = provider
		override.Model = ""

		summariser, err := ai.CreateAndValidateSummariserService(&override, token, promptStore)
		if err != nil {
			return nil, err
		}
		cfg := summariseConfig
		cfg.HostedModels = provider == domain.AIProviderHuggingFace
		return services.NewSummariseService(summariser, probe, cfg), nil
	}

	cli.SetVersion(version)
	cli.SetServices(&cli.Services{
		QA:               qaService,
		Summarise:        summariseService,
		Ingest:           ingestService,
		Document:         documentService,
		Settings:         settingsService,
		SummariserForCLI: summariserForCLI,
	})
	cli.SetTUIConfig(&cli.TUIConfig{
		QAService:        qaService,
		SummariseService: summariseService,
		IngestService:    ingestService,
		DocumentService:  documentService,
		SettingsService:  settingsService,
	})

	return cli.Execute()
}
