package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/courtside-labs/courtside-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the dataset, summariser provider, and other options.

Use subcommands to configure specific settings or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

var settingsSportCmd = &cobra.Command{
	Use:   "sport",
	Short: "Set the dataset sport",
	Long: `Set which QASports configuration the corpus is built from.

Changing the sport invalidates the corpus cache; the next 'ask' or
'fetch' downloads the new configuration.`,
	RunE: runSettingsSport,
}

var settingsProviderCmd = &cobra.Command{
	Use:   "provider",
	Short: "Configure the summariser provider",
	Long:  `Configure which inference provider generates summaries.`,
	RunE:  runSettingsProvider,
}

var settingsProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Set the default summary profile",
	Long:  `Set which built-in model profile 'summarise' uses by default.`,
	RunE:  runSettingsProfile,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	settingsCmd.AddCommand(settingsSportCmd)
	settingsCmd.AddCommand(settingsProviderCmd)
	settingsCmd.AddCommand(settingsProfileCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	// Dataset settings
	cmd.Println("[Dataset]")
	cmd.Printf("  Name: %s\n", settings.Dataset.Name)
	cmd.Printf("  Sport: %s\n", settings.Dataset.Sport)
	if len(settings.Dataset.Splits) > 0 {
		names := make([]string, len(settings.Dataset.Splits))
		for i, split := range settings.Dataset.Splits {
			names[i] = string(split)
		}
		cmd.Printf("  Splits: %s\n", strings.Join(names, ", "))
	}
	cmd.Println()

	// Pipeline settings
	cmd.Println("[Question Answering]")
	cmd.Printf("  Reader model: %s\n", settings.Reader.Model)
	cmd.Printf("  Retriever top-k: %d\n", settings.Retriever.TopK)
	cmd.Printf("  Answers kept: %d\n", settings.Reader.TopK)
	cmd.Println()

	// Summariser settings
	cmd.Println("[Summariser]")
	cmd.Printf("  Provider: %s\n", settings.Summariser.Provider.Description())
	if settings.Summariser.Provider == domain.AIProviderHuggingFace {
		cmd.Printf("  Profile: %s\n", settings.Summariser.Profile)
	} else {
		cmd.Printf("  Model: %s\n", settings.Summariser.Model)
	}
	if settings.Summariser.Provider.IsLocal() {
		cmd.Printf("  Base URL: %s\n", settings.Summariser.BaseURL)
	}
	if settings.Summariser.Provider.RequiresAPIKey() {
		if settings.Summariser.APIKey != "" {
			cmd.Printf("  API Key: %s\n", maskAPIKey(settings.Summariser.APIKey))
		} else {
			cmd.Printf("  API Key: (not set)\n")
		}
	}
	status := "configured"
	if !settings.Summariser.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	// Resources
	cmd.Println("[Resources]")
	cmd.Printf("  Memory floor: %d MB\n", settings.Resources.MinAvailableMB)
	cmd.Println()

	// Hugging Face access
	cmd.Println("[Hugging Face]")
	if settings.HuggingFace.Token != "" {
		cmd.Printf("  Token: %s\n", maskAPIKey(settings.HuggingFace.Token))
	} else {
		cmd.Println("  Token: (not set, anonymous access)")
	}
	cmd.Println()

	// Validation
	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'courtside settings wizard' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Println("Courtside Settings Wizard")
	cmd.Println("=========================")
	cmd.Println()

	reader := bufio.NewReader(os.Stdin)

	// Step 1: Dataset sport
	cmd.Println("Step 1: Select Dataset Sport")
	cmd.Println("----------------------------")
	if err := configureSport(cmd, reader); err != nil {
		return err
	}

	// Step 2: Summariser provider
	cmd.Println("Step 2: Configure Summariser Provider")
	cmd.Println("-------------------------------------")
	if err := configureSummariserProvider(cmd, reader); err != nil {
		return err
	}

	// Step 3: Reader model
	cmd.Println("Step 3: Configure Reader Model")
	cmd.Println("------------------------------")
	if err := configureReaderModel(cmd, reader); err != nil {
		return err
	}

	// Final validation
	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("All settings are valid and saved.")
	}

	return nil
}

func runSettingsSport(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	reader := bufio.NewReader(os.Stdin)
	return configureSport(cmd, reader)
}

func runSettingsProvider(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	reader := bufio.NewReader(os.Stdin)
	return configureSummariserProvider(cmd, reader)
}

func runSettingsProfile(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	reader := bufio.NewReader(os.Stdin)
	return configureSummaryProfile(cmd, reader)
}

//nolint:dupl // Similar to configureReaderModel but for the sport - intentional for CLI flow clarity
func configureSport(cmd *cobra.Command, reader *bufio.Reader) error {
	current := domain.DefaultDatasetRef().Sport
	if settings, err := settingsService.Get(); err == nil && settings.Dataset.Sport != "" {
		current = settings.Dataset.Sport
	}

	cmd.Println("QASports ships per-sport configurations (basketball, football, soccer).")
	cmd.Printf("Enter sport [%s]: ", current)
	sport := readLine(reader)
	if sport == "" {
		sport = current
	}

	if err := settingsService.SetSport(sport); err != nil {
		return fmt.Errorf("failed to set sport: %w", err)
	}

	cmd.Printf("Dataset sport set to: %s\n\n", strings.ToLower(strings.TrimSpace(sport)))
	return nil
}

func configureSummariserProvider(cmd *cobra.Command, reader *bufio.Reader) error {
	cmd.Println("Select Summariser Provider")
	providers := domain.AllSummariserProviders()
	for i, p := range providers {
		cmd.Printf("  %d. %s\n", i+1, p.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	input := readLine(reader)
	idx := parseChoice(input, len(providers), 1)
	selectedProvider := providers[idx-1]

	// Hosted inference picks a model through profiles instead.
	if selectedProvider == domain.AIProviderHuggingFace {
		if err := settingsService.SetSummariserProvider(selectedProvider, "", ""); err != nil {
			return fmt.Errorf("failed to configure summariser provider: %w", err)
		}
		cmd.Println()
		return configureSummaryProfile(cmd, reader)
	}

	// Get model
	defaults := domain.DefaultSummariserModels()
	defaultModel := defaults[selectedProvider]
	cmd.Printf("Enter model name [%s]: ", defaultModel)
	model := readLine(reader)
	if model == "" {
		model = defaultModel
	}

	// Get API key if needed
	var apiKey string
	if selectedProvider.RequiresAPIKey() {
		cmd.Print("Enter API key: ")
		apiKey = readPassword()
		cmd.Println()
		if apiKey == "" {
			return errors.New("API key is required for this provider")
		}
	}

	if err := settingsService.SetSummariserProvider(selectedProvider, model, apiKey); err != nil {
		return fmt.Errorf("failed to configure summariser provider: %w", err)
	}

	// Validate the configuration by pinging the service
	cmd.Print("Validating configuration... ")
	if err := settingsService.ValidateSummariserConfig(); err != nil {
		cmd.Printf("FAILED: %v\n", err)
		return fmt.Errorf("summariser configuration validation failed: %w", err)
	}
	cmd.Println("OK")

	cmd.Printf("Summariser provider configured: %s (%s)\n\n", selectedProvider.Description(), model)
	return nil
}

func configureSummaryProfile(cmd *cobra.Command, reader *bufio.Reader) error {
	cmd.Println("Select Summary Profile")
	profiles := domain.AllSummaryProfiles()
	for i, profile := range profiles {
		cmd.Printf("  %d. %s (%s, up to %d tokens)\n", i+1, profile.Name, profile.Model, profile.MaxLength)
	}
	cmd.Print("\nEnter choice [1]: ")
	input := readLine(reader)
	idx := parseChoice(input, len(profiles), 1)
	selected := profiles[idx-1]

	if err := settingsService.SetSummaryProfile(selected.Name); err != nil {
		return fmt.Errorf("failed to set summary profile: %w", err)
	}

	cmd.Printf("Summary profile set to: %s (%s)\n\n", selected.Name, selected.Model)
	return nil
}

//nolint:dupl // Similar to configureSport but for the reader model - intentional for CLI flow clarity
func configureReaderModel(cmd *cobra.Command, reader *bufio.Reader) error {
	current := domain.DefaultReaderModel
	if settings, err := settingsService.Get(); err == nil && settings.Reader.Model != "" {
		current = settings.Reader.Model
	}

	cmd.Println("Any extractive question-answering model on the Hugging Face Hub works.")
	cmd.Printf("Enter model name [%s]: ", current)
	model := readLine(reader)
	if model == "" {
		model = current
	}

	if err := settingsService.SetReaderModel(model); err != nil {
		return fmt.Errorf("failed to set reader model: %w", err)
	}

	// Validate the configuration by warming up the hosted model
	cmd.Print("Warming up the model (first load can take a minute)... ")
	if err := settingsService.ValidateReaderConfig(); err != nil {
		cmd.Printf("FAILED: %v\n", err)
		return fmt.Errorf("reader configuration validation failed: %w", err)
	}
	cmd.Println("OK")

	cmd.Printf("Reader model set to: %s\n\n", model)
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
