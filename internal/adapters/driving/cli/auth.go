package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the Hugging Face API token",
	Long: `Store, inspect, or clear the Hugging Face API token.

Everything works without a token. Adding one raises dataset-server
rate limits and authorises the Inference API, which shortens cold
model loads.

Create a token at https://huggingface.co/settings/tokens (read access
is enough).`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a Hugging Face API token",
	RunE:  runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the stored token, masked",
	RunE:  runAuthStatus,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored token",
	RunE:  runAuthLogout,
}

// authToken lets scripts pass the token as a flag instead of typing it.
var authToken string

func init() {
	authLoginCmd.Flags().StringVar(&authToken, "token", "", "token value (prompted when omitted)")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authLogoutCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	token := strings.TrimSpace(authToken)
	if token == "" {
		cmd.Print("Enter Hugging Face API token: ")
		token = readPassword()
		cmd.Println()
	}
	if token == "" {
		return errors.New("no token entered")
	}

	if err := settingsService.SetToken(token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	cmd.Printf("Token stored: %s\n", maskAPIKey(token))
	return nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	token, err := settingsService.Token()
	if err != nil {
		return fmt.Errorf("failed to read token: %w", err)
	}

	if token == "" {
		cmd.Println("No token stored. Using anonymous access.")
		cmd.Println("Add one with: courtside auth login")
		return nil
	}

	cmd.Printf("Token: %s\n", maskAPIKey(token))
	return nil
}

func runAuthLogout(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.SetToken(""); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}

	cmd.Println("Token cleared. Using anonymous access.")
	return nil
}
