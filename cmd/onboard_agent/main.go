// Package main provides the onboarding CLI: it drives an anonymous user
// through resume submission, job exploration, job preview, job selection, and
// personalized-pathway generation against the onboarding API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/pathway-onboarding/internal/auth"
	"github.com/jonathan/pathway-onboarding/internal/config"
	"github.com/jonathan/pathway-onboarding/internal/onboarding"
	"github.com/jonathan/pathway-onboarding/internal/transport"
)

var rootCmd = &cobra.Command{
	Use:   "onboard_agent",
	Short: "Onboarding and job-matching client",
	Long:  "Onboard Agent drives the onboarding flow: submit a resume, explore and preview matched jobs, select one, and generate a personalized learning pathway.",
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed output")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig builds the client configuration, folding in the verbose flag.
func loadConfig() (*config.ClientConfig, error) {
	cfg, err := config.NewClientConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.Verbose = verbose
	return cfg, nil
}

// newProtocolClient creates the onboarding client from configuration.
func newProtocolClient(cfg *config.ClientConfig) *onboarding.Client {
	return onboarding.NewClient(cfg.BaseURL, &transport.Options{
		Timeout:   cfg.Timeout,
		UserAgent: transport.DefaultUserAgent,
	})
}

// tokenStore opens the on-disk token store for the configured path.
func tokenStore(cfg *config.ClientConfig) *auth.Store {
	return auth.NewStore(cfg.TokenFile)
}
