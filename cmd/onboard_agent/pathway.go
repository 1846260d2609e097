package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/pathway-onboarding/internal/auth"
	"github.com/jonathan/pathway-onboarding/internal/config"
	"github.com/jonathan/pathway-onboarding/internal/observability"
	"github.com/jonathan/pathway-onboarding/internal/schemas"
	"github.com/jonathan/pathway-onboarding/internal/types"
)

var generatePathwayCmd = &cobra.Command{
	Use:   "generate-pathway",
	Short: "Generate a learning pathway for the selected job",
	Long:  "Generate a personalized learning pathway for a job. Requires an authenticated bearer token (ONBOARD_AUTH_TOKEN or the token store); the anonymous session token is not sufficient.",
	RunE:  runGeneratePathway,
}

var getPathwayCmd = &cobra.Command{
	Use:   "get-pathway",
	Short: "Fetch a generated pathway",
	RunE:  runGetPathway,
}

var (
	pathwayJobID   string
	pathwayGoals   string
	pathwayCourse  string
	pathwayGenMode string

	getPathwayID    string
	getPathwayWeeks bool
)

func init() {
	generatePathwayCmd.Flags().StringVar(&pathwayJobID, "job-id", "", "Job identifier to generate a pathway for (required)")
	generatePathwayCmd.Flags().StringVar(&pathwayGoals, "goals", "", "Free-text description of desired goals")
	generatePathwayCmd.Flags().StringVar(&pathwayCourse, "course-mode", string(types.CourseModeParallel), "Course layout mode: parallel or sequential")
	generatePathwayCmd.Flags().StringVar(&pathwayGenMode, "generation-mode", string(types.GenerationModeTopic), "Generation granularity: topic or lesson")
	generatePathwayCmd.MarkFlagRequired("job-id")

	getPathwayCmd.Flags().StringVar(&getPathwayID, "id", "", "Pathway identifier (required)")
	getPathwayCmd.Flags().BoolVar(&getPathwayWeeks, "weeks", false, "Include per-week detail")
	getPathwayCmd.MarkFlagRequired("id")

	rootCmd.AddCommand(generatePathwayCmd)
	rootCmd.AddCommand(getPathwayCmd)
}

// bearerToken resolves the authenticated token from config or the token
// store, failing fast locally when it is missing or already expired.
func bearerToken(cfg *config.ClientConfig) (string, error) {
	token := cfg.AuthToken
	if token == "" {
		tokens, err := tokenStore(cfg).Load()
		if err != nil {
			return "", err
		}
		token = tokens.AuthToken
	}
	if token == "" {
		return "", fmt.Errorf("an authenticated bearer token is required; set ONBOARD_AUTH_TOKEN")
	}
	if auth.BearerExpired(token, time.Now()) {
		return "", types.NewOnboardingError(types.CodeAuthExpired, "the bearer token has expired; authenticate again")
	}
	return token, nil
}

func runGeneratePathway(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	token, err := bearerToken(cfg)
	if err != nil {
		return err
	}

	client := newProtocolClient(cfg)
	summary, err := client.GeneratePathway(cmd.Context(), token, types.GeneratePathwayRequest{
		JobID:          pathwayJobID,
		DesiredGoals:   pathwayGoals,
		CourseMode:     types.CourseMode(pathwayCourse),
		GenerationMode: types.GenerationMode(pathwayGenMode),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Pathway %s generated for job %s (%d weeks)\n", summary.PathwayID, summary.JobID, summary.WeekCount)
	return nil
}

func runGetPathway(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	token, err := bearerToken(cfg)
	if err != nil {
		return err
	}

	client := newProtocolClient(cfg)
	pathway, err := client.GetPathway(cmd.Context(), token, getPathwayID, getPathwayWeeks)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		raw, err := json.Marshal(pathway)
		if err == nil {
			if verr := schemas.ValidatePathway(raw); verr != nil {
				fmt.Fprintf(os.Stderr, "Warning: pathway payload does not match the wire contract:\n%v\n", verr)
			}
		}
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintPathway(pathway)
	return nil
}
