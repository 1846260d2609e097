package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/pathway-onboarding/internal/explore"
	"github.com/jonathan/pathway-onboarding/internal/observability"
	"github.com/jonathan/pathway-onboarding/internal/resume"
	"github.com/jonathan/pathway-onboarding/internal/types"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Explore ranked job candidates for the current session",
	RunE:  runExplore,
}

var (
	exploreJob        string
	exploreResumeFile string
	exploreLimit      int
)

func init() {
	exploreCmd.Flags().StringVarP(&exploreJob, "job", "j", "", "Desired job title (required)")
	exploreCmd.Flags().StringVarP(&exploreResumeFile, "resume", "r", "", "Path to a resume file; its text is sent for skill-gap scoring")
	exploreCmd.Flags().IntVarP(&exploreLimit, "limit", "n", types.DefaultExploreLimit, "Maximum number of candidates to fetch")

	rootCmd.AddCommand(exploreCmd)
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tokens, err := tokenStore(cfg).Load()
	if err != nil {
		return err
	}

	var resumeText string
	if exploreResumeFile != "" {
		resumeText, err = resume.LoadText(exploreResumeFile)
		if err != nil {
			return err
		}
	}

	session := explore.NewSession(newProtocolClient(cfg))
	err = session.FetchList(cmd.Context(), types.ExploreRequest{
		SessionToken: tokens.SessionToken,
		DesiredJob:   exploreJob,
		ResumeText:   resumeText,
		Limit:        exploreLimit,
	})
	if err != nil {
		return err
	}

	jobs := session.Jobs()
	if len(jobs) == 0 {
		fmt.Println("No matching jobs found.")
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintJobList(jobs, session.TotalJobs())
	return nil
}
