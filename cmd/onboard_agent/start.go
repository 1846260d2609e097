package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/pathway-onboarding/internal/resume"
	"github.com/jonathan/pathway-onboarding/internal/types"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start an anonymous onboarding session",
	Long:  "Start an anonymous onboarding session with a desired job title and an optional resume. The issued session token is stored for subsequent commands.",
	RunE:  runStart,
}

var (
	startJob         string
	startResumePath  string
	startResumeText  string
	startExtractText bool
)

func init() {
	startCmd.Flags().StringVarP(&startJob, "job", "j", "", "Desired job title (required)")
	startCmd.Flags().StringVarP(&startResumePath, "resume", "r", "", "Path to a resume file to upload")
	startCmd.Flags().StringVar(&startResumeText, "resume-text", "", "Inline resume text")
	startCmd.Flags().BoolVar(&startExtractText, "extract-text", false, "Extract text from the resume file and send it as resume_text instead of uploading")

	startCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	if startResumePath != "" && startResumeText != "" {
		return fmt.Errorf("--resume and --resume-text are mutually exclusive; provide only one")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	req := types.StartRequest{
		DesiredJob: startJob,
		ResumeText: startResumeText,
	}
	if startResumePath != "" {
		if startExtractText {
			text, err := resume.LoadText(startResumePath)
			if err != nil {
				return err
			}
			req.ResumeText = text
		} else {
			req.ResumePath = startResumePath
		}
	}

	client := newProtocolClient(cfg)
	result, err := client.Start(cmd.Context(), req)
	if err != nil {
		return err
	}

	store := tokenStore(cfg)
	tokens, err := store.Load()
	if err != nil {
		return err
	}
	tokens.SessionToken = result.SessionToken
	if err := store.Save(tokens); err != nil {
		return err
	}

	fmt.Printf("Session started. Token stored in %s\n", cfg.TokenFile)
	if len(result.Recommendations) > 0 {
		fmt.Printf("Initial recommendations: %d\n", len(result.Recommendations))
		for i, job := range result.Recommendations {
			fmt.Printf("  %d. %s\n", i+1, job.Title)
		}
	}
	return nil
}
