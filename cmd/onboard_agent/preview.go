package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/pathway-onboarding/internal/explore"
	"github.com/jonathan/pathway-onboarding/internal/observability"
	"github.com/jonathan/pathway-onboarding/internal/resume"
	"github.com/jonathan/pathway-onboarding/internal/types"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview one job with requirements and skill gaps",
	RunE:  runPreview,
}

var (
	previewJobID      string
	previewResumeFile string
)

func init() {
	previewCmd.Flags().StringVar(&previewJobID, "job-id", "", "Job identifier to preview (required)")
	previewCmd.Flags().StringVarP(&previewResumeFile, "resume", "r", "", "Path to a resume file; its text is sent for skill-gap scoring")

	previewCmd.MarkFlagRequired("job-id")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tokens, err := tokenStore(cfg).Load()
	if err != nil {
		return err
	}

	var resumeText string
	if previewResumeFile != "" {
		resumeText, err = resume.LoadText(previewResumeFile)
		if err != nil {
			return err
		}
	}

	session := explore.NewSession(newProtocolClient(cfg))
	err = session.FetchPreview(cmd.Context(), types.PreviewRequest{
		JobID:        previewJobID,
		SessionToken: tokens.SessionToken,
		ResumeText:   resumeText,
	})
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintJobPreview(session.Preview())
	return nil
}
