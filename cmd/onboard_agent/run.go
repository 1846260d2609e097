package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/pathway-onboarding/internal/explore"
	"github.com/jonathan/pathway-onboarding/internal/observability"
	"github.com/jonathan/pathway-onboarding/internal/resume"
	"github.com/jonathan/pathway-onboarding/internal/types"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full onboarding flow end to end",
	Long:  "Start a session, explore ranked jobs, preview and select the top candidate, and — when a bearer token is configured — generate and fetch a learning pathway.",
	RunE:  runFlow,
}

var (
	runJob        string
	runResumeFile string
	runLimit      int
	runGoals      string
	runCourse     string
	runGenMode    string
)

func init() {
	runCmd.Flags().StringVarP(&runJob, "job", "j", "", "Desired job title (required)")
	runCmd.Flags().StringVarP(&runResumeFile, "resume", "r", "", "Path to a resume file")
	runCmd.Flags().IntVarP(&runLimit, "limit", "n", types.DefaultExploreLimit, "Maximum number of candidates to fetch")
	runCmd.Flags().StringVar(&runGoals, "goals", "", "Free-text description of desired goals for pathway generation")
	runCmd.Flags().StringVar(&runCourse, "course-mode", string(types.CourseModeParallel), "Course layout mode: parallel or sequential")
	runCmd.Flags().StringVar(&runGenMode, "generation-mode", string(types.GenerationModeTopic), "Generation granularity: topic or lesson")

	runCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(runCmd)
}

func runFlow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	printer := observability.NewPrinter(os.Stdout)

	var resumeText string
	if runResumeFile != "" {
		resumeText, err = resume.LoadText(runResumeFile)
		if err != nil {
			return err
		}
	}

	client := newProtocolClient(cfg)
	started, err := client.Start(ctx, types.StartRequest{
		DesiredJob: runJob,
		ResumeText: resumeText,
	})
	if err != nil {
		return err
	}
	fmt.Println("Session started.")

	store := tokenStore(cfg)
	tokens, err := store.Load()
	if err != nil {
		return err
	}
	tokens.SessionToken = started.SessionToken
	if err := store.Save(tokens); err != nil {
		return err
	}

	session := explore.NewSession(client)
	err = session.FetchList(ctx, types.ExploreRequest{
		SessionToken: started.SessionToken,
		DesiredJob:   runJob,
		ResumeText:   resumeText,
		Limit:        runLimit,
	})
	if err != nil {
		return err
	}

	jobs := session.Jobs()
	if len(jobs) == 0 {
		fmt.Println("No matching jobs found.")
		return nil
	}
	printer.PrintJobList(jobs, session.TotalJobs())

	// Preview and selection both key off the top candidate's id and are
	// independent of each other, so they run concurrently.
	top := jobs[0]
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return session.FetchPreview(gctx, types.PreviewRequest{
			JobID:        top.ID,
			SessionToken: started.SessionToken,
			ResumeText:   resumeText,
		})
	})
	g.Go(func() error {
		_, err := client.SelectJob(gctx, started.SessionToken, top.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	printer.PrintJobPreview(session.Preview())
	fmt.Printf("Selected job %s\n", top.ID)

	// Pathway generation requires the authenticated identity; without a
	// bearer token the flow ends at selection.
	token, err := bearerToken(cfg)
	if err != nil {
		fmt.Printf("Skipping pathway generation: %v\n", err)
		return nil
	}

	summary, err := client.GeneratePathway(ctx, token, types.GeneratePathwayRequest{
		JobID:          top.ID,
		DesiredGoals:   runGoals,
		CourseMode:     types.CourseMode(runCourse),
		GenerationMode: types.GenerationMode(runGenMode),
	})
	if err != nil {
		return err
	}
	fmt.Printf("Pathway %s generated (%d weeks)\n", summary.PathwayID, summary.WeekCount)

	pathway, err := client.GetPathway(ctx, token, summary.PathwayID, true)
	if err != nil {
		return err
	}
	printer.PrintPathway(pathway)
	return nil
}
