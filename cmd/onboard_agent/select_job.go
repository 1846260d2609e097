package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Select a job for the current session",
	RunE:  runSelect,
}

var selectJobID string

func init() {
	selectCmd.Flags().StringVar(&selectJobID, "job-id", "", "Job identifier to select (required)")

	selectCmd.MarkFlagRequired("job-id")

	rootCmd.AddCommand(selectCmd)
}

func runSelect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tokens, err := tokenStore(cfg).Load()
	if err != nil {
		return err
	}
	if tokens.SessionToken == "" {
		return fmt.Errorf("no session token found; run 'onboard_agent start' first")
	}

	client := newProtocolClient(cfg)
	result, err := client.SelectJob(cmd.Context(), tokens.SessionToken, selectJobID)
	if err != nil {
		return err
	}

	fmt.Printf("Selected job %s\n", result.JobID)
	return nil
}
