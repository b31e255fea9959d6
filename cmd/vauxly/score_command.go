package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vauxly/internal/api"
)

func newScoreCommand(ctx *commandContext) *cobra.Command {
	var save bool
	var jsonOutput bool
	var showTranscript bool

	cmd := &cobra.Command{
		Use:   "score <customer-batch.json> <rep-batch.json>",
		Short: "Reconcile two prediction batches and derive call scores",
		Long: `Score reads the raw emotion-job results for both parties of a call,
merges them into one chronological transcript, and derives the full set of
call-review metrics. Use --save to persist the call for later inspection.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			customerRaw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read customer batch: %w", err)
			}
			repRaw, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read representative batch: %w", err)
			}

			result, err := api.ScoreCall(cmd.Context(), api.ScoreCallRequest{
				Config:        ctx.configValue(),
				Logger:        ctx.ensureLogger(),
				CustomerBatch: customerRaw,
				RepBatch:      repRaw,
				Save:          save,
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, struct {
					CallID string `json:"call_id,omitempty"`
					Report any    `json:"report"`
					Bundle any    `json:"bundle"`
				}{result.CallID, result.Report, result.Bundle})
			}

			out := cmd.OutOrStdout()
			writeReport(out, result.Report)
			if showTranscript {
				writeTranscript(out, result.Bundle)
			}
			if result.CallID != "" {
				fmt.Fprintf(out, "Saved call %s\n", result.CallID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Persist the scored call")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the report and transcript as JSON")
	cmd.Flags().BoolVar(&showTranscript, "transcript", false, "Print the reconciled transcript")
	return cmd
}
