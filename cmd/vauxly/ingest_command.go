package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vauxly/internal/api"
	"vauxly/internal/reconcile"
)

func newIngestCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "ingest <batch.json>",
		Short: "Submit one prediction batch toward the next call",
		Long: `Ingest accepts one emotion-job result at a time, across separate
invocations. The first batch of a pair is held as the customer stream; the
second completes the pair, reconciles the transcript, scores it, and stores
the call. A malformed pair is discarded so the next ingest starts clean.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read batch: %w", err)
			}

			result, err := api.IngestBatch(cmd.Context(), api.IngestBatchRequest{
				Config:  ctx.configValue(),
				Logger:  ctx.ensureLogger(),
				Payload: payload,
			})
			if err != nil {
				if errors.Is(err, reconcile.ErrReconciliation) {
					ctx.ensureLogger().Error("ingest failed", "error", err)
					return errors.New("no conversation data available")
				}
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, struct {
					Pending int    `json:"pending"`
					CallID  string `json:"call_id,omitempty"`
				}{result.Pending, result.CallID})
			}

			out := cmd.OutOrStdout()
			if result.Pending > 0 {
				fmt.Fprintln(out, "Batch held; waiting for the partner batch")
				return nil
			}
			fmt.Fprintf(out, "Call %s reconciled and scored\n", result.CallID)
			writeReport(out, result.Report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the ingest outcome as JSON")
	return cmd
}
