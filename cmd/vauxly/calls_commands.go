package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"vauxly/internal/api"
)

func newCallsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "calls",
		Short: "List stored calls",
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := api.ListCalls(cmd.Context(), api.ListCallsRequest{Config: ctx.configValue()})
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, summaries)
			}

			out := cmd.OutOrStdout()
			if len(summaries) == 0 {
				fmt.Fprintln(out, "No stored calls")
				return nil
			}
			rows := make([][]string, 0, len(summaries))
			for _, s := range summaries {
				rows = append(rows, []string{
					s.ID,
					s.CreatedAt.Local().Format(time.RFC3339),
					strconv.Itoa(s.UtteranceCount),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Call ID", "Created", "Utterances"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit call summaries as JSON")
	cmd.AddCommand(newCallsDeleteCommand(ctx))
	return cmd
}

func newCallsDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <call-id>",
		Short: "Remove a stored call",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := api.DeleteCall(cmd.Context(), api.DeleteCallRequest{
				Config: ctx.configValue(),
				CallID: args[0],
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted call %s\n", args[0])
			return nil
		},
	}
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <call-id>",
		Short: "Show a stored call's report and transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			call, err := api.GetCall(cmd.Context(), api.GetCallRequest{
				Config: ctx.configValue(),
				CallID: args[0],
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, call)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Call %s, recorded %s\n\n", call.ID, call.CreatedAt.Local().Format(time.RFC3339))
			writeReport(out, call.Report)
			writeTranscript(out, &call.Bundle)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the full call record as JSON")
	return cmd
}

func newJourneyCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "journey <call-id>",
		Short: "Show the customer's sentiment journey for a stored call",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			journey, err := api.CallJourney(cmd.Context(), api.CallJourneyRequest{
				Config: ctx.configValue(),
				CallID: args[0],
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, struct {
					Points  any     `json:"points"`
					Ceiling float64 `json:"ceiling"`
				}{journey.Points, journey.Ceiling})
			}

			out := cmd.OutOrStdout()
			if len(journey.Points) == 0 {
				fmt.Fprintln(out, "No customer utterances in this call")
				return nil
			}
			rows := make([][]string, 0, len(journey.Points))
			for _, p := range journey.Points {
				rows = append(rows, []string{
					formatClock(p.Time),
					formatScore(p.Score),
					p.Sentiment,
					p.Message,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Time", "Score", "Sentiment", "Message"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft},
			))
			fmt.Fprintf(out, "Suggested chart ceiling: %g\n", journey.Ceiling)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit journey points as JSON")
	return cmd
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "search <call-id> <phrase>",
		Short: "Locate a phrase in a stored call's transcript",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := api.SearchTranscript(cmd.Context(), api.SearchTranscriptRequest{
				Config: ctx.configValue(),
				CallID: args[0],
				Phrase: args[1],
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if found == nil {
				fmt.Fprintln(out, "No matching utterance")
				return nil
			}
			u := found.Utterance
			fmt.Fprintf(out, "[%s] %s: %s\n", formatClock(u.Timestamp), speakerLabel(u.Speaker), u.Message)
			return nil
		},
	}
}
