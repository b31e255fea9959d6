package api

import (
	"context"
	"fmt"
	"log/slog"

	"vauxly/internal/callstore"
	"vauxly/internal/config"
	"vauxly/internal/conversation"
	"vauxly/internal/logging"
	"vauxly/internal/metrics"
	"vauxly/internal/predictions"
	"vauxly/internal/reconcile"
)

type ScoreCallRequest struct {
	Config *config.Config
	Logger *slog.Logger
	// CustomerBatch and RepBatch are the raw emotion-job result payloads for
	// each party.
	CustomerBatch []byte
	RepBatch      []byte
	// Save persists the reconciled bundle and its report as a call record.
	Save bool
}

type ScoreCallResult struct {
	// CallID is set only when the call was persisted.
	CallID string
	Bundle *conversation.Bundle
	Report metrics.Report
}

// ScoreCall reconciles two labeled prediction batches into a transcript and
// derives its full metrics report, optionally persisting the result.
func ScoreCall(ctx context.Context, req ScoreCallRequest) (*ScoreCallResult, error) {
	cfg := req.Config
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	logger := req.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	customer, err := predictions.Decode(req.CustomerBatch)
	if err != nil {
		return nil, fmt.Errorf("decode customer batch: %w", err)
	}
	rep, err := predictions.Decode(req.RepBatch)
	if err != nil {
		return nil, fmt.Errorf("decode representative batch: %w", err)
	}

	bundle := reconcile.CombineLabeled(customer, rep)
	report := metrics.Compute(bundle)
	logger.Info("call scored",
		"utterances", len(bundle.Conversation),
		"rep_certainty", report.RepCertainty,
		"call_control", report.CallControl)

	result := &ScoreCallResult{Bundle: bundle, Report: report}
	if !req.Save {
		return result, nil
	}

	store, err := callstore.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open call store: %w", err)
	}
	defer store.Close()

	call, err := store.SaveCall(ctx, bundle, report)
	if err != nil {
		return nil, fmt.Errorf("persist call: %w", err)
	}
	result.CallID = call.ID
	logger.Info("call persisted", "call_id", call.ID)
	return result, nil
}
