package api

import (
	"context"
	"fmt"
	"log/slog"

	"vauxly/internal/callstore"
	"vauxly/internal/config"
	"vauxly/internal/logging"
	"vauxly/internal/metrics"
	"vauxly/internal/predictions"
	"vauxly/internal/reconcile"
)

type IngestBatchRequest struct {
	Config *config.Config
	Logger *slog.Logger
	// Payload is one raw emotion-job result. The first ingested payload of a
	// pair is the customer stream, the second the representative stream.
	Payload []byte
}

type IngestBatchResult struct {
	// Pending is the number of batches still held waiting for a partner.
	// Zero means the pair completed and a call record was written.
	Pending int
	CallID  string
	Report  metrics.Report
}

// IngestBatch stores a prediction batch in the pending slots and, when it
// completes a pair, reconciles, scores, and persists the call. The pairing
// runs under the cross-process ingest lock; a decode failure in either batch
// clears both slots so the next pair starts clean.
func IngestBatch(ctx context.Context, req IngestBatchRequest) (*IngestBatchResult, error) {
	cfg := req.Config
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	logger := req.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	store, err := callstore.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open call store: %w", err)
	}
	defer store.Close()

	var result IngestBatchResult
	err = store.WithIngestLock(ctx, func() error {
		pending, err := store.PendingBatches(ctx)
		if err != nil {
			return err
		}

		first, haveFirst := pending[1]
		if !haveFirst {
			if err := store.StorePendingBatch(ctx, 1, req.Payload); err != nil {
				return err
			}
			result.Pending = 1
			logger.Info("batch held pending partner")
			return nil
		}

		// Second arrival completes the pair. Clear the slots no matter how
		// decoding goes so a malformed pair never poisons the next call.
		if err := store.ClearPendingBatches(ctx); err != nil {
			return err
		}

		customer, err := predictions.Decode(first)
		if err != nil {
			return fmt.Errorf("%w: customer batch: %w", reconcile.ErrReconciliation, err)
		}
		rep, err := predictions.Decode(req.Payload)
		if err != nil {
			return fmt.Errorf("%w: representative batch: %w", reconcile.ErrReconciliation, err)
		}

		bundle := reconcile.CombineLabeled(customer, rep)
		report := metrics.Compute(bundle)
		call, err := store.SaveCall(ctx, bundle, report)
		if err != nil {
			return fmt.Errorf("persist call: %w", err)
		}

		result.CallID = call.ID
		result.Report = report
		logger.Info("call reconciled",
			"call_id", call.ID,
			"utterances", len(bundle.Conversation))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
