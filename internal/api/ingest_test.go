package api_test

import (
	"context"
	"errors"
	"testing"

	"vauxly/internal/api"
	"vauxly/internal/reconcile"
	"vauxly/internal/testsupport"
)

func TestIngestBatchPairsAcrossInvocations(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	ctx := context.Background()

	first, err := api.IngestBatch(ctx, api.IngestBatchRequest{Config: cfg, Payload: customerPayload()})
	if err != nil {
		t.Fatalf("first IngestBatch failed: %v", err)
	}
	if first.Pending != 1 {
		t.Fatalf("expected one pending batch, got %d", first.Pending)
	}
	if first.CallID != "" {
		t.Fatalf("expected no call yet, got %q", first.CallID)
	}

	second, err := api.IngestBatch(ctx, api.IngestBatchRequest{Config: cfg, Payload: repPayload()})
	if err != nil {
		t.Fatalf("second IngestBatch failed: %v", err)
	}
	if second.Pending != 0 {
		t.Fatalf("expected pair completion, still %d pending", second.Pending)
	}
	if second.CallID == "" {
		t.Fatal("expected call ID after pairing")
	}

	call, err := api.GetCall(ctx, api.GetCallRequest{Config: cfg, CallID: second.CallID})
	if err != nil {
		t.Fatalf("GetCall failed: %v", err)
	}
	if len(call.Bundle.Conversation) != 3 {
		t.Fatalf("expected 3 utterances, got %d", len(call.Bundle.Conversation))
	}
	// First arrival is the customer stream.
	if got := call.Bundle.Conversation[0].Message; got != "I am interested in the product" {
		t.Errorf("first utterance = %q", got)
	}
}

func TestIngestBatchClearsPendingOnDecodeFailure(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	ctx := context.Background()

	if _, err := api.IngestBatch(ctx, api.IngestBatchRequest{Config: cfg, Payload: []byte("garbage")}); err != nil {
		t.Fatalf("first IngestBatch failed: %v", err)
	}
	_, err := api.IngestBatch(ctx, api.IngestBatchRequest{Config: cfg, Payload: repPayload()})
	if !errors.Is(err, reconcile.ErrReconciliation) {
		t.Fatalf("expected reconciliation error, got %v", err)
	}

	// A fresh, valid pair still completes.
	first, err := api.IngestBatch(ctx, api.IngestBatchRequest{Config: cfg, Payload: customerPayload()})
	if err != nil {
		t.Fatalf("IngestBatch after failure: %v", err)
	}
	if first.Pending != 1 {
		t.Fatalf("expected clean pending state, got %d", first.Pending)
	}
	second, err := api.IngestBatch(ctx, api.IngestBatchRequest{Config: cfg, Payload: repPayload()})
	if err != nil {
		t.Fatalf("IngestBatch completing pair: %v", err)
	}
	if second.CallID == "" {
		t.Fatal("expected recovery pair to produce a call")
	}
}
