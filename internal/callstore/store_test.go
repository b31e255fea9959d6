package callstore_test

import (
	"context"
	"errors"
	"testing"

	"vauxly/internal/callstore"
	"vauxly/internal/conversation"
	"vauxly/internal/metrics"
	"vauxly/internal/testsupport"
)

func sampleBundle() *conversation.Bundle {
	return testsupport.Bundle(
		testsupport.Utterance(conversation.SpeakerCustomer, 0, 2, "hello there",
			testsupport.Sentiment("Joy", 0.8)),
		testsupport.Utterance(conversation.SpeakerRep, 2, 5, "hi, how can I help you today?",
			testsupport.Sentiment("Interest", 0.6)),
	)
}

func TestSaveAndGetCall(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	bundle := sampleBundle()
	report := metrics.Compute(bundle)

	call, err := store.SaveCall(ctx, bundle, report)
	if err != nil {
		t.Fatalf("SaveCall failed: %v", err)
	}
	if call.ID == "" {
		t.Fatal("expected call ID to be assigned")
	}

	fetched, err := store.GetCall(ctx, call.ID)
	if err != nil {
		t.Fatalf("GetCall failed: %v", err)
	}
	if len(fetched.Bundle.Conversation) != 2 {
		t.Fatalf("expected 2 utterances, got %d", len(fetched.Bundle.Conversation))
	}
	if fetched.Bundle.Conversation[0].Message != "hello there" {
		t.Fatalf("unexpected first utterance: %#v", fetched.Bundle.Conversation[0])
	}
	if fetched.Report.CallControl != report.CallControl {
		t.Fatalf("report round trip mismatch: got %v want %v", fetched.Report.CallControl, report.CallControl)
	}
}

func TestGetCallNotFound(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	_, err := store.GetCall(context.Background(), "missing-id")
	if !errors.Is(err, callstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListCallsNewestFirst(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	bundle := sampleBundle()
	report := metrics.Compute(bundle)

	first, err := store.SaveCall(ctx, bundle, report)
	if err != nil {
		t.Fatalf("SaveCall failed: %v", err)
	}
	second, err := store.SaveCall(ctx, bundle, report)
	if err != nil {
		t.Fatalf("SaveCall failed: %v", err)
	}

	summaries, err := store.ListCalls(ctx)
	if err != nil {
		t.Fatalf("ListCalls failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].ID != second.ID || summaries[1].ID != first.ID {
		t.Fatalf("expected newest first ordering, got %v then %v", summaries[0].ID, summaries[1].ID)
	}
	if summaries[0].UtteranceCount != 2 {
		t.Fatalf("expected utterance count 2, got %d", summaries[0].UtteranceCount)
	}
}

func TestDeleteCall(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	bundle := sampleBundle()
	call, err := store.SaveCall(ctx, bundle, metrics.Compute(bundle))
	if err != nil {
		t.Fatalf("SaveCall failed: %v", err)
	}

	if err := store.DeleteCall(ctx, call.ID); err != nil {
		t.Fatalf("DeleteCall failed: %v", err)
	}
	if err := store.DeleteCall(ctx, call.ID); !errors.Is(err, callstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestPendingBatchLifecycle(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	pending, err := store.PendingBatches(ctx)
	if err != nil {
		t.Fatalf("PendingBatches failed: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected no pending batches, got %d", len(pending))
	}

	if err := store.StorePendingBatch(ctx, 1, []byte(`{"a":1}`)); err != nil {
		t.Fatalf("StorePendingBatch failed: %v", err)
	}
	if err := store.StorePendingBatch(ctx, 2, []byte(`{"b":2}`)); err != nil {
		t.Fatalf("StorePendingBatch failed: %v", err)
	}

	pending, err = store.PendingBatches(ctx)
	if err != nil {
		t.Fatalf("PendingBatches failed: %v", err)
	}
	if string(pending[1]) != `{"a":1}` || string(pending[2]) != `{"b":2}` {
		t.Fatalf("unexpected pending payloads: %v", pending)
	}

	if err := store.ClearPendingBatches(ctx); err != nil {
		t.Fatalf("ClearPendingBatches failed: %v", err)
	}
	pending, err = store.PendingBatches(ctx)
	if err != nil {
		t.Fatalf("PendingBatches failed: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected cleared pending batches, got %d", len(pending))
	}
}

func TestStorePendingBatchRejectsInvalidSlot(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	if err := store.StorePendingBatch(context.Background(), 3, []byte("{}")); err == nil {
		t.Fatal("expected error for invalid slot")
	}
}

func TestWithIngestLockRuns(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ran := false
	err := store.WithIngestLock(context.Background(), func() error {
		ran = true
		return nil
	})
	if err != nil {
		t.Fatalf("WithIngestLock failed: %v", err)
	}
	if !ran {
		t.Fatal("expected locked function to run")
	}
}
