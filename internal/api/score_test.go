package api_test

import (
	"context"
	"testing"

	"vauxly/internal/api"
	"vauxly/internal/conversation"
	"vauxly/internal/testsupport"
)

func customerPayload() []byte {
	return testsupport.BatchPayload(
		testsupport.PredictionEntry("I am interested in the product", 0, 3, "Interest", 0.7),
		testsupport.PredictionEntry("tell me more", 8, 10, "Excitement", 0.5),
	)
}

func repPayload() []byte {
	return testsupport.BatchPayload(
		testsupport.PredictionEntry("how are you today?", 4, 7, "Calmness", 0.6),
	)
}

func TestScoreCall(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	result, err := api.ScoreCall(context.Background(), api.ScoreCallRequest{
		Config:        cfg,
		CustomerBatch: customerPayload(),
		RepBatch:      repPayload(),
	})
	if err != nil {
		t.Fatalf("ScoreCall failed: %v", err)
	}
	if result.CallID != "" {
		t.Errorf("expected no call ID without save, got %q", result.CallID)
	}
	if got := len(result.Bundle.Conversation); got != 3 {
		t.Fatalf("expected 3 utterances, got %d", got)
	}
	if result.Bundle.Conversation[1].Speaker != conversation.SpeakerRep {
		t.Errorf("expected middle utterance from rep, got %s", result.Bundle.Conversation[1].Speaker)
	}
	if result.Report.CallControl != 100 {
		t.Errorf("CallControl = %v, want 100", result.Report.CallControl)
	}
	if len(result.Report.Journey) != 2 {
		t.Errorf("expected 2 journey points, got %d", len(result.Report.Journey))
	}
}

func TestScoreCallSavePersists(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	ctx := context.Background()

	result, err := api.ScoreCall(ctx, api.ScoreCallRequest{
		Config:        cfg,
		CustomerBatch: customerPayload(),
		RepBatch:      repPayload(),
		Save:          true,
	})
	if err != nil {
		t.Fatalf("ScoreCall failed: %v", err)
	}
	if result.CallID == "" {
		t.Fatal("expected call ID after save")
	}

	call, err := api.GetCall(ctx, api.GetCallRequest{Config: cfg, CallID: result.CallID})
	if err != nil {
		t.Fatalf("GetCall failed: %v", err)
	}
	if len(call.Bundle.Conversation) != 3 {
		t.Fatalf("expected persisted bundle with 3 utterances, got %d", len(call.Bundle.Conversation))
	}
}

func TestScoreCallRejectsMalformedBatch(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	_, err := api.ScoreCall(context.Background(), api.ScoreCallRequest{
		Config:        cfg,
		CustomerBatch: []byte("not json"),
		RepBatch:      repPayload(),
	})
	if err == nil {
		t.Fatal("expected error for malformed customer batch")
	}
}

func TestScoreCallRequiresConfig(t *testing.T) {
	_, err := api.ScoreCall(context.Background(), api.ScoreCallRequest{
		CustomerBatch: customerPayload(),
		RepBatch:      repPayload(),
	})
	if err == nil {
		t.Fatal("expected error without configuration")
	}
}
