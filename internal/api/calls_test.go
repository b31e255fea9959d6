package api_test

import (
	"context"
	"errors"
	"testing"

	"vauxly/internal/api"
	"vauxly/internal/callstore"
	"vauxly/internal/testsupport"
)

func TestListAndDeleteCalls(t *testing.T) {
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

	summaries, err := api.ListCalls(ctx, api.ListCallsRequest{Config: cfg})
	if err != nil {
		t.Fatalf("ListCalls failed: %v", err)
	}
	if len(summaries) != 1 || summaries[0].ID != result.CallID {
		t.Fatalf("unexpected summaries: %#v", summaries)
	}

	if err := api.DeleteCall(ctx, api.DeleteCallRequest{Config: cfg, CallID: result.CallID}); err != nil {
		t.Fatalf("DeleteCall failed: %v", err)
	}
	_, err = api.GetCall(ctx, api.GetCallRequest{Config: cfg, CallID: result.CallID})
	if !errors.Is(err, callstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestCallJourney(t *testing.T) {
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

	journey, err := api.CallJourney(ctx, api.CallJourneyRequest{Config: cfg, CallID: result.CallID})
	if err != nil {
		t.Fatalf("CallJourney failed: %v", err)
	}
	if len(journey.Points) != 2 {
		t.Fatalf("expected 2 journey points, got %d", len(journey.Points))
	}
	// Highest raw score is 0.7, so the ceiling is 0.7 * 1.3.
	if journey.Ceiling != 0.91 {
		t.Errorf("Ceiling = %v, want 0.91", journey.Ceiling)
	}
}

func TestSearchTranscript(t *testing.T) {
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

	found, err := api.SearchTranscript(ctx, api.SearchTranscriptRequest{
		Config: cfg,
		CallID: result.CallID,
		Phrase: "INTERESTED IN THE PRODUCT",
	})
	if err != nil {
		t.Fatalf("SearchTranscript failed: %v", err)
	}
	if found == nil || found.Index != 0 {
		t.Fatalf("unexpected search result: %#v", found)
	}

	missing, err := api.SearchTranscript(ctx, api.SearchTranscriptRequest{
		Config: cfg,
		CallID: result.CallID,
		Phrase: "zzzz qqqq xxxx",
	})
	if err != nil {
		t.Fatalf("SearchTranscript failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected no match, got %#v", missing)
	}
}
