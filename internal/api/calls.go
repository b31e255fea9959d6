package api

import (
	"context"
	"fmt"
	"strings"

	"vauxly/internal/callstore"
	"vauxly/internal/config"
	"vauxly/internal/conversation"
	"vauxly/internal/metrics"
)

type ListCallsRequest struct {
	Config *config.Config
}

// ListCalls returns summaries of every stored call, newest first.
func ListCalls(ctx context.Context, req ListCallsRequest) ([]callstore.Summary, error) {
	if req.Config == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	store, err := callstore.Open(req.Config)
	if err != nil {
		return nil, fmt.Errorf("open call store: %w", err)
	}
	defer store.Close()
	return store.ListCalls(ctx)
}

type GetCallRequest struct {
	Config *config.Config
	CallID string
}

// GetCall fetches one stored call record.
func GetCall(ctx context.Context, req GetCallRequest) (*callstore.Call, error) {
	if req.Config == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if strings.TrimSpace(req.CallID) == "" {
		return nil, fmt.Errorf("call id is required")
	}
	store, err := callstore.Open(req.Config)
	if err != nil {
		return nil, fmt.Errorf("open call store: %w", err)
	}
	defer store.Close()
	return store.GetCall(ctx, req.CallID)
}

type DeleteCallRequest struct {
	Config *config.Config
	CallID string
}

// DeleteCall removes one stored call record.
func DeleteCall(ctx context.Context, req DeleteCallRequest) error {
	if req.Config == nil {
		return fmt.Errorf("configuration is required")
	}
	if strings.TrimSpace(req.CallID) == "" {
		return fmt.Errorf("call id is required")
	}
	store, err := callstore.Open(req.Config)
	if err != nil {
		return fmt.Errorf("open call store: %w", err)
	}
	defer store.Close()
	return store.DeleteCall(ctx, req.CallID)
}

type CallJourneyRequest struct {
	Config *config.Config
	CallID string
}

type CallJourneyResult struct {
	Points  []metrics.JourneyPoint
	Ceiling float64
}

// CallJourney returns the stored call's customer sentiment journey along
// with the suggested chart ceiling.
func CallJourney(ctx context.Context, req CallJourneyRequest) (*CallJourneyResult, error) {
	call, err := GetCall(ctx, GetCallRequest{Config: req.Config, CallID: req.CallID})
	if err != nil {
		return nil, err
	}
	return &CallJourneyResult{
		Points:  call.Report.Journey,
		Ceiling: metrics.JourneyCeiling(&call.Bundle),
	}, nil
}

type SearchTranscriptRequest struct {
	Config *config.Config
	CallID string
	Phrase string
}

type SearchTranscriptResult struct {
	Index     int
	Utterance conversation.Utterance
}

// SearchTranscript locates a phrase inside a stored call's transcript.
// Fuzzy fingerprint fallback follows the search.fuzzy_fallback config
// setting. Returns callstore.ErrNotFound semantics for the call and a nil
// result when the phrase does not match.
func SearchTranscript(ctx context.Context, req SearchTranscriptRequest) (*SearchTranscriptResult, error) {
	call, err := GetCall(ctx, GetCallRequest{Config: req.Config, CallID: req.CallID})
	if err != nil {
		return nil, err
	}

	find := conversation.FindMessageExact
	if req.Config.Search.FuzzyFallback {
		find = conversation.FindMessage
	}
	index, ok := find(call.Bundle.Conversation, req.Phrase)
	if !ok {
		return nil, nil
	}
	return &SearchTranscriptResult{
		Index:     index,
		Utterance: call.Bundle.Conversation[index],
	}, nil
}
