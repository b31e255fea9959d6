package reconcile

import (
	"errors"
	"sort"

	"vauxly/internal/conversation"
	"vauxly/internal/emotion"
	"vauxly/internal/predictions"
)

// ErrReconciliation tags any failure while decoding or projecting raw
// prediction batches. Callers surface it as "no conversation data available"
// rather than exposing payload internals.
var ErrReconciliation = errors.New("reconciliation failed")

// project converts one raw batch into speaker-labeled utterances. Malformed
// or absent nesting inside the batch degrades to zero utterances.
func project(results []predictions.Result, speaker conversation.Speaker) []conversation.Utterance {
	flat := predictions.Flatten(results)
	out := make([]conversation.Utterance, 0, len(flat))
	for _, pred := range flat {
		out = append(out, conversation.Utterance{
			Speaker:       speaker,
			Timestamp:     pred.Begin(),
			TimestampEnd:  pred.End(),
			Message:       pred.Text,
			TopSentiments: emotion.TopSentiments(pred.Emotions),
		})
	}
	return out
}

// merge concatenates projected streams and stable-sorts the result by start
// timestamp, so equal timestamps keep their per-stream insertion order.
func merge(streams ...[]conversation.Utterance) *conversation.Bundle {
	var all []conversation.Utterance
	for _, stream := range streams {
		all = append(all, stream...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Timestamp < all[j].Timestamp
	})
	return &conversation.Bundle{Conversation: all}
}

// CombineLabeled builds a bundle from two already-decoded, explicitly
// labeled batches.
func CombineLabeled(customer, rep []predictions.Result) *conversation.Bundle {
	return merge(
		project(customer, conversation.SpeakerCustomer),
		project(rep, conversation.SpeakerRep),
	)
}

// Combine is the stateless reconciliation entry point. It returns (nil, nil)
// when either labeled container is absent, signaling that the pair is not
// ready yet; otherwise it projects both streams and returns the merged
// bundle immediately.
func Combine(payload predictions.CallbackPayload) (*conversation.Bundle, error) {
	if payload.Response1 == nil || payload.Response2 == nil {
		return nil, nil
	}
	return CombineLabeled(payload.Response1.Results(), payload.Response2.Results()), nil
}
