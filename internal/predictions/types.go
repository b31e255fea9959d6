package predictions

import "vauxly/internal/emotion"

// Result is one record from a batch job's result list. Exactly one of the
// two shapes is normally populated: Predictions (nested shape) or Models
// (direct shape). Both may be absent, in which case the record contributes
// no utterances.
type Result struct {
	Predictions []Prediction `json:"predictions,omitempty"`
	Models      *Models      `json:"models,omitempty"`
}

// Prediction is one entry of the nested shape, carrying a per-model
// breakdown.
type Prediction struct {
	Models *Models `json:"models,omitempty"`
}

// Models is the per-model breakdown; only the prosody model carries grouped
// utterance predictions.
type Models struct {
	Prosody *Prosody `json:"prosody,omitempty"`
}

// Prosody groups utterance predictions by audio segment.
type Prosody struct {
	GroupedPredictions []Group `json:"grouped_predictions,omitempty"`
}

// Group is one grouped-prediction block.
type Group struct {
	Predictions []UtterancePrediction `json:"predictions,omitempty"`
}

// UtterancePrediction is one predicted utterance with its emotion scores and
// timing. Time may be absent; callers treat missing timing as zero.
type UtterancePrediction struct {
	Text     string          `json:"text,omitempty"`
	Emotions []emotion.Score `json:"emotions,omitempty"`
	Time     *Window         `json:"time,omitempty"`
}

// Window is the begin/end time pair of an utterance, in seconds.
type Window struct {
	Begin float64 `json:"begin"`
	End   float64 `json:"end"`
}

// Begin returns the utterance start time, or 0 when timing is absent.
func (u UtterancePrediction) Begin() float64 {
	if u.Time == nil {
		return 0
	}
	return u.Time.Begin
}

// End returns the utterance end time, or 0 when timing is absent.
func (u UtterancePrediction) End() float64 {
	if u.Time == nil {
		return 0
	}
	return u.Time.End
}

// CallbackPayload is the explicitly-labeled container pair delivered by the
// inference service's completion callback: response1 holds the customer
// stream, response2 the representative stream.
type CallbackPayload struct {
	Response1 *JobResponse `json:"response1,omitempty"`
	Response2 *JobResponse `json:"response2,omitempty"`
}

// JobResponse wraps one job's callback body.
type JobResponse struct {
	CallbackResponse *CallbackResponse `json:"callback_response,omitempty"`
}

// CallbackResponse carries the job's result records.
type CallbackResponse struct {
	Predictions []Result `json:"predictions,omitempty"`
}

// Results returns the job's result records, tolerating absent wrappers.
func (j *JobResponse) Results() []Result {
	if j == nil || j.CallbackResponse == nil {
		return nil
	}
	return j.CallbackResponse.Predictions
}
