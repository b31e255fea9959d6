package predictions

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Utterances flattens a result record into its utterance predictions,
// handling both the nested and the direct shape. Predictions without text
// are dropped. The nested shape takes precedence when both are somehow
// present, matching the upstream payload contract.
func (r Result) Utterances() []UtterancePrediction {
	var out []UtterancePrediction
	if len(r.Predictions) > 0 {
		for _, pred := range r.Predictions {
			out = appendGrouped(out, pred.Models)
		}
		return out
	}
	return appendGrouped(out, r.Models)
}

func appendGrouped(dst []UtterancePrediction, models *Models) []UtterancePrediction {
	if models == nil || models.Prosody == nil {
		return dst
	}
	for _, group := range models.Prosody.GroupedPredictions {
		for _, pred := range group.Predictions {
			if pred.Text == "" {
				continue
			}
			dst = append(dst, pred)
		}
	}
	return dst
}

// Flatten extracts the utterance predictions from every record of a batch.
func Flatten(results []Result) []UtterancePrediction {
	var out []UtterancePrediction
	for _, result := range results {
		out = append(out, result.Utterances()...)
	}
	return out
}

// Decode parses a raw job-result payload. Payloads are normally a JSON array
// of result records; a single bare record object is accepted and treated as
// a one-element batch.
func Decode(raw []byte) ([]Result, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("decode predictions: empty payload")
	}

	var results []Result
	if err := json.Unmarshal(trimmed, &results); err == nil {
		return results, nil
	}

	var single Result
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return nil, fmt.Errorf("decode predictions: %w", err)
	}
	return []Result{single}, nil
}
