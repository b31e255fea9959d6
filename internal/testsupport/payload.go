package testsupport

import "fmt"

// BatchPayload builds a raw emotion-job result payload wrapping the given
// prediction entries, shaped like the nested callback format.
func BatchPayload(entries ...string) []byte {
	preds := ""
	for i, e := range entries {
		if i > 0 {
			preds += ","
		}
		preds += e
	}
	return fmt.Appendf(nil,
		`[{"models":{"prosody":{"grouped_predictions":[{"predictions":[%s]}]}}}]`, preds)
}

// PredictionEntry builds one timed prediction entry for BatchPayload.
func PredictionEntry(text string, begin, end float64, emotionName string, score float64) string {
	return fmt.Sprintf(
		`{"text":%q,"emotions":[{"name":%q,"score":%g}],"time":{"begin":%g,"end":%g}}`,
		text, emotionName, score, begin, end)
}
