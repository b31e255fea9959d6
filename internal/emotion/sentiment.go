package emotion

import "sort"

// Score is one raw emotion score as emitted by the inference service.
type Score struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Sentiment is a polarity-tagged emotion attached to an utterance.
type Sentiment struct {
	Name     string   `json:"name"`
	Score    float64  `json:"score"`
	Polarity Polarity `json:"polarity"`
}

// topSentimentCount limits how many emotion tags each utterance carries.
const topSentimentCount = 3

// TopSentiments selects up to three emotions by descending score and tags
// each with its polarity. The input slice is not modified. Returns an empty
// slice for empty input.
func TopSentiments(scores []Score) []Sentiment {
	if len(scores) == 0 {
		return nil
	}

	ranked := make([]Score, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })

	limit := topSentimentCount
	if len(ranked) < limit {
		limit = len(ranked)
	}

	out := make([]Sentiment, 0, limit)
	for _, score := range ranked[:limit] {
		out = append(out, Sentiment{
			Name:     score.Name,
			Score:    score.Score,
			Polarity: Classify(score.Name),
		})
	}
	return out
}
