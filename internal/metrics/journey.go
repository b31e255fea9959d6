package metrics

import (
	"math"

	"vauxly/internal/conversation"
)

// journeyAmplification scales raw top-sentiment scores into the 0-800 range
// the dashboard charts.
const journeyAmplification = 8

// unknownSentiment labels journey points whose utterance carried no
// sentiment tags.
const unknownSentiment = "Unknown"

// JourneyPoint is one customer utterance plotted on the sentiment-journey
// chart.
type JourneyPoint struct {
	Time      float64 `json:"time"`
	Score     float64 `json:"score"`
	Sentiment string  `json:"sentiment"`
	Message   string  `json:"message"`
}

// Journey projects the customer's utterances into chart points: one per
// utterance, in transcript order, scored as topSentiment x 100 x
// journeyAmplification. A pure projection; calling it again yields the same
// finite series. Returns an empty series when the customer never spoke.
func Journey(bundle *conversation.Bundle) []JourneyPoint {
	customer := bundle.BySpeaker(conversation.SpeakerCustomer)
	points := make([]JourneyPoint, 0, len(customer))
	for _, u := range customer {
		score := 0.0
		sentiment := unknownSentiment
		if len(u.TopSentiments) > 0 {
			score = u.TopSentiments[0].Score
			if u.TopSentiments[0].Name != "" {
				sentiment = u.TopSentiments[0].Name
			}
		}
		points = append(points, JourneyPoint{
			Time:      u.Timestamp,
			Score:     score * 100 * journeyAmplification,
			Sentiment: sentiment,
			Message:   u.Message,
		})
	}
	return points
}

// JourneyCeiling suggests a chart y-axis maximum: the highest raw sentiment
// score in the conversation with 30% headroom, rounded to three decimals.
// Returns 0 for a conversation with no sentiment tags.
func JourneyCeiling(bundle *conversation.Bundle) float64 {
	if bundle == nil {
		return 0
	}
	maxScore := 0.0
	for _, u := range bundle.Conversation {
		for _, sentiment := range u.TopSentiments {
			if sentiment.Score > maxScore {
				maxScore = sentiment.Score
			}
		}
	}
	return math.Round(maxScore*1.3*1000) / 1000
}
