package metrics

import (
	"strings"

	"vauxly/internal/conversation"
	"vauxly/internal/emotion"
)

// Motivation is the customer-motivation score with the sub-ratios it was
// derived from, kept for dashboard display.
type Motivation struct {
	Score                  float64 `json:"score"`
	FillerWordRatio        float64 `json:"filler_word_ratio"`
	PositiveSentimentRatio float64 `json:"positive_sentiment_ratio"`
	AverageSentimentScore  float64 `json:"average_sentiment_score"`
}

// CustomerMotivation scores how engaged the customer sounds:
// positiveSentimentRatio x averageSentimentScore x (1 - fillerWordRatio),
// scaled to 0-100. Every sub-ratio falls back to 0 when its denominator is
// zero, so an empty customer stream scores 0.
func CustomerMotivation(bundle *conversation.Bundle) Motivation {
	totalWords := 0
	fillerCount := 0
	totalSentiments := 0
	positiveSentiments := 0
	sentimentScoreSum := 0.0

	for _, u := range bundle.BySpeaker(conversation.SpeakerCustomer) {
		totalWords += len(strings.Fields(u.Message))
		fillerCount += CountFillerWords(u.Message)
		for _, sentiment := range u.TopSentiments {
			totalSentiments++
			sentimentScoreSum += sentiment.Score
			if sentiment.Polarity == emotion.PolarityPositive {
				positiveSentiments++
			}
		}
	}

	var m Motivation
	if totalWords > 0 {
		m.FillerWordRatio = float64(fillerCount) / float64(totalWords)
	}
	if totalSentiments > 0 {
		m.PositiveSentimentRatio = float64(positiveSentiments) / float64(totalSentiments)
		m.AverageSentimentScore = sentimentScoreSum / float64(totalSentiments)
	}
	m.Score = m.PositiveSentimentRatio * m.AverageSentimentScore * (1 - m.FillerWordRatio) * 100
	return m
}
