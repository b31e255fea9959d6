package testsupport

import (
	"vauxly/internal/conversation"
	"vauxly/internal/emotion"
)

// Utterance builds a single utterance with optional top sentiments.
func Utterance(speaker conversation.Speaker, begin, end float64, message string, sentiments ...emotion.Sentiment) conversation.Utterance {
	return conversation.Utterance{
		Speaker:       speaker,
		Timestamp:     begin,
		TimestampEnd:  end,
		Message:       message,
		TopSentiments: sentiments,
	}
}

// Bundle wraps utterances into a conversation bundle.
func Bundle(utterances ...conversation.Utterance) *conversation.Bundle {
	return &conversation.Bundle{Conversation: utterances}
}

// Sentiment builds a classified sentiment entry.
func Sentiment(name string, score float64) emotion.Sentiment {
	return emotion.Sentiment{
		Name:     name,
		Score:    score,
		Polarity: emotion.Classify(name),
	}
}
