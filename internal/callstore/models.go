package callstore

import (
	"time"

	"vauxly/internal/conversation"
	"vauxly/internal/metrics"
)

// Call is one stored call record: the reconciled transcript plus its
// derived metrics.
type Call struct {
	ID        string              `json:"id"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
	Bundle    conversation.Bundle `json:"bundle"`
	Report    metrics.Report      `json:"report"`
}

// Summary is the lightweight listing view of a call.
type Summary struct {
	ID             string    `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	UtteranceCount int       `json:"utterance_count"`
}
