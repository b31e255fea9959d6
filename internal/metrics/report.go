package metrics

import (
	"sync"

	"vauxly/internal/conversation"
)

// Report bundles every derived metric for one call.
type Report struct {
	FillerWordPercentage float64        `json:"filler_word_percentage"`
	WordsPerMinute       float64        `json:"words_per_minute"`
	ScriptAdherence      float64        `json:"script_adherence"`
	CallControl          float64        `json:"call_control"`
	CustomerMotivation   Motivation     `json:"customer_motivation"`
	RepCertainty         float64        `json:"rep_certainty"`
	SentimentHitCounts   map[string]int `json:"sentiment_hit_counts"`
	Journey              []JourneyPoint `json:"journey"`
}

// Compute derives the full report. The metrics are independent pure
// functions over the immutable bundle, so they run concurrently; script
// adherence dominates the wall time.
func Compute(bundle *conversation.Bundle) Report {
	var report Report
	var wg sync.WaitGroup

	run := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}

	run(func() { report.FillerWordPercentage = FillerWordPercentage(bundle) })
	run(func() { report.WordsPerMinute = WordsPerMinute(bundle) })
	run(func() { report.ScriptAdherence = ScriptAdherence(bundle) })
	run(func() { report.CallControl = CallControl(bundle) })
	run(func() { report.CustomerMotivation = CustomerMotivation(bundle) })
	run(func() { report.RepCertainty = RepCertainty(bundle) })
	run(func() { report.SentimentHitCounts = SentimentHitCounts(bundle) })
	run(func() { report.Journey = Journey(bundle) })

	wg.Wait()
	return report
}
