package metrics

import (
	"sort"
	"strings"

	"vauxly/internal/conversation"
	"vauxly/internal/emotion"
)

const (
	// silenceGapSeconds is the pause length beyond which a gap between
	// consecutive utterances counts as a silent moment.
	silenceGapSeconds = 1.0

	// Certainty weighting. Silence dominates; sentiment and delivery refine.
	certaintySilenceWeight   = 0.6
	certaintySentimentWeight = 0.25
	certaintyFillerWeight    = 0.1
	certaintyAvgScoreWeight  = 0.05
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// RepCertainty scores how assured the representative sounds, 0-100. Silence
// gaps are measured across both speakers (end of the previous utterance to
// the start of the next, in timestamp order); filler and sentiment ratios
// are restricted to the representative's utterances. All sub-terms fall back
// to 0 when their inputs are absent.
func RepCertainty(bundle *conversation.Bundle) float64 {
	if bundle == nil {
		return 0
	}

	ordered := make([]conversation.Utterance, len(bundle.Conversation))
	copy(ordered, bundle.Conversation)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp < ordered[j].Timestamp
	})

	silentMoments := 0
	totalSilentDuration := 0.0
	previousEnd := 0.0
	havePrevious := false

	totalWords := 0
	fillerCount := 0
	totalSentiments := 0
	positiveSentiments := 0
	sentimentScoreSum := 0.0

	for _, u := range ordered {
		end := u.TimestampEnd
		if end == 0 {
			end = u.Timestamp
		}

		if havePrevious {
			if gap := u.Timestamp - previousEnd; gap > silenceGapSeconds {
				silentMoments++
				totalSilentDuration += gap
			}
		}
		previousEnd = end
		havePrevious = true

		if u.Speaker != conversation.SpeakerRep {
			continue
		}
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

	// Every sub-term floors at 0 when its input is absent; a call with no
	// representative speech scores 0, not the filler term's resting value.
	fillerScore := 0.0
	if totalWords > 0 {
		fillerRatio := float64(fillerCount) / float64(totalWords)
		fillerScore = clamp01(1 - fillerRatio*fillerRatio)
	}
	positiveRatio := 0.0
	averageScore := 0.0
	if totalSentiments > 0 {
		positiveRatio = float64(positiveSentiments) / float64(totalSentiments)
		averageScore = sentimentScoreSum / float64(totalSentiments)
	}
	averageSilentDuration := 0.0
	if silentMoments > 0 {
		averageSilentDuration = totalSilentDuration / float64(silentMoments)
	}

	silentScore := clamp01((float64(silentMoments) + averageSilentDuration*2) / 10)
	sentimentScore := clamp01(positiveRatio * positiveRatio)
	averageWeighted := clamp01(averageScore)

	total := silentScore*certaintySilenceWeight +
		sentimentScore*certaintySentimentWeight +
		fillerScore*certaintyFillerWeight +
		averageWeighted*certaintyAvgScoreWeight
	return clamp01(total) * 100
}
