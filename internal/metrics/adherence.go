package metrics

import (
	_ "embed"
	"strings"

	"vauxly/internal/conversation"
	"vauxly/internal/textutil"
)

// adherenceThreshold is the minimum normalized edit-distance similarity for
// a spoken token to count as matching a script token.
const adherenceThreshold = 0.7

// referenceScript is the canonical sales-call script the representative is
// matched against. The asset is business data; edits change every stored
// adherence score.
//
//go:embed script.txt
var referenceScript string

var scriptTokens = func() []string {
	tokens := strings.Fields(referenceScript)
	for i, token := range tokens {
		tokens[i] = strings.ToLower(token)
	}
	return tokens
}()

// ScriptAdherence is the percentage of the representative's tokens that
// fuzzy-match some reference-script token at or above adherenceThreshold.
// The first sufficiently similar script token wins; comparison is
// case-insensitive. Returns 0 when the representative spoke no words.
//
// This is the engine's dominant cost: O(repTokens x scriptTokens) edit
// distance comparisons.
func ScriptAdherence(bundle *conversation.Bundle) float64 {
	var spoken []string
	for _, u := range bundle.BySpeaker(conversation.SpeakerRep) {
		spoken = append(spoken, strings.Fields(u.Message)...)
	}
	if len(spoken) == 0 {
		return 0
	}

	matched := 0
	for _, word := range spoken {
		word = strings.ToLower(word)
		for _, scriptToken := range scriptTokens {
			if textutil.Similarity(word, scriptToken) >= adherenceThreshold {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(spoken)) * 100
}
