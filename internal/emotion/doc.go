// Package emotion classifies emotion-inference output into the polarity
// buckets the scoring engine works with.
//
// The inference service attaches a score for every emotion it models to each
// utterance. This package owns the fixed positive/negative emotion tables,
// maps names into +/-/neutral polarities, and selects the top-scoring
// sentiments carried on each utterance. Names absent from both tables
// classify as neutral rather than failing, so new model vocabularies degrade
// gracefully.
package emotion
