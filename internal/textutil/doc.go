// Package textutil provides the text-matching primitives the scoring engine
// relies on: edit-distance similarity for script-adherence matching and
// token fingerprints for fuzzy transcript search.
//
// Similarity is normalized Levenshtein distance, (maxLen - distance) /
// maxLen, so identical words score 1 and fully different words score 0.
// Fingerprints are term-frequency vectors compared by cosine similarity;
// tokenization lowercases and splits on non-alphanumeric characters.
package textutil
