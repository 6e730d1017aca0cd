// Package analysis provides the lexical text analysis used across the
// retrieval pipeline: token estimation, sentence segmentation, keyword
// extraction, entity heuristics and similarity scoring.
//
// Everything here is pure Go over in-memory strings. Functions are
// referentially transparent and safe to call concurrently.
package analysis
