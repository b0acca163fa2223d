package search

import "github.com/j-jayes/mcp-occupation-classifier/core"

// PreparedQuery carries the preprocessed forms of one query: its token
// sequence for lexical ranking and its embedding vector for semantic
// ranking. Vector is nil when the query could not be embedded.
type PreparedQuery struct {
	Tokens []string
	Vector []float32
}

// Ranker produces a full ranked list of corpus entries for a prepared
// query. Each signal (lexical, semantic) implements this interface so
// fusion can consume any number of signals uniformly.
type Ranker interface {
	// Name identifies the signal in logs and monitor callbacks.
	Name() string

	// Rank returns hits sorted best-first with 1-based Rank assigned.
	// An empty result means the signal found nothing relevant.
	Rank(query PreparedQuery) ([]core.RankedHit, error)
}
