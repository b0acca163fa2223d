package search

import "github.com/j-jayes/mcp-occupation-classifier/core"

// ClassifyMonitor provides hooks to observe the classification process.
// Implement this interface to track intermediate steps and results.
type ClassifyMonitor interface {
	Start(canonicalText string)
	AfterQueryEmbedding(dimensions int)
	DegradedToLexical(cause error)
	AfterRank(signal string, hits []core.RankedHit)
	Finish(result *core.ClassificationResult)
}

// noopMonitor is a no-op implementation of ClassifyMonitor
type noopMonitor struct{}

var _ ClassifyMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                         {}
func (n *noopMonitor) AfterQueryEmbedding(_ int)              {}
func (n *noopMonitor) DegradedToLexical(_ error)              {}
func (n *noopMonitor) AfterRank(_ string, _ []core.RankedHit) {}
func (n *noopMonitor) Finish(_ *core.ClassificationResult)    {}
