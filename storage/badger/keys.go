package badger

import (
	"fmt"

	"github.com/j-jayes/mcp-occupation-classifier/core"
)

// Key prefixes for different data types
const (
	occupationPrefix     = "occrec"
	occupationOrdinalSeq = "occrecseq"
	incomeStatsPrefix    = "incstat"
	corpusInfoKey        = "corpusinfo"
)

// makeOccupationKey generates a key for an occupation record.
// Record IDs are content-derived from the taxonomy code, so lookups by code
// never need a secondary index.
func makeOccupationKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", occupationPrefix, id))
}

// makeIncomeStatsKey generates a key for an income-statistics record.
func makeIncomeStatsKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", incomeStatsPrefix, id))
}

// makeCorpusInfoKey generates the key for the singleton corpus info record.
func makeCorpusInfoKey() []byte {
	return []byte(corpusInfoKey)
}
