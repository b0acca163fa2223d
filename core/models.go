package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for stored records.
// It is generated deterministically from record content.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// TaxonomyCode identifies one classification target in the SSYK hierarchy.
// Level-4 codes are four digits, e.g. "2512".
type TaxonomyCode string

// ID returns the deterministic record ID for this code.
func (c TaxonomyCode) ID() ID {
	return IDFromContent(string(c))
}

// canonicalSeparator joins a title and a description into one text signal.
// The same separator is used for corpus entries and for incoming queries so
// lexical and semantic scoring see identical text shapes.
const canonicalSeparator = ": "

// CanonicalText joins a title and an optional description into the canonical
// text form used for indexing, embedding, and query scoring.
func CanonicalText(title, description string) string {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if description == "" {
		return title
	}
	return title + canonicalSeparator + description
}

// Occupation is one entry of the classification corpus: an SSYK level-4
// occupation with its taxonomy code, label, description, and precomputed
// embedding vector. Occupations are immutable once the corpus is loaded.
type Occupation struct {
	Id          ID
	Code        TaxonomyCode
	Title       string
	Description string
	Embedding   []float32 // Dense vector over CanonicalText(Title, Description)
	Ordinal     int       // Corpus insertion position, assigned by storage
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// SearchText returns the canonical text indexed and embedded for this entry.
func (o *Occupation) SearchText() string {
	return CanonicalText(o.Title, o.Description)
}

// Query is a caller-supplied occupation description to classify.
type Query struct {
	Title       string
	Description string // Optional
}

// CanonicalText returns the single query string scored by both rankers.
func (q Query) CanonicalText() string {
	return CanonicalText(q.Title, q.Description)
}

// RankedHit is one corpus entry as scored by a single ranking signal.
// Rank is the 1-based position within that signal's sorted output and is
// the primary fusion input; Score is signal-local and not comparable
// across signals.
type RankedHit struct {
	Code    TaxonomyCode
	Title   string
	Score   float64
	Rank    int
	Ordinal int // Corpus insertion position, used for deterministic tie-breaks
}

// Classification is one fused result entry returned to the caller.
type Classification struct {
	Code  TaxonomyCode
	Title string
	Score float64 // Fused RRF score
}

// ClassificationResult is the ordered outcome of one classify call.
// Hits are sorted by descending fused score. Degraded is true only when the
// caller explicitly opted into lexical-only ranking and the semantic signal
// was unavailable.
type ClassificationResult struct {
	Hits     []Classification
	Degraded bool
}

// IncomeStats is the fixed-shape income-distribution record for one taxonomy
// code. Values are monthly salaries in SEK; zero means the source suppressed
// or lacked the figure.
type IncomeStats struct {
	Code          TaxonomyCode
	Year          string
	Percentile10  int
	LowerQuartile int
	Median        int
	UpperQuartile int
	Percentile90  int
	Mean          int
	UpdatedAt     time.Time
}

// CorpusInfo records how the stored corpus was produced. The engine compares
// it against the configured query encoder at startup: a model mismatch is
// undetectable at query time and must be surfaced when the corpus loads.
type CorpusInfo struct {
	EmbeddingModel string
	Dimensions     int
	EntryCount     int
	IngestedAt     time.Time
}
