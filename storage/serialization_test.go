package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j-jayes/mcp-occupation-classifier/core"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("2512")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.Error(t, err)
}

func TestMarshalUnmarshalOccupation(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	tests := []struct {
		name       string
		occupation *core.Occupation
	}{
		{
			name: "full record",
			occupation: &core.Occupation{
				Id:          core.TaxonomyCode("7511").ID(),
				Code:        "7511",
				Title:       "Bagare och konditorer",
				Description: "Bakar bröd, bakverk och konditorivaror",
				Embedding:   []float32{0.25, -0.5, 0.75, 1.0},
				Ordinal:     3,
				InsertedAt:  now,
				UpdatedAt:   now,
			},
		},
		{
			name: "empty description",
			occupation: &core.Occupation{
				Id:         core.TaxonomyCode("2512").ID(),
				Code:       "2512",
				Title:      "Mjukvaruutvecklare",
				Embedding:  []float32{0.1},
				InsertedAt: now,
				UpdatedAt:  now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalOccupation(tt.occupation)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalOccupation(data)
			require.NoError(t, err)
			assert.Equal(t, tt.occupation, decoded)
		})
	}
}

func TestUnmarshalOccupation_Invalid(t *testing.T) {
	_, err := UnmarshalOccupation([]byte{})
	assert.Error(t, err)
}

func TestMarshalUnmarshalIncomeStats(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	stats := &core.IncomeStats{
		Code:          "2512",
		Year:          "2023",
		Percentile10:  34800,
		LowerQuartile: 40600,
		Median:        47900,
		UpperQuartile: 56000,
		Percentile90:  65100,
		Mean:          49400,
		UpdatedAt:     now,
	}

	data := MarshalIncomeStats(stats)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalIncomeStats(data)
	require.NoError(t, err)
	assert.Equal(t, stats, decoded)
}

func TestMarshalUnmarshalCorpusInfo(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	info := &core.CorpusInfo{
		EmbeddingModel: "text-embedding-3-small",
		Dimensions:     1536,
		EntryCount:     430,
		IngestedAt:     now,
	}

	data := MarshalCorpusInfo(info)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalCorpusInfo(data)
	require.NoError(t, err)
	assert.Equal(t, info, decoded)
}
