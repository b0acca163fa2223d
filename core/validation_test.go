package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateOccupation(t *testing.T) {
	valid := func() *Occupation {
		return &Occupation{
			Code:        "7511",
			Title:       "Baker",
			Description: "Bakes bread and pastries",
			Embedding:   []float32{0.1, 0.2, 0.3},
		}
	}

	t.Run("valid occupation", func(t *testing.T) {
		assert.NoError(t, ValidateOccupation(valid()))
	})

	t.Run("nil occupation", func(t *testing.T) {
		err := ValidateOccupation(nil)
		assert.ErrorIs(t, err, ErrInvalidOccupation)
	})

	t.Run("empty code", func(t *testing.T) {
		o := valid()
		o.Code = ""
		err := ValidateOccupation(o)
		assert.ErrorIs(t, err, ErrInvalidOccupation)
		assert.ErrorIs(t, err, ErrEmptyCode)
	})

	t.Run("whitespace title", func(t *testing.T) {
		o := valid()
		o.Title = "   "
		err := ValidateOccupation(o)
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})

	t.Run("missing embedding", func(t *testing.T) {
		o := valid()
		o.Embedding = nil
		err := ValidateOccupation(o)
		assert.ErrorIs(t, err, ErrEmptyEmbedding)
	})

	t.Run("empty description is allowed", func(t *testing.T) {
		o := valid()
		o.Description = ""
		assert.NoError(t, ValidateOccupation(o))
	})
}

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   Query
		wantErr error
	}{
		{
			name:  "title and description",
			query: Query{Title: "bread maker", Description: "makes bread in a bakery"},
		},
		{
			name:  "title only",
			query: Query{Title: "bread maker"},
		},
		{
			name:    "empty title",
			query:   Query{Description: "makes bread"},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "whitespace title",
			query:   Query{Title: " \t "},
			wantErr: ErrEmptyTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQuery(tt.query)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidQuery)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateTopN(t *testing.T) {
	assert.NoError(t, ValidateTopN(1))
	assert.NoError(t, ValidateTopN(100))

	for _, n := range []int{0, -1, -100} {
		err := ValidateTopN(n)
		assert.True(t, errors.Is(err, ErrInvalidQuery), "top-n %d should be invalid", n)
		assert.ErrorIs(t, err, ErrInvalidTopN)
	}
}
