package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const taxonomyFixture = `{
  "data": {
    "concepts": [
      {
        "type": "ssyk-level-1",
        "ssyk_code_2012": "7",
        "preferred_label": "Yrken inom byggverksamhet och tillverkning",
        "narrower": [
          {
            "type": "ssyk-level-2",
            "ssyk_code_2012": "75",
            "preferred_label": "Slaktare, bagare, skräddare m.fl.",
            "narrower": [
              {
                "type": "ssyk-level-4",
                "ssyk_code_2012": "7511",
                "preferred_label": "Bagare och konditorer",
                "definition": "Bakar bröd och bakverk",
                "narrower": [
                  {
                    "type": "occupation-name",
                    "preferred_label": "Bagare"
                  }
                ]
              }
            ]
          }
        ]
      },
      {
        "type": "ssyk-level-4",
        "ssyk_code_2012": "2512",
        "preferred_label": "Mjukvaruutvecklare",
        "definition": "Utvecklar och testar programvara"
      },
      {
        "type": "ssyk-level-4",
        "preferred_label": "Saknar kod och hoppas över"
      }
    ]
  }
}`

func TestParseTaxonomy(t *testing.T) {
	entries, err := ParseTaxonomy(strings.NewReader(taxonomyFixture))
	require.NoError(t, err)
	require.Len(t, entries, 2, "level-4 nodes without a code are skipped")

	assert.Equal(t, "7511", entries[0].Code)
	assert.Equal(t, "Bagare och konditorer", entries[0].Title)
	assert.Equal(t, "Bakar bröd och bakverk", entries[0].Description)

	assert.Equal(t, "2512", entries[1].Code)
	assert.Equal(t, "Mjukvaruutvecklare", entries[1].Title)
}

func TestParseTaxonomy_NoLevel4(t *testing.T) {
	_, err := ParseTaxonomy(strings.NewReader(`{"data": {"concepts": []}}`))
	assert.ErrorIs(t, err, ErrNoTaxonomyEntries)
}

func TestParseTaxonomy_InvalidJSON(t *testing.T) {
	_, err := ParseTaxonomy(strings.NewReader(`{"data": `))
	assert.Error(t, err)
}
