package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// TaxonomyURL is the canonical JobTech endpoint for the SSYK hierarchy
// with occupations.
const TaxonomyURL = "https://data.jobtechdev.se/taxonomy/version/latest/query/the-ssyk-hierarchy-with-occupations/the-ssyk-hierarchy-with-occupations.json"

// TaxonomyEntry is one SSYK level-4 occupation extracted from the taxonomy.
type TaxonomyEntry struct {
	Code        string
	Title       string
	Description string
}

// taxonomyConcept mirrors one node of the JobTech taxonomy tree.
type taxonomyConcept struct {
	Type           string            `json:"type"`
	SSYKCode2012   string            `json:"ssyk_code_2012"`
	PreferredLabel string            `json:"preferred_label"`
	Definition     string            `json:"definition"`
	Narrower       []taxonomyConcept `json:"narrower"`
}

// taxonomyDocument mirrors the top level of the taxonomy JSON.
type taxonomyDocument struct {
	Data struct {
		Concepts []taxonomyConcept `json:"concepts"`
	} `json:"data"`
}

// ParseTaxonomy reads the JobTech taxonomy JSON and extracts all SSYK
// level-4 occupations, in document order. Nodes without a taxonomy code
// are skipped.
func ParseTaxonomy(r io.Reader) ([]TaxonomyEntry, error) {
	var document taxonomyDocument
	if err := json.NewDecoder(r).Decode(&document); err != nil {
		return nil, fmt.Errorf("parsing taxonomy: %w", err)
	}

	entries := extractLevel4(document.Data.Concepts)
	if len(entries) == 0 {
		return nil, ErrNoTaxonomyEntries
	}
	return entries, nil
}

// extractLevel4 walks the concept tree and collects ssyk-level-4 nodes.
func extractLevel4(concepts []taxonomyConcept) []TaxonomyEntry {
	var entries []TaxonomyEntry
	for _, concept := range concepts {
		if concept.Type == "ssyk-level-4" && concept.SSYKCode2012 != "" {
			entries = append(entries, TaxonomyEntry{
				Code:        concept.SSYKCode2012,
				Title:       concept.PreferredLabel,
				Description: concept.Definition,
			})
		}
		if len(concept.Narrower) > 0 {
			entries = append(entries, extractLevel4(concept.Narrower)...)
		}
	}
	return entries
}

// DownloadTaxonomy fetches and parses the taxonomy from the given URL.
// Pass TaxonomyURL for the canonical JobTech endpoint.
func DownloadTaxonomy(ctx context.Context, httpClient *http.Client, url string) ([]TaxonomyEntry, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading taxonomy: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("downloading taxonomy: unexpected status %s", resp.Status)
	}

	return ParseTaxonomy(resp.Body)
}
