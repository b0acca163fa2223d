package ingestion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/j-jayes/mcp-occupation-classifier/core"
)

// SCBSalaryTableURL is the pxweb endpoint for the salary-dispersion
// table by SSYK level-4 occupation (monthly salary, SEK).
const SCBSalaryTableURL = "https://api.scb.se/OV0104/v1/doris/sv/ssd/START/AM/AM0110/AM0110A/LoneSpridSektYrk4AN"

// scbBatchSize limits occupations per query; SCB caps response cells.
const scbBatchSize = 50

// scbBatchPause spaces out queries against the public API.
const scbBatchPause = 500 * time.Millisecond

// SCBClient fetches income statistics from the SCB pxweb API. Measure
// codes and the latest available year are discovered from the table
// metadata before data is queried.
type SCBClient struct {
	httpClient *http.Client
	tableURL   string
	logger     *slog.Logger
}

// SCBOption configures an SCBClient.
type SCBOption func(*SCBClient) error

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) SCBOption {
	return func(c *SCBClient) error {
		if httpClient == nil {
			httpClient = http.DefaultClient
		}
		c.httpClient = httpClient
		return nil
	}
}

// WithTableURL overrides the pxweb table endpoint.
// Default is SCBSalaryTableURL.
func WithTableURL(url string) SCBOption {
	return func(c *SCBClient) error {
		if url == "" {
			return fmt.Errorf("table url must not be empty")
		}
		c.tableURL = url
		return nil
	}
}

// WithSCBLogger sets a custom logger.
// Default is slog.Default().
func WithSCBLogger(logger *slog.Logger) SCBOption {
	return func(c *SCBClient) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// NewSCBClient creates a new SCB income-statistics client.
func NewSCBClient(opts ...SCBOption) (*SCBClient, error) {
	c := &SCBClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tableURL:   SCBSalaryTableURL,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// pxweb metadata document.
type scbVariable struct {
	Code       string   `json:"code"`
	Values     []string `json:"values"`
	ValueTexts []string `json:"valueTexts"`
}

type scbMetadata struct {
	Variables []scbVariable `json:"variables"`
}

// pxweb query payload.
type scbSelection struct {
	Filter string   `json:"filter"`
	Values []string `json:"values"`
}

type scbQueryItem struct {
	Code      string       `json:"code"`
	Selection scbSelection `json:"selection"`
}

type scbQuery struct {
	Query    []scbQueryItem    `json:"query"`
	Response map[string]string `json:"response"`
}

// pxweb flat-json response.
type scbColumn struct {
	Code string `json:"code"`
	Text string `json:"text"`
	Type string `json:"type"`
}

type scbDataRow struct {
	Key    []string `json:"key"`
	Values []string `json:"values"`
}

type scbTable struct {
	Columns []scbColumn  `json:"columns"`
	Data    []scbDataRow `json:"data"`
}

// FetchIncomeStats queries the salary-dispersion table for the given
// taxonomy codes and returns one record per code with data. Codes SCB
// suppresses or does not publish are simply absent from the result.
// Batch failures are logged and skipped; the remaining batches still load.
func (c *SCBClient) FetchIncomeStats(ctx context.Context, codes []core.TaxonomyCode) ([]*core.IncomeStats, error) {
	metadata, err := c.fetchMetadata(ctx)
	if err != nil {
		return nil, err
	}

	var (
		measureCodes []string
		measureTexts = make(map[string]string)
		latestYear   string
	)
	for _, variable := range metadata.Variables {
		switch variable.Code {
		case "ContentsCode":
			for i, value := range variable.Values {
				measureCodes = append(measureCodes, value)
				if i < len(variable.ValueTexts) {
					measureTexts[value] = variable.ValueTexts[i]
				}
			}
		case "Tid":
			if len(variable.Values) > 0 {
				latestYear = variable.Values[len(variable.Values)-1]
			}
		}
	}
	if len(measureCodes) == 0 || latestYear == "" {
		return nil, ErrMetadataIncomplete
	}

	c.logger.Info("scb table metadata resolved",
		"measures", len(measureCodes),
		"year", latestYear)

	statsByCode := make(map[core.TaxonomyCode]*core.IncomeStats)

	for start := 0; start < len(codes); start += scbBatchSize {
		end := min(start+scbBatchSize, len(codes))

		table, err := c.fetchBatch(ctx, codes[start:end], measureCodes, latestYear)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// One refused batch should not sink the whole load.
			c.logger.Warn("scb batch failed, skipping",
				"offset", start, "err", err)
			continue
		}

		c.collectStats(table, measureTexts, latestYear, statsByCode)

		if end < len(codes) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(scbBatchPause):
			}
		}
	}

	// Preserve the caller's code order in the result.
	results := make([]*core.IncomeStats, 0, len(statsByCode))
	for _, code := range codes {
		if stats, ok := statsByCode[code]; ok {
			results = append(results, stats)
		}
	}

	c.logger.Info("income statistics fetched",
		"requested", len(codes),
		"received", len(results))

	return results, nil
}

// fetchMetadata retrieves the table description.
func (c *SCBClient) fetchMetadata(ctx context.Context) (*scbMetadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.tableURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching scb metadata: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching scb metadata: unexpected status %s", resp.Status)
	}

	var metadata scbMetadata
	if err := json.NewDecoder(resp.Body).Decode(&metadata); err != nil {
		return nil, fmt.Errorf("decoding scb metadata: %w", err)
	}
	return &metadata, nil
}

// fetchBatch posts one data query for a slice of occupation codes.
func (c *SCBClient) fetchBatch(ctx context.Context, codes []core.TaxonomyCode, measureCodes []string, year string) (*scbTable, error) {
	codeValues := make([]string, len(codes))
	for i, code := range codes {
		codeValues[i] = string(code)
	}

	query := scbQuery{
		Query: []scbQueryItem{
			{Code: "Yrke2012", Selection: scbSelection{Filter: "item", Values: codeValues}},
			// Sector 0 = all sectors, Kon 1+2 = both sexes combined.
			{Code: "Sektor", Selection: scbSelection{Filter: "item", Values: []string{"0"}}},
			{Code: "Kon", Selection: scbSelection{Filter: "item", Values: []string{"1+2"}}},
			{Code: "ContentsCode", Selection: scbSelection{Filter: "item", Values: measureCodes}},
			{Code: "Tid", Selection: scbSelection{Filter: "item", Values: []string{year}}},
		},
		Response: map[string]string{"format": "json"},
	}

	body, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tableURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying scb table: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("querying scb table: unexpected status %s", resp.Status)
	}

	var table scbTable
	if err := json.NewDecoder(resp.Body).Decode(&table); err != nil {
		return nil, fmt.Errorf("decoding scb table: %w", err)
	}
	return &table, nil
}

// collectStats maps one response table into IncomeStats records. The
// pxweb flat format lists dimension columns first; row keys follow that
// order while measure values sit in a parallel values array.
func (c *SCBClient) collectStats(table *scbTable, measureTexts map[string]string, year string, statsByCode map[core.TaxonomyCode]*core.IncomeStats) {
	type measure struct {
		valueIndex int
		text       string
	}

	occupationKeyIndex := -1
	var measures []measure

	dimensionIndex := 0
	valueIndex := 0
	for _, column := range table.Columns {
		if column.Type == "c" {
			text := measureTexts[column.Code]
			if text == "" {
				text = column.Text
			}
			measures = append(measures, measure{valueIndex: valueIndex, text: text})
			valueIndex++
			continue
		}
		if column.Code == "Yrke2012" {
			occupationKeyIndex = dimensionIndex
		}
		dimensionIndex++
	}
	if occupationKeyIndex < 0 {
		c.logger.Warn("scb response lacks occupation column, skipping batch")
		return
	}

	for _, row := range table.Data {
		if occupationKeyIndex >= len(row.Key) {
			continue
		}
		code := core.TaxonomyCode(row.Key[occupationKeyIndex])

		stats, ok := statsByCode[code]
		if !ok {
			stats = &core.IncomeStats{Code: code, Year: year}
			statsByCode[code] = stats
		}

		for _, m := range measures {
			if m.valueIndex >= len(row.Values) {
				continue
			}
			raw := row.Values[m.valueIndex]
			// ".." marks suppressed cells.
			if raw == "" || raw == ".." {
				continue
			}
			value, err := strconv.Atoi(raw)
			if err != nil {
				continue
			}
			assignMeasure(stats, m.text, value)
		}
	}
}

// assignMeasure routes one named SCB measure into the record field it
// describes. Measure names are the Swedish valueTexts from the table
// metadata.
func assignMeasure(stats *core.IncomeStats, text string, value int) {
	text = strings.ToLower(text)
	switch {
	case strings.Contains(text, "10:e percentil"):
		stats.Percentile10 = value
	case strings.Contains(text, "undre kvartil"):
		stats.LowerQuartile = value
	case strings.Contains(text, "median"):
		stats.Median = value
	case strings.Contains(text, "övre kvartil"):
		stats.UpperQuartile = value
	case strings.Contains(text, "90:e percentil"):
		stats.Percentile90 = value
	case strings.Contains(text, "medellön"):
		stats.Mean = value
	}
}
