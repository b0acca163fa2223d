// Copyright 2025 The mcp-occupation-classifier Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ingestion

import "errors"

var (
	// ErrOccupationRepositoryRequired is returned when an occupation repository is not provided.
	ErrOccupationRepositoryRequired = errors.New("occupation repository required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrNoTaxonomyEntries is returned when the taxonomy yields no level-4 occupations.
	ErrNoTaxonomyEntries = errors.New("no taxonomy entries to ingest")

	// ErrEmbeddingCountMismatch is returned when the embedder returns a
	// different number of vectors than texts submitted.
	ErrEmbeddingCountMismatch = errors.New("embedding count does not match batch size")

	// ErrInconsistentDimensions is returned when corpus vectors disagree
	// on dimensionality.
	ErrInconsistentDimensions = errors.New("inconsistent embedding dimensions")

	// ErrMetadataIncomplete is returned when the SCB table metadata lacks
	// the measure codes or year needed to build a query.
	ErrMetadataIncomplete = errors.New("scb metadata incomplete")
)
