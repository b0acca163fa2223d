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


package core

import (
	"fmt"
	"strings"
)

// ValidateOccupation validates an Occupation according to domain rules.
//
// Validation rules:
//   - Code must not be empty
//   - Title must not be empty after trimming
//   - Embedding must not be empty
//
// NOT validated:
//   - Description (may legitimately be empty in the source taxonomy)
//   - Ordinal and timestamps (populated by storage)
//   - Embedding dimensionality (checked against the rest of the corpus
//     when the semantic index is built)
func ValidateOccupation(occupation *Occupation) error {
	if occupation == nil {
		return fmt.Errorf("%w: occupation is nil", ErrInvalidOccupation)
	}

	if occupation.Code == "" {
		return fmt.Errorf("%w: %w", ErrInvalidOccupation, ErrEmptyCode)
	}

	if strings.TrimSpace(occupation.Title) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidOccupation, ErrEmptyTitle)
	}

	if len(occupation.Embedding) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidOccupation, ErrEmptyEmbedding)
	}

	return nil
}

// ValidateQuery validates a classification query.
//
// Validation rules:
//   - Title must not be empty after trimming
//
// Description is optional; an absent description reduces the text signal
// but is not an error.
func ValidateQuery(query Query) error {
	if strings.TrimSpace(query.Title) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, ErrEmptyTitle)
	}
	return nil
}

// ValidateTopN validates the requested result count.
func ValidateTopN(topN int) error {
	if topN <= 0 {
		return fmt.Errorf("%w: %w: got %d", ErrInvalidQuery, ErrInvalidTopN, topN)
	}
	return nil
}
