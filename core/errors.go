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

import "errors"

// Domain validation errors
var (
	// ErrInvalidOccupation indicates an Occupation failed validation.
	ErrInvalidOccupation = errors.New("invalid occupation")

	// ErrInvalidQuery indicates a classification request failed validation.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrEmptyCode indicates the taxonomy code field is empty.
	ErrEmptyCode = errors.New("taxonomy code cannot be empty")

	// ErrEmptyTitle indicates the title field is empty after trimming.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrInvalidTopN indicates a non-positive top-N was requested.
	ErrInvalidTopN = errors.New("top-n must be positive")

	// ErrEmptyEmbedding indicates an occupation is missing its embedding vector.
	ErrEmptyEmbedding = errors.New("embedding cannot be empty")
)
