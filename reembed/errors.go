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


package reembed

import "errors"

var (
	// ErrOccupationRepositoryRequired is returned when an occupation repository is not provided.
	ErrOccupationRepositoryRequired = errors.New("occupation repository required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrModelNameRequired is returned when no model name is given for the
	// corpus provenance record.
	ErrModelNameRequired = errors.New("model name required")

	// ErrInvalidMaxAttempts is returned when retry is configured with zero attempts.
	ErrInvalidMaxAttempts = errors.New("max attempts must be greater than zero")

	// ErrInconsistentDimensions is returned when the new embeddings
	// disagree on dimensionality.
	ErrInconsistentDimensions = errors.New("inconsistent embedding dimensions")
)
