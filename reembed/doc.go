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


// Package reembed rebuilds the stored corpus embeddings with a new model.
//
// Query vectors and corpus vectors must come from the same embedding
// model; switching the query encoder without rebuilding the corpus
// silently ruins the semantic signal. Reembedding every stored entry and
// updating the corpus provenance record is the supported way to change
// models.
package reembed
