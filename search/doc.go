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


// Package search provides hybrid lexical and semantic occupation ranking.
//
// The Classifier type implements a two-signal ranking algorithm:
//   - Lexical ranking using a BM25 (Okapi) index over canonical entry text
//   - Semantic ranking using cosine similarity of embedding vectors
//
// The two rankings are merged with Reciprocal Rank Fusion, so scores from
// the incompatible scales never need to be compared directly. Index state
// is an immutable snapshot swapped atomically on reload; in-flight queries
// keep ranking against the snapshot they started with.
package search
