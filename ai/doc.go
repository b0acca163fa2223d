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


// Package ai provides the embedding abstraction used by the classifier.
//
// The engine never talks to an embedding service directly; it depends on the
// Embedder interface so the encoder is an injected capability rather than a
// hidden global. This keeps the classification core testable with
// deterministic stub encoders and lets the embedding backend be swapped
// without touching ranking logic.
//
// # Implementation Packages
//
//   - ai/openai: production implementation backed by OpenAI-compatible APIs
//     (via langchaingo)
//   - ai/mock: deterministic test double for unit testing without external
//     services
//
// # Usage Example
//
//	cfg := ai.NewConfig(ai.WithAPIKey(os.Getenv("OPENAI_API_KEY")))
//	embedder, err := openai.NewEmbedder(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	vector, err := embedder.EmbedText(ctx, "bread maker")
package ai
