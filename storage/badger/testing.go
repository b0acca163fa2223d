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


package badger

import "github.com/j-jayes/mcp-occupation-classifier/storage"

// NewMemoryRepositories creates in-memory occupation and income repositories
// for testing. Returns occupationRepo, incomeRepo, backend, and error.
// Caller must close the occupation repo and the backend when done.
func NewMemoryRepositories() (storage.OccupationRepository, storage.IncomeRepository, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, nil, err
	}

	occupationRepo, err := NewOccupationRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, nil, err
	}

	incomeRepo := NewIncomeRepository(backend)

	return occupationRepo, incomeRepo, backend, nil
}
