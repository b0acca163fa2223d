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


package income

import "errors"

var (
	// ErrIncomeRepositoryRequired is returned when an income repository is not provided.
	ErrIncomeRepositoryRequired = errors.New("income repository required")

	// ErrNoIncomeData is returned when no statistics are stored for a code.
	// SCB suppresses small occupation groups, so absence is an expected
	// outcome rather than a storage failure.
	ErrNoIncomeData = errors.New("no income data for code")
)
