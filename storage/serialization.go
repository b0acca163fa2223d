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


package storage

import (
	"github.com/j-jayes/mcp-occupation-classifier/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalOccupation serializes an Occupation to bytes.
func MarshalOccupation(occupation *core.Occupation) []byte {
	buf := make([]byte, core.OccupationMUS.Size(*occupation))
	core.OccupationMUS.Marshal(*occupation, buf)
	return buf
}

// UnmarshalOccupation deserializes an Occupation from bytes.
func UnmarshalOccupation(data []byte) (*core.Occupation, error) {
	occupation, _, err := core.OccupationMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &occupation, nil
}

// MarshalIncomeStats serializes an IncomeStats record to bytes.
func MarshalIncomeStats(stats *core.IncomeStats) []byte {
	buf := make([]byte, core.IncomeStatsMUS.Size(*stats))
	core.IncomeStatsMUS.Marshal(*stats, buf)
	return buf
}

// UnmarshalIncomeStats deserializes an IncomeStats record from bytes.
func UnmarshalIncomeStats(data []byte) (*core.IncomeStats, error) {
	stats, _, err := core.IncomeStatsMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// MarshalCorpusInfo serializes a CorpusInfo record to bytes.
func MarshalCorpusInfo(info *core.CorpusInfo) []byte {
	buf := make([]byte, core.CorpusInfoMUS.Size(*info))
	core.CorpusInfoMUS.Marshal(*info, buf)
	return buf
}

// UnmarshalCorpusInfo deserializes a CorpusInfo record from bytes.
func UnmarshalCorpusInfo(data []byte) (*core.CorpusInfo, error) {
	info, _, err := core.CorpusInfoMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &info, nil
}
