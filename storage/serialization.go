// Copyright 2025 Poiesic Systems
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
	"github.com/poiesic/semantra/core"
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

// MarshalPairStats serializes a WordPairStats to bytes.
func MarshalPairStats(pair *core.WordPairStats) []byte {
	buf := make([]byte, core.WordPairStatsMUS.Size(*pair))
	core.WordPairStatsMUS.Marshal(*pair, buf)
	return buf
}

// UnmarshalPairStats deserializes a WordPairStats from bytes.
// Timestamps are normalized to UTC; all stored records carry UTC times.
func UnmarshalPairStats(data []byte) (*core.WordPairStats, error) {
	pair, _, err := core.WordPairStatsMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	pair.LastUpdated = pair.LastUpdated.UTC()
	return &pair, nil
}

// MarshalFrequency serializes a WordFrequency to bytes.
func MarshalFrequency(freq *core.WordFrequency) []byte {
	buf := make([]byte, core.WordFrequencyMUS.Size(*freq))
	core.WordFrequencyMUS.Marshal(*freq, buf)
	return buf
}

// UnmarshalFrequency deserializes a WordFrequency from bytes.
func UnmarshalFrequency(data []byte) (*core.WordFrequency, error) {
	freq, _, err := core.WordFrequencyMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	freq.LastUsed = freq.LastUsed.UTC()
	return &freq, nil
}

// MarshalPattern serializes a SuccessPattern to bytes.
func MarshalPattern(pattern *core.SuccessPattern) []byte {
	buf := make([]byte, core.SuccessPatternMUS.Size(*pattern))
	core.SuccessPatternMUS.Marshal(*pattern, buf)
	return buf
}

// UnmarshalPattern deserializes a SuccessPattern from bytes.
func UnmarshalPattern(data []byte) (*core.SuccessPattern, error) {
	pattern, _, err := core.SuccessPatternMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	pattern.CompletedAt = pattern.CompletedAt.UTC()
	return &pattern, nil
}

// MarshalModeUsage serializes a ModeUsage to bytes.
func MarshalModeUsage(usage *core.ModeUsage) []byte {
	buf := make([]byte, core.ModeUsageMUS.Size(*usage))
	core.ModeUsageMUS.Marshal(*usage, buf)
	return buf
}

// UnmarshalModeUsage deserializes a ModeUsage from bytes.
func UnmarshalModeUsage(data []byte) (*core.ModeUsage, error) {
	usage, _, err := core.ModeUsageMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &usage, nil
}

// MarshalMeta serializes a KnowledgeMeta to bytes.
func MarshalMeta(meta *core.KnowledgeMeta) []byte {
	buf := make([]byte, core.KnowledgeMetaMUS.Size(*meta))
	core.KnowledgeMetaMUS.Marshal(*meta, buf)
	return buf
}

// UnmarshalMeta deserializes a KnowledgeMeta from bytes.
func UnmarshalMeta(data []byte) (*core.KnowledgeMeta, error) {
	meta, _, err := core.KnowledgeMetaMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	meta.LastUpdated = meta.LastUpdated.UTC()
	return &meta, nil
}
