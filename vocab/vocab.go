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


// Package vocab provides the immutable candidate word set for a run.
// Loading and parsing word lists is a collaborator concern; this package
// only holds the deduplicated result.
package vocab

import (
	"errors"
	"strings"
)

// ErrEmptyVocabulary indicates no usable words were supplied.
var ErrEmptyVocabulary = errors.New("vocabulary is empty")

// Vocabulary is an immutable, deduplicated set of candidate words.
type Vocabulary struct {
	words []string
	index map[string]struct{}
}

// New builds a vocabulary from the given words. Blank entries are dropped,
// surrounding whitespace is trimmed, and duplicates keep first position.
func New(words []string) (*Vocabulary, error) {
	v := &Vocabulary{
		index: make(map[string]struct{}, len(words)),
	}
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, dup := v.index[w]; dup {
			continue
		}
		v.index[w] = struct{}{}
		v.words = append(v.words, w)
	}
	if len(v.words) == 0 {
		return nil, ErrEmptyVocabulary
	}
	return v, nil
}

// Contains reports membership.
func (v *Vocabulary) Contains(word string) bool {
	_, ok := v.index[word]
	return ok
}

// Words returns the words in original order. Callers must not modify the
// returned slice.
func (v *Vocabulary) Words() []string {
	return v.words
}

// Len returns the vocabulary size.
func (v *Vocabulary) Len() int {
	return len(v.words)
}
