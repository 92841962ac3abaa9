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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidGuess indicates a Guess failed validation.
	ErrInvalidGuess = errors.New("invalid guess")

	// ErrEmptyWord indicates the Word field is empty.
	ErrEmptyWord = errors.New("word cannot be empty")

	// ErrSimilarityOutOfRange indicates a similarity outside [0,100].
	ErrSimilarityOutOfRange = errors.New("similarity must be between 0 and 100")

	// ErrNegativeAttempt indicates a negative attempt index.
	ErrNegativeAttempt = errors.New("attempt index cannot be negative")

	// ErrInvalidPattern indicates a SuccessPattern failed validation.
	ErrInvalidPattern = errors.New("invalid success pattern")

	// ErrEmptyAnswer indicates the Answer field is empty.
	ErrEmptyAnswer = errors.New("answer cannot be empty")

	// ErrNoKeyWords indicates the KeyWords list is empty.
	ErrNoKeyWords = errors.New("key words cannot be empty")

	// ErrInvalidAttempts indicates a non-positive attempt count.
	ErrInvalidAttempts = errors.New("attempt count must be at least 1")
)
