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

import (
	"fmt"
	"strings"
)

// ValidateGuess validates a Guess according to domain rules.
//
// Validation rules:
//   - Word must not be empty or whitespace-only
//   - Similarity must be within [0,100]
//   - Attempt must not be negative
//
// NOT validated:
//   - Rank (opaque display string, any value is legal including empty)
func ValidateGuess(guess *Guess) error {
	if guess == nil {
		return fmt.Errorf("%w: guess is nil", ErrInvalidGuess)
	}

	if strings.TrimSpace(guess.Word) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidGuess, ErrEmptyWord)
	}

	if guess.Similarity < MinSimilarity || guess.Similarity > MaxSimilarity {
		return fmt.Errorf("%w: %w: got %v", ErrInvalidGuess, ErrSimilarityOutOfRange, guess.Similarity)
	}

	if guess.Attempt < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidGuess, ErrNegativeAttempt)
	}

	return nil
}

// ValidateSuccessPattern validates a SuccessPattern according to domain rules.
//
// Validation rules:
//   - Answer must not be empty
//   - Attempts must be at least 1
//   - KeyWords must not be empty
func ValidateSuccessPattern(pattern *SuccessPattern) error {
	if pattern == nil {
		return fmt.Errorf("%w: pattern is nil", ErrInvalidPattern)
	}

	if strings.TrimSpace(pattern.Answer) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPattern, ErrEmptyAnswer)
	}

	if pattern.Attempts < 1 {
		return fmt.Errorf("%w: %w", ErrInvalidPattern, ErrInvalidAttempts)
	}

	if len(pattern.KeyWords) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidPattern, ErrNoKeyWords)
	}

	return nil
}
