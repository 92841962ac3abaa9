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


// Package session holds the per-run state of a single game: the ordered
// guess history, the tried-word set, and the trace of search modes used.
package session

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/poiesic/semantra/core"
)

// Default stagnation parameters. A session is stagnant when the best
// similarity inside the recent window never beats the all-time best by more
// than the threshold.
const (
	DefaultStagnationWindow    = 5
	DefaultStagnationThreshold = 1.0
)

// ModeSpan is one run-length-encoded entry of the mode trace: the mode name
// and how many consecutive turns were spent in it.
type ModeSpan struct {
	Mode  string
	Turns int
}

// Session owns the state of one game run. It is not safe for concurrent
// use; a run is a single logical thread of control.
type Session struct {
	id        uuid.UUID
	startedAt time.Time
	guesses   []core.Guess // attempt order
	tried     map[string]struct{}
	trace     []ModeSpan
}

// New creates an empty session with a fresh run ID.
func New() *Session {
	return &Session{
		id:        uuid.New(),
		startedAt: time.Now().UTC(),
		tried:     make(map[string]struct{}),
	}
}

// ID returns the unique run identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// StartedAt returns when the run began.
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// Duration returns how long the run has been going.
func (s *Session) Duration() time.Duration {
	return time.Since(s.startedAt)
}

// AddGuess appends a validated guess and marks its word tried.
// Submitting a word twice is a caller contract violation and fails.
func (s *Session) AddGuess(g core.Guess) error {
	if err := core.ValidateGuess(&g); err != nil {
		return err
	}
	if s.Tried(g.Word) {
		return fmt.Errorf("%w: %q", ErrWordAlreadyTried, g.Word)
	}
	s.guesses = append(s.guesses, g)
	s.tried[g.Word] = struct{}{}
	return nil
}

// Exclude marks a word tried without recording a guess. Used for words the
// oracle rejected or failed to score.
func (s *Session) Exclude(word string) {
	s.tried[word] = struct{}{}
}

// Tried reports whether a word was guessed or excluded this run.
func (s *Session) Tried(word string) bool {
	_, ok := s.tried[word]
	return ok
}

// TriedCount returns the size of the tried set (guesses plus exclusions).
func (s *Session) TriedCount() int {
	return len(s.tried)
}

// Guesses returns the guess history in attempt order.
func (s *Session) Guesses() []core.Guess {
	out := make([]core.Guess, len(s.guesses))
	copy(out, s.guesses)
	return out
}

// Len returns the number of recorded guesses.
func (s *Session) Len() int {
	return len(s.guesses)
}

// BestSimilarity returns the highest similarity seen, or 0 with no guesses.
func (s *Session) BestSimilarity() float64 {
	best := 0.0
	for _, g := range s.guesses {
		if g.Similarity > best {
			best = g.Similarity
		}
	}
	return best
}

// BestGuess returns the highest-similarity guess, earliest attempt winning
// ties. The second return is false with no guesses.
func (s *Session) BestGuess() (core.Guess, bool) {
	if len(s.guesses) == 0 {
		return core.Guess{}, false
	}
	best := s.guesses[0]
	for _, g := range s.guesses[1:] {
		if g.Similarity > best.Similarity {
			best = g
		}
	}
	return best, true
}

// TopGuesses returns the k highest-similarity guesses, ties broken by the
// earlier attempt.
func (s *Session) TopGuesses(k int) []core.Guess {
	sorted := make([]core.Guess, len(s.guesses))
	copy(sorted, s.guesses)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Similarity != sorted[j].Similarity {
			return sorted[i].Similarity > sorted[j].Similarity
		}
		return sorted[i].Attempt < sorted[j].Attempt
	})
	if k > len(sorted) {
		k = len(sorted)
	}
	return sorted[:k]
}

// RecentGuesses returns the last k guesses in attempt order.
func (s *Session) RecentGuesses(k int) []core.Guess {
	if k > len(s.guesses) {
		k = len(s.guesses)
	}
	out := make([]core.Guess, k)
	copy(out, s.guesses[len(s.guesses)-k:])
	return out
}

// IsStagnant reports whether similarity has plateaued: with at least
// windowSize guesses, true iff the recent window's max never exceeds the
// best seen before the window by more than threshold. A plateau at the
// all-time best still counts.
func (s *Session) IsStagnant(windowSize int, threshold float64) bool {
	if len(s.guesses) < windowSize {
		return false
	}
	cut := len(s.guesses) - windowSize
	priorBest := 0.0
	for _, g := range s.guesses[:cut] {
		if g.Similarity > priorBest {
			priorBest = g.Similarity
		}
	}
	recentMax := 0.0
	for _, g := range s.guesses[cut:] {
		if g.Similarity > recentMax {
			recentMax = g.Similarity
		}
	}
	return recentMax <= priorBest+threshold
}

// UpdateMode records that this turn ran under the named mode. Consecutive
// turns in one mode collapse into a single trace entry with a turn count.
func (s *Session) UpdateMode(name string) {
	if n := len(s.trace); n > 0 && s.trace[n-1].Mode == name {
		s.trace[n-1].Turns++
		return
	}
	s.trace = append(s.trace, ModeSpan{Mode: name, Turns: 1})
}

// CurrentMode returns the mode of the most recent turn, or "" before the
// first turn.
func (s *Session) CurrentMode() string {
	if len(s.trace) == 0 {
		return ""
	}
	return s.trace[len(s.trace)-1].Mode
}

// TurnsInCurrentMode returns how many consecutive turns the current mode
// has run for.
func (s *Session) TurnsInCurrentMode() int {
	if len(s.trace) == 0 {
		return 0
	}
	return s.trace[len(s.trace)-1].Turns
}

// ModeSequence returns the de-duplicated mode names in the order entered.
func (s *Session) ModeSequence() []string {
	out := make([]string, len(s.trace))
	for i, span := range s.trace {
		out[i] = span.Mode
	}
	return out
}

// ModeTrace returns the full run-length-encoded mode trace.
func (s *Session) ModeTrace() []ModeSpan {
	out := make([]ModeSpan, len(s.trace))
	copy(out, s.trace)
	return out
}
