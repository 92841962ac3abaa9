// Package mock provides deterministic oracles for tests and offline
// simulation.
package mock

import (
	"context"
	"sync"

	"github.com/poiesic/semantra/oracle"
)

// ScriptedOracle returns pre-registered results per word and
// oracle.ErrWordNotFound for anything else. Safe for concurrent use.
type ScriptedOracle struct {
	mu      sync.Mutex
	results map[string]oracle.Result
	errs    map[string]error
	calls   []string
}

var _ oracle.Oracle = (*ScriptedOracle)(nil)

// NewScripted creates an empty scripted oracle.
func NewScripted() *ScriptedOracle {
	return &ScriptedOracle{
		results: make(map[string]oracle.Result),
		errs:    make(map[string]error),
	}
}

// Score registers a similarity for a word.
func (o *ScriptedOracle) Score(word string, similarity float64) *ScriptedOracle {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.results[word] = oracle.Result{Similarity: similarity}
	return o
}

// Answer registers the hidden answer.
func (o *ScriptedOracle) Answer(word string) *ScriptedOracle {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.results[word] = oracle.Result{Similarity: 100, Rank: "정답", Found: true}
	return o
}

// Fail registers an error for a word.
func (o *ScriptedOracle) Fail(word string, err error) *ScriptedOracle {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.errs[word] = err
	return o
}

// Submit implements oracle.Oracle.
func (o *ScriptedOracle) Submit(ctx context.Context, word string) (*oracle.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, word)

	if err, ok := o.errs[word]; ok {
		return nil, err
	}
	if r, ok := o.results[word]; ok {
		return &r, nil
	}
	return nil, oracle.ErrWordNotFound
}

// Calls returns the submitted words in order.
func (o *ScriptedOracle) Calls() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, len(o.calls))
	copy(out, o.calls)
	return out
}

// HeuristicOracle scores words against a fixed answer by character overlap,
// giving a crude but deterministic similarity surface for self-play.
type HeuristicOracle struct {
	answer string
}

var _ oracle.Oracle = (*HeuristicOracle)(nil)

// NewHeuristic creates an oracle around a hidden answer.
func NewHeuristic(answer string) *HeuristicOracle {
	return &HeuristicOracle{answer: answer}
}

// Submit implements oracle.Oracle. The answer scores 100; other words score
// by shared runes and shared prefix with the answer.
func (o *HeuristicOracle) Submit(ctx context.Context, word string) (*oracle.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if word == "" {
		return nil, oracle.ErrWordNotFound
	}
	if word == o.answer {
		return &oracle.Result{Similarity: 100, Rank: "정답", Found: true}, nil
	}

	answer := []rune(o.answer)
	guess := []rune(word)

	set := make(map[rune]struct{}, len(answer))
	for _, r := range answer {
		set[r] = struct{}{}
	}
	common := 0
	seen := make(map[rune]struct{}, len(guess))
	for _, r := range guess {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		if _, ok := set[r]; ok {
			common++
		}
	}

	longer := len(answer)
	if len(guess) > longer {
		longer = len(guess)
	}

	sim := 70 * float64(common) / float64(longer)

	prefix := 0
	for i := 0; i < len(answer) && i < len(guess); i++ {
		if answer[i] != guess[i] {
			break
		}
		prefix++
	}
	sim += 20 * float64(prefix) / float64(len(answer))

	if sim > 99 {
		sim = 99
	}
	return &oracle.Result{Similarity: sim}, nil
}
