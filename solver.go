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


package semantra

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/poiesic/semantra/adaptive"
	"github.com/poiesic/semantra/core"
	"github.com/poiesic/semantra/knowledge"
	"github.com/poiesic/semantra/oracle"
	"github.com/poiesic/semantra/session"
	"github.com/poiesic/semantra/storage"
	"github.com/poiesic/semantra/storage/badger"
	"github.com/poiesic/semantra/strategy"
	"github.com/poiesic/semantra/vocab"
)

// DefaultMaxAttempts is the per-run guess budget.
const DefaultMaxAttempts = 500

// Solver ties the pieces together: a persistent knowledge base, the search
// policy, and the run loop against an oracle.
type Solver struct {
	backend *badger.Backend
	repo    storage.KnowledgeRepository
	kb      *knowledge.Engine

	engine   *strategy.Engine
	policy   strategy.Policy
	selector *adaptive.Selector // nil when advanced learning is off

	logger *slog.Logger
}

// SolverOption configures a Solver.
type SolverOption func(*solverOptions)

type solverOptions struct {
	inMemory bool
	advanced bool
	rng      *rand.Rand
	logger   *slog.Logger
}

// WithInMemoryStorage keeps the knowledge base in a non-persistent
// in-memory store. Intended for tests and throwaway simulations.
func WithInMemoryStorage() SolverOption {
	return func(o *solverOptions) { o.inMemory = true }
}

// WithAdvancedLearning toggles the Q-learning selector and threshold tuner.
// Enabled by default.
func WithAdvancedLearning(enabled bool) SolverOption {
	return func(o *solverOptions) { o.advanced = enabled }
}

// WithRand sets the random source shared by the policy layers.
func WithRand(rng *rand.Rand) SolverOption {
	return func(o *solverOptions) { o.rng = rng }
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) SolverOption {
	return func(o *solverOptions) { o.logger = logger }
}

// NewSolver opens (or creates) the knowledge store at dbPath and restores
// the learned state. A load failure is not fatal: the solver starts cold
// and logs a warning, per the graceful-degradation contract.
func NewSolver(dbPath string, opts ...SolverOption) (*Solver, error) {
	options := &solverOptions{
		advanced: true,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(dbPath, options.inMemory)
	if err != nil {
		return nil, err
	}

	repo, err := badger.NewKnowledgeRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	var kbOpts []knowledge.Option
	kbOpts = append(kbOpts, knowledge.WithLogger(options.logger))
	snap, err := repo.LoadSnapshot(context.Background())
	if err != nil {
		options.logger.Warn("knowledge load failed, starting cold", "err", err)
	} else {
		kbOpts = append(kbOpts, knowledge.WithSnapshot(snap))
	}

	kb, err := knowledge.NewEngine(kbOpts...)
	if err != nil {
		repo.Close()
		backend.Close()
		return nil, err
	}

	engine, err := strategy.NewEngine(
		strategy.WithRand(options.rng),
		strategy.WithLogger(options.logger),
	)
	if err != nil {
		repo.Close()
		backend.Close()
		return nil, err
	}

	s := &Solver{
		backend: backend,
		repo:    repo,
		kb:      kb,
		engine:  engine,
		policy:  engine,
		logger:  options.logger,
	}

	if options.advanced {
		// The strategy modes and the Q-learner synchronize on separate
		// mutexes, so each gets its own source. Deriving the second seed
		// from the first keeps seeded solvers reproducible.
		selector, err := adaptive.NewSelector(engine,
			adaptive.WithRand(rand.New(rand.NewSource(options.rng.Int63()))),
			adaptive.WithLogger(options.logger),
		)
		if err != nil {
			repo.Close()
			backend.Close()
			return nil, err
		}
		s.selector = selector
		s.policy = selector
	}

	return s, nil
}

// Knowledge returns the learning engine.
func (s *Solver) Knowledge() *knowledge.Engine {
	return s.kb
}

// Stats returns the knowledge base summary.
func (s *Solver) Stats() knowledge.Stats {
	return s.kb.Stats()
}

// Save persists the current knowledge base.
func (s *Solver) Save(ctx context.Context) error {
	return s.repo.SaveSnapshot(ctx, s.kb.Snapshot())
}

// Close persists the knowledge base and releases storage resources.
func (s *Solver) Close() error {
	if err := s.Save(context.Background()); err != nil {
		s.logger.Error("error saving knowledge base", "err", err)
	}
	if err := s.repo.Close(); err != nil {
		s.logger.Error("error closing knowledge repository", "err", err)
		return err
	}
	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// RunResult summarizes one finished run.
type RunResult struct {
	Success  bool
	Answer   string
	Attempts int
	Best     core.Guess
	Duration time.Duration
}

// RunOption configures a single run.
type RunOption func(*runOptions)

type runOptions struct {
	maxAttempts int
}

// WithMaxAttempts overrides the per-run guess budget.
func WithMaxAttempts(n int) RunOption {
	return func(o *runOptions) {
		if n > 0 {
			o.maxAttempts = n
		}
	}
}

// Play runs one game against the oracle until the answer is found, the
// budget is spent, the vocabulary is exhausted, or ctx is canceled. The
// outcome is folded into the knowledge base and persisted.
func (s *Solver) Play(ctx context.Context, o oracle.Oracle, v *vocab.Vocabulary, opts ...RunOption) (*RunResult, error) {
	options := &runOptions{maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(options)
	}

	sess := session.New()
	result := &RunResult{}

	for attempt := 1; attempt <= options.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			s.finishRun(ctx, sess, result)
			return result, err
		}

		word, ok := s.policy.NextWord(sess, v, s.kb)
		if !ok {
			s.logger.Info("vocabulary exhausted", "attempts", sess.Len())
			break
		}

		res, err := o.Submit(ctx, word)
		if err != nil {
			// Unscorable word: mark tried and move on. The attempt is
			// spent, never retried.
			s.logger.Debug("oracle rejected word", "word", word, "err", err)
			sess.Exclude(word)
			continue
		}

		prior := sess.Guesses()
		guess, err := core.NewGuess(word, res.Similarity, res.Rank, sess.Len()+1)
		if err != nil {
			return nil, err
		}
		if err := sess.AddGuess(guess); err != nil {
			return nil, err
		}
		s.kb.LearnGuess(guess, prior)

		if res.Found || res.Similarity >= core.MaxSimilarity {
			result.Success = true
			result.Answer = word
			break
		}
	}

	s.finishRun(ctx, sess, result)
	return result, nil
}

// finishRun records the outcome in the knowledge base and both adaptive
// controllers, then persists. Persistence failure degrades to a warning.
func (s *Solver) finishRun(ctx context.Context, sess *session.Session, result *RunResult) {
	result.Attempts = sess.Len()
	result.Duration = sess.Duration()
	if best, ok := sess.BestGuess(); ok {
		result.Best = best
	}

	s.kb.RecordOutcome(sess, result.Success, result.Answer)
	if s.selector != nil {
		s.selector.RecordOutcome(sess, result.Success)
	}

	if err := s.repo.SaveSnapshot(ctx, s.kb.Snapshot()); err != nil {
		s.logger.Warn("knowledge save failed", "err", err)
	}
}
