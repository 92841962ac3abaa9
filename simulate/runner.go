// Package simulate drives offline self-play: many runs against synthetic
// oracles, executed concurrently, feeding one shared knowledge base. Useful
// for warming the knowledge store before playing a live game.
package simulate

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	semantra "github.com/poiesic/semantra"
	"github.com/poiesic/semantra/oracle"
	"github.com/poiesic/semantra/oracle/mock"
	"github.com/poiesic/semantra/vocab"
)

// OracleFactory builds an oracle hiding the given answer.
type OracleFactory func(answer string) oracle.Oracle

// Runner executes self-play batches over a worker pool.
type Runner struct {
	solver  *semantra.Solver
	pool    *ants.Pool
	factory OracleFactory
	logger  *slog.Logger

	maxAttempts int
}

// Option configures a Runner.
type Option func(*Runner) error

// WithPoolSize sets the worker pool size for concurrent runs.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(r *Runner) error {
		if size < 1 {
			size = 1
		}
		if r.pool != nil {
			r.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		r.pool = pool
		return nil
	}
}

// WithOracleFactory replaces the default heuristic oracle.
func WithOracleFactory(factory OracleFactory) Option {
	return func(r *Runner) error {
		if factory != nil {
			r.factory = factory
		}
		return nil
	}
}

// WithMaxAttempts sets the per-run guess budget.
func WithMaxAttempts(n int) Option {
	return func(r *Runner) error {
		if n > 0 {
			r.maxAttempts = n
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRunner creates a self-play runner around an existing solver.
func NewRunner(solver *semantra.Solver, opts ...Option) (*Runner, error) {
	if solver == nil {
		return nil, ErrSolverRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		solver:      solver,
		pool:        pool,
		factory:     func(answer string) oracle.Oracle { return mock.NewHeuristic(answer) },
		logger:      slog.Default(),
		maxAttempts: semantra.DefaultMaxAttempts,
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			pool.Release()
			return nil, err
		}
	}
	return r, nil
}

// Release shuts down the worker pool.
func (r *Runner) Release() {
	r.pool.Release()
}

// Report aggregates a self-play batch.
type Report struct {
	Games       int
	Successes   int
	SuccessRate float64
	AvgAttempts float64
	Elapsed     time.Duration
}

// Run plays one game per answer, concurrently, and aggregates the results.
// Individual run failures are logged and counted as losses rather than
// aborting the batch.
func (r *Runner) Run(ctx context.Context, v *vocab.Vocabulary, answers []string) (*Report, error) {
	if len(answers) == 0 {
		return nil, ErrNoAnswers
	}

	start := time.Now()

	var (
		wg            sync.WaitGroup
		mu            sync.Mutex
		successes     int
		totalAttempts int
	)

	for _, answer := range answers {
		answer := answer
		wg.Add(1)
		err := r.pool.Submit(func() {
			defer wg.Done()

			result, err := r.solver.Play(ctx, r.factory(answer), v,
				semantra.WithMaxAttempts(r.maxAttempts))
			if err != nil {
				r.logger.Warn("simulated run failed", "answer", answer, "err", err)
				return
			}

			mu.Lock()
			if result.Success {
				successes++
			}
			totalAttempts += result.Attempts
			mu.Unlock()

			r.logger.Debug("simulated run finished",
				"answer", answer, "success", result.Success, "attempts", result.Attempts)
		})
		if err != nil {
			wg.Done()
			return nil, err
		}
	}

	wg.Wait()

	report := &Report{
		Games:       len(answers),
		Successes:   successes,
		SuccessRate: float64(successes) / float64(len(answers)),
		AvgAttempts: float64(totalAttempts) / float64(len(answers)),
		Elapsed:     time.Since(start),
	}
	return report, nil
}
