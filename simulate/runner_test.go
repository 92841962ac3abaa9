package simulate

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	semantra "github.com/poiesic/semantra"
	"github.com/poiesic/semantra/vocab"
)

func newTestRunner(t *testing.T, poolSize int) *Runner {
	t.Helper()

	solver, err := semantra.NewSolver("",
		semantra.WithInMemoryStorage(),
		semantra.WithRand(rand.New(rand.NewSource(21))),
	)
	require.NoError(t, err)
	t.Cleanup(func() { solver.Close() })

	runner, err := NewRunner(solver, WithPoolSize(poolSize))
	require.NoError(t, err)
	t.Cleanup(runner.Release)
	return runner
}

func TestRunnerRequiresSolver(t *testing.T) {
	_, err := NewRunner(nil)
	assert.ErrorIs(t, err, ErrSolverRequired)
}

func TestRunRequiresAnswers(t *testing.T) {
	runner := newTestRunner(t, 1)
	v, err := vocab.New([]string{"바다"})
	require.NoError(t, err)

	_, err = runner.Run(context.Background(), v, nil)
	assert.ErrorIs(t, err, ErrNoAnswers)
}

func TestRunBatchSolvesAllAnswers(t *testing.T) {
	runner := newTestRunner(t, 2)
	v, err := vocab.New([]string{"바다", "하늘", "파도", "해변", "구름"})
	require.NoError(t, err)

	report, err := runner.Run(context.Background(), v,
		[]string{"바다", "하늘", "파도"})
	require.NoError(t, err)

	assert.Equal(t, 3, report.Games)
	// Every answer is in the vocabulary and the budget is generous, so
	// each run must eventually hit it.
	assert.Equal(t, 3, report.Successes)
	assert.InDelta(t, 1.0, report.SuccessRate, 1e-9)
	assert.Greater(t, report.AvgAttempts, 0.0)
}

func TestRunParallelWithAdvancedLearning(t *testing.T) {
	runner := newTestRunner(t, 4)
	v, err := vocab.New([]string{"바다", "하늘", "파도", "해변", "구름", "사람", "시간"})
	require.NoError(t, err)

	// Enough games for the Q-learner to finish episodes and start driving
	// mode selection while other workers are still sampling words.
	answers := make([]string, 0, 24)
	for i := 0; i < 8; i++ {
		answers = append(answers, "바다", "하늘", "파도")
	}

	report, err := runner.Run(context.Background(), v, answers)
	require.NoError(t, err)
	assert.Equal(t, len(answers), report.Games)
	assert.Equal(t, len(answers), report.Successes)
}

func TestRunFeedsSharedKnowledge(t *testing.T) {
	solver, err := semantra.NewSolver("",
		semantra.WithInMemoryStorage(),
		semantra.WithRand(rand.New(rand.NewSource(22))),
	)
	require.NoError(t, err)
	defer solver.Close()

	runner, err := NewRunner(solver, WithPoolSize(2))
	require.NoError(t, err)
	defer runner.Release()

	v, err := vocab.New([]string{"바다", "하늘", "파도", "해변"})
	require.NoError(t, err)

	_, err = runner.Run(context.Background(), v, []string{"바다", "하늘"})
	require.NoError(t, err)

	stats := solver.Stats()
	assert.Equal(t, 2, stats.TotalGames)
	assert.Greater(t, stats.TotalUniqueWords, 0)
}
