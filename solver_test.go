package semantra

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/semantra/oracle"
	"github.com/poiesic/semantra/oracle/mock"
	"github.com/poiesic/semantra/vocab"
)

func newTestSolver(t *testing.T, seed int64) *Solver {
	t.Helper()
	s, err := NewSolver("",
		WithInMemoryStorage(),
		WithRand(rand.New(rand.NewSource(seed))),
	)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testVocab(t *testing.T, words ...string) *vocab.Vocabulary {
	t.Helper()
	v, err := vocab.New(words)
	require.NoError(t, err)
	return v
}

func TestPlayFindsAnswer(t *testing.T) {
	s := newTestSolver(t, 11)
	v := testVocab(t, "바다", "하늘", "파도", "해변", "구름", "바람")
	o := mock.NewHeuristic("해변")

	result, err := s.Play(context.Background(), o, v)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "해변", result.Answer)
	assert.LessOrEqual(t, result.Attempts, v.Len())
	assert.Equal(t, "해변", result.Best.Word)
}

func TestPlayNeverResubmitsWords(t *testing.T) {
	s := newTestSolver(t, 12)
	v := testVocab(t, "가나", "나다", "다라", "라마", "마바", "바사")
	o := mock.NewScripted().Answer("바사")
	for _, w := range []string{"가나", "나다", "다라", "라마", "마바"} {
		o.Score(w, 10)
	}

	result, err := s.Play(context.Background(), o, v)
	require.NoError(t, err)
	require.True(t, result.Success)

	calls := o.Calls()
	seen := make(map[string]struct{}, len(calls))
	for _, w := range calls {
		_, dup := seen[w]
		require.False(t, dup, "word %q submitted twice", w)
		seen[w] = struct{}{}
	}
}

func TestPlayExcludesUnscorableWords(t *testing.T) {
	s := newTestSolver(t, 13)
	v := testVocab(t, "가나", "나다", "다라")
	o := mock.NewScripted().Answer("다라")
	o.Score("가나", 20)
	o.Fail("나다", oracle.ErrWordNotFound)

	result, err := s.Play(context.Background(), o, v)
	require.NoError(t, err)

	assert.True(t, result.Success)
	// The failed word was spent silently, never surfaced as an error and
	// never recorded as a guess.
	assert.LessOrEqual(t, result.Attempts, 2)
}

func TestPlayRespectsAttemptBudget(t *testing.T) {
	s := newTestSolver(t, 14)
	v := testVocab(t, "가나", "나다", "다라", "라마", "마바", "바사")
	o := mock.NewScripted()
	for _, w := range v.Words() {
		o.Score(w, 15)
	}

	result, err := s.Play(context.Background(), o, v, WithMaxAttempts(3))
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, 3, result.Attempts)
}

func TestPlayStopsOnVocabularyExhaustion(t *testing.T) {
	s := newTestSolver(t, 15)
	v := testVocab(t, "가나", "나다")
	o := mock.NewScripted()
	o.Score("가나", 5)
	o.Score("나다", 5)

	result, err := s.Play(context.Background(), o, v)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, 2, result.Attempts)
}

func TestPlayAccumulatesKnowledge(t *testing.T) {
	s := newTestSolver(t, 16)
	v := testVocab(t, "바다", "하늘", "파도", "해변")
	o := mock.NewHeuristic("해변")

	_, err := s.Play(context.Background(), o, v)
	require.NoError(t, err)
	_, err = s.Play(context.Background(), o, v)
	require.NoError(t, err)

	stats := s.Stats()
	assert.Equal(t, 2, stats.TotalGames)
	assert.Greater(t, stats.TotalUniqueWords, 0)
}

func TestPlayCanceledContext(t *testing.T) {
	s := newTestSolver(t, 17)
	v := testVocab(t, "바다", "하늘")
	o := mock.NewHeuristic("하늘")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := s.Play(ctx, o, v)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, result.Success)
}

func TestKnowledgePersistsAcrossSolvers(t *testing.T) {
	dir := t.TempDir()

	s, err := NewSolver(dir, WithRand(rand.New(rand.NewSource(18))))
	require.NoError(t, err)

	v := testVocab(t, "바다", "하늘", "파도", "해변")
	_, err = s.Play(context.Background(), mock.NewHeuristic("파도"), v)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := NewSolver(dir, WithRand(rand.New(rand.NewSource(19))))
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, 1, reopened.Stats().TotalGames)
}
