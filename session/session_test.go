package session

import (
	"testing"

	"github.com/poiesic/semantra/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGuess(t *testing.T, word string, similarity float64, attempt int) core.Guess {
	t.Helper()
	g, err := core.NewGuess(word, similarity, "", attempt)
	require.NoError(t, err)
	return g
}

func TestAddGuess(t *testing.T) {
	s := New()

	require.NoError(t, s.AddGuess(mustGuess(t, "사람", 12, 0)))
	require.NoError(t, s.AddGuess(mustGuess(t, "시간", 8, 1)))

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Tried("사람"))
	assert.True(t, s.Tried("시간"))
	assert.False(t, s.Tried("자연"))
}

func TestAddGuess_DuplicateWord(t *testing.T) {
	s := New()

	require.NoError(t, s.AddGuess(mustGuess(t, "사람", 12, 0)))
	err := s.AddGuess(mustGuess(t, "사람", 15, 1))
	assert.ErrorIs(t, err, ErrWordAlreadyTried)
	assert.Equal(t, 1, s.Len())
}

func TestAddGuess_InvalidGuess(t *testing.T) {
	s := New()

	err := s.AddGuess(core.Guess{Word: "", Similarity: 10})
	assert.ErrorIs(t, err, core.ErrInvalidGuess)
}

func TestExclude(t *testing.T) {
	s := New()

	s.Exclude("깨진단어")

	assert.True(t, s.Tried("깨진단어"))
	assert.Equal(t, 0, s.Len(), "exclusion must not record a guess")
	assert.Equal(t, 1, s.TriedCount())
}

func TestBestSimilarity(t *testing.T) {
	s := New()
	assert.Equal(t, 0.0, s.BestSimilarity(), "empty session floors at 0")

	require.NoError(t, s.AddGuess(mustGuess(t, "사람", 12, 0)))
	require.NoError(t, s.AddGuess(mustGuess(t, "인간", 55, 1)))
	require.NoError(t, s.AddGuess(mustGuess(t, "시간", 30, 2)))

	assert.Equal(t, 55.0, s.BestSimilarity())

	best, ok := s.BestGuess()
	require.True(t, ok)
	assert.Equal(t, "인간", best.Word)
}

func TestTopGuesses_TiesByEarliestAttempt(t *testing.T) {
	s := New()
	require.NoError(t, s.AddGuess(mustGuess(t, "가", 20, 0)))
	require.NoError(t, s.AddGuess(mustGuess(t, "나", 40, 1)))
	require.NoError(t, s.AddGuess(mustGuess(t, "다", 40, 2)))
	require.NoError(t, s.AddGuess(mustGuess(t, "라", 10, 3)))

	top := s.TopGuesses(3)
	require.Len(t, top, 3)
	assert.Equal(t, "나", top[0].Word, "earlier attempt wins the tie")
	assert.Equal(t, "다", top[1].Word)
	assert.Equal(t, "가", top[2].Word)
}

func TestTopGuesses_KLargerThanHistory(t *testing.T) {
	s := New()
	require.NoError(t, s.AddGuess(mustGuess(t, "가", 20, 0)))

	assert.Len(t, s.TopGuesses(5), 1)
}

func TestRecentGuesses_AttemptOrder(t *testing.T) {
	s := New()
	require.NoError(t, s.AddGuess(mustGuess(t, "가", 90, 0)))
	require.NoError(t, s.AddGuess(mustGuess(t, "나", 10, 1)))
	require.NoError(t, s.AddGuess(mustGuess(t, "다", 50, 2)))

	recent := s.RecentGuesses(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "나", recent[0].Word, "recency is attempt order, not similarity")
	assert.Equal(t, "다", recent[1].Word)
}

func TestIsStagnant(t *testing.T) {
	t.Run("too few guesses", func(t *testing.T) {
		s := New()
		require.NoError(t, s.AddGuess(mustGuess(t, "가", 10, 0)))
		assert.False(t, s.IsStagnant(3, 1.0))
	})

	t.Run("plateau at all-time best is stagnant", func(t *testing.T) {
		s := New()
		for i, sim := range []float64{40, 40.5, 40.2, 39, 40.4} {
			require.NoError(t, s.AddGuess(mustGuess(t, string(rune('가'+i)), sim, i)))
		}
		assert.True(t, s.IsStagnant(3, 1.0))
	})

	t.Run("improvement beyond the pre-window best is not stagnant", func(t *testing.T) {
		s := New()
		for i, sim := range []float64{10, 12, 11, 13, 30} {
			require.NoError(t, s.AddGuess(mustGuess(t, string(rune('가'+i)), sim, i)))
		}
		assert.False(t, s.IsStagnant(3, 1.0))
	})

	t.Run("window covering the whole history is not stagnant", func(t *testing.T) {
		s := New()
		for i, sim := range []float64{40, 40.5, 40.2} {
			require.NoError(t, s.AddGuess(mustGuess(t, string(rune('가'+i)), sim, i)))
		}
		assert.False(t, s.IsStagnant(3, 1.0))
	})

	t.Run("strict improvement within window is not stagnant", func(t *testing.T) {
		s := New()
		for i, sim := range []float64{10, 20, 45} {
			require.NoError(t, s.AddGuess(mustGuess(t, string(rune('가'+i)), sim, i)))
		}
		// Window max 45 > previous best + threshold.
		assert.False(t, s.IsStagnant(2, 1.0))
	})

	t.Run("declining tail is stagnant", func(t *testing.T) {
		s := New()
		for i, sim := range []float64{50, 12, 9, 7} {
			require.NoError(t, s.AddGuess(mustGuess(t, string(rune('가'+i)), sim, i)))
		}
		assert.True(t, s.IsStagnant(3, 1.0))
	})
}

func TestUpdateMode_RunLengthEncoding(t *testing.T) {
	s := New()

	s.UpdateMode("wide")
	s.UpdateMode("wide")
	s.UpdateMode("gradient")
	s.UpdateMode("gradient")
	s.UpdateMode("gradient")
	s.UpdateMode("wide")

	assert.Equal(t, []string{"wide", "gradient", "wide"}, s.ModeSequence())
	assert.Equal(t, "wide", s.CurrentMode())
	assert.Equal(t, 1, s.TurnsInCurrentMode())

	trace := s.ModeTrace()
	require.Len(t, trace, 3)
	assert.Equal(t, ModeSpan{Mode: "wide", Turns: 2}, trace[0])
	assert.Equal(t, ModeSpan{Mode: "gradient", Turns: 3}, trace[1])
}

func TestTurnsInCurrentMode_Empty(t *testing.T) {
	s := New()
	assert.Equal(t, 0, s.TurnsInCurrentMode())
	assert.Equal(t, "", s.CurrentMode())
}

func TestSessionIDs_Unique(t *testing.T) {
	a, b := New(), New()
	assert.NotEqual(t, a.ID(), b.ID())
}
