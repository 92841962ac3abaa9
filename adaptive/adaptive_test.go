package adaptive

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/semantra/core"
	"github.com/poiesic/semantra/knowledge"
	"github.com/poiesic/semantra/session"
	"github.com/poiesic/semantra/strategy"
	"github.com/poiesic/semantra/vocab"
)

func addGuess(t *testing.T, sess *session.Session, word string, sim float64) {
	t.Helper()
	g, err := core.NewGuess(word, sim, "", sess.Len()+1)
	require.NoError(t, err)
	require.NoError(t, sess.AddGuess(g))
}

func TestStateKeyBuckets(t *testing.T) {
	q := NewQLearner(rand.New(rand.NewSource(1)))

	assert.Equal(t, "initial", q.StateKey(session.New()))

	sess := session.New()
	addGuess(t, sess, "바다", 30)
	assert.Equal(t, "mid_early_moving", q.StateKey(sess))

	sess = session.New()
	addGuess(t, sess, "바다", 60)
	assert.Equal(t, "high_early_moving", q.StateKey(sess))
}

func TestQLearnerNotReadyWithoutEpisodes(t *testing.T) {
	q := NewQLearner(rand.New(rand.NewSource(1)))
	assert.False(t, q.Ready())

	sess := session.New()
	for i := 0; i < 10; i++ {
		q.RecordStep(sess, strategy.ModeWide)
	}
	// Steps alone are not enough; one episode must have completed.
	assert.False(t, q.Ready())

	q.FinishEpisode(true, 10)
	for i := 0; i < 10; i++ {
		q.RecordStep(sess, strategy.ModeWide)
	}
	assert.True(t, q.Ready())
}

func TestFinishEpisodeRewardsSuccessfulModes(t *testing.T) {
	q := NewQLearner(rand.New(rand.NewSource(1)))

	sess := session.New()
	addGuess(t, sess, "바다", 60)
	state := q.StateKey(sess)

	q.RecordStep(sess, strategy.ModePrecision)
	q.FinishEpisode(true, 5)

	assert.Greater(t, q.qTable[state][strategy.ModePrecision], 0.0)

	// A losing episode drags a different mode's value below the winner's.
	q.RecordStep(sess, strategy.ModeWide)
	q.FinishEpisode(false, 100)
	assert.Greater(t,
		q.qTable[state][strategy.ModePrecision],
		q.qTable[state][strategy.ModeWide])

	stats := q.Stats()
	assert.Equal(t, 2, stats.Episodes)
	assert.Equal(t, 1, stats.States)
	assert.Equal(t, 2, stats.StateActions)
}

func TestFinishEpisodeClearsHistory(t *testing.T) {
	q := NewQLearner(rand.New(rand.NewSource(1)))
	q.RecordStep(session.New(), strategy.ModeWide)
	q.FinishEpisode(false, 50)
	assert.Empty(t, q.history)
}

func newEngine(t *testing.T) *strategy.Engine {
	t.Helper()
	e, err := strategy.NewEngine(strategy.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	return e
}

func TestTunerLowersThresholdsOnLowSuccessRate(t *testing.T) {
	engine := newEngine(t)
	tuner := NewThresholdTuner()
	before := engine.Thresholds()

	for i := 0; i < DefaultAdjustPeriod; i++ {
		tuner.Record(engine, false, 100)
	}

	after := engine.Thresholds()
	assert.Less(t, after.T1, before.T1)
	assert.Less(t, after.T2, before.T2)
	assert.Less(t, after.T3, before.T3)
}

func TestTunerRaisesThresholdsOnLongSuccessfulRuns(t *testing.T) {
	engine := newEngine(t)
	tuner := NewThresholdTuner()
	before := engine.Thresholds()

	// High success rate but very long runs.
	for i := 0; i < DefaultAdjustPeriod; i++ {
		tuner.Record(engine, true, 200)
	}

	after := engine.Thresholds()
	assert.Greater(t, after.T1, before.T1)
	assert.Greater(t, after.T3, before.T3)
}

func TestTunerKeepsThresholdsWhenHealthy(t *testing.T) {
	engine := newEngine(t)
	tuner := NewThresholdTuner()
	before := engine.Thresholds()

	// High success rate and short runs.
	for i := 0; i < DefaultAdjustPeriod; i++ {
		tuner.Record(engine, true, 8)
	}

	assert.Equal(t, before, engine.Thresholds())
}

func TestTunerClampsAtFloor(t *testing.T) {
	engine := newEngine(t)
	tuner := NewThresholdTuner()

	for i := 0; i < DefaultWindowSize*3; i++ {
		tuner.Record(engine, false, 100)
	}

	after := engine.Thresholds()
	assert.GreaterOrEqual(t, after.T1, 5.0)
	assert.Equal(t, 5.0, after.T1)
}

func TestSelectorFallsBackToRuleCascade(t *testing.T) {
	engine := newEngine(t)
	sel, err := NewSelector(engine, WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)

	kb, err := knowledge.NewEngine()
	require.NoError(t, err)
	v, err := vocab.New([]string{"가", "나", "다"})
	require.NoError(t, err)

	sess := session.New()
	word, ok := sel.NextWord(sess, v, kb)
	require.True(t, ok)
	assert.True(t, v.Contains(word))
	// Empty session: the rule cascade must have picked wide.
	assert.Equal(t, strategy.ModeWide, sess.CurrentMode())
}

func TestSelectorRecordsOutcomeIntoBothControllers(t *testing.T) {
	engine := newEngine(t)
	sel, err := NewSelector(engine, WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)

	sess := session.New()
	addGuess(t, sess, "바다", 40)
	sess.UpdateMode(strategy.ModeGradient)

	sel.RecordOutcome(sess, true)

	assert.Equal(t, 1, sel.QStats().Episodes)
	assert.Equal(t, 1, sel.TunerStats().Recorded)
	assert.InDelta(t, 1.0, sel.TunerStats().SuccessRate, 1e-9)
}

func TestSelectorDisabledControllersAreInert(t *testing.T) {
	engine := newEngine(t)
	sel, err := NewSelector(engine,
		WithQLearning(false), WithThresholdTuning(false))
	require.NoError(t, err)

	before := engine.Thresholds()
	sess := session.New()
	for i := 0; i < DefaultAdjustPeriod*2; i++ {
		sel.RecordOutcome(sess, false)
	}

	assert.Equal(t, before, engine.Thresholds())
	assert.Equal(t, 0, sel.QStats().Episodes)
}
