// Package adaptive layers two feedback controllers over the base search
// policy: a tabular Q-learning mode selector and a dynamic threshold tuner.
// Both are optional; disabling them falls back to the fixed rule cascade.
package adaptive

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/poiesic/semantra/session"
	"github.com/poiesic/semantra/strategy"
)

// Q-learning hyperparameters.
const (
	DefaultLearningRate   = 0.1
	DefaultDiscountFactor = 0.9
	DefaultEpsilon        = 0.1

	// rewardDecay shrinks the propagated reward per step when updating the
	// episode in reverse.
	rewardDecay = 0.9

	// minHistoryForQ is the per-episode step count below which the learner
	// declines to pick and defers to the rule cascade.
	minHistoryForQ = 5
)

type stateAction struct {
	state string
	mode  string
}

// QLearner learns which mode works best in which game state, keyed by
// coarse similarity, attempt, and stagnation buckets.
type QLearner struct {
	mu sync.Mutex

	learningRate   float64
	discountFactor float64
	epsilon        float64

	qTable   map[string]map[string]float64
	history  []stateAction
	episodes int

	modes []string
	rng   *rand.Rand
}

// NewQLearner creates a learner with the default hyperparameters.
func NewQLearner(rng *rand.Rand) *QLearner {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &QLearner{
		learningRate:   DefaultLearningRate,
		discountFactor: DefaultDiscountFactor,
		epsilon:        DefaultEpsilon,
		qTable:         make(map[string]map[string]float64),
		modes: []string{
			strategy.ModeWide, strategy.ModeGradient,
			strategy.ModeFocused, strategy.ModePrecision,
		},
		rng: rng,
	}
}

// StateKey buckets the session into a coarse learning state.
func (q *QLearner) StateKey(sess *session.Session) string {
	if sess.Len() == 0 {
		return "initial"
	}

	best := sess.BestSimilarity()
	var simBucket string
	switch {
	case best < 10:
		simBucket = "verylow"
	case best < 25:
		simBucket = "low"
	case best < 50:
		simBucket = "mid"
	default:
		simBucket = "high"
	}

	var attemptBucket string
	switch attempts := sess.Len(); {
	case attempts < 10:
		attemptBucket = "early"
	case attempts < 30:
		attemptBucket = "middle"
	default:
		attemptBucket = "late"
	}

	progress := "moving"
	if sess.IsStagnant(session.DefaultStagnationWindow, session.DefaultStagnationThreshold) {
		progress = "stuck"
	}

	return fmt.Sprintf("%s_%s_%s", simBucket, attemptBucket, progress)
}

// Ready reports whether the learner has enough signal to pick a mode: at
// least one completed episode, and enough steps in the current one.
func (q *QLearner) Ready() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.episodes >= 1 && len(q.history) > minHistoryForQ
}

// SelectMode picks a mode name for the current state with an ε-greedy
// policy and records the step for the end-of-episode update.
func (q *QLearner) SelectMode(sess *session.Session) string {
	state := q.StateKey(sess)

	q.mu.Lock()
	defer q.mu.Unlock()

	var mode string
	if q.rng.Float64() < q.epsilon {
		mode = q.modes[q.rng.Intn(len(q.modes))]
	} else {
		mode = q.bestModeLocked(state)
	}

	q.history = append(q.history, stateAction{state: state, mode: mode})
	return mode
}

func (q *QLearner) bestModeLocked(state string) string {
	actions := q.qTable[state]
	if len(actions) == 0 {
		return q.modes[q.rng.Intn(len(q.modes))]
	}

	best := ""
	bestQ := 0.0
	// Iterate in fixed mode order so ties resolve deterministically.
	for _, mode := range q.modes {
		v, ok := actions[mode]
		if !ok {
			continue
		}
		if best == "" || v > bestQ {
			best, bestQ = mode, v
		}
	}
	if best == "" {
		return q.modes[q.rng.Intn(len(q.modes))]
	}
	return best
}

// RecordStep appends a step taken by the base policy so Q updates cover the
// whole episode even before the learner takes over selection.
func (q *QLearner) RecordStep(sess *session.Session, mode string) {
	state := q.StateKey(sess)
	q.mu.Lock()
	defer q.mu.Unlock()
	q.history = append(q.history, stateAction{state: state, mode: mode})
}

// FinishEpisode folds the run's outcome back through the recorded steps
// with temporal-difference updates, newest first. The base reward is 1 for
// success plus an efficiency bonus that shrinks with run length.
func (q *QLearner) FinishEpisode(success bool, attempts int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	reward := 0.0
	if success {
		reward = 1.0
	}
	if bonus := (100.0 - float64(attempts)) / 100.0; bonus > 0 {
		reward += bonus
	}

	for i := len(q.history) - 1; i >= 0; i-- {
		step := q.history[i]

		actions := q.qTable[step.state]
		if actions == nil {
			actions = make(map[string]float64)
			q.qTable[step.state] = actions
		}
		current := actions[step.mode]

		var maxNext float64
		if i < len(q.history)-1 {
			for _, v := range q.qTable[q.history[i+1].state] {
				if v > maxNext {
					maxNext = v
				}
			}
		}

		actions[step.mode] = current + q.learningRate*(reward+q.discountFactor*maxNext-current)
		reward *= rewardDecay
	}

	q.history = q.history[:0]
	q.episodes++
}

// QStats summarizes the learned table.
type QStats struct {
	States       int
	StateActions int
	Episodes     int
	Epsilon      float64
}

// Stats returns table-level statistics.
func (q *QLearner) Stats() QStats {
	q.mu.Lock()
	defer q.mu.Unlock()

	actions := 0
	for _, a := range q.qTable {
		actions += len(a)
	}
	return QStats{
		States:       len(q.qTable),
		StateActions: actions,
		Episodes:     q.episodes,
		Epsilon:      q.epsilon,
	}
}
