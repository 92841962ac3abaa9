package adaptive

import (
	"log/slog"
	"math/rand"

	"github.com/poiesic/semantra/knowledge"
	"github.com/poiesic/semantra/session"
	"github.com/poiesic/semantra/strategy"
	"github.com/poiesic/semantra/vocab"
)

// Selector decorates the base search policy with the Q-learning mode
// selector and the adaptive threshold tuner. It exposes the same Policy
// surface, so enabling advanced learning is a pure composition toggle.
type Selector struct {
	engine *strategy.Engine
	q      *QLearner
	tuner  *ThresholdTuner

	enableQ     bool
	enableTuner bool

	logger *slog.Logger
}

var _ strategy.Policy = (*Selector)(nil)

// SelectorOption configures a Selector.
type SelectorOption func(*Selector) error

// WithQLearning toggles the Q-learning mode selector.
func WithQLearning(enabled bool) SelectorOption {
	return func(s *Selector) error {
		s.enableQ = enabled
		return nil
	}
}

// WithThresholdTuning toggles the adaptive threshold tuner.
func WithThresholdTuning(enabled bool) SelectorOption {
	return func(s *Selector) error {
		s.enableTuner = enabled
		return nil
	}
}

// WithRand sets the random source for ε-greedy exploration.
func WithRand(rng *rand.Rand) SelectorOption {
	return func(s *Selector) error {
		if rng != nil {
			s.q = NewQLearner(rng)
		}
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) SelectorOption {
	return func(s *Selector) error {
		if logger != nil {
			s.logger = logger
		}
		return nil
	}
}

// NewSelector wraps the base engine. Both controllers default to enabled.
func NewSelector(engine *strategy.Engine, opts ...SelectorOption) (*Selector, error) {
	s := &Selector{
		engine:      engine,
		q:           NewQLearner(nil),
		tuner:       NewThresholdTuner(),
		enableQ:     true,
		enableTuner: true,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Engine returns the wrapped base policy.
func (s *Selector) Engine() *strategy.Engine {
	return s.engine
}

// NextWord selects the next word. When the Q-learner has enough signal it
// picks the mode; otherwise the base rule cascade runs and its choice is
// recorded as a learning step.
func (s *Selector) NextWord(sess *session.Session, v *vocab.Vocabulary, kb *knowledge.Engine) (string, bool) {
	if s.enableQ && s.q.Ready() {
		name := s.q.SelectMode(sess)
		if mode, ok := s.engine.ModeByName(name); ok {
			sess.UpdateMode(mode.Name())
			return mode.SelectWord(sess, v, kb)
		}
		s.logger.Warn("q-learner proposed unknown mode", "mode", name)
	}

	mode := s.engine.SelectMode(sess)
	if s.enableQ {
		s.q.RecordStep(sess, mode.Name())
	}
	sess.UpdateMode(mode.Name())
	return mode.SelectWord(sess, v, kb)
}

// RecordOutcome feeds a finished run into both controllers.
func (s *Selector) RecordOutcome(sess *session.Session, success bool) {
	if s.enableQ {
		s.q.FinishEpisode(success, sess.Len())
	}
	if s.enableTuner {
		s.tuner.Record(s.engine, success, sess.Len())
	}
}

// QStats returns Q-learning statistics.
func (s *Selector) QStats() QStats {
	return s.q.Stats()
}

// TunerStats returns threshold tuner statistics.
func (s *Selector) TunerStats() TunerStats {
	return s.tuner.Stats()
}
