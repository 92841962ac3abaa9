package strategy

import (
	"log/slog"
	"math/rand"
	"sync"

	"github.com/poiesic/semantra/knowledge"
	"github.com/poiesic/semantra/session"
	"github.com/poiesic/semantra/vocab"
)

// Default regime thresholds on the 0-100 similarity scale, and the velocity
// bounds used in the mid band: improvement above fastImprovement over the
// last velocityWindow guesses advances to focused search, below
// slowImprovement regresses to wide.
const (
	DefaultT1 = 10.0
	DefaultT2 = 25.0
	DefaultT3 = 50.0

	// DefaultRotationThreshold is the exclusive bound on consecutive turns
	// in one mode while stagnant: rotation fires on turn 21.
	DefaultRotationThreshold = 20

	velocityWindow  = 5
	fastImprovement = 15.0
	slowImprovement = 5.0
)

// Thresholds are the three regime boundaries T1 < T2 < T3.
type Thresholds struct {
	T1, T2, T3 float64
}

// DefaultThresholds returns the standard regime boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{T1: DefaultT1, T2: DefaultT2, T3: DefaultT3}
}

// Engine is the base search policy: a deterministic rule cascade that picks
// a mode from session state each turn. Thresholds are mutable so a feedback
// controller can retune them between runs.
type Engine struct {
	modes  []Mode // rotation order
	byName map[string]Mode

	mu         sync.Mutex
	thresholds Thresholds

	rotationThreshold   int
	stagnationWindow    int
	stagnationThreshold float64

	logger *slog.Logger
}

var _ Policy = (*Engine)(nil)

// Option configures an Engine.
type Option func(*cfg) error

type cfg struct {
	lex        *Lexicon
	rng        *rand.Rand
	thresholds Thresholds
	rotation   int
	logger     *slog.Logger
}

// WithLexicon replaces the built-in Korean lexicon.
func WithLexicon(lex *Lexicon) Option {
	return func(c *cfg) error {
		if lex != nil {
			c.lex = lex
		}
		return nil
	}
}

// WithRand sets the random source used by wide exploration. Fix the seed
// for reproducible runs.
func WithRand(rng *rand.Rand) Option {
	return func(c *cfg) error {
		if rng != nil {
			c.rng = rng
		}
		return nil
	}
}

// WithThresholds overrides the default regime thresholds.
func WithThresholds(t Thresholds) Option {
	return func(c *cfg) error {
		c.thresholds = t
		return nil
	}
}

// WithRotationThreshold overrides the stuck-mode rotation threshold.
func WithRotationThreshold(turns int) Option {
	return func(c *cfg) error {
		if turns > 0 {
			c.rotation = turns
		}
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *cfg) error {
		if logger != nil {
			c.logger = logger
		}
		return nil
	}
}

// NewEngine creates the four modes and wires their fallback chain:
// precision falls back to focused, focused to gradient, gradient to wide.
func NewEngine(opts ...Option) (*Engine, error) {
	c := &cfg{
		lex:        DefaultLexicon(),
		rng:        rand.New(rand.NewSource(rand.Int63())),
		thresholds: DefaultThresholds(),
		rotation:   DefaultRotationThreshold,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	wide := NewWideMode(c.lex, c.rng)
	gradient := NewGradientMode(c.lex, wide)
	focused := NewFocusedMode(c.lex, gradient)
	precision := NewPrecisionMode(c.lex, focused)

	modes := []Mode{wide, gradient, focused, precision}
	byName := make(map[string]Mode, len(modes))
	for _, m := range modes {
		byName[m.Name()] = m
	}

	return &Engine{
		modes:               modes,
		byName:              byName,
		thresholds:          c.thresholds,
		rotationThreshold:   c.rotation,
		stagnationWindow:    session.DefaultStagnationWindow,
		stagnationThreshold: session.DefaultStagnationThreshold,
		logger:              c.logger,
	}, nil
}

// Thresholds returns the current regime thresholds.
func (e *Engine) Thresholds() Thresholds {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.thresholds
}

// SetThresholds replaces the regime thresholds.
func (e *Engine) SetThresholds(t Thresholds) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.thresholds = t
}

// Modes returns the modes in rotation order.
func (e *Engine) Modes() []Mode {
	return e.modes
}

// ModeByName returns a mode by its rotation-order name.
func (e *Engine) ModeByName(name string) (Mode, bool) {
	m, ok := e.byName[name]
	return m, ok
}

// SelectMode runs the rule cascade for the current turn.
func (e *Engine) SelectMode(sess *session.Session) Mode {
	t := e.Thresholds()
	best := sess.BestSimilarity()
	stagnant := sess.IsStagnant(e.stagnationWindow, e.stagnationThreshold)

	// Initial exploration.
	if sess.Len() == 0 || best < t.T1 {
		return e.byName[ModeWide]
	}

	// Escape hatch: too long stuck in one mode forces the next mode in the
	// cycle regardless of similarity.
	if stagnant && sess.TurnsInCurrentMode() > e.rotationThreshold {
		next := e.successor(sess.CurrentMode())
		e.logger.Debug("mode rotation forced",
			"from", sess.CurrentMode(), "to", next.Name(), "best", best)
		return next
	}

	switch {
	case best < t.T2:
		return e.byName[ModeGradient]
	case best < t.T3:
		return e.midBandMode(sess)
	default:
		return e.byName[ModePrecision]
	}
}

// midBandMode inspects the improvement velocity over the recent window:
// fast improvement advances to focused, slow improvement regresses to wide,
// anything else (including too few guesses) stays on gradient.
func (e *Engine) midBandMode(sess *session.Session) Mode {
	recent := sess.RecentGuesses(velocityWindow)
	if len(recent) < velocityWindow {
		return e.byName[ModeGradient]
	}

	improvement := recent[len(recent)-1].Similarity - recent[0].Similarity
	switch {
	case improvement > fastImprovement:
		return e.byName[ModeFocused]
	case improvement < slowImprovement:
		return e.byName[ModeWide]
	default:
		return e.byName[ModeGradient]
	}
}

// successor returns the next mode in the fixed cycle after the named mode.
// An unknown or empty name maps to gradient.
func (e *Engine) successor(name string) Mode {
	for i, m := range e.modes {
		if m.Name() == name {
			return e.modes[(i+1)%len(e.modes)]
		}
	}
	return e.byName[ModeGradient]
}

// NextWord selects a mode, records it on the session, and returns the
// mode's proposal.
func (e *Engine) NextWord(sess *session.Session, v *vocab.Vocabulary, kb *knowledge.Engine) (string, bool) {
	mode := e.SelectMode(sess)
	sess.UpdateMode(mode.Name())

	word, ok := mode.SelectWord(sess, v, kb)
	if !ok {
		e.logger.Debug("mode produced no candidate", "mode", mode.Name())
	}
	return word, ok
}
