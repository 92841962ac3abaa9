package adaptive

import (
	"sync"

	"github.com/poiesic/semantra/strategy"
)

// Tuner parameters. Thresholds move by adjustStep per adjustment, clamped
// to [thresholdFloor, thresholdCeil] on the 0-100 similarity scale.
const (
	DefaultWindowSize   = 50
	DefaultAdjustPeriod = 10
	DefaultTargetRate   = 0.70

	adjustStep       = 2.0
	thresholdFloor   = 5.0
	thresholdCeil    = 80.0
	recentSample     = 20
	lowAttemptsLevel = 20.0
)

type outcome struct {
	success  bool
	attempts int
}

// ThresholdTuner retunes the rule cascade's regime thresholds from a
// bounded rolling window of run outcomes: a low success rate lowers all
// thresholds so runs escalate to advanced modes sooner; long runs without a
// success-rate problem raise them.
type ThresholdTuner struct {
	mu sync.Mutex

	window       []outcome
	windowSize   int
	adjustPeriod int
	targetRate   float64
	sinceAdjust  int
}

// NewThresholdTuner creates a tuner with the default window and target.
func NewThresholdTuner() *ThresholdTuner {
	return &ThresholdTuner{
		windowSize:   DefaultWindowSize,
		adjustPeriod: DefaultAdjustPeriod,
		targetRate:   DefaultTargetRate,
	}
}

// Record adds one run outcome and, every adjustPeriod outcomes, retunes the
// engine's thresholds in place.
func (t *ThresholdTuner) Record(engine *strategy.Engine, success bool, attempts int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.window = append(t.window, outcome{success: success, attempts: attempts})
	if len(t.window) > t.windowSize {
		t.window = t.window[len(t.window)-t.windowSize:]
	}

	t.sinceAdjust++
	if len(t.window) < t.adjustPeriod || t.sinceAdjust < t.adjustPeriod {
		return
	}
	t.sinceAdjust = 0
	t.adjust(engine)
}

func (t *ThresholdTuner) adjust(engine *strategy.Engine) {
	recent := t.window
	if len(recent) > recentSample {
		recent = recent[len(recent)-recentSample:]
	}

	successes := 0
	totalAttempts := 0
	for _, o := range recent {
		if o.success {
			successes++
		}
		totalAttempts += o.attempts
	}
	successRate := float64(successes) / float64(len(recent))
	avgAttempts := float64(totalAttempts) / float64(len(recent))

	switch {
	case successRate < t.targetRate:
		t.shift(engine, -adjustStep)
	case avgAttempts < lowAttemptsLevel:
		// Current thresholds are working; leave them alone.
	default:
		t.shift(engine, adjustStep)
	}
}

func (t *ThresholdTuner) shift(engine *strategy.Engine, delta float64) {
	th := engine.Thresholds()
	th.T1 = clamp(th.T1 + delta)
	th.T2 = clamp(th.T2 + delta)
	th.T3 = clamp(th.T3 + delta)
	engine.SetThresholds(th)
}

func clamp(v float64) float64 {
	if v < thresholdFloor {
		return thresholdFloor
	}
	if v > thresholdCeil {
		return thresholdCeil
	}
	return v
}

// TunerStats summarizes the rolling window.
type TunerStats struct {
	Recorded    int
	SuccessRate float64
	AvgAttempts float64
}

// Stats reports over the whole retained window.
func (t *ThresholdTuner) Stats() TunerStats {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.window) == 0 {
		return TunerStats{}
	}

	successes := 0
	totalAttempts := 0
	for _, o := range t.window {
		if o.success {
			successes++
		}
		totalAttempts += o.attempts
	}
	return TunerStats{
		Recorded:    len(t.window),
		SuccessRate: float64(successes) / float64(len(t.window)),
		AvgAttempts: float64(totalAttempts) / float64(len(t.window)),
	}
}
