// Package knowledge implements the cross-session learning engine: pairwise
// similarity-difference statistics, per-word usage statistics, and a
// bounded log of successful game patterns. The engine is the sole writer of
// this data; the search policy only reads it.
package knowledge

import (
	"log/slog"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/poiesic/semantra/core"
	"github.com/poiesic/semantra/session"
)

// Learned-seed thresholds: a word qualifies as a learned candidate once its
// running average reaches seedMinAvg over at least seedMinCount uses.
const (
	seedMinAvg   = 30.0
	seedMinCount = 2
)

// DefaultMaxDiff is the usual cutoff for related-word queries: pairs whose
// mean similarity difference exceeds it are too loosely associated to act on.
const DefaultMaxDiff = 10.0

// RelatedWord is a learned association to a target word. Smaller MeanDiff
// means a stronger association.
type RelatedWord struct {
	Word     string
	MeanDiff float64
}

// Stats is an aggregate report over the knowledge base.
type Stats struct {
	TotalGames         int
	TotalWordPairs     int
	TotalUniqueWords   int
	SuccessfulPatterns int
	ModeEffectiveness  map[string]float64 // mode name -> avg attempts in solved runs
	MostEffectiveWords []string
	LastUpdated        time.Time
}

// Engine owns the persistent learning data. All mutating operations are
// serialized internally so parallel runs may share one engine.
type Engine struct {
	mu          sync.RWMutex
	gamesPlayed int
	pairs       map[string]*core.WordPairStats
	freqs       map[string]*core.WordFrequency
	patterns    []core.SuccessPattern
	modeUsage   map[string]*core.ModeUsage
	lastUpdated time.Time
	logger      *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithSnapshot seeds the engine from a previously persisted snapshot.
func WithSnapshot(snap *core.KnowledgeSnapshot) Option {
	return func(e *Engine) error {
		if snap == nil {
			return nil
		}
		e.restore(snap)
		return nil
	}
}

// NewEngine creates a knowledge engine, empty unless seeded via WithSnapshot.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		pairs:     make(map[string]*core.WordPairStats),
		freqs:     make(map[string]*core.WordFrequency),
		modeUsage: make(map[string]*core.ModeUsage),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (e *Engine) restore(snap *core.KnowledgeSnapshot) {
	e.gamesPlayed = snap.GamesPlayed
	e.lastUpdated = snap.LastUpdated
	for i := range snap.Pairs {
		p := snap.Pairs[i]
		e.pairs[p.Key()] = &p
	}
	for i := range snap.Frequencies {
		f := snap.Frequencies[i]
		e.freqs[f.Word] = &f
	}
	e.patterns = append(e.patterns, snap.Patterns...)
	for i := range snap.ModeUsages {
		m := snap.ModeUsages[i]
		e.modeUsage[m.Mode] = &m
	}
}

// LearnGuess folds a new guess into the knowledge base: a pair diff against
// every prior guess of the run, plus the word's own frequency statistics.
func (e *Engine) LearnGuess(newGuess core.Guess, prior []core.Guess) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, existing := range prior {
		if existing.Word == newGuess.Word {
			continue
		}
		diff := math.Abs(newGuess.Similarity - existing.Similarity)
		e.learnPairLocked(newGuess.Word, existing.Word, diff)
	}
	e.learnFrequencyLocked(newGuess.Word, newGuess.Similarity)
	e.lastUpdated = time.Now().UTC()
}

// LearnPair records one observed similarity difference for a word pair.
func (e *Engine) LearnPair(wordA, wordB string, diff float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.learnPairLocked(wordA, wordB, diff)
	e.lastUpdated = time.Now().UTC()
}

func (e *Engine) learnPairLocked(wordA, wordB string, diff float64) {
	key := core.PairKey(wordA, wordB)
	p, ok := e.pairs[key]
	if !ok {
		p = core.NewWordPairStats(wordA, wordB)
		e.pairs[key] = p
	}
	p.AddDiff(diff)
}

// LearnFrequency records one similarity observation for a word.
func (e *Engine) LearnFrequency(word string, similarity float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.learnFrequencyLocked(word, similarity)
	e.lastUpdated = time.Now().UTC()
}

func (e *Engine) learnFrequencyLocked(word string, similarity float64) {
	f, ok := e.freqs[word]
	if !ok {
		f = &core.WordFrequency{Word: word}
		e.freqs[word] = f
	}
	f.Update(similarity)
}

// RelatedWords returns every word paired with target whose mean observed
// diff is below maxDiff, closest first.
func (e *Engine) RelatedWords(target string, maxDiff float64) []RelatedWord {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var related []RelatedWord
	for _, p := range e.pairs {
		other := p.Other(target)
		if other == "" || len(p.Diffs) == 0 {
			continue
		}
		if mean := p.MeanDiff(); mean < maxDiff {
			related = append(related, RelatedWord{Word: other, MeanDiff: mean})
		}
	}
	sort.Slice(related, func(i, j int) bool {
		return related[i].MeanDiff < related[j].MeanDiff
	})
	return related
}

// PairMeanDiff returns the learned mean diff for a pair, false if the pair
// has never co-occurred.
func (e *Engine) PairMeanDiff(wordA, wordB string) (float64, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	p, ok := e.pairs[core.PairKey(wordA, wordB)]
	if !ok || len(p.Diffs) == 0 {
		return 0, false
	}
	return p.MeanDiff(), true
}

// Frequency returns a copy of the frequency record for a word.
func (e *Engine) Frequency(word string) (core.WordFrequency, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	f, ok := e.freqs[word]
	if !ok {
		return core.WordFrequency{}, false
	}
	return *f, true
}

// EffectivenessScore returns the composite ranking score for a word, 0 for
// words never seen.
func (e *Engine) EffectivenessScore(word string) float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()

	f, ok := e.freqs[word]
	if !ok {
		return 0
	}
	return f.EffectivenessScore()
}

// LearnedCandidates returns up to limit words that have performed well
// historically (avg >= 30 over >= 2 uses), best first, filtered by accept.
func (e *Engine) LearnedCandidates(limit int, accept func(word string) bool) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	type scored struct {
		word  string
		score float64
	}
	var candidates []scored
	for word, f := range e.freqs {
		if accept != nil && !accept(word) {
			continue
		}
		if f.AvgSimilarity >= seedMinAvg && f.Count >= seedMinCount {
			candidates = append(candidates, scored{
				word:  word,
				score: f.AvgSimilarity * math.Log(float64(f.Count)+1),
			})
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].word < candidates[j].word
	})
	if limit > len(candidates) {
		limit = len(candidates)
	}
	out := make([]string, limit)
	for i := 0; i < limit; i++ {
		out[i] = candidates[i].word
	}
	return out
}

// RecordOutcome closes out a run: on success it derives and appends a
// bounded success pattern, and in all cases updates per-mode usage
// statistics and the games-played counter.
func (e *Engine) RecordOutcome(sess *session.Session, success bool, answer string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if success && answer != "" {
		top := sess.TopGuesses(5)
		pattern := core.SuccessPattern{
			Answer:          answer,
			Attempts:        sess.Len(),
			KeyWords:        make([]string, len(top)),
			KeySimilarities: make([]float64, len(top)),
			ModeSequence:    sess.ModeSequence(),
			CompletedAt:     time.Now().UTC(),
			DurationSeconds: sess.Duration().Seconds(),
		}
		for i, g := range top {
			pattern.KeyWords[i] = g.Word
			pattern.KeySimilarities[i] = g.Similarity
		}

		if err := core.ValidateSuccessPattern(&pattern); err != nil {
			e.logger.Warn("discarding malformed success pattern", "err", err)
		} else {
			e.patterns = append(e.patterns, pattern)
			if len(e.patterns) > core.PatternCap {
				trimmed := make([]core.SuccessPattern, core.PatternKeep)
				copy(trimmed, e.patterns[len(e.patterns)-core.PatternKeep:])
				e.patterns = trimmed
			}
		}
	}

	for _, mode := range sess.ModeSequence() {
		usage, ok := e.modeUsage[mode]
		if !ok {
			usage = &core.ModeUsage{Mode: mode}
			e.modeUsage[mode] = usage
		}
		usage.UsageCount++
		usage.TotalAttempts += sess.Len()
	}

	e.gamesPlayed++
	e.lastUpdated = time.Now().UTC()
}

// GamesPlayed returns the cross-session run counter.
func (e *Engine) GamesPlayed() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.gamesPlayed
}

// SuccessfulWordsInRange returns words from recorded success patterns whose
// final similarity fell inside [minSim, maxSim], most frequent first.
func (e *Engine) SuccessfulWordsInRange(minSim, maxSim float64) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	counts := make(map[string]int)
	for _, pattern := range e.patterns {
		for i, word := range pattern.KeyWords {
			if i >= len(pattern.KeySimilarities) {
				break
			}
			if sim := pattern.KeySimilarities[i]; sim >= minSim && sim <= maxSim {
				counts[word]++
			}
		}
	}

	words := make([]string, 0, len(counts))
	for word := range counts {
		words = append(words, word)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})
	return words
}

// ModeEffectiveness reports the average attempts of solved runs per mode,
// derived from the pattern log.
func (e *Engine) ModeEffectiveness() map[string]float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()

	totals := make(map[string]int)
	counts := make(map[string]int)
	for _, pattern := range e.patterns {
		for _, mode := range pattern.ModeSequence {
			totals[mode] += pattern.Attempts
			counts[mode]++
		}
	}

	out := make(map[string]float64, len(totals))
	for mode, total := range totals {
		out[mode] = float64(total) / float64(counts[mode])
	}
	return out
}

// TopEffectiveWords returns the k highest-scoring words by effectiveness.
func (e *Engine) TopEffectiveWords(k int) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	words := make([]string, 0, len(e.freqs))
	for word := range e.freqs {
		words = append(words, word)
	}
	sort.Slice(words, func(i, j int) bool {
		si, sj := e.freqs[words[i]].EffectivenessScore(), e.freqs[words[j]].EffectivenessScore()
		if si != sj {
			return si > sj
		}
		return words[i] < words[j]
	})
	if k > len(words) {
		k = len(words)
	}
	return words[:k]
}

// Stats summarizes the current knowledge base.
func (e *Engine) Stats() Stats {
	stats := Stats{
		ModeEffectiveness:  e.ModeEffectiveness(),
		MostEffectiveWords: e.TopEffectiveWords(5),
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	stats.TotalGames = e.gamesPlayed
	stats.TotalWordPairs = len(e.pairs)
	stats.TotalUniqueWords = len(e.freqs)
	stats.SuccessfulPatterns = len(e.patterns)
	stats.LastUpdated = e.lastUpdated
	return stats
}

// Snapshot produces the persistable form of the knowledge base.
func (e *Engine) Snapshot() *core.KnowledgeSnapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	snap := &core.KnowledgeSnapshot{
		GamesPlayed: e.gamesPlayed,
		Pairs:       make([]core.WordPairStats, 0, len(e.pairs)),
		Frequencies: make([]core.WordFrequency, 0, len(e.freqs)),
		Patterns:    make([]core.SuccessPattern, len(e.patterns)),
		ModeUsages:  make([]core.ModeUsage, 0, len(e.modeUsage)),
		LastUpdated: e.lastUpdated,
	}
	for _, p := range e.pairs {
		snap.Pairs = append(snap.Pairs, *p)
	}
	for _, f := range e.freqs {
		snap.Frequencies = append(snap.Frequencies, *f)
	}
	copy(snap.Patterns, e.patterns)
	for _, m := range e.modeUsage {
		snap.ModeUsages = append(snap.ModeUsages, *m)
	}
	return snap
}
