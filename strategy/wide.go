package strategy

import (
	"math"
	"math/rand"
	"sort"

	"github.com/poiesic/semantra/knowledge"
	"github.com/poiesic/semantra/session"
	"github.com/poiesic/semantra/vocab"
)

// Seed-scoring bonuses and the derivative-search anchor. derivativeAnchor is
// the similarity a barely-related guess tends to sit at; derivative search
// prefers roots whose originating guess scored near it.
const (
	highImpactBonus  = 50.0
	effectiveBonus   = 20.0
	derivativeAnchor = 10.0
)

// WideMode explores distinct semantic regions to establish anchor points
// early in a run.
type WideMode struct {
	lex *Lexicon
	rng *lockedRand
}

var _ Mode = (*WideMode)(nil)

// NewWideMode creates the wide exploration mode. The random source is
// serialized internally so parallel runs may share one mode set.
func NewWideMode(lex *Lexicon, rng *rand.Rand) *WideMode {
	return &WideMode{lex: lex, rng: &lockedRand{rng: rng}}
}

func (m *WideMode) Name() string { return ModeWide }

// SelectWord proposes a word from an unexplored semantic region. The first
// call samples probabilistically from the scored seed pool; later calls walk
// untouched category buckets, then derivatives, then a uniform random word.
func (m *WideMode) SelectWord(sess *session.Session, v *vocab.Vocabulary, kb *knowledge.Engine) (string, bool) {
	if sess.Len() == 0 {
		return m.selectInitialWord(sess, v, kb)
	}

	// Historically strong words first.
	learned := kb.LearnedCandidates(5, func(word string) bool {
		return v.Contains(word) && !sess.Tried(word)
	})
	if len(learned) > 0 {
		return learned[0], true
	}

	if word, ok := m.selectFromUntriedCategory(sess, v); ok {
		return word, true
	}

	if word, ok := m.exploreDerivatives(sess, v); ok {
		return word, true
	}

	return m.randomUntried(sess, v)
}

// selectInitialWord scores the seed pool by learned effectiveness plus
// curated bonuses and samples from the top three, weights proportional to
// score. Keeps the opener informed but not deterministic across runs.
func (m *WideMode) selectInitialWord(sess *session.Session, v *vocab.Vocabulary, kb *knowledge.Engine) (string, bool) {
	highImpact := make(map[string]struct{}, len(m.lex.HighImpactWords))
	for _, w := range m.lex.HighImpactWords {
		highImpact[w] = struct{}{}
	}
	effective := make(map[string]struct{}, len(m.lex.EffectiveWords))
	for _, w := range m.lex.EffectiveWords {
		effective[w] = struct{}{}
	}

	type scored struct {
		word  string
		score float64
	}
	var candidates []scored
	for _, word := range m.lex.SeedWords() {
		if !v.Contains(word) || sess.Tried(word) {
			continue
		}

		var score float64
		if f, ok := kb.Frequency(word); ok {
			score = f.AvgSimilarity * math.Log(float64(f.Count)+1) * 10
		} else {
			// Unseen words keep a little exploration value.
			score = 0.5
		}
		if _, ok := highImpact[word]; ok {
			score += highImpactBonus
		} else if _, ok := effective[word]; ok {
			score += effectiveBonus
		}
		candidates = append(candidates, scored{word: word, score: score})
	}

	if len(candidates) == 0 {
		return m.randomUntried(sess, v)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	top := candidates
	if len(top) > 3 {
		top = top[:3]
	}

	var total float64
	for _, c := range top {
		total += c.score
	}
	if total <= 0 {
		return top[0].word, true
	}

	r := m.rng.Float64() * total
	for _, c := range top {
		r -= c.score
		if r <= 0 {
			return c.word, true
		}
	}
	return top[len(top)-1].word, true
}

// selectFromUntriedCategory picks a random untouched category bucket that
// still has untried vocabulary words, then a random word inside it.
func (m *WideMode) selectFromUntriedCategory(sess *session.Session, v *vocab.Vocabulary) (string, bool) {
	tried := m.triedCategories(sess)

	available := make(map[string][]string)
	names := make([]string, 0, len(m.lex.Categories))
	for name, words := range m.lex.Categories {
		if _, ok := tried[name]; ok {
			continue
		}
		for _, word := range words {
			if v.Contains(word) && !sess.Tried(word) {
				available[name] = append(available[name], word)
			}
		}
		if len(available[name]) > 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", false
	}
	sort.Strings(names)

	words := available[names[m.rng.Intn(len(names))]]
	return words[m.rng.Intn(len(words))], true
}

// triedCategories maps each past guess back to the category buckets it
// belongs to.
func (m *WideMode) triedCategories(sess *session.Session) map[string]struct{} {
	tried := make(map[string]struct{})
	for _, g := range sess.Guesses() {
		for name, words := range m.lex.Categories {
			for _, word := range words {
				if word == g.Word {
					tried[name] = struct{}{}
					break
				}
			}
		}
	}
	return tried
}

// exploreDerivatives strips the last character of each guessed word and
// proposes vocabulary words sharing the remaining root, preferring roots
// whose guess scored near the derivative anchor.
func (m *WideMode) exploreDerivatives(sess *session.Session, v *vocab.Vocabulary) (string, bool) {
	type derivative struct {
		word         string
		expectedDiff float64
	}
	var derivatives []derivative

	for _, g := range sess.Guesses() {
		if runeLen(g.Word) <= 1 {
			continue
		}
		root := runePrefix(g.Word, runeLen(g.Word)-1)
		for _, candidate := range v.Words() {
			if candidate == g.Word || sess.Tried(candidate) {
				continue
			}
			if runeLen(candidate) > runeLen(g.Word)+2 {
				continue
			}
			if commonPrefixLen(candidate, g.Word) >= runeLen(root) && runeLen(root) > 0 {
				derivatives = append(derivatives, derivative{
					word:         candidate,
					expectedDiff: math.Abs(g.Similarity - derivativeAnchor),
				})
			}
		}
	}

	if len(derivatives) == 0 {
		return "", false
	}
	sort.SliceStable(derivatives, func(i, j int) bool {
		return derivatives[i].expectedDiff < derivatives[j].expectedDiff
	})
	return derivatives[0].word, true
}

func (m *WideMode) randomUntried(sess *session.Session, v *vocab.Vocabulary) (string, bool) {
	var available []string
	for _, word := range v.Words() {
		if !sess.Tried(word) {
			available = append(available, word)
		}
	}
	if len(available) == 0 {
		return "", false
	}
	return available[m.rng.Intn(len(available))], true
}
