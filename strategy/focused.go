package strategy

import (
	"sort"

	"github.com/poiesic/semantra/knowledge"
	"github.com/poiesic/semantra/session"
	"github.com/poiesic/semantra/vocab"
)

// FocusedMode concentrates the search around the high-similarity region,
// first via a semantic field shared by the top guesses, then via two-layer
// association expansion from the single best guess.
type FocusedMode struct {
	lex      *Lexicon
	gradient *GradientMode
}

var _ Mode = (*FocusedMode)(nil)

// NewFocusedMode creates the focused search mode. gradient is both the
// association source and the fallback.
func NewFocusedMode(lex *Lexicon, gradient *GradientMode) *FocusedMode {
	return &FocusedMode{lex: lex, gradient: gradient}
}

func (m *FocusedMode) Name() string { return ModeFocused }

func (m *FocusedMode) SelectWord(sess *session.Session, v *vocab.Vocabulary, kb *knowledge.Engine) (string, bool) {
	top := sess.TopGuesses(2)
	topWords := make([]string, len(top))
	for i, g := range top {
		topWords[i] = g.Word
	}

	if field := m.commonSemanticField(topWords); len(field) > 0 {
		for _, word := range field {
			if v.Contains(word) && !sess.Tried(word) {
				return word, true
			}
		}
	}

	if best, ok := sess.BestGuess(); ok {
		layer1 := m.gradient.semanticAssociations(best.Word, sess, v)

		var layer2 []string
		limit := len(layer1)
		if limit > 3 {
			limit = 3
		}
		for _, word := range layer1[:limit] {
			layer2 = append(layer2, m.gradient.semanticAssociations(word, sess, v)...)
		}

		candidates := dedupe(append(layer1, layer2...))
		if len(candidates) > 0 {
			return m.bestFocusedCandidate(candidates, best.Word, best.Similarity, sess, kb), true
		}
	}

	return m.gradient.SelectWord(sess, v, kb)
}

// commonSemanticField finds a single curated field that contains (or shares
// a 2-character root with) every input word, and returns its remaining
// members.
func (m *FocusedMode) commonSemanticField(words []string) []string {
	if len(words) < 2 {
		return nil
	}

	names := make([]string, 0, len(m.lex.SemanticFields))
	for name := range m.lex.SemanticFields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fieldWords := m.lex.SemanticFields[name]
		allMatch := true
		for _, word := range words {
			matched := false
			for _, fw := range fieldWords {
				if word == fw || (runeLen(word) >= 2 && commonPrefixLen(word, runePrefix(fw, 2)) >= 2) {
					matched = true
					break
				}
			}
			if !matched {
				allMatch = false
				break
			}
		}
		if allMatch {
			var rest []string
			for _, fw := range fieldWords {
				if !containsWord(words, fw) {
					rest = append(rest, fw)
				}
			}
			return rest
		}
	}
	return nil
}

// bestFocusedCandidate scores candidates by learned closeness to the best
// guess, the recent similarity gradient, and character-overlap proximity.
func (m *FocusedMode) bestFocusedCandidate(candidates []string, bestWord string, bestSim float64, sess *session.Session, kb *knowledge.Engine) string {
	recent := sess.RecentGuesses(5)

	var gradient float64
	if len(recent) >= 2 {
		gradient = (recent[len(recent)-1].Similarity - recent[0].Similarity) / float64(len(recent))
	}

	scores := make(map[string]float64, len(candidates))
	for _, word := range candidates {
		var score float64

		if diff, ok := kb.PairMeanDiff(bestWord, word); ok && diff < 5 {
			score += 10 * (1 - diff/100)
		}

		if gradient > 0 {
			score += gradient * 5
		}

		if runeLen(word) > 2 && runeLen(bestWord) > 2 {
			score += charOverlap(word, bestWord) * bestSim * 3
		}

		scores[word] = score
	}

	sorted := make([]string, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		if scores[sorted[i]] != scores[sorted[j]] {
			return scores[sorted[i]] > scores[sorted[j]]
		}
		return sorted[i] < sorted[j]
	})
	return sorted[0]
}
