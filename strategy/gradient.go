package strategy

import (
	"math"
	"sort"

	"github.com/poiesic/semantra/knowledge"
	"github.com/poiesic/semantra/session"
	"github.com/poiesic/semantra/vocab"
)

// Candidate caps per generation source.
const (
	maxExpansions  = 10
	maxAssociation = 8
	maxContextual  = 6
)

// GradientMode follows the semantic gradient from the highest-similarity
// anchors, generating candidates in several directions at once and scoring
// them against the learned data.
type GradientMode struct {
	lex  *Lexicon
	wide *WideMode
}

var _ Mode = (*GradientMode)(nil)

// NewGradientMode creates the gradient search mode. wide is the fallback
// when no candidate can be generated.
func NewGradientMode(lex *Lexicon, wide *WideMode) *GradientMode {
	return &GradientMode{lex: lex, wide: wide}
}

func (m *GradientMode) Name() string { return ModeGradient }

// SelectWord expands the top three guesses through root matching and the
// curated groups, scores the union, and returns the best candidate.
func (m *GradientMode) SelectWord(sess *session.Session, v *vocab.Vocabulary, kb *knowledge.Engine) (string, bool) {
	var all []string
	for _, g := range sess.TopGuesses(3) {
		all = append(all, m.semanticExpansions(g.Word, sess, v)...)
		all = append(all, m.semanticAssociations(g.Word, sess, v)...)
		all = append(all, m.contextualRelations(g.Word, sess, v)...)
	}

	candidates := dedupe(all)
	if len(candidates) == 0 {
		return m.wide.SelectWord(sess, v, kb)
	}

	scored := m.scoreCandidates(candidates, sess, kb)
	return scored[0], true
}

// semanticExpansions generates candidates sharing a 2-character root with
// the word, plus members of the word's expansion group.
func (m *GradientMode) semanticExpansions(word string, sess *session.Session, v *vocab.Vocabulary) []string {
	var expansions []string

	if runeLen(word) > 2 {
		root := runePrefix(word, 2)
		for _, candidate := range v.Words() {
			if candidate != word && !sess.Tried(candidate) && commonPrefixLen(candidate, root) >= 2 {
				expansions = append(expansions, candidate)
			}
		}
	}

	for key, group := range m.lex.Expansions {
		if word != key && !containsWord(group, word) {
			continue
		}
		for _, exp := range group {
			if exp != word && v.Contains(exp) && !sess.Tried(exp) {
				expansions = append(expansions, exp)
			}
		}
	}

	if len(expansions) > maxExpansions {
		expansions = expansions[:maxExpansions]
	}
	return expansions
}

// semanticAssociations returns untried members of any association group
// containing the word.
func (m *GradientMode) semanticAssociations(word string, sess *session.Session, v *vocab.Vocabulary) []string {
	var associations []string
	for key, group := range m.lex.Associations {
		if word != key && !containsWord(group, word) {
			continue
		}
		for _, assoc := range group {
			if assoc != word && v.Contains(assoc) && !sess.Tried(assoc) {
				associations = append(associations, assoc)
			}
		}
	}
	if len(associations) > maxAssociation {
		associations = associations[:maxAssociation]
	}
	return associations
}

// contextualRelations returns untried members of any contextual group
// containing the word.
func (m *GradientMode) contextualRelations(word string, sess *session.Session, v *vocab.Vocabulary) []string {
	var relations []string
	for key, group := range m.lex.ContextualMaps {
		if word != key && !containsWord(group, word) {
			continue
		}
		for _, rel := range group {
			if rel != word && v.Contains(rel) && !sess.Tried(rel) {
				relations = append(relations, rel)
			}
		}
	}
	if len(relations) > maxContextual {
		relations = relations[:maxContextual]
	}
	return relations
}

// scoreCandidates ranks candidates by learned effectiveness, pair-closeness
// to the anchors, shared roots with recent guesses, and a diversity shaping
// term that rewards candidates neither too close nor too far from the last
// few words. Returns candidates best first.
func (m *GradientMode) scoreCandidates(candidates []string, sess *session.Session, kb *knowledge.Engine) []string {
	top := sess.TopGuesses(3)
	recent5 := sess.RecentGuesses(5)
	recent3 := sess.RecentGuesses(3)

	scores := make(map[string]float64, len(candidates))
	for _, word := range candidates {
		var score float64

		if f, ok := kb.Frequency(word); ok {
			score += f.AvgSimilarity * math.Log(float64(f.Count)+1) * 5
		}

		for _, g := range top {
			if diff, ok := kb.PairMeanDiff(g.Word, word); ok {
				score += (1 - diff/100) * g.Similarity * 3
			}
		}

		for _, g := range recent5 {
			if runeLen(word) > 2 && runeLen(g.Word) > 2 {
				if prefix := commonPrefixLen(word, g.Word); prefix >= 2 {
					score += g.Similarity * float64(prefix)
				}
			}
		}

		if len(recent3) > 0 {
			var overlap float64
			for _, g := range recent3 {
				if runeLen(word) > 2 && runeLen(g.Word) > 2 {
					overlap += charOverlap(word, g.Word)
				}
			}
			overlap /= float64(len(recent3))
			if overlap > 0.2 && overlap < 0.7 {
				score++
			}
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
	return sorted
}

func dedupe(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	var out []string
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

func containsWord(words []string, target string) bool {
	for _, w := range words {
		if w == target {
			return true
		}
	}
	return false
}
