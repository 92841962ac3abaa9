package strategy

import (
	"github.com/poiesic/semantra/knowledge"
	"github.com/poiesic/semantra/session"
	"github.com/poiesic/semantra/vocab"
)

// ultraCloseDiff is the mean pair-difference below which a learned
// association counts as near-synonymous.
const ultraCloseDiff = 3.0

// PrecisionMode fine-tunes around the single best guess using morphological
// variants and learned near-synonyms. Used only in the high-similarity
// endgame.
type PrecisionMode struct {
	lex     *Lexicon
	focused *FocusedMode
}

var _ Mode = (*PrecisionMode)(nil)

// NewPrecisionMode creates the precision search mode. focused is the
// fallback when no variant exists.
func NewPrecisionMode(lex *Lexicon, focused *FocusedMode) *PrecisionMode {
	return &PrecisionMode{lex: lex, focused: focused}
}

func (m *PrecisionMode) Name() string { return ModePrecision }

func (m *PrecisionMode) SelectWord(sess *session.Session, v *vocab.Vocabulary, kb *knowledge.Engine) (string, bool) {
	best, ok := sess.BestGuess()
	if !ok {
		return "", false
	}

	var candidates []string

	variants := m.morphologicalVariants(best.Word, sess, v)
	if len(variants) > 3 {
		variants = variants[:3]
	}
	candidates = append(candidates, variants...)

	ultraClose := m.ultraCloseWords(best.Word, sess, v, kb)
	if len(ultraClose) > 2 {
		ultraClose = ultraClose[:2]
	}
	candidates = append(candidates, ultraClose...)

	if len(candidates) > 0 {
		return candidates[0], true
	}

	return m.focused.SelectWord(sess, v, kb)
}

// morphologicalVariants strips the word's last character and appends each
// common suffix, keeping variants present in the vocabulary.
func (m *PrecisionMode) morphologicalVariants(word string, sess *session.Session, v *vocab.Vocabulary) []string {
	if runeLen(word) <= 2 {
		return nil
	}
	root := runePrefix(word, runeLen(word)-1)

	var variants []string
	for _, suffix := range m.lex.Suffixes {
		variant := root + suffix
		if variant != word && v.Contains(variant) && !sess.Tried(variant) {
			variants = append(variants, variant)
		}
	}
	return variants
}

// ultraCloseWords queries the knowledge base for untried words with a
// near-synonymous learned relationship to the word.
func (m *PrecisionMode) ultraCloseWords(word string, sess *session.Session, v *vocab.Vocabulary, kb *knowledge.Engine) []string {
	related := kb.RelatedWords(word, ultraCloseDiff)
	var out []string
	for _, rel := range related {
		if v.Contains(rel.Word) && !sess.Tried(rel.Word) {
			out = append(out, rel.Word)
		}
	}
	return out
}
