package strategy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/semantra/session"
	"github.com/poiesic/semantra/vocab"
)

func testModes(t *testing.T, seed int64) (*WideMode, *GradientMode, *FocusedMode, *PrecisionMode) {
	t.Helper()
	lex := DefaultLexicon()
	wide := NewWideMode(lex, rand.New(rand.NewSource(seed)))
	gradient := NewGradientMode(lex, wide)
	focused := NewFocusedMode(lex, gradient)
	precision := NewPrecisionMode(lex, focused)
	return wide, gradient, focused, precision
}

func mustVocab(t *testing.T, words ...string) *vocab.Vocabulary {
	t.Helper()
	v, err := vocab.New(words)
	require.NoError(t, err)
	return v
}

func TestWideFirstCallPrefersHighImpactSeeds(t *testing.T) {
	wide, _, _, _ := testModes(t, 3)
	kb := newTestKnowledge(t)
	// One high-impact seed and one plain word: the seed always wins the
	// probabilistic top-3 sampling because the plain word never qualifies.
	v := mustVocab(t, "사랑", "엉뚱한말")

	word, ok := wide.SelectWord(session.New(), v, kb)
	require.True(t, ok)
	assert.Equal(t, "사랑", word)
}

func TestWidePicksFromUntouchedCategory(t *testing.T) {
	wide, _, _, _ := testModes(t, 3)
	kb := newTestKnowledge(t)
	v := mustVocab(t, "생각", "마음", "사물", "관계")

	sess := session.New()
	// Touch the 추상개념 bucket.
	addGuess(t, sess, "생각", 12)

	word, ok := wide.SelectWord(sess, v, kb)
	require.True(t, ok)
	assert.Contains(t, []string{"사물", "관계"}, word,
		"second pick must come from an untouched bucket")
}

func TestWideLearnedCandidateWinsOverCategories(t *testing.T) {
	wide, _, _, _ := testModes(t, 3)
	kb := newTestKnowledge(t)
	kb.LearnFrequency("지혜", 45)
	kb.LearnFrequency("지혜", 55)
	v := mustVocab(t, "지혜", "사물", "관계")

	sess := session.New()
	addGuess(t, sess, "생각", 12)

	word, ok := wide.SelectWord(sess, v, kb)
	require.True(t, ok)
	assert.Equal(t, "지혜", word)
}

func TestGradientExpandsTopGuesses(t *testing.T) {
	_, gradient, _, _ := testModes(t, 3)
	kb := newTestKnowledge(t)
	v := mustVocab(t, "사람", "인간", "개인", "엉뚱한말")

	sess := session.New()
	addGuess(t, sess, "사람", 35)

	word, ok := gradient.SelectWord(sess, v, kb)
	require.True(t, ok)
	assert.Contains(t, []string{"인간", "개인"}, word,
		"gradient must expand within the anchor's group")
}

func TestGradientPrefersLearnedCloseness(t *testing.T) {
	_, gradient, _, _ := testModes(t, 3)
	kb := newTestKnowledge(t)
	// 개인 is learned to sit very close to 사람.
	kb.LearnPair("사람", "개인", 2)
	kb.LearnPair("사람", "인간", 60)
	v := mustVocab(t, "사람", "인간", "개인")

	sess := session.New()
	addGuess(t, sess, "사람", 35)

	word, ok := gradient.SelectWord(sess, v, kb)
	require.True(t, ok)
	assert.Equal(t, "개인", word)
}

func TestGradientFallsBackToWide(t *testing.T) {
	_, gradient, _, _ := testModes(t, 3)
	kb := newTestKnowledge(t)
	// Nothing expandable: the guess matches no group and no shared root.
	v := mustVocab(t, "엉뚱한말", "다른말")

	sess := session.New()
	addGuess(t, sess, "엉뚱한말", 20)

	word, ok := gradient.SelectWord(sess, v, kb)
	require.True(t, ok)
	assert.Equal(t, "다른말", word)
}

func TestFocusedFindsCommonSemanticField(t *testing.T) {
	_, _, focused, _ := testModes(t, 3)
	kb := newTestKnowledge(t)
	v := mustVocab(t, "감정", "마음", "기분", "느낌")

	sess := session.New()
	addGuess(t, sess, "감정", 55)
	addGuess(t, sess, "마음", 48)

	word, ok := focused.SelectWord(sess, v, kb)
	require.True(t, ok)
	assert.Contains(t, []string{"기분", "느낌"}, word,
		"focused must stay inside the shared 감정심리 field")
	assert.NotEqual(t, "감정", word)
	assert.NotEqual(t, "마음", word)
}

func TestPrecisionGeneratesMorphologicalVariants(t *testing.T) {
	_, _, _, precision := testModes(t, 3)
	kb := newTestKnowledge(t)
	v := mustVocab(t, "사회자", "사회적", "사회의")

	sess := session.New()
	addGuess(t, sess, "사회자", 82)

	word, ok := precision.SelectWord(sess, v, kb)
	require.True(t, ok)
	assert.Contains(t, []string{"사회적", "사회의"}, word)
}

func TestPrecisionUsesUltraCloseWords(t *testing.T) {
	_, _, _, precision := testModes(t, 3)
	kb := newTestKnowledge(t)
	kb.LearnPair("정답", "오답", 1.5)
	kb.LearnPair("정답", "먼말", 40)
	// 정답 is short enough that no morphological variant exists.
	v := mustVocab(t, "정답", "오답", "먼말")

	sess := session.New()
	addGuess(t, sess, "정답", 90)

	word, ok := precision.SelectWord(sess, v, kb)
	require.True(t, ok)
	assert.Equal(t, "오답", word)
}

func TestDiversityOverlapBounds(t *testing.T) {
	assert.InDelta(t, 1.0, charOverlap("가나다", "가나다"), 1e-9)
	assert.InDelta(t, 0.0, charOverlap("가나다", "라마바"), 1e-9)
	assert.InDelta(t, 1.0/3.0, charOverlap("가나다", "가마바"), 1e-9)
}
