// Package strategy implements the four-mode adaptive search policy: a rule
// cascade selects a mode from session state each turn, and the selected mode
// proposes the next word from the vocabulary, the session, and the learned
// knowledge base.
package strategy

import (
	"math/rand"
	"sync"

	"github.com/poiesic/semantra/knowledge"
	"github.com/poiesic/semantra/session"
	"github.com/poiesic/semantra/vocab"
)

// Mode names, in fixed rotation order.
const (
	ModeWide      = "wide"
	ModeGradient  = "gradient"
	ModeFocused   = "focused"
	ModePrecision = "precision"
)

// Mode proposes the next word for a run. SelectWord returns false when the
// mode has no candidate; the policy falls back toward broader modes.
type Mode interface {
	// SelectWord proposes an untried word, or false if the mode cannot.
	SelectWord(sess *session.Session, v *vocab.Vocabulary, kb *knowledge.Engine) (string, bool)

	// Name returns the mode's rotation-order name.
	Name() string
}

// Policy is the capability surface shared by the base engine and any
// learning decorators wrapped around it.
type Policy interface {
	// NextWord selects a mode for the current turn, records it on the
	// session, and returns that mode's proposal.
	NextWord(sess *session.Session, v *vocab.Vocabulary, kb *knowledge.Engine) (string, bool)
}

// lockedRand serializes access to a rand.Rand so the modes can be shared
// across concurrent runs.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Intn(n)
}

// runes helpers; the lexicon is Korean so byte indexing is never safe.

func runePrefix(word string, n int) string {
	r := []rune(word)
	if len(r) < n {
		return word
	}
	return string(r[:n])
}

func runeLen(word string) int {
	return len([]rune(word))
}

// commonPrefixLen returns the shared leading rune count of two words.
func commonPrefixLen(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n := len(ra)
	if len(rb) < n {
		n = len(rb)
	}
	count := 0
	for i := 0; i < n; i++ {
		if ra[i] != rb[i] {
			break
		}
		count++
	}
	return count
}

// charOverlap returns the shared-rune ratio of two words, 0 when either is
// empty.
func charOverlap(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	set := make(map[rune]struct{}, len(ra))
	for _, r := range ra {
		set[r] = struct{}{}
	}
	common := 0
	seen := make(map[rune]struct{}, len(rb))
	for _, r := range rb {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		if _, ok := set[r]; ok {
			common++
		}
	}
	longer := len(ra)
	if len(rb) > longer {
		longer = len(rb)
	}
	return float64(common) / float64(longer)
}
