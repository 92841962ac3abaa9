// Package oracle defines the scoring contract for a run: something that
// accepts a candidate word and returns its similarity to the hidden answer.
// The production implementation lives outside the core; the policy only
// depends on this interface.
package oracle

import "context"

// Result is one scored submission.
type Result struct {
	// Similarity is the oracle's score on the 0-100 scale.
	Similarity float64

	// Rank is an opaque display string, e.g. "42위". May be empty.
	Rank string

	// Found is true when the submitted word is the hidden answer.
	Found bool
}

// Oracle scores candidate words. Submit returns an error when the word
// could not be scored at all; callers mark such words as tried and move on
// rather than retrying the same word.
type Oracle interface {
	Submit(ctx context.Context, word string) (*Result, error)
}
