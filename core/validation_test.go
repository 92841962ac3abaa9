package core

import (
	"errors"
	"testing"
	"time"
)

func TestValidateGuess(t *testing.T) {
	tests := []struct {
		name    string
		guess   *Guess
		wantErr error
	}{
		{
			name:  "valid guess",
			guess: &Guess{Word: "사람", Similarity: 42.5, Rank: "100위", Attempt: 3},
		},
		{
			name:    "nil guess",
			guess:   nil,
			wantErr: ErrInvalidGuess,
		},
		{
			name:    "empty word",
			guess:   &Guess{Word: "", Similarity: 10},
			wantErr: ErrEmptyWord,
		},
		{
			name:    "whitespace word",
			guess:   &Guess{Word: "   ", Similarity: 10},
			wantErr: ErrEmptyWord,
		},
		{
			name:    "similarity above range",
			guess:   &Guess{Word: "사람", Similarity: 100.5},
			wantErr: ErrSimilarityOutOfRange,
		},
		{
			name:    "similarity below range",
			guess:   &Guess{Word: "사람", Similarity: -1},
			wantErr: ErrSimilarityOutOfRange,
		},
		{
			name:    "negative attempt",
			guess:   &Guess{Word: "사람", Similarity: 10, Attempt: -1},
			wantErr: ErrNegativeAttempt,
		},
		{
			name:  "boundary similarities are valid",
			guess: &Guess{Word: "사람", Similarity: 0},
		},
		{
			name:  "max similarity is valid",
			guess: &Guess{Word: "사람", Similarity: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGuess(tt.guess)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateGuess() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateGuess() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidGuess) {
				t.Errorf("ValidateGuess() error = %v, should wrap ErrInvalidGuess", err)
			}
		})
	}
}

func TestNewGuess(t *testing.T) {
	g, err := NewGuess("사람", 42.5, "", 0)
	if err != nil {
		t.Fatalf("NewGuess() unexpected error: %v", err)
	}
	if g.Word != "사람" || g.Similarity != 42.5 {
		t.Errorf("NewGuess() = %+v", g)
	}

	if _, err := NewGuess("", 42.5, "", 0); err == nil {
		t.Error("NewGuess() with empty word should fail")
	}
}

func TestValidateSuccessPattern(t *testing.T) {
	valid := &SuccessPattern{
		Answer:      "정답",
		Attempts:    12,
		KeyWords:    []string{"사람", "인간"},
		CompletedAt: time.Now().UTC(),
	}
	if err := ValidateSuccessPattern(valid); err != nil {
		t.Errorf("ValidateSuccessPattern() unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		pattern *SuccessPattern
		wantErr error
	}{
		{
			name:    "nil pattern",
			pattern: nil,
			wantErr: ErrInvalidPattern,
		},
		{
			name:    "empty answer",
			pattern: &SuccessPattern{Attempts: 1, KeyWords: []string{"가"}},
			wantErr: ErrEmptyAnswer,
		},
		{
			name:    "zero attempts",
			pattern: &SuccessPattern{Answer: "정답", KeyWords: []string{"가"}},
			wantErr: ErrInvalidAttempts,
		},
		{
			name:    "no key words",
			pattern: &SuccessPattern{Answer: "정답", Attempts: 1},
			wantErr: ErrNoKeyWords,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSuccessPattern(tt.pattern)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateSuccessPattern() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
