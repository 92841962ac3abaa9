package simulate

import "errors"

var (
	// ErrSolverRequired is returned when a solver is not provided.
	ErrSolverRequired = errors.New("solver required")

	// ErrNoAnswers is returned when a batch has no answer words.
	ErrNoAnswers = errors.New("no answer words provided")
)
