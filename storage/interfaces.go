package storage

import (
	"context"

	"github.com/poiesic/semantra/core"
)

// Repository provides common storage operations shared across repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// KnowledgeRepository persists the learning engine's data: pair statistics,
// word frequencies, success patterns, mode usage, and the meta counters.
type KnowledgeRepository interface {
	Repository

	// SaveSnapshot writes the full knowledge base, replacing stored
	// patterns and mode usage and upserting pair and frequency records.
	SaveSnapshot(ctx context.Context, snap *core.KnowledgeSnapshot) error

	// LoadSnapshot reads the full knowledge base. An empty database
	// yields an empty snapshot, not an error.
	LoadSnapshot(ctx context.Context) (*core.KnowledgeSnapshot, error)

	// SavePairStats upserts individual pair records.
	SavePairStats(ctx context.Context, pairs ...*core.WordPairStats) error

	// GetPairStats retrieves one pair record by its words, in either
	// order. Returns ErrNotFound if the pair has never been stored.
	GetPairStats(ctx context.Context, wordA, wordB string) (*core.WordPairStats, error)

	// SaveFrequencies upserts individual word frequency records.
	SaveFrequencies(ctx context.Context, freqs ...*core.WordFrequency) error

	// GetFrequency retrieves one frequency record by word.
	// Returns ErrNotFound if the word has never been stored.
	GetFrequency(ctx context.Context, word string) (*core.WordFrequency, error)
}
