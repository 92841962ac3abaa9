package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/semantra/core"
	"github.com/poiesic/semantra/storage"
)

// KnowledgeRepository implements storage.KnowledgeRepository for BadgerDB.
type KnowledgeRepository struct {
	backend *Backend
}

var _ storage.KnowledgeRepository = (*KnowledgeRepository)(nil)

// NewKnowledgeRepository creates a new KnowledgeRepository.
func NewKnowledgeRepository(backend *Backend) (*KnowledgeRepository, error) {
	return &KnowledgeRepository{
		backend: backend,
	}, nil
}

// Close releases resources. KnowledgeRepository has no resources to release.
func (r *KnowledgeRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *KnowledgeRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// SavePairStats upserts individual pair records.
func (r *KnowledgeRepository) SavePairStats(ctx context.Context, pairs ...*core.WordPairStats) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, pair := range pairs {
			key := makePairKey(pair.WordA, pair.WordB)
			if err := tx.Set(key, storage.MarshalPairStats(pair)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetPairStats retrieves one pair record by its words, in either order.
func (r *KnowledgeRepository) GetPairStats(ctx context.Context, wordA, wordB string) (*core.WordPairStats, error) {
	var pair *core.WordPairStats
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makePairKey(wordA, wordB))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			pair, err = storage.UnmarshalPairStats(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// SaveFrequencies upserts individual word frequency records.
func (r *KnowledgeRepository) SaveFrequencies(ctx context.Context, freqs ...*core.WordFrequency) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, freq := range freqs {
			key := makeFreqKey(freq.Word)
			if err := tx.Set(key, storage.MarshalFrequency(freq)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetFrequency retrieves one frequency record by word.
func (r *KnowledgeRepository) GetFrequency(ctx context.Context, word string) (*core.WordFrequency, error) {
	var freq *core.WordFrequency
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeFreqKey(word))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			freq, err = storage.UnmarshalFrequency(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return freq, nil
}

// SaveSnapshot writes the full knowledge base. Pair and frequency records
// are upserted under content-based keys; patterns and mode usage are
// positional or name-keyed, so stale entries are cleared first.
func (r *KnowledgeRepository) SaveSnapshot(ctx context.Context, snap *core.KnowledgeSnapshot) error {
	if err := r.deletePrefix([]byte(patternRecordPrefix + ":")); err != nil {
		return err
	}
	if err := r.deletePrefix([]byte(modeUsagePrefix + ":")); err != nil {
		return err
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		for i := range snap.Pairs {
			pair := &snap.Pairs[i]
			key := makePairKey(pair.WordA, pair.WordB)
			if err := tx.Set(key, storage.MarshalPairStats(pair)); err != nil {
				return err
			}
		}
		for i := range snap.Frequencies {
			freq := &snap.Frequencies[i]
			if err := tx.Set(makeFreqKey(freq.Word), storage.MarshalFrequency(freq)); err != nil {
				return err
			}
		}
		for i := range snap.Patterns {
			pattern := &snap.Patterns[i]
			if err := tx.Set(makePatternKey(i), storage.MarshalPattern(pattern)); err != nil {
				return err
			}
		}
		for i := range snap.ModeUsages {
			usage := &snap.ModeUsages[i]
			if err := tx.Set(makeModeUsageKey(usage.Mode), storage.MarshalModeUsage(usage)); err != nil {
				return err
			}
		}

		meta := core.KnowledgeMeta{
			GamesPlayed: snap.GamesPlayed,
			LastUpdated: snap.LastUpdated,
		}
		if err := tx.Set(makeMetaKey(), storage.MarshalMeta(&meta)); err != nil {
			return err
		}

		return tx.Commit()
	}, true)
}

// LoadSnapshot reads the full knowledge base via prefix scans.
func (r *KnowledgeRepository) LoadSnapshot(ctx context.Context) (*core.KnowledgeSnapshot, error) {
	snap := &core.KnowledgeSnapshot{}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		if err := scanPrefix(tx, []byte(pairRecordPrefix+":"), func(val []byte) error {
			pair, err := storage.UnmarshalPairStats(val)
			if err != nil {
				return err
			}
			snap.Pairs = append(snap.Pairs, *pair)
			return nil
		}); err != nil {
			return err
		}

		if err := scanPrefix(tx, []byte(freqRecordPrefix+":"), func(val []byte) error {
			freq, err := storage.UnmarshalFrequency(val)
			if err != nil {
				return err
			}
			snap.Frequencies = append(snap.Frequencies, *freq)
			return nil
		}); err != nil {
			return err
		}

		if err := scanPrefix(tx, []byte(patternRecordPrefix+":"), func(val []byte) error {
			pattern, err := storage.UnmarshalPattern(val)
			if err != nil {
				return err
			}
			snap.Patterns = append(snap.Patterns, *pattern)
			return nil
		}); err != nil {
			return err
		}

		if err := scanPrefix(tx, []byte(modeUsagePrefix+":"), func(val []byte) error {
			usage, err := storage.UnmarshalModeUsage(val)
			if err != nil {
				return err
			}
			snap.ModeUsages = append(snap.ModeUsages, *usage)
			return nil
		}); err != nil {
			return err
		}

		item, err := tx.Get(makeMetaKey())
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			meta, err := storage.UnmarshalMeta(val)
			if err != nil {
				return err
			}
			snap.GamesPlayed = meta.GamesPlayed
			snap.LastUpdated = meta.LastUpdated
			return nil
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// scanPrefix iterates all values under a key prefix.
func scanPrefix(tx *badger.Txn, prefix []byte, fn func(val []byte) error) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	iter := tx.NewIterator(opts)
	defer iter.Close()

	for iter.Rewind(); iter.Valid(); iter.Next() {
		if err := iter.Item().Value(fn); err != nil {
			return err
		}
	}
	return nil
}

// deletePrefix removes every key under a prefix in its own transaction.
func (r *KnowledgeRepository) deletePrefix(prefix []byte) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)

		var keys [][]byte
		for iter.Rewind(); iter.Valid(); iter.Next() {
			keys = append(keys, iter.Item().KeyCopy(nil))
		}
		iter.Close()

		for _, key := range keys {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}
