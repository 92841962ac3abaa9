package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/semantra/core"
)

// Key prefixes for different data types
const (
	pairRecordPrefix    = "pairrec"
	freqRecordPrefix    = "freqrec"
	patternRecordPrefix = "patrec"
	modeUsagePrefix     = "moderec"
	metaKey             = "knowmeta"
)

// makePairKey generates a key for a word pair record. The pair key string is
// canonical so both word orders map to one record.
func makePairKey(wordA, wordB string) []byte {
	id := core.IDFromContent(core.PairKey(wordA, wordB))
	return []byte(fmt.Sprintf("%s:%d", pairRecordPrefix, id))
}

// makeFreqKey generates a key for a word frequency record.
func makeFreqKey(word string) []byte {
	id := core.IDFromContent(word)
	return []byte(fmt.Sprintf("%s:%d", freqRecordPrefix, id))
}

// makePatternKey generates a composite key for a success pattern by its
// position in the retained log.
// Format: prefix:index
func makePatternKey(index int) []byte {
	prefix := patternRecordPrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort preserves log order
	binary.BigEndian.PutUint64(buf[offset:], uint64(index))
	return buf
}

// makeModeUsageKey generates a key for a mode usage record.
func makeModeUsageKey(mode string) []byte {
	return []byte(fmt.Sprintf("%s:%s", modeUsagePrefix, mode))
}

// makeMetaKey generates the key for the knowledge meta record.
func makeMetaKey() []byte {
	return []byte(metaKey)
}
