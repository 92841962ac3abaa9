package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for stored knowledge records.
// It is generated by content-based hashing of record keys.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Similarity bounds. All similarity scores in the system use the 0-100 scale.
const (
	MinSimilarity = 0.0
	MaxSimilarity = 100.0
)

// Guess is a single scored attempt within a game run.
// Immutable once created; construct through NewGuess so validation runs.
type Guess struct {
	Word       string
	Similarity float64 // 0-100
	Rank       string  // opaque display string from the oracle
	Attempt    int     // sequence index within the run, starting at 0
}

// NewGuess creates a validated Guess.
func NewGuess(word string, similarity float64, rank string, attempt int) (Guess, error) {
	g := Guess{
		Word:       word,
		Similarity: similarity,
		Rank:       rank,
		Attempt:    attempt,
	}
	if err := ValidateGuess(&g); err != nil {
		return Guess{}, err
	}
	return g, nil
}

// Bounds on stored pair samples. When a pair accumulates more than
// PairSampleCap diffs the list is trimmed to the most recent PairSampleKeep.
const (
	PairSampleCap  = 100
	PairSampleKeep = 50
)

// PairKey returns the canonical key for an unordered word pair.
// Words are ordered lexicographically so (a,b) and (b,a) map to one record.
func PairKey(wordA, wordB string) string {
	if wordB < wordA {
		wordA, wordB = wordB, wordA
	}
	return wordA + "|" + wordB
}

// WordPairStats holds observed similarity-difference samples for an
// unordered pair of distinct words. A smaller mean difference indicates a
// stronger learned association.
type WordPairStats struct {
	WordA        string // lexicographically smaller word
	WordB        string
	Diffs        []float64
	CoOccurrence int
	LastUpdated  time.Time
}

// NewWordPairStats creates an empty record for the pair, canonicalizing
// word order.
func NewWordPairStats(wordA, wordB string) *WordPairStats {
	if wordB < wordA {
		wordA, wordB = wordB, wordA
	}
	return &WordPairStats{WordA: wordA, WordB: wordB}
}

// Key returns the canonical pair key for this record.
func (p *WordPairStats) Key() string {
	return PairKey(p.WordA, p.WordB)
}

// Other returns the pair member that is not word, or "" if word is not in
// the pair.
func (p *WordPairStats) Other(word string) string {
	switch word {
	case p.WordA:
		return p.WordB
	case p.WordB:
		return p.WordA
	}
	return ""
}

// AddDiff appends an observed similarity difference, bumping the
// co-occurrence counter and trimming the sample list if it exceeds the cap.
func (p *WordPairStats) AddDiff(diff float64) {
	p.Diffs = append(p.Diffs, diff)
	p.CoOccurrence++
	p.LastUpdated = time.Now().UTC()

	if len(p.Diffs) > PairSampleCap {
		trimmed := make([]float64, PairSampleKeep)
		copy(trimmed, p.Diffs[len(p.Diffs)-PairSampleKeep:])
		p.Diffs = trimmed
	}
}

// MeanDiff returns the average observed similarity difference, or 0 with no
// samples.
func (p *WordPairStats) MeanDiff() float64 {
	if len(p.Diffs) == 0 {
		return 0
	}
	var sum float64
	for _, d := range p.Diffs {
		sum += d
	}
	return sum / float64(len(p.Diffs))
}

// WordFrequency tracks cross-session usage and performance of one word.
// Statistics are updated incrementally on every recorded guess.
type WordFrequency struct {
	Word            string
	Count           int
	TotalSimilarity float64
	AvgSimilarity   float64
	BestSimilarity  float64
	LastUsed        time.Time
}

// Update folds a new similarity observation into the running statistics.
func (f *WordFrequency) Update(similarity float64) {
	f.Count++
	f.TotalSimilarity += similarity
	f.AvgSimilarity = f.TotalSimilarity / float64(f.Count)
	f.BestSimilarity = math.Max(f.BestSimilarity, similarity)
	f.LastUsed = time.Now().UTC()
}

// EffectivenessScore ranks a word by combined consistency and peak
// performance: avg * count rewards words that score well repeatedly, the
// half-weighted best rewards one-off peaks.
func (f *WordFrequency) EffectivenessScore() float64 {
	return f.AvgSimilarity*float64(f.Count) + 0.5*f.BestSimilarity
}

// Bounds on retained success patterns.
const (
	PatternCap  = 100
	PatternKeep = 50
)

// SuccessPattern records how a completed, solved run unfolded. Retained for
// strategy-effectiveness analytics; the search policy consumes it as an
// optional signal only.
type SuccessPattern struct {
	Answer          string
	Attempts        int
	KeyWords        []string  // top words by similarity
	KeySimilarities []float64 // final similarity of each key word
	ModeSequence    []string
	CompletedAt     time.Time
	DurationSeconds float64
}

// ModeUsage accumulates how often a search mode appeared in finished runs
// and how long those runs took.
type ModeUsage struct {
	Mode          string
	UsageCount    int
	TotalAttempts int
}

// AvgAttempts returns the mean run length across runs that used this mode.
func (m *ModeUsage) AvgAttempts() float64 {
	if m.UsageCount == 0 {
		return 0
	}
	return float64(m.TotalAttempts) / float64(m.UsageCount)
}

// KnowledgeMeta holds the scalar counters persisted alongside the knowledge
// records.
type KnowledgeMeta struct {
	GamesPlayed int
	LastUpdated time.Time
}

// KnowledgeSnapshot is the bulk persisted form of the knowledge base.
type KnowledgeSnapshot struct {
	GamesPlayed int
	Pairs       []WordPairStats
	Frequencies []WordFrequency
	Patterns    []SuccessPattern
	ModeUsages  []ModeUsage
	LastUpdated time.Time
}
