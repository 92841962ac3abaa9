// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	slicepSYAHi4h5pdzPbHXXaweIgΞΞ = ord.NewSliceSer[float64](varint.Float64)
	slicesxKkP0pbOQaGAD0eNQo57AΞΞ = ord.NewSliceSer[string](ord.String)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var WordPairStatsMUS = wordPairStatsMUS{}

type wordPairStatsMUS struct{}

func (s wordPairStatsMUS) Marshal(v WordPairStats, bs []byte) (n int) {
	n = ord.String.Marshal(v.WordA, bs)
	n += ord.String.Marshal(v.WordB, bs[n:])
	n += slicepSYAHi4h5pdzPbHXXaweIgΞΞ.Marshal(v.Diffs, bs[n:])
	n += varint.Int.Marshal(v.CoOccurrence, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.LastUpdated, bs[n:])
}

func (s wordPairStatsMUS) Unmarshal(bs []byte) (v WordPairStats, n int, err error) {
	v.WordA, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.WordB, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Diffs, n1, err = slicepSYAHi4h5pdzPbHXXaweIgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CoOccurrence, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.LastUpdated, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s wordPairStatsMUS) Size(v WordPairStats) (size int) {
	size = ord.String.Size(v.WordA)
	size += ord.String.Size(v.WordB)
	size += slicepSYAHi4h5pdzPbHXXaweIgΞΞ.Size(v.Diffs)
	size += varint.Int.Size(v.CoOccurrence)
	return size + raw.TimeUnixMicro.Size(v.LastUpdated)
}

func (s wordPairStatsMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicepSYAHi4h5pdzPbHXXaweIgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var WordFrequencyMUS = wordFrequencyMUS{}

type wordFrequencyMUS struct{}

func (s wordFrequencyMUS) Marshal(v WordFrequency, bs []byte) (n int) {
	n = ord.String.Marshal(v.Word, bs)
	n += varint.Int.Marshal(v.Count, bs[n:])
	n += varint.Float64.Marshal(v.TotalSimilarity, bs[n:])
	n += varint.Float64.Marshal(v.AvgSimilarity, bs[n:])
	n += varint.Float64.Marshal(v.BestSimilarity, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.LastUsed, bs[n:])
}

func (s wordFrequencyMUS) Unmarshal(bs []byte) (v WordFrequency, n int, err error) {
	v.Word, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Count, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.TotalSimilarity, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.AvgSimilarity, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.BestSimilarity, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.LastUsed, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s wordFrequencyMUS) Size(v WordFrequency) (size int) {
	size = ord.String.Size(v.Word)
	size += varint.Int.Size(v.Count)
	size += varint.Float64.Size(v.TotalSimilarity)
	size += varint.Float64.Size(v.AvgSimilarity)
	size += varint.Float64.Size(v.BestSimilarity)
	return size + raw.TimeUnixMicro.Size(v.LastUsed)
}

func (s wordFrequencyMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var SuccessPatternMUS = successPatternMUS{}

type successPatternMUS struct{}

func (s successPatternMUS) Marshal(v SuccessPattern, bs []byte) (n int) {
	n = ord.String.Marshal(v.Answer, bs)
	n += varint.Int.Marshal(v.Attempts, bs[n:])
	n += slicesxKkP0pbOQaGAD0eNQo57AΞΞ.Marshal(v.KeyWords, bs[n:])
	n += slicepSYAHi4h5pdzPbHXXaweIgΞΞ.Marshal(v.KeySimilarities, bs[n:])
	n += slicesxKkP0pbOQaGAD0eNQo57AΞΞ.Marshal(v.ModeSequence, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.CompletedAt, bs[n:])
	return n + varint.Float64.Marshal(v.DurationSeconds, bs[n:])
}

func (s successPatternMUS) Unmarshal(bs []byte) (v SuccessPattern, n int, err error) {
	v.Answer, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Attempts, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.KeyWords, n1, err = slicesxKkP0pbOQaGAD0eNQo57AΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.KeySimilarities, n1, err = slicepSYAHi4h5pdzPbHXXaweIgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ModeSequence, n1, err = slicesxKkP0pbOQaGAD0eNQo57AΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CompletedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.DurationSeconds, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	return
}

func (s successPatternMUS) Size(v SuccessPattern) (size int) {
	size = ord.String.Size(v.Answer)
	size += varint.Int.Size(v.Attempts)
	size += slicesxKkP0pbOQaGAD0eNQo57AΞΞ.Size(v.KeyWords)
	size += slicepSYAHi4h5pdzPbHXXaweIgΞΞ.Size(v.KeySimilarities)
	size += slicesxKkP0pbOQaGAD0eNQo57AΞΞ.Size(v.ModeSequence)
	size += raw.TimeUnixMicro.Size(v.CompletedAt)
	return size + varint.Float64.Size(v.DurationSeconds)
}

func (s successPatternMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicesxKkP0pbOQaGAD0eNQo57AΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicepSYAHi4h5pdzPbHXXaweIgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicesxKkP0pbOQaGAD0eNQo57AΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	return
}

var ModeUsageMUS = modeUsageMUS{}

type modeUsageMUS struct{}

func (s modeUsageMUS) Marshal(v ModeUsage, bs []byte) (n int) {
	n = ord.String.Marshal(v.Mode, bs)
	n += varint.Int.Marshal(v.UsageCount, bs[n:])
	return n + varint.Int.Marshal(v.TotalAttempts, bs[n:])
}

func (s modeUsageMUS) Unmarshal(bs []byte) (v ModeUsage, n int, err error) {
	v.Mode, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.UsageCount, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.TotalAttempts, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	return
}

func (s modeUsageMUS) Size(v ModeUsage) (size int) {
	size = ord.String.Size(v.Mode)
	size += varint.Int.Size(v.UsageCount)
	return size + varint.Int.Size(v.TotalAttempts)
}

func (s modeUsageMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	return
}

var KnowledgeMetaMUS = knowledgeMetaMUS{}

type knowledgeMetaMUS struct{}

func (s knowledgeMetaMUS) Marshal(v KnowledgeMeta, bs []byte) (n int) {
	n = varint.Int.Marshal(v.GamesPlayed, bs)
	return n + raw.TimeUnixMicro.Marshal(v.LastUpdated, bs[n:])
}

func (s knowledgeMetaMUS) Unmarshal(bs []byte) (v KnowledgeMeta, n int, err error) {
	v.GamesPlayed, n, err = varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.LastUpdated, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s knowledgeMetaMUS) Size(v KnowledgeMeta) (size int) {
	size = varint.Int.Size(v.GamesPlayed)
	return size + raw.TimeUnixMicro.Size(v.LastUpdated)
}

func (s knowledgeMetaMUS) Skip(bs []byte) (n int, err error) {
	n, err = varint.Int.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
