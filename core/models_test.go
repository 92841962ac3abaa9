package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	id1 := IDFromContent("사람|인간")
	id2 := IDFromContent("사람|인간")

	if id1 != id2 {
		t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
	}

	if IDFromContent("사람|인간") == IDFromContent("사람|물건") {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestPairKey(t *testing.T) {
	tests := []struct {
		name   string
		wordA  string
		wordB  string
		want   string
	}{
		{
			name:  "already ordered",
			wordA: "나무",
			wordB: "사람",
			want:  "나무|사람",
		},
		{
			name:  "reversed input canonicalizes",
			wordA: "사람",
			wordB: "나무",
			want:  "나무|사람",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PairKey(tt.wordA, tt.wordB)
			if got != tt.want {
				t.Errorf("PairKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWordPairStats_AddDiff(t *testing.T) {
	p := NewWordPairStats("사람", "인간")

	p.AddDiff(1)
	p.AddDiff(2)
	p.AddDiff(3)

	if p.CoOccurrence != 3 {
		t.Errorf("CoOccurrence = %d, want 3", p.CoOccurrence)
	}
	if got := p.MeanDiff(); got != 2 {
		t.Errorf("MeanDiff() = %v, want 2", got)
	}
	if p.LastUpdated.IsZero() {
		t.Error("LastUpdated not set")
	}
}

func TestWordPairStats_BoundedSamples(t *testing.T) {
	p := NewWordPairStats("가", "나")

	for i := 0; i < 250; i++ {
		p.AddDiff(float64(i % 10))
		if len(p.Diffs) > PairSampleCap {
			t.Fatalf("sample list grew to %d, cap is %d", len(p.Diffs), PairSampleCap)
		}
	}

	if p.CoOccurrence != 250 {
		t.Errorf("CoOccurrence = %d, want 250", p.CoOccurrence)
	}
}

func TestWordPairStats_TrimKeepsMostRecent(t *testing.T) {
	p := NewWordPairStats("가", "나")

	for i := 0; i <= PairSampleCap; i++ {
		p.AddDiff(float64(i))
	}

	// 101st sample pushes over the cap; list trims to the last 50.
	if len(p.Diffs) != PairSampleKeep {
		t.Fatalf("len(Diffs) = %d, want %d", len(p.Diffs), PairSampleKeep)
	}
	if p.Diffs[len(p.Diffs)-1] != float64(PairSampleCap) {
		t.Errorf("last sample = %v, want %v", p.Diffs[len(p.Diffs)-1], float64(PairSampleCap))
	}
}

func TestWordPairStats_Other(t *testing.T) {
	p := NewWordPairStats("인간", "사람")

	if got := p.Other("사람"); got != "인간" {
		t.Errorf("Other(사람) = %q, want 인간", got)
	}
	if got := p.Other("인간"); got != "사람" {
		t.Errorf("Other(인간) = %q, want 사람", got)
	}
	if got := p.Other("물건"); got != "" {
		t.Errorf("Other(물건) = %q, want empty", got)
	}
}

func TestWordFrequency_Update(t *testing.T) {
	f := &WordFrequency{Word: "사람"}

	f.Update(40)
	f.Update(60)

	if f.Count != 2 {
		t.Errorf("Count = %d, want 2", f.Count)
	}
	if f.AvgSimilarity != 50 {
		t.Errorf("AvgSimilarity = %v, want 50", f.AvgSimilarity)
	}
	if f.BestSimilarity != 60 {
		t.Errorf("BestSimilarity = %v, want 60", f.BestSimilarity)
	}

	// Best never decreases.
	f.Update(10)
	if f.BestSimilarity != 60 {
		t.Errorf("BestSimilarity = %v after low score, want 60", f.BestSimilarity)
	}
}

func TestWordFrequency_EffectivenessScore(t *testing.T) {
	a := &WordFrequency{Word: "가"}
	b := &WordFrequency{Word: "나"}

	// Identical counts, A's average higher -> A scores higher.
	a.Update(50)
	a.Update(50)
	b.Update(30)
	b.Update(30)

	if a.EffectivenessScore() <= b.EffectivenessScore() {
		t.Errorf("EffectivenessScore: a=%v should exceed b=%v",
			a.EffectivenessScore(), b.EffectivenessScore())
	}
}

func TestModeUsage_AvgAttempts(t *testing.T) {
	m := &ModeUsage{Mode: "wide"}

	if got := m.AvgAttempts(); got != 0 {
		t.Errorf("AvgAttempts() with no usage = %v, want 0", got)
	}

	m.UsageCount = 2
	m.TotalAttempts = 30
	if got := m.AvgAttempts(); got != 15 {
		t.Errorf("AvgAttempts() = %v, want 15", got)
	}
}
