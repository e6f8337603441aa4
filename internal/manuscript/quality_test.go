package manuscript

import (
	"math"
	"testing"
)

func TestComputeManuscriptScore_AllPerfect(t *testing.T) {
	a := Assessment{Legible: true, StepsShown: true, ReachesAnswer: true, Confidence: "high"}

	score := ComputeManuscriptScore(a)
	// confidence: 1.0*0.40 + 0.25 + 0.20 + 0.15 = 1.0
	if !almostEqual(score, 1.0) {
		t.Errorf("expected score ~1.0, got %f", score)
	}
}

func TestComputeManuscriptScore_LowConfidence(t *testing.T) {
	a := Assessment{Legible: true, StepsShown: true, ReachesAnswer: true, Confidence: "low"}

	score := ComputeManuscriptScore(a)
	// confidence: 0.4*0.40 + 0.25 + 0.20 + 0.15 = 0.76
	if !almostEqual(score, 0.76) {
		t.Errorf("expected score ~0.76, got %f", score)
	}
}

func TestComputeManuscriptScore_Illegible(t *testing.T) {
	a := Assessment{Legible: false, StepsShown: true, ReachesAnswer: true, Confidence: "high"}

	score := ComputeManuscriptScore(a)
	// confidence: 1.0*0.40 + 0 + 0.20 + 0.15 = 0.75
	if !almostEqual(score, 0.75) {
		t.Errorf("expected score ~0.75, got %f", score)
	}
}

func TestComputeManuscriptScore_OnlyAnswer(t *testing.T) {
	a := Assessment{ReachesAnswer: true, Confidence: "medium"}

	score := ComputeManuscriptScore(a)
	// confidence: 0.7*0.40 + 0.15 = 0.43
	if !almostEqual(score, 0.43) {
		t.Errorf("expected score ~0.43, got %f", score)
	}
}

func TestClassifyManuscript(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{0.0, ClassReject},
		{0.49, ClassReject},
		{0.50, ClassInconclusive},
		{0.70, ClassInconclusive},
		{0.71, ClassValid},
		{1.0, ClassValid},
	}
	for _, tt := range tests {
		got := ClassifyManuscript(tt.score)
		if got != tt.expected {
			t.Errorf("ClassifyManuscript(%f) = %s, want %s", tt.score, got, tt.expected)
		}
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.001
}
