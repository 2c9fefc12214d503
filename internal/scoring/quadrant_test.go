package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		x, y  float64
		class Classification
	}{
		{"centre counts as high on both axes", 3.0, 3.0, ClassificationCollaborative},
		{"high x low y", 3.0, 2.9999, ClassificationIndependent},
		{"low x high y", 2.9999, 3.0, ClassificationStructured},
		{"low both", 2.5, 1.0, ClassificationIsolated},
		{"max both", 5, 5, ClassificationCollaborative},
		{"min both", 1, 1, ClassificationIsolated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.class, Classify(tt.x, tt.y))
		})
	}
}

func TestClassifySubQuadrant(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		label   string
		extreme bool
	}{
		{"collaborative balanced", 3.5, 3.5, "Team Collaborator", false},
		{"collaborative extreme", 4.5, 3.5, "Governance Facilitator", true},
		{"independent balanced", 3.5, 2.5, "Focused Specialist", false},
		{"independent extreme", 3.5, 1.5, "Internal Entrepreneur", true},
		{"structured balanced", 2.5, 3.5, "Operational Leader", false},
		{"structured extreme", 2.5, 4.8, "Climate Harmonizer", true},
		{"isolated balanced", 2.0, 2.0, "Process Specialist", false},
		{"isolated extreme", 1.0, 2.0, "Norm Guardian", true},
		{"upper bound is balanced", 4.2, 3.0, "Team Collaborator", false},
		{"just above upper bound is extreme", 4.2000001, 3.0, "Governance Facilitator", true},
		{"lower bound is balanced", 1.8, 1.8, "Process Specialist", false},
		{"just below lower bound is extreme", 1.7999999, 1.8, "Norm Guardian", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq := ClassifySubQuadrant(tt.x, tt.y)
			assert.Equal(t, tt.label, sq.Label)
			assert.Equal(t, tt.extreme, sq.Extreme)
			assert.Equal(t, Classify(tt.x, tt.y), sq.Classification)
			assert.NotEmpty(t, sq.Description)
		})
	}
}

func TestClassifySubQuadrant_EightDistinctLabels(t *testing.T) {
	seen := map[string]bool{}
	for _, x := range []float64{1.0, 2.5, 3.5, 5.0} {
		for _, y := range []float64{1.0, 2.5, 3.5, 5.0} {
			seen[ClassifySubQuadrant(x, y).Label] = true
		}
	}
	assert.Len(t, seen, 8)
}

func TestQuadrantGuidance(t *testing.T) {
	for _, c := range []Classification{
		ClassificationCollaborative, ClassificationIndependent,
		ClassificationStructured, ClassificationIsolated,
	} {
		assert.NotEmpty(t, QuadrantGuidance(c), string(c))
	}
	assert.Empty(t, QuadrantGuidance("unknown"))
}
