package model

import "github.com/lshigami/pofit/internal/scoring"

// BlockScoreMap is the JSON shape of the block_scores column: block code -> mean answer.
type BlockScoreMap map[string]float64

// NewBlockScoreMap converts engine block scores into the stored shape.
func NewBlockScoreMap(scores scoring.BlockScores) BlockScoreMap {
	return BlockScoreMap(scores.AsStringMap())
}

// Ordered returns the scores in block order B1..B10, skipping absent blocks.
func (m BlockScoreMap) Ordered() []BlockScore {
	out := make([]BlockScore, 0, len(m))
	for _, b := range scoring.Blocks {
		v, ok := m[string(b)]
		if !ok {
			continue
		}
		out = append(out, BlockScore{Code: string(b), Name: b.Name(), Score: v})
	}
	return out
}

// BlockScore is one entry of an ordered block score list.
type BlockScore struct {
	Code  string
	Name  string
	Score float64
}
