// Package scoring turns the 30 Likert answers of the fit questionnaire into block
// scores, composite indices, the two allocation axes and a quadrant profile.
// It has no I/O and no dependencies outside the standard library.
package scoring

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrIncompleteAnswers = errors.New("scoring: not every question has been answered")
	ErrAnswerOutOfRange  = errors.New("scoring: answer outside the 1-5 scale")
	ErrUnknownQuestion   = errors.New("scoring: answer for a question that is not in the bank")
)

// AnswerSet maps a question id to its Likert value. A missing id means unanswered.
type AnswerSet map[int]int

// BlockScores maps each block code to the mean of its three answers.
type BlockScores map[Block]float64

// Scores is every figure derived from a complete AnswerSet.
type Scores struct {
	BlockScores    BlockScores
	IPA            float64
	IRCC           float64
	IISE           float64
	AxisX          float64
	AxisY          float64
	OverallScore   float64
	Classification Classification
}

// Validate reports why the set cannot be scored, or nil when it is complete.
func (a AnswerSet) Validate() error {
	for id, v := range a {
		if _, ok := QuestionByID(id); !ok {
			return fmt.Errorf("%w: question %d", ErrUnknownQuestion, id)
		}
		if v < MinScale || v > MaxScale {
			return fmt.Errorf("%w: question %d has %d", ErrAnswerOutOfRange, id, v)
		}
	}
	if missing := a.Missing(); len(missing) > 0 {
		return fmt.Errorf("%w: missing %v", ErrIncompleteAnswers, missing)
	}
	return nil
}

// Missing returns the ids of the unanswered questions in ascending order.
func (a AnswerSet) Missing() []int {
	var missing []int
	for _, q := range questionBank {
		if _, ok := a[q.ID]; !ok {
			missing = append(missing, q.ID)
		}
	}
	sort.Ints(missing)
	return missing
}

// Compute derives the full score set. It fails fast when the set is incomplete
// or carries invalid values instead of scoring unanswered questions as zero.
func Compute(answers AnswerSet) (*Scores, error) {
	if err := answers.Validate(); err != nil {
		return nil, err
	}

	blockScores := make(BlockScores, len(Blocks))
	for block, ids := range questionsByBlock() {
		sum := 0
		for _, id := range ids {
			sum += answers[id]
		}
		blockScores[block] = float64(sum) / float64(len(ids))
	}

	total := 0
	for _, q := range questionBank {
		total += answers[q.ID]
	}

	s := &Scores{
		BlockScores:  blockScores,
		IPA:          blockScores.mean(ipaBlocks),
		IRCC:         blockScores.mean(irccBlocks),
		IISE:         blockScores.mean(iiseBlocks),
		AxisX:        blockScores.mean(axisXBlocks),
		AxisY:        blockScores.mean(axisYBlocks),
		OverallScore: float64(total) / TotalQuestions / MaxScale * 100,
	}
	s.Classification = Classify(s.AxisX, s.AxisY)
	return s, nil
}

func (b BlockScores) mean(blocks []Block) float64 {
	sum := 0.0
	for _, block := range blocks {
		sum += b[block]
	}
	return sum / float64(len(blocks))
}

// AsStringMap is the block scores keyed by plain strings, ready for JSON columns.
func (b BlockScores) AsStringMap() map[string]float64 {
	out := make(map[string]float64, len(b))
	for block, v := range b {
		out[string(block)] = v
	}
	return out
}
