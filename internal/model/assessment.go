package model

import (
	"time"

	"gorm.io/datatypes"
)

// Assessment is a persisted questionnaire result. All score columns are derived
// from the answers at creation time; AIReport is the only column written later,
// and at most once.
type Assessment struct {
	ID             string                            `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name           string                            `gorm:"not null" json:"name"`
	Email          string                            `gorm:"not null;index" json:"email"`
	BlockScores    datatypes.JSONType[BlockScoreMap] `gorm:"not null" json:"block_scores"`
	IPA            float64                           `gorm:"column:ipa;not null" json:"ipa"`
	IRCC           float64                           `gorm:"column:ircc;not null" json:"ircc"`
	IISE           float64                           `gorm:"column:iise;not null" json:"iise"`
	AxisX          float64                           `gorm:"column:axis_x;not null" json:"axis_x"`
	AxisY          float64                           `gorm:"column:axis_y;not null" json:"axis_y"`
	OverallScore   float64                           `gorm:"not null" json:"overall_score"`
	Classification string                            `gorm:"not null" json:"classification"`
	AIReport       *string                           `gorm:"column:ai_report;type:text" json:"ai_report,omitempty"`
	CreatedAt      time.Time                         `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time                         `json:"updated_at"`
}

func (Assessment) TableName() string { return "assessments" }

// HasReport reports whether the narrative has already been attached.
func (a *Assessment) HasReport() bool {
	return a.AIReport != nil
}
