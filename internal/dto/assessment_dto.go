package dto

import "time"

// Report status values exposed to the presentation layer.
const (
	ReportStatusPending = "pending"
	ReportStatusReady   = "ready"
)

// --- Questionnaire ---

type QuestionDTO struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Block     string `json:"block"`
	BlockName string `json:"block_name"`
}

type QuestionnaireStepDTO struct {
	Step      int           `json:"step"`
	Questions []QuestionDTO `json:"questions"`
}

type LikertScaleDTO struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	MinLabel string `json:"min_label"`
	MaxLabel string `json:"max_label"`
}

type QuestionnaireDTO struct {
	TotalQuestions int                    `json:"total_questions"`
	Scale          LikertScaleDTO         `json:"scale"`
	Steps          []QuestionnaireStepDTO `json:"steps"`
}

// --- Submission ---

// AnswerDTO is a single Likert answer.
type AnswerDTO struct {
	QuestionID int `json:"question_id" binding:"required,min=1,max=30"`
	Value      int `json:"value" binding:"required,min=1,max=5"`
}

// AssessmentSubmitDTO is the completed questionnaire plus contact details.
type AssessmentSubmitDTO struct {
	Name    string      `json:"name" binding:"required,max=200"`
	Email   string      `json:"email" binding:"required,email,max=320"`
	Answers []AnswerDTO `json:"answers" binding:"required,len=30,dive"`
}

// --- Results ---

type BlockScoreDTO struct {
	Code  string  `json:"code"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

type IndexDiagnosticDTO struct {
	Index  string  `json:"index"`
	Score  float64 `json:"score"`
	Status string  `json:"status"`
	Report string  `json:"report"`
	Action string  `json:"action"`
}

type SubQuadrantDTO struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Extreme     bool   `json:"extreme"`
}

type DiagnosticsDTO struct {
	IPA              IndexDiagnosticDTO `json:"ipa"`
	IRCC             IndexDiagnosticDTO `json:"ircc"`
	IISE             IndexDiagnosticDTO `json:"iise"`
	SubQuadrant      SubQuadrantDTO     `json:"sub_quadrant"`
	QuadrantGuidance string             `json:"quadrant_guidance"`
}

// AssessmentDetailDTO is everything the result page shows for one assessment.
type AssessmentDetailDTO struct {
	ID             string          `json:"id"`
	CreatedAt      time.Time       `json:"created_at"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	OverallScore   float64         `json:"overall_score"`
	Classification string          `json:"classification"`
	BlockScores    []BlockScoreDTO `json:"block_scores" copier:"-"`
	IPA            float64         `json:"ipa"`
	IRCC           float64         `json:"ircc"`
	IISE           float64         `json:"iise"`
	AxisX          float64         `json:"axis_x"`
	AxisY          float64         `json:"axis_y"`
	Diagnostics    DiagnosticsDTO  `json:"diagnostics" copier:"-"`
	AIReport       *string         `json:"ai_report,omitempty"`
	ReportStatus   string          `json:"report_status" copier:"-"`
	ShareURL       string          `json:"share_url" copier:"-"`
	// StoredLocally is set on submission when only the local fallback copy holds the record.
	StoredLocally bool `json:"stored_locally,omitempty" copier:"-"`
}

type ReportDTO struct {
	AssessmentID string `json:"assessment_id"`
	Status       string `json:"status"`
	Report       string `json:"report"`
}
