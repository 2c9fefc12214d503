package dto

import "time"

// AssessmentSummaryDTO is one row of the admin listing.
type AssessmentSummaryDTO struct {
	ID             string    `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	OverallScore   float64   `json:"overall_score"`
	Classification string    `json:"classification"`
	HasReport      bool      `json:"has_report"`
}

type AssessmentListDTO struct {
	Total           int                    `json:"total"`
	Shown           int                    `json:"shown"`
	AverageFitScore float64                `json:"average_fit_score"`
	Items           []AssessmentSummaryDTO `json:"items"`
}

type ShareLinkDTO struct {
	AssessmentID string `json:"assessment_id"`
	URL          string `json:"url"`
}
