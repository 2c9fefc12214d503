package service

import (
	"github.com/lshigami/pofit/internal/dto"
	"github.com/lshigami/pofit/internal/model"
	"github.com/lshigami/pofit/internal/scoring"
)

// DiagnosticService applies the static diagnostic tables to a stored assessment.
// Nothing it returns is persisted; it is recomputed on every read.
type DiagnosticService interface {
	Diagnose(assessment *model.Assessment) dto.DiagnosticsDTO
}

type diagnosticService struct{}

func NewDiagnosticService() DiagnosticService {
	return &diagnosticService{}
}

func (s *diagnosticService) Diagnose(a *model.Assessment) dto.DiagnosticsDTO {
	sq := scoring.ClassifySubQuadrant(a.AxisX, a.AxisY)
	return dto.DiagnosticsDTO{
		IPA:  indexDiagnostic("IPA", a.IPA, scoring.DiagnoseIPA(a.IPA)),
		IRCC: indexDiagnostic("IRCC", a.IRCC, scoring.DiagnoseIRCC(a.IRCC)),
		IISE: indexDiagnostic("IISE", a.IISE, scoring.DiagnoseIISE(a.IISE)),
		SubQuadrant: dto.SubQuadrantDTO{
			Label:       sq.Label,
			Description: sq.Description,
			Extreme:     sq.Extreme,
		},
		QuadrantGuidance: scoring.QuadrantGuidance(sq.Classification),
	}
}

func indexDiagnostic(index string, score float64, d scoring.Diagnostic) dto.IndexDiagnosticDTO {
	return dto.IndexDiagnosticDTO{
		Index:  index,
		Score:  score,
		Status: d.Status,
		Report: d.Report,
		Action: d.Action,
	}
}
