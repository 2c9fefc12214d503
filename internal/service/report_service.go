package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/lshigami/pofit/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// ReportUnavailableMessage replaces the narrative when generation fails or returns nothing.
const ReportUnavailableMessage = "The advanced report could not be generated at this time."

// ReportService attaches the narrative report to an assessment exactly once.
type ReportService interface {
	// Enrich returns the stored narrative, generating and storing it first when absent.
	// Generator failures are absorbed into ReportUnavailableMessage; only store errors are returned.
	Enrich(ctx context.Context, assessmentID string) (string, error)
	// EnrichAsync runs Enrich in the background, detached from any request.
	EnrichAsync(assessmentID string)
	// Wait blocks until every background enrichment has finished.
	Wait()
}

type reportService struct {
	repo      repository.AssessmentRepository
	generator ReportGenerator
	inflight  singleflight.Group
	wg        sync.WaitGroup
}

func NewReportService(repo repository.AssessmentRepository, generator ReportGenerator) ReportService {
	return &reportService{repo: repo, generator: generator}
}

func (s *reportService) Enrich(ctx context.Context, assessmentID string) (string, error) {
	// A viewer navigating away must not abort a generation other viewers share.
	ctx = context.WithoutCancel(ctx)
	v, err, shared := s.inflight.Do(assessmentID, func() (interface{}, error) {
		return s.enrich(ctx, assessmentID)
	})
	if shared {
		log.Debug().Str("assessmentID", assessmentID).Msg("Joined in-flight report enrichment")
	}
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (s *reportService) enrich(ctx context.Context, assessmentID string) (string, error) {
	assessment, err := s.repo.FindByID(ctx, assessmentID)
	if err != nil {
		return "", fmt.Errorf("loading assessment for report: %w", err)
	}
	if assessment.HasReport() {
		return *assessment.AIReport, nil
	}

	log.Info().Str("assessmentID", assessmentID).Msg("Generating narrative report")
	report, genErr := s.generator.Generate(ctx, assessment)
	switch {
	case genErr != nil:
		log.Warn().Err(genErr).Str("assessmentID", assessmentID).Msg("Report generation failed, storing fallback message")
		report = ReportUnavailableMessage
	case strings.TrimSpace(report) == "":
		log.Warn().Str("assessmentID", assessmentID).Msg("Report generator returned empty text, storing fallback message")
		report = ReportUnavailableMessage
	}

	updated, err := s.repo.SetAIReport(ctx, assessmentID, report)
	if err != nil {
		log.Error().Err(err).Str("assessmentID", assessmentID).Msg("Failed to store narrative report")
		return "", fmt.Errorf("storing report: %w", err)
	}
	if updated {
		return report, nil
	}

	// Another writer stored a report first; that one wins.
	stored, err := s.repo.FindByID(ctx, assessmentID)
	if err != nil {
		return "", fmt.Errorf("reloading assessment after report race: %w", err)
	}
	if stored.HasReport() {
		return *stored.AIReport, nil
	}
	return report, nil
}

func (s *reportService) EnrichAsync(assessmentID string) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if _, err := s.Enrich(context.Background(), assessmentID); err != nil {
			log.Error().Err(err).Str("assessmentID", assessmentID).Msg("Background report enrichment failed")
		}
	}()
}

func (s *reportService) Wait() {
	s.wg.Wait()
}
