package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/pofit/config"
	"github.com/lshigami/pofit/internal/dto"
	"github.com/lshigami/pofit/internal/model"
	"github.com/lshigami/pofit/internal/repository"
	"github.com/lshigami/pofit/internal/scoring"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

var (
	ErrAssessmentNotFound = repository.ErrAssessmentNotFound
	ErrInvalidSubmission  = errors.New("invalid assessment submission")
)

// AssessmentService runs the respondent flow: questionnaire, submission, result and report.
type AssessmentService interface {
	GetQuestionnaire() dto.QuestionnaireDTO
	Submit(ctx context.Context, req dto.AssessmentSubmitDTO) (*dto.AssessmentDetailDTO, error)
	GetResult(ctx context.Context, assessmentID string) (*dto.AssessmentDetailDTO, error)
	GetReport(ctx context.Context, assessmentID string) (*dto.ReportDTO, error)
}

type assessmentService struct {
	repo        repository.AssessmentRepository
	reports     ReportService
	diagnostics DiagnosticService
	cfg         *config.Config
	now         func() time.Time
}

func NewAssessmentService(
	repo repository.AssessmentRepository,
	reports ReportService,
	diagnostics DiagnosticService,
	cfg *config.Config,
) AssessmentService {
	return &assessmentService{
		repo:        repo,
		reports:     reports,
		diagnostics: diagnostics,
		cfg:         cfg,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *assessmentService) GetQuestionnaire() dto.QuestionnaireDTO {
	steps := scoring.Steps()
	out := dto.QuestionnaireDTO{
		TotalQuestions: scoring.TotalQuestions,
		Scale: dto.LikertScaleDTO{
			Min:      scoring.MinScale,
			Max:      scoring.MaxScale,
			MinLabel: "Strongly disagree",
			MaxLabel: "Strongly agree",
		},
		Steps: make([]dto.QuestionnaireStepDTO, 0, len(steps)),
	}
	for i, step := range steps {
		questions := make([]dto.QuestionDTO, 0, len(step))
		for _, q := range step {
			questions = append(questions, dto.QuestionDTO{
				ID:        q.ID,
				Text:      q.Text,
				Block:     string(q.Block),
				BlockName: q.Block.Name(),
			})
		}
		out.Steps = append(out.Steps, dto.QuestionnaireStepDTO{Step: i + 1, Questions: questions})
	}
	return out
}

// Submit scores a completed questionnaire, stores the result and starts report enrichment.
func (s *assessmentService) Submit(ctx context.Context, req dto.AssessmentSubmitDTO) (*dto.AssessmentDetailDTO, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrInvalidSubmission)
	}

	answers := make(scoring.AnswerSet, len(req.Answers))
	for _, ans := range req.Answers {
		if _, dup := answers[ans.QuestionID]; dup {
			return nil, fmt.Errorf("%w: question %d answered more than once", ErrInvalidSubmission, ans.QuestionID)
		}
		answers[ans.QuestionID] = ans.Value
	}

	scores, err := scoring.Compute(answers)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSubmission, err)
	}

	assessment := &model.Assessment{
		ID:             uuid.NewString(),
		Name:           name,
		Email:          email,
		BlockScores:    datatypes.NewJSONType(model.NewBlockScoreMap(scores.BlockScores)),
		IPA:            scores.IPA,
		IRCC:           scores.IRCC,
		IISE:           scores.IISE,
		AxisX:          scores.AxisX,
		AxisY:          scores.AxisY,
		OverallScore:   scores.OverallScore,
		Classification: string(scores.Classification),
		CreatedAt:      s.now(),
	}

	storedLocally := false
	if err := s.repo.Create(ctx, assessment); err != nil {
		if !errors.Is(err, repository.ErrStoredLocally) {
			log.Error().Err(err).Str("assessmentID", assessment.ID).Msg("Submit: failed to store assessment")
			return nil, fmt.Errorf("storing assessment: %w", err)
		}
		log.Warn().Err(err).Str("assessmentID", assessment.ID).Msg("Submit: assessment kept in local fallback store")
		storedLocally = true
	}

	log.Info().
		Str("assessmentID", assessment.ID).
		Str("classification", assessment.Classification).
		Float64("overallScore", assessment.OverallScore).
		Msg("Assessment scored and stored")

	s.reports.EnrichAsync(assessment.ID)

	detail, err := s.toDetail(assessment)
	if err != nil {
		return nil, err
	}
	detail.StoredLocally = storedLocally
	return detail, nil
}

func (s *assessmentService) GetResult(ctx context.Context, assessmentID string) (*dto.AssessmentDetailDTO, error) {
	assessment, err := s.repo.FindByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	return s.toDetail(assessment)
}

// GetReport returns the narrative, generating it now when the background run has not stored one yet.
func (s *assessmentService) GetReport(ctx context.Context, assessmentID string) (*dto.ReportDTO, error) {
	assessment, err := s.repo.FindByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment.HasReport() {
		return &dto.ReportDTO{AssessmentID: assessmentID, Status: dto.ReportStatusReady, Report: *assessment.AIReport}, nil
	}

	report, err := s.reports.Enrich(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	return &dto.ReportDTO{AssessmentID: assessmentID, Status: dto.ReportStatusReady, Report: report}, nil
}

func (s *assessmentService) toDetail(a *model.Assessment) (*dto.AssessmentDetailDTO, error) {
	var out dto.AssessmentDetailDTO
	if err := copier.Copy(&out, a); err != nil {
		log.Error().Err(err).Str("assessmentID", a.ID).Msg("Failed to copy Assessment model to AssessmentDetailDTO")
		return nil, fmt.Errorf("error preparing assessment response: %w", err)
	}

	for _, bs := range a.BlockScores.Data().Ordered() {
		out.BlockScores = append(out.BlockScores, dto.BlockScoreDTO{Code: bs.Code, Name: bs.Name, Score: bs.Score})
	}
	out.Diagnostics = s.diagnostics.Diagnose(a)
	out.ShareURL = shareURL(s.cfg.Server.PublicBaseURL, a.ID)
	out.ReportStatus = dto.ReportStatusPending
	if a.HasReport() {
		out.ReportStatus = dto.ReportStatusReady
	}
	return &out, nil
}
