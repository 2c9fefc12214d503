package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/pofit/config"
	"github.com/lshigami/pofit/internal/dto"
	"github.com/lshigami/pofit/internal/repository"
	"github.com/rs/zerolog/log"
)

var ErrDeleteNotConfirmed = errors.New("deletion must be explicitly confirmed")

type AdminAssessmentService interface {
	ListAssessments(ctx context.Context, search string) (*dto.AssessmentListDTO, error)
	DeleteAssessment(ctx context.Context, assessmentID string, confirmed bool) error
	GetShareLink(ctx context.Context, assessmentID string) (*dto.ShareLinkDTO, error)
}

type adminAssessmentService struct {
	repo repository.AssessmentRepository
	cfg  *config.Config
}

func NewAdminAssessmentService(repo repository.AssessmentRepository, cfg *config.Config) AdminAssessmentService {
	return &adminAssessmentService{repo: repo, cfg: cfg}
}

// ListAssessments returns the newest results first, filtered by name or email substring.
func (s *adminAssessmentService) ListAssessments(ctx context.Context, search string) (*dto.AssessmentListDTO, error) {
	all, err := s.repo.FindAll(ctx, "")
	if err != nil {
		log.Error().Err(err).Msg("Failed to list assessments from repository")
		return nil, fmt.Errorf("error fetching assessments: %w", err)
	}

	shown := all
	if strings.TrimSpace(search) != "" {
		shown, err = s.repo.FindAll(ctx, search)
		if err != nil {
			log.Error().Err(err).Str("search", search).Msg("Failed to search assessments")
			return nil, fmt.Errorf("error searching assessments: %w", err)
		}
	}

	sort.SliceStable(shown, func(i, j int) bool {
		return shown[i].CreatedAt.After(shown[j].CreatedAt)
	})

	items := make([]dto.AssessmentSummaryDTO, len(shown))
	total := 0.0
	for i := range shown {
		if err := copier.Copy(&items[i], &shown[i]); err != nil {
			return nil, fmt.Errorf("error preparing assessment list: %w", err)
		}
		items[i].HasReport = shown[i].HasReport()
		total += shown[i].OverallScore
	}

	out := &dto.AssessmentListDTO{
		Total: len(all),
		Shown: len(shown),
		Items: items,
	}
	if len(shown) > 0 {
		out.AverageFitScore = total / float64(len(shown))
	}
	return out, nil
}

func (s *adminAssessmentService) DeleteAssessment(ctx context.Context, assessmentID string, confirmed bool) error {
	if !confirmed {
		return ErrDeleteNotConfirmed
	}
	if err := s.repo.Delete(ctx, assessmentID); err != nil {
		if !errors.Is(err, repository.ErrAssessmentNotFound) {
			log.Error().Err(err).Str("assessmentID", assessmentID).Msg("Failed to delete assessment")
		}
		return err
	}
	log.Info().Str("assessmentID", assessmentID).Msg("Assessment deleted by administrator")
	return nil
}

func (s *adminAssessmentService) GetShareLink(ctx context.Context, assessmentID string) (*dto.ShareLinkDTO, error) {
	if _, err := s.repo.FindByID(ctx, assessmentID); err != nil {
		return nil, err
	}
	return &dto.ShareLinkDTO{
		AssessmentID: assessmentID,
		URL:          shareURL(s.cfg.Server.PublicBaseURL, assessmentID),
	}, nil
}
