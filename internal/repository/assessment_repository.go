package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lshigami/pofit/internal/model"
	"gorm.io/gorm"
)

var (
	ErrAssessmentNotFound = errors.New("assessment not found")
	// ErrStoredLocally means the primary store rejected the write and only the
	// in-process fallback copy holds the record.
	ErrStoredLocally = errors.New("assessment kept in local fallback store only")
)

type AssessmentRepository interface {
	Create(ctx context.Context, assessment *model.Assessment) error
	FindByID(ctx context.Context, id string) (*model.Assessment, error)
	// SetAIReport writes the narrative only when none is stored yet.
	// It returns false when a report was already present.
	SetAIReport(ctx context.Context, id string, report string) (bool, error)
	// FindAll returns every assessment whose name or email contains search
	// (case-insensitive). An empty search matches all rows. No ordering is applied.
	FindAll(ctx context.Context, search string) ([]model.Assessment, error)
	Delete(ctx context.Context, id string) error
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(ctx context.Context, assessment *model.Assessment) error {
	return r.db.WithContext(ctx).Create(assessment).Error
}

func (r *assessmentRepository) FindByID(ctx context.Context, id string) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&assessment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrAssessmentNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) SetAIReport(ctx context.Context, id string, report string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Assessment{}).
		Where("id = ? AND ai_report IS NULL", id).
		Update("ai_report", report)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	// Nothing updated: either the row is missing or the report was already written.
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Assessment{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	if count == 0 {
		return false, fmt.Errorf("%w: %s", ErrAssessmentNotFound, id)
	}
	return false, nil
}

func (r *assessmentRepository) FindAll(ctx context.Context, search string) ([]model.Assessment, error) {
	var assessments []model.Assessment
	query := r.db.WithContext(ctx).Model(&model.Assessment{})
	search = strings.TrimSpace(search)
	if search == "" {
		err := query.Find(&assessments).Error
		return assessments, err
	}

	// SQLite LOWER and LIKE only fold ASCII, so accented names are matched in Go.
	if r.db.Dialector.Name() == "sqlite" {
		if err := query.Find(&assessments).Error; err != nil {
			return nil, err
		}
		matched := assessments[:0]
		for i := range assessments {
			if MatchesSearch(&assessments[i], search) {
				matched = append(matched, assessments[i])
			}
		}
		return matched, nil
	}

	pattern := "%" + escapeLike(search) + "%"
	err := query.Where(`name ILIKE ? ESCAPE '\' OR email ILIKE ? ESCAPE '\'`, pattern, pattern).Find(&assessments).Error
	return assessments, err
}

func (r *assessmentRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Assessment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrAssessmentNotFound, id)
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// MatchesSearch applies the FindAll filter to an in-memory record.
func MatchesSearch(a *model.Assessment, search string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(a.Name), search) ||
		strings.Contains(strings.ToLower(a.Email), search)
}
