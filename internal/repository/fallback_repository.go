package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/lshigami/pofit/internal/model"
	"github.com/rs/zerolog/log"
)

// LocalAssessmentStore is an in-process copy of records the primary store could not accept.
type LocalAssessmentStore struct {
	mu    sync.RWMutex
	items map[string]model.Assessment
}

func NewLocalAssessmentStore() *LocalAssessmentStore {
	return &LocalAssessmentStore{items: make(map[string]model.Assessment)}
}

func (s *LocalAssessmentStore) Put(a *model.Assessment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[a.ID] = cloneAssessment(a)
}

func (s *LocalAssessmentStore) Get(id string) (*model.Assessment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.items[id]
	if !ok {
		return nil, false
	}
	out := cloneAssessment(&a)
	return &out, true
}

func (s *LocalAssessmentStore) SetAIReport(id, report string) (updated bool, found bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.items[id]
	if !ok {
		return false, false
	}
	if a.AIReport != nil {
		return false, true
	}
	a.AIReport = &report
	s.items[id] = a
	return true, true
}

func (s *LocalAssessmentStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.items[id]
	delete(s.items, id)
	return ok
}

func (s *LocalAssessmentStore) List() []model.Assessment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Assessment, 0, len(s.items))
	for _, a := range s.items {
		out = append(out, cloneAssessment(&a))
	}
	return out
}

func cloneAssessment(a *model.Assessment) model.Assessment {
	out := *a
	if a.AIReport != nil {
		report := *a.AIReport
		out.AIReport = &report
	}
	return out
}

type fallbackAssessmentRepository struct {
	primary AssessmentRepository
	local   *LocalAssessmentStore
}

// NewFallbackAssessmentRepository wraps primary so a failed Create still leaves a
// readable copy in local. Reads and report writes consult local when primary misses.
func NewFallbackAssessmentRepository(primary AssessmentRepository, local *LocalAssessmentStore) AssessmentRepository {
	return &fallbackAssessmentRepository{primary: primary, local: local}
}

func (r *fallbackAssessmentRepository) Create(ctx context.Context, assessment *model.Assessment) error {
	err := r.primary.Create(ctx, assessment)
	if err == nil {
		return nil
	}
	log.Warn().Err(err).Str("assessmentID", assessment.ID).Msg("Primary store rejected assessment, keeping local copy")
	r.local.Put(assessment)
	return fmt.Errorf("%w: %v", ErrStoredLocally, err)
}

func (r *fallbackAssessmentRepository) FindByID(ctx context.Context, id string) (*model.Assessment, error) {
	a, err := r.primary.FindByID(ctx, id)
	if err == nil {
		return a, nil
	}
	if local, ok := r.local.Get(id); ok {
		if !errors.Is(err, ErrAssessmentNotFound) {
			log.Warn().Err(err).Str("assessmentID", id).Msg("Primary store read failed, serving local copy")
		}
		return local, nil
	}
	return nil, err
}

func (r *fallbackAssessmentRepository) SetAIReport(ctx context.Context, id string, report string) (bool, error) {
	updated, err := r.primary.SetAIReport(ctx, id, report)
	if err == nil {
		return updated, nil
	}
	if updated, found := r.local.SetAIReport(id, report); found {
		return updated, nil
	}
	return false, err
}

func (r *fallbackAssessmentRepository) FindAll(ctx context.Context, search string) ([]model.Assessment, error) {
	rows, err := r.primary.FindAll(ctx, search)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(rows))
	for _, a := range rows {
		seen[a.ID] = struct{}{}
	}
	for _, a := range r.local.List() {
		if _, ok := seen[a.ID]; ok || !MatchesSearch(&a, search) {
			continue
		}
		rows = append(rows, a)
	}
	return rows, nil
}

func (r *fallbackAssessmentRepository) Delete(ctx context.Context, id string) error {
	removedLocal := r.local.Delete(id)
	err := r.primary.Delete(ctx, id)
	if err == nil || !removedLocal {
		return err
	}
	// The local copy was the record the caller saw; it is gone either way.
	if !errors.Is(err, ErrAssessmentNotFound) {
		log.Warn().Err(err).Str("assessmentID", id).Msg("Primary store delete failed, local copy removed")
	}
	return nil
}
