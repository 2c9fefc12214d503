package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/lshigami/pofit/config"
	"github.com/lshigami/pofit/internal/model"
	"github.com/lshigami/pofit/internal/repository"
)

// memoryRepository is a map-backed AssessmentRepository for service tests.
type memoryRepository struct {
	mu        sync.Mutex
	items     map[string]model.Assessment
	createErr error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{items: map[string]model.Assessment{}}
}

func (r *memoryRepository) Create(_ context.Context, a *model.Assessment) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[a.ID]; ok {
		return fmt.Errorf("duplicate id %s", a.ID)
	}
	r.items[a.ID] = *a
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (*model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", repository.ErrAssessmentNotFound, id)
	}
	return &a, nil
}

func (r *memoryRepository) SetAIReport(_ context.Context, id string, report string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.items[id]
	if !ok {
		return false, fmt.Errorf("%w: %s", repository.ErrAssessmentNotFound, id)
	}
	if a.AIReport != nil {
		return false, nil
	}
	a.AIReport = &report
	r.items[id] = a
	return true, nil
}

func (r *memoryRepository) FindAll(_ context.Context, search string) ([]model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Assessment
	for _, a := range r.items {
		if repository.MatchesSearch(&a, search) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("%w: %s", repository.ErrAssessmentNotFound, id)
	}
	delete(r.items, id)
	return nil
}

// fakeGenerator counts calls and optionally blocks until release is closed.
type fakeGenerator struct {
	calls   atomic.Int32
	text    string
	err     error
	release chan struct{}
}

func (g *fakeGenerator) Generate(_ context.Context, a *model.Assessment) (string, error) {
	g.calls.Add(1)
	if g.release != nil {
		<-g.release
	}
	if g.err != nil {
		return "", g.err
	}
	return g.text, nil
}

var errGeneratorDown = errors.New("quota exceeded")

func testConfig() *config.Config {
	return &config.Config{
		Server: config.Server{Port: "8080", PublicBaseURL: "https://fit.example.com"},
	}
}
