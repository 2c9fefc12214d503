package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/lshigami/pofit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAssessment(t *testing.T, repo *memoryRepository, id string) *model.Assessment {
	t.Helper()
	a := &model.Assessment{
		ID:             id,
		Name:           "Nina",
		Email:          "nina@example.com",
		IPA:            4.2,
		AxisX:          3.4,
		AxisY:          2.1,
		OverallScore:   70,
		Classification: "Independent self-management profile",
		CreatedAt:      time.Now().UTC(),
	}
	require.NoError(t, repo.Create(context.Background(), a))
	return a
}

func TestReportService_EnrichIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepository()
	gen := &fakeGenerator{text: "## Narrative"}
	svc := NewReportService(repo, gen)
	seedAssessment(t, repo, "a1")

	report, err := svc.Enrich(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "## Narrative", report)

	report, err = svc.Enrich(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "## Narrative", report)
	assert.EqualValues(t, 1, gen.calls.Load())

	stored, err := repo.FindByID(ctx, "a1")
	require.NoError(t, err)
	require.NotNil(t, stored.AIReport)
	assert.Equal(t, "## Narrative", *stored.AIReport)
}

func TestReportService_SkipsGeneratorWhenReportPresent(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepository()
	gen := &fakeGenerator{text: "new"}
	svc := NewReportService(repo, gen)
	seedAssessment(t, repo, "a1")
	_, err := repo.SetAIReport(ctx, "a1", "existing")
	require.NoError(t, err)

	report, err := svc.Enrich(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "existing", report)
	assert.EqualValues(t, 0, gen.calls.Load())
}

func TestReportService_FallbackOnFailure(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeGenerator
	}{
		{"generator error", &fakeGenerator{err: errGeneratorDown}},
		{"empty text", &fakeGenerator{text: "  \n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := newMemoryRepository()
			svc := NewReportService(repo, tt.gen)
			seedAssessment(t, repo, "a1")

			report, err := svc.Enrich(ctx, "a1")
			require.NoError(t, err)
			assert.Equal(t, ReportUnavailableMessage, report)

			// Not retried on the next view.
			_, err = svc.Enrich(ctx, "a1")
			require.NoError(t, err)
			assert.EqualValues(t, 1, tt.gen.calls.Load())
		})
	}
}

func TestReportService_MissingAssessment(t *testing.T) {
	gen := &fakeGenerator{text: "x"}
	svc := NewReportService(newMemoryRepository(), gen)

	_, err := svc.Enrich(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAssessmentNotFound)
	assert.EqualValues(t, 0, gen.calls.Load())
}

func TestReportService_ConcurrentEnrichCallsGeneratorOnce(t *testing.T) {
	repo := newMemoryRepository()
	gen := &fakeGenerator{text: "shared", release: make(chan struct{})}
	svc := NewReportService(repo, gen)
	seedAssessment(t, repo, "a1")

	const callers = 8
	results := make([]string, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := svc.Enrich(context.Background(), "a1")
			assert.NoError(t, err)
			results[i] = r
		}(i)
	}

	require.Eventually(t, func() bool { return gen.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	close(gen.release)
	wg.Wait()

	assert.EqualValues(t, 1, gen.calls.Load())
	for _, r := range results {
		assert.Equal(t, "shared", r)
	}
}

func TestReportService_EnrichAsyncAndWait(t *testing.T) {
	repo := newMemoryRepository()
	gen := &fakeGenerator{text: "async"}
	svc := NewReportService(repo, gen)
	seedAssessment(t, repo, "a1")

	svc.EnrichAsync("a1")
	svc.EnrichAsync("missing")
	svc.Wait()

	stored, err := repo.FindByID(context.Background(), "a1")
	require.NoError(t, err)
	require.NotNil(t, stored.AIReport)
	assert.Equal(t, "async", *stored.AIReport)
	assert.EqualValues(t, 1, gen.calls.Load())
}

func TestReportService_CanceledRequestContextStillCompletes(t *testing.T) {
	repo := newMemoryRepository()
	gen := &fakeGenerator{text: "done"}
	svc := NewReportService(repo, gen)
	seedAssessment(t, repo, "a1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := svc.Enrich(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "done", report)
}
