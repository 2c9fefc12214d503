package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/pofit/config"
	"github.com/lshigami/pofit/internal/controller"
	adminctrl "github.com/lshigami/pofit/internal/controller/admin"
	userctrl "github.com/lshigami/pofit/internal/controller/user"
	"github.com/lshigami/pofit/internal/dto"
	"github.com/lshigami/pofit/internal/model"
	"github.com/lshigami/pofit/internal/repository"
	"github.com/lshigami/pofit/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

type stubGenerator struct{}

func (stubGenerator) Generate(context.Context, *model.Assessment) (string, error) {
	return "### 1. EXECUTIVE SUMMARY", nil
}

type testServer struct {
	router  *gin.Engine
	reports service.ReportService
}

func newTestServer(t *testing.T, admin config.Admin) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormLogger.Default.LogMode(gormLogger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Assessment{}))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	cfg := &config.Config{
		Server: config.Server{Port: "0", PublicBaseURL: "https://fit.example.com"},
		Admin:  admin,
	}
	repo := repository.NewFallbackAssessmentRepository(repository.NewAssessmentRepository(db), repository.NewLocalAssessmentStore())
	reports := service.NewReportService(repo, stubGenerator{})
	assessments := service.NewAssessmentService(repo, reports, service.NewDiagnosticService(), cfg)
	adminSvc := service.NewAdminAssessmentService(repo, cfg)

	router := NewGinEngine(cfg)
	RegisterRoutes(router, cfg,
		controller.NewHealthController(db),
		userctrl.NewAssessmentController(assessments),
		adminctrl.NewAdminAssessmentController(adminSvc),
	)
	t.Cleanup(reports.Wait)
	return &testServer{router: router, reports: reports}
}

func (s *testServer) do(t *testing.T, method, path string, body any, auth bool) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth {
		req.SetBasicAuth("admin", "s3cret")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func submission(value int) dto.AssessmentSubmitDTO {
	req := dto.AssessmentSubmitDTO{Name: "Nina", Email: "nina@example.com"}
	for id := 1; id <= 30; id++ {
		req.Answers = append(req.Answers, dto.AnswerDTO{QuestionID: id, Value: value})
	}
	return req
}

var testAdmin = config.Admin{Username: "admin", Password: "s3cret"}

func TestHealth(t *testing.T) {
	s := newTestServer(t, testAdmin)
	w := s.do(t, http.MethodGet, "/healthz", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = s.do(t, http.MethodGet, "/api/v1/healthz", nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code, "health stays outside the versioned API")
}

func TestQuestionnaireRoute(t *testing.T) {
	s := newTestServer(t, testAdmin)
	w := s.do(t, http.MethodGet, "/api/v1/questionnaire", nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	var q dto.QuestionnaireDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &q))
	assert.Equal(t, 30, q.TotalQuestions)
	assert.Len(t, q.Steps, 3)
}

func TestSubmitThenReadResultAndReport(t *testing.T) {
	s := newTestServer(t, testAdmin)

	w := s.do(t, http.MethodPost, "/api/v1/assessments", submission(3), false)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created dto.AssessmentDetailDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.InDelta(t, 60.0, created.OverallScore, 1e-9)
	assert.Equal(t, "Collaborative self-management profile", created.Classification)
	s.reports.Wait()

	w = s.do(t, http.MethodGet, "/api/v1/assessments/"+created.ID, nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	var result dto.AssessmentDetailDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, dto.ReportStatusReady, result.ReportStatus)
	assert.Equal(t, "Team Collaborator", result.Diagnostics.SubQuadrant.Label)

	w = s.do(t, http.MethodGet, "/api/v1/assessments/"+created.ID+"/report", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	var report dto.ReportDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "### 1. EXECUTIVE SUMMARY", report.Report)
}

func TestSubmitValidation(t *testing.T) {
	s := newTestServer(t, testAdmin)

	short := submission(3)
	short.Answers = short.Answers[:10]
	outOfRange := submission(3)
	outOfRange.Answers[0].Value = 7
	badEmail := submission(3)
	badEmail.Email = "not-an-email"
	duplicate := submission(3)
	duplicate.Answers[29].QuestionID = 1

	for name, body := range map[string]dto.AssessmentSubmitDTO{
		"too few answers": short,
		"out of range":    outOfRange,
		"bad email":       badEmail,
		"duplicate id":    duplicate,
	} {
		t.Run(name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/api/v1/assessments", body, false)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			var errResp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
			assert.NotEmpty(t, errResp.Message)
			assert.NotEmpty(t, errResp.Details)
		})
	}
}

func TestUnknownAssessmentIs404(t *testing.T) {
	s := newTestServer(t, testAdmin)
	for _, path := range []string{"/api/v1/assessments/missing", "/api/v1/assessments/missing/report"} {
		w := s.do(t, http.MethodGet, path, nil, false)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

func TestAdminRoutes(t *testing.T) {
	s := newTestServer(t, testAdmin)
	w := s.do(t, http.MethodPost, "/api/v1/assessments", submission(4), false)
	require.Equal(t, http.StatusCreated, w.Code)
	var created dto.AssessmentDetailDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	s.reports.Wait()

	w = s.do(t, http.MethodGet, "/api/v1/admin/assessments", nil, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/admin/assessments?q=NINA", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	var list dto.AssessmentListDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, 1, list.Shown)
	assert.InDelta(t, 80.0, list.AverageFitScore, 1e-9)
	require.Len(t, list.Items, 1)
	assert.True(t, list.Items[0].HasReport)

	w = s.do(t, http.MethodGet, "/api/v1/admin/assessments/"+created.ID+"/share-link", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	var link dto.ShareLinkDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &link))
	assert.Equal(t, "https://fit.example.com/result/"+created.ID, link.URL)

	w = s.do(t, http.MethodDelete, "/api/v1/admin/assessments/"+created.ID, nil, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodDelete, "/api/v1/admin/assessments/"+created.ID+"?confirm=true", nil, true)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/assessments/"+created.ID, nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminRoutesClosedWithoutPassword(t *testing.T) {
	s := newTestServer(t, config.Admin{Username: "admin"})
	w := s.do(t, http.MethodGet, "/api/v1/admin/assessments", nil, true)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
