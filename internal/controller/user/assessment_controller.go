package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/pofit/internal/controller"
	"github.com/lshigami/pofit/internal/dto"
	"github.com/lshigami/pofit/internal/service"
	"github.com/rs/zerolog/log"
)

type AssessmentController struct {
	assessmentService service.AssessmentService
}

func NewAssessmentController(assessmentService service.AssessmentService) *AssessmentController {
	return &AssessmentController{assessmentService: assessmentService}
}

// GetQuestionnaire godoc
// @Summary Get the questionnaire
// @Description Returns the 30 Likert questions split in 3 steps of 10, plus the answer scale.
// @Tags Assessments
// @Produce json
// @Success 200 {object} dto.QuestionnaireDTO
// @Router /questionnaire [get]
func (c *AssessmentController) GetQuestionnaire(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.assessmentService.GetQuestionnaire())
}

// SubmitAssessment godoc
// @Summary Submit a completed questionnaire
// @Description Scores the 30 answers, stores the result and starts narrative report generation in the background.
// @Tags Assessments
// @Accept json
// @Produce json
// @Param submission body dto.AssessmentSubmitDTO true "Name, email and exactly 30 answers"
// @Success 201 {object} dto.AssessmentDetailDTO "Scored result; report_status is pending until the narrative is stored"
// @Failure 400 {object} dto.ErrorResponse "Incomplete, duplicated or out-of-range answers"
// @Failure 500 {object} dto.ErrorResponse "Result could not be stored"
// @Router /assessments [post]
func (c *AssessmentController) SubmitAssessment(ctx *gin.Context) {
	var req dto.AssessmentSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAssessment: Failed to bind JSON")
		controller.RespondBindError(ctx, err)
		return
	}

	detail, err := c.assessmentService.Submit(ctx.Request.Context(), req)
	if err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("SubmitAssessment: Service error")
		controller.RespondError(ctx, "Failed to submit assessment", err)
		return
	}
	ctx.JSON(http.StatusCreated, detail)
}

// GetResult godoc
// @Summary Get an assessment result
// @Description Returns scores, diagnostics, sub-quadrant and report status for a stored assessment.
// @Tags Assessments
// @Produce json
// @Param id path string true "Assessment ID"
// @Success 200 {object} dto.AssessmentDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments/{id} [get]
func (c *AssessmentController) GetResult(ctx *gin.Context) {
	id := ctx.Param("id")
	detail, err := c.assessmentService.GetResult(ctx.Request.Context(), id)
	if err != nil {
		log.Warn().Err(err).Str("assessmentID", id).Msg("GetResult: Service error")
		controller.RespondError(ctx, "Failed to load assessment", err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// GetReport godoc
// @Summary Get the narrative report
// @Description Returns the stored narrative report, generating it first when it is still missing.
// @Tags Assessments
// @Produce json
// @Param id path string true "Assessment ID"
// @Success 200 {object} dto.ReportDTO
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments/{id}/report [get]
func (c *AssessmentController) GetReport(ctx *gin.Context) {
	id := ctx.Param("id")
	report, err := c.assessmentService.GetReport(ctx.Request.Context(), id)
	if err != nil {
		log.Warn().Err(err).Str("assessmentID", id).Msg("GetReport: Service error")
		controller.RespondError(ctx, "Failed to load report", err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}
