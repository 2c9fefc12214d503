package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/pofit/internal/controller"
	"github.com/lshigami/pofit/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminAssessmentController struct {
	adminService service.AdminAssessmentService
}

func NewAdminAssessmentController(adminService service.AdminAssessmentService) *AdminAssessmentController {
	return &AdminAssessmentController{adminService: adminService}
}

// ListAssessments godoc
// @Summary (Admin) List assessments
// @Description Newest first, optionally filtered by a case-insensitive substring of name or email. Includes total, shown and average fit score.
// @Tags Admin - Assessments
// @Produce json
// @Security BasicAuth
// @Param q query string false "Search on name or email"
// @Success 200 {object} dto.AssessmentListDTO
// @Failure 401 "Missing or wrong credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/assessments [get]
func (c *AdminAssessmentController) ListAssessments(ctx *gin.Context) {
	search := ctx.Query("q")
	list, err := c.adminService.ListAssessments(ctx.Request.Context(), search)
	if err != nil {
		log.Error().Err(err).Str("search", search).Msg("Admin ListAssessments: Service error")
		controller.RespondError(ctx, "Failed to list assessments", err)
		return
	}
	ctx.JSON(http.StatusOK, list)
}

// DeleteAssessment godoc
// @Summary (Admin) Delete an assessment
// @Description Permanently removes a result. Requires confirm=true.
// @Tags Admin - Assessments
// @Security BasicAuth
// @Param id path string true "Assessment ID"
// @Param confirm query bool true "Must be true"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse "Deletion not confirmed"
// @Failure 401 "Missing or wrong credentials"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/assessments/{id} [delete]
func (c *AdminAssessmentController) DeleteAssessment(ctx *gin.Context) {
	id := ctx.Param("id")
	confirmed, _ := strconv.ParseBool(ctx.DefaultQuery("confirm", "false"))

	if err := c.adminService.DeleteAssessment(ctx.Request.Context(), id, confirmed); err != nil {
		log.Warn().Err(err).Str("assessmentID", id).Msg("Admin DeleteAssessment: Service error")
		controller.RespondError(ctx, "Failed to delete assessment", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetShareLink godoc
// @Summary (Admin) Get the shareable result link
// @Tags Admin - Assessments
// @Produce json
// @Security BasicAuth
// @Param id path string true "Assessment ID"
// @Success 200 {object} dto.ShareLinkDTO
// @Failure 401 "Missing or wrong credentials"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Router /admin/assessments/{id}/share-link [get]
func (c *AdminAssessmentController) GetShareLink(ctx *gin.Context) {
	id := ctx.Param("id")
	link, err := c.adminService.GetShareLink(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, "Failed to build share link", err)
		return
	}
	ctx.JSON(http.StatusOK, link)
}
