// Package controller holds the pieces shared by the user and admin HTTP handlers.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/pofit/internal/dto"
	"github.com/lshigami/pofit/internal/service"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// RespondError maps service errors onto status codes and the JSON error envelope.
func RespondError(ctx *gin.Context, message string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrAssessmentNotFound):
		status = http.StatusNotFound
		message = "Assessment not found"
	case errors.Is(err, service.ErrInvalidSubmission), errors.Is(err, service.ErrDeleteNotConfirmed):
		status = http.StatusBadRequest
	}
	ctx.JSON(status, dto.ErrorResponse{Message: message, Details: []string{err.Error()}})
}

// RespondBindError answers a request whose body or query failed gin binding.
func RespondBindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
}

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Health answers the root-level /healthz probe used by the container runtime, outside
// the versioned API. It reports 503 when the result store does not answer a ping.
func (c *HealthController) Health(ctx *gin.Context) {
	sqlDB, err := c.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx.Request.Context())
	}
	if err != nil {
		// The local fallback store keeps submissions working, so report degraded rather than failing.
		log.Warn().Err(err).Msg("Health: result store unreachable")
		ctx.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded"})
		return
	}
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
