// Package server builds the gin engine and mounts every HTTP route.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/pofit/config"
	"github.com/lshigami/pofit/internal/controller"
	adminctrl "github.com/lshigami/pofit/internal/controller/admin"
	userctrl "github.com/lshigami/pofit/internal/controller/user"
	"github.com/lshigami/pofit/internal/dto"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutes mounts the respondent, admin and health routes.
func RegisterRoutes(
	router *gin.Engine,
	cfg *config.Config,
	healthCtrl *controller.HealthController,
	assessmentCtrl *userctrl.AssessmentController,
	adminCtrl *adminctrl.AdminAssessmentController,
) {
	router.GET("/healthz", healthCtrl.Health)

	userAPIGroup := router.Group("/api/v1")
	{
		userAPIGroup.GET("/questionnaire", assessmentCtrl.GetQuestionnaire)
		userAPIGroup.POST("/assessments", assessmentCtrl.SubmitAssessment)
		userAPIGroup.GET("/assessments/:id", assessmentCtrl.GetResult)
		userAPIGroup.GET("/assessments/:id/report", assessmentCtrl.GetReport)
	}

	adminAPIGroup := router.Group("/api/v1/admin", adminAuth(cfg.Admin))
	{
		adminAPIGroup.GET("/assessments", adminCtrl.ListAssessments)
		adminAPIGroup.DELETE("/assessments/:id", adminCtrl.DeleteAssessment)
		adminAPIGroup.GET("/assessments/:id/share-link", adminCtrl.GetShareLink)
	}
}

// adminAuth guards the admin group with the single configured credential.
// Without a password the admin surface stays closed.
func adminAuth(admin config.Admin) gin.HandlerFunc {
	if admin.Username == "" || admin.Password == "" {
		log.Warn().Msg("ADMIN_PASSWORD is not set. Admin routes are disabled.")
		return func(ctx *gin.Context) {
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: "Admin access is not configured"})
		}
	}
	return gin.BasicAuth(gin.Accounts{admin.Username: admin.Password})
}
