package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/pofit/config"
	"github.com/lshigami/pofit/database"
	_ "github.com/lshigami/pofit/docs" // Swagger docs
	"github.com/lshigami/pofit/internal/controller"
	adminctrl "github.com/lshigami/pofit/internal/controller/admin"
	userctrl "github.com/lshigami/pofit/internal/controller/user"
	"github.com/lshigami/pofit/internal/logger"
	"github.com/lshigami/pofit/internal/model"
	"github.com/lshigami/pofit/internal/repository"
	"github.com/lshigami/pofit/internal/server"
	"github.com/lshigami/pofit/internal/service"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Person-Organization Fit API
// @version 1.0
// @description Questionnaire, scoring, diagnostics and narrative reports for the Person-Organization Fit assessment.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.basic BasicAuth
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			server.NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewLocalAssessmentStore,
			func(db *gorm.DB, local *repository.LocalAssessmentStore) repository.AssessmentRepository {
				return repository.NewFallbackAssessmentRepository(repository.NewAssessmentRepository(db), local)
			},
		),

		// Services Layer
		fx.Provide(
			service.NewGeminiReportService,
			service.NewReportService,
			service.NewDiagnosticService,
			service.NewAssessmentService,
			service.NewAdminAssessmentService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewHealthController,
			userctrl.NewAssessmentController,
			adminctrl.NewAdminAssessmentController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(server.RegisterRoutes),
		fx.Invoke(StartServer),
	)

	app.Run()
	log.Info().Msg("Application stopped")
}

// StartServer ties the HTTP server and background report work to the fx lifecycle.
func StartServer(lc fx.Lifecycle, router *gin.Engine, cfg *config.Config, reports service.ReportService) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Person-Organization Fit API starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
			done := make(chan struct{})
			go func() {
				reports.Wait()
				close(done)
			}()
			select {
			case <-done:
				log.Info().Msg("Pending report enrichments finished")
			case <-ctx.Done():
				log.Warn().Msg("Shutdown deadline reached with report enrichments still running")
			}
			return nil
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(&model.Assessment{}); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
