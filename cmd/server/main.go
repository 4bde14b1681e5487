package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shama2369/trichygold-campaignsc/internal/api"
	v1 "github.com/shama2369/trichygold-campaignsc/internal/api/v1"
	"github.com/shama2369/trichygold-campaignsc/internal/config"
	"github.com/shama2369/trichygold-campaignsc/internal/logger"
	"github.com/shama2369/trichygold-campaignsc/internal/mongodb"
	"github.com/shama2369/trichygold-campaignsc/internal/repository"
	"github.com/shama2369/trichygold-campaignsc/internal/s3"
	"github.com/shama2369/trichygold-campaignsc/internal/sentry"
	"github.com/shama2369/trichygold-campaignsc/internal/service"
	"github.com/shama2369/trichygold-campaignsc/internal/validator"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Monitoring
			sentry.NewSentryService,

			// MongoDB
			mongodb.NewClient,

			// Object storage
			s3.NewService,

			// Repositories
			repository.NewCounterRepository,
			repository.NewCampaignRepository,
			repository.NewEmployeeRepository,
			repository.NewUserRepository,
			repository.NewRoleRepository,

			// Services
			service.NewTagService,
			service.NewCampaignService,
			service.NewReportService,
			service.NewEmployeeService,
			service.NewUserService,
			service.NewRoleService,

			// HTTP
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(
			sentry.RegisterHooks,
			startServer,
		),
	)

	app.Run()
}

func provideHandlers(
	log *logger.Logger,
	tagService service.TagService,
	campaignService service.CampaignService,
	reportService service.ReportService,
	employeeService service.EmployeeService,
	userService service.UserService,
	roleService service.RoleService,
) api.Handlers {
	return api.Handlers{
		Health:   v1.NewHealthHandler(log),
		Tag:      v1.NewTagHandler(tagService, log),
		Campaign: v1.NewCampaignHandler(campaignService, reportService, log),
		Employee: v1.NewEmployeeHandler(employeeService, log),
		User:     v1.NewUserHandler(userService, log),
		Role:     v1.NewRoleHandler(roleService, log),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, log *logger.Logger) *gin.Engine {
	return api.NewRouter(handlers, cfg, log)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	db *mongodb.Client,
	log *logger.Logger,
) {
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infow("starting server", "address", cfg.Server.Address)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down server")
			if err := server.Shutdown(ctx); err != nil {
				return err
			}
			return db.Disconnect(ctx)
		},
	})
}
