package api

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/shama2369/trichygold-campaignsc/internal/api/v1"
	"github.com/shama2369/trichygold-campaignsc/internal/config"
	"github.com/shama2369/trichygold-campaignsc/internal/logger"
	"github.com/shama2369/trichygold-campaignsc/internal/rest/middleware"
)

type Handlers struct {
	Health   *v1.HealthHandler
	Tag      *v1.TagHandler
	Campaign *v1.CampaignHandler
	Employee *v1.EmployeeHandler
	User     *v1.UserHandler
	Role     *v1.RoleHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, log *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.CORSMiddleware)
	router.Use(middleware.SentryMiddleware(cfg))
	router.Use(middleware.ErrorHandler())

	router.GET("/health", handlers.Health.Health)

	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	// Tag engine routes
	tags := router.Group("/tags")
	{
		tags.POST("/allocate", handlers.Tag.AllocateTag)
		tags.POST("/reconcile", handlers.Tag.Reconcile)
		tags.GET("/counters", handlers.Tag.ListCounters)
	}

	// Campaign routes
	campaigns := router.Group("/campaigns")
	{
		campaigns.POST("", handlers.Campaign.CreateCampaign)
		campaigns.GET("", handlers.Campaign.ListCampaigns)
		campaigns.GET("/export", handlers.Campaign.ExportCampaigns)
		campaigns.GET("/:id", handlers.Campaign.GetCampaign)
		campaigns.PUT("/:id", handlers.Campaign.UpdateCampaign)
		campaigns.DELETE("/:id", handlers.Campaign.DeleteCampaign)
		campaigns.POST("/:id/images", handlers.Campaign.UploadImage)
		campaigns.GET("/:id/images/*key", handlers.Campaign.GetImage)
	}

	// Employee routes
	employees := router.Group("/employees")
	{
		employees.POST("", handlers.Employee.CreateEmployee)
		employees.GET("", handlers.Employee.ListEmployees)
		employees.GET("/:id", handlers.Employee.GetEmployee)
		employees.PUT("/:id", handlers.Employee.UpdateEmployee)
		employees.DELETE("/:id", handlers.Employee.DeleteEmployee)
	}

	// User routes
	users := router.Group("/users")
	{
		users.POST("", handlers.User.CreateUser)
		users.GET("", handlers.User.ListUsers)
		users.GET("/:id", handlers.User.GetUser)
		users.PUT("/:id", handlers.User.UpdateUser)
		users.DELETE("/:id", handlers.User.DeleteUser)
	}

	// Role routes
	roles := router.Group("/roles")
	{
		roles.POST("", handlers.Role.CreateRole)
		roles.GET("", handlers.Role.ListRoles)
		roles.GET("/:id", handlers.Role.GetRole)
		roles.PUT("/:id", handlers.Role.UpdateRole)
		roles.DELETE("/:id", handlers.Role.DeleteRole)
	}
}
