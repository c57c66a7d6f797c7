package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/aquabase/wellreg-backend/internal/http/handlers"
	"github.com/aquabase/wellreg-backend/internal/http/middleware"
	"github.com/aquabase/wellreg-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log               *logger.Logger
	AuthMiddleware    *middleware.AuthMiddleware
	SubmissionHandler *handlers.SubmissionHandler
	WellHandler       *handlers.WellHandler
	CodeHandler       *handlers.CodeHandler
	RegistryHandler   *handlers.RegistryHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Log))

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	api := router.Group("/api")
	{
		api.GET("/codes", cfg.CodeHandler.ListCodes)
		api.GET("/wells", cfg.WellHandler.SearchWells)
		api.GET("/wells/:well_tag_number", cfg.WellHandler.GetWell)
		api.GET("/wells/:well_tag_number/submissions", cfg.WellHandler.ListSubmissions)
		api.GET("/registries/persons", cfg.RegistryHandler.SearchPersons)
		api.GET("/registries/persons/:person_guid", cfg.RegistryHandler.GetPerson)
		api.GET("/registries/organizations", cfg.RegistryHandler.ListOrganizations)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Filing
	protected.POST("/submissions", cfg.SubmissionHandler.CreateSubmission)
	protected.GET("/submissions", cfg.SubmissionHandler.ListRecent)
	protected.GET("/submissions/:filing_number", cfg.SubmissionHandler.GetSubmission)
	// Registry maintenance
	staff := protected.Group("/")
	staff.Use(cfg.AuthMiddleware.RequireStaff())
	staff.POST("/registries/persons", cfg.RegistryHandler.CreatePerson)
	staff.POST("/registries/organizations", cfg.RegistryHandler.CreateOrganization)

	return router
}
