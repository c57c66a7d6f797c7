package main

import (
	"context"
	"fmt"
	"os"

	redisclient "github.com/aquabase/wellreg-backend/internal/clients/redis"
	"github.com/aquabase/wellreg-backend/internal/data/db"
	"github.com/aquabase/wellreg-backend/internal/data/repos"
	"github.com/aquabase/wellreg-backend/internal/http/handlers"
	"github.com/aquabase/wellreg-backend/internal/http/middleware"
	"github.com/aquabase/wellreg-backend/internal/platform/logger"
	"github.com/aquabase/wellreg-backend/internal/server"
	"github.com/aquabase/wellreg-backend/internal/services"
	"github.com/aquabase/wellreg-backend/internal/stacking"
	"github.com/aquabase/wellreg-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	port := utils.GetEnv("PORT", "8080", log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	submissionRepo := repos.NewSubmissionRepo(thePG, log)
	wellRepo := repos.NewWellRepo(thePG, log)
	codeRepo := repos.NewCodeRepo(thePG, log)
	personRepo := repos.NewPersonRepo(thePG, log)
	orgRepo := repos.NewOrganizationRepo(thePG, log)
	stackingRepo := repos.NewStackingRepo(thePG, submissionRepo, wellRepo, log)

	if err := codeRepo.SeedActivityCodes(context.Background(), nil); err != nil {
		log.Warn("Activity code seed failed", "error", err)
	}

	// Redis (optional; code tables fall back to postgres without it)
	var cache redisclient.Cache
	if os.Getenv("REDIS_ADDR") != "" {
		cache, err = redisclient.NewCache(log)
		if err != nil {
			log.Warn("Could not init redis cache", "error", err)
			cache = nil
		}
	}

	// Services
	log.Info("Setting up Services from main...")
	stacker := stacking.NewStacker(stackingRepo, log)
	submissionService := services.NewSubmissionService(thePG, log, submissionRepo, stacker)
	wellService := services.NewWellService(thePG, log, wellRepo)
	codeService := services.NewCodeService(thePG, log, codeRepo, cache)
	registryService := services.NewRegistryService(thePG, log, personRepo, orgRepo)

	// Handlers + middleware
	authMiddleware := middleware.NewAuthMiddleware(log, jwtSecretKey)
	submissionHandler := handlers.NewSubmissionHandler(log, submissionService)
	wellHandler := handlers.NewWellHandler(log, wellService, submissionService)
	codeHandler := handlers.NewCodeHandler(log, codeService)
	registryHandler := handlers.NewRegistryHandler(log, registryService)

	// Router
	router := server.NewRouter(server.RouterConfig{
		Log:               log,
		AuthMiddleware:    authMiddleware,
		SubmissionHandler: submissionHandler,
		WellHandler:       wellHandler,
		CodeHandler:       codeHandler,
		RegistryHandler:   registryHandler,
	})

	log.Info("Starting server", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server exited", "error", err)
		os.Exit(1)
	}
}
