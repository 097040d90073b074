package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prodigylabs/programs-api/internal/config"
	"github.com/prodigylabs/programs-api/internal/database"
	"github.com/prodigylabs/programs-api/internal/handlers"
	"github.com/prodigylabs/programs-api/internal/metrics"
	"github.com/prodigylabs/programs-api/internal/middleware"
	"github.com/prodigylabs/programs-api/internal/repository"
	"github.com/prodigylabs/programs-api/internal/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Register Prometheus collectors
	metrics.MustRegister(prometheus.DefaultRegisterer)

	// Initialize repositories
	db := database.GetDB()
	programRepo := repository.NewProgramRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	userRepo := repository.NewUserRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	completionRepo := repository.NewCompletionRepository(db)

	// Initialize services
	planService := services.NewPlanService(programRepo, activityRepo, progressRepo, completionRepo)
	enrollmentService := services.NewEnrollmentService(userRepo, programRepo, progressRepo)

	// Initialize handlers
	programHandler := handlers.NewProgramHandler(programRepo, activityRepo)
	activityHandler := handlers.NewActivityHandler(activityRepo, programRepo)
	userHandler := handlers.NewUserHandler(userRepo)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentService)
	planHandler := handlers.NewPlanHandler(planService)

	// Initialize Gin router
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Programs API is running",
		})
	})

	// Prometheus endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := r.Group("/api/v1")
	{
		programs := api.Group("/programs")
		{
			programs.POST("/", programHandler.CreateProgram)
			programs.GET("/", programHandler.ListPrograms)
			programs.GET("/:id", programHandler.GetProgram)
			programs.PUT("/:id", programHandler.UpdateProgram)
			programs.DELETE("/:id", programHandler.DeleteProgram)
			programs.GET("/:id/activities", programHandler.ListProgramActivities)
		}

		activities := api.Group("/activities")
		{
			activities.POST("/", activityHandler.CreateActivity)
			activities.GET("/:id", activityHandler.GetActivity)
			activities.PUT("/:id", activityHandler.UpdateActivity)
			activities.DELETE("/:id", activityHandler.DeleteActivity)
		}

		api.POST("/users/", userHandler.CreateUser)
		api.POST("/user-progress/", enrollmentHandler.StartProgram)

		users := api.Group("/users/:user_id")
		{
			users.GET("", userHandler.GetUser)
			users.POST("/complete-activity", planHandler.CompleteActivity)

			userPrograms := users.Group("/programs/:program_id")
			{
				userPrograms.GET("/day-plan", planHandler.GetDayPlan)
				userPrograms.GET("/week-plan", planHandler.GetWeekPlan)
				userPrograms.GET("/progress-summary", planHandler.GetProgressSummary)
				userPrograms.POST("/unenroll", enrollmentHandler.Unenroll)
			}
		}
	}

	// Start server
	log.Printf("Server starting on %s", cfg.ServerAddr)
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
