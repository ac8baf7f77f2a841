package routes

import (
	"prayer-roster-backend/internal/api/handlers"
	"prayer-roster-backend/internal/api/middleware"
	"prayer-roster-backend/internal/config"
	"prayer-roster-backend/internal/repository"
	"prayer-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(registry)

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(metrics.Handler())

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	store := repository.NewStore(db)
	settings := service.SettingsFromConfig(cfg)

	// Initialize services
	personService := service.NewPersonService(store, validator)
	teamService := service.NewTeamService(store, validator)
	slotService := service.NewSlotService(store, validator, settings)
	assignmentService := service.NewAssignmentService(store, validator)
	exportService := service.NewExportService(store, settings)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, Version)
	personHandler := handlers.NewPersonHandler(personService)
	teamHandler := handlers.NewTeamHandler(teamService)
	slotHandler := handlers.NewSlotHandler(slotService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	exportHandler := handlers.NewExportHandler(exportService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		people := v1.Group("/people")
		{
			people.GET("", personHandler.ListPeople)
			people.POST("", personHandler.CreatePerson)
			people.GET("/:id", personHandler.GetPerson)
			people.PUT("/:id", personHandler.UpdatePerson)
			people.DELETE("/:id", personHandler.DeletePerson)
			people.PUT("/:id/teams", personHandler.SetPersonTeams)
		}

		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.POST("/initialize", teamHandler.InitializeTeams)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
		}

		slots := v1.Group("/slots")
		{
			slots.GET("", slotHandler.ListSlots)
			slots.POST("", slotHandler.CreateSlot)
			slots.POST("/initialize", slotHandler.InitializeSlots)
			slots.GET("/statistics", slotHandler.GetStatistics)
			slots.GET("/view", slotHandler.ViewRoster)
			slots.GET("/export-pdf", exportHandler.ExportPDF)
			slots.GET("/export-excel", exportHandler.ExportExcel)
			slots.GET("/export-csv", exportHandler.ExportCSV)
			slots.GET("/export-text", exportHandler.ExportText)
			slots.GET("/:id", slotHandler.GetSlot)
			slots.PUT("/:id", slotHandler.UpdateSlot)
			slots.DELETE("/:id", slotHandler.DeleteSlot)

			assignments := slots.Group("/:id/assignments")
			{
				assignments.GET("", assignmentHandler.ListAssignments)
				assignments.POST("", assignmentHandler.AddAssignment)
				assignments.PUT("/role", assignmentHandler.ReplaceRole)
				assignments.DELETE("/:person_id/:role", assignmentHandler.RemoveAssignment)
			}
		}
	}

	return router
}
