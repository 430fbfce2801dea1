// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/phixforge/phixforge-backend/internal/config"
	"github.com/phixforge/phixforge-backend/internal/handlers"
	"github.com/phixforge/phixforge-backend/internal/middleware"
	"github.com/phixforge/phixforge-backend/internal/models"
	"github.com/phixforge/phixforge-backend/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	proposalService := services.NewProposalService(db)
	statisticsService := services.NewStatisticsService(services.NewGormProposalSource(db))
	snapshotService := services.NewSnapshotService(db)
	reportService := services.NewReportService(db, proposalService, cfg.Export)

	// Initialize handlers
	proposalHandler := handlers.NewProposalHandler(proposalService, reportService)
	statisticsHandler := handlers.NewStatisticsHandler(statisticsService)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Proposal routes
		proposals := v1.Group("/proposals")
		{
			proposals.GET("", proposalHandler.GetProposals)
			proposals.POST("", proposalHandler.CreateProposal)
			proposals.GET("/:id", proposalHandler.GetProposal)
			proposals.PUT("/:id", proposalHandler.UpdateProposal)
			proposals.DELETE("/:id", proposalHandler.DeleteProposal)
			proposals.GET("/:id/budget", proposalHandler.GetProposalBudget)
			proposals.GET("/:id/timeline", proposalHandler.GetProposalTimeline)
			proposals.GET("/:id/report", proposalHandler.GetProposalReport)
		}

		// Statistics routes
		statistics := v1.Group("/statistics")
		{
			statistics.GET("", statisticsHandler.GetDashboard)
			statistics.GET("/filters", statisticsHandler.GetFilters)
		}

		// Reusable-data collections
		registerCollection[models.Project](v1, db, "projects", "Project", "name")
		registerCollection[models.Process](v1, db, "processes", "Process", "name")
		registerCollection[models.Publication](v1, db, "publications", "Publication", "title")
		registerCollection[models.Infrastructure](v1, db, "infrastructure", "Infrastructure", "name")
		registerCollection[models.Person](v1, db, "people", "Person", "last_name")
		registerCollection[models.Organization](v1, db, "organizations", "Organization", "legal_name")
		registerCollection[models.PersonnelInvolvement](v1, db, "personnel-involvement", "Personnel involvement", "created_at")
		registerCollection[models.Exploitation](v1, db, "exploitation", "Exploitation", "name")
		registerCollection[models.CompanyDescription](v1, db, "company-description", "Company description", "created_at")
		registerCollection[models.CustomProgramme](v1, db, "programmes/custom", "Custom programme", "name")

		// Whole-store snapshot export/import
		v1.GET("/export", snapshotHandler.Export)
		v1.POST("/import", middleware.ImportRateLimit(), snapshotHandler.Import)
	}

	return r
}

func registerCollection[T any](v1 *gin.RouterGroup, db *gorm.DB, path, name, sortField string) {
	service := services.NewCollectionService[T](db, sortField)
	handler := handlers.NewCollectionHandler(service, name)
	handler.Register(v1.Group("/" + path))
}
