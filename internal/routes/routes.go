package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/globalreach-edu/consultancy-api/internal/appointment"
	"github.com/globalreach-edu/consultancy-api/internal/audit"
	"github.com/globalreach-edu/consultancy-api/internal/cache"
	"github.com/globalreach-edu/consultancy-api/internal/catalog"
	"github.com/globalreach-edu/consultancy-api/internal/config"
	"github.com/globalreach-edu/consultancy-api/internal/dashboard"
	"github.com/globalreach-edu/consultancy-api/internal/handlers"
	"github.com/globalreach-edu/consultancy-api/internal/media"
	"github.com/globalreach-edu/consultancy-api/internal/middleware"
	"github.com/globalreach-edu/consultancy-api/internal/models"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, storage media.Storage) {

	// ------------------------------
	// Infra (singletons)
	// ------------------------------
	lifecycle := media.NewLifecycle(storage)

	classStore := catalog.NewStore[models.Class, *models.Class](db, lifecycle, "level")
	programStore := catalog.NewStore[models.Program, *models.Program](db, lifecycle, "category")
	workflow := appointment.NewWorkflow(db, cfg.StrictAppointmentStatus)

	auditDispatcher := audit.NewDispatcher(audit.New(db))
	snapshotCache := cache.New(cfg.RedisURL)

	// ------------------------------
	// Handlers
	// ------------------------------
	authHandler := handlers.NewAuthHandler(db, cfg)
	classHandler := handlers.NewClassHandler(classStore, storage, auditDispatcher)
	programHandler := handlers.NewProgramHandler(programStore, storage, auditDispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(workflow, auditDispatcher)
	enquiryHandler := handlers.NewEnquiryHandler(db)
	settingsHandler := handlers.NewSettingsHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(dashboard.NewAggregator(db), snapshotCache)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	api := r.Group("/api")
	{
		// ------------------------------
		// Public
		// ------------------------------
		api.GET("/classes", classHandler.List)
		api.GET("/classes/:slug", classHandler.GetBySlug)
		api.GET("/programs", programHandler.List)
		api.GET("/programs/:slug", programHandler.GetBySlug)

		api.POST("/appointments", appointmentHandler.Submit)
		api.POST("/enquiries", enquiryHandler.Submit)
		api.GET("/settings", settingsHandler.Get)

		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// Admin
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", authHandler.Me)

			secured.POST("/classes", classHandler.Create)
			secured.PUT("/classes/:id", classHandler.Update)
			secured.DELETE("/classes/:id", classHandler.Delete)

			secured.POST("/programs", programHandler.Create)
			secured.PUT("/programs/:id", programHandler.Update)
			secured.DELETE("/programs/:id", programHandler.Delete)

			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/appointments/:id/status", appointmentHandler.SetStatus)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.GET("/enquiries", enquiryHandler.List)
			secured.PATCH("/enquiries/:id/status", enquiryHandler.SetStatus)
			secured.DELETE("/enquiries/:id", enquiryHandler.Delete)

			secured.PUT("/settings", settingsHandler.Update)

			secured.GET("/partner/dashboard", dashboardHandler.Stats)
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
