package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/PawanYadav007s/Design-Records-APP/config"
	"github.com/PawanYadav007s/Design-Records-APP/controllers"
	"github.com/PawanYadav007s/Design-Records-APP/services"
)

func main() {
	logrus.Info("Starting Design Records server...")

	// Load settings (created with defaults on first run)
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(cfg); err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := config.Migrate(db); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}
	logrus.Info("Database migration completed successfully")

	// Initialize services
	exporter := services.InitExporter(db, cfg)
	services.InitRecordService(db, exporter)

	// Bring the snapshot in line with the store before serving anything
	if err := exporter.ExportSnapshot(); err != nil {
		logrus.WithError(err).Error("Startup snapshot export failed")
	}

	router := setupRouter()

	addr := ":" + cfg.Port
	logrus.Infof("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter builds the gin engine with middleware and all API routes
func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/dashboard", controllers.Dashboard)

		v1.POST("/pos", controllers.CreatePO)
		v1.GET("/pos/pending", controllers.ListPendingPOs)
		v1.DELETE("/pos/:po_number", controllers.DeletePO)

		v1.POST("/design-records", controllers.CreateDesignRecord)
		v1.GET("/design-records", controllers.ListAllRecords)
		v1.GET("/design-records/search", controllers.SearchRecords)
		v1.PATCH("/design-records/:id", controllers.UpdateDesignRecord)
		v1.DELETE("/design-records/:id", controllers.DeleteDesignRecord)

		v1.POST("/designers", controllers.CreateDesigner)
		v1.GET("/designers", controllers.ListDesigners)
		v1.PUT("/designers/:id", controllers.RenameDesigner)
		v1.DELETE("/designers/:id", controllers.DeleteDesigner)

		v1.POST("/export", controllers.ExportSnapshot)
		v1.GET("/export/download", controllers.DownloadSnapshot)
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Design Records API is running",
	})
}
