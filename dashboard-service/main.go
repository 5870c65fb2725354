package main

import (
	"context"
	"log"
	"time"

	"github.com/Bipul-Dubey/placement-dashboard/dashboard-service/config"
	"github.com/Bipul-Dubey/placement-dashboard/dashboard-service/handlers"
	"github.com/Bipul-Dubey/placement-dashboard/dashboard-service/routes"
	"github.com/Bipul-Dubey/placement-dashboard/dashboard-service/services"
	"github.com/Bipul-Dubey/placement-dashboard/dashboard-service/web"
	"github.com/Bipul-Dubey/placement-dashboard/shared/db"
	"github.com/Bipul-Dubey/placement-dashboard/shared/placement"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// Artifacts are required; there is nothing to serve without them
	artifacts, err := placement.LoadArtifacts(cfg.ArtifactPaths())
	if err != nil {
		log.Fatal("Failed to load model artifacts:", err)
	}
	log.Printf("Loaded classifier with %d trees from %s", artifacts.Classifier().NumTrees(), cfg.ArtifactDir)

	// Snapshot store (optional, charts fall back to the illustrative ratio)
	var snapshots db.SnapshotStore
	database, err := db.NewDB(cfg.DBPath)
	if err != nil {
		log.Printf("Warning: snapshot store unavailable: %v", err)
	} else {
		snapshots = db.NewSnapshotStore(database)
		defer func() {
			if cerr := db.Close(database); cerr != nil {
				log.Printf("Error closing DB connection: %v", cerr)
			}
		}()
	}

	// Report mirror (optional)
	reportOpts := services.ReportOptions{Path: cfg.ReportPath, Compress: true}
	if cfg.MirrorEnabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err := config.NewReportBucketClient(ctx, cfg)
		cancel()
		if err != nil {
			log.Printf("Warning: report mirror unavailable: %v", err)
		} else {
			reportOpts.Mirror = services.NewS3Mirror(client, cfg.ReportBucket)
			log.Printf("Mirroring reports to bucket %s", cfg.ReportBucket)
		}
	}

	// Create service manager with all dependencies
	serviceManager := services.NewServiceManager(services.Options{
		Artifacts:   artifacts,
		Snapshots:   snapshots,
		Report:      reportOpts,
		PreviewRows: cfg.PreviewRows,
	})

	// Create handler manager with service manager
	handlerManager := handlers.NewHandlerManager(serviceManager)

	// Setup routes
	r := routes.SetupRoutes(handlerManager, routes.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		MaxUploadBytes: cfg.MaxUploadBytes(),
		Templates:      web.Templates(),
	})

	log.Printf("Config: artifacts=%s report=%s db=%s mirror=%q", cfg.ArtifactDir, cfg.ReportPath, cfg.DBPath, cfg.ReportBucket)
	log.Printf("🚀 Placement Dashboard starting on port %s", cfg.Port)
	log.Fatal(r.Run(":" + cfg.Port))
}
