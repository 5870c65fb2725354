package routes

import (
	"html/template"
	"time"

	"github.com/Bipul-Dubey/placement-dashboard/dashboard-service/handlers"
	"github.com/Bipul-Dubey/placement-dashboard/shared/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Options struct {
	AllowedOrigins []string
	MaxUploadBytes int64
	Templates      *template.Template
}

func SetupRoutes(hm *handlers.HandlerManager, opts Options) *gin.Engine {
	r := gin.Default()
	r.MaxMultipartMemory = opts.MaxUploadBytes

	r.Use(cors.New(corsConfig(opts.AllowedOrigins)))
	r.Use(middleware.RequestID())
	r.Use(middleware.BodyLimit(opts.MaxUploadBytes))

	if opts.Templates != nil {
		r.SetHTMLTemplate(opts.Templates)
	}

	// Dashboard
	r.GET("/", hm.DashboardHandler.Index)
	r.POST("/predict", hm.PredictHandler.Form)
	r.POST("/insights", hm.InsightsHandler.Form)
	r.GET("/report", hm.ReportHandler.Download)

	api := r.Group("/api/v1")
	{
		api.GET("/health", hm.MetaHandler.Health)
		api.GET("/categories", hm.MetaHandler.Categories)
		api.POST("/predict", hm.PredictHandler.Predict)
		api.POST("/insights", hm.InsightsHandler.Insights)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
