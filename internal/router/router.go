package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Rajan-007/Food-Recommendation-AI/config"
	"github.com/Rajan-007/Food-Recommendation-AI/internal/analyze"
	"github.com/Rajan-007/Food-Recommendation-AI/internal/middleware"
)

// New builds the gin engine with all middleware and routes wired.
func New(cfg *config.Config, analyzeHandler *analyze.Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(gin.Logger())
	r.Use(analyze.Recovery(cfg.Server.Environment == "production"))
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/analyze", analyzeHandler.Analyze)
		api.GET("/analyze", analyzeHandler.MethodNotAllowed)
	}

	return r
}
