package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Rajan-007/Food-Recommendation-AI/config"
	"github.com/Rajan-007/Food-Recommendation-AI/internal/analyze"
	"github.com/Rajan-007/Food-Recommendation-AI/internal/llm"
	"github.com/Rajan-007/Food-Recommendation-AI/internal/ocr"
	"github.com/Rajan-007/Food-Recommendation-AI/internal/ratelimit"
	"github.com/Rajan-007/Food-Recommendation-AI/internal/router"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ config: ", err)
	}

	if cfg.Groq.APIKey == "" {
		log.Println("⚠️  MENUSCAN_GROQ_API_KEY not set; /api/analyze will answer 503 until it is configured")
	}

	// ───────────────────────── DEPENDENCIES ─────────────────────────
	limiter := ratelimit.NewMemoryStore(cfg.RateLimit.Max, cfg.RateLimit.Window)

	engine := ocr.NewTesseractEngine(cfg.OCR.Languages...)

	llmClient := llm.NewGroqClient(llm.Config{
		APIKey:         cfg.Groq.APIKey,
		Model:          cfg.Groq.Model,
		BaseURL:        cfg.Groq.BaseURL,
		Timeout:        cfg.Groq.Timeout,
		MaxPromptChars: cfg.Groq.MaxPromptChars,
	})

	handler := analyze.NewHandler(cfg, limiter, engine, llmClient)

	// ───────────────────────── START ─────────────────────────
	r := router.New(cfg, handler)

	log.Printf("🚀 API running at http://localhost:%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
