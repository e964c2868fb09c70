package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/josesiqueira/tampere-food-intelligence/internal/query"
	"github.com/josesiqueira/tampere-food-intelligence/internal/store"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	csvOutput := os.Getenv("CSV_OUTPUT")
	if csvOutput == "" {
		csvOutput = "menus-async.csv"
	}

	addr := os.Getenv("API_ADDR")
	if addr == "" {
		addr = ":8000"
	}

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── ROUTES ─────────────────────────
	csvStore := store.New(csvOutput)
	service := query.NewService(csvStore)
	handler := query.NewHandler(service)

	handler.RegisterRoutes(r)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Printf("🚀 Menu query API running at http://localhost%s (store=%s)", addr, csvOutput)
	if err := r.Run(addr); err != nil {
		log.Fatal("❌ API failed:", err)
	}
}
