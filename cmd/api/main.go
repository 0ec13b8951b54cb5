package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/richardawe/erp-world/db"
	"github.com/richardawe/erp-world/internal/config"
	"github.com/richardawe/erp-world/internal/crawler"
	"github.com/richardawe/erp-world/internal/handler"
	"github.com/richardawe/erp-world/internal/repository"
	"github.com/richardawe/erp-world/pkg/fetch"
)

func main() {

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	conn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer conn.Close()

	sourceRepo := repository.NewSourceRepository(conn)
	articleRepo := repository.NewArticleRepository(conn)

	pipeline := crawler.New(sourceRepo, articleRepo, fetch.NewWithTimeout(cfg.FetchTimeout))

	articleHandler := handler.NewArticleHandler(articleRepo)
	crawlHandler := handler.NewCrawlHandler(pipeline, sourceRepo, cfg.CrawlBatchSize)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	r.GET("/articles", articleHandler.GetFeed)
	r.GET("/sources", crawlHandler.GetSources)
	r.POST("/crawl", crawlHandler.TriggerCrawl)
	r.GET("/health", articleHandler.GetHealth)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
