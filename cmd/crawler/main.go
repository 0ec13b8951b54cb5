package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/richardawe/erp-world/db"
	"github.com/richardawe/erp-world/internal/config"
	"github.com/richardawe/erp-world/internal/crawler"
	"github.com/richardawe/erp-world/internal/model"
	"github.com/richardawe/erp-world/internal/repository"
	"github.com/richardawe/erp-world/pkg/fetch"
)

func main() {
	sourceID := flag.Int64("source", 0, "crawl only this source id")
	batchSize := flag.Int("batch", 0, "crawl at most this many sources (0 = all)")
	flag.Parse()

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

	pipeline := crawler.New(
		repository.NewSourceRepository(conn),
		repository.NewArticleRepository(conn),
		fetch.NewWithTimeout(cfg.FetchTimeout),
	)

	report, err := pipeline.Run(crawler.Options{
		BatchSize: *batchSize,
		SourceID:  *sourceID,
	})
	if err != nil {
		log.Fatalf("error running crawl: %v", err)
	}

	var failed int
	for _, result := range report.Results {
		if result.Status != model.CrawlStatusSuccess {
			failed++
		}
	}

	slog.Info("crawl finished",
		"run_id", report.RunID,
		"sources", len(report.Results),
		"failed", failed,
		"new_articles", len(report.NewArticles))
}
