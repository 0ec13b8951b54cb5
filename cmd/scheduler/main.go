package main

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/richardawe/erp-world/db"
	"github.com/richardawe/erp-world/internal/config"
	"github.com/richardawe/erp-world/internal/crawler"
	"github.com/richardawe/erp-world/internal/repository"
	"github.com/richardawe/erp-world/pkg/fetch"
)

// The scheduler runs a bounded crawl batch on a fixed interval and
// hands the ids of newly ingested articles to the external
// summarization/publishing consumer through the redis queue.
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

	queue, err := db.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer queue.Close()

	pipeline := crawler.New(
		repository.NewSourceRepository(conn),
		repository.NewArticleRepository(conn),
		fetch.NewWithTimeout(cfg.FetchTimeout),
	)

	slog.Info("scheduler started", "interval", cfg.CrawlInterval.String(), "batch_size", cfg.CrawlBatchSize)

	runCycle(pipeline, queue, cfg.CrawlBatchSize)

	ticker := time.NewTicker(cfg.CrawlInterval)
	defer ticker.Stop()

	for range ticker.C {
		runCycle(pipeline, queue, cfg.CrawlBatchSize)
	}
}

func runCycle(pipeline *crawler.Pipeline, queue *redis.Client, batchSize int) {
	report, err := pipeline.Run(crawler.Options{BatchSize: batchSize})
	if err != nil {
		slog.Error("crawl cycle failed", "error", err)
		return
	}

	var queued int
	for _, item := range report.NewArticles {
		err := db.PushToQueue(queue, db.SummarizeQueueKey, strconv.FormatInt(item.ID, 10))
		if err != nil {
			slog.Error("error pushing to summarize queue", "error", err, "article_id", item.ID)
			continue
		}
		queued++
	}

	depth, err := db.QueueLength(queue, db.SummarizeQueueKey)
	if err != nil {
		slog.Warn("error reading summarize queue length", "error", err)
	}

	slog.Info("crawl cycle complete",
		"run_id", report.RunID,
		"sources", len(report.Results),
		"new_articles", len(report.NewArticles),
		"queued", queued,
		"queue_depth", depth)
}
