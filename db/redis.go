package db

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// SummarizeQueueKey holds ids of newly ingested articles awaiting the
// external summarization/publishing consumer.
const SummarizeQueueKey = "erpworld:queue:summarize"

func ConnectRedis(redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}

func PushToQueue(client *redis.Client, queueKey string, data string) error {
	return client.LPush(context.Background(), queueKey, data).Err()
}

func QueueLength(client *redis.Client, queueKey string) (int64, error) {
	return client.LLen(context.Background(), queueKey).Result()
}
