package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cmlabs-hris/presence-bot-go/internal/domain/report"
)

const ReportKeyPrefix = "reports:tardiness:"

func ReportKey(requesterID int64) string {
	return ReportKeyPrefix + strconv.FormatInt(requesterID, 10)
}

type RedisReportCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisReportCache(rdb *redis.Client, ttl time.Duration) *RedisReportCache {
	return &RedisReportCache{rdb: rdb, ttl: ttl}
}

func (c *RedisReportCache) Put(ctx context.Context, requesterID int64, r report.TardinessReport) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := c.rdb.Set(ctx, ReportKey(requesterID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache report: %w", err)
	}
	return nil
}

func (c *RedisReportCache) Take(ctx context.Context, requesterID int64) (report.TardinessReport, error) {
	payload, err := c.rdb.GetDel(ctx, ReportKey(requesterID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return report.TardinessReport{}, report.ErrReportNotFound
		}
		return report.TardinessReport{}, fmt.Errorf("read cached report: %w", err)
	}

	var r report.TardinessReport
	if err := json.Unmarshal(payload, &r); err != nil {
		return report.TardinessReport{}, fmt.Errorf("unmarshal cached report: %w", err)
	}
	return r, nil
}

// NewRedisClient connects to url and verifies the connection.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}
