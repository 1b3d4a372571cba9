// Package cache memoizes computed report summaries in Redis. The aggregation
// engine itself never caches; this sits in front of it at the service layer,
// keyed by the resolved window and filter set, with a short TTL so dashboards
// stay close to live data.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"retail-pos/internal/report"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "reports:summary"

// ReportCache stores report summaries with a fixed TTL.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a new ReportCache
func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{client: client, ttl: ttl}
}

// SummaryKey builds the cache key for a resolved window and filter set.
func SummaryKey(period report.Period, window report.DateRange, paymentMethod, categoryID, productID string) string {
	return fmt.Sprintf("%s:%s:%d:%d:%s:%s:%s",
		keyPrefix,
		period,
		window.Start.Unix(),
		window.End.Unix(),
		paymentMethod,
		categoryID,
		productID,
	)
}

// GetSummary returns the cached summary for key, or nil on a miss. Redis
// errors other than a miss are returned so callers can decide to recompute.
func (c *ReportCache) GetSummary(ctx context.Context, key string) (*report.Summary, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached summary: %w", err)
	}

	var summary report.Summary
	if err := json.Unmarshal(payload, &summary); err != nil {
		return nil, fmt.Errorf("failed to decode cached summary: %w", err)
	}
	return &summary, nil
}

// SetSummary stores a summary under key with the cache TTL.
func (c *ReportCache) SetSummary(ctx context.Context, key string, summary *report.Summary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache summary: %w", err)
	}
	return nil
}
