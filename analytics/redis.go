// Package analytics records produced occurrences in Redis as time-bucketed
// counters, for consumers that want occurrence-rate dashboards without
// storing individual instants.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Config controls how occurrences are bucketed.
type Config struct {
	Enabled   bool
	Window    time.Duration // bucket width: 1m, 5m or 1h
	Retention time.Duration // TTL applied to each bucket key
}

// Recorder writes occurrence counters to Redis.
type Recorder struct {
	client *redis.Client
}

func NewRecorder(client *redis.Client) *Recorder {
	return &Recorder{client: client}
}

// Record increments the bucket covering one produced occurrence.
func (r *Recorder) Record(ctx context.Context, scheduleID uuid.UUID, occurrence time.Time, config Config) error {
	if !config.Enabled {
		return nil
	}

	key := bucketKey(scheduleID, occurrence, config.Window)

	pipe := r.client.Pipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, config.Retention)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis pipeline: %w", err)
	}
	return nil
}

func bucketKey(scheduleID uuid.UUID, t time.Time, window time.Duration) string {
	return fmt.Sprintf("s:%s:occ:%s", scheduleID, bucket(t, window))
}

func bucket(t time.Time, window time.Duration) string {
	t = t.UTC()
	switch window {
	case 5 * time.Minute:
		return t.Format("2006010215") + fmt.Sprintf("%02d", (t.Minute()/5)*5)
	case time.Hour:
		return t.Format("2006010215")
	default:
		return t.Format("200601021504")
	}
}
