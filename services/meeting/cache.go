package meeting

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"meetslot/models"

	"github.com/go-redis/redis/v8"
)

// ResultCache stores resolved ranges per date and request.
//
// Entries live under a per-date generation. Callers read the generation
// before loading events and pass it to Get and Set; InvalidateDate moves the
// date to a new generation, so a result computed from a stale read is written
// where nobody looks.
type ResultCache interface {
	Generation(ctx context.Context, date string) (int64, error)
	Get(ctx context.Context, date string, gen int64, request models.MeetingRequest) ([]models.TimeRange, bool, error)
	Set(ctx context.Context, date string, gen int64, request models.MeetingRequest, ranges []models.TimeRange) error
	InvalidateDate(ctx context.Context, date string) error
}

type RedisResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisResultCache(client *redis.Client, ttl time.Duration) ResultCache {
	return &RedisResultCache{client: client, ttl: ttl}
}

const (
	cacheKeyPrefix = "meeting:result:"
	genKeyPrefix   = "meeting:gen:"
)

// requestKey is stable for requests with the same attendees in any order.
func requestKey(date string, gen int64, request models.MeetingRequest) (string, error) {
	data, err := json.Marshal(request.Input())
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s%s:%d:%s", cacheKeyPrefix, date, gen, hex.EncodeToString(sum[:16])), nil
}

// Generation returns the current generation of date, 0 if it was never invalidated.
func (c *RedisResultCache) Generation(ctx context.Context, date string) (int64, error) {
	gen, err := c.client.Get(ctx, genKeyPrefix+date).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *RedisResultCache) Get(ctx context.Context, date string, gen int64, request models.MeetingRequest) ([]models.TimeRange, bool, error) {
	key, err := requestKey(date, gen, request)
	if err != nil {
		return nil, false, err
	}
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var ranges []models.TimeRange
	if err := json.Unmarshal(val, &ranges); err != nil {
		return nil, false, err
	}
	return ranges, true, nil
}

func (c *RedisResultCache) Set(ctx context.Context, date string, gen int64, request models.MeetingRequest, ranges []models.TimeRange) error {
	key, err := requestKey(date, gen, request)
	if err != nil {
		return err
	}
	data, err := json.Marshal(ranges)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// InvalidateDate bumps the generation of date and drops the entries cached
// under earlier generations.
func (c *RedisResultCache) InvalidateDate(ctx context.Context, date string) error {
	pipe := c.client.TxPipeline()
	pipe.Incr(ctx, genKeyPrefix+date)
	if c.ttl > 0 {
		// Outlive every entry of the previous generation.
		pipe.Expire(ctx, genKeyPrefix+date, 2*c.ttl+24*time.Hour)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}

	iter := c.client.Scan(ctx, 0, cacheKeyPrefix+date+":*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
