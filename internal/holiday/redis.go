package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisSource keeps each year's list in Redis so every API instance shares
// one upstream fetch. Redis failures fall through to the wrapped source.
type RedisSource struct {
	rdb    *redis.Client
	next   Source
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisSource(rdb *redis.Client, next Source, ttl time.Duration, logger *slog.Logger) *RedisSource {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisSource{rdb: rdb, next: next, ttl: ttl, logger: logger}
}

func yearKey(year int) string {
	return "holidays:" + strconv.Itoa(year)
}

func (s *RedisSource) Holidays(ctx context.Context, year int) ([]Holiday, error) {
	key := yearKey(year)

	raw, err := s.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var list []Holiday
		if err := json.Unmarshal(raw, &list); err == nil {
			return list, nil
		}
		s.logger.Warn("discarding corrupt holiday cache entry", "key", key)
	case err != redis.Nil:
		s.logger.Warn("holiday cache read failed", "key", key, "err", err)
	}

	list, err := s.next.Holidays(ctx, year)
	if err != nil {
		return nil, err
	}

	b, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("encode holidays %d: %w", year, err)
	}
	if err := s.rdb.Set(ctx, key, b, s.ttl).Err(); err != nil {
		s.logger.Warn("holiday cache write failed", "key", key, "err", err)
	}

	return list, nil
}
