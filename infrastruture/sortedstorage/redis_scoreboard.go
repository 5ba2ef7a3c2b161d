package sortedstorage

import (
	"context"
	"time"

	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// RedisScoreboard keeps best-so-far scores in Redis sorted sets with TTL
// support. Lower scores rank higher.
type RedisScoreboard struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisScoreboard initializes a RedisScoreboard with the provided Redis client and TTL.
func NewRedisScoreboard(client *redis.Client, ttlSeconds int) (i.Scoreboard, error) {
	board := &RedisScoreboard{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	board.locker = redsync.New(pool)
	return board, nil
}

// Record stores score for member under key only when it improves on the
// member's previous score. The read-check-write runs under a mutex so
// concurrent recorders cannot overwrite a better score.
func (rs *RedisScoreboard) Record(ctx context.Context, key string, score float64, member string) error {
	mutex := rs.locker.NewMutex(key + ":record_lock")
	if err := mutex.Lock(); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	prev, err := rs.client.ZScore(ctx, key, member).Result()
	if err == nil && prev <= score {
		return nil
	}
	if err != nil && err != redis.Nil {
		return err
	}

	if _, err := rs.client.ZAdd(ctx, key, redis.Z{Score: score, Member: member}).Result(); err != nil {
		return err
	}

	// Set expiration only if it's not already set
	ttl, err := rs.client.TTL(ctx, key).Result()
	if err == nil && ttl == -1 {
		_ = rs.client.Expire(ctx, key, rs.ttl).Err()
	}

	return nil
}

// Tops retrieves up to `n` members with the lowest scores, best first.
func (rs *RedisScoreboard) Tops(ctx context.Context, key string, n int64) ([]i.ScoreEntry, error) {
	raw, err := rs.client.ZRangeWithScores(ctx, key, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]i.ScoreEntry, 0, len(raw))
	for _, z := range raw {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, i.ScoreEntry{Member: member, Score: z.Score})
	}

	return entries, nil
}
