package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ecoswitch/ecoswitch-backend/internal/logger"
	"github.com/ecoswitch/ecoswitch-backend/internal/types"
	"github.com/ecoswitch/ecoswitch-backend/internal/utils"
)

// ScoreCache keeps the current EcoScore per product ref so the read
// surface can skip the database. Best effort: cache errors are logged
// and otherwise ignored.
type ScoreCache interface {
	Get(ctx context.Context, ref types.ProductRef) (*types.EcoScore, bool)
	Set(ctx context.Context, score *types.EcoScore)
	Invalidate(ctx context.Context, ref types.ProductRef)
	Close() error
}

type scoreCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

func NewScoreCache(log *logger.Logger) (ScoreCache, error) {
	addr := strings.TrimSpace(utils.GetEnv("REDIS_ADDR", "", log))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	ttlSeconds := utils.GetEnvAsInt("SCORE_CACHE_TTL_SECONDS", 86400, log)

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &scoreCache{
		log: log.With("client", "ScoreCache"),
		rdb: rdb,
		ttl: time.Duration(ttlSeconds) * time.Second,
	}, nil
}

func cacheKey(ref types.ProductRef) string {
	return "ecoscore:" + ref.Key()
}

func (c *scoreCache) Get(ctx context.Context, ref types.ProductRef) (*types.EcoScore, bool) {
	raw, err := c.rdb.Get(ctx, cacheKey(ref)).Bytes()
	if err != nil {
		if err != goredis.Nil {
			c.log.Warn("score cache get failed", "ref", ref.Key(), "error", err)
		}
		return nil, false
	}
	var score types.EcoScore
	if err := json.Unmarshal(raw, &score); err != nil {
		c.log.Warn("score cache decode failed", "ref", ref.Key(), "error", err)
		return nil, false
	}
	return &score, true
}

func (c *scoreCache) Set(ctx context.Context, score *types.EcoScore) {
	if score == nil {
		return
	}
	raw, err := json.Marshal(score)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, cacheKey(score.Ref()), raw, c.ttl).Err(); err != nil {
		c.log.Warn("score cache set failed", "ref", score.Ref().Key(), "error", err)
	}
}

func (c *scoreCache) Invalidate(ctx context.Context, ref types.ProductRef) {
	if err := c.rdb.Del(ctx, cacheKey(ref)).Err(); err != nil {
		c.log.Warn("score cache invalidate failed", "ref", ref.Key(), "error", err)
	}
}

func (c *scoreCache) Close() error {
	return c.rdb.Close()
}
