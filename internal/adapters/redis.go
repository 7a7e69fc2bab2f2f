package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"goban/internal/bootstrap"
)

type AdapterRedis struct {
	client *redis.Client
	cfg    *bootstrap.Config
	log    *zap.SugaredLogger
}

func NewAdapterRedis(cfg *bootstrap.Config, log *zap.SugaredLogger) *AdapterRedis {
	return &AdapterRedis{
		cfg: cfg,
		log: log,
	}
}

// Enabled reports whether a Redis address is configured.
func (a *AdapterRedis) Enabled() bool {
	return a.cfg.RedisUrl != ""
}

func (a *AdapterRedis) Init(ctx context.Context) error {
	if !a.Enabled() {
		a.log.Info("Redis is not configured, event publishing disabled")
		return nil
	}

	a.client = redis.NewClient(&redis.Options{
		Addr: a.cfg.RedisUrl,
		DB:   0,
	})

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := a.client.Ping(ctxPing).Err(); err != nil {
		return fmt.Errorf("redis ping %s: %w", a.cfg.RedisUrl, err)
	}

	a.log.Infof("Connected to Redis at %s", a.cfg.RedisUrl)
	return nil
}

// GetClient returns nil when Redis is disabled.
func (a *AdapterRedis) GetClient() *redis.Client {
	return a.client
}

func (a *AdapterRedis) Close(ctx context.Context) error {
	if a.client != nil {
		return a.client.Close()
	}
	return nil
}
