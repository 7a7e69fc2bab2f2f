package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"goban/internal/domain"
)

// RedisEventPublisher publishes board events on a Redis pub/sub channel so
// renderers in other processes can follow the game. Nothing is stored.
type RedisEventPublisher struct {
	redis   *redis.Client
	channel string
	log     *zap.SugaredLogger
}

func NewRedisEventPublisher(redis *redis.Client, channel string, log *zap.SugaredLogger) *RedisEventPublisher {
	return &RedisEventPublisher{
		redis:   redis,
		channel: channel,
		log:     log,
	}
}

func (r *RedisEventPublisher) Publish(ctx context.Context, event domain.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	receivers, err := r.redis.Publish(ctx, r.channel, payload).Result()
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", r.channel, err)
	}

	r.log.Debugf("event %s (%s) delivered to %d subscribers", event.ID, event.Type, receivers)
	return nil
}
