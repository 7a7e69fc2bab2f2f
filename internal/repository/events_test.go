package repo

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"goban/internal/domain"
)

func TestPublishUnreachableRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:       "127.0.0.1:1",
		MaxRetries: -1,
	})
	defer client.Close()

	p := NewRedisEventPublisher(client, "goban:test", zap.NewNop().Sugar())
	err := p.Publish(context.Background(), domain.Event{ID: "e1", Type: domain.EventMove})
	if err == nil {
		t.Fatal("expected an error without a Redis server")
	}
	if !strings.Contains(err.Error(), "goban:test") {
		t.Errorf("error %q does not name the channel", err)
	}
}

func TestPublishDeliversToSubscriber(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sub := client.Subscribe(ctx, "goban:events")
	defer sub.Close()
	if _, err := sub.Receive(ctx); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	p := NewRedisEventPublisher(client, "goban:events", zap.NewNop().Sugar())
	event := domain.Event{
		ID:        "e42",
		SessionID: "s1",
		Type:      domain.EventMove,
		Result:    &domain.MoveResult{Result: "legal", Captured: 2},
	}
	if err := p.Publish(ctx, event); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	msg, err := sub.ReceiveMessage(ctx)
	if err != nil {
		t.Fatalf("receive: %v", err)
	}
	if msg.Channel != "goban:events" {
		t.Errorf("channel = %s", msg.Channel)
	}
	var got domain.Event
	if err := json.Unmarshal([]byte(msg.Payload), &got); err != nil {
		t.Fatalf("payload %q: %v", msg.Payload, err)
	}
	if got.ID != "e42" || got.SessionID != "s1" || got.Type != domain.EventMove ||
		got.Result == nil || got.Result.Captured != 2 {
		t.Errorf("event = %+v", got)
	}
}
