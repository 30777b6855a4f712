package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisNotifier publishes notifications to a Redis channel named after the
// topic (e.g. "org_acme"). Push delivery to devices subscribes on the other side.
type RedisNotifier struct {
	client *redis.Client
}

func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{client: client}
}

type notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (n *RedisNotifier) Send(ctx context.Context, topic, title, body string) error {
	payload, err := json.Marshal(notification{Title: title, Body: body})
	if err != nil {
		return err
	}

	if err := n.client.Publish(ctx, topic, payload).Err(); err != nil {
		return fmt.Errorf("redis publish to %s: %w", topic, err)
	}
	return nil
}
