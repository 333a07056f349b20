package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Pinger is the optional cache capability probed by the diagnostic
// endpoint. A nil Pinger means no cache is configured.
type Pinger interface {
	Ping(ctx context.Context) error
}

type redisPinger struct {
	client *redis.Client
}

// NewRedisPinger wraps a Redis client as a Pinger capability
func NewRedisPinger(client *redis.Client) Pinger {
	return &redisPinger{client: client}
}

func (p *redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}
