// Package redis owns the server-side session registry. A single client is
// shared by the session store and the readiness probe; it is opened once at
// startup and a lost connection degrades /health/ready rather than crashing
// request handling.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// pingTimeout bounds the startup connectivity check only. Session lookups on
// the request path carry the request context instead.
const pingTimeout = 5 * time.Second

// Config carries the connection settings sourced from the environment.
type Config struct {
	Addr     string
	Password string
	DB       int
}

func (c Config) options() *redis.Options {
	return &redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	}
}

// Connect opens the client and verifies the server answers a ping before the
// session store starts depending on it.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(cfg.options())

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
