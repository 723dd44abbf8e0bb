package redis

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

// Config holds the connection settings for the Redis server.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// Redis represents the type to interact with the Redis key-value store.
type Redis struct {
	client *goredis.Client
	newID  func() string
}

// New creates a new Redis store and verifies the connection with a PING.
func New(ctx context.Context, c Config) (*Redis, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "ping redis")
	}
	return NewWithClient(client), nil
}

// NewWithClient wraps an existing go-redis client. The caller keeps ownership
// of the client's connection pool.
func NewWithClient(client *goredis.Client) *Redis {
	return &Redis{client: client, newID: uuid.NewString}
}

// Close releases the underlying connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}
