package mock

import (
	"context"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// NewRedis starts a miniredis server and returns a client connected to it.
// Callers close the server when done.
func NewRedis() (*redis.Client, *miniredis.Miniredis, error) {
	server, err := miniredis.Run()
	if err != nil {
		return nil, nil, err
	}

	conn := redis.NewClient(
		&redis.Options{
			Addr: server.Addr(),
		},
	)

	return conn, server, nil
}

// ClearRedis flushes every database of the client's server.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
