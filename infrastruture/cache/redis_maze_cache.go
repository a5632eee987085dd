// Package cache keeps generated mazes in Redis and provides the distributed
// lock that keeps two instances from carving the same maze at once.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	mazeKeyFmt = "maze:%s"
	seedKeyFmt = "maze:seed:%s:%dx%d:%d"

	lockExpiry = 10 * time.Second
)

// RedisMazeCache stores JSON-encoded mazes in Redis with a TTL.
type RedisMazeCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisMazeCache initializes a RedisMazeCache with the provided Redis client and TTL.
func NewRedisMazeCache(client *redis.Client, ttlSeconds int) (*RedisMazeCache, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}
	if ttlSeconds <= 0 {
		return nil, fmt.Errorf("cache ttl must be positive, got %d", ttlSeconds)
	}

	cache := &RedisMazeCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// Get returns the maze cached under id.
func (c *RedisMazeCache) Get(ctx context.Context, id uuid.UUID) (*dmn.Maze, error) {
	raw, err := c.client.Get(ctx, fmt.Sprintf(mazeKeyFmt, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, i.ErrCacheMiss
		}
		return nil, err
	}

	var maze dmn.Maze
	if err := json.Unmarshal(raw, &maze); err != nil {
		return nil, fmt.Errorf("decoding cached maze %s: %w", id, err)
	}
	return &maze, nil
}

// BySeed follows the seed index to the cached maze.
func (c *RedisMazeCache) BySeed(ctx context.Context, algorithm string, width, height int, seed int64) (*dmn.Maze, error) {
	idString, err := c.client.Get(ctx, fmt.Sprintf(seedKeyFmt, algorithm, width, height, seed)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, i.ErrCacheMiss
		}
		return nil, err
	}

	id, err := uuid.Parse(idString)
	if err != nil {
		return nil, fmt.Errorf("corrupt seed index: %w", err)
	}
	return c.Get(ctx, id)
}

// Set caches maze under its ID and indexes it by its generation parameters.
func (c *RedisMazeCache) Set(ctx context.Context, maze *dmn.Maze) error {
	raw, err := json.Marshal(maze)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, fmt.Sprintf(mazeKeyFmt, maze.ID), raw, c.ttl).Err(); err != nil {
		return err
	}
	seedKey := fmt.Sprintf(seedKeyFmt, maze.Algorithm, maze.Width, maze.Height, maze.Seed)
	return c.client.Set(ctx, seedKey, maze.ID.String(), c.ttl).Err()
}

// Lock acquires a redsync mutex on key.
func (c *RedisMazeCache) Lock(ctx context.Context, key string) (func(), error) {
	mutex := c.locker.NewMutex(key, redsync.WithExpiry(lockExpiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	return func() {
		_, _ = mutex.Unlock()
	}, nil
}
