package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	mazes map[uuid.UUID]*dmn.Maze
	saves int
	err   error
	sync.Mutex
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{mazes: make(map[uuid.UUID]*dmn.Maze)}
}

func (r *fakeRepo) Save(_ context.Context, m *dmn.Maze) error {
	r.Lock()
	defer r.Unlock()
	if r.err != nil {
		return r.err
	}
	r.saves++
	r.mazes[m.ID] = m
	return nil
}

func (r *fakeRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.Maze, error) {
	r.Lock()
	defer r.Unlock()
	m, ok := r.mazes[id]
	if !ok {
		return nil, i.ErrMazeNotFound
	}
	return m, nil
}

func (r *fakeRepo) BySeed(_ context.Context, algorithm string, width, height int, seed int64) (*dmn.Maze, error) {
	r.Lock()
	defer r.Unlock()
	for _, m := range r.mazes {
		if m.Algorithm == algorithm && m.Width == width && m.Height == height && m.Seed == seed {
			return m, nil
		}
	}
	return nil, i.ErrMazeNotFound
}

type fakeCache struct {
	byID   map[uuid.UUID]*dmn.Maze
	bySeed map[string]*dmn.Maze
	hits   int
	err    error
}

func newFakeCache() *fakeCache {
	return &fakeCache{byID: make(map[uuid.UUID]*dmn.Maze), bySeed: make(map[string]*dmn.Maze)}
}

func seedKey(algorithm string, width, height int, seed int64) string {
	return fmt.Sprintf("%s:%dx%d:%d", algorithm, width, height, seed)
}

func (c *fakeCache) Get(_ context.Context, id uuid.UUID) (*dmn.Maze, error) {
	if c.err != nil {
		return nil, c.err
	}
	m, ok := c.byID[id]
	if !ok {
		return nil, i.ErrCacheMiss
	}
	c.hits++
	return m, nil
}

func (c *fakeCache) BySeed(_ context.Context, algorithm string, width, height int, seed int64) (*dmn.Maze, error) {
	if c.err != nil {
		return nil, c.err
	}
	m, ok := c.bySeed[seedKey(algorithm, width, height, seed)]
	if !ok {
		return nil, i.ErrCacheMiss
	}
	c.hits++
	return m, nil
}

func (c *fakeCache) Set(_ context.Context, m *dmn.Maze) error {
	if c.err != nil {
		return c.err
	}
	c.byID[m.ID] = m
	c.bySeed[seedKey(m.Algorithm, m.Width, m.Height, m.Seed)] = m
	return nil
}

type fakeLocker struct {
	keys   []string
	locked bool
	err    error
	// acquired runs once the lock is held, standing in for whatever the
	// previous holder did before releasing it.
	acquired func()
}

func (l *fakeLocker) Lock(_ context.Context, key string) (func(), error) {
	if l.err != nil {
		return nil, l.err
	}
	l.keys = append(l.keys, key)
	l.locked = true
	if l.acquired != nil {
		l.acquired()
	}
	return func() { l.locked = false }, nil
}

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

func newService(t *testing.T, repo *fakeRepo, cache *fakeCache, locker *fakeLocker) *MazeService {
	t.Helper()
	c := &Config{Repo: repo, Logger: nopLogger{}, MaxDimension: 50}
	if cache != nil {
		c.Cache = cache
	}
	if locker != nil {
		c.Locker = locker
	}
	s, err := NewMazeService(c)
	require.NoError(t, err)
	s.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return s
}

func TestNewMazeService(t *testing.T) {
	_, err := NewMazeService(nil)
	assert.Error(t, err)

	_, err = NewMazeService(&Config{Repo: newFakeRepo()})
	assert.Error(t, err)

	_, err = NewMazeService(&Config{Repo: newFakeRepo(), Logger: nopLogger{}, DefaultAlgorithm: "prim"})
	assert.True(t, errors.Is(err, maze.ErrUnknownAlgorithm))

	s, err := NewMazeService(&Config{Repo: newFakeRepo(), Logger: nopLogger{}})
	require.NoError(t, err)
	assert.Equal(t, defaultAlgorithm, s.defaultAlgorithm)
	assert.Equal(t, defaultMaxDimension, s.maxDimension)
	assert.Equal(t, maze.Algorithms(), s.Algorithms())
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("Generates, validates and stores", func(t *testing.T) {
		repo, cache, locker := newFakeRepo(), newFakeCache(), &fakeLocker{}
		s := newService(t, repo, cache, locker)

		record, err := s.Generate(ctx, i.GenerateRequest{Width: 5, Height: 5, Seed: 99})
		require.NoError(t, err)
		assert.Equal(t, "wilson", record.Algorithm)
		assert.Equal(t, int64(99), record.Seed)
		assert.Len(t, record.Walls, 25)
		assert.Equal(t, 1, repo.saves)
		assert.Contains(t, cache.byID, record.ID)
		assert.Equal(t, []string{"maze:lock:wilson:5x5:99"}, locker.keys)
		assert.False(t, locker.locked)

		m, err := s.Render(record)
		require.NoError(t, err)
		assert.NoError(t, maze.Validate(m))
		assert.Equal(t, 24, m.OpenEdges())
	})

	t.Run("Matches a locally generated maze", func(t *testing.T) {
		s := newService(t, newFakeRepo(), nil, nil)
		record, err := s.Generate(ctx, i.GenerateRequest{Algorithm: "kruskal", Width: 7, Height: 3, Seed: 5})
		require.NoError(t, err)

		local, err := maze.New(7, 3)
		require.NoError(t, err)
		local.Generate(maze.Kruskal{}, maze.NewRand(5))
		assert.Equal(t, local.Bitmap(), record.Walls)
	})

	t.Run("Same seed is served from the cache", func(t *testing.T) {
		repo, cache := newFakeRepo(), newFakeCache()
		s := newService(t, repo, cache, nil)

		first, err := s.Generate(ctx, i.GenerateRequest{Width: 6, Height: 4, Seed: 3})
		require.NoError(t, err)
		second, err := s.Generate(ctx, i.GenerateRequest{Width: 6, Height: 4, Seed: 3})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 1, repo.saves)
		assert.Equal(t, 1, cache.hits)
	})

	t.Run("Same seed is found in the repository without a cache", func(t *testing.T) {
		repo := newFakeRepo()
		s := newService(t, repo, nil, nil)

		first, err := s.Generate(ctx, i.GenerateRequest{Width: 6, Height: 4, Seed: 3})
		require.NoError(t, err)
		second, err := s.Generate(ctx, i.GenerateRequest{Width: 6, Height: 4, Seed: 3})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 1, repo.saves)
	})

	t.Run("Zero seed picks one", func(t *testing.T) {
		s := newService(t, newFakeRepo(), nil, nil)
		s.seeds = func() int64 { return 4242 }
		record, err := s.Generate(ctx, i.GenerateRequest{Width: 3, Height: 3})
		require.NoError(t, err)
		assert.Equal(t, int64(4242), record.Seed)
	})

	t.Run("Rejects bad requests", func(t *testing.T) {
		s := newService(t, newFakeRepo(), nil, nil)

		_, err := s.Generate(ctx, i.GenerateRequest{Width: 0, Height: 3})
		assert.True(t, errors.Is(err, maze.ErrInvalidDimensions))

		_, err = s.Generate(ctx, i.GenerateRequest{Width: 51, Height: 3})
		assert.True(t, errors.Is(err, i.ErrDimensionTooLarge))

		_, err = s.Generate(ctx, i.GenerateRequest{Algorithm: "eller", Width: 3, Height: 3})
		assert.True(t, errors.Is(err, maze.ErrUnknownAlgorithm))
	})

	t.Run("Maze stored while waiting for the lock is reused", func(t *testing.T) {
		repo, cache := newFakeRepo(), newFakeCache()
		stored := &dmn.Maze{
			ID:        uuid.New(),
			Algorithm: "wilson",
			Width:     4,
			Height:    4,
			Seed:      12,
			Walls:     make([]byte, 16),
		}
		locker := &fakeLocker{acquired: func() {
			// Written straight to the map so saves only counts the service's own writes.
			repo.Lock()
			repo.mazes[stored.ID] = stored
			repo.Unlock()
		}}
		s := newService(t, repo, cache, locker)

		record, err := s.Generate(ctx, i.GenerateRequest{Width: 4, Height: 4, Seed: 12})
		require.NoError(t, err)
		assert.Same(t, stored, record)
		assert.Equal(t, 0, repo.saves)
		assert.Len(t, repo.mazes, 1)
		assert.Equal(t, []string{"maze:lock:wilson:4x4:12"}, locker.keys)
		assert.False(t, locker.locked)
		assert.Contains(t, cache.byID, stored.ID)
	})

	t.Run("Lock failure aborts", func(t *testing.T) {
		repo := newFakeRepo()
		s := newService(t, repo, nil, &fakeLocker{err: errors.New("redis down")})
		_, err := s.Generate(ctx, i.GenerateRequest{Width: 3, Height: 3, Seed: 1})
		assert.Error(t, err)
		assert.Equal(t, 0, repo.saves)
	})

	t.Run("Repository failure is returned", func(t *testing.T) {
		repo := newFakeRepo()
		repo.err = errors.New("disk full")
		s := newService(t, repo, nil, nil)
		_, err := s.Generate(ctx, i.GenerateRequest{Width: 3, Height: 3, Seed: 1})
		assert.ErrorIs(t, err, repo.err)
	})

	t.Run("Broken cache does not fail generation", func(t *testing.T) {
		cache := newFakeCache()
		cache.err = errors.New("timeout")
		s := newService(t, newFakeRepo(), cache, nil)
		_, err := s.Generate(ctx, i.GenerateRequest{Width: 3, Height: 3, Seed: 1})
		assert.NoError(t, err)
	})
}

func TestByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Falls back to the repository and caches", func(t *testing.T) {
		repo, cache := newFakeRepo(), newFakeCache()
		s := newService(t, repo, nil, nil)
		record, err := s.Generate(ctx, i.GenerateRequest{Width: 4, Height: 4, Seed: 8})
		require.NoError(t, err)

		s.cache = cache
		got, err := s.ByID(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, record, got)
		assert.Contains(t, cache.byID, record.ID)

		got, err = s.ByID(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, record, got)
		assert.Equal(t, 1, cache.hits)
	})

	t.Run("Unknown ID", func(t *testing.T) {
		s := newService(t, newFakeRepo(), newFakeCache(), nil)
		_, err := s.ByID(ctx, uuid.New())
		assert.True(t, errors.Is(err, i.ErrMazeNotFound))
	})
}
