package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxDimension = 200
	defaultAlgorithm    = "wilson"

	generationLockFmt = "maze:lock:%s:%dx%d:%d"
)

// MazeService generates mazes, keeps them in the repository and serves
// them through the cache.
type MazeService struct {
	repo             i.MazeRepo
	cache            i.MazeCache
	locker           i.Locker
	logger           i.Logger
	maxDimension     int
	defaultAlgorithm string
	now              func() time.Time
	seeds            func() int64
}

// Config holds the collaborators and limits of a MazeService.
type Config struct {
	Repo             i.MazeRepo
	Cache            i.MazeCache // optional
	Locker           i.Locker    // optional
	Logger           i.Logger
	MaxDimension     int
	DefaultAlgorithm string
}

// NewMazeService validates c and builds a MazeService.
func NewMazeService(c *Config) (*MazeService, error) {
	if c == nil || c.Repo == nil {
		return nil, errors.New("maze service needs a repository")
	}
	if c.Logger == nil {
		return nil, errors.New("maze service needs a logger")
	}

	s := &MazeService{
		repo:             c.Repo,
		cache:            c.Cache,
		locker:           c.Locker,
		logger:           c.Logger,
		maxDimension:     c.MaxDimension,
		defaultAlgorithm: c.DefaultAlgorithm,
		now:              time.Now,
		seeds:            func() int64 { return rand.Int64N(math.MaxInt64) + 1 },
	}
	if s.maxDimension <= 0 {
		s.maxDimension = defaultMaxDimension
	}
	if s.defaultAlgorithm == "" {
		s.defaultAlgorithm = defaultAlgorithm
	}
	if _, err := maze.Lookup(s.defaultAlgorithm); err != nil {
		return nil, err
	}
	return s, nil
}

// Algorithms lists the generators a request may name.
func (s *MazeService) Algorithms() []string {
	return maze.Algorithms()
}

// Generate returns the maze described by req. A request with a non-zero seed
// that was served before returns the stored maze instead of carving it again.
func (s *MazeService) Generate(ctx context.Context, req i.GenerateRequest) (*dmn.Maze, error) {
	if req.Algorithm == "" {
		req.Algorithm = s.defaultAlgorithm
	}
	gen, err := maze.Lookup(req.Algorithm)
	if err != nil {
		return nil, err
	}
	if req.Width <= 0 || req.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", maze.ErrInvalidDimensions, req.Width, req.Height)
	}
	if req.Width > s.maxDimension || req.Height > s.maxDimension {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", i.ErrDimensionTooLarge, req.Width, req.Height, s.maxDimension)
	}
	if req.Seed == 0 {
		req.Seed = s.seeds()
	}

	if record, ok := s.lookupBySeed(ctx, req); ok {
		return record, nil
	}

	if s.locker != nil {
		unlock, err := s.locker.Lock(ctx, fmt.Sprintf(generationLockFmt, req.Algorithm, req.Width, req.Height, req.Seed))
		if err != nil {
			return nil, fmt.Errorf("locking generation: %w", err)
		}
		defer unlock()

		// Another instance may have finished while we waited.
		if record, ok := s.lookupBySeed(ctx, req); ok {
			return record, nil
		}
	}

	m, err := maze.New(req.Width, req.Height)
	if err != nil {
		return nil, err
	}
	m.Generate(gen, maze.NewRand(uint64(req.Seed)))
	if err := maze.Validate(m); err != nil {
		return nil, fmt.Errorf("%s produced a broken maze: %w", gen.Name(), err)
	}

	record := &dmn.Maze{
		ID:        uuid.New(),
		Algorithm: gen.Name(),
		Width:     req.Width,
		Height:    req.Height,
		Seed:      req.Seed,
		Walls:     m.Bitmap(),
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("saving maze: %w", err)
	}
	s.logger.Info(fmt.Sprintf("generated %s maze %s %dx%d seed %d", record.Algorithm, record.ID, record.Width, record.Height, record.Seed))

	s.remember(ctx, record)
	return record, nil
}

// ByID returns a stored maze, preferring the cache.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error) {
	if s.cache != nil {
		record, err := s.cache.Get(ctx, id)
		if err == nil {
			return record, nil
		}
		if !errors.Is(err, i.ErrCacheMiss) {
			s.logger.Warning(fmt.Sprintf("cache lookup for %s: %v", id, err))
		}
	}

	record, err := s.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.remember(ctx, record)
	return record, nil
}

// Render rebuilds the maze held by record.
func (s *MazeService) Render(record *dmn.Maze) (*maze.Maze, error) {
	return maze.FromBitmap(record.Width, record.Height, record.Walls)
}

func (s *MazeService) lookupBySeed(ctx context.Context, req i.GenerateRequest) (*dmn.Maze, bool) {
	if s.cache != nil {
		record, err := s.cache.BySeed(ctx, req.Algorithm, req.Width, req.Height, req.Seed)
		if err == nil {
			return record, true
		}
		if !errors.Is(err, i.ErrCacheMiss) {
			s.logger.Warning(fmt.Sprintf("cache seed lookup: %v", err))
		}
	}

	record, err := s.repo.BySeed(ctx, req.Algorithm, req.Width, req.Height, req.Seed)
	if err != nil {
		if !errors.Is(err, i.ErrMazeNotFound) {
			s.logger.Warning(fmt.Sprintf("repository seed lookup: %v", err))
		}
		return nil, false
	}
	s.remember(ctx, record)
	return record, true
}

// remember caches record; a failing cache only costs a warning.
func (s *MazeService) remember(ctx context.Context, record *dmn.Maze) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, record); err != nil {
		s.logger.Warning(fmt.Sprintf("caching maze %s: %v", record.ID, err))
	}
}
