package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	writeTimeout = time.Second
	readTimeout  = 2 * time.Second
)

// MazeRepo handles the persistence of generated mazes.
type MazeRepo struct {
	collection *mongo.Collection
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
	}
}

// EnsureIndexes creates the index used by seed lookups.
func (r *MazeRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "algorithm", Value: 1},
			{Key: "width", Value: 1},
			{Key: "height", Value: 1},
			{Key: "seed", Value: 1},
		},
	})
	return err
}

// Save inserts or updates a maze in the repository.
func (r *MazeRepo) Save(ctx context.Context, maze *dmn.Maze) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	filter := bson.M{"_id": maze.ID}
	update := bson.M{
		"$set": bson.M{
			"algorithm": maze.Algorithm,
			"width":     maze.Width,
			"height":    maze.Height,
			"seed":      maze.Seed,
			"walls":     maze.Walls,
			"createdAt": maze.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}
	return nil
}

// ByID retrieves a maze by its ID.
func (r *MazeRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// BySeed retrieves the maze stored for the given generation parameters.
func (r *MazeRepo) BySeed(ctx context.Context, algorithm string, width, height int, seed int64) (*dmn.Maze, error) {
	return r.findOne(ctx, bson.M{
		"algorithm": algorithm,
		"width":     width,
		"height":    height,
		"seed":      seed,
	})
}

func (r *MazeRepo) findOne(ctx context.Context, filter bson.M) (*dmn.Maze, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var maze dmn.Maze
	if err := r.collection.FindOne(ctx, filter).Decode(&maze); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, i.ErrMazeNotFound
		}
		return nil, fmt.Errorf("unexpected error: %w", err)
	}
	return &maze, nil
}
