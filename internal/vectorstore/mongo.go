package vectorstore

import (
	"context"
	"fmt"
	"strings"

	"rag-analyzer/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const chunksCollection = "chunks"

// MongoStore keeps chunk records in a single denormalized collection and
// retrieves them through an Atlas Vector Search index over the vector field.
type MongoStore struct {
	collection *mongo.Collection
	indexName  string
	dimensions int
}

func NewMongoStore(client *mongo.Client, dbName, indexName string, dimensions int) *MongoStore {
	return &MongoStore{
		collection: client.Database(dbName).Collection(chunksCollection),
		indexName:  indexName,
		dimensions: dimensions,
	}
}

// EnsureSearchIndex creates the vector search index if it does not exist.
// Plain (non-Atlas) deployments reject search index commands; callers treat
// a failure here as a warning, the service can still ingest.
func (s *MongoStore) EnsureSearchIndex(ctx context.Context) error {
	definition := bson.D{
		{Key: "fields", Value: bson.A{
			bson.D{
				{Key: "type", Value: "vector"},
				{Key: "path", Value: "vector"},
				{Key: "numDimensions", Value: s.dimensions},
				{Key: "similarity", Value: "cosine"},
			},
		}},
	}

	model := mongo.SearchIndexModel{
		Definition: definition,
		Options:    options.SearchIndexes().SetName(s.indexName).SetType("vectorSearch"),
	}

	_, err := s.collection.SearchIndexes().CreateOne(ctx, model)
	if err != nil {
		if strings.Contains(err.Error(), "Duplicate Index") || strings.Contains(err.Error(), "IndexAlreadyExists") {
			return nil
		}
		return fmt.Errorf("failed to create vector search index %s: %v", s.indexName, err)
	}
	return nil
}

// SearchIndexState describes an Atlas search index as reported by
// $listSearchIndexes. Atlas builds indexes asynchronously, so a freshly
// created index exists with Queryable false until the build finishes.
type SearchIndexState struct {
	Name      string `bson:"name"`
	Status    string `bson:"status"`
	Queryable bool   `bson:"queryable"`
}

// SearchIndexStatus returns the state of the configured vector index, or nil
// when the index does not exist yet.
func (s *MongoStore) SearchIndexStatus(ctx context.Context) (*SearchIndexState, error) {
	cursor, err := s.collection.SearchIndexes().List(ctx, options.SearchIndexes().SetName(s.indexName))
	if err != nil {
		return nil, fmt.Errorf("failed to list search indexes: %v", err)
	}
	defer cursor.Close(ctx)

	var states []SearchIndexState
	if err := cursor.All(ctx, &states); err != nil {
		return nil, fmt.Errorf("failed to decode search indexes: %v", err)
	}
	if len(states) == 0 {
		return nil, nil
	}
	return &states[0], nil
}

// Count returns the number of stored chunk records.
func (s *MongoStore) Count(ctx context.Context) (int64, error) {
	n, err := s.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count chunks: %v", err)
	}
	return n, nil
}

// Upsert writes the batch as unordered upserts keyed on chunk ID, so
// re-ingesting a document replaces its chunks instead of duplicating them.
func (s *MongoStore) Upsert(ctx context.Context, chunks []models.StoredChunk) error {
	if len(chunks) == 0 {
		return nil
	}

	batch := make([]mongo.WriteModel, 0, len(chunks))
	for _, ch := range chunks {
		doc := bson.M{
			"text":       ch.Text,
			"vector":     ch.Vector,
			"source":     ch.Source,
			"order":      ch.Order,
			"offset":     ch.Offset,
			"created_at": ch.CreatedAt,
		}
		batch = append(batch, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": ch.ChunkID}).
			SetUpdate(bson.M{"$set": doc}).
			SetUpsert(true))
	}

	_, err := s.collection.BulkWrite(ctx, batch, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return fmt.Errorf("bulk write of %d chunks failed: %v", len(chunks), err)
	}
	return nil
}

// Query runs a $vectorSearch aggregation and returns hits in descending
// similarity order, as ranked by Atlas.
func (s *MongoStore) Query(ctx context.Context, vector []float32, k int) ([]models.RetrievedChunk, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$vectorSearch", Value: bson.D{
			{Key: "index", Value: s.indexName},
			{Key: "path", Value: "vector"},
			{Key: "queryVector", Value: vector},
			{Key: "numCandidates", Value: k * 15},
			{Key: "limit", Value: k},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "text", Value: 1},
			{Key: "source", Value: 1},
			{Key: "score", Value: bson.D{{Key: "$meta", Value: "vectorSearchScore"}}},
		}}},
	}

	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %v", err)
	}
	defer cursor.Close(ctx)

	results := make([]models.RetrievedChunk, 0, k)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode vector search results: %v", err)
	}
	return results, nil
}
