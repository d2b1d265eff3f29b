package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"rag-analyzer/internal/config"
	"rag-analyzer/internal/vectorstore"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./cmd/migrate <command>")
		fmt.Println("Commands:")
		fmt.Println("  create-index  - Create the Atlas vector search index on the chunks collection")
		fmt.Println("  verify-index  - Report index build status and the stored chunk count")
		os.Exit(1)
	}

	command := os.Args[1]

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.VectorBackend != "mongo" {
		log.Fatalf("Vector backend %q has no search index to manage", cfg.VectorBackend)
	}

	// Connect to MongoDB
	client, err := config.ConnectMongoDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	store := vectorstore.NewMongoStore(client, cfg.DBName, cfg.VectorIndexName, cfg.VectorDimensions)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch command {
	case "create-index":
		if err := createIndex(ctx, store, cfg); err != nil {
			log.Fatalf("Index creation failed: %v", err)
		}

	case "verify-index":
		if err := verifyIndex(ctx, store, cfg); err != nil {
			log.Fatalf("Index verification failed: %v", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

func createIndex(ctx context.Context, store *vectorstore.MongoStore, cfg *config.Config) error {
	fmt.Printf("Creating vector search index %q (%d dimensions, cosine)...\n",
		cfg.VectorIndexName, cfg.VectorDimensions)

	if err := store.EnsureSearchIndex(ctx); err != nil {
		return err
	}

	fmt.Println("Index creation requested. Atlas builds search indexes asynchronously;")
	fmt.Println("run verify-index to watch the build status.")
	return nil
}

func verifyIndex(ctx context.Context, store *vectorstore.MongoStore, cfg *config.Config) error {
	fmt.Printf("Verifying vector search index %q...\n", cfg.VectorIndexName)

	state, err := store.SearchIndexStatus(ctx)
	if err != nil {
		return err
	}
	if state == nil {
		return fmt.Errorf("index %q does not exist, run create-index first", cfg.VectorIndexName)
	}

	fmt.Printf("  status: %s\n", state.Status)
	fmt.Printf("  queryable: %t\n", state.Queryable)

	count, err := store.Count(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("  stored chunks: %d\n", count)

	if !state.Queryable {
		fmt.Println("Index is still building; /chat queries will return no results until it is queryable.")
	}
	return nil
}
