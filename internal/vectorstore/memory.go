package vectorstore

import (
	"context"
	"math"
	"sort"
	"sync"

	"rag-analyzer/models"
)

// MemoryStore is a brute-force cosine-similarity store for local runs and
// tests. It mirrors MongoStore semantics: upserts keyed on chunk ID, query
// results in descending score order.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]models.StoredChunk
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]models.StoredChunk)}
}

func (s *MemoryStore) Upsert(ctx context.Context, chunks []models.StoredChunk) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range chunks {
		s.records[ch.ChunkID] = ch
	}
	return nil
}

func (s *MemoryStore) Query(ctx context.Context, vector []float32, k int) ([]models.RetrievedChunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type scored struct {
		id    string
		chunk models.StoredChunk
		score float64
	}

	hits := make([]scored, 0, len(s.records))
	for id, ch := range s.records {
		hits = append(hits, scored{id: id, chunk: ch, score: cosineSimilarity(vector, ch.Vector)})
	}

	// Tie-break on ID so equal scores rank deterministically.
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].id < hits[j].id
	})

	if k < 0 {
		k = 0
	}
	if k > len(hits) {
		k = len(hits)
	}
	results := make([]models.RetrievedChunk, 0, k)
	for _, h := range hits[:k] {
		results = append(results, models.RetrievedChunk{
			Text:   h.chunk.Text,
			Source: h.chunk.Source,
			Score:  h.score,
		})
	}
	return results, nil
}

// Count reports the number of stored records.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
