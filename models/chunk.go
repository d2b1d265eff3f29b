package models

import "time"

// Chunk is one window of extracted document text. Offset and Order are
// rune-based positions assigned by the chunker and never change afterwards.
type Chunk struct {
	Text   string `json:"text"`
	Offset int    `json:"offset"`
	Order  int    `json:"order"`
}

// StoredChunk is a denormalized chunk record for Atlas Vector Search.
// ChunkID is "<docID>_<order>" so re-ingesting the same document ID
// upserts in place instead of duplicating.
type StoredChunk struct {
	ChunkID   string    `bson:"_id" json:"chunk_id"`
	Text      string    `bson:"text" json:"text"`
	Vector    []float32 `bson:"vector" json:"-"`
	Source    string    `bson:"source" json:"source"`
	Order     int       `bson:"order" json:"order"`
	Offset    int       `bson:"offset" json:"offset"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// RetrievedChunk is a similarity-search hit. The store returns hits in
// descending score order.
type RetrievedChunk struct {
	Text   string  `bson:"text" json:"text"`
	Source string  `bson:"source" json:"source"`
	Score  float64 `bson:"score" json:"score"`
}
