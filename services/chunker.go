package services

import (
	"fmt"

	"rag-analyzer/models"
)

// Chunker splits document text into overlapping windows. Every chunk after
// the first starts exactly overlap runes before the previous chunk's end,
// so concatenating chunks minus the overlap reconstructs the input
// byte-for-byte. Window ends prefer a paragraph break, then a sentence end,
// then a word boundary, searched backward from the hard cut within the
// overlap distance; break-free text gets hard cuts at chunkSize.
type Chunker struct {
	chunkSize int
	overlap   int
}

// NewChunker validates the window geometry. chunkSize must exceed twice the
// overlap so the boundary lookback can never stall the window.
func NewChunker(chunkSize, overlap int) (*Chunker, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}
	if overlap < 0 {
		return nil, fmt.Errorf("chunk overlap must not be negative, got %d", overlap)
	}
	if chunkSize <= 2*overlap {
		return nil, fmt.Errorf("chunk size %d must be greater than twice the overlap %d", chunkSize, overlap)
	}
	return &Chunker{chunkSize: chunkSize, overlap: overlap}, nil
}

// Chunk is a pure function: the same text always yields the same sequence.
// Empty input yields an empty sequence. Offsets and sizes count runes, not
// bytes, so multi-byte text windows the same as ASCII.
func (c *Chunker) Chunk(text string) []models.Chunk {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	var chunks []models.Chunk
	start := 0
	for {
		end := start + c.chunkSize
		if end >= len(runes) {
			chunks = append(chunks, models.Chunk{
				Text:   string(runes[start:]),
				Offset: start,
				Order:  len(chunks),
			})
			return chunks
		}

		cut := c.findBreak(runes, start, end)
		chunks = append(chunks, models.Chunk{
			Text:   string(runes[start:cut]),
			Offset: start,
			Order:  len(chunks),
		})
		start = cut - c.overlap
	}
}

// findBreak picks the cut position for a window ending at the hard cut
// `end`. Candidates are scanned backward, never further than overlap runes,
// which keeps the next window start strictly after the current one.
func (c *Chunker) findBreak(runes []rune, start, end int) int {
	minCut := end - c.overlap
	if minCut <= start {
		minCut = start + 1
	}

	// Paragraph break: cut right after a blank line.
	for i := end; i >= minCut; i-- {
		if i >= 2 && runes[i-1] == '\n' && runes[i-2] == '\n' {
			return i
		}
	}

	// Sentence break: cut after the whitespace that follows .!?
	for i := end; i >= minCut; i-- {
		if i >= 2 && isSpaceRune(runes[i-1]) && isSentenceEnd(runes[i-2]) {
			return i
		}
	}

	// Word boundary: cut after any whitespace.
	for i := end; i >= minCut; i-- {
		if i >= 1 && isSpaceRune(runes[i-1]) {
			return i
		}
	}

	return end
}

func isSpaceRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
