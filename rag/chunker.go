package rag

import (
	"fmt"

	"github.com/tmc/langchaingo/textsplitter"

	"github.com/poiesic/lingcomp/core"
)

// Default chunking parameters, in characters.
const (
	DefaultChunkSize    = 1024
	DefaultChunkOverlap = 20
)

// Chunker splits documents into overlapping chunks.
type Chunker struct {
	splitter textsplitter.TextSplitter
}

// NewChunker creates a recursive character splitter.
func NewChunker(size, overlap int) (*Chunker, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", size)
	}
	if overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("chunk overlap must be in [0, %d), got %d", size, overlap)
	}
	return &Chunker{
		splitter: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(size),
			textsplitter.WithChunkOverlap(overlap),
		),
	}, nil
}

// Chunk splits every document and returns the chunks in document order.
// Ordinals restart at zero for each document.
func (c *Chunker) Chunk(docs []*core.Document) ([]*core.Chunk, error) {
	var chunks []*core.Chunk
	for _, doc := range docs {
		parts, err := c.splitter.SplitText(doc.Text)
		if err != nil {
			return nil, fmt.Errorf("splitting %s: %w", doc.Path, err)
		}
		ordinal := 0
		for _, part := range parts {
			if part == "" {
				continue
			}
			chunks = append(chunks, &core.Chunk{
				Id:      core.ChunkID(doc.Path, ordinal, part),
				Source:  doc.Path,
				Ordinal: ordinal,
				Text:    part,
			})
			ordinal++
		}
	}
	return chunks, nil
}
