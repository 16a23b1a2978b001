//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package chunking

import (
	"fmt"

	"trpc.group/trpc-go/trpc-docsplit/knowledge/document"
	idocument "trpc.group/trpc-go/trpc-docsplit/knowledge/internal/document"
)

// FixedSizeChunking splits document content every chunkSize characters.
type FixedSizeChunking struct {
	chunkSize int
}

// Option represents a functional option for configuring FixedSizeChunking.
type Option func(*FixedSizeChunking)

// WithChunkSize sets the maximum size of each chunk in characters.
func WithChunkSize(size int) Option {
	return func(fc *FixedSizeChunking) {
		fc.chunkSize = size
	}
}

// NewFixedSizeChunking creates a new fixed-size chunking strategy with options.
func NewFixedSizeChunking(opts ...Option) *FixedSizeChunking {
	fc := &FixedSizeChunking{chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(fc)
	}
	return fc
}

// ChunkSize returns the configured chunk size.
func (f *FixedSizeChunking) ChunkSize() int {
	return f.chunkSize
}

// Chunk splits doc.Content into chunk documents named after the parent with a
// 1-based chunk_index. An empty document yields no chunks.
func (f *FixedSizeChunking) Chunk(doc *document.Document) ([]*document.Document, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if f.chunkSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChunkSize, f.chunkSize)
	}
	if doc.IsEmpty() {
		return nil, nil
	}

	pieces := Split(doc.Content, f.chunkSize)
	chunks := make([]*document.Document, 0, len(pieces))
	for i, piece := range pieces {
		chunk := idocument.CreateDocument(piece, fmt.Sprintf("%s_part_%d", doc.Name, i+1))
		chunk.Source = doc.Source
		for k, v := range doc.Metadata {
			chunk.Metadata[k] = v
		}
		chunk.Metadata[document.MetaChunkIndex] = i + 1
		chunk.Metadata[document.MetaParentName] = doc.Name
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}
