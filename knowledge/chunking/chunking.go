//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package chunking provides document chunking strategies and utilities.
package chunking

import (
	"errors"

	"trpc.group/trpc-go/trpc-docsplit/knowledge/document"
)

// DefaultChunkSize is the chunk size, in characters, used when none is configured.
const DefaultChunkSize = 1000

var (
	// ErrNilDocument is returned when a nil document is chunked.
	ErrNilDocument = errors.New("chunking: nil document")
	// ErrInvalidChunkSize is returned when the configured chunk size is not positive.
	ErrInvalidChunkSize = errors.New("chunking: chunk size must be positive")
)

// Strategy splits a document into ordered chunk documents.
type Strategy interface {
	Chunk(doc *document.Document) ([]*document.Document, error)
}

// Split cuts text into consecutive pieces of at most limit characters.
// The pieces are in order, do not overlap, and concatenate back to text; only the last
// one may be shorter than limit. Empty text yields no pieces. A non-positive limit
// falls back to DefaultChunkSize.
func Split(text string, limit int) []string {
	if text == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultChunkSize
	}

	chunks := make([]string, 0, len(text)/limit+1)
	start, n := 0, 0
	for i := range text {
		if n == limit {
			chunks = append(chunks, text[start:i])
			start, n = i, 0
		}
		n++
	}
	return append(chunks, text[start:])
}
