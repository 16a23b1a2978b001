//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package document defines the in-memory representation of an extracted source file.
package document

import (
	"time"
)

// Metadata keys set by readers and chunkers.
const (
	MetaChunkIndex = "chunk_index"
	MetaParentName = "parent_name"
	MetaBackend    = "backend"
)

// Document is the text extracted from one source file.
type Document struct {
	// ID is a unique identifier for the document.
	ID string
	// Name is the source file name without its extension.
	Name string
	// Source is the path the document was read from, empty for in-memory input.
	Source string
	// Content is the text passed on to chunking, after any normalization.
	Content string
	// CharCount is the number of characters reported for the source.
	// For PDF input it is measured before whitespace normalization.
	CharCount int
	// Pages is the number of pages of a PDF source, 0 otherwise.
	Pages int
	// Metadata holds reader and chunker specific values.
	Metadata map[string]any
	// CreatedAt is the extraction time.
	CreatedAt time.Time
	// UpdatedAt is the time of the last transformation.
	UpdatedAt time.Time
}

// IsEmpty reports whether the document carries no text.
func (d *Document) IsEmpty() bool {
	return d == nil || d.Content == ""
}

// Clone returns a copy of the document with its own metadata map and the given content.
func (d *Document) Clone(content string) *Document {
	metadata := make(map[string]any, len(d.Metadata))
	for k, v := range d.Metadata {
		metadata[k] = v
	}
	return &Document{
		ID:        d.ID,
		Name:      d.Name,
		Source:    d.Source,
		Content:   content,
		CharCount: d.CharCount,
		Pages:     d.Pages,
		Metadata:  metadata,
		CreatedAt: d.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}
}
