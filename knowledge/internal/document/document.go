//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package document provides a document internal utils.
package document

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/document"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/internal/encoding"
)

// CreateDocument creates a new document with the given content and name.
// CharCount is initialised to the rune length of content.
func CreateDocument(content string, name string) *document.Document {
	now := time.Now().UTC()
	return &document.Document{
		ID:        GenerateDocumentID(name, content),
		Name:      name,
		Content:   content,
		CharCount: encoding.RuneCount(content),
		Metadata:  make(map[string]any),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// BaseName returns the file name of path without directory and extension.
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// GenerateDocumentID generates a unique ID for a document.
// Uses content hash for identification and a random UUID for uniqueness.
func GenerateDocumentID(name string, content string) string {
	// Content hash (first 8 bytes = 16 hex chars)
	hash := sha256.Sum256([]byte(content))
	contentHash := hex.EncodeToString(hash[:8])

	return strings.ReplaceAll(name, " ", "_") + "_" + contentHash + "_" + uuid.NewString()
}
