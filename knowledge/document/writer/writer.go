//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package writer defines how text chunks are persisted as new documents.
package writer

import (
	"context"
	"fmt"
	"path/filepath"
)

// Writer persists chunks for one source file.
type Writer interface {
	// Write stores chunks under {outputRoot}/{base} and returns the written
	// paths in chunk order.
	Write(ctx context.Context, outputRoot, base string, chunks []string) ([]string, error)
}

// PartPath returns {outputRoot}/{base}/{base}_part_{index}{ext}; index is 1-based.
func PartPath(outputRoot, base string, index int, ext string) string {
	return filepath.Join(outputRoot, base, fmt.Sprintf("%s_part_%d%s", base, index, ext))
}
