//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package docx writes text chunks as single-paragraph Word documents.
package docx

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/wml/ctypes"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/document/writer"
)

const extension = ".docx"

// Writer creates one .docx per chunk.
type Writer struct {
	dirPerm os.FileMode
}

// Option is a functional option for configuring the writer.
type Option func(*Writer)

// WithDirPerm sets the permission used when creating the per-source folder.
func WithDirPerm(perm os.FileMode) Option {
	return func(w *Writer) {
		w.dirPerm = perm
	}
}

// New creates a DOCX chunk writer.
func New(opts ...Option) *Writer {
	w := &Writer{dirPerm: 0o755}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write creates {outputRoot}/{base} if missing and writes {base}_part_{n}.docx for
// every chunk, each holding exactly one paragraph with the chunk text.
func (w *Writer) Write(ctx context.Context, outputRoot, base string, chunks []string) ([]string, error) {
	folder := filepath.Join(outputRoot, base)
	if err := os.MkdirAll(folder, w.dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create output folder: %w", err)
	}

	paths := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		select {
		case <-ctx.Done():
			return paths, ctx.Err()
		default:
		}

		path := writer.PartPath(outputRoot, base, i+1, extension)
		if err := writeOne(path, chunk); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeOne(path, text string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	p := doc.AddEmptyParagraph().GetCT()
	p.Children = append(p.Children, ctypes.ParagraphChild{Run: chunkRun(text)})
	if err := doc.SaveTo(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// chunkRun holds text in a single run. Newlines become w:br and tabs w:tab, so
// the paragraph reads back as the original text.
func chunkRun(text string) *ctypes.Run {
	run := ctypes.NewRun()
	var segment strings.Builder
	flush := func() {
		if segment.Len() > 0 {
			run.Children = append(run.Children, ctypes.RunChild{Text: ctypes.TextFromString(segment.String())})
			segment.Reset()
		}
	}
	for _, r := range text {
		switch r {
		case '\n':
			flush()
			run.Children = append(run.Children, ctypes.RunChild{Break: &ctypes.Break{}})
		case '\t':
			flush()
			run.Children = append(run.Children, ctypes.RunChild{Tab: &ctypes.Empty{}})
		default:
			segment.WriteRune(r)
		}
	}
	flush()
	return run
}
