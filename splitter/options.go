//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package splitter

import (
	"trpc.group/trpc-go/trpc-docsplit/knowledge/chunking"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/document/writer"
)

const (
	// DefaultOutputDir is the output root used when none is configured.
	DefaultOutputDir = "output_folder"
	// DefaultThreshold is the character count at or above which a file is skipped.
	DefaultThreshold = 5000
)

// Option configures a Splitter.
type Option func(*Splitter)

// WithOutputDir sets the output root.
func WithOutputDir(dir string) Option {
	return func(s *Splitter) {
		s.outputDir = dir
	}
}

// WithWordCharLimit sets the chunk size for Word documents.
func WithWordCharLimit(limit int) Option {
	return func(s *Splitter) {
		s.wordCharLimit = limit
	}
}

// WithPDFCharLimit sets the chunk size for PDF documents.
func WithPDFCharLimit(limit int) Option {
	return func(s *Splitter) {
		s.pdfCharLimit = limit
	}
}

// WithThreshold sets the skip threshold. Files whose count reaches it are not split.
func WithThreshold(threshold int) Option {
	return func(s *Splitter) {
		s.threshold = threshold
	}
}

// WithPDFLayoutAware switches PDF extraction to the row based backend.
func WithPDFLayoutAware(enabled bool) Option {
	return func(s *Splitter) {
		s.pdfLayoutAware = enabled
	}
}

// WithIncludePatterns restricts the run to files whose name matches one of the
// glob patterns.
func WithIncludePatterns(patterns []string) Option {
	return func(s *Splitter) {
		s.include = patterns
	}
}

// WithWriter replaces the chunk writer.
func WithWriter(w writer.Writer) Option {
	return func(s *Splitter) {
		if w != nil {
			s.writer = w
		}
	}
}

func defaultLimits(s *Splitter) {
	if s.wordCharLimit <= 0 {
		s.wordCharLimit = chunking.DefaultChunkSize
	}
	if s.pdfCharLimit <= 0 {
		s.pdfCharLimit = chunking.DefaultChunkSize
	}
}
