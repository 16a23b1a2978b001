//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package dir provides the directory input source.
package dir

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/source"
)

// Source lists the files of a single directory, without descending into
// subdirectories. Entries come back in file name order.
type Source struct {
	root           string
	fileExtensions []string
	patterns       []string
}

// New creates a directory source rooted at root.
func New(root string, opts ...Option) *Source {
	s := &Source{root: root}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the regular entries of the directory whose names end with one of the
// configured extensions. Without extensions every non-directory entry is returned.
func (s *Source) List(ctx context.Context) ([]source.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, pattern := range s.patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("%w: %q", doublestar.ErrBadPattern, pattern)
		}
	}

	dirEntries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", s.root, err)
	}

	entries := make([]source.Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		ext, ok := s.match(de.Name())
		if !ok {
			continue
		}
		included, err := s.included(de.Name())
		if err != nil {
			return nil, err
		}
		if !included {
			continue
		}
		entries = append(entries, source.Entry{
			Name: de.Name(),
			Path: filepath.Join(s.root, de.Name()),
			Ext:  ext,
		})
	}
	return entries, nil
}

func (s *Source) match(name string) (string, bool) {
	if len(s.fileExtensions) == 0 {
		return filepath.Ext(name), true
	}
	for _, ext := range s.fileExtensions {
		if strings.HasSuffix(name, ext) {
			return ext, true
		}
	}
	return "", false
}

func (s *Source) included(name string) (bool, error) {
	if len(s.patterns) == 0 {
		return true, nil
	}
	for _, pattern := range s.patterns {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			return false, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
