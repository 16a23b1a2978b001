//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package reader

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnsupportedExtension is returned when no reader is registered for a file.
var ErrUnsupportedExtension = errors.New("reader: unsupported file extension")

// Builder is a function that creates a new Reader instance with options.
type Builder func(opts ...Option) Reader

// Registry manages registration of document readers.
// Extensions are matched exactly: ".PDF" and ".pdf" are different keys.
type Registry struct {
	mu      sync.RWMutex
	readers map[string]Builder // extension -> builder
}

// globalRegistry is the singleton registry instance.
var globalRegistry = &Registry{
	readers: make(map[string]Builder),
}

// RegisterReader registers a reader builder for specific file extensions.
// Extensions should include the dot prefix (e.g., ".pdf", ".docx").
func RegisterReader(extensions []string, builder Builder) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()

	for _, ext := range extensions {
		globalRegistry.readers[ext] = builder
	}
}

// GetReader returns a new reader instance for the given file extension with options.
// Returns nil and false if no reader is registered for the extension.
func GetReader(extension string, opts ...Option) (Reader, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	builder, exists := globalRegistry.readers[extension]
	if !exists {
		return nil, false
	}
	return builder(opts...), true
}

// MatchExtension returns the registered extension that name ends with.
// The match is a case sensitive suffix match; the longest extension wins.
func MatchExtension(name string) (string, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	best := ""
	for ext := range globalRegistry.readers {
		if strings.HasSuffix(name, ext) && len(ext) > len(best) {
			best = ext
		}
	}
	return best, best != ""
}

// ForFile returns a reader for the file name or path using a suffix match.
func ForFile(name string, opts ...Option) (Reader, error) {
	ext, ok := MatchExtension(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExtension, name)
	}
	r, _ := GetReader(ext, opts...)
	return r, nil
}

// GetRegisteredExtensions returns all registered file extensions, sorted.
func GetRegisteredExtensions() []string {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	extensions := make([]string, 0, len(globalRegistry.readers))
	for ext := range globalRegistry.readers {
		extensions = append(extensions, ext)
	}
	sort.Strings(extensions)
	return extensions
}

// ClearRegistry clears all registered readers (mainly for testing).
func ClearRegistry() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()

	globalRegistry.readers = make(map[string]Builder)
}
