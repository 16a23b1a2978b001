//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package reader defines the interface for document readers.
// A reader turns one Word or PDF file into a single text document.
package reader

import (
	"io"

	"trpc.group/trpc-go/trpc-docsplit/knowledge/document"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/transform"
)

// CountMode selects how a reader measures the character count of a source.
type CountMode int

const (
	// CountText counts the characters of the extracted text, separators included.
	CountText CountMode = iota
	// CountParagraphText sums the characters of each paragraph without separators.
	// Only the Word reader distinguishes it from CountText.
	CountParagraphText
)

// Config holds configuration for readers.
type Config struct {
	Transformers []transform.Transformer
	CountMode    CountMode
	// LayoutAware selects row based text reconstruction (PDF reader only).
	LayoutAware bool
	// transformersSet records that WithTransformers was given, even with no transformers.
	transformersSet bool
}

// Option is a functional option for configuring readers.
type Option func(*Config)

// WithTransformers sets the transformers applied to the extracted document.
// Passing none disables a reader's default transformers.
func WithTransformers(transformers ...transform.Transformer) Option {
	return func(c *Config) {
		c.Transformers = transformers
		c.transformersSet = true
	}
}

// WithCountMode sets how the character count is measured.
func WithCountMode(mode CountMode) Option {
	return func(c *Config) {
		c.CountMode = mode
	}
}

// WithLayoutAware enables layout aware text extraction (PDF reader only).
func WithLayoutAware(enabled bool) Option {
	return func(c *Config) {
		c.LayoutAware = enabled
	}
}

// NewConfig applies opts over a zero Config.
func NewConfig(opts ...Option) *Config {
	config := &Config{}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

// BuildTransformers returns the configured transformers, or defaults when
// WithTransformers was never applied.
func BuildTransformers(config *Config, defaults ...transform.Transformer) []transform.Transformer {
	if config.transformersSet {
		return config.Transformers
	}
	return defaults
}

// Reader interface for different document readers.
type Reader interface {
	// ReadFromReader reads content from an io.Reader and returns the extracted document.
	// The name parameter identifies the source (e.g. the file name without extension).
	ReadFromReader(name string, r io.Reader) (*document.Document, error)

	// ReadFromFile reads content from a file path and returns the extracted document.
	ReadFromFile(filePath string) (*document.Document, error)

	// Name returns the name of this reader.
	Name() string

	// SupportedExtensions returns the file extensions this reader supports.
	// Extensions include the dot prefix (e.g., ".pdf").
	SupportedExtensions() []string
}
