//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package dir

// Option represents a functional option for configuring directory sources.
type Option func(*Source)

// WithFileExtensions sets the file extensions to filter by.
// Matching is a case sensitive suffix match on the file name.
func WithFileExtensions(extensions []string) Option {
	return func(s *Source) {
		s.fileExtensions = extensions
	}
}

// WithPatterns keeps only files whose name matches at least one glob pattern.
// Patterns use doublestar syntax, e.g. "report_*" or "{a,b}*.pdf".
func WithPatterns(patterns []string) Option {
	return func(s *Source) {
		s.patterns = patterns
	}
}
