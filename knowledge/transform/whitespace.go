//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package transform

import (
	"regexp"
	"strings"

	"trpc.group/trpc-go/trpc-docsplit/knowledge/document"
)

// whitespaceRun matches any run of ASCII or Unicode whitespace, including
// the ideographic space and the information separators U+001C..U+001F.
var whitespaceRun = regexp.MustCompile(`[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]+`)

// WhitespaceNormalizer collapses every run of newlines and other whitespace into a
// single space and trims the result.
//
// Example:
//
//	n := transform.NewWhitespaceNormalizer()
//	// Input:  "  page one\n\n\npage\ttwo \n"
//	// Output: "page one page two"
//
// CharCount is left untouched: it keeps describing the raw extracted text.
type WhitespaceNormalizer struct{}

// NewWhitespaceNormalizer creates a WhitespaceNormalizer.
func NewWhitespaceNormalizer() *WhitespaceNormalizer {
	return &WhitespaceNormalizer{}
}

// Normalize collapses whitespace runs in text to single spaces and trims both ends.
func Normalize(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllLiteralString(text, " "))
}

// Preprocess normalizes document content before chunking.
func (wn *WhitespaceNormalizer) Preprocess(docs []*document.Document) ([]*document.Document, error) {
	if len(docs) == 0 {
		return docs, nil
	}

	result := make([]*document.Document, 0, len(docs))
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		result = append(result, doc.Clone(Normalize(doc.Content)))
	}
	return result, nil
}

// Name returns the name of this transformer.
func (wn *WhitespaceNormalizer) Name() string {
	return "WhitespaceNormalizer"
}
