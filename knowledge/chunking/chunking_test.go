//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package chunking

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/document"
)

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func TestSplit_Properties(t *testing.T) {
	texts := []string{
		"a",
		"hello world",
		strings.Repeat("x", 1000),
		strings.Repeat("x", 1001),
		strings.Repeat("这是一个段落。", 300),
		"mixed 中文 and ascii \n with\ttabs",
	}
	limits := []int{1, 2, 3, 7, 100, 1000, 5000}

	for _, text := range texts {
		for _, limit := range limits {
			chunks := Split(text, limit)
			n := utf8.RuneCountInString(text)

			require.Len(t, chunks, ceilDiv(n, limit), "len=%d limit=%d", n, limit)
			for i, c := range chunks {
				size := utf8.RuneCountInString(c)
				assert.LessOrEqual(t, size, limit)
				if i < len(chunks)-1 {
					assert.Equal(t, limit, size, "only the last chunk may be short")
				}
				assert.True(t, utf8.ValidString(c))
			}
			assert.Equal(t, text, strings.Join(chunks, ""))
		}
	}
}

func TestSplit_Empty(t *testing.T) {
	assert.Empty(t, Split("", 10))
	assert.Empty(t, Split("", 1))
}

func TestSplit_NonPositiveLimitUsesDefault(t *testing.T) {
	text := strings.Repeat("a", DefaultChunkSize+1)
	chunks := Split(text, 0)
	require.Len(t, chunks, 2)
	assert.Len(t, chunks[1], 1)
}

func TestSplit_KeepsInvalidBytes(t *testing.T) {
	text := "ab\xffcd"
	chunks := Split(text, 2)
	assert.Equal(t, []string{"ab", "\xffc", "d"}, chunks)
}

func TestFixedSizeChunking_Chunk(t *testing.T) {
	doc := &document.Document{
		Name:     "report",
		Source:   "in/report.pdf",
		Content:  strings.Repeat("a", 25),
		Metadata: map[string]any{"origin": "test"},
	}

	fc := NewFixedSizeChunking(WithChunkSize(10))
	assert.Equal(t, 10, fc.ChunkSize())

	chunks, err := fc.Chunk(doc)
	require.NoError(t, err)
	require.Len(t, chunks, 3)

	for i, c := range chunks {
		assert.Equal(t, i+1, c.Metadata[document.MetaChunkIndex])
		assert.Equal(t, "report", c.Metadata[document.MetaParentName])
		assert.Equal(t, "test", c.Metadata["origin"])
		assert.Equal(t, "in/report.pdf", c.Source)
		assert.Equal(t, utf8.RuneCountInString(c.Content), c.CharCount)
	}
	assert.Equal(t, "report_part_1", chunks[0].Name)
	assert.Equal(t, "report_part_3", chunks[2].Name)
	assert.Equal(t, 5, chunks[2].CharCount)
}

func TestFixedSizeChunking_Defaults(t *testing.T) {
	fc := NewFixedSizeChunking()
	assert.Equal(t, DefaultChunkSize, fc.ChunkSize())
}

func TestFixedSizeChunking_Errors(t *testing.T) {
	_, err := NewFixedSizeChunking().Chunk(nil)
	assert.ErrorIs(t, err, ErrNilDocument)

	_, err = NewFixedSizeChunking(WithChunkSize(0)).Chunk(&document.Document{Content: "x"})
	assert.ErrorIs(t, err, ErrInvalidChunkSize)
}

func TestFixedSizeChunking_EmptyDocument(t *testing.T) {
	chunks, err := NewFixedSizeChunking().Chunk(&document.Document{Name: "empty"})
	require.NoError(t, err)
	assert.Empty(t, chunks)
}
