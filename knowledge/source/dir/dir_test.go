//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package dir

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/source"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
}

func TestSource_ListFiltersBySuffix(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"b.pdf", "a.docx", "c.txt", "D.PDF", "e.doc", "f.docx.bak"} {
		touch(t, root, name)
	}
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub.pdf"), 0o755))
	touch(t, filepath.Join(root, "sub.pdf"), "nested.pdf")

	src := New(root, WithFileExtensions([]string{".docx", ".pdf"}))
	entries, err := src.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []source.Entry{
		{Name: "a.docx", Path: filepath.Join(root, "a.docx"), Ext: ".docx"},
		{Name: "b.pdf", Path: filepath.Join(root, "b.pdf"), Ext: ".pdf"},
	}, entries)
	assert.Equal(t, "a", entries[0].BaseName())
}

func TestSource_ListAllWithoutExtensions(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "x.txt")
	touch(t, root, "y")

	entries, err := New(root).List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, ".txt", entries[0].Ext)
	assert.Equal(t, "", entries[1].Ext)
}

func TestSource_ListWithPatterns(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"report_1.pdf", "report_2.docx", "memo.pdf", "draft.docx"} {
		touch(t, root, name)
	}

	src := New(root,
		WithFileExtensions([]string{".docx", ".pdf"}),
		WithPatterns([]string{"report_*", "{memo,notes}.pdf"}),
	)
	entries, err := src.List(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"memo.pdf", "report_1.pdf", "report_2.docx"}, names)

	_, err = New(root, WithPatterns([]string{"[unclosed"})).List(context.Background())
	assert.ErrorIs(t, err, doublestar.ErrBadPattern)
}

func TestSource_Errors(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing")).List(context.Background())
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = New(t.TempDir()).List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSource_ImplementsSource(t *testing.T) {
	var src source.Source = New(t.TempDir())
	entries, err := src.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
