//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package source defines where input documents come from.
package source

import (
	"context"
	"strings"
)

// Entry is one input file selected by a source.
type Entry struct {
	// Name is the file name including its extension.
	Name string
	// Path is the path used to open the file.
	Path string
	// Ext is the matched extension, with the dot prefix.
	Ext string
}

// BaseName returns the entry name without its matched extension.
func (e Entry) BaseName() string {
	return strings.TrimSuffix(e.Name, e.Ext)
}

// Source lists input files in a stable order.
type Source interface {
	// List returns the selected entries.
	List(ctx context.Context) ([]Entry, error)
}
