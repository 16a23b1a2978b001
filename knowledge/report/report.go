//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package report serializes per-file character counts.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Column headers of the count table.
const (
	HeaderName  = "文件名"
	HeaderCount = "字数统计"
)

// Row is one line of the count table.
type Row struct {
	Name  string
	Count int
}

// Writer serializes rows to w, header first.
type Writer interface {
	Write(w io.Writer, rows []Row) error}

// ForPath chooses a writer by the extension of path. ".xlsx" selects the
// spreadsheet writer, anything else CSV.
func ForPath(path string) Writer {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return NewXLSXWriter()
	}
	return NewCSVWriter()
}

// WriteFile creates or truncates path and writes rows in the format chosen by ForPath.
func WriteFile(path string, rows []Row) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close report file: %w", cerr)
		}
	}()

	if err := ForPath(path).Write(file, rows); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}
