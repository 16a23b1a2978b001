//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package counter measures the character count of every Word and PDF file
// of a directory.
package counter

import (
	"context"
	"fmt"
	"path/filepath"

	"trpc.group/trpc-go/trpc-docsplit/knowledge/document/reader"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/document/reader/pdf"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/report"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/source"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/source/dir"
	"trpc.group/trpc-go/trpc-docsplit/log"

	// Register the Word reader.
	_ "trpc.group/trpc-go/trpc-docsplit/knowledge/document/reader/docx"
)

const extPDF = ".pdf"

// Status tells whether a record holds a measured count.
type Status int

const (
	// StatusCounted means the file was read and Count is its character count.
	StatusCounted Status = iota
	// StatusFailed means the file could not be read; Count is 0 and Err holds the cause.
	StatusFailed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusCounted:
		return "counted"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Record is the count of one file.
type Record struct {
	Name   string
	Path   string
	Count  int
	Status Status
	Err    error
}

// Option configures a Counter.
type Option func(*Counter)

// WithPDFBackend selects the PDF text backend, pdf.BackendLayout or pdf.BackendPlain.
func WithPDFBackend(backend string) Option {
	return func(c *Counter) {
		c.pdfBackend = backend
	}
}

// WithIncludePatterns restricts counting to files whose name matches one of the
// glob patterns.
func WithIncludePatterns(patterns []string) Option {
	return func(c *Counter) {
		c.include = patterns
	}
}

// Counter counts characters of Word and PDF files.
type Counter struct {
	pdfBackend string
	include    []string
}

// New creates a Counter. PDF files are measured with the layout backend by default.
func New(opts ...Option) *Counter {
	c := &Counter{pdfBackend: pdf.BackendLayout}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Count measures every .docx and .pdf file directly inside path, in name order.
// A PDF that cannot be read becomes a failed record and counting goes on. Any
// other error stops the batch and is returned with the records gathered so far.
func (c *Counter) Count(ctx context.Context, path string) ([]Record, error) {
	var src source.Source = dir.New(path,
		dir.WithFileExtensions(reader.GetRegisteredExtensions()),
		dir.WithPatterns(c.include),
	)
	entries, err := src.List(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return records, err
		}
		record, err := c.CountFile(ctx, entry.Path)
		if err != nil {
			return records, err
		}
		records = append(records, record)
	}
	return records, nil
}

// CountFile measures one file. Word files count the text of every paragraph
// without separators. PDF files count the extracted text of the configured backend.
func (c *Counter) CountFile(ctx context.Context, path string) (Record, error) {
	name := filepath.Base(path)
	record := Record{Name: name, Path: path}
	if err := ctx.Err(); err != nil {
		return record, err
	}

	ext, _ := reader.MatchExtension(name)
	rd, err := reader.ForFile(name, c.readerOptions(ext)...)
	if err != nil {
		return record, err
	}

	doc, err := rd.ReadFromFile(path)
	if err != nil {
		if ext == extPDF {
			log.Errorf("error processing %s: %v", name, err)
			record.Status = StatusFailed
			record.Err = err
			return record, nil
		}
		return record, fmt.Errorf("failed to count %s: %w", path, err)
	}
	record.Count = doc.CharCount
	log.Debugf("%s chars=%d", name, record.Count)
	return record, nil
}

func (c *Counter) readerOptions(ext string) []reader.Option {
	opts := []reader.Option{reader.WithTransformers()}
	if ext == extPDF {
		return append(opts, reader.WithLayoutAware(c.pdfBackend != pdf.BackendPlain))
	}
	return append(opts, reader.WithCountMode(reader.CountParagraphText))
}

// Rows converts records into report rows. Failed records report 0.
func Rows(records []Record) []report.Row {
	rows := make([]report.Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, report.Row{Name: r.Name, Count: r.Count})
	}
	return rows
}

// Failed returns the failed records.
func Failed(records []Record) []Record {
	var failed []Record
	for _, r := range records {
		if r.Status == StatusFailed {
			failed = append(failed, r)
		}
	}
	return failed
}
