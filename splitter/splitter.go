//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package splitter cuts every Word and PDF file of a directory into fixed-size
// Word documents.
package splitter

import (
	"context"
	"fmt"
	"os"

	"trpc.group/trpc-go/trpc-docsplit/knowledge/chunking"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/document"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/document/reader"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/document/writer"
	docxwriter "trpc.group/trpc-go/trpc-docsplit/knowledge/document/writer/docx"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/source"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/source/dir"
	"trpc.group/trpc-go/trpc-docsplit/log"

	// Register the readers the splitter dispatches to.
	_ "trpc.group/trpc-go/trpc-docsplit/knowledge/document/reader/docx"
	_ "trpc.group/trpc-go/trpc-docsplit/knowledge/document/reader/pdf"
)

// Kind identifies the input format of a file.
type Kind string

// Supported kinds.
const (
	KindWord Kind = "word"
	KindPDF  Kind = "pdf"
)

// kinds maps the extensions of the registered readers to their kind.
var kinds = map[string]Kind{
	".docx": KindWord,
	".pdf":  KindPDF,
}

// FileResult describes what happened to one input file. Pages is only set
// for PDF files.
type FileResult struct {
	Name      string
	Path      string
	Kind      Kind
	CharCount int
	Pages     int
	Chunks    int
	Skipped   bool
	Outputs   []string
}

// Summary collects the results of a run.
type Summary struct {
	Files     []FileResult
	Processed int
	Skipped   int
	Chunks    int
}

func (s *Summary) add(r FileResult) {
	s.Files = append(s.Files, r)
	if r.Skipped {
		s.Skipped++
		return
	}
	s.Processed++
	s.Chunks += r.Chunks
}

// Splitter runs the split pipeline over one input directory.
type Splitter struct {
	outputDir      string
	wordCharLimit  int
	pdfCharLimit   int
	threshold      int
	pdfLayoutAware bool
	include        []string
	writer         writer.Writer
}

// New creates a Splitter with the given options.
func New(opts ...Option) *Splitter {
	s := &Splitter{
		outputDir:     DefaultOutputDir,
		wordCharLimit: chunking.DefaultChunkSize,
		pdfCharLimit:  chunking.DefaultChunkSize,
		threshold:     DefaultThreshold,
		writer:        docxwriter.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	defaultLimits(s)
	return s
}

// Run processes the Word and PDF files directly inside inputDir, in name order.
// The first failing file aborts the run; the summary gathered so far is
// returned with the error.
func (s *Splitter) Run(ctx context.Context, inputDir string) (*Summary, error) {
	summary := &Summary{}
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return summary, fmt.Errorf("failed to create output directory %s: %w", s.outputDir, err)
	}

	var src source.Source = dir.New(inputDir,
		dir.WithFileExtensions(reader.GetRegisteredExtensions()),
		dir.WithPatterns(s.include),
	)
	entries, err := src.List(ctx)
	if err != nil {
		return summary, err
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		result, err := s.processFile(ctx, entry)
		if err != nil {
			return summary, fmt.Errorf("failed to process %s: %w", entry.Path, err)
		}
		summary.add(result)
	}
	log.Infof("done: processed=%d skipped=%d chunks=%d",
		summary.Processed, summary.Skipped, summary.Chunks)
	return summary, nil
}

func (s *Splitter) processFile(ctx context.Context, entry source.Entry) (FileResult, error) {
	kind := kinds[entry.Ext]
	result := FileResult{Name: entry.Name, Path: entry.Path, Kind: kind}

	rd, err := reader.ForFile(entry.Name, s.readerOptions(kind)...)
	if err != nil {
		return result, err
	}
	doc, err := rd.ReadFromFile(entry.Path)
	if err != nil {
		return result, err
	}
	result.CharCount = doc.CharCount
	result.Pages = doc.Pages
	if kind == KindPDF {
		log.Infof("%s file: %s chars=%d pages=%d", kind, entry.Path, doc.CharCount, doc.Pages)
	} else {
		log.Infof("%s file: %s chars=%d", kind, entry.Path, doc.CharCount)
	}

	if doc.CharCount >= s.threshold {
		result.Skipped = true
		log.Infof("%s file exceeds %d characters, skipping: %s", kind, s.threshold, entry.Path)
		return result, nil
	}

	chunks, err := s.strategy(kind).Chunk(doc)
	if err != nil {
		return result, err
	}
	outputs, err := s.writer.Write(ctx, s.outputDir, entry.BaseName(), contents(chunks))
	if err != nil {
		return result, err
	}
	result.Chunks = len(chunks)
	result.Outputs = outputs
	log.Debugf("wrote %d chunks for %s", len(outputs), entry.Path)
	return result, nil
}

func (s *Splitter) readerOptions(kind Kind) []reader.Option {
	if kind == KindPDF {
		return []reader.Option{reader.WithLayoutAware(s.pdfLayoutAware)}
	}
	return nil
}

func (s *Splitter) strategy(kind Kind) chunking.Strategy {
	limit := s.wordCharLimit
	if kind == KindPDF {
		limit = s.pdfCharLimit
	}
	return chunking.NewFixedSizeChunking(chunking.WithChunkSize(limit))
}

func contents(docs []*document.Document) []string {
	texts := make([]string, 0, len(docs))
	for _, d := range docs {
		texts = append(texts, d.Content)
	}
	return texts
}
