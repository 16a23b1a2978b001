//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package docx provides Word (.docx) document reader implementation.
package docx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gomutex/godocx/common/constants"
	"github.com/gomutex/godocx/packager"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/document"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/document/reader"
	idocument "trpc.group/trpc-go/trpc-docsplit/knowledge/internal/document"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/internal/encoding"
	itransform "trpc.group/trpc-go/trpc-docsplit/knowledge/internal/transform"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/transform"
)

var (
	// supportedExtensions defines the file extensions supported by this reader.
	supportedExtensions = []string{".docx"}

	// ErrMalformed is returned when the file is not a readable Word package.
	ErrMalformed = errors.New("docx: malformed document")
)

// init registers the DOCX reader with the global registry.
func init() {
	reader.RegisterReader(supportedExtensions, New)
}

// Reader reads Word documents paragraph by paragraph.
// The content is every paragraph's text followed by "\n".
type Reader struct {
	countMode    reader.CountMode
	transformers []transform.Transformer
}

// New creates a new DOCX reader with the given options.
// No transformers are applied by default.
func New(opts ...reader.Option) reader.Reader {
	config := reader.NewConfig(opts...)
	return &Reader{
		countMode:    config.CountMode,
		transformers: reader.BuildTransformers(config),
	}
}

// ReadFromReader reads DOCX content from an io.Reader.
func (r *Reader) ReadFromReader(name string, rd io.Reader) (*document.Document, error) {
	content, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("failed to read DOCX content: %w", err)
	}
	return r.read(content, name, "")
}

// ReadFromFile reads DOCX content from a file path.
func (r *Reader) ReadFromFile(filePath string) (*document.Document, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open DOCX file: %w", err)
	}
	return r.read(content, idocument.BaseName(filePath), filePath)
}

func (r *Reader) read(content []byte, name, source string) (doc *document.Document, err error) {
	defer func() {
		if p := recover(); p != nil {
			doc = nil
			err = fmt.Errorf("%w: %v", ErrMalformed, p)
		}
	}()

	body, err := mainDocument(content)
	if err != nil {
		return nil, err
	}
	paras, err := paragraphs(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var text strings.Builder
	paragraphChars := 0
	for _, para := range paras {
		text.WriteString(para)
		text.WriteString("\n")
		paragraphChars += encoding.RuneCount(para)
	}

	doc = idocument.CreateDocument(text.String(), name)
	doc.Source = source
	if r.countMode == reader.CountParagraphText {
		doc.CharCount = paragraphChars
	}

	docs, err := itransform.ApplyPreprocess([]*document.Document{doc}, r.transformers...)
	if err != nil {
		return nil, err
	}
	if len(docs) != 1 {
		return nil, fmt.Errorf("transformers returned %d documents, want 1", len(docs))
	}
	return docs[0], nil
}

// mainDocument returns the XML of the main document part, located through the
// package relationships.
func mainDocument(content []byte) (io.Reader, error) {
	files, err := packager.ReadFromZip(&content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	relsURI, err := packager.GetRelsURI("")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	relsFile, ok := files[*relsURI]
	if !ok {
		return nil, fmt.Errorf("%w: missing %s", ErrMalformed, *relsURI)
	}
	rels, err := packager.LoadRelationShips(*relsURI, relsFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	for _, rel := range rels.Relationships {
		if rel.Type != constants.OFFICE_DOC_TYPE {
			continue
		}
		part, ok := files[strings.TrimPrefix(rel.Target, "/")]
		if !ok {
			return nil, fmt.Errorf("%w: missing main document part %s", ErrMalformed, rel.Target)
		}
		return bytes.NewReader(part), nil
	}
	return nil, fmt.Errorf("%w: no main document relationship", ErrMalformed)
}

// Name returns the name of this reader.
func (r *Reader) Name() string {
	return "DOCXReader"
}

// SupportedExtensions returns the file extensions this reader supports.
func (r *Reader) SupportedExtensions() []string {
	return supportedExtensions
}
