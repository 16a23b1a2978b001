//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package pdf provides PDF document reader implementation.
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/document"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/document/reader"
	idocument "trpc.group/trpc-go/trpc-docsplit/knowledge/internal/document"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/internal/encoding"
	itransform "trpc.group/trpc-go/trpc-docsplit/knowledge/internal/transform"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/transform"
)

// Backend names recorded in document metadata.
const (
	BackendPlain  = "plain"
	BackendLayout = "layout"
)

const (
	// wordGap is the horizontal gap, in points, above which two fragments on
	// the same row are separated by a space.
	wordGap = 3.0
	// rowTolerance is the largest baseline difference, in points, between
	// fragments of one row.
	rowTolerance = 2.0
)

var (
	// supportedExtensions defines the file extensions supported by this reader.
	supportedExtensions = []string{".pdf"}

	// ErrMalformed is returned when the PDF library panics on a damaged file.
	ErrMalformed = errors.New("pdf: malformed document")
)

// init registers the PDF reader with the global registry.
func init() {
	reader.RegisterReader(supportedExtensions, New)
}

// Reader reads PDF documents.
// The character count is taken from the raw page text; the content is then passed
// through the transformers, by default a WhitespaceNormalizer.
type Reader struct {
	layoutAware  bool
	transformers []transform.Transformer
}

// New creates a new PDF reader with the given options.
func New(opts ...reader.Option) reader.Reader {
	config := reader.NewConfig(opts...)
	return &Reader{
		layoutAware:  config.LayoutAware,
		transformers: reader.BuildTransformers(config, transform.NewWhitespaceNormalizer()),
	}
}

// ReadFromReader reads PDF content from an io.Reader.
func (r *Reader) ReadFromReader(name string, rd io.Reader) (*document.Document, error) {
	content, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF content: %w", err)
	}
	return r.read(bytes.NewReader(content), int64(len(content)), name, "")
}

// ReadFromFile reads PDF content from a file path.
func (r *Reader) ReadFromFile(filePath string) (*document.Document, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF file: %w", err)
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}
	return r.read(file, fileInfo.Size(), idocument.BaseName(filePath), filePath)
}

func (r *Reader) read(ra io.ReaderAt, size int64, name, source string) (doc *document.Document, err error) {
	defer func() {
		if p := recover(); p != nil {
			doc = nil
			err = fmt.Errorf("%w: %v", ErrMalformed, p)
		}
	}()

	pdfReader, err := pdf.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF reader: %w", err)
	}

	var (
		text  string
		count int
	)
	if r.layoutAware {
		text, count = extractLayoutText(pdfReader)
	} else {
		text, err = extractPlainText(pdfReader)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text: %w", err)
		}
		count = encoding.RuneCount(text)
	}

	doc = idocument.CreateDocument(text, name)
	doc.CharCount = count
	doc.Source = source
	doc.Pages = pdfReader.NumPage()
	doc.Metadata[document.MetaBackend] = r.backend()

	docs, err := itransform.ApplyPreprocess([]*document.Document{doc}, r.transformers...)
	if err != nil {
		return nil, err
	}
	if len(docs) != 1 {
		return nil, fmt.Errorf("transformers returned %d documents, want 1", len(docs))
	}
	return docs[0], nil
}

// extractPlainText concatenates the plain text of every page in page order.
// Each page ends with a newline so that words never join across pages.
func extractPlainText(pdfReader *pdf.Reader) (string, error) {
	var allText strings.Builder
	totalPage := pdfReader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := pdfReader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", pageIndex, err)
		}
		if text == "" {
			continue
		}
		allText.WriteString(text)
		if !strings.HasSuffix(text, "\n") {
			allText.WriteString("\n")
		}
	}
	return allText.String(), nil
}

// extractLayoutText rebuilds every page row by row from the positioned
// glyphs of its content stream. Rows are separated by newlines and pages by a
// newline. The count is the sum of the page text lengths, separators between
// pages excluded.
func extractLayoutText(pdfReader *pdf.Reader) (string, int) {
	var pages []string
	count := 0
	totalPage := pdfReader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := pdfReader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text := pageRows(page.Content().Text)
		if text == "" {
			continue
		}
		pages = append(pages, text)
		count += encoding.RuneCount(text)
	}
	return strings.Join(pages, "\n"), count
}

// pageRows groups glyphs into rows by baseline, top to bottom, and joins
// each row with joinRow.
func pageRows(texts []pdf.Text) string {
	frags := make([]pdf.Text, 0, len(texts))
	for _, t := range texts {
		// TJ marks the end of its array with a synthetic newline.
		if t.S == "\n" || t.S == "\r" {
			continue
		}
		frags = append(frags, t)
	}
	sort.SliceStable(frags, func(i, j int) bool { return frags[i].Y > frags[j].Y })

	var lines []string
	for start := 0; start < len(frags); {
		end := start + 1
		for end < len(frags) && frags[start].Y-frags[end].Y <= rowTolerance {
			end++
		}
		if line := joinRow(frags[start:end]); line != "" {
			lines = append(lines, line)
		}
		start = end
	}
	return strings.Join(lines, "\n")
}

// joinRow orders fragments left to right and inserts a space where the gap
// between two fragments looks like a word break.
func joinRow(texts []pdf.Text) string {
	frags := make([]pdf.Text, len(texts))
	copy(frags, texts)
	sort.SliceStable(frags, func(i, j int) bool { return frags[i].X < frags[j].X })

	var b strings.Builder
	end := 0.0
	for i, t := range frags {
		if i > 0 && t.X-end > wordGap && !strings.HasSuffix(b.String(), " ") && !strings.HasPrefix(t.S, " ") {
			b.WriteByte(' ')
		}
		b.WriteString(t.S)
		end = t.X + t.W
	}
	return b.String()
}

func (r *Reader) backend() string {
	if r.layoutAware {
		return BackendLayout
	}
	return BackendPlain
}

// Name returns the name of this reader.
func (r *Reader) Name() string {
	return "PDFReader"
}

// SupportedExtensions returns the file extensions this reader supports.
func (r *Reader) SupportedExtensions() []string {
	return supportedExtensions
}
