//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package docx

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gomutex/godocx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/document/reader"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/transform"
)

// newTestDOCX builds a Word document with one paragraph per entry.
func newTestDOCX(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	doc, err := godocx.NewDocument()
	require.NoError(t, err)
	for _, p := range paragraphs {
		doc.AddParagraph(p)
	}
	var buf bytes.Buffer
	require.NoError(t, doc.Write(&buf))
	return buf.Bytes()
}

const packageRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// newRawDOCX zips the given parts into a package. Parts named "body" are
// wrapped into a w:document and stored as word/document.xml.
func newRawDOCX(t *testing.T, parts map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range parts {
		if name == "body" {
			name = "word/document.xml"
			content = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
				`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" ` +
				`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">` +
				`<w:body>` + content + `</w:body></w:document>`
		}
		f, err := zw.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func readBody(t *testing.T, body string, opts ...reader.Option) (string, int) {
	t.Helper()
	data := newRawDOCX(t, map[string]string{"_rels/.rels": packageRels, "body": body})
	doc, err := New(opts...).ReadFromReader("raw", bytes.NewReader(data))
	require.NoError(t, err)
	return doc.Content, doc.CharCount
}

func TestReader_TwoParagraphs(t *testing.T) {
	data := newTestDOCX(t, "a", "b")

	doc, err := New().ReadFromReader("pair", bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", doc.Content)
	assert.Equal(t, 4, doc.CharCount)
	assert.Equal(t, "pair", doc.Name)
	assert.Equal(t, 0, doc.Pages)
}

func TestReader_ParagraphTextCount(t *testing.T) {
	data := newTestDOCX(t, "a", "b")

	doc, err := New(reader.WithCountMode(reader.CountParagraphText)).ReadFromReader("pair", bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", doc.Content)
	assert.Equal(t, 2, doc.CharCount)
}

func TestReader_RunContent(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		content   string
		count     int
		paraCount int
	}{
		{
			name:      "tab between texts",
			body:      `<w:p><w:r><w:t>a</w:t><w:tab/><w:t>b</w:t></w:r></w:p>`,
			content:   "a\tb\n",
			count:     4,
			paraCount: 3,
		},
		{
			name:      "line break",
			body:      `<w:p><w:r><w:t>a</w:t><w:br/><w:t>b</w:t></w:r></w:p>`,
			content:   "a\nb\n",
			count:     4,
			paraCount: 3,
		},
		{
			name:      "page break adds nothing",
			body:      `<w:p><w:r><w:t>a</w:t><w:br w:type="page"/><w:t>b</w:t></w:r></w:p>`,
			content:   "ab\n",
			count:     3,
			paraCount: 2,
		},
		{
			name: "hyperlink with several runs",
			body: `<w:p><w:r><w:t xml:space="preserve">see </w:t></w:r>` +
				`<w:hyperlink r:id="rId9"><w:r><w:t>foo</w:t></w:r><w:r><w:t>bar</w:t></w:r></w:hyperlink></w:p>`,
			content:   "see foobar\n",
			count:     11,
			paraCount: 10,
		},
		{
			name: "table paragraphs are not body paragraphs",
			body: `<w:p><w:r><w:t>top</w:t></w:r></w:p>` +
				`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>cell</w:t></w:r></w:p></w:tc></w:tr></w:tbl>` +
				`<w:p/><w:sectPr/>`,
			content:   "top\n\n",
			count:     5,
			paraCount: 3,
		},
		{
			name:      "run properties are ignored",
			body:      `<w:p><w:pPr><w:jc w:val="center"/></w:pPr><w:r><w:rPr><w:b/></w:rPr><w:t>bold</w:t></w:r></w:p>`,
			content:   "bold\n",
			count:     5,
			paraCount: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, count := readBody(t, tt.body)
			assert.Equal(t, tt.content, content)
			assert.Equal(t, tt.count, count)

			_, paraCount := readBody(t, tt.body, reader.WithCountMode(reader.CountParagraphText))
			assert.Equal(t, tt.paraCount, paraCount)
		})
	}
}

func TestReader_UnicodeCountsRunes(t *testing.T) {
	data := newTestDOCX(t, "文件名", "字数统计")

	doc, err := New().ReadFromReader("zh", bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "文件名\n字数统计\n", doc.Content)
	assert.Equal(t, 9, doc.CharCount)
}

func TestReader_Empty(t *testing.T) {
	doc, err := New().ReadFromReader("empty", bytes.NewReader(newTestDOCX(t)))
	require.NoError(t, err)
	assert.Equal(t, "", doc.Content)
	assert.Equal(t, 0, doc.CharCount)
}

func TestReader_ReadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.docx")
	require.NoError(t, os.WriteFile(path, newTestDOCX(t, "hello", "world"), 0o644))

	doc, err := New().ReadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "notes", doc.Name)
	assert.Equal(t, path, doc.Source)
	assert.Equal(t, "hello\nworld\n", doc.Content)
	assert.Equal(t, 12, doc.CharCount)
}

func TestReader_WithTransformers(t *testing.T) {
	data := newTestDOCX(t, "a  b", "c")

	doc, err := New(reader.WithTransformers(transform.NewWhitespaceNormalizer())).ReadFromReader("x", bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "a b c", doc.Content)
	assert.Equal(t, 7, doc.CharCount, "count is taken before transformers")
}

func TestReader_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "not a zip", data: []byte("not a zip")},
		{name: "missing package relationships", data: newRawDOCX(t, map[string]string{"body": `<w:p/>`})},
		{name: "missing main document part", data: newRawDOCX(t, map[string]string{"_rels/.rels": packageRels})},
		{
			name: "no main document relationship",
			data: newRawDOCX(t, map[string]string{
				"_rels/.rels": `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"/>`,
				"body":        `<w:p/>`,
			}),
		},
		{
			name: "truncated document xml",
			data: newRawDOCX(t, map[string]string{
				"_rels/.rels":       packageRels,
				"word/document.xml": `<w:document xmlns:w="x"><w:body><w:p><w:r>`,
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().ReadFromReader("broken", bytes.NewReader(tt.data))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestReader_MissingFile(t *testing.T) {
	_, err := New().ReadFromFile(filepath.Join(t.TempDir(), "missing.docx"))
	assert.ErrorContains(t, err, "failed to open DOCX file")

	_, err = New().ReadFromReader("bad", strings.NewReader(""))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestReader_Helpers(t *testing.T) {
	rdr := New()
	assert.Equal(t, "DOCXReader", rdr.Name())
	assert.Equal(t, []string{".docx"}, rdr.SupportedExtensions())

	_, ok := reader.GetReader(".docx")
	assert.True(t, ok)
}
