//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package document

import (
	"strings"
	"testing"
)

func TestGenerateDocumentID(t *testing.T) {
	name := "My Test Document"
	content := "test content"
	id := GenerateDocumentID(name, content)

	// Expect name spaces replaced with underscores followed by content hash and a UUID.
	if !strings.HasPrefix(id, "My_Test_Document_") {
		t.Fatalf("unexpected id prefix: %s", id)
	}
	if strings.Contains(id, " ") {
		t.Fatalf("id should not contain spaces: %s", id)
	}

	parts := strings.SplitN(strings.TrimPrefix(id, "My_Test_Document_"), "_", 2)
	if len(parts) != 2 || len(parts[0]) != 16 || len(parts[1]) != 36 {
		t.Fatalf("unexpected id layout: %s", id)
	}

	id2 := GenerateDocumentID(name, content)
	if id == id2 {
		t.Fatalf("IDs should be unique even for same content: %s == %s", id, id2)
	}
}

func TestCreateDocument(t *testing.T) {
	content := "你好, world"
	name := "Example Doc"
	doc := CreateDocument(content, name)

	if doc == nil {
		t.Fatalf("expected non-nil document")
	}
	if doc.Content != content {
		t.Errorf("content mismatch")
	}
	if doc.Name != name {
		t.Errorf("name mismatch")
	}
	if doc.CharCount != 9 {
		t.Errorf("char count should be counted in runes, got %d", doc.CharCount)
	}
	if doc.ID == "" {
		t.Errorf("id should be set")
	}
	if doc.Metadata == nil {
		t.Errorf("metadata map should be initialized")
	}
}

func TestBaseName(t *testing.T) {
	cases := map[string]string{
		"in/report.pdf":        "report",
		"notes.docx":           "notes",
		"dir/archive.tar.docx": "archive.tar",
		"noext":                "noext",
	}
	for in, want := range cases {
		if got := BaseName(in); got != want {
			t.Errorf("BaseName(%q) = %q, want %q", in, got, want)
		}
	}
}
