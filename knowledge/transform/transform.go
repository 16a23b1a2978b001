//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package transform provides document transformers applied by readers after extraction.
package transform

import "trpc.group/trpc-go/trpc-docsplit/knowledge/document"

// Transformer rewrites extracted documents before they are chunked.
type Transformer interface {
	Preprocess(docs []*document.Document) ([]*document.Document, error)
	Name() string
}
