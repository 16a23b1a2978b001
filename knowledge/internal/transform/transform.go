//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package transform applies document transformers in order.
package transform

import (
	"fmt"

	"trpc.group/trpc-go/trpc-docsplit/knowledge/document"
	"trpc.group/trpc-go/trpc-docsplit/knowledge/transform"
)

// ApplyPreprocess runs Preprocess of every non-nil transformer over docs.
func ApplyPreprocess(docs []*document.Document, transformers ...transform.Transformer) ([]*document.Document, error) {
	if len(docs) == 0 {
		return docs, nil
	}
	var err error
	for _, t := range transformers {
		if t == nil {
			continue
		}
		docs, err = t.Preprocess(docs)
		if err != nil {
			return nil, fmt.Errorf("failed to apply preprocess: %w", err)
		}
	}
	return docs, nil
}
