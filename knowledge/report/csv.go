//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package report

import (
	"encoding/csv"
	"io"
	"strconv"
)

// CSVWriter writes the count table as CRLF terminated CSV.
type CSVWriter struct{}

// NewCSVWriter creates a CSV report writer.
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

// Write writes the header and one record per row.
func (c *CSVWriter) Write(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write([]string{HeaderName, HeaderCount}); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write([]string{row.Name, strconv.Itoa(row.Count)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
