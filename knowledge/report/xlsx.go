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
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the count table.
const SheetName = "统计结果"

// nameColumnWidth is the width of the file name column, in characters.
const nameColumnWidth = 40

// XLSXWriter writes the count table as a single-sheet workbook.
type XLSXWriter struct{}

// NewXLSXWriter creates a spreadsheet report writer.
func NewXLSXWriter() *XLSXWriter {
	return &XLSXWriter{}
}

// Write writes the header in row 1 and the rows below it.
func (x *XLSXWriter) Write(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &[]any{HeaderName, HeaderCount}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &[]any{row.Name, row.Count}); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	if err := f.SetColWidth(SheetName, "A", "A", nameColumnWidth); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}
