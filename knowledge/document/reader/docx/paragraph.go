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
	"encoding/xml"
	"io"
	"strings"

	"github.com/gomutex/godocx/wml/ctypes"
	"github.com/gomutex/godocx/wml/stypes"
)

// paragraphs returns the text of every top level body paragraph in document
// order. Paragraphs inside tables, text boxes or content controls are not part
// of the body paragraph list.
func paragraphs(r io.Reader) ([]string, error) {
	d := xml.NewDecoder(r)
	var out []string
	depth := 0
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}

		switch elem := tok.(type) {
		case xml.StartElement:
			depth++
			switch {
			case depth == 1:
				// w:document
			case depth == 2 && elem.Name.Local == "body":
			case depth == 3 && elem.Name.Local == "p":
				text, err := paragraphText(d)
				if err != nil {
					return nil, err
				}
				out = append(out, text)
				depth--
			default:
				if err := d.Skip(); err != nil {
					return nil, err
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// paragraphText reads the children of a w:p element up to its end tag. Text
// comes from runs and from the runs of hyperlinks.
func paragraphText(d *xml.Decoder) (string, error) {
	var b strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return "", err
		}

		switch elem := tok.(type) {
		case xml.StartElement:
			switch elem.Name.Local {
			case "r":
				if err := decodeRun(d, elem, &b); err != nil {
					return "", err
				}
			case "hyperlink":
				if err := hyperlinkText(d, &b); err != nil {
					return "", err
				}
			default:
				if err := d.Skip(); err != nil {
					return "", err
				}
			}
		case xml.EndElement:
			return b.String(), nil
		}
	}
}

func hyperlinkText(d *xml.Decoder, b *strings.Builder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch elem := tok.(type) {
		case xml.StartElement:
			if elem.Name.Local == "r" {
				if err := decodeRun(d, elem, b); err != nil {
					return err
				}
				continue
			}
			if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func decodeRun(d *xml.Decoder, start xml.StartElement, b *strings.Builder) error {
	run := ctypes.NewRun()
	if err := d.DecodeElement(run, &start); err != nil {
		return err
	}
	b.WriteString(runText(run))
	return nil
}

// runText renders run content the way Word shows it as plain text: tabs as
// "\t" and line breaks as "\n". Page and column breaks add nothing.
func runText(run *ctypes.Run) string {
	var b strings.Builder
	for _, child := range run.Children {
		switch {
		case child.Text != nil:
			b.WriteString(child.Text.Text)
		case child.Tab != nil:
			b.WriteByte('\t')
		case child.Break != nil:
			if child.Break.BreakType == nil || *child.Break.BreakType == stypes.BreakTypeTextWrapping {
				b.WriteByte('\n')
			}
		}
	}
	return b.String()
}
